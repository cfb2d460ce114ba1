// Package config provides application configuration loading and management.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultEnvFile is the settings file the seeder reads by default.
const DefaultEnvFile = ".env"

// DefaultAdminSecretKey is used when ADMIN_SECRET_KEY is not configured.
const DefaultAdminSecretKey = "eventnft-admin-secret"

// Config holds seeder configuration values loaded from the settings file or
// environment variables.
type Config struct {
	FirebaseProjectID   string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseClientEmail string `mapstructure:"FIREBASE_CLIENT_EMAIL"`
	FirebasePrivateKey  string `mapstructure:"FIREBASE_PRIVATE_KEY"`
	AdminSecretKey      string `mapstructure:"ADMIN_SECRET_KEY"`
}

// LoadConfig loads configuration from the given KEY=VALUE settings file and
// the process environment. A missing or unparseable file is not an error:
// environment variables alone may satisfy the bootstrap, so only a
// diagnostic is logged.
func LoadConfig(envFile string) (*Config, error) {
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Register every key so AutomaticEnv lookups apply during Unmarshal
	// even when the settings file is absent.
	viper.SetDefault("FIREBASE_PROJECT_ID", "")
	viper.SetDefault("FIREBASE_CLIENT_EMAIL", "")
	viper.SetDefault("FIREBASE_PRIVATE_KEY", "")
	viper.SetDefault("ADMIN_SECRET_KEY", DefaultAdminSecretKey)

	raw, err := os.ReadFile(envFile)
	if err != nil {
		log.Printf("⚠️  Could not read %s (%v), relying on environment variables", envFile, err)
	} else if err := viper.ReadConfig(bytes.NewReader(filterSettings(raw))); err != nil {
		log.Printf("⚠️  Could not parse %s (%v), relying on environment variables", envFile, err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return &config, nil
}

// filterSettings drops lines the env parser would reject the whole file
// over: anything that is not blank, not a # comment, and has no = separator.
// The remaining KEY=VALUE entries still load.
func filterSettings(raw []byte) []byte {
	var b bytes.Buffer
	for _, line := range strings.Split(string(raw), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") && !strings.Contains(trimmed, "=") {
			log.Printf("⚠️  Ignoring settings line without separator: %s", trimmed)
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// ValidateCredentials ensures the service-account fields required for the
// database bootstrap are present. Called by the bootstrap, not by
// LoadConfig, so that a missing settings file stays non-fatal.
func (c *Config) ValidateCredentials() error {
	if c.FirebaseProjectID == "" {
		return errors.New("FIREBASE_PROJECT_ID is required")
	}
	if c.FirebaseClientEmail == "" {
		return errors.New("FIREBASE_CLIENT_EMAIL is required")
	}
	if c.FirebasePrivateKey == "" {
		return errors.New("FIREBASE_PRIVATE_KEY is required")
	}
	return nil
}

// PrivateKey returns the service-account private key with literal \n escape
// sequences unescaped to real newlines, as required by the PEM parser.
func (c *Config) PrivateKey() string {
	return strings.ReplaceAll(c.FirebasePrivateKey, `\n`, "\n")
}
