// Package database handles the Firestore connection bootstrap.
package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"eventnft/internal/config"
)

// Client is the process-scoped Firestore connection instance.
var Client *firestore.Client

// serviceAccount is the subset of the Google service-account key file the
// credentials loader requires.
type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
	TokenURI    string `json:"token_uri"`
}

// Connect establishes the Firestore client using the service-account
// credentials in cfg and returns it. The connection is a process-scoped
// singleton: once established, subsequent calls return the existing client.
// There is no retry policy; callers treat an error as fatal.
func Connect(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	if Client != nil {
		return Client, nil
	}

	if err := cfg.ValidateCredentials(); err != nil {
		return nil, fmt.Errorf("invalid service account credentials: %w", err)
	}

	creds, err := json.Marshal(serviceAccount{
		Type:        "service_account",
		ProjectID:   cfg.FirebaseProjectID,
		PrivateKey:  cfg.PrivateKey(),
		ClientEmail: cfg.FirebaseClientEmail,
		TokenURI:    "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode service account credentials: %w", err)
	}

	client, err := firestore.NewClient(ctx, cfg.FirebaseProjectID, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Firestore: %w", err)
	}

	log.Printf("✓ Connected to Firestore project %s", cfg.FirebaseProjectID)

	Client = client
	return Client, nil
}
