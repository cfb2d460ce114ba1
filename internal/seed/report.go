package seed

import (
	"fmt"
	"io"
	"os"

	"eventnft/internal/config"
	"eventnft/internal/models"
)

// FrontendURL returns the front-end a role logs into.
func FrontendURL(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "https://admin.eventnft.app"
	case models.RoleMerchant:
		return "https://merchant.eventnft.app"
	default:
		return "https://eventnft.app"
	}
}

// PrintCredentials prints the credential report for manual testing. The
// passwords shown are fixture data, printed on purpose.
func PrintCredentials(cfg *config.Config) {
	WriteCredentials(os.Stdout, cfg)
}

// WriteCredentials writes the fixed-format credential report to w: per role
// the login email, plaintext password and front-end URL, then the admin
// secondary key (the configured default when unset).
func WriteCredentials(w io.Writer, cfg *config.Config) {
	adminKey := cfg.AdminSecretKey
	if adminKey == "" {
		adminKey = config.DefaultAdminSecretKey
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "📧 Test account credentials")
	fmt.Fprintln(w, "─────────────────────────────────────")
	for _, u := range Users {
		fmt.Fprintf(w, "%-8s | %s / %s\n", u.Role, u.Email, u.Password)
		fmt.Fprintf(w, "         | %s\n", FrontendURL(u.Role))
	}
	fmt.Fprintln(w, "─────────────────────────────────────")
	fmt.Fprintf(w, "🔑 Admin secret key: %s\n", adminKey)
}
