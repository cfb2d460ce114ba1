// Package models contains data structures for the seeder's fixture accounts.
package models

import "time"

// Role defines which kind of test account a fixture record provisions.
type Role string

const (
	// RoleAdmin indicates a platform administrator account.
	RoleAdmin Role = "admin"
	// RoleMerchant indicates a merchant account, mirrored into the
	// merchants collection for the merchant-facing read path.
	RoleMerchant Role = "merchant"
	// RoleUser indicates a regular buyer account.
	RoleUser Role = "user"
)

// SeedUser describes one test account to provision. UID is caller-assigned
// and used as the document key; Email is the uniqueness predicate. Password
// is plaintext input only and never persisted as-is.
type SeedUser struct {
	UID           string
	Email         string
	Password      string
	Name          string
	Role          Role
	BusinessName  string
	WalletAddress string
	Verified      bool
	Approved      bool
}

// Document builds the persisted form of the record: profile data plus the
// given password hash and a creation timestamp. The plaintext password is
// deliberately absent.
func (u SeedUser) Document(passwordHash string, createdAt time.Time) map[string]any {
	doc := map[string]any{
		"uid":           u.UID,
		"email":         u.Email,
		"name":          u.Name,
		"role":          string(u.Role),
		"walletAddress": u.WalletAddress,
		"verified":      u.Verified,
		"passwordHash":  passwordHash,
		"createdAt":     createdAt,
	}
	if u.Role == RoleMerchant {
		doc["businessName"] = u.BusinessName
		doc["approved"] = u.Approved
	}
	return doc
}
