// Package seed provisions the fixed test accounts used for manual testing.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"eventnft/internal/models"
	"eventnft/internal/repository"
)

// BcryptCost is the work factor applied to fixture passwords.
const BcryptCost = 12

// Summary reports how a seeding run went, per record outcome.
type Summary struct {
	Created int
	Skipped int
	Failed  int
}

// Seeder provisions SeedUser records into a Store.
type Seeder struct {
	store repository.Store
	now   func() time.Time
}

// NewSeeder returns a Seeder writing through the given store.
func NewSeeder(store repository.Store) *Seeder {
	return &Seeder{store: store, now: time.Now}
}

// Run seeds every fixture record strictly in order. A record that already
// exists is skipped; a record that fails is logged with its email and does
// not stop the records after it.
func (s *Seeder) Run(ctx context.Context) Summary {
	log.Printf("🌱 Seeding %d test accounts...", len(Users))

	var sum Summary
	for _, u := range Users {
		created, err := s.seedOne(ctx, u)
		switch {
		case err != nil:
			sum.Failed++
			log.Printf("❌ Failed to seed %s: %v", u.Email, err)
		case !created:
			sum.Skipped++
			log.Printf("✓ %s already exists, skipping", u.Email)
		default:
			sum.Created++
			log.Printf("✓ Created %s account %s", u.Role, u.Email)
		}
	}

	log.Printf("🎉 Seeding complete: %d created, %d skipped, %d failed", sum.Created, sum.Skipped, sum.Failed)
	return sum
}

// seedOne creates the documents for a single record. Idempotence is by
// existence check on email, not by upsert-merge: an existing account is
// never overwritten.
func (s *Seeder) seedOne(ctx context.Context, u models.SeedUser) (bool, error) {
	exists, err := s.store.EmailExists(ctx, u.Email)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), BcryptCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	doc := u.Document(string(hash), s.now())
	if err := s.store.PutUser(ctx, u.UID, doc); err != nil {
		return false, err
	}

	// Merchants are mirrored into their own collection so the merchant
	// dashboard can query it without scanning users.
	if u.Role == models.RoleMerchant {
		if err := s.store.PutMerchant(ctx, u.UID, doc); err != nil {
			return false, err
		}
	}

	return true, nil
}
