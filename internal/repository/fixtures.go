// Package repository implements the data access layer for fixture documents.
package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const (
	// UsersCollection holds one document per provisioned account, keyed by UID.
	UsersCollection = "users"
	// MerchantsCollection mirrors merchant accounts for the merchant read path.
	MerchantsCollection = "merchants"
)

// Store defines the document operations the seeder needs. The Firestore
// implementation is used in production; tests substitute an in-memory one.
type Store interface {
	// EmailExists reports whether any user document has the given email.
	EmailExists(ctx context.Context, email string) (bool, error)
	// PutUser writes doc to the users collection at key uid.
	PutUser(ctx context.Context, uid string, doc map[string]any) error
	// PutMerchant writes doc to the merchants collection at key uid.
	PutMerchant(ctx context.Context, uid string, doc map[string]any) error
}

type firestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore returns a Store backed by the given Firestore client.
func NewFirestoreStore(client *firestore.Client) Store {
	return &firestoreStore{client: client}
}

func (s *firestoreStore) EmailExists(ctx context.Context, email string) (bool, error) {
	iter := s.client.Collection(UsersCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query users by email: %w", err)
	}
	return true, nil
}

func (s *firestoreStore) PutUser(ctx context.Context, uid string, doc map[string]any) error {
	if _, err := s.client.Collection(UsersCollection).Doc(uid).Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to write user document %s: %w", uid, err)
	}
	return nil
}

func (s *firestoreStore) PutMerchant(ctx context.Context, uid string, doc map[string]any) error {
	if _, err := s.client.Collection(MerchantsCollection).Doc(uid).Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to write merchant document %s: %w", uid, err)
	}
	return nil
}
