package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memStore is an in-memory Store substitute. failPutUser injects a write
// error for a specific UID to exercise per-record failure isolation.
type memStore struct {
	users       map[string]map[string]any
	merchants   map[string]map[string]any
	failPutUser map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[string]map[string]any),
		merchants:   make(map[string]map[string]any),
		failPutUser: make(map[string]error),
	}
}

func (m *memStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, doc := range m.users {
		if doc["email"] == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) PutUser(_ context.Context, uid string, doc map[string]any) error {
	if err := m.failPutUser[uid]; err != nil {
		return err
	}
	m.users[uid] = doc
	return nil
}

func (m *memStore) PutMerchant(_ context.Context, uid string, doc map[string]any) error {
	m.merchants[uid] = doc
	return nil
}

func TestRun_EndToEnd(t *testing.T) {
	store := newMemStore()
	sum := NewSeeder(store).Run(context.Background())

	assert.Equal(t, Summary{Created: 3}, sum)
	assert.Len(t, store.users, 3)
	assert.Len(t, store.merchants, 1)

	for _, u := range Users {
		doc, ok := store.users[u.UID]
		require.True(t, ok, "missing user document for %s", u.UID)
		assert.Equal(t, u.Email, doc["email"])
		assert.Equal(t, string(u.Role), doc["role"])
		assert.NotEmpty(t, doc["createdAt"])
	}
}

func TestRun_Idempotent(t *testing.T) {
	store := newMemStore()
	s := NewSeeder(store)

	first := s.Run(context.Background())
	second := s.Run(context.Background())

	assert.Equal(t, Summary{Created: 3}, first)
	assert.Equal(t, Summary{Skipped: 3}, second)
	assert.Len(t, store.users, 3, "second run must not create documents")
	assert.Len(t, store.merchants, 1)
}

func TestRun_PasswordConfidentiality(t *testing.T) {
	store := newMemStore()
	NewSeeder(store).Run(context.Background())

	for _, u := range Users {
		doc := store.users[u.UID]
		_, hasPlaintext := doc["password"]
		assert.False(t, hasPlaintext, "%s document must not carry the plaintext password", u.UID)

		hash, ok := doc["passwordHash"].(string)
		require.True(t, ok)
		assert.NotEqual(t, u.Password, hash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(u.Password)))

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, BcryptCost, cost)
	}
}

func TestRun_MerchantMirrorOnly(t *testing.T) {
	store := newMemStore()
	NewSeeder(store).Run(context.Background())

	require.Len(t, store.merchants, 1)
	mirror, ok := store.merchants["merchant_user_001"]
	require.True(t, ok, "merchant document must live at the same key")
	assert.Equal(t, store.users["merchant_user_001"], mirror)

	for uid := range store.users {
		if uid == "merchant_user_001" {
			continue
		}
		_, mirrored := store.merchants[uid]
		assert.False(t, mirrored, "%s must not appear in the merchants collection", uid)
	}
}

func TestRun_PartialFailureIsolation(t *testing.T) {
	store := newMemStore()
	store.failPutUser[Users[0].UID] = errors.New("simulated write error")

	sum := NewSeeder(store).Run(context.Background())

	assert.Equal(t, Summary{Created: 2, Failed: 1}, sum)
	_, created := store.users[Users[0].UID]
	assert.False(t, created)
	for _, u := range Users[1:] {
		_, ok := store.users[u.UID]
		assert.True(t, ok, "record after the failing one must still be attempted: %s", u.UID)
	}
}
