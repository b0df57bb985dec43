// Package session holds the small amount of client state that outlives one
// command: the cart identifier and the customer access token.
package session

import (
	"context"
	"fmt"
	"sync"
)

const (
	KeyCartID      = "cartId"
	KeyAccessToken = "shopifyCustomerToken"
)

// Store is a durable string key/value store. Get reports ok=false for a
// missing key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Session is created once per process and handed to the components that need
// it. It satisfies the cart package's CartIDStore and the account package's
// TokenStore.
type Session struct {
	store Store
}

func New(store Store) *Session {
	return &Session{store: store}
}

func (s *Session) CartID(ctx context.Context) (string, error) {
	return s.get(ctx, KeyCartID)
}

func (s *Session) SetCartID(ctx context.Context, id string) error {
	return s.store.Set(ctx, KeyCartID, id)
}

func (s *Session) ClearCartID(ctx context.Context) error {
	return s.store.Delete(ctx, KeyCartID)
}

// AccessToken is opaque; no expiry is checked here.
func (s *Session) AccessToken(ctx context.Context) (string, error) {
	return s.get(ctx, KeyAccessToken)
}

func (s *Session) SetAccessToken(ctx context.Context, token string) error {
	return s.store.Set(ctx, KeyAccessToken, token)
}

func (s *Session) LoggedIn(ctx context.Context) (bool, error) {
	tok, err := s.AccessToken(ctx)
	return tok != "", err
}

// Logout drops the access token and keeps the cart.
func (s *Session) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, KeyAccessToken)
}

// Clear drops everything the session holds.
func (s *Session) Clear(ctx context.Context) error {
	for _, k := range []string{KeyAccessToken, KeyCartID} {
		if err := s.store.Delete(ctx, k); err != nil {
			return fmt.Errorf("session clear %s: %w", k, err)
		}
	}
	return nil
}

func (s *Session) get(ctx context.Context, key string) (string, error) {
	v, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("session get %s: %w", key, err)
	}
	if !ok {
		return "", nil
	}
	return v, nil
}

// MemoryStore keeps values for the life of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
