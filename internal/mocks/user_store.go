package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/brianhe1/smartcards-ai/internal/domain"
	"github.com/brianhe1/smartcards-ai/internal/store"
)

// InMemoryUserStore is a map-backed store.UserStore for testing.
type InMemoryUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User

	// Error overrides per operation
	CreateErr error
	GetErr    error
}

// Ensure InMemoryUserStore implements the store.UserStore interface
var _ store.UserStore = (*InMemoryUserStore)(nil)

// NewInMemoryUserStore creates an empty in-memory user store.
func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		users: make(map[uuid.UUID]*domain.User),
	}
}

// Create implements store.UserStore.Create
func (s *InMemoryUserStore) Create(ctx context.Context, user *domain.User) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	// Simulate hashing the way the real store does
	if user.HashedPassword == "" {
		user.HashedPassword = "hashed:" + user.Password
		user.Password = ""
	}

	stored := *user
	s.users[user.ID] = &stored
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *InMemoryUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *InMemoryUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			out := *user
			return &out, nil
		}
	}
	return nil, store.ErrUserNotFound
}
