package mocks

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/brianhe1/smartcards-ai/internal/domain"
	"github.com/brianhe1/smartcards-ai/internal/store"
)

// InMemoryCardStore is a map-backed store.CardStore for testing service
// behavior without a database. Cards are grouped per (userID, setName).
type InMemoryCardStore struct {
	mu     sync.Mutex
	cards  map[string][]domain.Flashcard
	nextID int

	// Error overrides per operation
	CreateManyErr error
	ListErr       error
	DeleteErr     error
}

// Ensure InMemoryCardStore implements the store.CardStore interface
var _ store.CardStore = (*InMemoryCardStore)(nil)

// NewInMemoryCardStore creates an empty in-memory card store.
func NewInMemoryCardStore() *InMemoryCardStore {
	return &InMemoryCardStore{
		cards: make(map[string][]domain.Flashcard),
	}
}

func setKey(userID, setName string) string {
	return userID + "\x00" + setName
}

// CreateMany implements store.CardStore.CreateMany
func (s *InMemoryCardStore) CreateMany(
	ctx context.Context,
	userID, setName string,
	cards []domain.CardContent,
) ([]domain.Flashcard, error) {
	if s.CreateManyErr != nil {
		return nil, s.CreateManyErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := setKey(userID, setName)
	out := make([]domain.Flashcard, 0, len(cards))
	for _, c := range cards {
		s.nextID++
		card := domain.Flashcard{
			ID:        fmt.Sprintf("card-%d", s.nextID),
			UserID:    userID,
			SetName:   setName,
			Content:   c,
			CreatedAt: time.Now().UTC(),
		}
		s.cards[key] = append(s.cards[key], card)
		out = append(out, card)
	}
	return out, nil
}

// ListBySet implements store.CardStore.ListBySet
func (s *InMemoryCardStore) ListBySet(ctx context.Context, userID, setName string) ([]domain.Flashcard, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.cards[setKey(userID, setName)]
	out := make([]domain.Flashcard, len(stored))
	copy(out, stored)
	return out, nil
}

// DeleteBySet implements store.CardStore.DeleteBySet
func (s *InMemoryCardStore) DeleteBySet(ctx context.Context, userID, setName string) (int64, error) {
	if s.DeleteErr != nil {
		return 0, s.DeleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := setKey(userID, setName)
	deleted := int64(len(s.cards[key]))
	delete(s.cards, key)
	return deleted, nil
}

// WithTx implements store.CardStore.WithTx
func (s *InMemoryCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return s
}
