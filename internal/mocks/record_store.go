package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/brianhe1/smartcards-ai/internal/domain"
	"github.com/brianhe1/smartcards-ai/internal/store"
)

// InMemoryUserRecordStore is a map-backed store.UserRecordStore for testing
// service behavior without a database. WithTx returns the same instance, so
// it can back transactional code paths driven by a stub *sql.DB.
type InMemoryUserRecordStore struct {
	mu      sync.Mutex
	records map[string]*domain.UserRecord

	// Error overrides per operation
	EnsureErr error
	GetErr    error
	UpdateErr error

	// UpdateCalls counts committed Update invocations
	UpdateCalls int
}

// Ensure InMemoryUserRecordStore implements the store.UserRecordStore interface
var _ store.UserRecordStore = (*InMemoryUserRecordStore)(nil)

// NewInMemoryUserRecordStore creates an empty in-memory record store.
func NewInMemoryUserRecordStore() *InMemoryUserRecordStore {
	return &InMemoryUserRecordStore{
		records: make(map[string]*domain.UserRecord),
	}
}

// Seed installs a record, bypassing version checks. For test arrangement.
func (s *InMemoryUserRecordStore) Seed(record *domain.UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.UserID] = cloneRecord(record)
}

// Ensure implements store.UserRecordStore.Ensure
func (s *InMemoryUserRecordStore) Ensure(ctx context.Context, userID string) (*domain.UserRecord, error) {
	if s.EnsureErr != nil {
		return nil, s.EnsureErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.records[userID]; ok {
		return cloneRecord(existing), nil
	}

	record, err := domain.NewUserRecord(userID)
	if err != nil {
		return nil, err
	}
	s.records[userID] = cloneRecord(record)
	return record, nil
}

// Get implements store.UserRecordStore.Get
func (s *InMemoryUserRecordStore) Get(ctx context.Context, userID string) (*domain.UserRecord, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[userID]
	if !ok {
		return nil, store.ErrUserRecordMissing
	}
	return cloneRecord(existing), nil
}

// Update implements store.UserRecordStore.Update
func (s *InMemoryUserRecordStore) Update(ctx context.Context, record *domain.UserRecord) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[record.UserID]
	if !ok {
		return store.ErrUserRecordMissing
	}
	if existing.Version != record.Version {
		return store.ErrVersionConflict
	}

	record.Version++
	s.records[record.UserID] = cloneRecord(record)
	s.UpdateCalls++
	return nil
}

// WithTx implements store.UserRecordStore.WithTx
func (s *InMemoryUserRecordStore) WithTx(tx *sql.Tx) store.UserRecordStore {
	return s
}

func cloneRecord(r *domain.UserRecord) *domain.UserRecord {
	out := *r
	out.Sets = make([]domain.SetDescriptor, len(r.Sets))
	copy(out.Sets, r.Sets)
	return &out
}
