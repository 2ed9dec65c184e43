package store

import (
	"context"
	"database/sql"

	"github.com/brianhe1/smartcards-ai/internal/domain"
)

// UserRecordStore defines the interface for the per-user root record that
// holds the ordered flashcard-set descriptor list.
type UserRecordStore interface {
	// Ensure fetches the record keyed by userID, creating it with an empty
	// descriptor list if it does not exist. Idempotent: calling twice never
	// duplicates or loses data. Returns ErrStoreUnavailable when the store
	// cannot be reached; callers must not assume the record exists after a
	// failure.
	Ensure(ctx context.Context, userID string) (*domain.UserRecord, error)

	// Get retrieves the record keyed by userID.
	// Returns ErrUserRecordMissing if no record exists.
	Get(ctx context.Context, userID string) (*domain.UserRecord, error)

	// Update writes the record's descriptor list conditioned on the revision
	// the caller read: the write succeeds only if the stored version still
	// equals record.Version, and increments it. Returns ErrVersionConflict
	// when a concurrent writer committed first.
	//
	// Mutations MUST run inside a transaction via WithTx so the descriptor
	// write commits atomically with the card-document operations that
	// accompany it; read-only listing may call Get directly.
	Update(ctx context.Context, record *domain.UserRecord) error

	// WithTx returns a UserRecordStore bound to the provided transaction.
	// The transaction is created and managed by the caller, typically
	// through RunInTransaction.
	WithTx(tx *sql.Tx) UserRecordStore
}
