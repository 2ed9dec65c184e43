package store

import (
	"context"
	"database/sql"

	"github.com/brianhe1/smartcards-ai/internal/domain"
)

// CardStore defines the interface for the per-set sub-collection of
// flashcard documents.
type CardStore interface {
	// CreateMany inserts one new document per card content into the
	// (userID, setName) sub-collection, assigning each an opaque id. Input
	// order is not persisted; ListBySet follows the store's default order.
	//
	// IMPORTANT: run this inside the same transaction as the descriptor
	// append (via WithTx and RunInTransaction) so the descriptor and all
	// card documents commit together or not at all.
	CreateMany(ctx context.Context, userID, setName string, cards []domain.CardContent) ([]domain.Flashcard, error)

	// ListBySet returns every document in the (userID, setName)
	// sub-collection. An empty result is not an error: a set with zero
	// documents is indistinguishable from a non-existent one, which is why
	// the descriptor list is the sole authority on which sets exist.
	ListBySet(ctx context.Context, userID, setName string) ([]domain.Flashcard, error)

	// DeleteBySet removes every document in the (userID, setName)
	// sub-collection and reports how many were deleted. Must be paired with
	// removal of the set's descriptor in the same transaction.
	DeleteBySet(ctx context.Context, userID, setName string) (int64, error)

	// WithTx returns a CardStore bound to the provided transaction.
	WithTx(tx *sql.Tx) CardStore
}
