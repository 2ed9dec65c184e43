package generation

import (
	"context"

	"github.com/brianhe1/smartcards-ai/internal/domain"
)

// Generator defines the interface for generating flashcard candidates from
// a topic. Implementations perform a single request/response round trip
// against an external model: no retry, no caching, no partial results.
type Generator interface {
	// GenerateCards produces an ordered list of flashcard candidates for the
	// topic. count must be positive; the returned order is the model's and
	// is preserved verbatim for the caller's draft.
	//
	// Returns ErrEmptyTopic or ErrInvalidCount for bad input, and an error
	// wrapping ErrGenerationFailed for any endpoint or response failure,
	// leaving no side effects.
	GenerateCards(ctx context.Context, topic string, count int) ([]domain.CardContent, error)
}
