package mocks

import (
	"context"
	"sync"

	"github.com/brianhe1/smartcards-ai/internal/domain"
	"github.com/brianhe1/smartcards-ai/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateCardsFn allows test cases to mock the GenerateCards behavior
	GenerateCardsFn func(ctx context.Context, topic string, count int) ([]domain.CardContent, error)

	// Default response values
	Cards []domain.CardContent
	Err   error

	// Call tracking for verification
	GenerateCardsCalls struct {
		mu     sync.Mutex
		Count  int
		Topics []string
		Counts []int
	}
}

// GenerateCards implements the generation.Generator interface
func (m *MockGenerator) GenerateCards(
	ctx context.Context,
	topic string,
	count int,
) ([]domain.CardContent, error) {
	m.GenerateCardsCalls.mu.Lock()
	m.GenerateCardsCalls.Count++
	m.GenerateCardsCalls.Topics = append(m.GenerateCardsCalls.Topics, topic)
	m.GenerateCardsCalls.Counts = append(m.GenerateCardsCalls.Counts, count)
	m.GenerateCardsCalls.mu.Unlock()

	if m.GenerateCardsFn != nil {
		return m.GenerateCardsFn(ctx, topic, count)
	}

	return m.Cards, m.Err
}

// NewMockGeneratorWithCards creates a MockGenerator that returns the
// specified card contents.
func NewMockGeneratorWithCards(cards []domain.CardContent) *MockGenerator {
	return &MockGenerator{
		Cards: cards,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the
// specified error.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// MockGeneratorThatFails creates a MockGenerator that simulates a generation failure
func MockGeneratorThatFails() *MockGenerator {
	return &MockGenerator{
		Err: generation.ErrGenerationFailed,
	}
}

// MockGeneratorWithContentBlocked creates a MockGenerator that simulates content being blocked
func MockGeneratorWithContentBlocked() *MockGenerator {
	return &MockGenerator{
		Err: generation.ErrContentBlocked,
	}
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateCardsCalls.mu.Lock()
	defer m.GenerateCardsCalls.mu.Unlock()

	m.GenerateCardsCalls.Count = 0
	m.GenerateCardsCalls.Topics = nil
	m.GenerateCardsCalls.Counts = nil
}
