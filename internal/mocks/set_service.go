package mocks

import (
	"context"

	"github.com/brianhe1/smartcards-ai/internal/domain"
	"github.com/brianhe1/smartcards-ai/internal/service"
)

// MockSetService implements service.SetService for testing handlers.
type MockSetService struct {
	// Custom behavior functions
	ListSetsFn  func(ctx context.Context, userID string) ([]domain.SetDescriptor, error)
	SaveSetFn   func(ctx context.Context, userID, name string, cards []domain.CardContent) ([]domain.Flashcard, error)
	GetCardsFn  func(ctx context.Context, userID, name string) ([]domain.Flashcard, error)
	DeleteSetFn func(ctx context.Context, userID, name string) error

	// Default response values
	Sets  []domain.SetDescriptor
	Cards []domain.Flashcard
	Err   error
}

// Ensure MockSetService implements the service.SetService interface
var _ service.SetService = (*MockSetService)(nil)

// ListSets implements the service.SetService interface
func (m *MockSetService) ListSets(ctx context.Context, userID string) ([]domain.SetDescriptor, error) {
	if m.ListSetsFn != nil {
		return m.ListSetsFn(ctx, userID)
	}
	return m.Sets, m.Err
}

// SaveSet implements the service.SetService interface
func (m *MockSetService) SaveSet(
	ctx context.Context,
	userID, name string,
	cards []domain.CardContent,
) ([]domain.Flashcard, error) {
	if m.SaveSetFn != nil {
		return m.SaveSetFn(ctx, userID, name, cards)
	}
	return m.Cards, m.Err
}

// GetCards implements the service.SetService interface
func (m *MockSetService) GetCards(ctx context.Context, userID, name string) ([]domain.Flashcard, error) {
	if m.GetCardsFn != nil {
		return m.GetCardsFn(ctx, userID, name)
	}
	return m.Cards, m.Err
}

// DeleteSet implements the service.SetService interface
func (m *MockSetService) DeleteSet(ctx context.Context, userID, name string) error {
	if m.DeleteSetFn != nil {
		return m.DeleteSetFn(ctx, userID, name)
	}
	return m.Err
}

// MockCheckoutService implements service.CheckoutService for testing handlers.
type MockCheckoutService struct {
	CreateSessionFn func(ctx context.Context, userID string) (string, error)

	SessionID string
	Err       error
}

// Ensure MockCheckoutService implements the service.CheckoutService interface
var _ service.CheckoutService = (*MockCheckoutService)(nil)

// CreateSession implements the service.CheckoutService interface
func (m *MockCheckoutService) CreateSession(ctx context.Context, userID string) (string, error) {
	if m.CreateSessionFn != nil {
		return m.CreateSessionFn(ctx, userID)
	}
	return m.SessionID, m.Err
}
