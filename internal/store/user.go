package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/brianhe1/smartcards-ai/internal/domain"
)

// UserStore defines the interface for account persistence.
type UserStore interface {
	// Create saves a new account to the store.
	// It handles domain validation and password hashing internally.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrUserNotFound if the account does not exist.
	// The returned user never carries the plaintext password.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves an account by its email address.
	// Returns ErrUserNotFound if the account does not exist.
	// The returned user never carries the plaintext password.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
