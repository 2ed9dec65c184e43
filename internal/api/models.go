package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Quantity is a card count that decodes from either a JSON number or a JSON
// string holding a number. Browser form controls submit strings, so both
// forms are accepted on the wire.
type Quantity int

// UnmarshalJSON implements json.Unmarshaler for Quantity.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}

	if s == "" || s == "null" {
		*q = 0
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("quantity must be a whole number: %w", err)
	}

	*q = Quantity(n)
	return nil
}

// GenerateRequest defines the payload for the flashcard generation endpoint.
type GenerateRequest struct {
	Text     string   `json:"text"     validate:"required,min=1"`
	Quantity Quantity `json:"quantity" validate:"required,min=1,max=50"`
}

// GeneratedCard is one card in a generation response. The ID identifies the
// card within the draft only; it is replaced by a store-assigned id on save.
type GeneratedCard struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// GenerateResponse defines the successful response for the generation endpoint.
type GenerateResponse struct {
	Flashcards []GeneratedCard `json:"flashcards"`
}

// CardPayload is one front/back pair in a save request.
type CardPayload struct {
	Front string `json:"front" validate:"required,min=1"`
	Back  string `json:"back"  validate:"required,min=1"`
}

// SaveSetRequest defines the payload for saving a new flashcard set.
type SaveSetRequest struct {
	Name  string        `json:"name"       validate:"required,min=1,max=200"`
	Cards []CardPayload `json:"flashcards" validate:"required,min=1,dive"`
}

// SetListResponse defines the response for the set index endpoint: the
// user's set names in insertion order.
type SetListResponse struct {
	FlashcardSets []SetResponse `json:"flashcard_sets"`
}

// SetResponse is one entry of the set index.
type SetResponse struct {
	Name string `json:"name"`
}

// SavedCard is one persisted card in a card-list or save response.
type SavedCard struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// CardListResponse defines the response for the set-contents endpoint.
type CardListResponse struct {
	Flashcards []SavedCard `json:"flashcards"`
}

// CheckoutResponse defines the response for the checkout-session endpoint.
type CheckoutResponse struct {
	ID string `json:"id"`
}
