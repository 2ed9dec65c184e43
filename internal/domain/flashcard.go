package domain

import (
	"errors"
	"time"
)

// Flashcard validation errors
var (
	// ErrEmptyCardFront is returned when a card has no front text.
	ErrEmptyCardFront = errors.New("card front cannot be empty")

	// ErrEmptyCardBack is returned when a card has no back text.
	ErrEmptyCardBack = errors.New("card back cannot be empty")
)

// CardContent is the front/back text pair of a flashcard. Both sides hold
// markdown text. This is the shape produced by the generator and persisted
// by the content store.
type CardContent struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Validate checks that both sides of the card carry text.
func (c CardContent) Validate() error {
	if c.Front == "" {
		return ErrEmptyCardFront
	}
	if c.Back == "" {
		return ErrEmptyCardBack
	}
	return nil
}

// Flashcard is one persisted card document inside a set's sub-collection.
// The ID is opaque and store-assigned on insert. Cards are owned exclusively
// by their (UserID, SetName) parent set and are never mutated in place.
type Flashcard struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	SetName   string      `json:"set_name"`
	Content   CardContent `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}

// Validate checks if the Flashcard has valid data.
func (f *Flashcard) Validate() error {
	if f.UserID == "" {
		return ErrEmptyUserID
	}
	if f.SetName == "" {
		return ErrEmptySetName
	}
	return f.Content.Validate()
}
