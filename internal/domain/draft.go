package domain

import (
	"errors"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Draft errors
var (
	// ErrEmptyDraft is returned when a draft is created without candidates.
	ErrEmptyDraft = errors.New("draft must contain at least one card")

	// ErrDraftCardNotFound is returned when a draft entry id does not exist.
	ErrDraftCardNotFound = errors.New("draft card not found")
)

// DraftCard is one candidate flashcard inside a draft. Each entry carries a
// stable opaque id so replace/remove operations address entries by identity
// rather than by position, which stays correct as entries are removed.
type DraftCard struct {
	ID      string      `json:"id"`
	Content CardContent `json:"content"`
}

// Draft is the transient, unsaved list of generated flashcard candidates.
// It exists only in memory between generation and save; it is discarded once
// the cards are committed as a named set. The server only mints the entry
// ids when serving a generation request; editing a draft (Replace, Remove)
// happens on the client, which submits the final contents on save.
type Draft struct {
	topic string
	cards []DraftCard
}

// NewDraft builds a draft from generated card contents, assigning each
// entry a fresh opaque id and preserving generation order.
func NewDraft(topic string, contents []CardContent) (*Draft, error) {
	if len(contents) == 0 {
		return nil, ErrEmptyDraft
	}

	cards := make([]DraftCard, 0, len(contents))
	for _, c := range contents {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		id, err := gonanoid.New()
		if err != nil {
			return nil, err
		}
		cards = append(cards, DraftCard{ID: id, Content: c})
	}

	return &Draft{topic: topic, cards: cards}, nil
}

// Topic returns the topic the draft was generated from. It is kept so a
// single replacement card can be regenerated against the same topic.
func (d *Draft) Topic() string {
	return d.topic
}

// Len returns the number of candidates currently in the draft.
func (d *Draft) Len() int {
	return len(d.cards)
}

// Cards returns the candidates in order. The returned slice is a copy.
func (d *Draft) Cards() []DraftCard {
	out := make([]DraftCard, len(d.cards))
	copy(out, d.cards)
	return out
}

// Contents returns just the front/back pairs in order, the shape consumed
// by the content store on save.
func (d *Draft) Contents() []CardContent {
	out := make([]CardContent, 0, len(d.cards))
	for _, c := range d.cards {
		out = append(out, c.Content)
	}
	return out
}

// Replace swaps the content of the entry with the given id, keeping its
// position and identity. Returns ErrDraftCardNotFound if no entry matches.
func (d *Draft) Replace(id string, content CardContent) error {
	if err := content.Validate(); err != nil {
		return err
	}

	for i := range d.cards {
		if d.cards[i].ID == id {
			d.cards[i].Content = content
			return nil
		}
	}
	return ErrDraftCardNotFound
}

// Remove deletes the entry with the given id, preserving the order of the
// remaining entries. Returns ErrDraftCardNotFound if no entry matches.
func (d *Draft) Remove(id string) error {
	for i := range d.cards {
		if d.cards[i].ID == id {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return nil
		}
	}
	return ErrDraftCardNotFound
}
