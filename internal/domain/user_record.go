package domain

import (
	"errors"
	"time"
)

// User record validation errors
var (
	// ErrEmptyUserID is returned when a record is keyed by an empty subject id.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrEmptySetName is returned when a set descriptor has no name.
	ErrEmptySetName = errors.New("set name cannot be empty")
)

// SetDescriptor names one flashcard set inside a user's record.
// The descriptor list is the sole authority on which sets exist: a set with
// zero card documents is indistinguishable from a deleted one in the store.
type SetDescriptor struct {
	Name string `json:"name"`
}

// UserRecord is the per-user root record of the synchronization protocol.
// It holds the ordered list of set descriptors, keyed by the opaque subject
// id supplied by the authentication layer. Version is the optimistic
// concurrency revision: every committed mutation increments it, and writers
// condition their update on the revision they read.
type UserRecord struct {
	UserID    string          `json:"user_id"`
	Sets      []SetDescriptor `json:"flashcard_sets"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewUserRecord creates an empty record for the given subject id.
func NewUserRecord(userID string) (*UserRecord, error) {
	record := &UserRecord{
		UserID:    userID,
		Sets:      []SetDescriptor{},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the UserRecord has valid data.
func (r *UserRecord) Validate() error {
	if r.UserID == "" {
		return ErrEmptyUserID
	}

	for _, s := range r.Sets {
		if s.Name == "" {
			return ErrEmptySetName
		}
	}

	return nil
}

// HasSet reports whether a descriptor with the given name exists.
// The match is case-sensitive and exact.
func (r *UserRecord) HasSet(name string) bool {
	for _, s := range r.Sets {
		if s.Name == name {
			return true
		}
	}
	return false
}

// AppendSet adds a descriptor for name at the end of the list, preserving
// insertion order. The caller must have checked for duplicates first.
func (r *UserRecord) AppendSet(name string) {
	r.Sets = append(r.Sets, SetDescriptor{Name: name})
	r.UpdatedAt = time.Now().UTC()
}

// RemoveSet filters the descriptor with the given name out of the list.
// It returns false when no descriptor matched, leaving the record unchanged.
func (r *UserRecord) RemoveSet(name string) bool {
	kept := r.Sets[:0:len(r.Sets)]
	removed := false
	for _, s := range r.Sets {
		if s.Name == name {
			removed = true
			continue
		}
		kept = append(kept, s)
	}

	if removed {
		r.Sets = kept
		r.UpdatedAt = time.Now().UTC()
	}
	return removed
}
