package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrStoreUnavailable is returned when the underlying store cannot be
	// reached (connection refused, network timeout, closed pool). Callers
	// must not assume any record exists after receiving it.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrDeleteFailed is returned when a set deletion fails partway. State
	// is left as of the last completed step; there is no rollback beyond
	// the enclosing transaction.
	ErrDeleteFailed = errors.New("delete failed")

	// ErrTransactionFailed is returned when a transaction fails to commit
	// or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested account does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrUserRecordMissing indicates that the per-user flashcard record is
	// absent where an operation required it to exist.
	ErrUserRecordMissing = fmt.Errorf("%w: user record", ErrNotFound)

	// ErrSetNotFound indicates that no descriptor with the requested name
	// exists in the user's record.
	ErrSetNotFound = fmt.Errorf("%w: flashcard set", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that an account with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrDuplicateName indicates that the user's record already holds a
	// descriptor with the requested set name (case-sensitive exact match).
	ErrDuplicateName = fmt.Errorf("%w: set name", ErrDuplicate)

	// ErrVersionConflict indicates that a conditional record write lost to a
	// concurrent writer: the record's revision no longer matches the one the
	// transaction read.
	ErrVersionConflict = fmt.Errorf("%w: user record revision changed", ErrTransactionFailed)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsUnavailableError checks if the error indicates an unreachable store.
func IsUnavailableError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
