package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorsWrapCategories(t *testing.T) {
	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrUserRecordMissing, ErrNotFound)
	assert.ErrorIs(t, ErrSetNotFound, ErrNotFound)

	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)
	assert.ErrorIs(t, ErrDuplicateName, ErrDuplicate)

	assert.ErrorIs(t, ErrVersionConflict, ErrTransactionFailed)
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrUserRecordMissing))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrapped: %w", ErrSetNotFound)))
	assert.False(t, IsNotFoundError(ErrDuplicateName))
	assert.False(t, IsNotFoundError(errors.New("unrelated")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrDuplicateName))
	assert.True(t, IsDuplicateError(fmt.Errorf("wrapped: %w", ErrEmailExists)))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
}

func TestIsUnavailableError(t *testing.T) {
	assert.True(t, IsUnavailableError(ErrStoreUnavailable))
	assert.True(t, IsUnavailableError(fmt.Errorf("query: %w", ErrStoreUnavailable)))
	assert.False(t, IsUnavailableError(ErrNotFound))
}
