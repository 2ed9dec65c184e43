package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/brianhe1/smartcards-ai/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "nil",
			err:     nil,
			wantErr: nil,
		},
		{
			name:    "no rows",
			err:     sql.ErrNoRows,
			wantErr: store.ErrNotFound,
		},
		{
			name:    "unique violation",
			err:     &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantErr: store.ErrDuplicate,
		},
		{
			name:    "foreign key violation",
			err:     &pgconn.PgError{Code: "23503", ConstraintName: "flashcards_user_fk"},
			wantErr: store.ErrNotFound,
		},
		{
			name:    "connection failure",
			err:     &pgconn.PgError{Code: "08006"},
			wantErr: store.ErrStoreUnavailable,
		},
		{
			name:    "bad connection",
			err:     driver.ErrBadConn,
			wantErr: store.ErrStoreUnavailable,
		},
		{
			name:    "wrapped no rows",
			err:     fmt.Errorf("scan: %w", sql.ErrNoRows),
			wantErr: store.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tt.wantErr)
		})
	}
}

func TestMapError_UnknownErrorPassesThrough(t *testing.T) {
	original := errors.New("some other database error")
	assert.Equal(t, original, MapError(original))
}

func TestIsUnavailable(t *testing.T) {
	assert.True(t, IsUnavailable(driver.ErrBadConn))
	assert.True(t, IsUnavailable(sql.ErrConnDone))
	assert.True(t, IsUnavailable(&pgconn.PgError{Code: "08003"}))
	assert.False(t, IsUnavailable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUnavailable(sql.ErrNoRows))
	assert.False(t, IsUnavailable(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("not a pg error")))
}
