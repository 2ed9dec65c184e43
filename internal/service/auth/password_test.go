package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier_Compare(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	verifier := NewBcryptVerifier()

	assert.NoError(t, verifier.Compare(string(hash), "correct-password"))
	assert.ErrorIs(t, verifier.Compare(string(hash), "wrong-password"), ErrPasswordMismatch)
}

func TestBcryptVerifier_CompareInvalidHash(t *testing.T) {
	verifier := NewBcryptVerifier()

	err := verifier.Compare("not-a-bcrypt-hash", "password")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
