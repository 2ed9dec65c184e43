// Package auth provides JWT token issuance/validation and password
// verification for the API's authentication endpoints and middleware.
package auth

import "errors"

// Token validation errors
var (
	// ErrInvalidToken is returned when an access token fails validation
	// (bad signature, malformed, wrong claims).
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when an access token has expired.
	ErrExpiredToken = errors.New("token expired")

	// ErrInvalidRefreshToken is returned when a refresh token fails validation.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrExpiredRefreshToken is returned when a refresh token has expired.
	ErrExpiredRefreshToken = errors.New("refresh token expired")

	// ErrWrongTokenType is returned when a token is presented in the wrong
	// context, e.g. an access token sent to the refresh endpoint.
	ErrWrongTokenType = errors.New("wrong token type")
)
