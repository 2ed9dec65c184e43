// Package api provides HTTP handlers for the API.
package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/brianhe1/smartcards-ai/internal/api/middleware"
)

// getUserIDFromContext extracts the authenticated user's UUID from the
// request context, rejecting the zero value.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathSetName extracts the set name from the URL path. chi matches
// against r.URL.RawPath only when the request carries a non-canonical
// encoding; in that case the {name} param is still percent-encoded and
// needs decoding. Otherwise the param is already decoded and unescaping it
// again would mangle names containing a literal '%'.
func getPathSetName(r *http.Request) (string, bool) {
	name := chi.URLParam(r, "name")
	if name == "" {
		return "", false
	}

	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(name)
		if err != nil || decoded == "" {
			return "", false
		}
		name = decoded
	}
	return name, true
}
