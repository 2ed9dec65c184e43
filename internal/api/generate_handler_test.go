package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianhe1/smartcards-ai/internal/api/shared"
	"github.com/brianhe1/smartcards-ai/internal/domain"
	"github.com/brianhe1/smartcards-ai/internal/generation"
	"github.com/brianhe1/smartcards-ai/internal/mocks"
)

func authenticatedRequest(t *testing.T, method, target, body string, userID uuid.UUID) *http.Request {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
	return r.WithContext(ctx)
}

func TestGenerateHandler_Generate(t *testing.T) {
	generator := mocks.NewMockGeneratorWithCards([]domain.CardContent{
		{Front: "f1", Back: "b1"},
		{Front: "f2", Back: "b2"},
		{Front: "f3", Back: "b3"},
	})
	handler := NewGenerateHandler(generator, nil)

	r := authenticatedRequest(t, http.MethodPost, "/api/generate",
		`{"text": "mitosis", "quantity": "3"}`, uuid.New())
	w := httptest.NewRecorder()

	handler.Generate(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Flashcards, 3)

	// Order is the generator's, and every entry gets a unique id
	ids := make(map[string]bool)
	for i, c := range resp.Flashcards {
		assert.Equal(t, []string{"f1", "f2", "f3"}[i], c.Front)
		assert.NotEmpty(t, c.ID)
		assert.False(t, ids[c.ID])
		ids[c.ID] = true
	}

	assert.Equal(t, 1, generator.GenerateCardsCalls.Count)
	assert.Equal(t, "mitosis", generator.GenerateCardsCalls.Topics[0])
	assert.Equal(t, 3, generator.GenerateCardsCalls.Counts[0])
}

func TestGenerateHandler_GenerateUnauthenticated(t *testing.T) {
	handler := NewGenerateHandler(&mocks.MockGenerator{}, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(`{"text": "topic", "quantity": 3}`))
	w := httptest.NewRecorder()

	handler.Generate(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGenerateHandler_GenerateInvalidBody(t *testing.T) {
	generator := &mocks.MockGenerator{}
	handler := NewGenerateHandler(generator, nil)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing text", `{"quantity": 3}`},
		{"zero quantity", `{"text": "topic", "quantity": 0}`},
		{"quantity too large", `{"text": "topic", "quantity": 500}`},
		{"non-numeric quantity", `{"text": "topic", "quantity": "lots"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authenticatedRequest(t, http.MethodPost, "/api/generate", tt.body, uuid.New())
			w := httptest.NewRecorder()

			handler.Generate(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	assert.Equal(t, 0, generator.GenerateCardsCalls.Count,
		"rejected requests must not reach the generator")
}

func TestGenerateHandler_GenerateUpstreamFailure(t *testing.T) {
	handler := NewGenerateHandler(mocks.MockGeneratorThatFails(), nil)

	r := authenticatedRequest(t, http.MethodPost, "/api/generate",
		`{"text": "topic", "quantity": 3}`, uuid.New())
	w := httptest.NewRecorder()

	handler.Generate(w, r)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Flashcard generation failed", resp.Error)
}

func TestGenerateHandler_GenerateContentBlocked(t *testing.T) {
	handler := NewGenerateHandler(mocks.MockGeneratorWithContentBlocked(), nil)

	r := authenticatedRequest(t, http.MethodPost, "/api/generate",
		`{"text": "topic", "quantity": 3}`, uuid.New())
	w := httptest.NewRecorder()

	handler.Generate(w, r)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGenerateHandler_GenerateEmptyTopicFromGenerator(t *testing.T) {
	handler := NewGenerateHandler(
		mocks.NewMockGeneratorWithError(generation.ErrEmptyTopic), nil)

	r := authenticatedRequest(t, http.MethodPost, "/api/generate",
		`{"text": "   ", "quantity": 3}`, uuid.New())
	w := httptest.NewRecorder()

	handler.Generate(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
