package api

import (
	"log/slog"
	"net/http"

	"github.com/brianhe1/smartcards-ai/internal/api/shared"
	"github.com/brianhe1/smartcards-ai/internal/domain"
	"github.com/brianhe1/smartcards-ai/internal/generation"
	"github.com/brianhe1/smartcards-ai/internal/platform/logger"
)

// GenerateHandler handles flashcard generation requests.
type GenerateHandler struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(generator generation.Generator, logger *slog.Logger) *GenerateHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &GenerateHandler{
		generator: generator,
		logger:    logger.With(slog.String("component", "generate_handler")),
	}
}

// Generate handles POST /generate requests.
// It produces a draft of candidate flashcards for the submitted topic and
// returns them in generation order, each tagged with a draft-local id.
// Nothing is persisted: the draft exists only in the response, and the
// client submits the (possibly edited) cards back through the save endpoint.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	log.Debug("generating flashcards",
		slog.String("user_id", userID.String()),
		slog.Int("quantity", int(req.Quantity)))

	contents, err := h.generator.GenerateCards(r.Context(), req.Text, int(req.Quantity))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	draft, err := domain.NewDraft(req.Text, contents)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadGateway, "Flashcard generation failed", err)
		return
	}

	cards := draft.Cards()
	out := make([]GeneratedCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, GeneratedCard{
			ID:    c.ID,
			Front: c.Content.Front,
			Back:  c.Content.Back,
		})
	}

	log.Info("generated flashcards",
		slog.String("user_id", userID.String()),
		slog.Int("card_count", len(out)))

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{Flashcards: out})
}
