package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/brianhe1/smartcards-ai/internal/api/shared"
	"github.com/brianhe1/smartcards-ai/internal/domain"
	"github.com/brianhe1/smartcards-ai/internal/platform/logger"
	"github.com/brianhe1/smartcards-ai/internal/service"
	"github.com/brianhe1/smartcards-ai/internal/store"
)

// SetHandler handles flashcard-set HTTP requests.
type SetHandler struct {
	setService service.SetService
	logger     *slog.Logger
}

// NewSetHandler creates a new SetHandler.
func NewSetHandler(setService service.SetService, logger *slog.Logger) *SetHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &SetHandler{
		setService: setService,
		logger:     logger.With(slog.String("component", "set_handler")),
	}
}

// ListSets handles GET /flashcard-sets requests.
// It returns the user's set names in insertion order, creating an empty
// record on first contact so a brand-new user gets an empty list rather
// than an error.
func (h *SetHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	sets, err := h.setService.ListSets(r.Context(), userID.String())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	out := make([]SetResponse, 0, len(sets))
	for _, s := range sets {
		out = append(out, SetResponse{Name: s.Name})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SetListResponse{FlashcardSets: out})
}

// SaveSet handles POST /flashcard-sets requests.
// The descriptor and all card documents commit in one transaction.
func (h *SetHandler) SaveSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req SaveSetRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	cards := make([]domain.CardContent, 0, len(req.Cards))
	for _, c := range req.Cards {
		cards = append(cards, domain.CardContent{Front: c.Front, Back: c.Back})
	}

	saved, err := h.setService.SaveSet(r.Context(), userID.String(), req.Name, cards)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateName) {
			shared.RespondWithError(w, r, http.StatusConflict, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	out := make([]SavedCard, 0, len(saved))
	for _, c := range saved {
		out = append(out, SavedCard{ID: c.ID, Front: c.Content.Front, Back: c.Content.Back})
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CardListResponse{Flashcards: out})
}

// GetCards handles GET /flashcard-sets/{name}/cards requests.
func (h *SetHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	name, ok := getPathSetName(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid set name")
		return
	}

	cards, err := h.setService.GetCards(r.Context(), userID.String(), name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	out := make([]SavedCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, SavedCard{ID: c.ID, Front: c.Content.Front, Back: c.Content.Back})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CardListResponse{Flashcards: out})
}

// DeleteSet handles DELETE /flashcard-sets/{name} requests.
// Deleting a name that has no descriptor succeeds without effect, so the
// operation is safe to repeat.
func (h *SetHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	name, ok := getPathSetName(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid set name")
		return
	}

	if err := h.setService.DeleteSet(r.Context(), userID.String(), name); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
