package api

import (
	"log/slog"
	"net/http"

	"github.com/brianhe1/smartcards-ai/internal/api/shared"
	"github.com/brianhe1/smartcards-ai/internal/platform/logger"
	"github.com/brianhe1/smartcards-ai/internal/service"
)

// CheckoutHandler handles subscription checkout requests.
type CheckoutHandler struct {
	checkoutService service.CheckoutService
	logger          *slog.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutService service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger.With(slog.String("component", "checkout_handler")),
	}
}

// CreateSession handles POST /checkout_session requests.
// It returns the Stripe session id the frontend redirects to.
func (h *CheckoutHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	sessionID, err := h.checkoutService.CreateSession(r.Context(), userID.String())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadGateway, "Failed to create checkout session", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CheckoutResponse{ID: sessionID})
}
