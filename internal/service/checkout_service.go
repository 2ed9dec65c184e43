package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/brianhe1/smartcards-ai/internal/config"
	"github.com/brianhe1/smartcards-ai/internal/platform/logger"
)

// ErrCheckoutFailed is returned when Stripe rejects or fails to create a
// checkout session.
var ErrCheckoutFailed = errors.New("checkout session creation failed")

// CheckoutService creates Stripe Checkout sessions for the subscription
// upgrade flow. The returned session id is consumed by the Stripe frontend
// redirect; no payment state is stored locally.
type CheckoutService interface {
	// CreateSession creates a subscription checkout session tagged with the
	// user's subject id and returns the session id.
	CreateSession(ctx context.Context, userID string) (string, error)
}

// stripeCheckoutService implements CheckoutService against the Stripe API.
type stripeCheckoutService struct {
	api    *client.API
	cfg    config.StripeConfig
	logger *slog.Logger
}

// Ensure stripeCheckoutService implements the CheckoutService interface
var _ CheckoutService = (*stripeCheckoutService)(nil)

// NewCheckoutService creates a CheckoutService from the Stripe configuration.
func NewCheckoutService(cfg config.StripeConfig, logger *slog.Logger) (CheckoutService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("stripe secret key cannot be empty")
	}
	if cfg.PriceID == "" {
		return nil, errors.New("stripe price ID cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &stripeCheckoutService{
		api:    api,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "checkout_service")),
	}, nil
}

// CreateSession implements CheckoutService.CreateSession
func (s *stripeCheckoutService) CreateSession(ctx context.Context, userID string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		Mode:   stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.cfg.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(s.cfg.SuccessURL),
		CancelURL:         stripe.String(s.cfg.CancelURL),
		ClientReferenceID: stripe.String(userID),
	}

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		log.Error("failed to create checkout session",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return "", fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	log.Info("created checkout session",
		slog.String("user_id", userID),
		slog.String("session_id", session.ID))
	return session.ID, nil
}
