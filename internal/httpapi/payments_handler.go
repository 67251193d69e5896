package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Bambyboi/skinet/internal/domain"
	"github.com/Bambyboi/skinet/internal/webhook"
)

const maxWebhookBodySize = 64 << 10 // 64KB

// PaymentIntentService is the checkout-facing slice of the payments service.
type PaymentIntentService interface {
	CreateOrUpdatePaymentIntent(ctx context.Context, basketID string) (*domain.Basket, error)
}

// WebhookDispatcher consumes one raw gateway event.
type WebhookDispatcher interface {
	Handle(ctx context.Context, payload []byte, signatureHeader string) error
}

type PaymentsHandler struct {
	service    PaymentIntentService
	dispatcher WebhookDispatcher
	timeout    time.Duration
	logger     *zap.Logger
}

func NewPaymentsHandler(service PaymentIntentService, dispatcher WebhookDispatcher, timeout time.Duration, logger *zap.Logger) *PaymentsHandler {
	return &PaymentsHandler{
		service:    service,
		dispatcher: dispatcher,
		timeout:    timeout,
		logger:     logger,
	}
}

// POST /api/payments/{basketId}
func (h *PaymentsHandler) CreateOrUpdatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	buyerEmail := getBuyerEmailFromContext(r.Context())
	if buyerEmail == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	basketID := chi.URLParam(r, "basketId")
	if basketID == "" {
		respondError(w, http.StatusBadRequest, "missing_basket_id", "basket id is required")
		return
	}

	b, err := h.service.CreateOrUpdatePaymentIntent(ctx, basketID)
	if err != nil {
		h.logger.Warn("payment intent request failed",
			zap.String("basket_id", basketID),
			zap.String("request_id", getRequestID(r.Context())),
			zap.Error(err))
		handlePaymentError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, b)
}

// POST /api/payments/webhook
func (h *PaymentsHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodySize))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "could not read request body")
		return
	}

	err = h.dispatcher.Handle(ctx, payload, r.Header.Get("Stripe-Signature"))
	if errors.Is(err, webhook.ErrInvalidSignature) {
		// Do not leak verification detail to an unauthenticated caller.
		respondError(w, http.StatusUnauthorized, "invalid_signature", "signature verification failed")
		return
	}
	if err != nil {
		h.logger.Error("webhook processing failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	w.WriteHeader(http.StatusOK)
}
