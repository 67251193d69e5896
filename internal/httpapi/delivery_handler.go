package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/Bambyboi/skinet/internal/catalog"
)

type DeliveryHandler struct {
	catalog catalog.Reader
	timeout time.Duration
}

func NewDeliveryHandler(catalogReader catalog.Reader, timeout time.Duration) *DeliveryHandler {
	return &DeliveryHandler{
		catalog: catalogReader,
		timeout: timeout,
	}
}

// GET /api/orders/deliveryMethods
func (h *DeliveryHandler) ListDeliveryMethods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	methods, err := h.catalog.ListDeliveryMethods(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, methods)
}
