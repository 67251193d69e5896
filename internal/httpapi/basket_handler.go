package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Bambyboi/skinet/internal/basket"
	"github.com/Bambyboi/skinet/internal/domain"
)

type BasketHandler struct {
	store   basket.Store
	timeout time.Duration
}

func NewBasketHandler(store basket.Store, timeout time.Duration) *BasketHandler {
	return &BasketHandler{
		store:   store,
		timeout: timeout,
	}
}

// GET /api/basket?id=
// A missing basket is not an error for the client: it gets a fresh empty
// basket under the requested id.
func (h *BasketHandler) GetBasket(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	basketID := r.URL.Query().Get("id")
	if basketID == "" {
		respondError(w, http.StatusBadRequest, "missing_basket_id", "id query parameter is required")
		return
	}

	b, err := h.store.Get(ctx, basketID)
	if errors.Is(err, basket.ErrBasketNotFound) {
		respondJSON(w, http.StatusOK, &domain.Basket{ID: basketID, Items: []domain.BasketItem{}})
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, b)
}

// POST /api/basket
func (h *BasketHandler) UpdateBasket(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var b domain.Basket
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if b.ID == "" {
		respondError(w, http.StatusBadRequest, "missing_basket_id", "basket id is required")
		return
	}
	for _, item := range b.Items {
		if item.Quantity < 1 {
			respondError(w, http.StatusBadRequest, "invalid_quantity", "item quantity must be at least 1")
			return
		}
	}

	if err := h.store.Set(ctx, &b); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, &b)
}

// DELETE /api/basket?id=
func (h *BasketHandler) DeleteBasket(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	basketID := r.URL.Query().Get("id")
	if basketID == "" {
		respondError(w, http.StatusBadRequest, "missing_basket_id", "id query parameter is required")
		return
	}

	if err := h.store.Delete(ctx, basketID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
