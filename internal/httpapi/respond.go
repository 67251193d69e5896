package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Bambyboi/skinet/internal/basket"
	"github.com/Bambyboi/skinet/internal/gateway"
	"github.com/Bambyboi/skinet/internal/payments"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: "",
	})
}

// handlePaymentError maps the payment error taxonomy to HTTP responses.
func handlePaymentError(w http.ResponseWriter, err error) {
	if errors.Is(err, basket.ErrBasketNotFound) {
		respondError(w, http.StatusBadRequest, "basket_not_found", "problem with your basket")
		return
	}

	var integrityErr *payments.DataIntegrityError
	if errors.As(err, &integrityErr) {
		respondError(w, http.StatusBadGateway, "catalog_mismatch", integrityErr.Error())
		return
	}

	var gwErr *gateway.GatewayError
	if errors.As(err, &gwErr) {
		respondError(w, http.StatusBadGateway, "payment_gateway_error", "payment provider rejected the request")
		return
	}

	respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}
