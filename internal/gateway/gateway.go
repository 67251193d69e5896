package gateway

import (
	"context"
	"fmt"
)

// Intent is the writable view of a remote payment authorization. The gateway
// owns it; this service only ever sees the id and client secret returned at
// creation plus the fields echoed back on update.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// PaymentGateway abstracts the remote payment provider. Amounts are integer
// minor-currency units; decimal accumulation happens before this boundary.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
	UpdateIntent(ctx context.Context, intentID string, amount int64) (*Intent, error)
}

// GatewayError is a failed remote call. It is not retried here; the client is
// expected to re-invoke checkout.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway error (status %d): %s", e.StatusCode, e.Message)
}
