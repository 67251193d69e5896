package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "Pending"
	OrderStatusPaymentReceived OrderStatus = "PaymentReceived"
	OrderStatusPaymentFailed   OrderStatus = "PaymentFailed"
)

// Order is the persisted order. PaymentIntentID is unique and is the lookup
// key used to resolve gateway webhook events.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	BuyerEmail      string          `json:"buyerEmail"`
	PaymentIntentID string          `json:"paymentIntentId"`
	Status          OrderStatus     `json:"status"`
	Total           decimal.Decimal `json:"total"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
