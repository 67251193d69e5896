package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Bambyboi/skinet/internal/domain"
)

// Reader is the read-only view of the product catalog used during price
// reconciliation. The catalog price is authoritative over any price snapshot
// stored in a basket.
type Reader interface {
	GetProductPrice(ctx context.Context, productID int64) (decimal.Decimal, error)
	GetDeliveryMethod(ctx context.Context, deliveryMethodID int64) (*domain.DeliveryMethod, error)
	ListDeliveryMethods(ctx context.Context) ([]*domain.DeliveryMethod, error)
}

var (
	ErrProductNotFound        = errors.New("product not found")
	ErrDeliveryMethodNotFound = errors.New("delivery method not found")
)
