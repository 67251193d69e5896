package orders

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Bambyboi/skinet/internal/domain"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrDuplicateIntent = errors.New("order for this payment intent already exists")
)

type Repository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error
}
