package basket

import (
	"context"
	"errors"

	"github.com/Bambyboi/skinet/internal/domain"
)

type Store interface {
	Get(ctx context.Context, basketID string) (*domain.Basket, error)
	Set(ctx context.Context, basket *domain.Basket) error
	Delete(ctx context.Context, basketID string) error
}

var ErrBasketNotFound = errors.New("basket not found")
