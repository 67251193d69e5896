package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Bambyboi/skinet/internal/basket"
	"github.com/Bambyboi/skinet/internal/catalog"
	"github.com/Bambyboi/skinet/internal/domain"
	"github.com/Bambyboi/skinet/internal/gateway"
	"github.com/Bambyboi/skinet/internal/orders"
)

// Service keeps the basket, the remote payment intent and the persisted order
// consistent. It holds no state of its own; all shared state lives in the
// basket store and the order repository.
type Service struct {
	baskets  basket.Store
	catalog  catalog.Reader
	orders   orders.Repository
	gateway  gateway.PaymentGateway
	currency string
	monotone bool
	logger   *zap.Logger
}

type Option func(*Service)

// WithMonotoneStatus makes PaymentReceived terminal: a later payment_failed
// event is acknowledged but no longer overwrites the recorded success.
func WithMonotoneStatus() Option {
	return func(s *Service) { s.monotone = true }
}

func NewService(
	baskets basket.Store,
	catalogReader catalog.Reader,
	orderRepo orders.Repository,
	paymentGateway gateway.PaymentGateway,
	currency string,
	logger *zap.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		baskets:  baskets,
		catalog:  catalogReader,
		orders:   orderRepo,
		gateway:  paymentGateway,
		currency: currency,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrUpdatePaymentIntent reconciles the basket against the catalog,
// then creates a remote payment intent for the total (first call) or updates
// the existing intent's amount (subsequent calls), and persists the basket.
// The gateway call and the basket write are not atomic; on a retry after a
// timed-out create the basket is still unbound and the next call observes the
// gateway-side intent only if the id was recorded, so it creates or updates
// accordingly.
func (s *Service) CreateOrUpdatePaymentIntent(ctx context.Context, basketID string) (*domain.Basket, error) {
	b, err := s.baskets.Get(ctx, basketID)
	if err != nil {
		return nil, err
	}

	if err := s.reconcile(ctx, b); err != nil {
		return nil, err
	}

	amount := minorUnits(b.Total())

	if b.PaymentIntentID == "" {
		intent, createErr := s.gateway.CreateIntent(ctx, amount, s.currency)
		if createErr != nil {
			return nil, fmt.Errorf("create payment intent: %w", createErr)
		}
		b.PaymentIntentID = intent.ID
		b.ClientSecret = intent.ClientSecret
		s.logger.Info("payment intent created",
			zap.String("basket_id", b.ID),
			zap.String("payment_intent_id", intent.ID),
			zap.Int64("amount", amount))
	} else {
		if _, updateErr := s.gateway.UpdateIntent(ctx, b.PaymentIntentID, amount); updateErr != nil {
			return nil, fmt.Errorf("update payment intent: %w", updateErr)
		}
		s.logger.Info("payment intent updated",
			zap.String("basket_id", b.ID),
			zap.String("payment_intent_id", b.PaymentIntentID),
			zap.Int64("amount", amount))
	}

	if err := s.baskets.Set(ctx, b); err != nil {
		return nil, fmt.Errorf("persist basket: %w", err)
	}

	return b, nil
}

// reconcile overwrites drifted line-item prices with current catalog prices
// and sets the shipping price from the selected delivery method. The catalog
// is authoritative; this is drift correction, not negotiation.
func (s *Service) reconcile(ctx context.Context, b *domain.Basket) error {
	for i := range b.Items {
		item := &b.Items[i]
		price, err := s.catalog.GetProductPrice(ctx, item.ProductID)
		if errors.Is(err, catalog.ErrProductNotFound) {
			return &DataIntegrityError{Kind: "product", ID: item.ProductID}
		}
		if err != nil {
			return fmt.Errorf("fetch product price: %w", err)
		}
		if !item.Price.Equal(price) {
			s.logger.Warn("basket price drift corrected",
				zap.String("basket_id", b.ID),
				zap.Int64("product_id", item.ProductID),
				zap.String("basket_price", item.Price.String()),
				zap.String("catalog_price", price.String()))
			item.Price = price
		}
	}

	if b.DeliveryMethodID == nil {
		b.ShippingPrice = decimal.Zero
		return nil
	}

	dm, err := s.catalog.GetDeliveryMethod(ctx, *b.DeliveryMethodID)
	if errors.Is(err, catalog.ErrDeliveryMethodNotFound) {
		return &DataIntegrityError{Kind: "delivery method", ID: *b.DeliveryMethodID}
	}
	if err != nil {
		return fmt.Errorf("fetch delivery method: %w", err)
	}
	b.ShippingPrice = dm.Price

	return nil
}

// OrderPaymentSucceeded transitions the order bound to the given payment
// intent to PaymentReceived.
func (s *Service) OrderPaymentSucceeded(ctx context.Context, paymentIntentID string) (*domain.Order, error) {
	return s.transition(ctx, paymentIntentID, domain.OrderStatusPaymentReceived)
}

// OrderPaymentFailed transitions the order bound to the given payment intent
// to PaymentFailed.
func (s *Service) OrderPaymentFailed(ctx context.Context, paymentIntentID string) (*domain.Order, error) {
	return s.transition(ctx, paymentIntentID, domain.OrderStatusPaymentFailed)
}

func (s *Service) transition(ctx context.Context, paymentIntentID string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.GetByPaymentIntentID(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}

	if s.monotone &&
		order.Status == domain.OrderStatusPaymentReceived &&
		status == domain.OrderStatusPaymentFailed {
		s.logger.Warn("ignoring payment_failed for order already marked received",
			zap.String("order_id", order.ID.String()),
			zap.String("payment_intent_id", paymentIntentID))
		return order, nil
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status

	s.logger.Info("order status updated",
		zap.String("order_id", order.ID.String()),
		zap.String("payment_intent_id", paymentIntentID),
		zap.String("status", string(status)))

	return order, nil
}

// minorUnits converts a decimal major-unit amount to integer minor units.
// This is the single point where monetary arithmetic leaves decimal.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
