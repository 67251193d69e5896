package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Bambyboi/skinet/internal/domain"
	"github.com/Bambyboi/skinet/internal/orders"
)

// OrderUpdater applies order-status transitions keyed by payment-intent id.
type OrderUpdater interface {
	OrderPaymentSucceeded(ctx context.Context, paymentIntentID string) (*domain.Order, error)
	OrderPaymentFailed(ctx context.Context, paymentIntentID string) (*domain.Order, error)
}

// StatusPublisher broadcasts applied order-status changes to downstream
// consumers. Publishing is best-effort; failures never fail the webhook ack.
type StatusPublisher interface {
	PublishStatusChange(ctx context.Context, order *domain.Order) error
}

// Dispatcher consumes one inbound gateway event: verify the signature,
// classify the type, resolve the order and apply the transition exactly once.
type Dispatcher struct {
	secret    string
	tolerance time.Duration
	updater   OrderUpdater
	publisher StatusPublisher
	logger    *zap.Logger
}

type DispatcherOption func(*Dispatcher)

func WithTolerance(tolerance time.Duration) DispatcherOption {
	return func(d *Dispatcher) { d.tolerance = tolerance }
}

func WithPublisher(publisher StatusPublisher) DispatcherOption {
	return func(d *Dispatcher) { d.publisher = publisher }
}

func NewDispatcher(secret string, updater OrderUpdater, logger *zap.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		secret:    secret,
		tolerance: DefaultTolerance,
		updater:   updater,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle processes a raw event payload. A nil return means the event must be
// acknowledged to the gateway; ErrInvalidSignature means reject outright.
// Any other error is an internal fault and the gateway may redeliver.
func (d *Dispatcher) Handle(ctx context.Context, payload []byte, signatureHeader string) error {
	if err := VerifySignature(payload, signatureHeader, d.secret, d.tolerance); err != nil {
		return err
	}

	event, err := ParseEvent(payload)
	if err != nil {
		return fmt.Errorf("parse webhook event: %w", err)
	}

	var order *domain.Order
	switch event.Type {
	case EventPaymentSucceeded:
		d.logger.Info("payment succeeded", zap.String("payment_intent_id", event.IntentID))
		order, err = d.updater.OrderPaymentSucceeded(ctx, event.IntentID)
	case EventPaymentFailed:
		d.logger.Info("payment failed", zap.String("payment_intent_id", event.IntentID))
		order, err = d.updater.OrderPaymentFailed(ctx, event.IntentID)
	default:
		d.logger.Debug("ignoring webhook event type", zap.String("type", event.RawType))
		return nil
	}

	if errors.Is(err, orders.ErrOrderNotFound) {
		// The webhook can outrun order creation; ack so the gateway stops
		// retrying and leave a trace for reconciliation.
		d.logger.Warn("webhook event for unknown order",
			zap.String("type", event.RawType),
			zap.String("payment_intent_id", event.IntentID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("apply order transition: %w", err)
	}

	d.publish(ctx, order)
	return nil
}

func (d *Dispatcher) publish(ctx context.Context, order *domain.Order) {
	if d.publisher == nil {
		return
	}
	if err := d.publisher.PublishStatusChange(ctx, order); err != nil {
		d.logger.Error("failed to publish order status change",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
	}
}
