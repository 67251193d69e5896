package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Bambyboi/skinet/internal/basket"
	"github.com/Bambyboi/skinet/internal/catalog"
	"github.com/Bambyboi/skinet/internal/domain"
	"github.com/Bambyboi/skinet/internal/gateway"
	"github.com/Bambyboi/skinet/internal/orders"
)

// MockBasketStore implements basket.Store for testing
type MockBasketStore struct {
	Baskets  map[string]*domain.Basket
	GetErr   error
	SetErr   error
	SetCalls int
}

func NewMockBasketStore() *MockBasketStore {
	return &MockBasketStore{Baskets: make(map[string]*domain.Basket)}
}

func (m *MockBasketStore) Get(_ context.Context, basketID string) (*domain.Basket, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	b, ok := m.Baskets[basketID]
	if !ok {
		return nil, basket.ErrBasketNotFound
	}
	return b, nil
}

func (m *MockBasketStore) Set(_ context.Context, b *domain.Basket) error {
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Baskets[b.ID] = b
	return nil
}

func (m *MockBasketStore) Delete(_ context.Context, basketID string) error {
	delete(m.Baskets, basketID)
	return nil
}

// MockCatalog implements catalog.Reader for testing
type MockCatalog struct {
	Prices          map[int64]decimal.Decimal
	DeliveryMethods map[int64]*domain.DeliveryMethod
}

func (m *MockCatalog) GetProductPrice(_ context.Context, productID int64) (decimal.Decimal, error) {
	price, ok := m.Prices[productID]
	if !ok {
		return decimal.Zero, catalog.ErrProductNotFound
	}
	return price, nil
}

func (m *MockCatalog) GetDeliveryMethod(_ context.Context, deliveryMethodID int64) (*domain.DeliveryMethod, error) {
	dm, ok := m.DeliveryMethods[deliveryMethodID]
	if !ok {
		return nil, catalog.ErrDeliveryMethodNotFound
	}
	return dm, nil
}

func (m *MockCatalog) ListDeliveryMethods(_ context.Context) ([]*domain.DeliveryMethod, error) {
	var methods []*domain.DeliveryMethod
	for _, dm := range m.DeliveryMethods {
		methods = append(methods, dm)
	}
	return methods, nil
}

// MockOrderRepository implements orders.Repository for testing
type MockOrderRepository struct {
	Order         *domain.Order
	UpdateErr     error
	UpdatedStatus *domain.OrderStatus
	UpdateCalls   int
}

func (m *MockOrderRepository) Create(_ context.Context, _ *domain.Order) error {
	return nil
}

func (m *MockOrderRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	if m.Order != nil && m.Order.ID == id {
		return m.Order, nil
	}
	return nil, orders.ErrOrderNotFound
}

func (m *MockOrderRepository) GetByPaymentIntentID(_ context.Context, paymentIntentID string) (*domain.Order, error) {
	if m.Order != nil && m.Order.PaymentIntentID == paymentIntentID {
		return m.Order, nil
	}
	return nil, orders.ErrOrderNotFound
}

func (m *MockOrderRepository) UpdateStatus(_ context.Context, _ uuid.UUID, status domain.OrderStatus) error {
	m.UpdateCalls++
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.UpdatedStatus = &status
	return nil
}

// MockGateway implements gateway.PaymentGateway for testing
type MockGateway struct {
	CreateCalls      int
	UpdateCalls      int
	LastCreateAmount int64
	LastUpdateAmount int64
	LastUpdateID     string
	CreateErr        error
	UpdateErr        error
}

func (m *MockGateway) CreateIntent(_ context.Context, amount int64, currency string) (*gateway.Intent, error) {
	m.CreateCalls++
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.LastCreateAmount = amount
	return &gateway.Intent{
		ID:           "pi_test_1",
		ClientSecret: "pi_test_1_secret",
		Amount:       amount,
		Currency:     currency,
		Status:       "requires_payment_method",
	}, nil
}

func (m *MockGateway) UpdateIntent(_ context.Context, intentID string, amount int64) (*gateway.Intent, error) {
	m.UpdateCalls++
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	m.LastUpdateID = intentID
	m.LastUpdateAmount = amount
	return &gateway.Intent{
		ID:     intentID,
		Amount: amount,
	}, nil
}
