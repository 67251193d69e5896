package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bambyboi/skinet/internal/basket"
	"github.com/Bambyboi/skinet/internal/domain"
)

// storeMock implements basket.Store
type storeMock struct {
	baskets map[string]*domain.Basket
	err     error
}

func newStoreMock() *storeMock {
	return &storeMock{baskets: make(map[string]*domain.Basket)}
}

func (s *storeMock) Get(_ context.Context, basketID string) (*domain.Basket, error) {
	if s.err != nil {
		return nil, s.err
	}
	b, ok := s.baskets[basketID]
	if !ok {
		return nil, basket.ErrBasketNotFound
	}
	return b, nil
}

func (s *storeMock) Set(_ context.Context, b *domain.Basket) error {
	if s.err != nil {
		return s.err
	}
	s.baskets[b.ID] = b
	return nil
}

func (s *storeMock) Delete(_ context.Context, basketID string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.baskets, basketID)
	return nil
}

func TestGetBasket_Existing(t *testing.T) {
	store := newStoreMock()
	store.baskets["basket-1"] = &domain.Basket{
		ID:    "basket-1",
		Items: []domain.BasketItem{{ProductID: 1, Price: decimal.RequireFromString("10.00"), Quantity: 2}},
	}
	handler := NewBasketHandler(store, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/basket?id=basket-1", nil)
	handler.GetBasket(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response domain.Basket
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "basket-1", response.ID)
	assert.Len(t, response.Items, 1)
}

func TestGetBasket_MissingReturnsEmptyBasket(t *testing.T) {
	handler := NewBasketHandler(newStoreMock(), 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/basket?id=fresh-id", nil)
	handler.GetBasket(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response domain.Basket
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "fresh-id", response.ID)
	assert.Empty(t, response.Items)
}

func TestGetBasket_MissingIDParam(t *testing.T) {
	handler := NewBasketHandler(newStoreMock(), 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/basket", nil)
	handler.GetBasket(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateBasket_StoresBasket(t *testing.T) {
	store := newStoreMock()
	handler := NewBasketHandler(store, 5*time.Second)

	body := `{"id":"basket-1","items":[{"id":1,"price":"10.00","quantity":2}],"shippingPrice":"0"}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/basket", strings.NewReader(body))
	handler.UpdateBasket(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	stored, ok := store.baskets["basket-1"]
	require.True(t, ok)
	assert.Equal(t, 2, stored.Items[0].Quantity)
}

func TestUpdateBasket_RejectsZeroQuantity(t *testing.T) {
	store := newStoreMock()
	handler := NewBasketHandler(store, 5*time.Second)

	body := `{"id":"basket-1","items":[{"id":1,"price":"10.00","quantity":0}],"shippingPrice":"0"}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/basket", strings.NewReader(body))
	handler.UpdateBasket(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, store.baskets)
}

func TestUpdateBasket_InvalidJSON(t *testing.T) {
	handler := NewBasketHandler(newStoreMock(), 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/basket", strings.NewReader("{not json"))
	handler.UpdateBasket(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDeleteBasket(t *testing.T) {
	store := newStoreMock()
	store.baskets["basket-1"] = &domain.Basket{ID: "basket-1"}
	handler := NewBasketHandler(store, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("DELETE", "/api/basket?id=basket-1", nil)
	handler.DeleteBasket(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, store.baskets)
}
