package domain

import "github.com/shopspring/decimal"

type BasketItem struct {
	ProductID   int64           `json:"id"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	PictureURL  string          `json:"pictureUrl"`
	Brand       string          `json:"brand"`
	Type        string          `json:"type"`
}

// Basket is the customer's session basket. PaymentIntentID and ClientSecret
// are either both set or both empty.
type Basket struct {
	ID               string          `json:"id"`
	Items            []BasketItem    `json:"items"`
	DeliveryMethodID *int64          `json:"deliveryMethodId,omitempty"`
	ShippingPrice    decimal.Decimal `json:"shippingPrice"`
	PaymentIntentID  string          `json:"paymentIntentId,omitempty"`
	ClientSecret     string          `json:"clientSecret,omitempty"`
}

// Subtotal sums item price times quantity in decimal.
func (b *Basket) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range b.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

// Total is subtotal plus shipping.
func (b *Basket) Total() decimal.Decimal {
	return b.Subtotal().Add(b.ShippingPrice)
}
