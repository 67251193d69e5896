package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	PictureURL  string          `json:"pictureUrl"`
	Brand       string          `json:"productBrand"`
	Type        string          `json:"productType"`
}

type DeliveryMethod struct {
	ID           int64           `json:"id"`
	ShortName    string          `json:"shortName"`
	DeliveryTime string          `json:"deliveryTime"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
}
