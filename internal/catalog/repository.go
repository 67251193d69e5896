package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Bambyboi/skinet/internal/domain"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetProductPrice(ctx context.Context, productID int64) (decimal.Decimal, error) {
	query := `SELECT price FROM products WHERE id = $1`

	var price string
	err := r.db.QueryRowContext(ctx, query, productID).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, ErrProductNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("query product price: %w", err)
	}

	d, err := decimal.NewFromString(price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse product price: %w", err)
	}
	return d, nil
}

func (r *Repository) GetDeliveryMethod(ctx context.Context, deliveryMethodID int64) (*domain.DeliveryMethod, error) {
	query := `SELECT id, short_name, delivery_time, description, price
	          FROM delivery_methods WHERE id = $1`

	var dm domain.DeliveryMethod
	var price string
	err := r.db.QueryRowContext(ctx, query, deliveryMethodID).Scan(
		&dm.ID,
		&dm.ShortName,
		&dm.DeliveryTime,
		&dm.Description,
		&price,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDeliveryMethodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query delivery method: %w", err)
	}

	dm.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse delivery method price: %w", err)
	}
	return &dm, nil
}

func (r *Repository) ListDeliveryMethods(ctx context.Context) ([]*domain.DeliveryMethod, error) {
	query := `SELECT id, short_name, delivery_time, description, price
	          FROM delivery_methods ORDER BY price DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query delivery methods: %w", err)
	}
	defer rows.Close()

	var methods []*domain.DeliveryMethod
	for rows.Next() {
		var dm domain.DeliveryMethod
		var price string
		if err := rows.Scan(&dm.ID, &dm.ShortName, &dm.DeliveryTime, &dm.Description, &price); err != nil {
			return nil, fmt.Errorf("scan delivery method row: %w", err)
		}
		dm.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("parse delivery method price: %w", err)
		}
		methods = append(methods, &dm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return methods, nil
}
