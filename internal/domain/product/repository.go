package product

import (
	"context"
)

// Repository defines the interface for product data access
type Repository interface {
	Create(ctx context.Context, product *Product) error
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, product *Product) error

	// DecrementStock atomically checks and decrements a product's stock.
	// The check and the write happen under one lock so stock can never
	// go negative; on insufficient stock nothing is changed.
	DecrementStock(ctx context.Context, id string, qty int64) error
}
