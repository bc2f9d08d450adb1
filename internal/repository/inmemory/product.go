package inmemory

import (
	"context"
	"time"

	"github.com/ricehouse/ricepos/internal/domain/product"
	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/samber/lo"
)

// ProductRepository implements product.Repository
type ProductRepository struct {
	store *Store[*product.Product]
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		store: NewStore[*product.Product](),
	}
}

func copyProduct(p *product.Product) *product.Product {
	if p == nil {
		return nil
	}
	copied := *p
	return &copied
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	return r.store.Create(ctx, p.ID, copyProduct(p))
}

func (r *ProductRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	p, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Product %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyProduct(p), nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	products, err := r.store.List(ctx, nil, func(i, j *product.Product) bool {
		return i.CreatedAt.Before(j.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(products, func(p *product.Product, _ int) *product.Product {
		return copyProduct(p)
	}), nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	return r.store.Update(ctx, p.ID, copyProduct(p))
}

// DecrementStock performs the atomic check-then-decrement for stock
// reservation. The whole operation runs under the store's write lock, so
// stock can never go negative and there is no partial effect.
func (r *ProductRepository) DecrementStock(ctx context.Context, id string, qty int64) error {
	return r.store.WithLock(func(items map[string]*product.Product) error {
		p, exists := items[id]
		if !exists {
			return ierr.NewError("product not found").
				WithHintf("Product %s was not found", id).
				Mark(ierr.ErrNotFound)
		}

		if !p.HasStock(qty) {
			return ierr.NewError("insufficient stock").
				WithHintf("Product %s has %d in stock, requested %d", p.Name, p.Stock, qty).
				WithReportableDetails(map[string]any{
					"product_id": id,
					"available":  p.Stock,
					"requested":  qty,
				}).
				Mark(ierr.ErrInsufficientStock)
		}

		p.Stock -= qty
		p.UpdatedAt = time.Now()
		return nil
	})
}
