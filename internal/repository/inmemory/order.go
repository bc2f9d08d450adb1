package inmemory

import (
	"context"

	"github.com/ricehouse/ricepos/internal/domain/order"
	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/samber/lo"
)

// OrderRepository implements order.Repository
type OrderRepository struct {
	store *Store[*order.Order]
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		store: NewStore[*order.Order](),
	}
}

func copyOrder(o *order.Order) *order.Order {
	if o == nil {
		return nil
	}
	copied := *o
	copied.LineItems = lo.Map(o.LineItems, func(li *order.LineItem, _ int) *order.LineItem {
		liCopy := *li
		return &liCopy
	})
	return &copied
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	return r.store.Create(ctx, o.ID, copyOrder(o))
}

func (r *OrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	o, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Order %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyOrder(o), nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	orders, err := r.store.List(ctx, nil, func(i, j *order.Order) bool {
		return i.CreatedAt.Before(j.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(orders, func(o *order.Order, _ int) *order.Order {
		return copyOrder(o)
	}), nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	orders, err := r.store.List(ctx, func(ctx context.Context, o *order.Order) bool {
		return o.CustomerID == customerID
	}, func(i, j *order.Order) bool {
		return i.CreatedAt.Before(j.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(orders, func(o *order.Order, _ int) *order.Order {
		return copyOrder(o)
	}), nil
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	return r.store.Update(ctx, o.ID, copyOrder(o))
}
