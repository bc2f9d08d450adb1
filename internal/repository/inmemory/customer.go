package inmemory

import (
	"context"
	"strings"

	"github.com/ricehouse/ricepos/internal/domain/customer"
	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/samber/lo"
)

// CustomerRepository implements customer.Repository
type CustomerRepository struct {
	store *Store[*customer.Customer]
}

// NewCustomerRepository creates a new in-memory customer repository
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		store: NewStore[*customer.Customer](),
	}
}

func copyCustomer(c *customer.Customer) *customer.Customer {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return r.store.Create(ctx, c.ID, copyCustomer(c))
}

func (r *CustomerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	c, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Customer %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyCustomer(c), nil
}

func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	matches, err := r.store.List(ctx, func(ctx context.Context, c *customer.Customer) bool {
		return strings.TrimSpace(c.Phone) == phone
	}, nil)
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return nil, ierr.NewError("customer not found").
			WithHintf("No customer registered with phone %s", phone).
			Mark(ierr.ErrNotFound)
	}

	return copyCustomer(matches[0]), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	customers, err := r.store.List(ctx, nil, func(i, j *customer.Customer) bool {
		return i.CreatedAt.Before(j.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(customers, func(c *customer.Customer, _ int) *customer.Customer {
		return copyCustomer(c)
	}), nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return r.store.Update(ctx, c.ID, copyCustomer(c))
}
