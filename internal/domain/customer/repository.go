package customer

import (
	"context"
)

// Repository defines the interface for customer data access.
// Customers are never deleted in this system.
type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	Get(ctx context.Context, id string) (*Customer, error)
	GetByPhone(ctx context.Context, phone string) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
	Update(ctx context.Context, customer *Customer) error
}
