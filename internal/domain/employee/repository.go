package employee

import (
	"context"
)

// Repository defines the interface for employee and role data access
type Repository interface {
	Create(ctx context.Context, employee *Employee) error
	Get(ctx context.Context, id string) (*Employee, error)
	GetByName(ctx context.Context, name string) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)

	CreateRole(ctx context.Context, role *Role) error
	GetRole(ctx context.Context, id string) (*Role, error)
	ListRoles(ctx context.Context) ([]*Role, error)
}
