package inmemory

import (
	"context"
	"strings"

	"github.com/ricehouse/ricepos/internal/domain/employee"
	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/samber/lo"
)

// EmployeeRepository implements employee.Repository
type EmployeeRepository struct {
	employees *Store[*employee.Employee]
	roles     *Store[*employee.Role]
}

// NewEmployeeRepository creates a new in-memory employee repository
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		employees: NewStore[*employee.Employee](),
		roles:     NewStore[*employee.Role](),
	}
}

func copyEmployee(e *employee.Employee) *employee.Employee {
	if e == nil {
		return nil
	}
	copied := *e
	return &copied
}

func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	return r.employees.Create(ctx, e.ID, copyEmployee(e))
}

func (r *EmployeeRepository) Get(ctx context.Context, id string) (*employee.Employee, error) {
	e, err := r.employees.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Employee %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyEmployee(e), nil
}

func (r *EmployeeRepository) GetByName(ctx context.Context, name string) (*employee.Employee, error) {
	matches, err := r.employees.List(ctx, func(ctx context.Context, e *employee.Employee) bool {
		return strings.EqualFold(e.Name, name)
	}, nil)
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return nil, ierr.NewError("employee not found").
			WithHintf("No employee named %s", name).
			Mark(ierr.ErrNotFound)
	}

	return copyEmployee(matches[0]), nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	employees, err := r.employees.List(ctx, nil, func(i, j *employee.Employee) bool {
		return i.CreatedAt.Before(j.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(employees, func(e *employee.Employee, _ int) *employee.Employee {
		return copyEmployee(e)
	}), nil
}

func (r *EmployeeRepository) CreateRole(ctx context.Context, role *employee.Role) error {
	copied := *role
	return r.roles.Create(ctx, role.ID, &copied)
}

func (r *EmployeeRepository) GetRole(ctx context.Context, id string) (*employee.Role, error) {
	role, err := r.roles.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Role %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	copied := *role
	return &copied, nil
}

func (r *EmployeeRepository) ListRoles(ctx context.Context) ([]*employee.Role, error) {
	roles, err := r.roles.List(ctx, nil, func(i, j *employee.Role) bool {
		return i.ID < j.ID
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(roles, func(role *employee.Role, _ int) *employee.Role {
		copied := *role
		return &copied
	}), nil
}
