package service

import (
	"context"
	"time"

	"github.com/ricehouse/ricepos/internal/domain/employee"
	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/ricehouse/ricepos/internal/types"
)

// EmployeeService manages staff and their roles. Orders reference
// employees for attribution only.
type EmployeeService interface {
	Create(ctx context.Context, name string, roleID string) (*employee.Employee, error)
	CreateRole(ctx context.Context, name string, description string) (*employee.Role, error)
	GetByName(ctx context.Context, name string) (*employee.Employee, error)
	List(ctx context.Context) ([]*employee.Employee, error)
	GetRole(ctx context.Context, id string) (*employee.Role, error)
	ListRoles(ctx context.Context) ([]*employee.Role, error)
}

type employeeService struct {
	ServiceParams
}

func NewEmployeeService(params ServiceParams) EmployeeService {
	return &employeeService{
		ServiceParams: params,
	}
}

func (s *employeeService) Create(ctx context.Context, name string, roleID string) (*employee.Employee, error) {
	if name == "" {
		return nil, ierr.NewError("employee name is required").
			WithHint("Provide a name for the employee").
			Mark(ierr.ErrValidation)
	}

	if _, err := s.EmployeeRepo.GetRole(ctx, roleID); err != nil {
		return nil, err
	}

	now := time.Now()
	emp := &employee.Employee{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EMPLOYEE),
		Name:      name,
		RoleID:    roleID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.EmployeeRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) CreateRole(ctx context.Context, name string, description string) (*employee.Role, error) {
	if name == "" {
		return nil, ierr.NewError("role name is required").
			WithHint("Provide a name for the role").
			Mark(ierr.ErrValidation)
	}

	role := &employee.Role{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ROLE),
		Name:        name,
		Description: description,
	}

	if err := s.EmployeeRepo.CreateRole(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

func (s *employeeService) GetByName(ctx context.Context, name string) (*employee.Employee, error) {
	return s.EmployeeRepo.GetByName(ctx, name)
}

func (s *employeeService) List(ctx context.Context) ([]*employee.Employee, error) {
	return s.EmployeeRepo.List(ctx)
}

func (s *employeeService) GetRole(ctx context.Context, id string) (*employee.Role, error) {
	return s.EmployeeRepo.GetRole(ctx, id)
}

func (s *employeeService) ListRoles(ctx context.Context) ([]*employee.Role, error) {
	return s.EmployeeRepo.ListRoles(ctx)
}
