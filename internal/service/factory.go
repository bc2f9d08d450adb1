package service

import (
	"github.com/ricehouse/ricepos/internal/config"
	"github.com/ricehouse/ricepos/internal/domain/customer"
	"github.com/ricehouse/ricepos/internal/domain/employee"
	"github.com/ricehouse/ricepos/internal/domain/order"
	"github.com/ricehouse/ricepos/internal/domain/product"
	"github.com/ricehouse/ricepos/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	CustomerRepo customer.Repository
	ProductRepo  product.Repository
	OrderRepo    order.Repository
	EmployeeRepo employee.Repository
}

// NewServiceParams creates a new ServiceParams instance
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	customerRepo customer.Repository,
	productRepo product.Repository,
	orderRepo order.Repository,
	employeeRepo employee.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		CustomerRepo: customerRepo,
		ProductRepo:  productRepo,
		OrderRepo:    orderRepo,
		EmployeeRepo: employeeRepo,
	}
}
