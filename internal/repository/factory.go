package repository

import (
	"github.com/ricehouse/ricepos/internal/domain/customer"
	"github.com/ricehouse/ricepos/internal/domain/employee"
	"github.com/ricehouse/ricepos/internal/domain/order"
	"github.com/ricehouse/ricepos/internal/domain/product"
	"github.com/ricehouse/ricepos/internal/repository/inmemory"
)

// The POS keeps all state in process memory for the lifetime of a session;
// these constructors are the single place a storage backend is chosen.

func NewCustomerRepository() customer.Repository {
	return inmemory.NewCustomerRepository()
}

func NewProductRepository() product.Repository {
	return inmemory.NewProductRepository()
}

func NewOrderRepository() order.Repository {
	return inmemory.NewOrderRepository()
}

func NewEmployeeRepository() employee.Repository {
	return inmemory.NewEmployeeRepository()
}
