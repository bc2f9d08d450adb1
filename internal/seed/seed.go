package seed

import (
	"context"

	"github.com/ricehouse/ricepos/internal/api/dto"
	"github.com/ricehouse/ricepos/internal/logger"
	"github.com/ricehouse/ricepos/internal/service"
	"github.com/shopspring/decimal"
)

// Seeder loads sample data for an interactive session. Everything goes
// through the public services so seeded data obeys the same invariants as
// operator-entered data.
type Seeder struct {
	logger    *logger.Logger
	customers service.CustomerService
	products  service.ProductService
	employees service.EmployeeService
}

func NewSeeder(params service.ServiceParams) *Seeder {
	return &Seeder{
		logger:    params.Logger,
		customers: service.NewCustomerService(params),
		products:  service.NewProductService(params),
		employees: service.NewEmployeeService(params),
	}
}

// Run seeds roles, employees, the rice catalog and sample customers, then
// resyncs every customer's tier so the session starts consistent.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedEmployees(ctx); err != nil {
		return err
	}
	if err := s.seedProducts(ctx); err != nil {
		return err
	}
	if err := s.seedCustomers(ctx); err != nil {
		return err
	}

	return s.customers.ResyncAllTiers(ctx)
}

func (s *Seeder) seedEmployees(ctx context.Context) error {
	roles := []struct {
		name        string
		description string
	}{
		{"Sales", "Sells rice and advises customers"},
		{"Manager", "Runs the store and the staff"},
		{"Accountant", "Handles finances and reporting"},
	}

	employees := []struct {
		name string
		role string
	}{
		{"An", "Sales"},
		{"Binh", "Manager"},
		{"Chi", "Accountant"},
	}

	roleIDs := make(map[string]string, len(roles))
	for _, r := range roles {
		role, err := s.employees.CreateRole(ctx, r.name, r.description)
		if err != nil {
			return err
		}
		roleIDs[r.name] = role.ID
	}

	for _, e := range employees {
		if _, err := s.employees.Create(ctx, e.name, roleIDs[e.role]); err != nil {
			return err
		}
	}

	return nil
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	products := []dto.CreateProductRequest{
		{Name: "Gao ST25 5kg", Category: "Rice", Price: decimal.NewFromInt(180000), Stock: 50},
		{Name: "Gao Jasmine 10kg", Category: "Rice", Price: decimal.NewFromInt(320000), Stock: 25},
		{Name: "Gao Nang Thom 5kg", Category: "Rice", Price: decimal.NewFromInt(150000), Stock: 30},
		{Name: "Gao Tam Hai Hau 5kg", Category: "Rice", Price: decimal.NewFromInt(200000), Stock: 20},
		{Name: "Gao Nep Cai Hoa Vang 2kg", Category: "Sticky Rice", Price: decimal.NewFromInt(80000), Stock: 15},
	}

	for _, p := range products {
		if _, err := s.products.Add(ctx, p); err != nil {
			return err
		}
	}

	return nil
}

func (s *Seeder) seedCustomers(ctx context.Context) error {
	customers := []struct {
		name   string
		phone  string
		points int64
	}{
		{"Nguyen Van A", "0901234567", 0},
		{"Tran Thi B", "0901234568", 150},
		{"Le Van C", "0901234569", 0},
	}

	for _, c := range customers {
		resp, err := s.customers.Register(ctx, dto.CreateCustomerRequest{
			Name:  c.name,
			Phone: c.phone,
		})
		if err != nil {
			return err
		}
		if c.points > 0 {
			if _, err := s.customers.AccruePoints(ctx, resp.ID, c.points); err != nil {
				return err
			}
		}
	}

	s.logger.Infow("seeded sample data",
		"products", 5,
		"customers", len(customers),
		"employees", 3)
	return nil
}
