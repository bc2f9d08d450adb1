// Test code for the customer ledger
package service

import (
	"context"
	"testing"
	"time"

	"github.com/ricehouse/ricepos/internal/api/dto"
	"github.com/ricehouse/ricepos/internal/config"
	"github.com/ricehouse/ricepos/internal/domain/customer"
	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/ricehouse/ricepos/internal/logger"
	"github.com/ricehouse/ricepos/internal/repository/inmemory"
	"github.com/ricehouse/ricepos/internal/types"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceSuite struct {
	suite.Suite
	ctx     context.Context
	params  ServiceParams
	service CustomerService
	repo    *inmemory.CustomerRepository
}

func TestCustomerService(t *testing.T) {
	suite.Run(t, new(CustomerServiceSuite))
}

func (s *CustomerServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = inmemory.NewCustomerRepository()

	log, err := logger.NewLogger(types.LogLevelError)
	s.Require().NoError(err)

	s.params = ServiceParams{
		Logger:       log,
		Config:       config.GetDefaultConfig(),
		CustomerRepo: s.repo,
		ProductRepo:  inmemory.NewProductRepository(),
		OrderRepo:    inmemory.NewOrderRepository(),
		EmployeeRepo: inmemory.NewEmployeeRepository(),
	}
	s.service = NewCustomerService(s.params)
}

// seedCustomer inserts a customer directly, bypassing the service, to set
// up drifted or pre-pointed states
func (s *CustomerServiceSuite) seedCustomer(name, phone string, points int64, tierID int) *customer.Customer {
	now := time.Now()
	c := &customer.Customer{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		Name:      name,
		Phone:     phone,
		Points:    points,
		TierID:    tierID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Require().NoError(s.repo.Create(s.ctx, c))
	return c
}

func (s *CustomerServiceSuite) TestRegister() {
	testCases := []struct {
		name          string
		request       dto.CreateCustomerRequest
		expectedError bool
		errorCheck    func(error) bool
	}{
		{
			name:    "successful_registration",
			request: dto.CreateCustomerRequest{Name: "Nguyen Van A", Phone: "0901234567"},
		},
		{
			name:          "empty_name",
			request:       dto.CreateCustomerRequest{Name: "", Phone: "0909999999"},
			expectedError: true,
			errorCheck:    ierr.IsValidation,
		},
		{
			name:          "empty_phone",
			request:       dto.CreateCustomerRequest{Name: "Tran Thi B", Phone: ""},
			expectedError: true,
			errorCheck:    ierr.IsValidation,
		},
		{
			name:          "duplicate_phone",
			request:       dto.CreateCustomerRequest{Name: "Le Van C", Phone: "0901234567"},
			expectedError: true,
			errorCheck:    ierr.IsAlreadyExists,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.Register(s.ctx, tc.request)
			if tc.expectedError {
				s.Error(err)
				s.True(tc.errorCheck(err))
				return
			}
			s.NoError(err)
			s.NotEmpty(resp.ID)
			s.Equal(int64(0), resp.Points)
			s.Equal(1, resp.TierID)
			s.Equal("Standard", resp.Tier.Name)
		})
	}
}

func (s *CustomerServiceSuite) TestFindByPhoneNormalizesInput() {
	s.seedCustomer("Nguyen Van A", "0901234567", 0, 1)

	resp, err := s.service.FindByPhone(s.ctx, " 0901234567\r\n")
	s.NoError(err)
	s.Equal("Nguyen Van A", resp.Name)

	_, err = s.service.FindByPhone(s.ctx, "0000000000")
	s.True(ierr.IsNotFound(err))

	_, err = s.service.FindByPhone(s.ctx, "  \r\n")
	s.True(ierr.IsValidation(err))
}

func (s *CustomerServiceSuite) TestFindByPhoneResyncsTier() {
	// Stored tier drifted below the points-derived one
	s.seedCustomer("Tran Thi B", "0901234568", 150, 1)

	resp, err := s.service.FindByPhone(s.ctx, "0901234568")
	s.NoError(err)
	s.Equal(2, resp.TierID)
	s.Equal("Silver", resp.Tier.Name)

	// The correction is persisted
	stored, err := s.repo.GetByPhone(s.ctx, "0901234568")
	s.NoError(err)
	s.Equal(2, stored.TierID)
}

func (s *CustomerServiceSuite) TestAccruePointsPromotes() {
	c := s.seedCustomer("Le Van C", "0901234569", 0, 1)

	resp, err := s.service.AccruePoints(s.ctx, c.ID, 99)
	s.NoError(err)
	s.Equal(int64(99), resp.Points)
	s.Equal(1, resp.TierID)

	resp, err = s.service.AccruePoints(s.ctx, c.ID, 1)
	s.NoError(err)
	s.Equal(int64(100), resp.Points)
	s.Equal(2, resp.TierID)

	resp, err = s.service.AccruePoints(s.ctx, c.ID, 900)
	s.NoError(err)
	s.Equal(int64(1000), resp.Points)
	s.Equal(4, resp.TierID)
}

func (s *CustomerServiceSuite) TestAccruePointsNeverDemotes() {
	c := s.seedCustomer("Pham Thi D", "0901234570", 600, 3)

	// A negative delta drops the balance below the Gold threshold, but
	// the tier ratchet holds
	resp, err := s.service.AccruePoints(s.ctx, c.ID, -550)
	s.NoError(err)
	s.Equal(int64(50), resp.Points)
	s.Equal(3, resp.TierID)
}

func (s *CustomerServiceSuite) TestAccruePointsUnknownCustomer() {
	_, err := s.service.AccruePoints(s.ctx, "cust_missing", 10)
	s.True(ierr.IsNotFound(err))
}

func (s *CustomerServiceSuite) TestResyncAllTiers() {
	a := s.seedCustomer("A", "0901000001", 0, 1)
	b := s.seedCustomer("B", "0901000002", 150, 1)
	c := s.seedCustomer("C", "0901000003", 1200, 2)

	s.NoError(s.service.ResyncAllTiers(s.ctx))

	for id, expected := range map[string]int{a.ID: 1, b.ID: 2, c.ID: 4} {
		stored, err := s.repo.Get(s.ctx, id)
		s.NoError(err)
		s.Equal(expected, stored.TierID)
	}
}

func (s *CustomerServiceSuite) TestListAllCarriesDerivedTier() {
	s.seedCustomer("A", "0901000001", 550, 1)

	list, err := s.service.ListAll(s.ctx)
	s.NoError(err)
	s.Len(list, 1)
	s.Equal("Gold", list[0].Tier.Name)
}

func (s *CustomerServiceSuite) TestGetTier() {
	t, err := s.service.GetTier(s.ctx, 4)
	s.NoError(err)
	s.Equal("Diamond", t.Name)

	_, err = s.service.GetTier(s.ctx, 9)
	s.True(ierr.IsNotFound(err))
}
