package service

import (
	"context"
	"strings"
	"time"

	"github.com/ricehouse/ricepos/internal/api/dto"
	"github.com/ricehouse/ricepos/internal/domain/customer"
	"github.com/ricehouse/ricepos/internal/domain/tier"
	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/ricehouse/ricepos/internal/types"
	"github.com/samber/lo"
)

// CustomerService is the loyalty ledger: identity plus point balance and
// tier state for every member.
type CustomerService interface {
	Register(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Get(ctx context.Context, customerID string) (*dto.CustomerResponse, error)
	FindByPhone(ctx context.Context, phone string) (*dto.CustomerResponse, error)
	AccruePoints(ctx context.Context, customerID string, delta int64) (*dto.CustomerResponse, error)
	ResyncAllTiers(ctx context.Context) error
	ListAll(ctx context.Context) ([]*dto.CustomerResponse, error)
	GetTier(ctx context.Context, tierID int) (tier.Tier, error)
}

type customerService struct {
	ServiceParams
}

func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{
		ServiceParams: params,
	}
}

func (s *customerService) Register(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	req.Phone = normalizePhone(req.Phone)
	if req.Phone == "" {
		return nil, ierr.NewError("phone is required").
			WithHint("A phone number is required to register").
			Mark(ierr.ErrValidation)
	}

	// Phone is the login key and must stay unique across the ledger
	if existing, err := s.CustomerRepo.GetByPhone(ctx, req.Phone); err == nil && existing != nil {
		return nil, ierr.NewError("phone already registered").
			WithHintf("A customer with phone %s already exists", req.Phone).
			Mark(ierr.ErrAlreadyExists)
	}

	cust := req.ToCustomer(ctx, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER))
	if err := s.CustomerRepo.Create(ctx, cust); err != nil {
		return nil, err
	}

	s.Logger.Infow("registered customer", "customer_id", cust.ID, "phone", cust.Phone)
	return dto.NewCustomerResponse(cust), nil
}

func (s *customerService) Get(ctx context.Context, customerID string) (*dto.CustomerResponse, error) {
	cust, err := s.CustomerRepo.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return dto.NewCustomerResponse(cust), nil
}

func (s *customerService) FindByPhone(ctx context.Context, phone string) (*dto.CustomerResponse, error) {
	phone = normalizePhone(phone)
	if phone == "" {
		return nil, ierr.NewError("phone is required").
			WithHint("Enter a phone number to look up").
			Mark(ierr.ErrValidation)
	}

	cust, err := s.CustomerRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	// Correct any drift between the stored tier and the points-derived
	// tier before the customer is observed
	if cust.SyncTier() {
		cust.UpdatedAt = time.Now()
		if err := s.CustomerRepo.Update(ctx, cust); err != nil {
			return nil, err
		}
	}

	return dto.NewCustomerResponse(cust), nil
}

func (s *customerService) AccruePoints(ctx context.Context, customerID string, delta int64) (*dto.CustomerResponse, error) {
	cust, err := s.CustomerRepo.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	cust.Points += delta
	cust.UpdatedAt = time.Now()

	// Promotion is a ratchet: the tier only ever moves up, even when the
	// new balance would classify lower (e.g. a future refund path passing
	// a negative delta).
	derived := tier.ForPoints(cust.Points)
	if derived.ID > cust.TierID {
		cust.TierID = derived.ID
		s.Logger.Infow("customer promoted",
			"customer_id", cust.ID,
			"customer_name", cust.Name,
			"tier", derived.Name,
			"points", cust.Points)
	}

	if err := s.CustomerRepo.Update(ctx, cust); err != nil {
		return nil, err
	}

	return dto.NewCustomerResponse(cust), nil
}

func (s *customerService) ResyncAllTiers(ctx context.Context) error {
	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return err
	}

	for _, cust := range customers {
		if cust.SyncTier() {
			cust.UpdatedAt = time.Now()
			if err := s.CustomerRepo.Update(ctx, cust); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *customerService) ListAll(ctx context.Context) ([]*dto.CustomerResponse, error) {
	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(customers, func(c *customer.Customer, _ int) *dto.CustomerResponse {
		return dto.NewCustomerResponse(c)
	}), nil
}

func (s *customerService) GetTier(ctx context.Context, tierID int) (tier.Tier, error) {
	return tier.ByID(tierID)
}

// normalizePhone trims whitespace and strips stray CR/LF picked up from
// console input
func normalizePhone(phone string) string {
	phone = strings.ReplaceAll(phone, "\r", "")
	phone = strings.ReplaceAll(phone, "\n", "")
	return strings.TrimSpace(phone)
}
