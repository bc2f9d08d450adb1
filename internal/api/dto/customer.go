package dto

import (
	"context"
	"time"

	"github.com/ricehouse/ricepos/internal/domain/customer"
	"github.com/ricehouse/ricepos/internal/domain/tier"
	"github.com/ricehouse/ricepos/internal/validator"
)

type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type CustomerResponse struct {
	*customer.Customer
	Tier tier.Tier `json:"tier"`
}

func (r *CreateCustomerRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateCustomerRequest) ToCustomer(ctx context.Context, id string) *customer.Customer {
	now := time.Now()
	return &customer.Customer{
		ID:        id,
		Name:      r.Name,
		Phone:     r.Phone,
		Points:    0,
		TierID:    tier.ForPoints(0).ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewCustomerResponse builds a response with the re-derived tier attached
func NewCustomerResponse(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		Customer: c,
		Tier:     c.CurrentTier(),
	}
}
