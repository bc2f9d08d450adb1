package dto

import (
	"context"
	"time"

	"github.com/ricehouse/ricepos/internal/domain/product"
	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/ricehouse/ricepos/internal/types"
	"github.com/ricehouse/ricepos/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock" validate:"gte=0"`
}

type ProductResponse struct {
	*product.Product
}

func (r *CreateProductRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Price.LessThanOrEqual(decimal.Zero) {
		return ierr.NewError("invalid product price").
			WithHint("Price must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateProductRequest) ToProduct(ctx context.Context, id string) *product.Product {
	now := time.Now()
	return &product.Product{
		ID:        id,
		Name:      r.Name,
		Category:  r.Category,
		Price:     r.Price,
		Stock:     r.Stock,
		Status:    types.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
