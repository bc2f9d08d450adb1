package dto

import (
	"github.com/ricehouse/ricepos/internal/domain/order"
	"github.com/ricehouse/ricepos/internal/validator"
)

type CreateOrderRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	EmployeeID string `json:"employee_id" validate:"required"`
}

type AddLineItemRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"gt=0"`
}

type OrderResponse struct {
	*order.Order
}

// ReceiptResponse is the settlement result handed to the presentation
// layer: the final order plus the display-only money breakdown.
type ReceiptResponse struct {
	Order  *order.Order        `json:"order"`
	Totals order.ReceiptTotals `json:"totals"`

	// CustomerName and TierName are denormalized for receipt rendering
	CustomerName string `json:"customer_name"`
	TierName     string `json:"tier_name"`
}

func (r *CreateOrderRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *AddLineItemRequest) Validate() error {
	return validator.ValidateRequest(r)
}
