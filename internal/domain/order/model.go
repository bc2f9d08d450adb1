package order

import (
	"time"

	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/ricehouse/ricepos/internal/types"
	"github.com/shopspring/decimal"
)

// Order is the aggregate root for a single purchase. It exclusively owns
// its line items; customer and employee are referenced by id only.
type Order struct {
	// ID is the unique identifier for the order
	ID string `json:"id"`

	// ReceiptNumber is the short human-facing id printed on receipts
	ReceiptNumber string `json:"receipt_number"`

	// CustomerID references the purchasing customer
	CustomerID string `json:"customer_id"`

	// EmployeeID references the employee who handled the order
	EmployeeID string `json:"employee_id"`

	// Status is the checkout lifecycle state
	Status types.OrderStatus `json:"status"`

	// TotalAmount is the canonical charged amount, fixed at settlement:
	// subtotal minus discounts, before VAT. VAT appears only on the
	// receipt (see ReceiptTotals).
	TotalAmount decimal.Decimal `json:"total_amount"`

	// LineItems are the products in the order, in insertion order
	LineItems []*LineItem `json:"line_items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineItem is one product-quantity entry within an order. Immutable once
// appended: the unit price is captured at add time.
type LineItem struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`

	// ProductName is denormalized for receipt display
	ProductName string `json:"product_name"`

	Quantity int64 `json:"quantity"`

	// UnitPrice is the product price at the instant the line was added
	UnitPrice decimal.Decimal `json:"unit_price"`

	// DiscountPercent is a per-line discount. Always zero today; reserved
	// for per-product promotions.
	DiscountPercent decimal.Decimal `json:"discount_percent"`

	// LineTotal is UnitPrice * Quantity
	LineTotal decimal.Decimal `json:"line_total"`
}

// Subtotal sums the line totals before any order-level discount
func (o *Order) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, li := range o.LineItems {
		subtotal = subtotal.Add(li.LineTotal)
	}
	return subtotal
}

// TransitionTo moves the order to the target status, enforcing the
// pending -> confirmed -> paid state machine.
func (o *Order) TransitionTo(target types.OrderStatus) error {
	if !target.Validate() {
		return ierr.NewError("unknown order status").
			WithHintf("'%s' is not a valid order status", target).
			Mark(ierr.ErrValidation)
	}
	if !o.Status.CanTransitionTo(target) {
		return ierr.NewError("invalid order status transition").
			WithHintf("Order %s cannot move from %s to %s", o.ID, o.Status, target).
			Mark(ierr.ErrInvalidOperation)
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// ReceiptTotals is the display-only money breakdown produced at settlement.
// GrandTotalWithVAT is what the receipt shows as the grand total; the
// order's canonical TotalAmount stays pre-VAT.
type ReceiptTotals struct {
	Subtotal          decimal.Decimal `json:"subtotal"`
	CustomerDiscount  decimal.Decimal `json:"customer_discount"`
	OrderDiscount     decimal.Decimal `json:"order_discount"`
	VATAmount         decimal.Decimal `json:"vat_amount"`
	GrandTotalWithVAT decimal.Decimal `json:"grand_total_with_vat"`
	PointsEarned      int64           `json:"points_earned"`
}
