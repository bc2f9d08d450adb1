package service

import (
	"context"
	"time"

	"github.com/ricehouse/ricepos/internal/api/dto"
	"github.com/ricehouse/ricepos/internal/domain/order"
	"github.com/ricehouse/ricepos/internal/domain/tier"
	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/ricehouse/ricepos/internal/types"
	"github.com/shopspring/decimal"
)

// OrderService owns the order lifecycle and all money computation:
// subtotal, member discount, VAT and the final payable total.
type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	AddLineItem(ctx context.Context, req dto.AddLineItemRequest) (*dto.OrderResponse, error)
	Quote(ctx context.Context, orderID string) (decimal.Decimal, error)
	Settle(ctx context.Context, orderID string) (*dto.ReceiptResponse, error)
	UpdateStatus(ctx context.Context, orderID string, status types.OrderStatus) (*dto.OrderResponse, error)
	Get(ctx context.Context, orderID string) (*dto.OrderResponse, error)
	List(ctx context.Context) ([]*order.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)
}

type orderService struct {
	ServiceParams
}

func NewOrderService(params ServiceParams) OrderService {
	return &orderService{
		ServiceParams: params,
	}
}

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.CustomerRepo.Get(ctx, req.CustomerID); err != nil {
		return nil, err
	}
	if _, err := s.EmployeeRepo.Get(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	now := time.Now()
	o := &order.Order{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER),
		ReceiptNumber: types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_RECEIPT),
		CustomerID:    req.CustomerID,
		EmployeeID:    req.EmployeeID,
		Status:        types.OrderStatusPending,
		TotalAmount:   decimal.Zero,
		LineItems:     []*order.LineItem{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.OrderRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.Logger.Debugw("created order", "order_id", o.ID, "customer_id", o.CustomerID)
	return &dto.OrderResponse{Order: o}, nil
}

// AddLineItem appends a line capturing the product's price at this
// instant; later price changes never touch existing lines. Stock must
// already be reserved by the caller through the catalog.
func (s *orderService) AddLineItem(ctx context.Context, req dto.AddLineItemRequest) (*dto.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o, err := s.OrderRepo.Get(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if o.Status != types.OrderStatusPending {
		return nil, ierr.NewError("order is not open").
			WithHintf("Order %s is %s; items can only be added while pending", o.ID, o.Status).
			Mark(ierr.ErrInvalidOperation)
	}

	prod, err := s.ProductRepo.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	qty := decimal.NewFromInt(req.Quantity)
	o.LineItems = append(o.LineItems, &order.LineItem{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER_LINE_ITEM),
		OrderID:         o.ID,
		ProductID:       prod.ID,
		ProductName:     prod.Name,
		Quantity:        req.Quantity,
		UnitPrice:       prod.Price,
		DiscountPercent: decimal.Zero,
		LineTotal:       prod.Price.Mul(qty),
	})
	o.UpdatedAt = time.Now()

	if err := s.OrderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	return &dto.OrderResponse{Order: o}, nil
}

// Quote computes a non-committing preview total while shopping: subtotal
// minus the member discount. VAT is applied only at settlement.
func (s *orderService) Quote(ctx context.Context, orderID string) (decimal.Decimal, error) {
	o, err := s.OrderRepo.Get(ctx, orderID)
	if err != nil {
		return decimal.Zero, err
	}

	cust, err := s.CustomerRepo.Get(ctx, o.CustomerID)
	if err != nil {
		return decimal.Zero, err
	}

	subtotal := o.Subtotal()
	discount := memberDiscount(subtotal, tier.ForPoints(cust.Points))
	return subtotal.Sub(discount), nil
}

// Settle runs the checkout algorithm exactly once per order: fix the
// discounted pre-VAT total, walk the status machine to paid, and credit
// loyalty points. The points for this purchase are credited after the
// total is fixed, so this purchase's discount always uses the tier held
// before it.
func (s *orderService) Settle(ctx context.Context, orderID string) (*dto.ReceiptResponse, error) {
	o, err := s.OrderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.Status != types.OrderStatusPending {
		return nil, ierr.NewError("order already settled").
			WithHintf("Order %s is %s and cannot be settled again", o.ID, o.Status).
			Mark(ierr.ErrInvalidOperation)
	}

	if len(o.LineItems) == 0 {
		return nil, ierr.NewError("order has no items").
			WithHint("Add at least one product before checkout").
			Mark(ierr.ErrValidation)
	}

	cust, err := s.CustomerRepo.Get(ctx, o.CustomerID)
	if err != nil {
		return nil, err
	}

	subtotal := o.Subtotal()

	// Tier is re-derived from live points at settlement time, never read
	// from the stored tier id
	memberTier := tier.ForPoints(cust.Points)
	customerDiscount := memberDiscount(subtotal, memberTier)
	orderDiscount := decimal.Zero // reserved for order-level promotions

	// The canonical charged amount is pre-VAT; VAT is computed for the
	// receipt only and never folded into TotalAmount
	o.TotalAmount = subtotal.Sub(customerDiscount).Sub(orderDiscount)

	if err := o.TransitionTo(types.OrderStatusConfirmed); err != nil {
		return nil, err
	}
	if err := s.OrderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err := o.TransitionTo(types.OrderStatusPaid); err != nil {
		return nil, err
	}
	if err := s.OrderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	// 1 point per PointsPerUnit currency units of the pre-VAT total,
	// truncating
	pointsEarned := o.TotalAmount.
		Div(decimal.NewFromInt(s.Config.Pricing.PointsPerUnit)).
		Floor().
		IntPart()

	ledger := NewCustomerService(s.ServiceParams)
	if _, err := ledger.AccruePoints(ctx, cust.ID, pointsEarned); err != nil {
		return nil, err
	}

	vatAmount := o.TotalAmount.Mul(decimal.NewFromFloat(s.Config.Pricing.VATRate))

	s.Logger.Infow("settled order",
		"order_id", o.ID,
		"receipt", o.ReceiptNumber,
		"subtotal", subtotal,
		"discount", customerDiscount,
		"total", o.TotalAmount,
		"points_earned", pointsEarned)

	return &dto.ReceiptResponse{
		Order: o,
		Totals: order.ReceiptTotals{
			Subtotal:          subtotal,
			CustomerDiscount:  customerDiscount,
			OrderDiscount:     orderDiscount,
			VATAmount:         vatAmount,
			GrandTotalWithVAT: o.TotalAmount.Add(vatAmount),
			PointsEarned:      pointsEarned,
		},
		CustomerName: cust.Name,
		TierName:     memberTier.Name,
	}, nil
}

// UpdateStatus moves an order along the pending -> confirmed -> paid
// machine; any other transition is rejected.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, status types.OrderStatus) (*dto.OrderResponse, error) {
	o, err := s.OrderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := o.TransitionTo(status); err != nil {
		return nil, err
	}

	if err := s.OrderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	return &dto.OrderResponse{Order: o}, nil
}

func (s *orderService) Get(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	o, err := s.OrderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &dto.OrderResponse{Order: o}, nil
}

func (s *orderService) List(ctx context.Context) ([]*order.Order, error) {
	return s.OrderRepo.List(ctx)
}

// ListByCustomer returns a customer's order history, oldest first
func (s *orderService) ListByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	if _, err := s.CustomerRepo.Get(ctx, customerID); err != nil {
		return nil, err
	}
	return s.OrderRepo.ListByCustomer(ctx, customerID)
}

// memberDiscount is the order-level tier discount: subtotal * percent/100
func memberDiscount(subtotal decimal.Decimal, t tier.Tier) decimal.Decimal {
	if t.DiscountPercent.IsZero() {
		return decimal.Zero
	}
	return subtotal.Mul(t.DiscountPercent).Div(decimal.NewFromInt(100))
}
