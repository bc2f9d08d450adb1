package types

// Status is a type for the lifecycle status of a catalog resource (e.g. product)
// This is used to determine if a resource should be offered for sale
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// OrderStatus tracks an order through its checkout lifecycle.
// The only legal path is pending -> confirmed -> paid; paid is terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPaid      OrderStatus = "paid"
)

// orderStatusTransitions is the full transition table for OrderStatus.
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed},
	OrderStatusConfirmed: {OrderStatusPaid},
	OrderStatusPaid:      {},
}

// Validate checks if the order status is a known status
func (s OrderStatus) Validate() bool {
	_, ok := orderStatusTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to target is a legal transition
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range orderStatusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions
func (s OrderStatus) IsTerminal() bool {
	return len(orderStatusTransitions[s]) == 0
}
