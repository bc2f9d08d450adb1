package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	testCases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusConfirmed, OrderStatusPaid, true},
		{OrderStatusPending, OrderStatusPaid, false},
		{OrderStatusConfirmed, OrderStatusPending, false},
		{OrderStatusPaid, OrderStatusPending, false},
		{OrderStatusPaid, OrderStatusConfirmed, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusValidate(t *testing.T) {
	assert.True(t, OrderStatusPending.Validate())
	assert.True(t, OrderStatusConfirmed.Validate())
	assert.True(t, OrderStatusPaid.Validate())
	assert.False(t, OrderStatus("shipped").Validate())
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusConfirmed.IsTerminal())
	assert.True(t, OrderStatusPaid.IsTerminal())
}
