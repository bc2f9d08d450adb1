package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ricehouse/ricepos/internal/api/dto"
	"github.com/ricehouse/ricepos/internal/config"
	"github.com/ricehouse/ricepos/internal/logger"
	"github.com/ricehouse/ricepos/internal/repository/inmemory"
	"github.com/ricehouse/ricepos/internal/service"
	"github.com/ricehouse/ricepos/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI(t *testing.T, input string) (*UI, *bytes.Buffer) {
	t.Helper()

	log, err := logger.NewLogger(types.LogLevelError)
	require.NoError(t, err)

	cfg := config.GetDefaultConfig()
	params := service.ServiceParams{
		Logger:       log,
		Config:       cfg,
		CustomerRepo: inmemory.NewCustomerRepository(),
		ProductRepo:  inmemory.NewProductRepository(),
		OrderRepo:    inmemory.NewOrderRepository(),
		EmployeeRepo: inmemory.NewEmployeeRepository(),
	}

	out := &bytes.Buffer{}
	return New(cfg, params, strings.NewReader(input), out), out
}

func TestPromptIntRetriesUntilNumeric(t *testing.T) {
	u, out := newTestUI(t, "abc\nxyz\n42\n")

	n, ok := u.promptInt("Choice: ")
	assert.True(t, ok)
	assert.Equal(t, 42, n)
	assert.Equal(t, 2, strings.Count(out.String(), "Enter a number"))
}

func TestPromptIntStopsWhenInputEnds(t *testing.T) {
	u, _ := newTestUI(t, "garbage\n")

	_, ok := u.promptInt("Choice: ")
	assert.False(t, ok)
}

func TestEmployeeLoginAttributesOrders(t *testing.T) {
	u, out := newTestUI(t, "binh\n")
	ctx := context.Background()

	role, err := u.employees.CreateRole(ctx, "Manager", "Runs the store and the staff")
	require.NoError(t, err)
	_, err = u.employees.Create(ctx, "An", role.ID)
	require.NoError(t, err)
	binh, err := u.employees.Create(ctx, "Binh", role.ID)
	require.NoError(t, err)

	u.employeeLogin(ctx)
	require.NotNil(t, u.operator)
	assert.Equal(t, binh.ID, u.operator.ID)
	assert.Contains(t, out.String(), "Signed in as Binh (Manager)")

	// New orders go to the signed-in operator, not the default clerk
	id, err := u.attendingEmployee(ctx)
	require.NoError(t, err)
	assert.Equal(t, binh.ID, id)
}

func TestEmployeeLoginUnknownNameShowsDirectory(t *testing.T) {
	u, out := newTestUI(t, "nobody\n")
	ctx := context.Background()

	role, err := u.employees.CreateRole(ctx, "Sales", "Sells rice and advises customers")
	require.NoError(t, err)
	_, err = u.employees.Create(ctx, "An", role.ID)
	require.NoError(t, err)

	u.employeeLogin(ctx)
	assert.Nil(t, u.operator)
	assert.Contains(t, out.String(), "An")
	assert.Contains(t, out.String(), "Sales")
}

func TestProfileShowsOrderHistory(t *testing.T) {
	u, out := newTestUI(t, "0901234567\n")
	ctx := context.Background()

	cust, err := u.customers.Register(ctx, dto.CreateCustomerRequest{
		Name:  "Nguyen Van A",
		Phone: "0901234567",
	})
	require.NoError(t, err)

	role, err := u.employees.CreateRole(ctx, "Sales", "Sells rice and advises customers")
	require.NoError(t, err)
	emp, err := u.employees.Create(ctx, "An", role.ID)
	require.NoError(t, err)

	ord, err := u.orders.Create(ctx, dto.CreateOrderRequest{
		CustomerID: cust.Customer.ID,
		EmployeeID: emp.ID,
	})
	require.NoError(t, err)

	u.profile(ctx)
	assert.Contains(t, out.String(), "Nguyen Van A")
	assert.Contains(t, out.String(), ord.ReceiptNumber)
}

func TestProfileEmptyHistory(t *testing.T) {
	u, out := newTestUI(t, "0901234567\n")
	ctx := context.Background()

	_, err := u.customers.Register(ctx, dto.CreateCustomerRequest{
		Name:  "Nguyen Van A",
		Phone: "0901234567",
	})
	require.NoError(t, err)

	u.profile(ctx)
	assert.Contains(t, out.String(), "No orders yet")
}
