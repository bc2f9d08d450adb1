package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ricehouse/ricepos/internal/api/dto"
	"github.com/ricehouse/ricepos/internal/config"
	"github.com/ricehouse/ricepos/internal/domain/employee"
	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/ricehouse/ricepos/internal/logger"
	"github.com/ricehouse/ricepos/internal/service"
)

// UI is the interactive console front end. It holds no business state and
// talks to the engine only through the public services.
type UI struct {
	logger *logger.Logger
	cfg    *config.Configuration

	customers service.CustomerService
	products  service.ProductService
	orders    service.OrderService
	employees service.EmployeeService

	// operator is the signed-in employee; orders created while set are
	// attributed to them
	operator *employee.Employee

	in  *bufio.Scanner
	out io.Writer
}

func New(cfg *config.Configuration, params service.ServiceParams, in io.Reader, out io.Writer) *UI {
	return &UI{
		logger:    params.Logger,
		cfg:       cfg,
		customers: service.NewCustomerService(params),
		products:  service.NewProductService(params),
		orders:    service.NewOrderService(params),
		employees: service.NewEmployeeService(params),
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run drives the main menu until the operator exits or input ends
func (u *UI) Run(ctx context.Context) error {
	for {
		fmt.Fprintf(u.out, "\n=== %s POS ===\n", u.cfg.Store.Name)
		fmt.Fprintln(u.out, "1. Customer login (shopping)")
		fmt.Fprintln(u.out, "2. Register new customer")
		fmt.Fprintln(u.out, "3. Customer profile")
		fmt.Fprintln(u.out, "4. Employee login")
		fmt.Fprintln(u.out, "5. Membership tiers")
		fmt.Fprintln(u.out, "6. Browse products")
		fmt.Fprintln(u.out, "7. Customers")
		fmt.Fprintln(u.out, "8. Orders")
		fmt.Fprintln(u.out, "0. Exit")

		choice, ok := u.promptInt("Choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case 1:
			u.login(ctx)
		case 2:
			u.register(ctx)
		case 3:
			u.profile(ctx)
		case 4:
			u.employeeLogin(ctx)
		case 5:
			u.showTiers()
		case 6:
			u.browseProducts(ctx)
		case 7:
			u.listCustomers(ctx)
		case 8:
			u.listOrders(ctx)
		case 0:
			return nil
		default:
			fmt.Fprintln(u.out, "Unknown choice")
		}
	}
}

func (u *UI) login(ctx context.Context) {
	phone, ok := u.prompt("Phone number: ")
	if !ok {
		return
	}

	cust, err := u.customers.FindByPhone(ctx, phone)
	if err != nil {
		u.showError(err)
		return
	}

	fmt.Fprintf(u.out, "Welcome back, %s (%s, %d points)\n",
		cust.Name, cust.Tier.Name, cust.Points)
	u.shop(ctx, cust)
}

func (u *UI) register(ctx context.Context) {
	name, ok := u.prompt("Name: ")
	if !ok {
		return
	}
	phone, ok := u.prompt("Phone number: ")
	if !ok {
		return
	}

	cust, err := u.customers.Register(ctx, dto.CreateCustomerRequest{Name: name, Phone: phone})
	if err != nil {
		u.showError(err)
		return
	}

	fmt.Fprintf(u.out, "Registered %s with phone %s\n", cust.Name, cust.Phone)
}

// profile looks a customer up by phone and shows their loyalty state and
// order history
func (u *UI) profile(ctx context.Context) {
	phone, ok := u.prompt("Phone number: ")
	if !ok {
		return
	}

	cust, err := u.customers.FindByPhone(ctx, phone)
	if err != nil {
		u.showError(err)
		return
	}

	u.renderProfile(ctx, cust)
}

// employeeLogin signs a staff member in by name; subsequent orders are
// attributed to them instead of the default sales clerk
func (u *UI) employeeLogin(ctx context.Context) {
	name, ok := u.prompt("Employee name: ")
	if !ok {
		return
	}

	emp, err := u.employees.GetByName(ctx, name)
	if err != nil {
		u.showError(err)
		u.renderStaffDirectory(ctx)
		return
	}

	role, err := u.employees.GetRole(ctx, emp.RoleID)
	if err != nil {
		u.showError(err)
		return
	}

	u.operator = emp
	fmt.Fprintf(u.out, "Signed in as %s (%s)\n", emp.Name, role.Name)
}

// shop runs the cart loop for a logged-in customer: add products with
// stock reservation, preview the quote, then settle at checkout.
func (u *UI) shop(ctx context.Context, cust *dto.CustomerResponse) {
	employeeID, err := u.attendingEmployee(ctx)
	if err != nil {
		u.showError(err)
		return
	}

	ord, err := u.orders.Create(ctx, dto.CreateOrderRequest{
		CustomerID: cust.Customer.ID,
		EmployeeID: employeeID,
	})
	if err != nil {
		u.showError(err)
		return
	}

	for {
		products, err := u.products.Search(ctx, "")
		if err != nil {
			u.showError(err)
			return
		}

		u.renderProducts(products)
		current, err := u.orders.Get(ctx, ord.ID)
		if err != nil {
			u.showError(err)
			return
		}
		u.renderCart(current.Order)

		if len(current.LineItems) > 0 {
			quote, err := u.orders.Quote(ctx, ord.ID)
			if err != nil {
				u.showError(err)
				return
			}
			fmt.Fprintf(u.out, "Quote (member discount applied): %s\n", u.money(quote))
		}

		choice, ok := u.promptInt("Product # to add, 0 to checkout, -1 to cancel: ")
		if !ok || choice == -1 {
			return
		}

		if choice == 0 {
			if len(current.LineItems) == 0 {
				fmt.Fprintln(u.out, "Cart is empty")
				continue
			}
			u.checkout(ctx, ord.ID)
			return
		}

		if choice < 1 || choice > len(products) {
			fmt.Fprintln(u.out, "No such product")
			continue
		}
		selected := products[choice-1]

		qty, ok := u.promptInt(fmt.Sprintf("Quantity of %s: ", selected.Name))
		if !ok {
			return
		}

		// Reserve stock before the line is added; the engine itself does
		// not touch the catalog
		if err := u.products.Reserve(ctx, selected.Product.ID, int64(qty)); err != nil {
			u.showError(err)
			continue
		}

		if _, err := u.orders.AddLineItem(ctx, dto.AddLineItemRequest{
			OrderID:   ord.ID,
			ProductID: selected.Product.ID,
			Quantity:  int64(qty),
		}); err != nil {
			u.showError(err)
			continue
		}

		fmt.Fprintf(u.out, "Added %s x%d\n", selected.Name, qty)
	}
}

func (u *UI) checkout(ctx context.Context, orderID string) {
	receipt, err := u.orders.Settle(ctx, orderID)
	if err != nil {
		u.showError(err)
		return
	}
	u.renderReceipt(ctx, receipt)
}

// attendingEmployee returns the signed-in operator, falling back to the
// first seeded employee so walk-in sales go to the default sales clerk
func (u *UI) attendingEmployee(ctx context.Context) (string, error) {
	if u.operator != nil {
		return u.operator.ID, nil
	}

	employees, err := u.employees.List(ctx)
	if err != nil {
		return "", err
	}
	if len(employees) == 0 {
		return "", ierr.NewError("no employees configured").
			WithHint("Seed or register at least one employee first").
			Mark(ierr.ErrNotFound)
	}
	return employees[0].ID, nil
}

func (u *UI) browseProducts(ctx context.Context) {
	keyword, ok := u.prompt("Search keyword (empty for all): ")
	if !ok {
		return
	}

	products, err := u.products.Search(ctx, keyword)
	if err != nil {
		u.showError(err)
		return
	}
	u.renderProducts(products)
}

func (u *UI) prompt(label string) (string, bool) {
	fmt.Fprint(u.out, label)
	if !u.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(u.in.Text()), true
}

func (u *UI) promptInt(label string) (int, bool) {
	for {
		text, ok := u.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(u.out, "Enter a number")
			continue
		}
		return n, true
	}
}

func (u *UI) showError(err error) {
	if hint := ierr.Hint(err); hint != "" {
		fmt.Fprintf(u.out, "! %s\n", hint)
		return
	}
	fmt.Fprintf(u.out, "! %s\n", err.Error())
}
