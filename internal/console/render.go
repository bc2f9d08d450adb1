package console

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/ricehouse/ricepos/internal/api/dto"
	"github.com/ricehouse/ricepos/internal/domain/employee"
	"github.com/ricehouse/ricepos/internal/domain/order"
	"github.com/ricehouse/ricepos/internal/domain/tier"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func (u *UI) renderProducts(products []*dto.ProductResponse) {
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tCATEGORY\tPRICE\tSTOCK")
	for i, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
			i+1, p.Name, p.Category, u.money(p.Price), p.Stock)
	}
	w.Flush()
}

func (u *UI) renderCart(o *order.Order) {
	if len(o.LineItems) == 0 {
		return
	}

	fmt.Fprintln(u.out, "\n--- Cart ---")
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tQTY\tUNIT PRICE\tTOTAL")
	for _, li := range o.LineItems {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			li.ProductName, li.Quantity, u.money(li.UnitPrice), u.money(li.LineTotal))
	}
	w.Flush()
}

func (u *UI) renderReceipt(ctx context.Context, receipt *dto.ReceiptResponse) {
	o := receipt.Order

	fmt.Fprintf(u.out, "\n========== RECEIPT %s ==========\n", o.ReceiptNumber)
	fmt.Fprintf(u.out, "Customer: %s (%s)\n", receipt.CustomerName, receipt.TierName)

	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	for _, li := range o.LineItems {
		fmt.Fprintf(w, "%s\tx%d\t%s\n", li.ProductName, li.Quantity, u.money(li.LineTotal))
	}
	w.Flush()

	fmt.Fprintln(u.out, strings.Repeat("-", 40))
	fmt.Fprintf(u.out, "Subtotal:        %s\n", u.money(receipt.Totals.Subtotal))
	fmt.Fprintf(u.out, "Member discount: -%s\n", u.money(receipt.Totals.CustomerDiscount))
	fmt.Fprintf(u.out, "Amount charged:  %s\n", u.money(o.TotalAmount))
	fmt.Fprintf(u.out, "VAT %.0f%%:          %s\n", u.cfg.Pricing.VATRate*100, u.money(receipt.Totals.VATAmount))
	fmt.Fprintf(u.out, "Grand total:     %s\n", u.money(receipt.Totals.GrandTotalWithVAT))
	fmt.Fprintf(u.out, "Points earned:   %d\n", receipt.Totals.PointsEarned)

	u.renderTierProgress(ctx, o.CustomerID)
	fmt.Fprintln(u.out, strings.Repeat("=", 40))
}

// renderTierProgress shows how far the customer is from the next tier
func (u *UI) renderTierProgress(ctx context.Context, customerID string) {
	c, err := u.customers.Get(ctx, customerID)
	if err != nil {
		return
	}

	next, ok := tier.Next(c.TierID)
	if !ok {
		fmt.Fprintf(u.out, "Tier: %s (highest)\n", c.Tier.Name)
		return
	}
	fmt.Fprintf(u.out, "Tier: %s, %d more points to %s\n",
		c.Tier.Name, next.MinPoints-c.Points, next.Name)
}

// renderProfile shows a customer's loyalty state and their full order
// history, oldest first
func (u *UI) renderProfile(ctx context.Context, cust *dto.CustomerResponse) {
	fmt.Fprintf(u.out, "\n--- %s ---\n", cust.Name)
	fmt.Fprintf(u.out, "Phone:  %s\n", cust.Phone)
	fmt.Fprintf(u.out, "Points: %d\n", cust.Points)
	u.renderTierProgress(ctx, cust.Customer.ID)

	orders, err := u.orders.ListByCustomer(ctx, cust.Customer.ID)
	if err != nil {
		u.showError(err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(u.out, "No orders yet")
		return
	}

	fmt.Fprintln(u.out, "Order history:")
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RECEIPT\tSTATUS\tITEMS\tTOTAL\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			o.ReceiptNumber, o.Status, len(o.LineItems),
			u.money(o.TotalAmount), o.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

// renderStaffDirectory lists staff with their roles, shown when an
// employee login attempt does not match anyone
func (u *UI) renderStaffDirectory(ctx context.Context) {
	employees, err := u.employees.List(ctx)
	if err != nil {
		return
	}
	roles, err := u.employees.ListRoles(ctx)
	if err != nil {
		return
	}
	roleNames := lo.SliceToMap(roles, func(r *employee.Role) (string, string) {
		return r.ID, r.Name
	})

	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tROLE")
	for _, e := range employees {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, roleNames[e.RoleID])
	}
	w.Flush()
}

func (u *UI) showTiers() {
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIER\tDISCOUNT\tPOINTS REQUIRED")
	for _, t := range tier.All() {
		fmt.Fprintf(w, "%s\t%s%%\t%d\n", t.Name, t.DiscountPercent, t.MinPoints)
	}
	w.Flush()
}

func (u *UI) listCustomers(ctx context.Context) {
	customers, err := u.customers.ListAll(ctx)
	if err != nil {
		u.showError(err)
		return
	}

	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPHONE\tPOINTS\tTIER")
	for _, c := range customers {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", c.Name, c.Phone, c.Points, c.Tier.Name)
	}
	w.Flush()
}

func (u *UI) listOrders(ctx context.Context) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		u.showError(err)
		return
	}

	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RECEIPT\tSTATUS\tITEMS\tTOTAL\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			o.ReceiptNumber, o.Status, len(o.LineItems),
			u.money(o.TotalAmount), o.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

// money renders an amount with thousand separators and the configured
// currency code, e.g. "1,026,000 VND"
func (u *UI) money(amount decimal.Decimal) string {
	s := amount.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	formatted := b.String()
	if neg {
		formatted = "-" + formatted
	}
	return formatted + " " + u.cfg.Store.Currency
}
