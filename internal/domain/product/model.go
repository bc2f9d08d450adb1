package product

import (
	"time"

	"github.com/ricehouse/ricepos/internal/types"
	"github.com/shopspring/decimal"
)

// Product represents a catalog item with a live stock level
type Product struct {
	// ID is the unique identifier for the product
	ID string `json:"id"`

	// Name is the display name of the product
	Name string `json:"name"`

	// Category groups products for display, e.g. "Rice"
	Category string `json:"category"`

	// Price is the current unit price. Orders capture the price at
	// add-to-cart time, so later changes never touch existing lines.
	Price decimal.Decimal `json:"price"`

	// Stock is the on-hand quantity. Decremented by reservation only;
	// there is no restock path in this system.
	Stock int64 `json:"stock"`

	// Status marks whether the product is offered for sale
	Status types.Status `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasStock reports whether qty units can be reserved
func (p *Product) HasStock(qty int64) bool {
	return p.Stock >= qty
}
