package tier

import (
	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/shopspring/decimal"
)

// Tier is an immutable loyalty bracket selected by an accumulated-points
// threshold. The discount applies to the whole order at settlement.
type Tier struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	MinPoints       int64           `json:"min_points"`
}

// table is the single source of truth for points -> tier classification.
// Thresholds and discounts are strictly increasing; every component that
// needs a tier goes through this package.
var table = []Tier{
	{ID: 1, Name: "Standard", DiscountPercent: decimal.Zero, MinPoints: 0},
	{ID: 2, Name: "Silver", DiscountPercent: decimal.NewFromInt(3), MinPoints: 100},
	{ID: 3, Name: "Gold", DiscountPercent: decimal.NewFromInt(5), MinPoints: 500},
	{ID: 4, Name: "Diamond", DiscountPercent: decimal.NewFromInt(10), MinPoints: 1000},
}

// ForPoints classifies accumulated points into a tier: the tier with the
// highest threshold not exceeding points. Total over all inputs; negative
// points classify as the base tier.
func ForPoints(points int64) Tier {
	result := table[0]
	for _, t := range table[1:] {
		if points >= t.MinPoints {
			result = t
		}
	}
	return result
}

// ByID returns the tier with the given id
func ByID(id int) (Tier, error) {
	for _, t := range table {
		if t.ID == id {
			return t, nil
		}
	}
	return Tier{}, ierr.NewError("tier not found").
		WithHintf("No membership tier with id %d", id).
		Mark(ierr.ErrNotFound)
}

// PointsRequiredFor returns the points threshold of the given tier
func PointsRequiredFor(id int) (int64, error) {
	t, err := ByID(id)
	if err != nil {
		return 0, err
	}
	return t.MinPoints, nil
}

// Next returns the tier directly above the given one. The second return
// value is false when the given tier is already the highest.
func Next(id int) (Tier, bool) {
	for _, t := range table {
		if t.ID == id+1 {
			return t, true
		}
	}
	return Tier{}, false
}

// All returns the full ordered tier table
func All() []Tier {
	result := make([]Tier, len(table))
	copy(result, table)
	return result
}
