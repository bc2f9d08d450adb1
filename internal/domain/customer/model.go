package customer

import (
	"time"

	"github.com/ricehouse/ricepos/internal/domain/tier"
)

// Customer represents a loyalty-program member. The phone number doubles as
// the login key and is unique across the ledger.
type Customer struct {
	// ID is the unique identifier for the customer
	ID string `json:"id"`

	// Name is the display name of the customer
	Name string `json:"name"`

	// Phone is the customer's phone number, used as the login key
	Phone string `json:"phone"`

	// Points is the accumulated loyalty point balance
	Points int64 `json:"points"`

	// TierID is the customer's current membership tier. It must always
	// agree with tier.ForPoints(Points); callers re-derive rather than
	// trust the stored value (see SyncTier).
	TierID int `json:"tier_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentTier re-derives the customer's tier from their live point balance
func (c *Customer) CurrentTier() tier.Tier {
	return tier.ForPoints(c.Points)
}

// SyncTier forces TierID to match the points-derived tier and reports
// whether a correction was applied. Used on login and after bulk changes.
func (c *Customer) SyncTier() bool {
	derived := c.CurrentTier()
	if c.TierID != derived.ID {
		c.TierID = derived.ID
		return true
	}
	return false
}
