package purchase

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is immutable once recorded. Recording one is the only
// writer that increments an item's on-hand quantity.
type Purchase struct {
	ID          string
	WorkspaceID string
	VendorID    string
	ItemID      string
	Qty         int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	Date        time.Time
	Notes       *string
	CreatedAt   time.Time

	// Joined for display
	VendorName string
	ItemName   string
}
