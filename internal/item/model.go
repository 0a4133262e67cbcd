package item

import (
	"time"

	"github.com/shopspring/decimal"
)

type StockStatus string

const (
	StatusInStock    StockStatus = "IN_STOCK"
	StatusLowStock   StockStatus = "LOW_STOCK"
	StatusOutOfStock StockStatus = "OUT_OF_STOCK"
)

type Item struct {
	ID           string
	WorkspaceID  string
	Name         string
	Description  *string
	Qty          int
	UnitPrice    decimal.Decimal
	ReorderLevel int
	VendorID     *string
	VendorName   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Status classifies stock health from the current quantity.
func (i *Item) Status() StockStatus {
	switch {
	case i.Qty == 0:
		return StatusOutOfStock
	case i.Qty <= i.ReorderLevel:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Value is qty times unit price.
func (i *Item) Value() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// RecentPurchase is a purchase row with vendor and item names joined
// for display on the inventory screen.
type RecentPurchase struct {
	ID         string
	VendorName string
	ItemName   string
	Qty        int
	UnitPrice  decimal.Decimal
	Total      decimal.Decimal
	Date       time.Time
}

// VendorSummary counts a vendor's associated items and purchases.
type VendorSummary struct {
	VendorID      string
	VendorName    string
	ItemCount     int
	PurchaseCount int
}

// InventoryStatus is the point-in-time stock snapshot. All fields are
// derived from the same item read so counts and lists agree.
type InventoryStatus struct {
	Summary         InventorySummary
	Items           []*Item
	LowStockItems   []*Item
	RecentPurchases []*RecentPurchase
	VendorSummary   []*VendorSummary
}

type InventorySummary struct {
	TotalItems      int
	LowStockItems   int
	OutOfStockItems int
	TotalValue      decimal.Decimal
}
