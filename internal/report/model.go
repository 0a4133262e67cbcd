package report

import (
	"time"

	"atelier-be/internal/item"
	"atelier-be/internal/order"
	"atelier-be/internal/purchase"

	"github.com/shopspring/decimal"
)

// Report is the date-bounded financial and operational summary.
// Orders and purchases are filtered to the window; overdue/extended
// orders and inventory metrics are current-state views computed over
// the whole workspace regardless of the window.
type Report struct {
	Summary        Summary
	Orders         []*order.Order
	Purchases      []*purchase.Purchase
	DateRange      DateRange
	LowStockItems  []*item.Item
	OverdueOrders  []OverdueOrder
	ExtendedOrders []ExtendedOrder
	Metrics        Metrics
}

type Summary struct {
	OrderTotal          decimal.Decimal
	PurchaseTotal       decimal.Decimal
	OrderCount          int
	PurchaseCount       int
	NetRevenue          decimal.Decimal
	TotalInventoryValue decimal.Decimal
	LowStockValue       decimal.Decimal
}

type DateRange struct {
	From time.Time
	To   time.Time
}

type OverdueOrder struct {
	Order       *order.Order
	DaysOverdue int
}

type ExtendedOrder struct {
	Order           *order.Order
	OriginalDueDate time.Time
	ExtendedEta     time.Time
}

type Metrics struct {
	TotalItems    int
	LowStockCount int
	OverdueCount  int
	ExtendedCount int
}
