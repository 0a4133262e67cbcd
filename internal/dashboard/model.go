package dashboard

import (
	"atelier-be/internal/order"

	"github.com/shopspring/decimal"
)

type Stats struct {
	Open            int
	Extended        int
	ClosedThisMonth int
	PickedUp        int
}

type Dashboard struct {
	Stats          Stats
	DueSoon        []*order.Order
	Overdue        []*order.Order
	RecentOrders   []*order.Order
	MonthlyRevenue decimal.Decimal
}
