package report

import (
	"context"
	"time"

	"atelier-be/internal/item"
	"atelier-be/internal/logger"
	"atelier-be/internal/order"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	GetReports(ctx context.Context, workspaceID string, from, to time.Time) (*Report, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// NewServiceWithClock is used by tests to pin "today".
func NewServiceWithClock(repo Repository, now func() time.Time) Service {
	return &service{repo: repo, now: now}
}

func (s *service) GetReports(ctx context.Context, workspaceID string, from, to time.Time) (*Report, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetReports"),
		zap.Time("from", from),
		zap.Time("to", to),
	)

	if from.After(to) {
		return nil, ErrInvalidRange
	}

	orders, err := s.repo.OrdersInRange(ctx, workspaceID, from, to)
	if err != nil {
		log.Error("failed to load orders", zap.Error(err))
		return nil, err
	}

	purchases, err := s.repo.PurchasesInRange(ctx, workspaceID, from, to)
	if err != nil {
		log.Error("failed to load purchases", zap.Error(err))
		return nil, err
	}

	allItems, err := s.repo.AllItems(ctx, workspaceID)
	if err != nil {
		log.Error("failed to load items", zap.Error(err))
		return nil, err
	}

	allOrders, err := s.repo.AllOrders(ctx, workspaceID)
	if err != nil {
		log.Error("failed to load all orders", zap.Error(err))
		return nil, err
	}

	orderTotal := decimal.Zero
	for _, o := range orders {
		orderTotal = orderTotal.Add(o.Amount)
	}

	purchaseTotal := decimal.Zero
	for _, p := range purchases {
		purchaseTotal = purchaseTotal.Add(p.Total)
	}

	totalInventoryValue := decimal.Zero
	lowStockValue := decimal.Zero
	var lowStock []*item.Item
	for _, i := range allItems {
		totalInventoryValue = totalInventoryValue.Add(i.Value())
		if i.Qty <= i.ReorderLevel {
			lowStock = append(lowStock, i)
			lowStockValue = lowStockValue.Add(i.Value())
		}
	}

	today := s.now()
	var overdue []OverdueOrder
	var extended []ExtendedOrder
	for _, o := range allOrders {
		if o.DueDate.Before(today) && o.State != order.StateClosed && o.State != order.StatePickedUp {
			overdue = append(overdue, OverdueOrder{
				Order:       o,
				DaysOverdue: int(today.Sub(o.DueDate).Hours() / 24),
			})
		}
		if o.ExtendedEta != nil {
			extended = append(extended, ExtendedOrder{
				Order:           o,
				OriginalDueDate: o.DueDate,
				ExtendedEta:     *o.ExtendedEta,
			})
		}
	}

	log.Info("report computed",
		zap.Int("order_count", len(orders)),
		zap.Int("purchase_count", len(purchases)),
		zap.Int("overdue_count", len(overdue)),
	)

	return &Report{
		Summary: Summary{
			OrderTotal:          orderTotal,
			PurchaseTotal:       purchaseTotal,
			OrderCount:          len(orders),
			PurchaseCount:       len(purchases),
			NetRevenue:          orderTotal.Sub(purchaseTotal),
			TotalInventoryValue: totalInventoryValue,
			LowStockValue:       lowStockValue,
		},
		Orders:         orders,
		Purchases:      purchases,
		DateRange:      DateRange{From: from, To: to},
		LowStockItems:  lowStock,
		OverdueOrders:  overdue,
		ExtendedOrders: extended,
		Metrics: Metrics{
			TotalItems:    len(allItems),
			LowStockCount: len(lowStock),
			OverdueCount:  len(overdue),
			ExtendedCount: len(extended),
		},
	}, nil
}
