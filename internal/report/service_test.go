package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier-be/internal/item"
	"atelier-be/internal/order"
	"atelier-be/internal/purchase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) OrdersInRange(ctx context.Context, workspaceID string, from, to time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, workspaceID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockRepository) PurchasesInRange(ctx context.Context, workspaceID string, from, to time.Time) ([]*purchase.Purchase, error) {
	args := m.Called(ctx, workspaceID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*purchase.Purchase), args.Error(1)
}

func (m *MockRepository) AllItems(ctx context.Context, workspaceID string) ([]*item.Item, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*item.Item), args.Error(1)
}

func (m *MockRepository) AllOrders(ctx context.Context, workspaceID string) ([]*order.Order, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// --- Tests ---

func TestService_GetReports(t *testing.T) {
	ctx := context.Background()
	wsID := "ws-1"

	today := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return today }

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	t.Run("InvalidRange", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewServiceWithClock(mockRepo, clock)

		_, err := svc.GetReports(ctx, wsID, to, from)
		assert.ErrorIs(t, err, ErrInvalidRange)
		mockRepo.AssertNotCalled(t, "OrdersInRange")
	})

	t.Run("Totals", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewServiceWithClock(mockRepo, clock)

		orders := []*order.Order{
			{ID: "ord-1", State: order.StateClosed, DueDate: today.Add(48 * time.Hour), Amount: decimal.NewFromInt(450)},
			{ID: "ord-2", State: order.StateOpen, DueDate: today.Add(24 * time.Hour), Amount: decimal.NewFromInt(300)},
		}
		purchases := []*purchase.Purchase{
			{ID: "pur-1", Total: decimal.NewFromInt(200)},
		}

		mockRepo.On("OrdersInRange", ctx, wsID, from, to).Return(orders, nil)
		mockRepo.On("PurchasesInRange", ctx, wsID, from, to).Return(purchases, nil)
		mockRepo.On("AllItems", ctx, wsID).Return([]*item.Item{}, nil)
		mockRepo.On("AllOrders", ctx, wsID).Return(orders, nil)

		rep, err := svc.GetReports(ctx, wsID, from, to)
		require.NoError(t, err)

		assert.True(t, rep.Summary.OrderTotal.Equal(decimal.NewFromInt(750)))
		assert.True(t, rep.Summary.PurchaseTotal.Equal(decimal.NewFromInt(200)))
		assert.True(t, rep.Summary.NetRevenue.Equal(decimal.NewFromInt(550)))
		assert.Equal(t, 2, rep.Summary.OrderCount)
		assert.Equal(t, 1, rep.Summary.PurchaseCount)
		assert.Equal(t, from, rep.DateRange.From)
		assert.Equal(t, to, rep.DateRange.To)
	})

	t.Run("OverdueIgnoresWindow", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewServiceWithClock(mockRepo, clock)

		// Overdue orders are computed over every order in the
		// workspace, not just the report window.
		overdueOrder := &order.Order{
			ID:      "ord-old",
			State:   order.StateOpen,
			DueDate: today.Add(-72 * time.Hour),
			Amount:  decimal.NewFromInt(120),
		}
		closedLate := &order.Order{
			ID:      "ord-closed",
			State:   order.StateClosed,
			DueDate: today.Add(-24 * time.Hour),
		}
		pickedUpLate := &order.Order{
			ID:      "ord-picked",
			State:   order.StatePickedUp,
			DueDate: today.Add(-240 * time.Hour),
		}

		mockRepo.On("OrdersInRange", ctx, wsID, from, to).Return([]*order.Order{}, nil)
		mockRepo.On("PurchasesInRange", ctx, wsID, from, to).Return([]*purchase.Purchase{}, nil)
		mockRepo.On("AllItems", ctx, wsID).Return([]*item.Item{}, nil)
		mockRepo.On("AllOrders", ctx, wsID).Return([]*order.Order{overdueOrder, closedLate, pickedUpLate}, nil)

		rep, err := svc.GetReports(ctx, wsID, from, to)
		require.NoError(t, err)

		require.Len(t, rep.OverdueOrders, 1)
		assert.Equal(t, "ord-old", rep.OverdueOrders[0].Order.ID)
		assert.Equal(t, 3, rep.OverdueOrders[0].DaysOverdue)
		assert.Equal(t, 1, rep.Metrics.OverdueCount)
	})

	t.Run("ExtendedOrders", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewServiceWithClock(mockRepo, clock)

		eta := today.Add(120 * time.Hour)
		due := today.Add(48 * time.Hour)
		ext := &order.Order{
			ID:          "ord-ext",
			State:       order.StateExtended,
			DueDate:     due,
			ExtendedEta: &eta,
		}

		mockRepo.On("OrdersInRange", ctx, wsID, from, to).Return([]*order.Order{}, nil)
		mockRepo.On("PurchasesInRange", ctx, wsID, from, to).Return([]*purchase.Purchase{}, nil)
		mockRepo.On("AllItems", ctx, wsID).Return([]*item.Item{}, nil)
		mockRepo.On("AllOrders", ctx, wsID).Return([]*order.Order{ext}, nil)

		rep, err := svc.GetReports(ctx, wsID, from, to)
		require.NoError(t, err)

		require.Len(t, rep.ExtendedOrders, 1)
		assert.Equal(t, due, rep.ExtendedOrders[0].OriginalDueDate)
		assert.Equal(t, eta, rep.ExtendedOrders[0].ExtendedEta)
	})

	t.Run("InventoryValues", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewServiceWithClock(mockRepo, clock)

		items := []*item.Item{
			{ID: "item-1", Qty: 20, ReorderLevel: 10, UnitPrice: decimal.NewFromInt(25)},
			{ID: "item-2", Qty: 5, ReorderLevel: 10, UnitPrice: decimal.NewFromInt(2)},
			{ID: "item-3", Qty: 0, ReorderLevel: 15, UnitPrice: decimal.NewFromInt(5)},
		}

		mockRepo.On("OrdersInRange", ctx, wsID, from, to).Return([]*order.Order{}, nil)
		mockRepo.On("PurchasesInRange", ctx, wsID, from, to).Return([]*purchase.Purchase{}, nil)
		mockRepo.On("AllItems", ctx, wsID).Return(items, nil)
		mockRepo.On("AllOrders", ctx, wsID).Return([]*order.Order{}, nil)

		rep, err := svc.GetReports(ctx, wsID, from, to)
		require.NoError(t, err)

		// 20*25 + 5*2 + 0*5
		assert.True(t, rep.Summary.TotalInventoryValue.Equal(decimal.NewFromInt(510)))
		// low stock covers item-2 and the out-of-stock item-3
		assert.True(t, rep.Summary.LowStockValue.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, 2, rep.Metrics.LowStockCount)
		assert.Equal(t, 3, rep.Metrics.TotalItems)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewServiceWithClock(mockRepo, clock)

		mockRepo.On("OrdersInRange", ctx, wsID, from, to).Return(nil, errors.New("db error"))

		_, err := svc.GetReports(ctx, wsID, from, to)
		assert.Error(t, err)
	})
}
