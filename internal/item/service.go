package item

import (
	"context"
	"fmt"

	"atelier-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const recentPurchaseLimit = 10

type Service interface {
	Upsert(ctx context.Context, workspaceID string, i *Item) (*Item, error)
	Get(ctx context.Context, workspaceID, id string) (*Item, error)
	List(ctx context.Context, workspaceID string) ([]*Item, error)
	GetInventoryStatus(ctx context.Context, workspaceID string) (*InventoryStatus, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Upsert(ctx context.Context, workspaceID string, i *Item) (*Item, error) {
	if i.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if i.Qty < 0 {
		return nil, fmt.Errorf("%w: quantity must be non-negative", ErrValidation)
	}
	if i.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must be non-negative", ErrValidation)
	}
	if i.ReorderLevel < 0 {
		return nil, fmt.Errorf("%w: reorder level must be non-negative", ErrValidation)
	}

	i.WorkspaceID = workspaceID

	if i.ID == "" {
		if err := s.repo.Create(ctx, i); err != nil {
			return nil, err
		}
	} else {
		if err := s.repo.Update(ctx, i); err != nil {
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, workspaceID, i.ID)
}

func (s *service) Get(ctx context.Context, workspaceID, id string) (*Item, error) {
	return s.repo.GetByID(ctx, workspaceID, id)
}

func (s *service) List(ctx context.Context, workspaceID string) ([]*Item, error) {
	return s.repo.List(ctx, workspaceID)
}

// GetInventoryStatus computes the stock snapshot. The summary, item
// statuses, and low-stock subset all derive from one item read.
func (s *service) GetInventoryStatus(ctx context.Context, workspaceID string) (*InventoryStatus, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetInventoryStatus"),
	)

	items, err := s.repo.List(ctx, workspaceID)
	if err != nil {
		log.Error("failed to list items", zap.Error(err))
		return nil, err
	}

	totalValue := decimal.Zero
	var lowStock []*Item
	outOfStock := 0

	for _, i := range items {
		totalValue = totalValue.Add(i.Value())

		switch i.Status() {
		case StatusOutOfStock:
			outOfStock++
			lowStock = append(lowStock, i)
		case StatusLowStock:
			lowStock = append(lowStock, i)
		}
	}

	recent, err := s.repo.RecentPurchases(ctx, workspaceID, recentPurchaseLimit)
	if err != nil {
		log.Error("failed to load recent purchases", zap.Error(err))
		return nil, err
	}

	vendors, err := s.repo.VendorSummaries(ctx, workspaceID)
	if err != nil {
		log.Error("failed to load vendor summaries", zap.Error(err))
		return nil, err
	}

	log.Debug("inventory snapshot computed",
		zap.Int("total_items", len(items)),
		zap.Int("low_stock", len(lowStock)),
		zap.Int("out_of_stock", outOfStock),
	)

	return &InventoryStatus{
		Summary: InventorySummary{
			TotalItems:      len(items),
			LowStockItems:   len(lowStock),
			OutOfStockItems: outOfStock,
			TotalValue:      totalValue,
		},
		Items:           items,
		LowStockItems:   lowStock,
		RecentPurchases: recent,
		VendorSummary:   vendors,
	}, nil
}
