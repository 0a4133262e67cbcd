package purchase

import (
	"context"
	"fmt"
	"time"

	"atelier-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type RecordPurchaseInput struct {
	VendorID  string
	ItemID    string
	Qty       int
	UnitPrice decimal.Decimal
	Date      time.Time
	Notes     *string
}

type Service interface {
	RecordPurchase(ctx context.Context, workspaceID string, input RecordPurchaseInput) (*Purchase, error)
	List(ctx context.Context, workspaceID string) ([]*Purchase, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// RecordPurchase validates the vendor and item against the caller's
// workspace, computes the line total in decimal arithmetic, and commits
// the purchase row together with the stock increment.
func (s *service) RecordPurchase(ctx context.Context, workspaceID string, input RecordPurchaseInput) (*Purchase, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RecordPurchase"),
		zap.String("vendor_id", input.VendorID),
		zap.String("item_id", input.ItemID),
	)

	if input.VendorID == "" {
		return nil, fmt.Errorf("%w: vendor is required", ErrValidation)
	}
	if input.ItemID == "" {
		return nil, fmt.Errorf("%w: item is required", ErrValidation)
	}
	if input.Qty < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	if input.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must be non-negative", ErrValidation)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: purchase date is required", ErrValidation)
	}

	vendorName, err := s.repo.VendorName(ctx, workspaceID, input.VendorID)
	if err != nil {
		return nil, err
	}

	itemName, err := s.repo.ItemName(ctx, workspaceID, input.ItemID)
	if err != nil {
		return nil, err
	}

	p := &Purchase{
		WorkspaceID: workspaceID,
		VendorID:    input.VendorID,
		ItemID:      input.ItemID,
		Qty:         input.Qty,
		UnitPrice:   input.UnitPrice,
		Total:       input.UnitPrice.Mul(decimal.NewFromInt(int64(input.Qty))),
		Date:        input.Date,
		Notes:       input.Notes,
		VendorName:  vendorName,
		ItemName:    itemName,
	}

	if err := s.repo.CreatePurchaseTx(ctx, p); err != nil {
		log.Error("failed to record purchase", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (s *service) List(ctx context.Context, workspaceID string) ([]*Purchase, error) {
	return s.repo.List(ctx, workspaceID)
}
