package dashboard

import (
	"context"
	"time"

	"atelier-be/internal/logger"
	"atelier-be/internal/order"

	"go.uber.org/zap"
)

type Service interface {
	GetDashboard(ctx context.Context, workspaceID string) (*Dashboard, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func NewServiceWithClock(repo Repository, now func() time.Time) Service {
	return &service{repo: repo, now: now}
}

func (s *service) GetDashboard(ctx context.Context, workspaceID string) (*Dashboard, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetDashboard"),
	)

	now := s.now()
	dueCutoff := now.Add(48 * time.Hour)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	open, err := s.repo.CountByState(ctx, workspaceID, order.StateOpen)
	if err != nil {
		return nil, err
	}
	extended, err := s.repo.CountByState(ctx, workspaceID, order.StateExtended)
	if err != nil {
		return nil, err
	}
	closedThisMonth, err := s.repo.CountClosedSince(ctx, workspaceID, startOfMonth)
	if err != nil {
		return nil, err
	}
	pickedUp, err := s.repo.CountByState(ctx, workspaceID, order.StatePickedUp)
	if err != nil {
		return nil, err
	}

	dueSoon, err := s.repo.DueBetween(ctx, workspaceID, now, dueCutoff, 10)
	if err != nil {
		return nil, err
	}

	overdue, err := s.repo.OverdueBefore(ctx, workspaceID, now, 10)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.Recent(ctx, workspaceID, 5)
	if err != nil {
		return nil, err
	}

	revenue, err := s.repo.ClosedRevenueSince(ctx, workspaceID, startOfMonth)
	if err != nil {
		return nil, err
	}

	log.Debug("dashboard computed",
		zap.Int("open", open),
		zap.Int("extended", extended),
		zap.Int("due_soon", len(dueSoon)),
		zap.Int("overdue", len(overdue)),
	)

	return &Dashboard{
		Stats: Stats{
			Open:            open,
			Extended:        extended,
			ClosedThisMonth: closedThisMonth,
			PickedUp:        pickedUp,
		},
		DueSoon:        dueSoon,
		Overdue:        overdue,
		RecentOrders:   recent,
		MonthlyRevenue: revenue,
	}, nil
}
