package customer

import (
	"context"
	"fmt"

	"atelier-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, workspaceID string, c *Customer) (*Customer, error)
	Update(ctx context.Context, workspaceID string, c *Customer) (*Customer, error)
	Get(ctx context.Context, workspaceID, id string) (*Customer, error)
	List(ctx context.Context, workspaceID string) ([]*Customer, error)
	Delete(ctx context.Context, workspaceID, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validate(c *Customer) error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if c.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}

	for field, v := range map[string]*float64{
		"height": c.Height, "weight": c.Weight,
		"chest": c.Chest, "waist": c.Waist, "hips": c.Hips,
		"shoulder": c.Shoulder, "sleeveLength": c.SleeveLength,
		"neck": c.Neck, "armhole": c.Armhole,
		"inseam": c.Inseam, "thigh": c.Thigh, "knee": c.Knee,
		"calf": c.Calf, "ankle": c.Ankle,
		"backLength": c.BackLength, "crotch": c.Crotch,
	} {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrValidation, field)
		}
	}

	return nil
}

func (s *service) Create(ctx context.Context, workspaceID string, c *Customer) (*Customer, error) {
	if err := validate(c); err != nil {
		return nil, err
	}

	c.WorkspaceID = workspaceID
	if err := s.repo.Create(ctx, c); err != nil {
		logger.FromCtx(ctx).Error("failed to create customer", zap.Error(err))
		return nil, err
	}

	return c, nil
}

func (s *service) Update(ctx context.Context, workspaceID string, c *Customer) (*Customer, error) {
	if err := validate(c); err != nil {
		return nil, err
	}

	c.WorkspaceID = workspaceID
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, workspaceID, c.ID)
}

func (s *service) Get(ctx context.Context, workspaceID, id string) (*Customer, error) {
	return s.repo.GetByID(ctx, workspaceID, id)
}

func (s *service) List(ctx context.Context, workspaceID string) ([]*Customer, error) {
	return s.repo.List(ctx, workspaceID)
}

func (s *service) Delete(ctx context.Context, workspaceID, id string) error {
	return s.repo.Delete(ctx, workspaceID, id)
}
