package order

import (
	"context"
	"fmt"
	"time"

	"atelier-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const listLimit = 100

type CreateOrderInput struct {
	CustomerID string
	Title      string
	DueDate    time.Time
	Amount     decimal.Decimal
}

type TransitionInput struct {
	NewState    State
	ExtendedEta *time.Time
	Notes       *string
}

type Service interface {
	Create(ctx context.Context, workspaceID string, input CreateOrderInput) (*Order, error)
	Get(ctx context.Context, workspaceID, id string) (*Order, error)
	List(ctx context.Context, workspaceID string) ([]*Order, error)
	Transition(ctx context.Context, workspaceID, userID, orderID string, input TransitionInput) (*Order, error)
	History(ctx context.Context, workspaceID, orderID string) ([]*StateLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, workspaceID string, input CreateOrderInput) (*Order, error) {
	if input.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer is required", ErrValidation)
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due date is required", ErrValidation)
	}
	if input.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must be non-negative", ErrValidation)
	}

	exists, err := s.repo.CustomerExists(ctx, workspaceID, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}

	o := &Order{
		WorkspaceID: workspaceID,
		CustomerID:  input.CustomerID,
		Title:       input.Title,
		DueDate:     input.DueDate,
		Amount:      input.Amount,
	}

	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, workspaceID, o.ID)
}

func (s *service) Get(ctx context.Context, workspaceID, id string) (*Order, error) {
	return s.repo.GetByID(ctx, workspaceID, id)
}

func (s *service) List(ctx context.Context, workspaceID string) ([]*Order, error) {
	return s.repo.List(ctx, workspaceID, listLimit)
}

// Transition applies one lifecycle step. The edge is validated against
// the transition table before anything is written; the state update and
// the audit row commit together.
func (s *service) Transition(ctx context.Context, workspaceID, userID, orderID string, input TransitionInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Transition"),
		zap.String("order_id", orderID),
		zap.String("new_state", string(input.NewState)),
	)

	if !input.NewState.Valid() {
		return nil, fmt.Errorf("%w: unknown state %q", ErrValidation, input.NewState)
	}

	current, err := s.repo.GetByID(ctx, workspaceID, orderID)
	if err != nil {
		return nil, err
	}

	if !current.State.CanTransition(input.NewState) {
		log.Warn("rejected transition", zap.String("from", string(current.State)))
		return nil, fmt.Errorf("%w: cannot transition from %s to %s",
			ErrInvalidTransition, current.State, input.NewState)
	}

	if input.NewState == StateExtended && input.ExtendedEta == nil {
		return nil, fmt.Errorf("%w: extended ETA is required when extending an order", ErrValidation)
	}

	// extended_eta is set only while EXTENDED, cleared on every other edge.
	var eta *time.Time
	if input.NewState == StateExtended {
		eta = input.ExtendedEta
	}

	updated := *current
	updated.State = input.NewState
	updated.ExtendedEta = eta

	notes := input.Notes
	if notes == nil {
		msg := fmt.Sprintf("State changed from %s to %s", current.State, input.NewState)
		notes = &msg
	}

	logRow := &StateLog{
		OrderID:     orderID,
		FromState:   current.State,
		ToState:     input.NewState,
		ChangedBy:   userID,
		Notes:       notes,
		ExtendedEta: eta,
	}

	if err := s.repo.TransitionTx(ctx, &updated, logRow); err != nil {
		return nil, err
	}

	return &updated, nil
}

// History returns the audit trail newest-first. The order lookup both
// authorizes the caller's workspace and 404s unknown ids.
func (s *service) History(ctx context.Context, workspaceID, orderID string) ([]*StateLog, error) {
	if _, err := s.repo.GetByID(ctx, workspaceID, orderID); err != nil {
		return nil, err
	}

	return s.repo.History(ctx, orderID)
}
