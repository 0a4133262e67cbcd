package order

import (
	"context"
	"database/sql"
	"errors"

	"atelier-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	CustomerExists(ctx context.Context, workspaceID, customerID string) (bool, error)
	CreateOrderTx(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, workspaceID, id string) (*Order, error)
	List(ctx context.Context, workspaceID string, limit int) ([]*Order, error)
	TransitionTx(ctx context.Context, o *Order, logRow *StateLog) error
	History(ctx context.Context, orderID string) ([]*StateLog, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CustomerExists(ctx context.Context, workspaceID, customerID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1 AND workspace_id = $2)
	`, customerID, workspaceID).Scan(&exists)
	return exists, err
}

// CreateOrderTx assigns the next job number and inserts the order in
// one transaction. The workspace row is locked first so two concurrent
// creations in the same workspace cannot read the same maximum.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.String("workspace_id", o.WorkspaceID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	var floor int
	err = tx.QueryRowContext(ctx, `
		SELECT job_number_floor FROM workspaces WHERE id = $1 FOR UPDATE
	`, o.WorkspaceID).Scan(&floor)
	if err != nil {
		log.Error("failed to lock workspace", zap.Error(err))
		return err
	}

	err = tx.QueryRowContext(ctx, `
		SELECT GREATEST(COALESCE(MAX(job_number), 0), $1) + 1
		FROM orders
		WHERE workspace_id = $2
	`, floor, o.WorkspaceID).Scan(&o.JobNumber)
	if err != nil {
		log.Error("failed to compute job number", zap.Error(err))
		return err
	}

	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	o.State = StateOpen

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, workspace_id, customer_id, job_number, title, state, due_date, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, o.ID, o.WorkspaceID, o.CustomerID, o.JobNumber, o.Title, o.State, o.DueDate, o.Amount).
		Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return err
	}

	committed = true
	log.Info("order created", zap.Int("job_number", o.JobNumber))
	return nil
}

const orderColumns = `
	o.id, o.workspace_id, o.customer_id, o.job_number, o.title, o.state,
	o.due_date, o.extended_eta, o.amount, o.created_at, o.updated_at,
	c.name, c.phone`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.WorkspaceID, &o.CustomerID, &o.JobNumber, &o.Title, &o.State,
		&o.DueDate, &o.ExtendedEta, &o.Amount, &o.CreatedAt, &o.UpdatedAt,
		&o.CustomerName, &o.CustomerPhone,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetByID(ctx context.Context, workspaceID, id string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1 AND o.workspace_id = $2
	`, id, workspaceID)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (r *repository) List(ctx context.Context, workspaceID string, limit int) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.workspace_id = $1
		ORDER BY o.created_at DESC
		LIMIT $2
	`, workspaceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// TransitionTx updates the order state and appends the audit log row in
// one transaction. Both writes are observed together or not at all.
func (r *repository) TransitionTx(ctx context.Context, o *Order, logRow *StateLog) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "TransitionTx"),
		zap.String("order_id", o.ID),
		zap.String("from", string(logRow.FromState)),
		zap.String("to", string(logRow.ToState)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	err = tx.QueryRowContext(ctx, `
		UPDATE orders
		SET state = $1, extended_eta = $2, updated_at = NOW()
		WHERE id = $3 AND workspace_id = $4
		RETURNING updated_at
	`, o.State, o.ExtendedEta, o.ID, o.WorkspaceID).Scan(&o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		log.Error("failed to update order state", zap.Error(err))
		return err
	}

	if logRow.ID == "" {
		logRow.ID = uuid.New().String()
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO order_state_logs (id, order_id, from_state, to_state, changed_by, notes, extended_eta)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, logRow.ID, logRow.OrderID, logRow.FromState, logRow.ToState, logRow.ChangedBy, logRow.Notes, logRow.ExtendedEta).
		Scan(&logRow.CreatedAt)
	if err != nil {
		log.Error("failed to append state log", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transition", zap.Error(err))
		return err
	}

	committed = true
	log.Info("order state changed")
	return nil
}

func (r *repository) History(ctx context.Context, orderID string) ([]*StateLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.id, l.order_id, l.from_state, l.to_state, l.changed_by,
			l.notes, l.extended_eta, l.created_at, u.name, u.email
		FROM order_state_logs l
		JOIN users u ON u.id = l.changed_by
		WHERE l.order_id = $1
		ORDER BY l.created_at DESC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*StateLog
	for rows.Next() {
		var l StateLog
		if err := rows.Scan(&l.ID, &l.OrderID, &l.FromState, &l.ToState, &l.ChangedBy,
			&l.Notes, &l.ExtendedEta, &l.CreatedAt, &l.UserName, &l.UserEmail); err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}

	return logs, rows.Err()
}
