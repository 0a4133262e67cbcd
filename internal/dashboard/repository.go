package dashboard

import (
	"context"
	"database/sql"
	"time"

	"atelier-be/internal/order"

	"github.com/shopspring/decimal"
)

type Repository interface {
	CountByState(ctx context.Context, workspaceID string, state order.State) (int, error)
	CountClosedSince(ctx context.Context, workspaceID string, since time.Time) (int, error)
	DueBetween(ctx context.Context, workspaceID string, from, to time.Time, limit int) ([]*order.Order, error)
	OverdueBefore(ctx context.Context, workspaceID string, now time.Time, limit int) ([]*order.Order, error)
	Recent(ctx context.Context, workspaceID string, limit int) ([]*order.Order, error)
	ClosedRevenueSince(ctx context.Context, workspaceID string, since time.Time) (decimal.Decimal, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountByState(ctx context.Context, workspaceID string, state order.State) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM orders WHERE workspace_id = $1 AND state = $2
	`, workspaceID, state).Scan(&n)
	return n, err
}

func (r *repository) CountClosedSince(ctx context.Context, workspaceID string, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM orders
		WHERE workspace_id = $1 AND state = 'CLOSED' AND updated_at >= $2
	`, workspaceID, since).Scan(&n)
	return n, err
}

const orderColumns = `
	o.id, o.workspace_id, o.customer_id, o.job_number, o.title, o.state,
	o.due_date, o.extended_eta, o.amount, o.created_at, o.updated_at,
	c.name, c.phone`

func collectOrders(rows *sql.Rows) ([]*order.Order, error) {
	var orders []*order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(&o.ID, &o.WorkspaceID, &o.CustomerID, &o.JobNumber, &o.Title, &o.State,
			&o.DueDate, &o.ExtendedEta, &o.Amount, &o.CreatedAt, &o.UpdatedAt,
			&o.CustomerName, &o.CustomerPhone); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

func (r *repository) DueBetween(ctx context.Context, workspaceID string, from, to time.Time, limit int) ([]*order.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.workspace_id = $1
		  AND o.state IN ('OPEN', 'EXTENDED')
		  AND o.due_date >= $2 AND o.due_date <= $3
		ORDER BY o.due_date ASC
		LIMIT $4
	`, workspaceID, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *repository) OverdueBefore(ctx context.Context, workspaceID string, now time.Time, limit int) ([]*order.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.workspace_id = $1
		  AND o.state IN ('OPEN', 'EXTENDED')
		  AND o.due_date < $2
		ORDER BY o.due_date ASC
		LIMIT $3
	`, workspaceID, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *repository) Recent(ctx context.Context, workspaceID string, limit int) ([]*order.Order, error) {
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

	return collectOrders(rows)
}

func (r *repository) ClosedRevenueSince(ctx context.Context, workspaceID string, since time.Time) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM orders
		WHERE workspace_id = $1 AND state = 'CLOSED' AND updated_at >= $2
	`, workspaceID, since).Scan(&revenue)
	return revenue, err
}
