package report

import (
	"context"
	"database/sql"
	"time"

	"atelier-be/internal/item"
	"atelier-be/internal/order"
	"atelier-be/internal/purchase"
)

type Repository interface {
	OrdersInRange(ctx context.Context, workspaceID string, from, to time.Time) ([]*order.Order, error)
	PurchasesInRange(ctx context.Context, workspaceID string, from, to time.Time) ([]*purchase.Purchase, error)
	AllItems(ctx context.Context, workspaceID string) ([]*item.Item, error)
	AllOrders(ctx context.Context, workspaceID string) ([]*order.Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) OrdersInRange(ctx context.Context, workspaceID string, from, to time.Time) ([]*order.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.workspace_id, o.customer_id, o.job_number, o.title, o.state,
			o.due_date, o.extended_eta, o.amount, o.created_at, o.updated_at,
			c.name, c.phone
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.workspace_id = $1 AND o.created_at >= $2 AND o.created_at <= $3
		ORDER BY o.created_at DESC
	`, workspaceID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *repository) AllOrders(ctx context.Context, workspaceID string) ([]*order.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.workspace_id, o.customer_id, o.job_number, o.title, o.state,
			o.due_date, o.extended_eta, o.amount, o.created_at, o.updated_at,
			c.name, c.phone
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.workspace_id = $1
	`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func scanOrders(rows *sql.Rows) ([]*order.Order, error) {
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

func (r *repository) PurchasesInRange(ctx context.Context, workspaceID string, from, to time.Time) ([]*purchase.Purchase, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.workspace_id, p.vendor_id, p.item_id, p.qty, p.unit_price,
			p.total, p.date, p.notes, p.created_at, v.name, i.name
		FROM purchases p
		JOIN vendors v ON v.id = p.vendor_id
		JOIN items i ON i.id = p.item_id
		WHERE p.workspace_id = $1 AND p.date >= $2 AND p.date <= $3
		ORDER BY p.date DESC
	`, workspaceID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []*purchase.Purchase
	for rows.Next() {
		var p purchase.Purchase
		if err := rows.Scan(&p.ID, &p.WorkspaceID, &p.VendorID, &p.ItemID, &p.Qty, &p.UnitPrice,
			&p.Total, &p.Date, &p.Notes, &p.CreatedAt, &p.VendorName, &p.ItemName); err != nil {
			return nil, err
		}
		purchases = append(purchases, &p)
	}
	return purchases, rows.Err()
}

func (r *repository) AllItems(ctx context.Context, workspaceID string) ([]*item.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, workspace_id, name, qty, unit_price, reorder_level
		FROM items
		WHERE workspace_id = $1
	`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*item.Item
	for rows.Next() {
		var i item.Item
		if err := rows.Scan(&i.ID, &i.WorkspaceID, &i.Name, &i.Qty, &i.UnitPrice, &i.ReorderLevel); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	return items, rows.Err()
}
