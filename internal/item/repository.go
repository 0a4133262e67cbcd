package item

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, i *Item) error
	Update(ctx context.Context, i *Item) error
	GetByID(ctx context.Context, workspaceID, id string) (*Item, error)
	List(ctx context.Context, workspaceID string) ([]*Item, error)
	RecentPurchases(ctx context.Context, workspaceID string, limit int) ([]*RecentPurchase, error)
	VendorSummaries(ctx context.Context, workspaceID string) ([]*VendorSummary, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, i *Item) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}

	return r.db.QueryRowContext(ctx, `
		INSERT INTO items (id, workspace_id, name, description, qty, unit_price, reorder_level, vendor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, i.ID, i.WorkspaceID, i.Name, i.Description, i.Qty, i.UnitPrice, i.ReorderLevel, i.VendorID).
		Scan(&i.CreatedAt, &i.UpdatedAt)
}

func (r *repository) Update(ctx context.Context, i *Item) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE items SET
			name = $1, description = $2, qty = $3, unit_price = $4,
			reorder_level = $5, vendor_id = $6, updated_at = NOW()
		WHERE id = $7 AND workspace_id = $8
	`, i.Name, i.Description, i.Qty, i.UnitPrice, i.ReorderLevel, i.VendorID, i.ID, i.WorkspaceID)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, workspaceID, id string) (*Item, error) {
	var i Item
	err := r.db.QueryRowContext(ctx, `
		SELECT i.id, i.workspace_id, i.name, i.description, i.qty, i.unit_price,
			i.reorder_level, i.vendor_id, v.name, i.created_at, i.updated_at
		FROM items i
		LEFT JOIN vendors v ON v.id = i.vendor_id
		WHERE i.id = $1 AND i.workspace_id = $2
	`, id, workspaceID).
		Scan(&i.ID, &i.WorkspaceID, &i.Name, &i.Description, &i.Qty, &i.UnitPrice,
			&i.ReorderLevel, &i.VendorID, &i.VendorName, &i.CreatedAt, &i.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	return &i, nil
}

func (r *repository) List(ctx context.Context, workspaceID string) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT i.id, i.workspace_id, i.name, i.description, i.qty, i.unit_price,
			i.reorder_level, i.vendor_id, v.name, i.created_at, i.updated_at
		FROM items i
		LEFT JOIN vendors v ON v.id = i.vendor_id
		WHERE i.workspace_id = $1
		ORDER BY i.name ASC
	`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		var i Item
		if err := rows.Scan(&i.ID, &i.WorkspaceID, &i.Name, &i.Description, &i.Qty, &i.UnitPrice,
			&i.ReorderLevel, &i.VendorID, &i.VendorName, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}

	return items, rows.Err()
}

func (r *repository) RecentPurchases(ctx context.Context, workspaceID string, limit int) ([]*RecentPurchase, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, v.name, i.name, p.qty, p.unit_price, p.total, p.date
		FROM purchases p
		JOIN vendors v ON v.id = p.vendor_id
		JOIN items i ON i.id = p.item_id
		WHERE p.workspace_id = $1
		ORDER BY p.date DESC
		LIMIT $2
	`, workspaceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []*RecentPurchase
	for rows.Next() {
		var p RecentPurchase
		if err := rows.Scan(&p.ID, &p.VendorName, &p.ItemName, &p.Qty, &p.UnitPrice, &p.Total, &p.Date); err != nil {
			return nil, err
		}
		purchases = append(purchases, &p)
	}

	return purchases, rows.Err()
}

func (r *repository) VendorSummaries(ctx context.Context, workspaceID string) ([]*VendorSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.name,
			(SELECT COUNT(*) FROM items i WHERE i.vendor_id = v.id) AS item_count,
			(SELECT COUNT(*) FROM purchases p WHERE p.vendor_id = v.id) AS purchase_count
		FROM vendors v
		WHERE v.workspace_id = $1
		ORDER BY v.name ASC
	`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*VendorSummary
	for rows.Next() {
		var s VendorSummary
		if err := rows.Scan(&s.VendorID, &s.VendorName, &s.ItemCount, &s.PurchaseCount); err != nil {
			return nil, err
		}
		summaries = append(summaries, &s)
	}

	return summaries, rows.Err()
}
