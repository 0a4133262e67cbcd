package purchase

import (
	"context"
	"database/sql"
	"errors"

	"atelier-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	VendorName(ctx context.Context, workspaceID, vendorID string) (string, error)
	ItemName(ctx context.Context, workspaceID, itemID string) (string, error)
	CreatePurchaseTx(ctx context.Context, p *Purchase) error
	List(ctx context.Context, workspaceID string) ([]*Purchase, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) VendorName(ctx context.Context, workspaceID, vendorID string) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx, `
		SELECT name FROM vendors WHERE id = $1 AND workspace_id = $2
	`, vendorID, workspaceID).Scan(&name)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrVendorNotFound
	}
	return name, err
}

func (r *repository) ItemName(ctx context.Context, workspaceID, itemID string) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx, `
		SELECT name FROM items WHERE id = $1 AND workspace_id = $2
	`, itemID, workspaceID).Scan(&name)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrItemNotFound
	}
	return name, err
}

// CreatePurchaseTx inserts the purchase row and increments the item's
// quantity in one transaction. Either both writes land or neither does;
// the increment happens in SQL so concurrent purchases never lose an
// update.
func (r *repository) CreatePurchaseTx(ctx context.Context, p *Purchase) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreatePurchaseTx"),
		zap.String("item_id", p.ItemID),
		zap.Int("qty", p.Qty),
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

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO purchases (id, workspace_id, vendor_id, item_id, qty, unit_price, total, date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`, p.ID, p.WorkspaceID, p.VendorID, p.ItemID, p.Qty, p.UnitPrice, p.Total, p.Date, p.Notes).
		Scan(&p.CreatedAt)
	if err != nil {
		log.Error("failed to insert purchase", zap.Error(err))
		return err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE items
		SET qty = qty + $1, updated_at = NOW()
		WHERE id = $2 AND workspace_id = $3
	`, p.Qty, p.ItemID, p.WorkspaceID)
	if err != nil {
		log.Error("failed to increment item quantity", zap.Error(err))
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrItemNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit purchase transaction", zap.Error(err))
		return err
	}

	committed = true
	log.Info("purchase recorded")
	return nil
}

func (r *repository) List(ctx context.Context, workspaceID string) ([]*Purchase, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.workspace_id, p.vendor_id, p.item_id, p.qty, p.unit_price,
			p.total, p.date, p.notes, p.created_at, v.name, i.name
		FROM purchases p
		JOIN vendors v ON v.id = p.vendor_id
		JOIN items i ON i.id = p.item_id
		WHERE p.workspace_id = $1
		ORDER BY p.date DESC
	`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []*Purchase
	for rows.Next() {
		var p Purchase
		if err := rows.Scan(&p.ID, &p.WorkspaceID, &p.VendorID, &p.ItemID, &p.Qty, &p.UnitPrice,
			&p.Total, &p.Date, &p.Notes, &p.CreatedAt, &p.VendorName, &p.ItemName); err != nil {
			return nil, err
		}
		purchases = append(purchases, &p)
	}

	return purchases, rows.Err()
}
