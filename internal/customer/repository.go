package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, workspaceID, id string) (*Customer, error)
	List(ctx context.Context, workspaceID string) ([]*Customer, error)
	Delete(ctx context.Context, workspaceID, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const customerColumns = `
	id, workspace_id, name, phone, email, address, notes,
	height, weight,
	chest, waist, hips, shoulder, sleeve_length, neck, armhole,
	inseam, thigh, knee, calf, ankle,
	back_length, crotch,
	preferred_fit, fabric_preferences,
	created_at, updated_at`

func scanCustomer(row interface{ Scan(...any) error }) (*Customer, error) {
	var c Customer
	err := row.Scan(
		&c.ID, &c.WorkspaceID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Notes,
		&c.Height, &c.Weight,
		&c.Chest, &c.Waist, &c.Hips, &c.Shoulder, &c.SleeveLength, &c.Neck, &c.Armhole,
		&c.Inseam, &c.Thigh, &c.Knee, &c.Calf, &c.Ankle,
		&c.BackLength, &c.Crotch,
		&c.PreferredFit, &c.FabricPreferences,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, c *Customer) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO customers (
			id, workspace_id, name, phone, email, address, notes,
			height, weight,
			chest, waist, hips, shoulder, sleeve_length, neck, armhole,
			inseam, thigh, knee, calf, ankle,
			back_length, crotch,
			preferred_fit, fabric_preferences
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,
			$8,$9,
			$10,$11,$12,$13,$14,$15,$16,
			$17,$18,$19,$20,$21,
			$22,$23,
			$24,$25
		)
		RETURNING created_at, updated_at
	`,
		c.ID, c.WorkspaceID, c.Name, c.Phone, c.Email, c.Address, c.Notes,
		c.Height, c.Weight,
		c.Chest, c.Waist, c.Hips, c.Shoulder, c.SleeveLength, c.Neck, c.Armhole,
		c.Inseam, c.Thigh, c.Knee, c.Calf, c.Ankle,
		c.BackLength, c.Crotch,
		c.PreferredFit, c.FabricPreferences,
	).Scan(&c.CreatedAt, &c.UpdatedAt)

	return err
}

func (r *repository) Update(ctx context.Context, c *Customer) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE customers SET
			name = $1, phone = $2, email = $3, address = $4, notes = $5,
			height = $6, weight = $7,
			chest = $8, waist = $9, hips = $10, shoulder = $11,
			sleeve_length = $12, neck = $13, armhole = $14,
			inseam = $15, thigh = $16, knee = $17, calf = $18, ankle = $19,
			back_length = $20, crotch = $21,
			preferred_fit = $22, fabric_preferences = $23,
			updated_at = NOW()
		WHERE id = $24 AND workspace_id = $25
	`,
		c.Name, c.Phone, c.Email, c.Address, c.Notes,
		c.Height, c.Weight,
		c.Chest, c.Waist, c.Hips, c.Shoulder,
		c.SleeveLength, c.Neck, c.Armhole,
		c.Inseam, c.Thigh, c.Knee, c.Calf, c.Ankle,
		c.BackLength, c.Crotch,
		c.PreferredFit, c.FabricPreferences,
		c.ID, c.WorkspaceID,
	)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, workspaceID, id string) (*Customer, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE id = $1 AND workspace_id = $2
	`, id, workspaceID)

	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	return c, err
}

func (r *repository) List(ctx context.Context, workspaceID string) ([]*Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE workspace_id = $1
		ORDER BY name ASC
	`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func (r *repository) Delete(ctx context.Context, workspaceID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM customers WHERE id = $1 AND workspace_id = $2
	`, id, workspaceID)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
