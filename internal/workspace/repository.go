package workspace

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

var ErrWorkspaceNotFound = errors.New("workspace not found")

type Repository interface {
	Create(ctx context.Context, name string, jobNumberFloor int) (*Workspace, error)
	GetByID(ctx context.Context, id string) (*Workspace, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name string, jobNumberFloor int) (*Workspace, error) {
	ws := &Workspace{
		ID:             uuid.New().String(),
		Name:           name,
		JobNumberFloor: jobNumberFloor,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO workspaces (id, name, job_number_floor)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, ws.ID, ws.Name, ws.JobNumberFloor).Scan(&ws.CreatedAt)
	if err != nil {
		return nil, err
	}

	return ws, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Workspace, error) {
	var ws Workspace
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, job_number_floor, created_at
		FROM workspaces
		WHERE id = $1
	`, id).Scan(&ws.ID, &ws.Name, &ws.JobNumberFloor, &ws.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkspaceNotFound
	}
	if err != nil {
		return nil, err
	}

	return &ws, nil
}
