package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, workspaceID, id string) (*User, error)
	CreateSession(ctx context.Context, userID string, expiresAt time.Time) (*Session, error)
	DeleteSessions(ctx context.Context, userID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, password, name, role, workspace_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, u.ID, u.Email, u.Password, u.Name, u.Role, u.WorkspaceID).Scan(&u.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return ErrEmailExists
	}

	return err
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password, name, role, workspace_id, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.WorkspaceID, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) GetByID(ctx context.Context, workspaceID, id string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password, name, role, workspace_id, created_at
		FROM users
		WHERE id = $1 AND workspace_id = $2
	`, id, workspaceID).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.WorkspaceID, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) CreateSession(ctx context.Context, userID string, expiresAt time.Time) (*Session, error) {
	s := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ExpiresAt: expiresAt,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO sessions (id, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, s.ID, s.UserID, s.ExpiresAt).Scan(&s.CreatedAt)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *repository) DeleteSessions(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}
