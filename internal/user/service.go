package user

import (
	"context"
	"errors"
	"time"

	"atelier-be/internal/auth"
	"atelier-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, email, password string) (*User, string, error)
	Logout(ctx context.Context, userID string) error
	Whoami(ctx context.Context, id auth.Identity) (*User, error)
	Register(ctx context.Context, u *User, plainPassword string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Login verifies credentials, records a session row, and issues an
// access token scoped to the user's workspace.
func (s *service) Login(ctx context.Context, email, password string) (*User, string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		log.Error("failed to load user", zap.Error(err))
		return nil, "", err
	}

	if !auth.CheckPasswordHash(password, u.Password) {
		log.Warn("password mismatch", zap.String("user_id", u.ID))
		return nil, "", ErrInvalidCredentials
	}

	if _, err := s.repo.CreateSession(ctx, u.ID, time.Now().Add(24*time.Hour)); err != nil {
		log.Error("failed to create session", zap.Error(err))
		return nil, "", err
	}

	token, err := auth.GenerateToken(u.ID, u.WorkspaceID, u.Email, u.Role)
	if err != nil {
		return nil, "", err
	}

	log.Info("login success", zap.String("user_id", u.ID))
	return u, token, nil
}

func (s *service) Logout(ctx context.Context, userID string) error {
	return s.repo.DeleteSessions(ctx, userID)
}

func (s *service) Whoami(ctx context.Context, id auth.Identity) (*User, error) {
	return s.repo.GetByID(ctx, id.WorkspaceID, id.UserID)
}

func (s *service) Register(ctx context.Context, u *User, plainPassword string) error {
	hashed, err := auth.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	u.Password = hashed

	return s.repo.Create(ctx, u)
}
