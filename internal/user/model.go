package user

import "time"

type User struct {
	ID          string
	Email       string
	Password    string
	Name        string
	Role        string
	WorkspaceID string
	CreatedAt   time.Time
}

// Session is one issued login; logout deletes the row. The row backs
// server-side revocation of otherwise stateless access tokens.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
