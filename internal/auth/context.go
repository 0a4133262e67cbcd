package auth

import "context"

// Identity is the resolved caller: every workspace-scoped operation
// receives one instead of reading session state on its own.
type Identity struct {
	UserID      string
	WorkspaceID string
	Email       string
	Role        string
}

type ctxKey string

const identityKey ctxKey = "identity"

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
