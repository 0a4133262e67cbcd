package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier-be/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("ValidToken", func(t *testing.T) {
		token, err := auth.GenerateToken("user-1", "ws-1", "owner@example.com", "OWNER")
		require.NoError(t, err)

		var got auth.Identity
		var found bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, found = auth.IdentityFrom(r.Context())
		})

		r := httptest.NewRequest(http.MethodGet, "/orders", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		AuthMiddleware(next).ServeHTTP(httptest.NewRecorder(), r)

		require.True(t, found)
		assert.Equal(t, "user-1", got.UserID)
		assert.Equal(t, "ws-1", got.WorkspaceID)
		assert.Equal(t, "OWNER", got.Role)
	})

	t.Run("NoTokenPassesThrough", func(t *testing.T) {
		var found bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, found = auth.IdentityFrom(r.Context())
		})

		rec := httptest.NewRecorder()
		AuthMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.False(t, found)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("InvalidTokenPassesThrough", func(t *testing.T) {
		var found bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, found = auth.IdentityFrom(r.Context())
		})

		r := httptest.NewRequest(http.MethodGet, "/orders", nil)
		r.Header.Set("Authorization", "Bearer garbage")
		AuthMiddleware(next).ServeHTTP(httptest.NewRecorder(), r)

		assert.False(t, found)
	})
}

func TestRequirePermission(t *testing.T) {
	guard := RequirePermission("orders", "changeState")(okHandler())

	t.Run("Unauthenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders/1/state", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Allowed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/orders/1/state", nil)
		ctx := auth.WithIdentity(r.Context(), auth.Identity{
			UserID: "user-1", WorkspaceID: "ws-1", Role: "STAFF",
		})

		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, r.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Forbidden", func(t *testing.T) {
		deleteGuard := RequirePermission("customers", "delete")(okHandler())

		r := httptest.NewRequest(http.MethodDelete, "/customers/1", nil)
		ctx := auth.WithIdentity(r.Context(), auth.Identity{
			UserID: "user-2", WorkspaceID: "ws-1", Role: "STAFF",
		})

		rec := httptest.NewRecorder()
		deleteGuard.ServeHTTP(rec, r.WithContext(ctx))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("MissingWorkspace", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/orders/1/state", nil)
		ctx := auth.WithIdentity(r.Context(), auth.Identity{UserID: "user-1", Role: "OWNER"})

		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, r.WithContext(ctx))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	t.Run("StrictTierExhausts", func(t *testing.T) {
		rl := NewRateLimiter()
		defer rl.Stop()

		handler := rl.Middleware(okHandler())

		// burst of 5 on /auth/ endpoints, then 429
		var last int
		for i := 0; i < burstStrict+1; i++ {
			r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			r.RemoteAddr = "10.0.0.1:50000"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, r)
			last = rec.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})

	t.Run("CallersDoNotShareBuckets", func(t *testing.T) {
		rl := NewRateLimiter()
		defer rl.Stop()

		handler := rl.Middleware(okHandler())

		for i := 0; i < burstStrict; i++ {
			r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			r.RemoteAddr = "10.0.0.2:50000"
			handler.ServeHTTP(httptest.NewRecorder(), r)
		}

		r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		r.RemoteAddr = "10.0.0.3:50000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("TiersAreSeparate", func(t *testing.T) {
		rl := NewRateLimiter()
		defer rl.Stop()

		handler := rl.Middleware(okHandler())

		// Exhaust the strict bucket, the general one must still admit.
		for i := 0; i < burstStrict+1; i++ {
			r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			r.RemoteAddr = "10.0.0.4:50000"
			handler.ServeHTTP(httptest.NewRecorder(), r)
		}

		r := httptest.NewRequest(http.MethodGet, "/orders", nil)
		r.RemoteAddr = "10.0.0.4:50000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("UserKeyedWhenAuthenticated", func(t *testing.T) {
		rl := NewRateLimiter()
		defer rl.Stop()

		handler := rl.Middleware(okHandler())

		// Same IP, different users: buckets must not collide.
		for i := 0; i < burstStrict+1; i++ {
			r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			r.RemoteAddr = "10.0.0.5:50000"
			ctx := auth.WithIdentity(r.Context(), auth.Identity{UserID: "user-a", WorkspaceID: "ws-1"})
			handler.ServeHTTP(httptest.NewRecorder(), r.WithContext(ctx))
		}

		r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		r.RemoteAddr = "10.0.0.5:50000"
		ctx := auth.WithIdentity(r.Context(), auth.Identity{UserID: "user-b", WorkspaceID: "ws-1"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
