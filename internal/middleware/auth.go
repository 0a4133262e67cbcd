package middleware

import (
	"net/http"

	"atelier-be/internal/auth"
	"atelier-be/internal/rbac"
	"atelier-be/internal/utils"
)

// AuthMiddleware resolves the access token into an Identity on the request
// context. Requests without a valid token pass through unauthenticated;
// protected routes reject them via RequirePermission.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := auth.WithIdentity(r.Context(), auth.Identity{
			UserID:      claims.UserID,
			WorkspaceID: claims.WorkspaceID,
			Email:       claims.Email,
			Role:        claims.Role,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission rejects requests whose identity lacks the given
// action on the given resource.
func RequirePermission(resource, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := auth.IdentityFrom(r.Context())
			if !ok || id.WorkspaceID == "" {
				utils.WriteJSONError(w, "not authenticated", http.StatusUnauthorized)
				return
			}

			if !rbac.HasPermission(rbac.Role(id.Role), resource, action) {
				utils.WriteJSONError(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
