package httpx

import (
	"errors"
	"net/http"

	"atelier-be/internal/rbac"
	"atelier-be/internal/user"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	UserSvc user.Service
}

func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/auth/login", h.login)
	r.Post("/auth/logout", h.logout)
	r.Get("/auth/whoami", h.whoami)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type loginResp struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	u, token, err := h.UserSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			writeError(w, err.Error(), http.StatusUnauthorized)
			return
		}
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, loginResp{
		Token: token,
		User:  userDTO{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role},
	})
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(r)
	if !ok {
		writeError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	if err := h.UserSvc.Logout(r.Context(), id.UserID); err != nil {
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:   "access_token",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AuthHandler) whoami(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(r)
	if !ok {
		writeError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	u, err := h.UserSvc.Whoami(r.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			writeError(w, "not authenticated", http.StatusUnauthorized)
			return
		}
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":        userDTO{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role},
		"workspaceId": u.WorkspaceID,
		"permissions": rbac.Permissions(rbac.Role(u.Role)),
	})
}
