package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"atelier-be/internal/auth"
	"atelier-be/internal/utils"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	utils.WriteJSON(w, code, v)
}

func writeError(w http.ResponseWriter, message string, code int) {
	utils.WriteJSONError(w, message, code)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// identity returns the resolved caller. Routes behind RequirePermission
// always have one; the ok path is for the few open routes.
func identity(r *http.Request) (auth.Identity, bool) {
	return auth.IdentityFrom(r.Context())
}

// parseDate accepts RFC3339 timestamps and plain yyyy-mm-dd dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
