package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/realty-crm/internal/session"
)

// RequireAdmin guards API routes that only administrators may call.
// Unlike page routes these answer with a status instead of a redirect.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := session.FromContext(r.Context())
		switch {
		case !state.Authenticated:
			writeError(w, http.StatusUnauthorized, "unauthorized")
		case !state.Role.IsAdmin():
			writeError(w, http.StatusForbidden, "admin access required")
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
