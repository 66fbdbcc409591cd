package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/realty-crm/internal/session"
	"github.com/heartmarshall/realty-crm/pkg/ctxutil"
)

type sessionResolver interface {
	Resolve(ctx context.Context, token string) session.State
}

// Session resolves the bearer token of every request into a session.State
// and stores it in the request context. Requests without a usable token
// continue as Unauthenticated; it is up to the guard and handlers to
// reject them.
func Session(resolver sessionResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := session.Unauthenticated
			if token := extractBearerToken(r); token != "" {
				state = resolver.Resolve(r.Context(), token)
			}

			ctx := session.WithState(r.Context(), state)
			if state.Authenticated {
				ctx = ctxutil.WithUserID(ctx, state.UserID)
				if state.Role != "" {
					ctx = ctxutil.WithRole(ctx, state.Role)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearerToken returns the token of an "Authorization: Bearer" header.
func ExtractBearerToken(r *http.Request) string {
	return extractBearerToken(r)
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
