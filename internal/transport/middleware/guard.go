package middleware

import (
	"net/http"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/internal/navigation"
	"github.com/heartmarshall/realty-crm/internal/session"
)

type navigationDecider interface {
	Decide(authenticated bool, role domain.Role, path string) navigation.Decision
}

// Guard enforces navigation authorization. It must run after Session.
// Denied requests are redirected and never reach the target handler:
// 302 for GET and HEAD, 303 for everything else so the follow-up is a GET.
// observe, when not nil, receives the outcome of every decision.
func Guard(decider navigationDecider, observe func(outcome string)) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := session.FromContext(r.Context())
			d := decider.Decide(state.Authenticated, state.Role, r.URL.Path)
			if observe != nil {
				observe(d.Outcome.String())
			}

			if d.Outcome == navigation.Allow {
				next.ServeHTTP(w, r)
				return
			}

			status := http.StatusSeeOther
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				status = http.StatusFound
			}
			http.Redirect(w, r, d.Location, status)
		})
	}
}
