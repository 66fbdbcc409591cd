package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one runs outermost. Nil entries are
// skipped, which lets optional middleware (metrics, rate limits) be left
// unset in the router configuration.
func Chain(mws ...Middleware) Middleware {
	active := make([]Middleware, 0, len(mws))
	for _, m := range mws {
		if m != nil {
			active = append(active, m)
		}
	}

	return func(final http.Handler) http.Handler {
		for i := len(active) - 1; i >= 0; i-- {
			final = active[i](final)
		}
		return final
	}
}
