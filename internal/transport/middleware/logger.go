package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/realty-crm/internal/session"
	"github.com/heartmarshall/realty-crm/pkg/ctxutil"
)

// Logger writes one http.request record per request. Signed in sessions add
// user_id and role; redirects add their location so guard decisions can be
// traced. 5xx is logged at error level, 4xx at warn.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if state := session.FromContext(r.Context()); state.Authenticated {
				attrs = append(attrs, slog.String("user_id", state.UserID.String()))
				if state.Role != "" {
					attrs = append(attrs, slog.String("role", state.Role.String()))
				}
			}
			if sw.status >= 300 && sw.status < 400 {
				attrs = append(attrs, slog.String("location", sw.Header().Get("Location")))
			}

			logger.LogAttrs(r.Context(), levelFor(sw.status), "http.request", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// statusWriter records the status code and body size of a response.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}
