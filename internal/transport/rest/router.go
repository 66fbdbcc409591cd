package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/internal/navigation"
	"github.com/heartmarshall/realty-crm/internal/service/contact"
	"github.com/heartmarshall/realty-crm/internal/service/property"
	"github.com/heartmarshall/realty-crm/internal/transport/middleware"
)

// Handlers groups every endpoint of the API.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Pages      *PageHandler
	Leads      *RecordHandler[domain.Contact, contact.Form]
	Properties *RecordHandler[domain.Property, property.Form]
	Tasks      *TaskHandler
	Admin      *AdminHandler
	// Metrics is mounted at MetricsPath when not nil.
	Metrics     http.Handler
	MetricsPath string
}

// Middlewares are applied in field order, outermost first. Nil entries
// are skipped.
type Middlewares struct {
	RequestID middleware.Middleware
	Recovery  middleware.Middleware
	Session   middleware.Middleware
	Logger    middleware.Middleware
	Metrics   middleware.Middleware
	CORS      middleware.Middleware
	Guard     middleware.Middleware
	// AuthLimit rate limits the unauthenticated auth endpoints.
	AuthLimit middleware.Middleware
	// Loaders installs the per-request dataloaders used by task responses.
	Loaders middleware.Middleware
}

var placeholderPages = []navigation.DestinationID{
	navigation.Contracts,
	navigation.BuyRequests,
	navigation.Invoices,
	navigation.Shipments,
	navigation.Referrals,
	navigation.Settings,
}

// NewRouter builds the HTTP handler of the service.
func NewRouter(h Handlers, mw Middlewares) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP, middleware.Chain(mw.RequestID, mw.Recovery, mw.Session, mw.Logger, mw.Metrics, mw.CORS, mw.Guard))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})

	r.Route(navigation.AuthPath, func(r chi.Router) {
		r.Get("/", h.Auth.Page)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Chain(mw.AuthLimit))
			r.Post("/sign-in", h.Auth.SignIn)
			r.Post("/sign-up", h.Auth.SignUp)
			r.Post("/refresh", h.Auth.Refresh)
			r.Get("/confirm", h.Auth.Confirm)
			r.Post("/confirm", h.Auth.Confirm)
		})
		r.Post("/sign-out", h.Auth.SignOut)
	})

	r.Get("/navigation", h.Pages.Navigation)
	r.Get("/dashboard", h.Pages.Dashboard)
	r.Get("/analytics", h.Pages.Analytics)

	r.Route("/leads", h.Leads.Routes)
	r.Route("/properties", h.Properties.Routes)
	r.Route("/tasks", func(r chi.Router) {
		r.Use(middleware.Chain(mw.Loaders))
		h.Tasks.Routes(r)
	})

	for _, id := range placeholderPages {
		dest, _ := navigation.Get(id)
		r.Get(dest.Path, h.Pages.Placeholder(id))
	}

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/identities", h.Admin.Identities)
		r.Put("/identities/{id}/role", h.Admin.AssignRole)
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if h.Metrics != nil {
		r.Handle(h.MetricsPath, h.Metrics)
	}

	return r
}
