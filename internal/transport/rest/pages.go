package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/realty-crm/internal/navigation"
	"github.com/heartmarshall/realty-crm/internal/service/activity"
	"github.com/heartmarshall/realty-crm/internal/service/insight"
	"github.com/heartmarshall/realty-crm/internal/session"
)

type insightService interface {
	Dashboard(ctx context.Context, recent int) (*insight.Dashboard, error)
	Analytics(ctx context.Context) (*insight.Analytics, error)
}

// PageHandler serves the read-only pages: navigation, dashboard, analytics
// and the placeholder pages.
type PageHandler struct {
	insight insightService
	log     *slog.Logger
}

func NewPageHandler(insight insightService, logger *slog.Logger) *PageHandler {
	return &PageHandler{insight: insight, log: logger.With("handler", "pages")}
}

type navItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

type navigationResponse struct {
	Role      string    `json:"role"`
	RoleLabel string    `json:"role_label"`
	Items     []navItem `json:"items"`
}

// Navigation handles GET /navigation: the sidebar of the session's role.
func (h *PageHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	state := session.FromContext(r.Context())
	if !state.Authenticated {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	role := state.EffectiveRole()
	dests := navigation.Resolve(role)
	items := make([]navItem, len(dests))
	for i, d := range dests {
		items[i] = navItem{ID: string(d.ID), Title: d.Title, Path: d.Path, Icon: string(d.Icon)}
	}

	writeJSON(w, http.StatusOK, navigationResponse{
		Role:      role.String(),
		RoleLabel: role.Label(),
		Items:     items,
	})
}

type dashboardResponse struct {
	Stats  []insight.Stat     `json:"stats"`
	Recent []activityResponse `json:"recent_activities"`
}

// Dashboard handles GET /dashboard.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.insight.Dashboard(r.Context(), activity.RecentLimit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboardResponse{Stats: d.Stats, Recent: presentActivities(d.Recent)})
}

// Analytics handles GET /analytics.
func (h *PageHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	a, err := h.insight.Analytics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

type placeholder struct {
	Description string
	Empty       string
}

var placeholders = map[navigation.DestinationID]placeholder{
	navigation.Contracts:   {"Manage your contracts and agreements.", "No contracts yet. Create your first contract to get started."},
	navigation.BuyRequests: {"View and manage property purchase requests.", "No buy requests yet."},
	navigation.Invoices:    {"Track and manage invoices.", "No invoices yet."},
	navigation.Shipments:   {"Track shipments and deliveries.", "No shipments yet."},
	navigation.Referrals:   {"Track your affiliate referrals and commissions.", "No referrals yet."},
	navigation.Settings:    {"Manage your account and preferences.", "Settings coming soon."},
}

type placeholderResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EmptyText   string `json:"empty_text"`
	Items       []any  `json:"items"`
}

// Placeholder serves a page that has no data behind it yet.
func (h *PageHandler) Placeholder(id navigation.DestinationID) http.HandlerFunc {
	dest, _ := navigation.Get(id)
	p := placeholders[id]
	resp := placeholderResponse{
		Title:       dest.Title,
		Description: p.Description,
		EmptyText:   p.Empty,
		Items:       []any{},
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}
