package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/internal/service/auth"
)

type identityService interface {
	ListIdentities(ctx context.Context, limit, offset int) ([]domain.User, int, error)
}

// roleAssigner goes through the session provider so cached sessions see
// the new role on their next request.
type roleAssigner interface {
	AssignRole(ctx context.Context, input auth.AssignRoleInput) (*domain.User, error)
}

// AdminHandler serves admin REST endpoints. Routes are expected to sit
// behind middleware.RequireAdmin; the services check the role again.
type AdminHandler struct {
	identities identityService
	roles      roleAssigner
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(identities identityService, roles roleAssigner, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		identities: identities,
		roles:      roles,
		log:        logger.With("handler", "admin"),
	}
}

type identitiesResponse struct {
	Items []userResponse `json:"items"`
	Total int            `json:"total"`
}

// Identities lists accounts.
// GET /admin/identities?limit=50&offset=0
func (h *AdminHandler) Identities(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	users, total, err := h.identities.ListIdentities(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]userResponse, len(users))
	for i := range users {
		items[i] = presentUser(&users[i])
	}
	writeJSON(w, http.StatusOK, identitiesResponse{Items: items, Total: total})
}

type assignRoleRequest struct {
	Role string `json:"role"`
}

// AssignRole changes the role of an account.
// PUT /admin/identities/{id}/role
func (h *AdminHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req assignRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.roles.AssignRole(r.Context(), auth.AssignRoleInput{UserID: id, Role: req.Role})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, presentUser(user))
}
