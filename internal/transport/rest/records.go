package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/internal/service/contact"
	"github.com/heartmarshall/realty-crm/internal/service/property"
	"github.com/heartmarshall/realty-crm/internal/service/record"
	"github.com/heartmarshall/realty-crm/internal/service/task"
)

type recordService[T any, F any] interface {
	List(ctx context.Context, q record.Query) ([]T, error)
	Get(ctx context.Context, id uuid.UUID) (T, error)
	Create(ctx context.Context, form F) (T, error)
	Update(ctx context.Context, id uuid.UUID, form F) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// presenter turns stored records into their response shape.
type presenter[T any] func(ctx context.Context, items []T) ([]any, error)

// RecordHandler serves the list page and the form endpoints of one
// collection.
type RecordHandler[T any, F any] struct {
	svc        recordService[T, F]
	facetParam string
	present    presenter[T]
	log        *slog.Logger
}

// NewRecordHandler creates a handler. facetParam is the query parameter
// that selects the facet, e.g. "status" for leads and "type" for
// properties.
func NewRecordHandler[T any, F any](
	svc recordService[T, F],
	facetParam string,
	present presenter[T],
	logger *slog.Logger,
	kind domain.EntityKind,
) *RecordHandler[T, F] {
	return &RecordHandler[T, F]{
		svc:        svc,
		facetParam: facetParam,
		present:    present,
		log:        logger.With("handler", kind.String()),
	}
}

// NewLeadHandler serves /leads, faceted by status.
func NewLeadHandler(svc recordService[domain.Contact, contact.Form], logger *slog.Logger) *RecordHandler[domain.Contact, contact.Form] {
	return NewRecordHandler(svc, "status", presentContacts, logger, domain.EntityKindContact)
}

// NewPropertyHandler serves /properties, faceted by listing type.
func NewPropertyHandler(svc recordService[domain.Property, property.Form], logger *slog.Logger) *RecordHandler[domain.Property, property.Form] {
	return NewRecordHandler(svc, "type", presentProperties, logger, domain.EntityKindProperty)
}

type listResponse struct {
	Items []any  `json:"items"`
	Total int    `json:"total"`
	Query string `json:"q,omitempty"`
	Facet string `json:"filter"`
}

// Routes mounts the collection on r.
func (h *RecordHandler[T, F]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List handles GET /{collection}?q=&{facet}=.
func (h *RecordHandler[T, F]) List(w http.ResponseWriter, r *http.Request) {
	q := record.Query{
		Search: r.URL.Query().Get("q"),
		Facet:  r.URL.Query().Get(h.facetParam),
	}

	items, err := h.svc.List(r.Context(), q)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.present(r.Context(), items)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	facet := q.Facet
	if facet == "" {
		facet = domain.FilterAll
	}
	writeJSON(w, http.StatusOK, listResponse{Items: out, Total: len(out), Query: q.Search, Facet: facet})
}

// Get handles GET /{collection}/{id}.
func (h *RecordHandler[T, F]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusOK, item)
}

// Create handles POST /{collection}. The stored record is returned.
func (h *RecordHandler[T, F]) Create(w http.ResponseWriter, r *http.Request) {
	var form F
	if !decodeJSON(w, r, &form) {
		return
	}

	item, err := h.svc.Create(r.Context(), form)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusCreated, item)
}

// Update handles PUT /{collection}/{id}. The form replaces every editable
// field.
func (h *RecordHandler[T, F]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var form F
	if !decodeJSON(w, r, &form) {
		return
	}

	item, err := h.svc.Update(r.Context(), id, form)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusOK, item)
}

// Delete handles DELETE /{collection}/{id}. Deleting a missing record
// succeeds.
func (h *RecordHandler[T, F]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RecordHandler[T, F]) writeOne(w http.ResponseWriter, r *http.Request, status int, item T) {
	out, err := h.present(r.Context(), []T{item})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, out[0])
}

type taskService interface {
	recordService[domain.Task, task.Form]
	ToggleDone(ctx context.Context, id uuid.UUID) (domain.Task, error)
}

// TaskHandler adds the done toggle to the task collection. Responses carry
// the names of linked records and must be served behind the dataloader
// middleware.
type TaskHandler struct {
	*RecordHandler[domain.Task, task.Form]
	toggler taskService
}

func NewTaskHandler(svc taskService, now func() time.Time, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		RecordHandler: NewRecordHandler[domain.Task, task.Form](svc, "status", taskPresenter(now), logger, domain.EntityKindTask),
		toggler:       svc,
	}
}

// Toggle handles POST /tasks/{id}/toggle.
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	t, err := h.toggler.ToggleDone(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusOK, t)
}

// Routes mounts the task collection and the toggle on r.
func (h *TaskHandler) Routes(r chi.Router) {
	h.RecordHandler.Routes(r)
	r.Post("/{id}/toggle", h.Toggle)
}
