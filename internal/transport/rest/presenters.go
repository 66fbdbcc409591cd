package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/realty-crm/internal/domain"
	dl "github.com/heartmarshall/realty-crm/internal/transport/dataloader"
)

type contactResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	Source    *string   `json:"source"`
	Notes     *string   `json:"notes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func presentContacts(_ context.Context, items []domain.Contact) ([]any, error) {
	out := make([]any, len(items))
	for i, c := range items {
		out[i] = contactResponse{
			ID:        c.ID,
			FullName:  c.FullName,
			Email:     c.Email,
			Phone:     c.Phone,
			Company:   c.Company,
			Source:    c.Source,
			Notes:     c.Notes,
			Status:    c.Status.String(),
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
	}
	return out, nil
}

type propertyResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Address      string     `json:"address"`
	PropertyType string     `json:"property_type"`
	Status       string     `json:"status"`
	Price        *float64   `json:"price"`
	Bedrooms     *int       `json:"bedrooms"`
	Bathrooms    *int       `json:"bathrooms"`
	AreaSqft     *float64   `json:"area_sqft"`
	Description  *string    `json:"description"`
	ContactID    *uuid.UUID `json:"contact_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func presentProperties(_ context.Context, items []domain.Property) ([]any, error) {
	out := make([]any, len(items))
	for i, p := range items {
		out[i] = propertyResponse{
			ID:           p.ID,
			Title:        p.Title,
			Address:      p.Address,
			PropertyType: p.PropertyType.String(),
			Status:       p.Status.String(),
			Price:        p.Price,
			Bedrooms:     p.Bedrooms,
			Bathrooms:    p.Bathrooms,
			AreaSqft:     p.AreaSqft,
			Description:  p.Description,
			ContactID:    p.ContactID,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		}
	}
	return out, nil
}

type taskResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	DueDate      *string    `json:"due_date"`
	Overdue      bool       `json:"overdue"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	ContactID    *uuid.UUID `json:"contact_id"`
	ContactName  *string    `json:"contact_name"`
	PropertyID   *uuid.UUID `json:"property_id"`
	PropertyName *string    `json:"property_title"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// taskPresenter resolves the names of linked contacts and properties
// through the request's loaders, so a page of tasks costs two queries.
func taskPresenter(now func() time.Time) func(ctx context.Context, items []domain.Task) ([]any, error) {
	return func(ctx context.Context, items []domain.Task) ([]any, error) {
		loaders := dl.FromContext(ctx)

		contacts := make([]dataloader.Thunk[*domain.Contact], len(items))
		properties := make([]dataloader.Thunk[*domain.Property], len(items))
		for i, t := range items {
			if t.ContactID != nil {
				contacts[i] = loaders.ContactByID.Load(ctx, *t.ContactID)
			}
			if t.PropertyID != nil {
				properties[i] = loaders.PropertyByID.Load(ctx, *t.PropertyID)
			}
		}

		today := now()
		out := make([]any, len(items))
		for i, t := range items {
			resp := taskResponse{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Overdue:     t.IsOverdue(today),
				Priority:    t.Priority.String(),
				Status:      t.Status.String(),
				ContactID:   t.ContactID,
				PropertyID:  t.PropertyID,
				CreatedAt:   t.CreatedAt,
				UpdatedAt:   t.UpdatedAt,
			}
			if t.DueDate != nil {
				due := t.DueDate.Format(time.DateOnly)
				resp.DueDate = &due
			}
			if contacts[i] != nil {
				c, err := contacts[i]()
				if err != nil {
					return nil, fmt.Errorf("load contact of task %s: %w", t.ID, err)
				}
				if c != nil {
					resp.ContactName = &c.FullName
				}
			}
			if properties[i] != nil {
				p, err := properties[i]()
				if err != nil {
					return nil, fmt.Errorf("load property of task %s: %w", t.ID, err)
				}
				if p != nil {
					resp.PropertyName = &p.Title
				}
			}
			out[i] = resp
		}
		return out, nil
	}
}

type activityResponse struct {
	ID         uuid.UUID      `json:"id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   *uuid.UUID     `json:"entity_id"`
	Metadata   map[string]any `json:"metadata"`
	CreatedAt  time.Time      `json:"created_at"`
}

func presentActivities(items []domain.Activity) []activityResponse {
	out := make([]activityResponse, len(items))
	for i, a := range items {
		out[i] = activityResponse{
			ID:         a.ID,
			Action:     a.Action.String(),
			EntityType: a.EntityType.String(),
			EntityID:   a.EntityID,
			Metadata:   a.Metadata,
			CreatedAt:  a.CreatedAt,
		}
	}
	return out
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	RoleLabel string    `json:"role_label"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`
}

func presentUser(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role.String(),
		RoleLabel: u.Role.Label(),
		Confirmed: u.IsConfirmed(),
		CreatedAt: u.CreatedAt,
	}
}
