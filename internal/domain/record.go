package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a lead owned by one identity.
type Contact struct {
	ID        uuid.UUID     `db:"id"`
	UserID    uuid.UUID     `db:"user_id"`
	FullName  string        `db:"full_name"`
	Email     *string       `db:"email"`
	Phone     *string       `db:"phone"`
	Company   *string       `db:"company"`
	Source    *string       `db:"source"`
	Notes     *string       `db:"notes"`
	Status    ContactStatus `db:"status"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

func (c Contact) RecordID() uuid.UUID { return c.ID }

// Property is a listing owned by one identity.
type Property struct {
	ID           uuid.UUID      `db:"id"`
	UserID       uuid.UUID      `db:"user_id"`
	Title        string         `db:"title"`
	Address      string         `db:"address"`
	PropertyType PropertyType   `db:"property_type"`
	Status       PropertyStatus `db:"status"`
	Price        *float64       `db:"price"`
	Bedrooms     *int           `db:"bedrooms"`
	Bathrooms    *int           `db:"bathrooms"`
	AreaSqft     *float64       `db:"area_sqft"`
	Description  *string        `db:"description"`
	ContactID    *uuid.UUID     `db:"contact_id"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (p Property) RecordID() uuid.UUID { return p.ID }

// Task is a follow-up item, optionally linked to a contact and a property.
type Task struct {
	ID          uuid.UUID    `db:"id"`
	UserID      uuid.UUID    `db:"user_id"`
	Title       string       `db:"title"`
	Description *string      `db:"description"`
	DueDate     *time.Time   `db:"due_date"`
	Priority    TaskPriority `db:"priority"`
	Status      TaskStatus   `db:"status"`
	ContactID   *uuid.UUID   `db:"contact_id"`
	PropertyID  *uuid.UUID   `db:"property_id"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

func (t Task) RecordID() uuid.UUID { return t.ID }

// IsDone reports whether the task is completed.
func (t Task) IsDone() bool { return t.Status == TaskStatusDone }

// Activity is an entry of the per-owner activity feed.
type Activity struct {
	ID         uuid.UUID      `db:"id"`
	UserID     uuid.UUID      `db:"user_id"`
	Action     ActivityAction `db:"action"`
	EntityType EntityKind     `db:"entity_type"`
	EntityID   *uuid.UUID     `db:"entity_id"`
	Metadata   map[string]any `db:"metadata"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (a Activity) RecordID() uuid.UUID { return a.ID }

// IsOverdue reports whether an open task was due before the day of now.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.IsDone() {
		return false
	}
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return t.DueDate.Before(startOfDay)
}
