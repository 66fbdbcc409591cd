package task

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/realty-crm/internal/domain"
)

const dateLayout = "2006-01-02"

// Form is the create and update input of a task. DueDate accepts a calendar
// date or an RFC 3339 timestamp; an empty value clears it.
type Form struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     string     `json:"due_date"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	ContactID   *uuid.UUID `json:"contact_id"`
	PropertyID  *uuid.UUID `json:"property_id"`
}

func (f Form) Validate() error {
	_, dueErr := parseDue(f.DueDate)

	var c domain.Checker
	c.Check(strings.TrimSpace(f.Title) != "", "title", "required")
	c.Check(dueErr == nil, "due_date", "invalid date")
	c.Check(f.Priority == "" || domain.TaskPriority(f.Priority).IsValid(), "priority", "unknown priority")
	c.Check(f.Status == "" || domain.TaskStatus(f.Status).IsValid(), "status", "unknown status")
	return c.Err()
}

func (f Form) Values() map[string]any {
	priority := domain.TaskPriorityMedium
	if f.Priority != "" {
		priority = domain.TaskPriority(f.Priority)
	}
	status := domain.TaskStatusPending
	if f.Status != "" {
		status = domain.TaskStatus(f.Status)
	}
	due, _ := parseDue(f.DueDate)

	var description *string
	if f.Description != nil {
		if d := strings.TrimSpace(*f.Description); d != "" {
			description = &d
		}
	}

	return map[string]any{
		"title":       strings.TrimSpace(f.Title),
		"description": description,
		"due_date":    due,
		"priority":    priority.String(),
		"status":      status.String(),
		"contact_id":  nonNil(f.ContactID),
		"property_id": nonNil(f.PropertyID),
	}
}

func parseDue(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nonNil(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}
