package property

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/realty-crm/internal/domain"
)

// Form is the create and update input of a property.
type Form struct {
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
}

func (f Form) Validate() error {
	var c domain.Checker
	c.Check(strings.TrimSpace(f.Title) != "", "title", "required")
	c.Check(strings.TrimSpace(f.Address) != "", "address", "required")
	c.Check(f.PropertyType == "" || domain.PropertyType(f.PropertyType).IsValid(), "property_type", "unknown type")
	c.Check(f.Status == "" || domain.PropertyStatus(f.Status).IsValid(), "status", "unknown status")
	c.Check(nonNegative(f.Price), "price", "must not be negative")
	c.Check(nonNegative(f.Bedrooms), "bedrooms", "must not be negative")
	c.Check(nonNegative(f.Bathrooms), "bathrooms", "must not be negative")
	c.Check(nonNegative(f.AreaSqft), "area_sqft", "must not be negative")
	return c.Err()
}

func nonNegative[N int | float64](v *N) bool {
	return v == nil || *v >= 0
}

func (f Form) Values() map[string]any {
	kind := domain.PropertyTypeResidential
	if f.PropertyType != "" {
		kind = domain.PropertyType(f.PropertyType)
	}
	status := domain.PropertyStatusAvailable
	if f.Status != "" {
		status = domain.PropertyStatus(f.Status)
	}

	var description *string
	if f.Description != nil {
		if d := strings.TrimSpace(*f.Description); d != "" {
			description = &d
		}
	}
	var contactID *uuid.UUID
	if f.ContactID != nil && *f.ContactID != uuid.Nil {
		contactID = f.ContactID
	}

	return map[string]any{
		"title":         strings.TrimSpace(f.Title),
		"address":       strings.TrimSpace(f.Address),
		"property_type": kind.String(),
		"status":        status.String(),
		"price":         f.Price,
		"bedrooms":      f.Bedrooms,
		"bathrooms":     f.Bathrooms,
		"area_sqft":     f.AreaSqft,
		"description":   description,
		"contact_id":    contactID,
	}
}
