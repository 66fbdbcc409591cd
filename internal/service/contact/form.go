package contact

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/realty-crm/internal/domain"
)

// Form is the create and update input of a contact.
type Form struct {
	FullName string  `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Company  *string `json:"company"`
	Source   *string `json:"source"`
	Notes    *string `json:"notes"`
	Status   string  `json:"status"`
}

func (f Form) Validate() error {
	var c domain.Checker

	name := strings.TrimSpace(f.FullName)
	c.Check(name != "", "full_name", "required")
	c.Check(len(name) <= 200, "full_name", "too long")
	if email := optional(f.Email); email != nil {
		_, err := mail.ParseAddress(*email)
		c.Check(err == nil, "email", "invalid email")
	}
	c.Check(f.Status == "" || domain.ContactStatus(f.Status).IsValid(), "status", "unknown status")

	return c.Err()
}

func (f Form) Values() map[string]any {
	status := domain.ContactStatusNew
	if f.Status != "" {
		status = domain.ContactStatus(f.Status)
	}
	return map[string]any{
		"full_name": strings.TrimSpace(f.FullName),
		"email":     optional(f.Email),
		"phone":     optional(f.Phone),
		"company":   optional(f.Company),
		"source":    optional(f.Source),
		"notes":     optional(f.Notes),
		"status":    status.String(),
	}
}

// optional trims s and turns blank input into NULL.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
