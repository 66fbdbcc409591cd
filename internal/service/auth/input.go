package auth

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/realty-crm/internal/domain"
)

const (
	minPasswordLen = 6
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLen = 72
)

// SignUpInput holds parameters for creating an identity.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
}

func (i *SignUpInput) normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.FullName = strings.TrimSpace(i.FullName)
}

func (i SignUpInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, validatePassword(i.Password)...)

	if i.FullName == "" {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	} else if len(i.FullName) > 200 {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SignInInput holds parameters for password sign-in.
type SignInInput struct {
	Email    string
	Password string
}

func (i SignInInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ConfirmInput carries the token from the confirmation link.
type ConfirmInput struct {
	Token string
}

func (i ConfirmInput) Validate() error {
	if i.Token == "" {
		return domain.NewValidationError("token", "required")
	}
	if len(i.Token) > 512 {
		return domain.NewValidationError("token", "too long")
	}
	return nil
}

// AssignRoleInput changes the role of another identity.
type AssignRoleInput struct {
	UserID uuid.UUID
	Role   string
}

func (i AssignRoleInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if _, ok := domain.ParseRole(i.Role); !ok {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > 254 {
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid email"}}
	}
	return nil
}

func validatePassword(password string) []domain.FieldError {
	switch {
	case password == "":
		return []domain.FieldError{{Field: "password", Message: "required"}}
	case len(password) < minPasswordLen:
		return []domain.FieldError{{Field: "password", Message: "too short"}}
	case len(password) > maxPasswordLen:
		return []domain.FieldError{{Field: "password", Message: "too long"}}
	}
	return nil
}
