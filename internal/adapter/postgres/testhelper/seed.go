package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/pkg/ctxutil"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a confirmed identity with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "agent-" + suffix + "@example.com",
		FullName:     "Test Agent " + suffix,
		Role:         role,
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpla",
		ConfirmedAt:  &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, full_name, role, password_hash, confirmed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.FullName, string(user.Role), user.PasswordHash,
		user.ConfirmedAt, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// OwnerCtx returns a background context scoped to the given identity.
func OwnerCtx(id uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), id)
}

// SeedContact inserts a contact owned by userID.
func SeedContact(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string, status domain.ContactStatus) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO contacts (id, user_id, full_name, email, status) VALUES ($1, $2, $3, $4, $5)`,
		id, userID, name, "c-"+uniqueSuffix()+"@example.com", string(status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContact: %v", err)
	}
	return id
}

// SeedProperty inserts an available residential property owned by userID.
func SeedProperty(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO properties (id, user_id, title, address) VALUES ($1, $2, $3, $4)`,
		id, userID, title, "1 Test Street",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProperty: %v", err)
	}
	return id
}

// SeedTask inserts a task owned by userID.
func SeedTask(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string, due *time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO tasks (id, user_id, title, due_date) VALUES ($1, $2, $3, $4)`,
		id, userID, title, due,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask: %v", err)
	}
	return id
}
