package rest

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/internal/service/auth"
	"github.com/heartmarshall/realty-crm/internal/service/contact"
	"github.com/heartmarshall/realty-crm/internal/service/insight"
	"github.com/heartmarshall/realty-crm/internal/service/property"
	"github.com/heartmarshall/realty-crm/internal/service/record"
	"github.com/heartmarshall/realty-crm/internal/service/task"
	"github.com/heartmarshall/realty-crm/internal/session"
)

// tokenResolver maps bearer tokens to fixed session states.
type tokenResolver map[string]session.State

func (m tokenResolver) Resolve(_ context.Context, token string) session.State {
	return m[token]
}

// fakeContacts validates forms like the real service and keeps records in
// memory. stored counts every write that reached storage.
type fakeContacts struct {
	mu     sync.Mutex
	items  []domain.Contact
	stored int
}

func (f *fakeContacts) List(_ context.Context, q record.Query) ([]domain.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Contact
	for _, c := range f.items {
		if q.Facet != "" && q.Facet != domain.FilterAll && c.Status.String() != q.Facet {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeContacts) Get(_ context.Context, id uuid.UUID) (domain.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.items {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Contact{}, domain.ErrNotFound
}

func (f *fakeContacts) Create(_ context.Context, form contact.Form) (domain.Contact, error) {
	if err := form.Validate(); err != nil {
		return domain.Contact{}, err
	}
	v := form.Values()
	c := domain.Contact{
		ID:       uuid.New(),
		FullName: v["full_name"].(string),
		Email:    v["email"].(*string),
		Phone:    v["phone"].(*string),
		Company:  v["company"].(*string),
		Source:   v["source"].(*string),
		Notes:    v["notes"].(*string),
		Status:   domain.ContactStatus(v["status"].(string)),
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored++
	f.items = append(f.items, c)
	return c, nil
}

func (f *fakeContacts) Update(_ context.Context, id uuid.UUID, form contact.Form) (domain.Contact, error) {
	if err := form.Validate(); err != nil {
		return domain.Contact{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.stored++
			f.items[i].FullName = form.FullName
			return f.items[i], nil
		}
	}
	return domain.Contact{}, domain.ErrNotFound
}

func (f *fakeContacts) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.items {
		if c.ID == id {
			f.stored++
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// emptyProperties answers every listing with no rows.
type emptyProperties struct{}

func (emptyProperties) List(context.Context, record.Query) ([]domain.Property, error) {
	return nil, nil
}

func (emptyProperties) Get(context.Context, uuid.UUID) (domain.Property, error) {
	return domain.Property{}, domain.ErrNotFound
}

func (emptyProperties) Create(_ context.Context, form property.Form) (domain.Property, error) {
	if err := form.Validate(); err != nil {
		return domain.Property{}, err
	}
	return domain.Property{ID: uuid.New(), Title: form.Title}, nil
}

func (emptyProperties) Update(context.Context, uuid.UUID, property.Form) (domain.Property, error) {
	return domain.Property{}, domain.ErrNotFound
}

func (emptyProperties) Delete(context.Context, uuid.UUID) error { return nil }

type fakeTasks struct {
	items []domain.Task
}

func (f *fakeTasks) List(context.Context, record.Query) ([]domain.Task, error) { return f.items, nil }

func (f *fakeTasks) Get(_ context.Context, id uuid.UUID) (domain.Task, error) {
	for _, t := range f.items {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Task{}, domain.ErrNotFound
}

func (f *fakeTasks) Create(context.Context, task.Form) (domain.Task, error) {
	return domain.Task{}, domain.ErrConflict
}

func (f *fakeTasks) Update(context.Context, uuid.UUID, task.Form) (domain.Task, error) {
	return domain.Task{}, domain.ErrConflict
}

func (f *fakeTasks) Delete(context.Context, uuid.UUID) error { return nil }

func (f *fakeTasks) ToggleDone(_ context.Context, id uuid.UUID) (domain.Task, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			if f.items[i].IsDone() {
				f.items[i].Status = domain.TaskStatusPending
			} else {
				f.items[i].Status = domain.TaskStatusDone
			}
			return f.items[i], nil
		}
	}
	return domain.Task{}, domain.ErrNotFound
}

type linkedRecords struct {
	contacts   []domain.Contact
	properties []domain.Property
	calls      atomic.Int32
}

func (l *linkedRecords) contactsByID(context.Context, []uuid.UUID) ([]domain.Contact, error) {
	l.calls.Add(1)
	return l.contacts, nil
}

func (l *linkedRecords) propertiesByID(context.Context, []uuid.UUID) ([]domain.Property, error) {
	l.calls.Add(1)
	return l.properties, nil
}

type getManyFunc[T any] func(ctx context.Context, ids []uuid.UUID) ([]T, error)

func (f getManyFunc[T]) GetMany(ctx context.Context, ids []uuid.UUID) ([]T, error) {
	return f(ctx, ids)
}

type fakeInsight struct{}

func (fakeInsight) Dashboard(_ context.Context, recent int) (*insight.Dashboard, error) {
	id := uuid.New()
	return &insight.Dashboard{
		Stats: []insight.Stat{{Label: "Total Leads", Value: 8}, {Label: "Deals Won", Value: 1}},
		Recent: []domain.Activity{{
			ID: uuid.New(), Action: domain.ActivityCreated, EntityType: domain.EntityKindContact,
			EntityID: &id, Metadata: map[string]any{"name": "Sarah Johnson"}, CreatedAt: time.Now(),
		}},
	}, nil
}

func (fakeInsight) Analytics(context.Context) (*insight.Analytics, error) {
	return &insight.Analytics{LeadsBySource: []insight.Bucket{{Name: "Unknown", Value: 2}}}, nil
}

type fakeAuth struct {
	requireConfirmation bool
	confirmed           []string
}

func (f *fakeAuth) SignUp(_ context.Context, in auth.SignUpInput) (*auth.SignUpResult, error) {
	if in.Email == "taken@example.com" {
		return nil, domain.ErrAlreadyExists
	}
	return &auth.SignUpResult{
		User:                &domain.User{ID: uuid.New(), Email: in.Email, FullName: in.FullName, Role: domain.RoleClient},
		PendingConfirmation: f.requireConfirmation,
	}, nil
}

func (f *fakeAuth) Confirm(_ context.Context, in auth.ConfirmInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	f.confirmed = append(f.confirmed, in.Token)
	return nil
}

func (f *fakeAuth) Refresh(context.Context, auth.RefreshInput) (*auth.AuthResult, error) {
	return nil, domain.ErrUnauthorized
}

func (f *fakeAuth) ListIdentities(context.Context, int, int) ([]domain.User, int, error) {
	return []domain.User{{ID: uuid.New(), Email: "admin@example.com", Role: domain.RoleAdmin}}, 1, nil
}

type fakeSessions struct {
	users     map[string]*domain.User
	signedOut int
}

func (f *fakeSessions) SignIn(_ context.Context, in auth.SignInInput) (*auth.AuthResult, session.State, error) {
	u, ok := f.users[in.Email]
	if !ok {
		return nil, session.Unauthenticated, domain.ErrUnauthorized
	}
	return &auth.AuthResult{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 15 * time.Minute, User: u},
		session.State{Authenticated: true, UserID: u.ID, Role: u.Role}, nil
}

func (f *fakeSessions) SignOut(context.Context) error {
	f.signedOut++
	return nil
}

func (f *fakeSessions) AssignRole(_ context.Context, in auth.AssignRoleInput) (*domain.User, error) {
	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return nil, domain.NewValidationError("role", "unknown role")
	}
	return &domain.User{ID: in.UserID, Role: role}, nil
}
