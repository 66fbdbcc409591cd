package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/pkg/ctxutil"
)

// ErrNoIdentity is returned when there is nobody to seed for.
var ErrNoIdentity = errors.New("no identity found, sign up first")

// PhaseResult holds the outcome of a single collection.
type PhaseResult struct {
	Written  int
	Skipped  int
	Duration time.Duration
}

// Pipeline seeds contacts first, then properties and tasks, which link to
// them, and finally the activity feed.
type Pipeline struct {
	log    *slog.Logger
	users  IdentityLister
	stores Stores
	cfg    Config
	now    func() time.Time

	mu      sync.Mutex
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, users IdentityLister, stores Stores, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		users:   users,
		stores:  stores,
		cfg:     cfg,
		now:     time.Now,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results
}

// Run seeds the selected identity and returns it.
func (p *Pipeline) Run(ctx context.Context) (*domain.User, error) {
	owner, err := p.owner(ctx)
	if err != nil {
		return nil, err
	}
	p.log.Info("seeding", slog.String("user_id", owner.ID.String()), slog.String("email", owner.Email))

	ctx = ctxutil.WithUserID(ctx, owner.ID)
	now := p.now()

	if err := p.phase(ctx, "contacts", p.stores.Contacts, contactRows(owner.ID)); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.phase(gctx, "properties", p.stores.Properties, propertyRows(owner.ID))
	})
	g.Go(func() error {
		return p.phase(gctx, "tasks", p.stores.Tasks, taskRows(owner.ID, now))
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := p.phase(ctx, "activities", p.stores.Activities, activityRows(owner.ID)); err != nil {
		return nil, err
	}

	p.log.Info("seed completed", slog.Int("phases_run", len(p.Results())))
	return owner, nil
}

func (p *Pipeline) owner(ctx context.Context) (*domain.User, error) {
	if email := strings.ToLower(strings.TrimSpace(p.cfg.OwnerEmail)); email != "" {
		u, err := p.users.GetByEmail(ctx, email)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNoIdentity, email)
		}
		if err != nil {
			return nil, fmt.Errorf("find owner: %w", err)
		}
		return u, nil
	}

	users, _, err := p.users.List(ctx, 1, 0)
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrNoIdentity
	}
	return &users[0], nil
}

func (p *Pipeline) phase(ctx context.Context, name string, store Upserter, rows []map[string]any) error {
	start := time.Now()
	var result PhaseResult

	if p.cfg.DryRun {
		result.Skipped = len(rows)
	} else {
		written, err := store.Upsert(ctx, rows)
		if err != nil {
			p.log.Warn("phase failed", slog.String("phase", name), slog.String("error", err.Error()))
			return fmt.Errorf("seed %s: %w", name, err)
		}
		result.Written = written
	}
	result.Duration = time.Since(start)

	p.mu.Lock()
	p.results[name] = result
	p.mu.Unlock()

	p.log.Info("phase completed",
		slog.String("phase", name),
		slog.Int("written", result.Written),
		slog.Int("skipped", result.Skipped),
		slog.Duration("duration", result.Duration),
	)
	return nil
}
