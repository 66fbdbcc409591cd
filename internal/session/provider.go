package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/realty-crm/internal/auth"
	"github.com/heartmarshall/realty-crm/internal/config"
	"github.com/heartmarshall/realty-crm/internal/domain"
	authsvc "github.com/heartmarshall/realty-crm/internal/service/auth"
	"github.com/heartmarshall/realty-crm/pkg/ctxutil"
)

type authenticator interface {
	ValidateToken(ctx context.Context, token string) (auth.Identity, error)
	SignIn(ctx context.Context, input authsvc.SignInInput) (*authsvc.AuthResult, error)
	SignOut(ctx context.Context) error
	AssignRole(ctx context.Context, input authsvc.AssignRoleInput) (*domain.User, error)
}

// directory reads the stored role and session generation of an identity.
type directory interface {
	SessionOf(ctx context.Context, id uuid.UUID) (role string, generation int64, err error)
}

type entry struct {
	role       domain.Role
	generation int64
}

// Provider resolves bearer tokens to session state and applies sign-in,
// sign-out and role changes. Resolved roles are cached for a bounded time;
// writers replace cache entries whole, so readers see either the old or the
// new state.
type Provider struct {
	log    *slog.Logger
	auth   authenticator
	dir    directory
	cache  *lru.LRU[uuid.UUID, entry]
	buffer int
	now    func() time.Time

	mu      sync.Mutex
	epoch   uint64
	subs    map[uint64]chan Event
	nextID  uint64
	closed  bool
	dropped func(EventKind)
}

func NewProvider(logger *slog.Logger, authn authenticator, dir directory, cfg config.SessionConfig) *Provider {
	return &Provider{
		log:    logger.With("component", "session"),
		auth:   authn,
		dir:    dir,
		cache:  lru.NewLRU[uuid.UUID, entry](cfg.RoleCacheSize, nil, cfg.RoleCacheTTL),
		buffer: cfg.SubscriberBuffer,
		now:    time.Now,
		subs:   make(map[uint64]chan Event),
	}
}

// OnDropped registers fn to be called for every event a slow subscriber
// missed. fn runs with the provider locked and must not call back into it.
func (p *Provider) OnDropped(fn func(EventKind)) {
	p.mu.Lock()
	p.dropped = fn
	p.mu.Unlock()
}

// Resolve turns a bearer token into a State. Invalid, expired and revoked
// tokens resolve to Unauthenticated. When the role cannot be loaded the
// identity is still authenticated but without a role, which never grants
// more than the fallback set.
func (p *Provider) Resolve(ctx context.Context, token string) State {
	if token == "" {
		return Unauthenticated
	}

	identity, err := p.auth.ValidateToken(ctx, token)
	if err != nil {
		return Unauthenticated
	}

	current, ok := p.cache.Get(identity.UserID)
	if !ok {
		current, err = p.load(ctx, identity.UserID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return Unauthenticated
		case err != nil:
			p.log.WarnContext(ctx, "role resolution failed",
				slog.String("user_id", identity.UserID.String()),
				slog.String("error", err.Error()))
			return State{Authenticated: true, UserID: identity.UserID, Generation: identity.Generation}
		}
	}

	if current.generation != identity.Generation {
		return Unauthenticated
	}

	return State{
		Authenticated: true,
		UserID:        identity.UserID,
		Role:          current.role,
		Generation:    current.generation,
	}
}

// load reads the identity's session from storage and caches it unless a
// writer changed session state in the meantime.
func (p *Provider) load(ctx context.Context, userID uuid.UUID) (entry, error) {
	p.mu.Lock()
	epoch := p.epoch
	p.mu.Unlock()

	raw, gen, err := p.dir.SessionOf(ctx, userID)
	if err != nil {
		return entry{}, err
	}

	role, ok := domain.ParseRole(raw)
	if !ok {
		p.log.WarnContext(ctx, "stored role is not recognized",
			slog.String("user_id", userID.String()),
			slog.String("role", raw))
	}
	loaded := entry{role: role, generation: gen}

	p.mu.Lock()
	if p.epoch == epoch && !p.closed {
		p.cache.Add(userID, loaded)
	}
	p.mu.Unlock()

	return loaded, nil
}

// SignIn authenticates and records the new session.
func (p *Provider) SignIn(ctx context.Context, input authsvc.SignInInput) (*authsvc.AuthResult, State, error) {
	result, err := p.auth.SignIn(ctx, input)
	if err != nil {
		return nil, Unauthenticated, err
	}

	user := result.User
	role := user.Role
	if !role.IsValid() {
		role = ""
	}
	state := State{Authenticated: true, UserID: user.ID, Role: role, Generation: user.SessionGeneration}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.epoch++
	p.cache.Add(user.ID, entry{role: role, generation: user.SessionGeneration})
	p.publishLocked(Event{Kind: EventSignedIn, UserID: user.ID, Role: role, At: p.now()})

	return result, state, nil
}

// SignOut ends every session of the caller.
func (p *Provider) SignOut(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := p.auth.SignOut(ctx); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.epoch++
	p.cache.Remove(userID)
	p.publishLocked(Event{Kind: EventSignedOut, UserID: userID, At: p.now()})
	return nil
}

// AssignRole changes another identity's role and updates its cached
// session so the change applies to its next request.
func (p *Provider) AssignRole(ctx context.Context, input authsvc.AssignRoleInput) (*domain.User, error) {
	user, err := p.auth.AssignRole(ctx, input)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.epoch++
	if cur, ok := p.cache.Peek(user.ID); ok {
		p.cache.Add(user.ID, entry{role: user.Role, generation: cur.generation})
	}
	p.publishLocked(Event{Kind: EventRoleChanged, UserID: user.ID, Role: user.Role, At: p.now()})
	return user, nil
}

// Subscribe returns a channel of session events and a cancel func. Events
// that do not fit the channel buffer are dropped. The channel is closed by
// cancel or Close.
func (p *Provider) Subscribe() (<-chan Event, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan Event, p.buffer)
	if p.closed {
		close(ch)
		return ch, func() {}
	}

	id := p.nextID
	p.nextID++
	p.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			if sub, ok := p.subs[id]; ok {
				delete(p.subs, id)
				close(sub)
			}
		})
	}
}

// Close drops cached sessions and closes every subscription. Resolve keeps
// working afterwards, reading straight from storage.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.epoch++
	p.cache.Purge()
	for id, ch := range p.subs {
		delete(p.subs, id)
		close(ch)
	}
	return nil
}

func (p *Provider) publishLocked(ev Event) {
	for id, ch := range p.subs {
		select {
		case ch <- ev:
		default:
			p.log.Warn("session event dropped",
				slog.String("kind", string(ev.Kind)),
				slog.Uint64("subscriber", id))
			if p.dropped != nil {
				p.dropped(ev.Kind)
			}
		}
	}
}

