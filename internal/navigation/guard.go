package navigation

import "github.com/heartmarshall/realty-crm/internal/domain"

// Outcome is the guard verdict for a navigation attempt.
type Outcome int

const (
	Allow Outcome = iota
	RedirectAuth
	RedirectHome
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case RedirectAuth:
		return "redirect_auth"
	case RedirectHome:
		return "redirect_home"
	}
	return "unknown"
}

// Decision carries the outcome and, for redirects, where to go.
type Decision struct {
	Outcome     Outcome
	Location    string
	Destination DestinationID
}

// Guard decides whether a session may reach a path.
//
// The guard has two inputs per session: whether it is authenticated and
// the resolved role. A role that failed to resolve must be passed as the
// empty role, which maps to FallbackRole; no input widens access beyond a
// defined role's mapping.
type Guard struct{}

// NewGuard creates a Guard.
func NewGuard() *Guard { return &Guard{} }

// Decide returns the verdict for path.
//
// The auth page is always reachable. Unauthenticated sessions are sent to
// the auth page for every catalog destination. Authenticated sessions are
// sent to their first destination when path is not in their mapping.
// Paths outside the catalog are allowed through so the router can answer
// with not found.
func (g *Guard) Decide(authenticated bool, role domain.Role, path string) Decision {
	if IsAuthPath(path) {
		return Decision{Outcome: Allow}
	}

	dest, ok := Lookup(path)
	if !ok {
		return Decision{Outcome: Allow}
	}

	if !authenticated {
		return Decision{Outcome: RedirectAuth, Location: AuthPath, Destination: dest.ID}
	}

	if !allows(EffectiveRole(role), dest.ID) {
		return Decision{Outcome: RedirectHome, Location: Home(role).Path, Destination: dest.ID}
	}

	return Decision{Outcome: Allow, Destination: dest.ID}
}
