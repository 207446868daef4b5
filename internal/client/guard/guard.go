// Package guard decides whether a view may run for the current session.
package guard

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrijs2005/houseconnect/internal/client/models"
)

type Decision int

const (
	// Pending means the session is still hydrating; nothing may render.
	Pending Decision = iota
	Allow
	// Deny sends the user to the login view.
	Deny
	// Forbidden means signed in, but with a role the route does not admit.
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "PENDING"
	case Allow:
		return "ALLOW"
	case Deny:
		return "DENY"
	case Forbidden:
		return "FORBIDDEN"
	default:
		return "UNKNOWN"
	}
}

// Route describes a navigable view. Roles restricts a protected route to
// those roles; empty admits any signed-in user.
type Route struct {
	Name      string
	Protected bool
	Roles     []models.Role
}

// Public builds an unprotected route.
func Public(name string) Route {
	return Route{Name: name}
}

// Protected builds a route that needs a session, optionally limited to roles.
func Protected(name string, roles ...models.Role) Route {
	return Route{Name: name, Protected: true, Roles: roles}
}

// Admits reports whether role may open r.
func (r Route) Admits(role models.Role) bool {
	return len(r.Roles) == 0 || slices.Contains(r.Roles, role)
}

// RoleList renders the admitted roles for messages, e.g. "STUDENT or LANDLORD".
func (r Route) RoleList() string {
	names := make([]string, len(r.Roles))
	for i, role := range r.Roles {
		names[i] = string(role)
	}
	return strings.Join(names, " or ")
}

// Decide is the guard's decision for one navigation.
func Decide(route Route, snap models.Snapshot) Decision {
	if !route.Protected {
		return Allow
	}
	switch snap.Status {
	case models.StatusHydrating:
		return Pending
	case models.StatusAuthenticated:
		if !snap.Authenticated() {
			return Deny
		}
		if !route.Admits(snap.Identity.Role) {
			return Forbidden
		}
		return Allow
	default:
		return Deny
	}
}

// Session is what the guard reads from the session store.
type Session interface {
	Snapshot() models.Snapshot
	Ready() <-chan struct{}
}

type Guard struct {
	session Session
}

func New(s Session) *Guard {
	return &Guard{session: s}
}

// Check decides without blocking; it returns Pending while hydrating.
func (g *Guard) Check(route Route) Decision {
	return Decide(route, g.session.Snapshot())
}

// Await waits for hydration to finish and then decides. Public routes do
// not wait. If ctx ends first it returns Pending and ctx.Err().
func (g *Guard) Await(ctx context.Context, route Route) (Decision, error) {
	if !route.Protected {
		return Allow, nil
	}
	select {
	case <-g.session.Ready():
	case <-ctx.Done():
		return Pending, ctx.Err()
	}
	return g.Check(route), nil
}
