// Package authz gates operations on the current session. Guards never
// panic or abort: they produce a Decision, and commands turn a denial
// into a coded error with a suggested next step.
package authz

import (
	"github.com/admitly/admitctl/internal/api"
	"github.com/admitly/admitctl/internal/errors"
	"github.com/admitly/admitctl/internal/session"
)

// Capability is a single requirement over a session. Capabilities are
// evaluated only after authentication has been established.
type Capability func(s session.Session) bool

// AnyAuthenticated admits every signed-in user regardless of role.
func AnyAuthenticated(s session.Session) bool {
	return s.Authenticated()
}

// TenantAdmin admits tenant administrators and platform operators.
func TenantAdmin(s session.Session) bool {
	return s.Role() == api.RoleAdmin || s.Role() == api.RoleSuperAdmin
}

// TenantOwner admits only the tenant's own administrator. Platform
// operators are deliberately excluded: tenant settings belong to the
// tenant, not to the platform.
func TenantOwner(s session.Session) bool {
	return s.Role() == api.RoleAdmin
}

// SuperAdmin admits only platform operators.
func SuperAdmin(s session.Session) bool {
	return s.Role() == api.RoleSuperAdmin
}

// Verdict is the outcome of evaluating a guard.
type Verdict int

const (
	// VerdictPending means the session is still loading; callers must
	// wait rather than treat the user as denied.
	VerdictPending Verdict = iota
	// VerdictAllow admits the operation.
	VerdictAllow
	// VerdictRedirect denies the operation and names where to send the
	// user instead.
	VerdictRedirect
)

// Route is a redirect destination, mirroring the web client's paths.
type Route string

const (
	RouteLogin             Route = "/login"
	RouteTenantDashboard   Route = "/dashboard"
	RoutePlatformDashboard Route = "/admin/dashboard"
)

// Decision is the result of a guard evaluation. Redirect is set only
// when Verdict is VerdictRedirect.
type Decision struct {
	Verdict  Verdict
	Redirect Route
}

// Guard is a conjunction of capabilities. All must hold for access.
type Guard struct {
	caps []Capability
}

// Require builds a guard from the given capabilities.
func Require(caps ...Capability) Guard {
	return Guard{caps: caps}
}

// Decide evaluates the guard against s. A loading session is neither
// admitted nor denied. An anonymous session always redirects to login;
// an authenticated one that fails a capability redirects to its home
// dashboard.
func (g Guard) Decide(s session.Session) Decision {
	if s.Loading {
		return Decision{Verdict: VerdictPending}
	}
	if !s.Authenticated() {
		return Decision{Verdict: VerdictRedirect, Redirect: RouteLogin}
	}
	for _, cap := range g.caps {
		if !cap(s) {
			return Decision{Verdict: VerdictRedirect, Redirect: homeRoute(s)}
		}
	}
	return Decision{Verdict: VerdictAllow}
}

// Check evaluates the guard and converts a denial into a coded error.
// A pending session is reported as denied with a hint to retry, though
// in practice commands bootstrap before checking.
func (g Guard) Check(s session.Session) error {
	switch d := g.Decide(s); d.Verdict {
	case VerdictAllow:
		return nil
	case VerdictPending:
		return errors.NewAccessDeniedError("this operation while the session is loading").
			WithSuggestion("Retry the command")
	default:
		if d.Redirect == RouteLogin {
			return errors.NewNotLoggedInError()
		}
		return errors.NewAccessDeniedError("this operation").
			WithSuggestion("Run 'admitctl dashboard' to see what your account can do")
	}
}

func homeRoute(s session.Session) Route {
	if s.Role() == api.RoleSuperAdmin {
		return RoutePlatformDashboard
	}
	return RouteTenantDashboard
}
