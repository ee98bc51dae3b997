// Package session owns the in-memory authenticated identity for the process
// and the one-time bootstrap that reconstructs it from durable state.
package session

import (
	"github.com/admitly/admitctl/internal/api"
)

// Phase is the bootstrap state machine position.
type Phase int

const (
	// PhaseIdle is before Bootstrap has been invoked.
	PhaseIdle Phase = iota
	// PhaseLoading is the single suspension window of the bootstrap pass.
	PhaseLoading
	// PhaseAuthenticated is terminal: a valid user is attached.
	PhaseAuthenticated
	// PhaseAnonymous is terminal: no valid session exists.
	PhaseAnonymous
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Session is the authenticated identity for the current process.
// Token is present exactly when the user is authenticated. Tenant is nil
// for platform-level (super_admin) sessions and when the tenant profile
// lookup failed non-fatally.
type Session struct {
	Token   string
	User    *api.User
	Tenant  *api.Tenant
	Loading bool
}

// Authenticated reports whether a user is attached.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// Role returns the session's role, or "" when anonymous.
func (s Session) Role() api.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}
