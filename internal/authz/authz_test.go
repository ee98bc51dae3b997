package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/admitly/admitctl/internal/api"
	"github.com/admitly/admitctl/internal/errors"
	"github.com/admitly/admitctl/internal/session"
)

func loadingSession() session.Session {
	return session.Session{Loading: true}
}

func anonymousSession() session.Session {
	return session.Session{}
}

func sessionWithRole(role api.Role) session.Session {
	return session.Session{Token: "T1", User: &api.User{ID: "u1", Role: role}}
}

func TestLoadingSessionIsPending(t *testing.T) {
	guards := []Guard{
		Require(AnyAuthenticated),
		Require(TenantAdmin),
		Require(SuperAdmin),
	}
	for _, g := range guards {
		d := g.Decide(loadingSession())
		assert.Equal(t, VerdictPending, d.Verdict, "loading must never deny")
	}
}

func TestAnonymousRedirectsToLogin(t *testing.T) {
	d := Require(AnyAuthenticated).Decide(anonymousSession())

	assert.Equal(t, VerdictRedirect, d.Verdict)
	assert.Equal(t, RouteLogin, d.Redirect)
}

func TestCapabilityMatrix(t *testing.T) {
	cases := []struct {
		name string
		cap  Capability
		role api.Role
		want Verdict
	}{
		{"counselor anyAuthenticated", AnyAuthenticated, api.RoleCounselor, VerdictAllow},
		{"counselor tenantAdmin", TenantAdmin, api.RoleCounselor, VerdictRedirect},
		{"counselor tenantOwner", TenantOwner, api.RoleCounselor, VerdictRedirect},
		{"counselor superAdmin", SuperAdmin, api.RoleCounselor, VerdictRedirect},
		{"admin anyAuthenticated", AnyAuthenticated, api.RoleAdmin, VerdictAllow},
		{"admin tenantAdmin", TenantAdmin, api.RoleAdmin, VerdictAllow},
		{"admin tenantOwner", TenantOwner, api.RoleAdmin, VerdictAllow},
		{"admin superAdmin", SuperAdmin, api.RoleAdmin, VerdictRedirect},
		{"super_admin anyAuthenticated", AnyAuthenticated, api.RoleSuperAdmin, VerdictAllow},
		{"super_admin tenantAdmin", TenantAdmin, api.RoleSuperAdmin, VerdictAllow},
		{"super_admin tenantOwner", TenantOwner, api.RoleSuperAdmin, VerdictRedirect},
		{"super_admin superAdmin", SuperAdmin, api.RoleSuperAdmin, VerdictAllow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Require(tc.cap).Decide(sessionWithRole(tc.role))
			assert.Equal(t, tc.want, d.Verdict)
		})
	}
}

func TestDeniedRoleRedirectsHome(t *testing.T) {
	d := Require(TenantAdmin).Decide(sessionWithRole(api.RoleCounselor))
	assert.Equal(t, RouteTenantDashboard, d.Redirect)

	d = Require(TenantOwner).Decide(sessionWithRole(api.RoleSuperAdmin))
	assert.Equal(t, RoutePlatformDashboard, d.Redirect, "platform operators go to the platform dashboard")
}

func TestRequireIsConjunctive(t *testing.T) {
	g := Require(AnyAuthenticated, TenantOwner)

	assert.Equal(t, VerdictAllow, g.Decide(sessionWithRole(api.RoleAdmin)).Verdict)
	assert.Equal(t, VerdictRedirect, g.Decide(sessionWithRole(api.RoleSuperAdmin)).Verdict,
		"one failing capability denies the whole guard")
}

func TestEmptyGuardAdmitsAnyAuthenticated(t *testing.T) {
	g := Require()

	assert.Equal(t, VerdictAllow, g.Decide(sessionWithRole(api.RoleCounselor)).Verdict)
	assert.Equal(t, VerdictRedirect, g.Decide(anonymousSession()).Verdict)
}

func TestCheckMapsDecisionsToErrors(t *testing.T) {
	assert.NoError(t, Require(TenantAdmin).Check(sessionWithRole(api.RoleAdmin)))

	err := Require(AnyAuthenticated).Check(anonymousSession())
	assert.Equal(t, errors.ErrCodeNotLoggedIn, errors.CodeOf(err))

	err = Require(SuperAdmin).Check(sessionWithRole(api.RoleCounselor))
	assert.Equal(t, errors.ErrCodeAccessDenied, errors.CodeOf(err))

	err = Require(AnyAuthenticated).Check(loadingSession())
	assert.Equal(t, errors.ErrCodeAccessDenied, errors.CodeOf(err))
}
