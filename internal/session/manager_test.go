package session

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admitly/admitctl/internal/api"
	"github.com/admitly/admitctl/internal/branding"
	"github.com/admitly/admitctl/internal/errors"
	"github.com/admitly/admitctl/internal/log"
	"github.com/admitly/admitctl/internal/state"
)

// fakeIdentity implements IdentityClient for tests.
type fakeIdentity struct {
	loginResp *api.LoginResponse
	loginErr  error

	meResp *api.User
	meErr  error
	meCall int

	tenantResp *api.Tenant
	tenantErr  error
}

func (f *fakeIdentity) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func (f *fakeIdentity) Me(ctx context.Context, opts ...api.RequestOption) (*api.User, error) {
	f.meCall++
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.meResp, nil
}

func (f *fakeIdentity) TenantMe(ctx context.Context) (*api.Tenant, error) {
	if f.tenantErr != nil {
		return nil, f.tenantErr
	}
	return f.tenantResp, nil
}

type harness struct {
	manager *Manager
	client  *fakeIdentity
	store   *state.Store
	palette *branding.Palette
}

func newHarness(t *testing.T, client *fakeIdentity) *harness {
	t.Helper()

	store, err := state.Open(t.TempDir(), "https://acme.crm.example.com/api")
	require.NoError(t, err)

	palette := branding.NewPalette()
	logger := log.New(log.Config{Level: log.LevelError, Format: log.FormatText, Output: &bytes.Buffer{}})

	return &harness{
		manager: NewManager(client, store, palette, logger),
		client:  client,
		store:   store,
		palette: palette,
	}
}

func TestInitialState(t *testing.T) {
	h := newHarness(t, &fakeIdentity{})

	assert.Equal(t, PhaseIdle, h.manager.Phase())
	assert.True(t, h.manager.Current().Loading)
	assert.False(t, h.manager.Current().Authenticated())
}

func TestBootstrapWithoutToken(t *testing.T) {
	h := newHarness(t, &fakeIdentity{})

	h.manager.Bootstrap(context.Background())

	assert.Equal(t, PhaseAnonymous, h.manager.Phase())
	assert.False(t, h.manager.Current().Loading)
	assert.Zero(t, h.client.meCall, "no remote call without a token")
}

func TestBootstrapAuthenticatedCounselor(t *testing.T) {
	client := &fakeIdentity{
		meResp: &api.User{ID: "u1", Role: api.RoleCounselor},
		tenantResp: &api.Tenant{
			ID:       "T",
			Slug:     "acme",
			Branding: &api.Branding{PrimaryColor: "#0f766e"},
		},
	}
	h := newHarness(t, client)
	require.NoError(t, h.store.Set(state.KeyToken, "T1"))

	h.manager.Bootstrap(context.Background())

	sess := h.manager.Current()
	assert.Equal(t, PhaseAuthenticated, h.manager.Phase())
	require.NotNil(t, sess.User)
	assert.Equal(t, api.RoleCounselor, sess.User.Role)
	require.NotNil(t, sess.Tenant)
	assert.Equal(t, "acme", sess.Tenant.Slug)
	assert.Equal(t, "#0f766e", h.palette.Snapshot().PrimaryColor)
}

func TestBootstrapSuperAdminSkipsTenantLookup(t *testing.T) {
	client := &fakeIdentity{
		meResp:    &api.User{ID: "u1", Role: api.RoleSuperAdmin},
		tenantErr: fmt.Errorf("must not be called"),
	}
	h := newHarness(t, client)
	require.NoError(t, h.store.Set(state.KeyToken, "T1"))

	h.manager.Bootstrap(context.Background())

	sess := h.manager.Current()
	assert.Equal(t, PhaseAuthenticated, h.manager.Phase())
	assert.Nil(t, sess.Tenant)
	assert.Equal(t, branding.PlatformDefault().PrimaryColor, h.palette.Snapshot().PrimaryColor)
}

func TestBootstrapTenantLookupFailureIsNonFatal(t *testing.T) {
	client := &fakeIdentity{
		meResp:    &api.User{ID: "u1", Role: api.RoleCounselor},
		tenantErr: errors.NewNetworkError(fmt.Errorf("503")),
	}
	h := newHarness(t, client)
	require.NoError(t, h.store.Set(state.KeyToken, "T1"))

	h.manager.Bootstrap(context.Background())

	sess := h.manager.Current()
	assert.Equal(t, PhaseAuthenticated, h.manager.Phase())
	assert.True(t, sess.Authenticated())
	assert.Nil(t, sess.Tenant)
	assert.Equal(t, "T1", h.store.Get(state.KeyToken), "token survives a tenant lookup failure")
}

func TestBootstrapRejectedTokenClearsStore(t *testing.T) {
	client := &fakeIdentity{meErr: errors.NewSessionExpiredError()}
	h := newHarness(t, client)
	require.NoError(t, h.store.Set(state.KeyToken, "stale"))

	h.manager.Bootstrap(context.Background())

	assert.Equal(t, PhaseAnonymous, h.manager.Phase())
	assert.Empty(t, h.store.Get(state.KeyToken))
	assert.False(t, h.manager.Current().Loading)
}

func TestBootstrapNetworkFailureKeepsToken(t *testing.T) {
	client := &fakeIdentity{meErr: errors.NewNetworkError(fmt.Errorf("dial tcp"))}
	h := newHarness(t, client)
	require.NoError(t, h.store.Set(state.KeyToken, "T1"))

	h.manager.Bootstrap(context.Background())

	assert.Equal(t, PhaseAnonymous, h.manager.Phase())
	assert.Equal(t, "T1", h.store.Get(state.KeyToken), "token kept so the next start can retry")
}

func TestBootstrapRunsExactlyOnce(t *testing.T) {
	client := &fakeIdentity{meResp: &api.User{ID: "u1", Role: api.RoleSuperAdmin}}
	h := newHarness(t, client)
	require.NoError(t, h.store.Set(state.KeyToken, "T1"))

	h.manager.Bootstrap(context.Background())
	h.manager.Bootstrap(context.Background())

	assert.Equal(t, 1, h.client.meCall)
}

func TestBootstrapNotifiesOnce(t *testing.T) {
	h := newHarness(t, &fakeIdentity{})

	var observed []Session
	h.manager.Subscribe(func(s Session) {
		observed = append(observed, s)
	})

	h.manager.Bootstrap(context.Background())

	require.Len(t, observed, 1, "one transition out of Loading, not several")
	assert.False(t, observed[0].Loading)
}

func TestLoginWithTenantPersistsEverything(t *testing.T) {
	client := &fakeIdentity{
		loginResp: &api.LoginResponse{
			Token: "T1",
			User:  api.User{ID: "u1", Role: api.RoleCounselor},
			Tenant: &api.Tenant{
				ID:       "T",
				Slug:     "acme",
				Branding: &api.Branding{PrimaryColor: "#0f766e"},
			},
		},
	}
	h := newHarness(t, client)
	require.NoError(t, h.store.Set(state.KeyTenantSlug, "acme"))

	user, err := h.manager.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)

	assert.Equal(t, api.RoleCounselor, user.Role)
	assert.Equal(t, "T1", h.store.Get(state.KeyToken))
	assert.Equal(t, "T", h.store.Get(state.KeyTenantID))
	assert.Equal(t, "acme", h.store.Get(state.KeyTenantSlug))
	assert.Equal(t, "#0f766e", h.palette.Snapshot().PrimaryColor)
	assert.Equal(t, PhaseAuthenticated, h.manager.Phase())
}

func TestLoginWithoutTenantClearsStaleTenantKeys(t *testing.T) {
	client := &fakeIdentity{
		loginResp: &api.LoginResponse{
			Token: "T2",
			User:  api.User{ID: "root", Role: api.RoleSuperAdmin},
		},
	}
	h := newHarness(t, client)
	require.NoError(t, h.store.Set(state.KeyTenantID, "old-tenant"))
	require.NoError(t, h.store.Set(state.KeyTenantSlug, "old-slug"))

	_, err := h.manager.Login(context.Background(), "root@platform.com", "x")
	require.NoError(t, err)

	assert.Empty(t, h.store.Get(state.KeyTenantID))
	assert.Empty(t, h.store.Get(state.KeyTenantSlug))

	def := branding.PlatformDefault()
	assert.Equal(t, def.PrimaryColor, h.palette.Snapshot().PrimaryColor)
	assert.Equal(t, def.SecondaryColor, h.palette.Snapshot().SecondaryColor)
}

func TestLoginRejectedLeavesSessionUntouched(t *testing.T) {
	client := &fakeIdentity{loginErr: errors.NewBadCredentialsError("invalid credentials")}
	h := newHarness(t, client)

	h.manager.Bootstrap(context.Background())
	before := h.manager.Current()

	_, err := h.manager.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.True(t, errors.IsAuthError(err))
	assert.Equal(t, before, h.manager.Current())
}

func TestLogoutClearsEverything(t *testing.T) {
	client := &fakeIdentity{
		loginResp: &api.LoginResponse{
			Token:  "T1",
			User:   api.User{ID: "u1", Role: api.RoleCounselor},
			Tenant: &api.Tenant{ID: "T", Slug: "acme"},
		},
	}
	h := newHarness(t, client)

	_, err := h.manager.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)

	h.manager.Logout()

	assert.Equal(t, PhaseAnonymous, h.manager.Phase())
	assert.False(t, h.manager.Current().Authenticated())
	assert.Empty(t, h.store.Get(state.KeyToken))
	assert.Empty(t, h.store.Get(state.KeyTenantID))
	assert.Empty(t, h.store.Get(state.KeyTenantSlug))
}

func TestSubscribeCancel(t *testing.T) {
	h := newHarness(t, &fakeIdentity{})

	calls := 0
	cancel := h.manager.Subscribe(func(Session) { calls++ })
	cancel()

	h.manager.Bootstrap(context.Background())
	assert.Zero(t, calls)
}
