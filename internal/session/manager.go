package session

import (
	"context"
	"sync"

	"github.com/admitly/admitctl/internal/api"
	"github.com/admitly/admitctl/internal/branding"
	"github.com/admitly/admitctl/internal/errors"
	"github.com/admitly/admitctl/internal/log"
	"github.com/admitly/admitctl/internal/state"
)

// IdentityClient is the remote identity surface the manager depends on.
// *api.Client satisfies it.
type IdentityClient interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Me(ctx context.Context, opts ...api.RequestOption) (*api.User, error)
	TenantMe(ctx context.Context) (*api.Tenant, error)
}

// Manager owns the process-wide session. Only Bootstrap, Login, and Logout
// write it; everything else reads through Current or a subscription.
type Manager struct {
	client IdentityClient
	store  *state.Store
	sink   branding.Sink
	logger *log.Logger

	bootstrapOnce sync.Once

	mu          sync.RWMutex
	phase       Phase
	session     Session
	subscribers map[int]func(Session)
	nextSubID   int
}

// NewManager creates a manager in the pre-bootstrap state.
func NewManager(client IdentityClient, store *state.Store, sink branding.Sink, logger *log.Logger) *Manager {
	return &Manager{
		client:      client,
		store:       store,
		sink:        sink,
		logger:      logger,
		phase:       PhaseIdle,
		session:     Session{Loading: true},
		subscribers: make(map[int]func(Session)),
	}
}

// Current returns a snapshot of the session.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Phase returns the state machine position.
func (m *Manager) Phase() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase
}

// Subscribe registers fn to run on every terminal session transition.
// The returned cancel function removes the subscription.
func (m *Manager) Subscribe(fn func(Session)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

// Bootstrap reconstructs the session from the durable store. It runs at most
// once per process; later calls are no-ops. It always resolves to a terminal
// phase and never returns an error: every observer sees exactly one
// transition out of Loading.
func (m *Manager) Bootstrap(ctx context.Context) {
	m.bootstrapOnce.Do(func() {
		m.bootstrap(ctx)
	})
}

func (m *Manager) bootstrap(ctx context.Context) {
	m.mu.Lock()
	m.phase = PhaseLoading
	m.session = Session{Loading: true}
	m.mu.Unlock()

	token := m.store.Get(state.KeyToken)
	if token == "" {
		m.transition(PhaseAnonymous, Session{})
		return
	}

	user, err := m.client.Me(ctx)
	if err != nil {
		if errors.IsSessionExpired(err) {
			// Expected on token expiry: silent logout, no error surfaced.
			if cerr := m.store.Clear(state.KeyToken); cerr != nil {
				m.logger.WithError(cerr).Warn("could not clear rejected token")
			}
		} else {
			// Transport trouble: end Anonymous for this run but keep the
			// token so the next start can retry.
			m.logger.WithError(err).Warn("identity lookup failed during bootstrap")
		}
		m.transition(PhaseAnonymous, Session{})
		return
	}

	sess := Session{Token: token, User: user}

	if user.Role == api.RoleSuperAdmin {
		// No tenant to supply a theme; use the platform palette.
		m.sink.Apply(branding.PlatformDefault())
	} else {
		tenantRecord, terr := m.client.TenantMe(ctx)
		if terr != nil {
			// Non-fatal: the user stays authenticated without a tenant
			// profile until the next reload.
			m.logger.WithError(errors.NewTenantLookupError(terr)).Warn("proceeding without tenant profile")
		} else {
			sess.Tenant = tenantRecord
			if tenantRecord.Branding != nil {
				m.sink.Apply(*tenantRecord.Branding)
			}
		}
	}

	m.transition(PhaseAuthenticated, sess)
}

// Login authenticates and replaces the session. The durable tenant keys are
// always fully overwritten: a response without a tenant clears any previously
// stored tenant identity so later resolution never sees stale context.
func (m *Manager) Login(ctx context.Context, email, password string) (*api.User, error) {
	resp, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := m.store.Set(state.KeyToken, resp.Token); err != nil {
		return nil, err
	}

	tenantID, tenantSlug := "", ""
	if resp.Tenant != nil {
		tenantID = resp.Tenant.ID
		tenantSlug = resp.Tenant.Slug
	}
	if err := m.store.Set(state.KeyTenantID, tenantID); err != nil {
		return nil, err
	}
	if err := m.store.Set(state.KeyTenantSlug, tenantSlug); err != nil {
		return nil, err
	}

	user := resp.User
	sess := Session{Token: resp.Token, User: &user, Tenant: resp.Tenant}

	if resp.Tenant != nil {
		if resp.Tenant.Branding != nil {
			m.sink.Apply(*resp.Tenant.Branding)
		}
	} else if user.Role == api.RoleSuperAdmin {
		// No tenant exists to supply a theme; fall back to the platform
		// palette.
		m.sink.Apply(branding.PlatformDefault())
	}

	m.transition(PhaseAuthenticated, sess)
	return &user, nil
}

// Logout clears the durable keys and resets the session. Unconditional and
// side-effect only; it never fails.
func (m *Manager) Logout() {
	if err := m.store.ClearAll(); err != nil {
		m.logger.WithError(err).Warn("could not clear durable session state")
	}
	m.transition(PhaseAnonymous, Session{})
}

// transition installs a terminal state and notifies subscribers outside the
// lock.
func (m *Manager) transition(phase Phase, sess Session) {
	sess.Loading = false

	m.mu.Lock()
	m.phase = phase
	m.session = sess
	fns := make([]func(Session), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(sess)
	}
}
