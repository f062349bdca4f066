// Package session owns the authenticated identity for the lifetime of the
// process. It runs the one-shot startup restoration, exposes login/logout,
// and notifies subscribers whenever the authentication state changes.
//
// The manager is an explicitly constructed state container: nothing here is
// a package-level global, and consumers (guards, CLI screens) receive it by
// injection.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/CaioNunes1/ecommerce-front/internal/client/api"
	"github.com/CaioNunes1/ecommerce-front/internal/client/credential"
	"github.com/CaioNunes1/ecommerce-front/internal/client/storage"
	"github.com/CaioNunes1/ecommerce-front/internal/logging"
)

// CachedIdentityKey is the durable-store key holding the last known identity.
// The cached record is informational only: restoration never trusts it, the
// remote lookup is always the source of truth.
const CachedIdentityKey = "user"

// IdentityLookup is the slice of the API client the session needs.
type IdentityLookup interface {
	FindUserByEmail(ctx context.Context, email string) (*api.User, error)
}

// Snapshot is an immutable view of the session state.
//
// Restoring is true from construction until the startup restoration settles,
// and never again afterwards. Identity is nil while anonymous.
type Snapshot struct {
	Identity  *api.User
	Restoring bool
}

// State is the session lifecycle state derived from a Snapshot.
type State int

const (
	// StateRestoring covers boot and the in-flight startup restoration.
	StateRestoring State = iota
	StateAuthenticated
	StateAnonymous
)

func (s Snapshot) State() State {
	switch {
	case s.Restoring:
		return StateRestoring
	case s.Identity != nil:
		return StateAuthenticated
	default:
		return StateAnonymous
	}
}

// IsAdmin reports whether the snapshot's identity carries an admin role.
func (s Snapshot) IsAdmin() bool {
	return s.Identity != nil && (s.Identity.Role == "ADMIN" || s.Identity.Role == "ROLE_ADMIN")
}

// Listener observes session state changes.
type Listener func(Snapshot)

// Manager is the session state container.
type Manager struct {
	creds  *credential.Manager
	lookup IdentityLookup
	store  storage.Store
	log    logging.Logger

	mu        sync.Mutex
	identity  *api.User
	restoring bool
	closed    bool
	listeners []Listener

	restoreOnce sync.Once
}

// NewManager creates a session in the pre-restoration state: anonymous
// identity with Restoring=true. Call Restore exactly once at boot to settle
// it.
func NewManager(creds *credential.Manager, lookup IdentityLookup, store storage.Store, log logging.Logger) *Manager {
	return &Manager{
		creds:     creds,
		lookup:    lookup,
		store:     store,
		log:       log.With("component", "session"),
		restoring: true,
	}
}

// Snapshot returns the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{Identity: m.identity, Restoring: m.restoring}
}

// IsAdmin reports whether the current identity carries an admin role.
func (m *Manager) IsAdmin() bool {
	return m.Snapshot().IsAdmin()
}

// Subscribe registers fn to be called after every state change. Listeners
// run synchronously on the mutating goroutine and must not call back into
// the manager.
func (m *Manager) Subscribe(fn Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Close disposes the state container. Any restore or login result arriving
// afterwards is discarded instead of being written into dead state.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.listeners = nil
}

// setState commits a new state and notifies listeners. It reports false when
// the manager was closed, in which case nothing was written.
func (m *Manager) setState(identity *api.User, restoring bool) bool {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	m.identity = identity
	m.restoring = restoring
	listeners := append([]Listener(nil), m.listeners...)
	snap := Snapshot{Identity: identity, Restoring: restoring}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
	return true
}

// Restore runs the startup restoration protocol exactly once per process
// lifetime; concurrent and repeated calls collapse into the first one.
//
// Outcomes:
//   - no stored credential: anonymous, no network call;
//   - stored credential accepted by the backend: authenticated;
//   - anything else (malformed token, rejected credential, network failure):
//     the credential is cleared and the session degrades silently to
//     anonymous.
//
// Restore never returns an error; failures must not break application boot.
func (m *Manager) Restore(ctx context.Context) {
	m.restoreOnce.Do(func() { m.restore(ctx) })
}

func (m *Manager) restore(ctx context.Context) {
	token, err := m.creds.RestoreFromStore(ctx)
	if err != nil {
		m.log.Warn(ctx, "could not read stored credential", "error", err)
		m.setState(nil, false)
		return
	}
	if token == "" {
		m.setState(nil, false)
		return
	}

	email, _, err := credential.DecodeToken(token)
	if err != nil {
		m.log.Warn(ctx, "stored credential is malformed, dropping it", "error", err)
		m.degrade(ctx)
		return
	}

	user, err := m.lookup.FindUserByEmail(ctx, email)
	if err != nil {
		m.log.Warn(ctx, "session restore rejected, continuing anonymous", "email", email, "error", err)
		m.degrade(ctx)
		return
	}

	m.cacheIdentity(ctx, user)
	if m.setState(user, false) {
		m.log.Info(ctx, "session restored", "email", user.Email)
	}
}

// degrade clears the credential and lands in the anonymous state. Used by
// the silent failure paths of restoration.
func (m *Manager) degrade(ctx context.Context) {
	if err := m.creds.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear credential", "error", err)
	}
	if err := m.store.Delete(ctx, CachedIdentityKey); err != nil {
		m.log.Error(ctx, "failed to drop cached identity", "error", err)
	}
	m.setState(nil, false)
}

// Login sets the credential and verifies it with an identity lookup. On
// failure the credential is rolled back and the error is returned to the
// caller: unlike restoration, an explicit user action gets explicit
// feedback.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if err := m.creds.Set(ctx, email, password); err != nil {
		if cerr := m.creds.Clear(ctx); cerr != nil {
			m.log.Error(ctx, "failed to roll back credential", "error", cerr)
		}
		return fmt.Errorf("set credential: %w", err)
	}

	user, err := m.lookup.FindUserByEmail(ctx, email)
	if err != nil {
		if cerr := m.creds.Clear(ctx); cerr != nil {
			m.log.Error(ctx, "failed to roll back credential", "error", cerr)
		}
		m.setState(nil, false)
		return fmt.Errorf("login: %w", err)
	}

	m.cacheIdentity(ctx, user)
	if m.setState(user, false) {
		m.log.Info(ctx, "logged in", "email", user.Email)
	}
	return nil
}

// Logout clears the credential and the cached identity and lands in the
// anonymous state. It cannot fail: storage problems are logged, and the
// in-memory state and outbound header are reset regardless.
func (m *Manager) Logout(ctx context.Context) {
	err := m.store.Update(ctx, func(ctx context.Context, s storage.Store) error {
		if err := m.creds.ClearWithin(ctx, s); err != nil {
			return err
		}
		return s.Delete(ctx, CachedIdentityKey)
	})
	if err != nil {
		m.log.Error(ctx, "logout cleanup failed", "error", err)
	}
	m.setState(nil, false)
}

// cacheIdentity persists the identity snapshot for informational use.
// Best-effort: the session never depends on it.
func (m *Manager) cacheIdentity(ctx context.Context, user *api.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		m.log.Error(ctx, "failed to encode identity", "error", err)
		return
	}
	if err := m.store.Set(ctx, CachedIdentityKey, raw); err != nil {
		m.log.Warn(ctx, "failed to cache identity", "error", err)
	}
}
