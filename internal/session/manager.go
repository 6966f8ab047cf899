package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/btccrack27/ai-reels/internal/api"
)

// AuthState names a position in the session lifecycle.
type AuthState string

const (
	StateAnonymous      AuthState = "anonymous"
	StateAuthenticating AuthState = "authenticating"
	StateAuthenticated  AuthState = "authenticated"
	StateRefreshing     AuthState = "refreshing"
	StateExpired        AuthState = "expired"
)

// Backend is the slice of the API client the manager drives.
type Backend interface {
	Login(ctx context.Context, email, password string) (*api.Credentials, error)
	Register(ctx context.Context, email, name, password string) (*api.Credentials, error)
	Refresh(ctx context.Context, refreshToken string) (*api.Tokens, error)
	CurrentUser(ctx context.Context) (*api.User, error)
}

// Snapshot is the observable session state. A non-nil User always implies
// Authenticated and vice versa.
type Snapshot struct {
	User          *api.User
	Authenticated bool
	Loading       bool
}

// Manager drives the session state machine. A rejected call triggers one
// refresh attempt with the stored refresh token before the session expires.
type Manager struct {
	store   *Store
	backend Backend
	logger  *slog.Logger

	mu      sync.Mutex
	state   AuthState
	user    *api.User
	loading bool
}

// ManagerOption customizes manager construction.
type ManagerOption func(*Manager)

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager builds a manager over the given store and backend. The session
// starts anonymous and loading until LoadUser settles.
func NewManager(store *Store, backend Backend, opts ...ManagerOption) *Manager {
	mgr := &Manager{
		store:   store,
		backend: backend,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:   StateAnonymous,
		loading: true,
	}
	for _, opt := range opts {
		opt(mgr)
	}
	return mgr
}

// Store exposes the underlying token store (the client's token source).
func (m *Manager) Store() *Store {
	return m.store
}

// State returns the current machine state.
func (m *Manager) State() AuthState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Snapshot returns the observable session fields.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := Snapshot{Loading: m.loading}
	if m.state == StateAuthenticated && m.user != nil {
		user := *m.user
		snap.User = &user
		snap.Authenticated = true
	}
	return snap
}

// LoadUser resolves the session from stored tokens. Without a token it
// settles logged out immediately and performs no network call. A 401 that the
// refresh path rescued is followed by exactly one more attempt.
func (m *Manager) LoadUser(ctx context.Context) error {
	m.mu.Lock()
	m.loading = true
	if m.store.Token() == "" {
		m.user = nil
		m.state = StateAnonymous
		m.loading = false
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	user, err := m.backend.CurrentUser(ctx)
	if err != nil && errors.Is(err, api.ErrUnauthorized) && m.store.Token() != "" {
		// The unauthorized hook refreshed the tokens; the store would be
		// empty otherwise.
		user, err = m.backend.CurrentUser(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.logger.Warn("load user failed", "error", err)
		if clearErr := m.store.Clear(); clearErr != nil {
			return clearErr
		}
		m.user = nil
		if errors.Is(err, api.ErrUnauthorized) {
			m.state = StateExpired
		} else {
			m.state = StateAnonymous
		}
		return nil
	}

	if cacheErr := m.store.SetCachedUser(*user); cacheErr != nil {
		m.logger.Warn("cache user failed", "error", cacheErr)
	}
	m.user = user
	m.state = StateAuthenticated
	return nil
}

// Login authenticates and adopts the returned session. On failure the session
// resets to logged out and the error propagates to the caller.
func (m *Manager) Login(ctx context.Context, email, password string) (*api.User, error) {
	return m.authenticate(ctx, func() (*api.Credentials, error) {
		return m.backend.Login(ctx, email, password)
	})
}

// Register creates an account and adopts the returned session.
func (m *Manager) Register(ctx context.Context, email, name, password string) (*api.User, error) {
	return m.authenticate(ctx, func() (*api.Credentials, error) {
		return m.backend.Register(ctx, email, name, password)
	})
}

func (m *Manager) authenticate(ctx context.Context, call func() (*api.Credentials, error)) (*api.User, error) {
	m.mu.Lock()
	m.state = StateAuthenticating
	m.loading = true
	m.mu.Unlock()

	creds, err := call()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.user = nil
		m.state = StateAnonymous
		return nil, err
	}
	if saveErr := m.store.SetSession(creds.User, creds.Tokens); saveErr != nil {
		m.user = nil
		m.state = StateAnonymous
		return nil, saveErr
	}
	user := creds.User
	m.user = &user
	m.state = StateAuthenticated
	return &user, nil
}

// Logout clears the session. Terminal until the next Login.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	err := m.store.Clear()
	m.user = nil
	m.state = StateAnonymous
	m.loading = false
	return err
}

// HandleUnauthorized reacts to a 401 from any API call: one refresh attempt
// with the stored refresh token, then expiry. Wired into the client via
// api.WithUnauthorizedHandler; runs once per failing call, and re-entrant
// calls during the refresh are no-ops.
func (m *Manager) HandleUnauthorized(ctx context.Context) {
	m.mu.Lock()
	if m.state == StateRefreshing {
		m.mu.Unlock()
		return
	}
	refreshToken := m.store.RefreshToken()
	if refreshToken == "" {
		m.expireLocked()
		m.mu.Unlock()
		return
	}
	m.state = StateRefreshing
	m.mu.Unlock()

	tokens, err := m.backend.Refresh(ctx, refreshToken)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.logger.Warn("token refresh failed", "error", err)
		m.expireLocked()
		return
	}
	if saveErr := m.store.SetTokens(*tokens); saveErr != nil {
		m.logger.Warn("persist refreshed tokens failed", "error", saveErr)
		m.expireLocked()
		return
	}
	m.logger.Debug("session refreshed")
	if m.user != nil {
		m.state = StateAuthenticated
	} else {
		m.state = StateAnonymous
	}
}

func (m *Manager) expireLocked() {
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("clear session failed", "error", err)
	}
	m.user = nil
	m.state = StateExpired
}
