// Package state holds the client's in-memory snapshots of remote
// collections: the session manager plus the lookbook, feed, and liked-posts
// containers. Containers are plain dependency-injected structs; construct
// them once per app session and pass them down explicitly.
package state

import (
	"context"
	"sync"

	"github.com/afristyle/afristyle/internal/client/api"
	"github.com/afristyle/afristyle/internal/client/models"
	"github.com/afristyle/afristyle/internal/client/storage"
	"github.com/afristyle/afristyle/internal/logging"
)

// Phase is the auth lifecycle state. Bootstrapping is entered exactly once
// per process and never recurs after it is left.
type Phase string

const (
	PhaseBootstrapping   Phase = "bootstrapping"
	PhaseAuthenticated   Phase = "authenticated"
	PhaseUnauthenticated Phase = "unauthenticated"
)

// SessionManager owns the auth session: the current user, the bearer token,
// and their write-through persistence. It is the single place that clears
// local session data, whether on explicit logout or on a backend-reported
// 401 from any request.
type SessionManager struct {
	mu     sync.Mutex
	client api.Client
	store  *storage.Helper
	log    logging.Logger

	phase Phase
	user  *models.User
	token string
}

func NewSessionManager(client api.Client, store *storage.Helper, log logging.Logger) *SessionManager {
	return &SessionManager{
		client: client,
		store:  store,
		log:    log.With("component", "session"),
		phase:  PhaseBootstrapping,
	}
}

// Bootstrap restores the session on cold start. With no persisted token it
// reports "no session" without touching the network. With one, it attaches
// the token and runs a liveness check; on success the check's returned user
// wins over any staler persisted record, on any failure all persisted
// session data is cleared and "no session" is reported.
//
// Bootstrap runs its logic once; later calls return the current snapshot.
func (s *SessionManager) Bootstrap(ctx context.Context) (*models.Session, error) {
	s.mu.Lock()
	if s.phase != PhaseBootstrapping {
		session := &models.Session{User: s.user, Token: s.token}
		s.mu.Unlock()
		return session, nil
	}

	var token string
	if !s.store.Load(ctx, storage.KeyAccessToken, &token) || token == "" {
		s.phase = PhaseUnauthenticated
		s.mu.Unlock()
		return &models.Session{}, nil
	}
	s.client.SetToken(token)
	s.mu.Unlock()

	// The liveness check must run unlocked: a stale token makes the backend
	// answer 401, which fires the client's unauthorized hook, and that hook
	// re-enters this manager through Invalidate.
	user, err := s.client.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.Warn(ctx, "liveness check failed, clearing session", "error", err)
		s.clearLocalLocked(ctx)
		s.phase = PhaseUnauthenticated
		return &models.Session{}, nil
	}

	s.user = user
	s.token = token
	s.store.Save(ctx, storage.KeyUser, user)
	s.phase = PhaseAuthenticated

	return &models.Session{User: user, Token: token}, nil
}

// Login authenticates and persists the session write-through: local state is
// only touched after the backend reports success.
func (s *SessionManager) Login(ctx context.Context, email, password string) (*models.User, error) {
	session, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.adopt(ctx, session)
	return session.User, nil
}

// Register creates an account and signs it in (registration-then-login is
// the only other path into the authenticated phase).
func (s *SessionManager) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	session, err := s.client.Register(ctx, email, password, name)
	if err != nil {
		return nil, err
	}

	s.adopt(ctx, session)
	return session.User, nil
}

func (s *SessionManager) adopt(ctx context.Context, session *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = session.User
	s.token = session.Token
	if s.phase != PhaseBootstrapping {
		s.phase = PhaseAuthenticated
	}
	s.client.SetToken(session.Token)
	s.store.Save(ctx, storage.KeyAccessToken, session.Token)
	s.store.Save(ctx, storage.KeyUser, session.User)
}

// Logout signs the user out of this device. The remote revocation is
// attempted, but its failure is only logged: the user-visible contract is
// local sign-out, so local state is cleared unconditionally and the call
// always reports success.
func (s *SessionManager) Logout(ctx context.Context) {
	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn(ctx, "remote logout failed, clearing local session anyway", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocalLocked(ctx)
	s.phase = PhaseUnauthenticated
	s.user = nil
	s.token = ""
}

// Invalidate clears the local session without a remote call. Wired as the
// API client's unauthorized hook so any 401 anywhere drops the session.
func (s *SessionManager) Invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseAuthenticated {
		s.log.Info(ctx, "session invalidated by unauthorized response")
	}
	s.clearLocalLocked(ctx)
	if s.phase != PhaseBootstrapping {
		s.phase = PhaseUnauthenticated
	}
	s.user = nil
	s.token = ""
}

func (s *SessionManager) clearLocalLocked(ctx context.Context) {
	s.client.SetToken("")
	for _, key := range storage.SessionKeys {
		s.store.Delete(ctx, key)
	}
}

func (s *SessionManager) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *SessionManager) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *SessionManager) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
