package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/dmitrijs2005/houseconnect/internal/client/client"
	"github.com/dmitrijs2005/houseconnect/internal/client/models"
	"github.com/dmitrijs2005/houseconnect/internal/logging"
)

// Authenticator is the part of the backend the store talks to.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
}

type Store struct {
	auth    Authenticator
	storage Storage
	logger  logging.Logger

	// writeMu serializes Login/Logout so storage and memory change in the
	// same order.
	writeMu sync.Mutex

	mu       sync.RWMutex
	status   models.Status
	token    string
	identity *models.Identity

	hydrateOnce sync.Once
	ready       chan struct{}
}

func NewStore(auth Authenticator, storage Storage, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Store{
		auth:    auth,
		storage: storage,
		logger:  logger.With("component", "session"),
		status:  models.StatusHydrating,
		ready:   make(chan struct{}),
	}
}

// Hydrate restores the persisted session. Only the first call does any
// work. It never fails: unreadable or malformed data leaves the store
// ANONYMOUS.
func (s *Store) Hydrate(ctx context.Context) {
	s.hydrateOnce.Do(func() {
		defer close(s.ready)

		token, identity := s.load(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.status != models.StatusHydrating {
			// a login or logout already settled the session
			return
		}
		if identity == nil {
			s.status = models.StatusAnonymous
			return
		}
		s.token, s.identity, s.status = token, identity, models.StatusAuthenticated
		s.logger.Info(ctx, "session restored", "user", identity.Username, "role", identity.Role)
	})
}

func (s *Store) load(ctx context.Context) (string, *models.Identity) {
	token, raw, err := s.storage.Load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to read stored session", "error", err)
		return "", nil
	}
	if token == "" || len(raw) == 0 {
		return "", nil
	}
	identity, err := parseIdentity(raw)
	if err != nil {
		s.logger.Warn(ctx, "ignoring malformed stored session", "error", err)
		return "", nil
	}
	return token, identity
}

func parseIdentity(raw []byte) (*models.Identity, error) {
	var identity models.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, err
	}
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Login authenticates against the backend and, on success, replaces the
// session. On any failure the session is left as it was.
func (s *Store) Login(ctx context.Context, username, password string) error {
	resp, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return loginFailure(err)
	}

	token := string(resp.AuthenticationID)
	identity := resp.Identity()
	if strings.TrimSpace(token) == "" {
		return rejected("")
	}
	if err := identity.Validate(); err != nil {
		s.logger.Warn(ctx, "unexpected login response", "error", err)
		return rejected("")
	}
	if identity.Role == models.RoleStudent && identity.StudentID == nil {
		s.logger.Warn(ctx, "login response carries no student id", "user", identity.Username)
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.storage.Save(ctx, token, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.token, s.identity, s.status = token, &identity, models.StatusAuthenticated
	s.mu.Unlock()

	s.logger.Info(ctx, "logged in", "user", identity.Username, "role", identity.Role)
	return nil
}

func loginFailure(err error) error {
	if client.IsUnavailable(err) {
		return networkError()
	}
	var se *client.StatusError
	if errors.As(err, &se) {
		msg := se.Message
		if msg == http.StatusText(se.StatusCode) {
			msg = ""
		}
		return rejected(msg)
	}
	// an unreadable 2xx body
	return rejected("")
}

// Logout drops the session from memory and storage. It never fails and may
// be called any number of times.
func (s *Store) Logout(ctx context.Context) {
	s.reset(ctx)
	s.logger.Info(ctx, "logged out")
}

// Invalidate ends a session the backend no longer accepts.
func (s *Store) Invalidate(ctx context.Context, reason string) {
	s.reset(ctx)
	s.logger.Warn(ctx, "session invalidated", "reason", reason)
}

func (s *Store) reset(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.storage.Clear(ctx); err != nil {
		s.logger.Error(ctx, "failed to clear stored session", "error", err)
	}

	s.mu.Lock()
	s.token, s.identity, s.status = "", nil, models.StatusAnonymous
	s.mu.Unlock()
}

func (s *Store) Status() models.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Token returns the bearer token, or "" when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Identity returns a copy of the current identity, or nil.
func (s *Store) Identity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyIdentity(s.identity)
}

func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Snapshot{Status: s.status, Token: s.token, Identity: copyIdentity(s.identity)}
}

// Ready is closed once hydration has settled the status.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

func copyIdentity(i *models.Identity) *models.Identity {
	if i == nil {
		return nil
	}
	c := *i
	if i.StudentID != nil {
		v := *i.StudentID
		c.StudentID = &v
	}
	if i.LandlordID != nil {
		v := *i.LandlordID
		c.LandlordID = &v
	}
	return &c
}
