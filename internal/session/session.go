// Package session holds the in-memory authentication state for a running
// client process and drives its lifecycle: startup rehydration from the
// credential store, login, logout, and profile refresh. There is exactly one
// Store per process, owned by the application shell and injected into
// consumers; all mutation funnels through the transition methods.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/carebridge/carebridge-go/internal/authclient"
	"github.com/carebridge/carebridge-go/internal/credstore"
	"github.com/carebridge/carebridge-go/internal/model"
)

// Phase is the lifecycle state of the session.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseInitializing
	PhaseUnauthenticated
	PhaseAuthenticated
	PhaseAuthPending
	PhaseAuthFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseInitializing:
		return "initializing"
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseAuthPending:
		return "auth-pending"
	case PhaseAuthFailed:
		return "auth-failed"
	}
	return "unknown"
}

// Snapshot is an immutable view of the session at one point in time. Token
// is non-empty if and only if User is non-nil.
type Snapshot struct {
	Phase       Phase
	User        *model.User
	Token       string
	Loading     bool
	Error       string
	Initialized bool
}

// Authenticated reports whether the snapshot carries a full credential pair.
func (s Snapshot) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

var (
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")

	// ErrSuperseded is returned to a login caller whose attempt resolved
	// after a newer attempt (or a logout) had already moved the session on.
	// The late result is discarded.
	ErrSuperseded = errors.New("login attempt superseded")
)

// StorageError wraps a credential-store failure during the login
// write-through. The login is demoted rather than left authenticated with an
// unwritten credential.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("saving credentials: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

const genericRetryMessage = "Something went wrong. Please try again."

// API is the remote surface the session depends on.
type API interface {
	Login(ctx context.Context, email, password string) (model.AuthResponse, error)
	FetchProfile(ctx context.Context, token string) (model.User, error)
}

// CredentialStore is the durable shadow of the session.
type CredentialStore interface {
	Save(user *model.User, token string) error
	Load() (*credstore.Credentials, error)
	Clear() error
}

// Store is the single session container.
type Store struct {
	api    API
	creds  CredentialStore
	logger *slog.Logger

	initOnce sync.Once

	mu   sync.Mutex
	snap Snapshot
	gen  uint64
	subs []func(Snapshot)
}

// New creates a session Store in the uninitialized phase.
func New(api API, creds CredentialStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		api:    api,
		creds:  creds,
		logger: logger,
		snap:   Snapshot{Phase: PhaseUninitialized},
	}
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Subscribe registers a callback invoked after every transition with the new
// snapshot. Used by the route guard to re-evaluate synchronously.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify(snap Snapshot) {
	s.mu.Lock()
	subs := make([]func(Snapshot), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Initialize performs the one-time startup rehydration. A stored blob
// missing either user or token is treated as absent; a store read failure
// silently routes to the unauthenticated root. The rehydration runs exactly
// once per process even under concurrent calls: later callers wait for the
// single attempt and return the current snapshot.
func (s *Store) Initialize(ctx context.Context) Snapshot {
	s.initOnce.Do(s.rehydrate)
	return s.Snapshot()
}

func (s *Store) rehydrate() {
	s.mu.Lock()
	s.snap.Phase = PhaseInitializing
	s.mu.Unlock()

	creds, err := s.creds.Load()
	if err != nil {
		s.logger.Warn("credential store read failed, starting unauthenticated", "error", err)
	}

	s.mu.Lock()
	if creds != nil && creds.User != nil && creds.Token != "" {
		s.snap = Snapshot{
			Phase:       PhaseAuthenticated,
			User:        creds.User,
			Token:       creds.Token,
			Initialized: true,
		}
	} else {
		s.snap = Snapshot{Phase: PhaseUnauthenticated, Initialized: true}
	}
	snap := s.snap
	s.mu.Unlock()

	s.notify(snap)
}

// Login submits credentials. Empty fields are rejected before any network
// call. On success the credential pair is written through to the durable
// store before the session is exposed as authenticated; a failed write
// demotes the attempt. A result arriving after a newer attempt or a logout
// is discarded and reported as ErrSuperseded.
func (s *Store) Login(ctx context.Context, email, password string) (Snapshot, error) {
	if email == "" {
		return s.Snapshot(), ErrEmptyEmail
	}
	if password == "" {
		return s.Snapshot(), ErrEmptyPassword
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.snap.Phase = PhaseAuthPending
	s.snap.Loading = true
	s.snap.Error = ""
	pending := s.snap
	s.mu.Unlock()
	s.notify(pending)

	resp, err := s.api.Login(ctx, email, password)

	s.mu.Lock()
	if s.gen != gen {
		snap := s.snap
		s.mu.Unlock()
		return snap, ErrSuperseded
	}

	if err != nil {
		s.snap.Phase = PhaseAuthFailed
		s.snap.Loading = false
		s.snap.Error = errorMessage(err)
		snap := s.snap
		s.mu.Unlock()
		s.notify(snap)
		return snap, err
	}

	// Write-after-confirm: the durable write happens after the API success
	// and before the snapshot turns authenticated, so the route guard never
	// observes an authenticated session backed by an unwritten credential.
	if saveErr := s.creds.Save(&resp.User, resp.Token); saveErr != nil {
		s.logger.Error("credential write failed after login, demoting", "error", saveErr)
		s.snap.Phase = PhaseAuthFailed
		s.snap.Loading = false
		s.snap.Error = genericRetryMessage
		snap := s.snap
		s.mu.Unlock()
		s.notify(snap)
		return snap, &StorageError{Err: saveErr}
	}

	s.snap = Snapshot{
		Phase:       PhaseAuthenticated,
		User:        &resp.User,
		Token:       resp.Token,
		Initialized: true,
	}
	snap := s.snap
	s.mu.Unlock()

	s.notify(snap)
	return snap, nil
}

// Logout clears the durable store and wipes the in-memory credentials.
// Logout always succeeds locally: a store failure is logged, never surfaced,
// and the session still ends up unauthenticated.
func (s *Store) Logout(ctx context.Context) Snapshot {
	// Discard any login still in flight before touching the durable store: a
	// result resolving from here on is superseded and never written, so the
	// clear below cannot be undone by a late write-through.
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()

	if err := s.creds.Clear(); err != nil {
		s.logger.Warn("credential store clear failed, session cleared in memory only", "error", err)
	}

	s.mu.Lock()
	s.snap = Snapshot{Phase: PhaseUnauthenticated, Initialized: true}
	snap := s.snap
	s.mu.Unlock()

	s.notify(snap)
	return snap
}

// RefreshProfile re-fetches the profile for the current token. On success
// the user is updated in memory and in the store, the token unchanged. On
// failure the error is recorded and the stale user retained; a failed
// refresh never logs the session out.
func (s *Store) RefreshProfile(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	if !s.snap.Authenticated() {
		snap := s.snap
		s.mu.Unlock()
		return snap, authclient.ErrUnauthenticated
	}
	token := s.snap.Token
	s.snap.Loading = true
	pending := s.snap
	s.mu.Unlock()
	s.notify(pending)

	user, err := s.api.FetchProfile(ctx, token)

	s.mu.Lock()
	if s.snap.Token != token || !s.snap.Authenticated() {
		// The session moved on (logout or re-login) while the refresh was in
		// flight; the late result is dropped.
		snap := s.snap
		s.mu.Unlock()
		return snap, ErrSuperseded
	}

	s.snap.Loading = false
	if err != nil {
		s.snap.Error = errorMessage(err)
		snap := s.snap
		s.mu.Unlock()
		s.notify(snap)
		return snap, err
	}

	s.snap.User = &user
	s.snap.Error = ""
	if saveErr := s.creds.Save(&user, token); saveErr != nil {
		s.logger.Warn("credential store update failed, profile refreshed in memory only", "error", saveErr)
	}
	snap := s.snap
	s.mu.Unlock()

	s.notify(snap)
	return snap, nil
}

// errorMessage maps a failure to the message shown to the user: the
// server's own message for explicit rejections, a generic retry prompt for
// transport failures.
func errorMessage(err error) string {
	var authErr *authclient.AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	return genericRetryMessage
}
