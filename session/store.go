// ABOUTME: Client-side session lifecycle for TrailTrack
// ABOUTME: Owns the bearer token, resolved identity, and durable token storage
package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JarvisforJira/TrailTrack/api"
	"github.com/JarvisforJira/TrailTrack/models"
)

// State is the session lifecycle position.
type State int

const (
	StateInitializing State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Store owns the only shared mutable state in the client: the credential and
// the identity resolved from it. It is the sole writer of the token file;
// everything else reads the token through the api.TokenSource interface.
//
// Invariant: Identity() is non-nil exactly when the held token has been
// validated during this process lifetime.
type Store struct {
	client    *api.Client
	tokenPath string

	state    State
	token    string
	identity *models.User
}

// NewStore creates a session store persisting its token at tokenPath and
// registers itself as the client's token source.
func NewStore(client *api.Client, tokenPath string) *Store {
	s := &Store{
		client:    client,
		tokenPath: tokenPath,
		state:     StateInitializing,
	}
	client.SetTokenSource(s)
	return s
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	return s.token
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	return s.state
}

// Identity returns the resolved user, nil when unauthenticated.
func (s *Store) Identity() *models.User {
	return s.identity
}

// Restore attempts to resume a prior session from the persisted token. A
// missing token resolves to Unauthenticated immediately. A present token is
// validated against /me; any failure, including network failure, erases the
// stored token and fails closed.
func (s *Store) Restore(ctx context.Context) error {
	data, err := os.ReadFile(s.tokenPath)
	if err != nil {
		if !os.IsNotExist(err) {
			// Unreadable storage counts as no credential.
			s.erase()
		}
		s.state = StateUnauthenticated
		return nil
	}

	s.token = strings.TrimSpace(string(data))
	if s.token == "" {
		s.erase()
		s.state = StateUnauthenticated
		return nil
	}

	user, err := s.client.Me(ctx)
	if err != nil {
		s.token = ""
		s.identity = nil
		s.erase()
		s.state = StateUnauthenticated
		return nil
	}

	s.identity = user
	s.state = StateAuthenticated
	return nil
}

// Login exchanges credentials for a session. On success the token is stored
// and persisted (one durable write). On failure nothing changes and the
// returned error carries the server's detail, or "Network error" when the
// request itself failed.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	s.token = resp.AccessToken
	s.identity = &resp.User
	s.state = StateAuthenticated

	if err := s.persist(); err != nil {
		// The in-memory session is still valid; it just won't survive restart.
		return fmt.Errorf("session active but token not persisted: %w", err)
	}
	return nil
}

// Register creates an account. Success does not change the session; the
// caller logs in separately.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	return s.client.Register(ctx, name, email, password)
}

// Logout clears the credential, identity, and persisted storage. No network
// call is made.
func (s *Store) Logout() {
	s.token = ""
	s.identity = nil
	s.state = StateUnauthenticated
	s.erase()
}

// persist writes the token file with restricted permissions, creating the
// parent directory if needed.
func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.tokenPath), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.tokenPath, []byte(s.token), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

func (s *Store) erase() {
	_ = os.Remove(s.tokenPath)
}
