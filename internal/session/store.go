// Package session holds the current authentication token.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"golang.org/x/oauth2"

	"taskdash/internal/config"
)

// ErrNoSession is returned by Token when no session is active.
var ErrNoSession = errors.New("no active session")

// Store is the single source of truth for the current session token.
// The token survives process restarts in the config directory's token file.
//
// A request already in flight when Clear runs may still carry the old
// token; its late response is discarded by the task repository.
type Store struct {
	mu    sync.RWMutex
	cfg   *config.Config
	token string
}

// NewStore creates a Store, restoring a previously persisted session if any.
func NewStore(cfg *config.Config) *Store {
	s := &Store{cfg: cfg}
	data, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return s
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return s
	}
	s.token = tok.AccessToken
	return s
}

// Set persists the token and marks the session active.
// The file is written with mode 0600.
func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cfg.EnsureDir(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.cfg.TokenPath(), data, 0600); err != nil {
		return err
	}
	s.token = token
	return nil
}

// Get returns the current token. ok is false when no session is active.
func (s *Store) Get() (token string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Active reports whether a session token is present.
func (s *Store) Active() bool {
	_, ok := s.Get()
	return ok
}

// Clear removes the token and deletes the persisted copy.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.cfg.TokenPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Token implements oauth2.TokenSource so HTTP clients can stamp requests
// with the current session token via Token.SetAuthHeader.
func (s *Store) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return nil, ErrNoSession
	}
	return &oauth2.Token{AccessToken: s.token, TokenType: "Bearer"}, nil
}
