package client

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// SessionStore persists the bearer token for a logged-in user so a new
// process can resume the session. Tokens live in a single file with
// owner-only permissions. A zero-value store has no backing file and
// holds the token in memory only.
type SessionStore struct {
	mu    sync.Mutex
	path  string
	token string
}

// NewSessionStore loads any previously saved token from path.
func NewSessionStore(path string) (*SessionStore, error) {
	s := &SessionStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// DefaultSessionStore places the token file under the user config
// directory (e.g. ~/.config/weather-app/session on Linux).
func DefaultSessionStore() (*SessionStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewSessionStore(filepath.Join(dir, "weather-app", "session"))
}

// Token returns the stored bearer token, or "" when logged out.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether a token is present.
func (s *SessionStore) IsAuthenticated() bool {
	return s.Token() != ""
}

// SetToken stores a new token, or removes the stored one when token
// is empty.
func (s *SessionStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token

	if s.path == "" {
		return nil
	}

	if token == "" {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}
