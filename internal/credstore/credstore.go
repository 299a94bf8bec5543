// Package credstore persists the signed-in user's credentials as a single
// JSON blob on disk, surviving process restarts. It is the durable shadow of
// the in-memory session: exactly one blob exists at a time, overwritten on
// every successful login and removed on logout.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/carebridge/carebridge-go/internal/model"
)

const credentialsFileName = "credentials.json"

// Credentials is the stored blob: the user profile plus the bearer token
// proving it.
type Credentials struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Store reads and writes the credential blob at a fixed path.
type Store struct {
	path   string
	logger *slog.Logger
}

// New creates a Store rooted at the given file path.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// DefaultPath returns ~/.carebridge/credentials.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".carebridge", credentialsFileName), nil
}

// Save writes {user, token} as one atomic overwrite of the blob. The write
// goes to a temp file in the same directory and is renamed into place so a
// crash never leaves a torn blob behind.
func (s *Store) Save(user *model.User, token string) error {
	data, err := json.Marshal(Credentials{User: user, Token: token})
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, credentialsFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp credentials file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod credentials: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close credentials: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace credentials: %w", err)
	}

	return nil
}

// Load returns the stored blob, or nil when the file is missing or holds
// malformed JSON. A parse failure is logged and swallowed, never surfaced.
func (s *Store) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		s.logger.Warn("stored credentials are malformed, treating as absent", "error", err)
		return nil, nil
	}

	return &creds, nil
}

// Clear removes the blob. Clearing an already-absent blob is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

// IsPresent reports whether a token-bearing blob is currently stored.
func (s *Store) IsPresent() bool {
	creds, err := s.Load()
	return err == nil && creds != nil && creds.Token != ""
}
