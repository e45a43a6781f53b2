package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoToken is returned when no session token has been stored yet
var ErrNoToken = errors.New("no stored token")

// tokenFileName is the fixed key the session token lives under, the durable
// storage analog of the browser's localStorage "token" entry.
const tokenFileName = "token"

// TokenStore persists the session token between runs
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// FileTokenStore keeps the token in a file under a configuration directory
type FileTokenStore struct {
	path string
}

var _ TokenStore = (*FileTokenStore)(nil)

// NewFileTokenStore returns a store rooted at dir. An empty dir defaults to
// ~/.authkit.
func NewFileTokenStore(dir string) (*FileTokenStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".authkit")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create token directory: %w", err)
	}

	return &FileTokenStore{path: filepath.Join(dir, tokenFileName)}, nil
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("load token: %w", err)
	}
	if len(data) == 0 {
		return "", ErrNoToken
	}
	return string(data), nil
}

func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
