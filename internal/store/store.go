// Package store holds the client's local state: chat generation settings
// cached under a single key, independent of the server. Notes and tasks are
// never cached here; the server response is the source of truth.
package store

import (
	"os"
	"path/filepath"
	"strings"
)

type Store struct {
	Dir string
}

// DefaultDir resolves the state directory (~/.rafpad, or RAFPAD_DIR).
func DefaultDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("RAFPAD_DIR")); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".rafpad"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(filepath.Clean(s.Dir), 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(filepath.Clean(s.Dir), "state.sqlite")
}
