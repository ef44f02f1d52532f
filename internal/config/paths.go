package config

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNoProjectRoot is returned when no enclosing directory contains setup.py.
var ErrNoProjectRoot = errors.New("no project root found (setup.py not located in any parent directory)")

// DataDir returns the directory used to store chalice-release data.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	// Use a dot-directory in the user's home on all platforms
	return filepath.Join(home, ".chalice-release"), nil
}

// DBPath returns the full path to the SQLite history database file.
func DBPath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "history.db"), nil
}

// FindProjectRoot walks up from startDir until it finds a directory
// containing setup.py and returns it.
func FindProjectRoot(startDir string) (string, error) {
	d := startDir
	for {
		candidate := filepath.Join(d, "setup.py")
		if _, err := os.Stat(candidate); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}
	return "", ErrNoProjectRoot
}
