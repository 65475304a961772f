package config

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound means no config file exists in the directory or any parent.
var ErrNotFound = errors.New("config file not found")

// Find looks for DefaultFile in startDir and then upwards to the filesystem root.
// It returns the absolute path of the first match.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, DefaultFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}
