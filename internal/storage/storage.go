package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage writes report files into one directory
type Storage struct {
	dir string
}

// New creates a new Storage instance, creating dir if needed
func New(dir string) (*Storage, error) {
	if dir == "" {
		dir = "."
	}

	// Expand ~ to home directory
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Storage{
		dir: dir,
	}, nil
}

// Dir returns the output directory
func (s *Storage) Dir() string {
	return s.dir
}

// Path returns the path of a file in the output directory
func (s *Storage) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// WriteFile writes name by streaming write into a temporary file and renaming
// it into place. The previous file, if any, is kept when write fails.
// Returns the path written.
func (s *Storage) WriteFile(name string, write func(w io.Writer) error) (string, error) {
	path := s.Path(name)

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := write(tmp); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", fmt.Errorf("setting permissions on %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("saving %s: %w", name, err)
	}

	return path, nil
}

// WriteString writes content to name
func (s *Storage) WriteString(name, content string) (string, error) {
	return s.WriteFile(name, func(w io.Writer) error {
		_, err := io.WriteString(w, content)
		return err
	})
}
