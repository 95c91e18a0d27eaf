// Package baseline persists recorded expected outputs, one text file per
// case name.
package baseline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrBaselineNotFound is returned when a baseline doesn't exist.
var ErrBaselineNotFound = errors.New("baseline not found")

// Suffix is appended to the case name to form the baseline file name.
const Suffix = ".txt"

// DefaultDir is the baseline directory used when none is configured.
const DefaultDir = "expected"

// Store manages baseline persistence. Baselines outlive the process; the
// store never deletes them.
type Store struct {
	Dir string // Base directory for baselines
}

// NewStore creates a store with the given directory.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// EnsureDir creates the baseline directory if needed. Safe to call
// repeatedly.
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.Dir, 0755)
}

// Path returns the file path for a case name.
func (s *Store) Path(name string) string {
	// Sanitize name for filesystem
	safeName := strings.ReplaceAll(name, "/", "_")
	safeName = strings.ReplaceAll(safeName, "\\", "_")
	return filepath.Join(s.Dir, safeName+Suffix)
}

// Write stores content as the baseline for name, overwriting any previous
// baseline. Content is written as-is, with no newline normalization.
func (s *Store) Write(name, content string) error {
	if err := s.EnsureDir(); err != nil {
		return err
	}
	return os.WriteFile(s.Path(name), []byte(content), 0644)
}

// Read retrieves the baseline content for name.
func (s *Store) Read(name string) (string, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrBaselineNotFound
		}
		return "", err
	}
	return string(data), nil
}

// Exists checks if a baseline exists for name.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// List returns all stored baselines as summaries, in directory order.
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Summary{}, nil
		}
		return nil, err
	}

	var summaries []Summary
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Suffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue // Skip unreadable files
		}

		summaries = append(summaries, Summary{
			Name:    strings.TrimSuffix(entry.Name(), Suffix),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return summaries, nil
}
