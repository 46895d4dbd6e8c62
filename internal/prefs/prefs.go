// Package prefs stores per-user presentation preferences in a small
// `key=value` properties file next to the user's data files.
package prefs

import (
	"fmt"
	"strings"

	"github.com/lfanzott/schulmanager/internal/csvx"
)

const darkKey = "dark"

// Store reads and writes one user's preference file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// load reads all key=value pairs; a missing file yields an empty map.
// Malformed lines are ignored.
func (s *Store) load() (map[string]string, error) {
	lines, err := csvx.ReadLines(s.path)
	if err != nil {
		return nil, err
	}

	props := make(map[string]string, len(lines))
	for _, line := range lines {
		k, v, ok := strings.Cut(line, "=")
		if !ok || k == "" {
			continue
		}
		props[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return props, nil
}

func (s *Store) save(props map[string]string) error {
	lines := make([]string, 0, len(props))
	for k, v := range props {
		lines = append(lines, k+"="+v)
	}
	return csvx.WriteLines(s.path, lines)
}

// DarkMode reports whether the dark-mode flag is set. A missing file or
// missing key means false.
func (s *Store) DarkMode() (bool, error) {
	props, err := s.load()
	if err != nil {
		return false, err
	}
	return props[darkKey] == "true", nil
}

// SetDarkMode persists the dark-mode flag, keeping any other keys intact.
func (s *Store) SetDarkMode(on bool) error {
	props, err := s.load()
	if err != nil {
		return err
	}
	props[darkKey] = fmt.Sprintf("%t", on)
	return s.save(props)
}
