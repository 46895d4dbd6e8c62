// Package csvx provides helpers for the `;`-delimited line files the record
// store is built on: whole-file line reads and rewrites plus a per-path lock
// for load-modify-save cycles.
//
// Records carry no quoting or escaping, so the files are handled as raw UTF-8
// lines rather than through encoding/csv, which would rewrite them.
package csvx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Delimiter separates fields within a record line.
const Delimiter = ";"

// ReadLines reads path and returns its non-empty lines in file order.
// A missing file is not an error: the result is a nil slice.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	raw := strings.Split(string(data), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, "\r")
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// WriteLines rewrites path with the given lines, newline-terminated, creating
// parent directories as needed. The previous contents are replaced entirely.
func WriteLines(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o770); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o660); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// AppendLine appends a single newline-terminated record to path, creating the
// file and parent directories if needed.
func AppendLine(path, line string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o770); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o660)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	return nil
}
