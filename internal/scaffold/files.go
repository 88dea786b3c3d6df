// Package scaffold holds the static side of project generation: the
// template catalog shown by list-templates and the boilerplate writers that
// lay down Flask, React, and deployment files alongside the agents'
// markdown deliverables. Generation here is pure templating; no LLM calls.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Slugify converts a project name into a filesystem-friendly name:
// lowercase, alphanumeric, dash-separated.
func Slugify(name string) string {
	var sb strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(sb.String(), "-")
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// writeAll writes a set of relative-path → content pairs under dir and
// returns the absolute paths written.
func writeAll(dir string, files map[string]string) ([]string, error) {
	paths := make([]string, 0, len(files))
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := WriteFile(path, content); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
