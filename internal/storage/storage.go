// Package storage keeps uploaded chart images on disk. The directory is
// append-only: filenames embed a fresh id, so writes never collide.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Store struct {
	dir string
}

// NewStore creates the upload directory when needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// ChartFilename builds the stored name for a chart: chart_<id> plus the
// original extension, defaulting to .png.
func ChartFilename(id, originalName string) string {
	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("chart_%s%s", id, ext)
}

func (s *Store) Save(filename string, content []byte) error {
	return os.WriteFile(filepath.Join(s.dir, filepath.Base(filename)), content, 0o644)
}

// Path resolves a stored chart by name, refusing traversal outside the
// upload directory. The boolean reports existence.
func (s *Store) Path(filename string) (string, bool) {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) || strings.HasPrefix(base, "..") {
		return "", false
	}
	p := filepath.Join(s.dir, base)
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}
