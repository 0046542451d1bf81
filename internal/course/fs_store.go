package course

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
)

// FSStore reads one document per course from a directory: <code>.json, <code>.yaml or <code>.yml.
type FSStore struct {
	dir string
}

func NewFSStore(dir string) (*FSStore, error) {
	if dir == "" {
		return nil, errors.New("course config directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("course config directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("course config path %s is not a directory", dir)
	}
	return &FSStore{dir: dir}, nil
}

var fsExtensions = []string{".json", ".yaml", ".yml"}

func (s *FSStore) Fetch(_ context.Context, code string) (*Document, error) {
	if err := ValidateCode(code); err != nil {
		return nil, err
	}
	for _, ext := range fsExtensions {
		path := filepath.Join(s.dir, code+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read course config %s: %w", path, err)
		}
		format, _ := FormatFromExt(path)
		return &Document{Format: format, Data: data}, nil
	}
	return nil, apperr.NewConfigNotFound(code)
}

func (s *FSStore) Save(_ context.Context, code string, doc Document) error {
	if err := ValidateCode(code); err != nil {
		return err
	}
	path := filepath.Join(s.dir, code+"."+string(doc.Format))
	if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
		return fmt.Errorf("write course config %s: %w", path, err)
	}
	return nil
}

func (s *FSStore) Ping(_ context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}
