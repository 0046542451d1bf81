package course

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromExt maps a file extension to a document format.
func FormatFromExt(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// Document is a stored course configuration, kept as written so assessment order survives.
type Document struct {
	Format Format
	Data   []byte
}

// Store looks up configuration documents by exact course code.
// Fetch returns *apperr.ConfigNotFoundError when no document exists.
type Store interface {
	Fetch(ctx context.Context, code string) (*Document, error)
}

type Writer interface {
	Save(ctx context.Context, code string, doc Document) error
}

type ReadWriteStore interface {
	Store
	Writer
}

var codePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,63}$`)

// ValidateCode rejects codes that cannot be used as a store key or file name.
func ValidateCode(code string) error {
	if code == "" {
		return apperr.NewValidation("course code is required")
	}
	if !codePattern.MatchString(code) || strings.Contains(code, "..") {
		return apperr.NewValidation("invalid course code: " + code)
	}
	return nil
}
