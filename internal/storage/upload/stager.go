package upload

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Stager writes uploaded files under a base directory for the duration of one request.
type Stager struct {
	base     string
	maxBytes int64
}

type StagedFile struct {
	Path string
	Size int64
}

var ErrTooLarge = errors.New("upload exceeds size limit")

func NewStager(base string, maxBytes int64) (*Stager, error) {
	if base == "" {
		base = os.TempDir()
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Stager{base: base, maxBytes: maxBytes}, nil
}

// Stage copies r into a uniquely named file. The returned cleanup removes it and is safe
// to call on every path.
func (s *Stager) Stage(r io.Reader, filename string) (*StagedFile, func(), error) {
	name := uuid.NewString() + sanitizeExt(filename)
	path := filepath.Join(s.base, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("create staged file: %w", err)
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Warn("Failed to remove staged upload", "path", path, "error", err)
		}
	}

	src := r
	if s.maxBytes > 0 {
		src = io.LimitReader(r, s.maxBytes+1)
	}
	n, err := io.Copy(f, src)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("write staged file: %w", err)
	}
	if s.maxBytes > 0 && n > s.maxBytes {
		cleanup()
		return nil, func() {}, ErrTooLarge
	}

	slog.Debug("Upload staged", "path", path, "bytes", n, "filename", filename)
	return &StagedFile{Path: path, Size: n}, cleanup, nil
}

func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	for _, r := range ext[min(1, len(ext)):] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
