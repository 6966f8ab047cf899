// Package export saves rendered PDF exports into the configured download
// directory.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btccrack27/ai-reels/internal/api"
)

// Writer lands PDF payloads in a download directory.
type Writer struct {
	dir string
}

// NewWriter returns a Writer targeting dir. The directory is created on the
// first save, not here, so a writer for an unused export path costs nothing.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Save writes data to <dir>/<kind>_<id>.pdf and returns the full path.
// An empty payload is rejected so a failed export never leaves a zero-byte
// file behind.
func (w *Writer) Save(kind api.ContentKind, contentID string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("save export: empty PDF payload")
	}
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return "", errors.New("save export: content id required")
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.pdf", sanitize(string(kind)), sanitize(contentID))
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// sanitize keeps filenames portable: anything outside [A-Za-z0-9._-]
// becomes an underscore.
func sanitize(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
