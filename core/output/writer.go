// Package output writes the rendered catalog to disk.
// The JSON catalog goes to the configured path; other formats replace its
// extension so every export of a run sits next to the others.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to one configured path.
type Writer struct {
	Path string
}

// New creates a Writer targeting path. The parent directory is not created:
// it must already exist.
func New(path string) (*Writer, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("output path cannot be empty")
	}
	return &Writer{Path: path}, nil
}

// PathFor returns the file the writer uses for ext.
// Example: ./output/medicine-details.json with ".md" → ./output/medicine-details.md
func (w *Writer) PathFor(ext string) string {
	if ext == "" || filepath.Ext(w.Path) == ext {
		return w.Path
	}
	return strings.TrimSuffix(w.Path, filepath.Ext(w.Path)) + ext
}

// Write stores data under PathFor(ext), replacing any previous file, and
// returns the path written.
func (w *Writer) Write(data []byte, ext string) (string, error) {
	path := w.PathFor(ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}
