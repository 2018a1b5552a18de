// Package export writes painting rasters to disk.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Writer saves paintings as timestamped PNG files.
type Writer struct {
	dir    string
	prefix string
}

// NewWriter creates a writer. Files land in dir as
// prefix_<timestamp>.png; an empty dir means the working directory.
func NewWriter(dir, prefix string) *Writer {
	if prefix == "" {
		prefix = "painting"
	}
	return &Writer{dir: dir, prefix: prefix}
}

// SetDir changes the output directory for subsequent exports.
func (w *Writer) SetDir(dir string) {
	w.dir = dir
}

// Export encodes the image to a timestamped PNG and returns its path.
// Millisecond timestamps keep back-to-back stroke exports from
// overwriting each other.
func (w *Writer) Export(img image.Image) (string, error) {
	if w.dir != "" {
		if err := os.MkdirAll(w.dir, 0755); err != nil {
			return "", fmt.Errorf("creating export dir: %w", err)
		}
	}

	name := fmt.Sprintf("%s_%s.png", w.prefix, time.Now().Format("2006-01-02_15-04-05.000"))
	if w.dir != "" {
		name = filepath.Join(w.dir, name)
	}

	file, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return name, nil
}
