package export

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), A: 255})
		}
	}
	return img
}

func TestExportWritesPNG(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, "test")

	path, err := w.Export(testImage())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("export landed in %q, want %q", filepath.Dir(path), dir)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "test_") || !strings.HasSuffix(base, ".png") {
		t.Errorf("unexpected filename %q", base)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening export: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if got := decoded.Bounds(); got.Dx() != 8 || got.Dy() != 8 {
		t.Errorf("decoded bounds = %v, want 8x8", got)
	}
}

func TestExportCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "paintings")
	w := NewWriter(dir, "test")

	if _, err := w.Export(testImage()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("export dir not created: %v", err)
	}
}

func TestExportDirError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	w := NewWriter(filepath.Join(blocker, "sub"), "test")

	if _, err := w.Export(testImage()); err == nil {
		t.Error("expected error exporting under a regular file")
	}
}

func TestEmptyPrefixDefaults(t *testing.T) {
	w := NewWriter(t.TempDir(), "")

	path, err := w.Export(testImage())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "painting_") {
		t.Errorf("filename %q missing default prefix", filepath.Base(path))
	}
}
