package texture

import (
	"image"
	"image/color"
	"testing"
)

func TestNewRasterFillsAndStartsDirty(t *testing.T) {
	bg := color.RGBA{R: 26, G: 29, B: 36, A: 255}
	r := NewRaster(4, 3, bg)

	w, h := r.Size()
	if w != 4 || h != 3 {
		t.Errorf("size = %dx%d, want 4x3", w, h)
	}
	if got := r.Image().RGBAAt(2, 1); got != bg {
		t.Errorf("pixel = %v, want %v", got, bg)
	}
	if !r.TakeDirty() {
		t.Error("new raster should start dirty")
	}
	if r.TakeDirty() {
		t.Error("TakeDirty should clear the flag")
	}
}

func TestNewRasterClampsToOnePixel(t *testing.T) {
	r := NewRaster(0, -5, color.RGBA{A: 255})
	w, h := r.Size()
	if w != 1 || h != 1 {
		t.Errorf("size = %dx%d, want 1x1", w, h)
	}
}

func TestMarkDirty(t *testing.T) {
	r := NewRaster(2, 2, color.RGBA{})
	r.TakeDirty()

	r.MarkDirty()
	if !r.TakeDirty() {
		t.Error("MarkDirty not observed")
	}
}

func TestResizeKeepsUniformContent(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	r := NewRaster(4, 4, white)
	r.TakeDirty()

	r.Resize(8, 6)

	w, h := r.Size()
	if w != 8 || h != 6 {
		t.Errorf("size after resize = %dx%d, want 8x6", w, h)
	}
	if got := r.Image().RGBAAt(4, 3); got != white {
		t.Errorf("rescaled pixel = %v, want %v", got, white)
	}
	if !r.TakeDirty() {
		t.Error("resize should mark the raster dirty")
	}
}

func TestResizeSameSizeIsNoop(t *testing.T) {
	r := NewRaster(4, 4, color.RGBA{A: 255})
	r.TakeDirty()
	img := r.Image()

	r.Resize(4, 4)

	if r.Image() != img {
		t.Error("same-size resize reallocated the raster")
	}
	if r.TakeDirty() {
		t.Error("same-size resize marked the raster dirty")
	}
}

func TestSeedScalesSourceOntoRaster(t *testing.T) {
	r := NewRaster(8, 8, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	r.TakeDirty()

	green := color.RGBA{G: 200, A: 255}
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, green)
		}
	}

	r.Seed(src)

	if got := r.Image().RGBAAt(4, 4); got != green {
		t.Errorf("seeded pixel = %v, want %v", got, green)
	}
	if !r.TakeDirty() {
		t.Error("seed should mark the raster dirty")
	}
}
