package texture

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Raster is an RGBA pixel buffer with a dirty flag. The renderer polls
// the flag to decide when the texture needs re-uploading.
type Raster struct {
	img   *image.RGBA
	dirty bool
}

// NewRaster allocates a raster of the given size filled with one
// color. It starts dirty so the first frame uploads it.
func NewRaster(w, h int, fill color.RGBA) *Raster {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	r := &Raster{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	r.Fill(fill)
	return r
}

// Image returns the backing pixels.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Size returns the raster dimensions.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// MarkDirty flags the pixels as changed.
func (r *Raster) MarkDirty() {
	r.dirty = true
}

// TakeDirty reports whether the pixels changed since the last call and
// clears the flag.
func (r *Raster) TakeDirty() bool {
	d := r.dirty
	r.dirty = false
	return d
}

// Fill paints the whole raster with one color.
func (r *Raster) Fill(col color.RGBA) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	r.dirty = true
}

// Resize rescales the raster contents to a new size.
func (r *Raster) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	b := r.img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), r.img, b, xdraw.Src, nil)
	r.img = dst
	r.dirty = true
}

// Seed composites an image over the raster, scaled to cover it.
func (r *Raster) Seed(src image.Image) {
	xdraw.BiLinear.Scale(r.img, r.img.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	r.dirty = true
}
