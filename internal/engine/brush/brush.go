// Package brush rasterizes paint strokes onto RGBA canvases.
//
// A stroke is a sequence of circular dabs. Pointer samples arrive too
// far apart during fast drags, so the engine interpolates intermediate
// dabs whenever the pointer travels more than one radius between
// samples, keeping strokes solid.
package brush

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/footsoldier/chameleon/pkg/math"
)

// Stroke summarizes a finished stroke.
type Stroke struct {
	Dabs   int
	Length float32
}

// Engine stamps brush dabs onto a target canvas. One stroke is active
// at a time.
type Engine struct {
	color  color.RGBA
	radius float32

	target *image.RGBA
	gc     *draw2dimg.GraphicContext
	active bool
	last   math.Vec2
	dabs   int
	length float32
}

// NewEngine creates a brush engine with the given color and radius in
// pixels.
func NewEngine(col color.RGBA, radius float32) *Engine {
	e := &Engine{color: col}
	e.SetRadius(radius)
	return e
}

// Color returns the current brush color.
func (e *Engine) Color() color.RGBA {
	return e.color
}

// SetColor changes the brush color. Takes effect on the next dab.
func (e *Engine) SetColor(col color.RGBA) {
	e.color = col
}

// Radius returns the current brush radius in pixels.
func (e *Engine) Radius() float32 {
	return e.radius
}

// SetRadius changes the brush radius, clamped to at least one pixel.
func (e *Engine) SetRadius(radius float32) {
	if radius < 1 {
		radius = 1
	}
	e.radius = radius
}

// Active reports whether a stroke is in progress.
func (e *Engine) Active() bool {
	return e.active
}

// StartStroke begins a stroke on the target canvas and stamps the
// first dab. An unfinished previous stroke is finished first.
func (e *Engine) StartStroke(target *image.RGBA, pos math.Vec2) {
	if e.active {
		e.EndStroke()
	}
	e.target = target
	e.gc = draw2dimg.NewGraphicContext(target)
	e.active = true
	e.last = pos
	e.dabs = 0
	e.length = 0
	e.stamp(pos)
}

// ContinueStroke extends the active stroke to the given position,
// interpolating dabs so gaps never exceed one radius. Ignored when no
// stroke is active.
func (e *Engine) ContinueStroke(pos math.Vec2) {
	if !e.active {
		return
	}

	dist := pos.Distance(e.last)
	e.length += dist
	if dist > e.radius {
		steps := int(math32.Ceil(dist / e.radius))
		for i := 1; i < steps; i++ {
			t := float32(i) / float32(steps)
			e.stamp(math.LerpVec2(e.last, pos, t))
		}
	}
	e.stamp(pos)
	e.last = pos
}

// EndStroke finishes the active stroke and returns its summary.
// Ignored when no stroke is active.
func (e *Engine) EndStroke() Stroke {
	if !e.active {
		return Stroke{}
	}
	s := Stroke{Dabs: e.dabs, Length: e.length}
	e.active = false
	e.target = nil
	e.gc = nil
	return s
}

// stamp draws one filled circle at the given canvas position.
func (e *Engine) stamp(pos math.Vec2) {
	e.gc.SetFillColor(e.color)
	draw2dkit.Circle(e.gc, float64(pos.X), float64(pos.Y), float64(e.radius))
	e.gc.Fill()
	e.dabs++
}
