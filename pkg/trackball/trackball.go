// Package trackball implements virtual-sphere camera gesture math.
//
// Pointer positions are mapped onto a unit sphere floating over the
// canvas; rotating the camera between two projected points feels like
// spinning a physical ball. Pan and zoom work on normalized screen
// fractions so gesture speed is independent of canvas size.
package trackball

import (
	"github.com/chewxy/math32"

	"github.com/footsoldier/chameleon/pkg/math"
)

// Box is the canvas rectangle in window coordinates.
type Box struct {
	Left, Top     float32
	Width, Height float32
}

// Contains reports whether the point lies inside the box.
func (b Box) Contains(p math.Vec2) bool {
	return p.X >= b.Left && p.X < b.Left+b.Width &&
		p.Y >= b.Top && p.Y < b.Top+b.Height
}

// ProjectToBall maps a window-space point onto the unit sphere centered
// on the box. Points inside the sphere's silhouette are lifted onto the
// front hemisphere; points outside are clamped to the equator.
func ProjectToBall(box Box, p math.Vec2) math.Vec3 {
	if box.Width <= 0 || box.Height <= 0 {
		return math.Vec3{Z: 1}
	}

	x := (p.X - box.Width*0.5 - box.Left) / (box.Width * 0.5)
	y := (box.Height*0.5 + box.Top - p.Y) / (box.Height * 0.5)

	lenSq := x*x + y*y
	if lenSq <= 1 {
		return math.Vec3{X: x, Y: y, Z: math32.Sqrt(1 - lenSq)}
	}
	planar := math.Vec2{X: x, Y: y}.Normalize()
	return math.Vec3{X: planar.X, Y: planar.Y}
}

// ScreenFraction maps a window-space point to box-relative [0,1]
// coordinates. Used for pan and zoom deltas.
func ScreenFraction(box Box, p math.Vec2) math.Vec2 {
	if box.Width <= 0 || box.Height <= 0 {
		return math.Vec2{}
	}
	return math.Vec2{
		X: (p.X - box.Left) / box.Width,
		Y: (p.Y - box.Top) / box.Height,
	}
}

// RotationBetween returns the rotation carrying the start ball point
// onto the end ball point, with the angle scaled by speed. Returns the
// identity when the points coincide or the angle is degenerate.
func RotationBetween(start, end math.Vec3, speed float32) math.Quat {
	angle := math32.Acos(start.Dot(end)/(start.Length()*end.Length())) * speed
	if math32.IsNaN(angle) || angle == 0 {
		return math.QuatIdentity()
	}
	axis := start.Cross(end).Normalize()
	if axis == (math.Vec3{}) {
		return math.QuatIdentity()
	}
	return math.QuatFromAxisAngle(axis, angle)
}

// PanDelta converts a pan gesture between two screen fractions into a
// world-space translation. The delta lies in the camera plane spanned
// by eye x up and up, scaled by the eye distance so panning covers the
// same screen distance at any zoom. Returns the zero vector when the
// pointer has not moved.
func PanDelta(start, end math.Vec2, eye, up math.Vec3, speed float32) math.Vec3 {
	change := end.Sub(start)
	if change == (math.Vec2{}) {
		return math.Vec3{}
	}
	scaled := change.Scale(eye.Length() * speed)
	pan := eye.Cross(up).SetLength(scaled.X)
	return pan.Add(up.SetLength(scaled.Y))
}

// ZoomFactor converts accumulated zoom input into a magnification
// factor. A factor above 1 magnifies, below 1 shrinks. Callers must
// reject non-positive factors before applying them.
func ZoomFactor(start, end, speed float32) float32 {
	return 1.0 + (end-start)*speed
}

// ZoomStep converts a wheel delta (in standard 120-per-notch units)
// into a zoom accumulator increment.
func ZoomStep(wheelDelta float32) float32 {
	return wheelDelta / 40 * 0.01
}
