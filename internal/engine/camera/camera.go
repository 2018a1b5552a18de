// Package camera provides the trackball camera controllers used to
// view the painted mesh.
package camera

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/footsoldier/chameleon/pkg/math"
	"github.com/footsoldier/chameleon/pkg/trackball"
)

// Kind selects the projection model.
type Kind int

const (
	// Orthographic projection. This camera also defines the paint
	// projection, so its pose is what drawing UVs snapshot.
	Orthographic Kind = iota
	// Perspective projection, view-only.
	Perspective
)

func (k Kind) String() string {
	switch k {
	case Orthographic:
		return "orthographic"
	case Perspective:
		return "perspective"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Pose is a camera placement. Zoom is the orthographic magnification
// and stays 1 for perspective cameras.
type Pose struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
	Zoom     float32
}

// Eye returns the vector from target to camera position.
func (p Pose) Eye() math.Vec3 {
	return p.Position.Sub(p.Target)
}

// drag identifies which gesture a controller is tracking.
type drag int

const (
	dragNone drag = iota
	dragRotate
	dragPan
)

// buffer accumulates gesture input between frames. Each Update
// consumes the deltas and re-syncs start to end.
type buffer struct {
	rotateStart, rotateEnd math.Vec3
	panStart, panEnd       math.Vec2
	zoomStart, zoomEnd     float32
}

// Config holds controller construction parameters.
type Config struct {
	Kind        Kind
	FOV         float32 // vertical field of view in degrees, perspective only
	RotateSpeed float32
	PanSpeed    float32
	ZoomSpeed   float32
}

// Controller owns one camera pose and the gesture state mutating it.
// All input lands in an internal buffer; Update applies the buffered
// deltas exactly once per frame.
type Controller struct {
	kind Kind
	pose Pose
	buf  buffer
	drag drag
	box  trackball.Box

	fov         float32 // degrees
	near, far   float32
	rotateSpeed float32
	panSpeed    float32
	zoomSpeed   float32

	frameRadius float32
}

// New creates a controller framing a bounding ball of the given radius
// on the +Z axis.
func New(cfg Config, box trackball.Box, frameRadius float32) *Controller {
	c := &Controller{
		kind:        cfg.Kind,
		box:         box,
		fov:         cfg.FOV,
		rotateSpeed: cfg.RotateSpeed,
		panSpeed:    cfg.PanSpeed,
		zoomSpeed:   cfg.ZoomSpeed,
		frameRadius: frameRadius,
	}
	c.Reset()
	return c
}

// Kind returns the controller's projection model.
func (c *Controller) Kind() Kind {
	return c.kind
}

// Pose returns the current camera placement.
func (c *Controller) Pose() Pose {
	return c.pose
}

// SetBox updates the canvas rectangle gestures are measured against.
func (c *Controller) SetBox(box trackball.Box) {
	c.box = box
}

// SetSpeeds updates the gesture speeds, for live config reload.
func (c *Controller) SetSpeeds(rotate, pan, zoom float32) {
	c.rotateSpeed = rotate
	c.panSpeed = pan
	c.zoomSpeed = zoom
}

// Reset restores the framing pose: camera on +Z looking at the origin
// with the whole bounding ball in view, and all gesture state cleared.
func (c *Controller) Reset() {
	dist := 2 * c.frameRadius / math32.Tan(radians(c.fov)/2)
	c.pose = Pose{
		Position: math.Vec3{Z: dist},
		Target:   math.Vec3{},
		Up:       math.Vec3{Y: 1},
		Zoom:     1,
	}
	c.near = dist / 100
	c.far = (dist + c.frameRadius) * 10
	c.buf = buffer{}
	c.drag = dragNone
}

// BeginRotate starts a rotate drag at the given window position.
func (c *Controller) BeginRotate(p math.Vec2) {
	c.drag = dragRotate
	c.buf.rotateStart = trackball.ProjectToBall(c.box, p)
	c.buf.rotateEnd = c.buf.rotateStart
}

// BeginPan starts a pan drag at the given window position.
func (c *Controller) BeginPan(p math.Vec2) {
	c.drag = dragPan
	c.buf.panStart = trackball.ScreenFraction(c.box, p)
	c.buf.panEnd = c.buf.panStart
}

// PointerMove feeds a pointer position into the active drag. Ignored
// when no drag is active.
func (c *Controller) PointerMove(p math.Vec2) {
	switch c.drag {
	case dragRotate:
		c.buf.rotateEnd = trackball.ProjectToBall(c.box, p)
	case dragPan:
		c.buf.panEnd = trackball.ScreenFraction(c.box, p)
	}
}

// EndDrag stops tracking the active drag and re-syncs the buffer so no
// residual delta leaks into later frames.
func (c *Controller) EndDrag() {
	c.drag = dragNone
	c.buf.rotateStart = c.buf.rotateEnd
	c.buf.panStart = c.buf.panEnd
}

// Wheel accumulates a wheel delta (120 per notch) into the zoom buffer.
func (c *Controller) Wheel(delta float32) {
	c.buf.zoomEnd += trackball.ZoomStep(delta)
}

// Update applies buffered gesture input to the pose and reports
// whether the pose changed. Deltas are consumed exactly once: a second
// Update without new input is a no-op.
func (c *Controller) Update() bool {
	before := c.pose
	eye := c.pose.Eye()

	// Rotation carries the ball point under the pointer, so the eye
	// orbits opposite the drag and the mesh appears to follow it.
	q := trackball.RotationBetween(c.buf.rotateEnd, c.buf.rotateStart, c.rotateSpeed)
	if !q.IsIdentity() {
		eye = q.RotateVec3(eye)
		c.pose.Up = q.RotateVec3(c.pose.Up).Normalize()
	}
	c.buf.rotateStart = c.buf.rotateEnd

	factor := trackball.ZoomFactor(c.buf.zoomStart, c.buf.zoomEnd, c.zoomSpeed)
	if factor > 0 && factor != 1 {
		switch c.kind {
		case Perspective:
			eye = eye.Scale(1 / factor)
		case Orthographic:
			c.pose.Zoom *= factor
		}
	}
	c.buf.zoomStart = c.buf.zoomEnd

	pan := trackball.PanDelta(c.buf.panStart, c.buf.panEnd, eye, c.pose.Up, c.panSpeed)
	if pan != (math.Vec3{}) {
		c.pose.Target = c.pose.Target.Add(pan)
	}
	c.buf.panStart = c.buf.panEnd

	c.pose.Position = c.pose.Target.Add(eye)
	return c.pose != before
}

// ViewMatrix returns the view matrix for the current pose.
func (c *Controller) ViewMatrix() math.Mat4 {
	return math.LookAt(c.pose.Position, c.pose.Target, c.pose.Up)
}

// ProjectionMatrix returns the projection matrix for the current
// canvas aspect ratio.
func (c *Controller) ProjectionMatrix() math.Mat4 {
	aspect := float32(1)
	if c.box.Width > 0 && c.box.Height > 0 {
		aspect = c.box.Width / c.box.Height
	}

	if c.kind == Perspective {
		return math.Perspective(radians(c.fov), aspect, c.near, c.far)
	}

	halfH := 1.5 * c.frameRadius / c.pose.Zoom
	halfW := halfH * aspect
	return math.Ortho(-halfW, halfW, -halfH, halfH, c.near, c.far)
}

// ViewProjection returns projection * view for the current pose.
func (c *Controller) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

func radians(degrees float32) float32 {
	return degrees * math32.Pi / 180
}
