// Package painter coordinates the interactive painting session: an
// idle/draw/view state machine that routes pointer, wheel and key
// events to the camera controllers, texture manager and brush.
package painter

import (
	"image"

	"go.uber.org/zap"

	"github.com/footsoldier/chameleon/internal/engine/camera"
	"github.com/footsoldier/chameleon/internal/engine/input"
	"github.com/footsoldier/chameleon/internal/engine/texture"
	"github.com/footsoldier/chameleon/internal/logger"
	"github.com/footsoldier/chameleon/pkg/math"
	"github.com/footsoldier/chameleon/pkg/trackball"
)

// Mode identifies the interaction state.
type Mode int

const (
	// ModeIdle waits for input. The only state accepting new gestures.
	ModeIdle Mode = iota
	// ModeDraw paints an active stroke onto the canvas.
	ModeDraw
	// ModeView drives a camera drag.
	ModeView
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDraw:
		return "draw"
	case ModeView:
		return "view"
	default:
		return "unknown"
	}
}

// Exporter saves a finished painting.
type Exporter interface {
	Export(img image.Image) (string, error)
}

// Config holds session construction options.
type Config struct {
	// Kind is the initial projection model.
	Kind camera.Kind
	// AutoExport saves the canvas every time a stroke finishes.
	AutoExport bool
}

// gesture receives pointer traffic until the starting button releases,
// wherever the pointer goes.
type gesture interface {
	move(ev input.Event)
	end(ev input.Event)
}

// Session owns the interaction mode and the camera-kind flag, and
// routes every event to the right collaborator. All methods run on the
// frame loop goroutine.
type Session struct {
	mode Mode
	kind camera.Kind

	ortho *camera.Controller
	persp *camera.Controller

	textures *texture.Manager

	gesture       gesture
	gestureButton input.Button

	exporter   Exporter
	autoExport bool
}

// NewSession creates a session over the two camera controllers and the
// texture manager. The orthographic controller doubles as the paint
// projection; its pose changes invalidate the drawing UVs.
func NewSession(ortho, persp *camera.Controller, textures *texture.Manager, exporter Exporter, cfg Config) *Session {
	s := &Session{
		mode:       ModeIdle,
		kind:       cfg.Kind,
		ortho:      ortho,
		persp:      persp,
		textures:   textures,
		exporter:   exporter,
		autoExport: cfg.AutoExport,
	}
	s.textures.ApplyViewing()
	return s
}

// Mode returns the current interaction state.
func (s *Session) Mode() Mode {
	return s.mode
}

// CameraKind returns the active projection model.
func (s *Session) CameraKind() camera.Kind {
	return s.kind
}

// ActiveCamera returns the controller matching the camera-kind flag.
func (s *Session) ActiveCamera() *camera.Controller {
	if s.kind == camera.Perspective {
		return s.persp
	}
	return s.ortho
}

// SetAutoExport toggles exporting the canvas on every finished stroke.
func (s *Session) SetAutoExport(on bool) {
	s.autoExport = on
}

// HandleEvent routes one input event through the state machine.
func (s *Session) HandleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventPointerDown:
		s.handlePointerDown(ev)
	case input.EventPointerMove:
		s.handlePointerMove(ev)
	case input.EventPointerUp:
		s.handlePointerUp(ev)
	case input.EventWheel:
		s.handleWheel(ev)
	case input.EventKeyDown:
		s.handleKey(ev)
	case input.EventResize:
		s.HandleResize(ev.Width, ev.Height)
	}
}

// handlePointerDown leaves Idle for Draw or View. An unmodified
// primary press under the orthographic camera paints; everything else
// drives the active camera.
func (s *Session) handlePointerDown(ev input.Event) {
	if s.mode != ModeIdle || ev.Button == input.ButtonNone {
		return
	}

	pos := math.Vec2{X: ev.X, Y: ev.Y}

	if ev.Button == input.ButtonPrimary && !ev.Shift && s.kind == camera.Orthographic {
		s.textures.ApplyDrawing()
		s.textures.StrokeStart(pos)
		s.mode = ModeDraw
		s.gesture = drawGesture{s: s}
		s.gestureButton = ev.Button
		logger.Debug("draw started", zap.Float32("x", ev.X), zap.Float32("y", ev.Y))
		return
	}

	s.textures.ApplyViewing()
	ctrl := s.ActiveCamera()
	if ev.Button == input.ButtonSecondary || ev.Button == input.ButtonMiddle {
		ctrl.BeginPan(pos)
	} else {
		ctrl.BeginRotate(pos)
	}
	s.mode = ModeView
	s.gesture = viewGesture{ctrl: ctrl}
	s.gestureButton = ev.Button
}

func (s *Session) handlePointerMove(ev input.Event) {
	if s.gesture != nil {
		s.gesture.move(ev)
	}
}

func (s *Session) handlePointerUp(ev input.Event) {
	if s.gesture == nil || ev.Button != s.gestureButton {
		return
	}
	s.gesture.end(ev)
	s.gesture = nil
	s.gestureButton = input.ButtonNone
	s.mode = ModeIdle
}

// handleWheel feeds the active camera's zoom accumulator. Wheel input
// only applies while Idle, and under the orthographic camera only with
// Shift held: a bare wheel in paint position would silently throw away
// the drawing projection.
func (s *Session) handleWheel(ev input.Event) {
	if s.mode != ModeIdle {
		return
	}
	if s.kind == camera.Orthographic && !ev.Shift {
		return
	}
	s.textures.ApplyViewing()
	s.ActiveCamera().Wheel(ev.WheelDelta)
}

func (s *Session) handleKey(ev input.Event) {
	if s.gesture != nil {
		return
	}
	switch ev.Key {
	case input.KeyTab:
		s.toggleCamera()
	case input.KeyR:
		s.resetCamera()
	case input.KeyF12:
		s.exportNow()
	}
}

// toggleCamera flips between the projection models. The drawing
// mapping belongs to the previous camera, so the mesh drops back to
// the viewing mapping.
func (s *Session) toggleCamera() {
	if s.kind == camera.Orthographic {
		s.kind = camera.Perspective
	} else {
		s.kind = camera.Orthographic
	}
	s.textures.ApplyViewing()
	logger.Debug("camera toggled", zap.Stringer("kind", s.kind))
}

func (s *Session) resetCamera() {
	s.ActiveCamera().Reset()
	s.textures.ApplyViewing()
	if s.kind == camera.Orthographic {
		s.textures.InvalidateProjection()
	}
	logger.Debug("camera reset", zap.Stringer("kind", s.kind))
}

// Update consumes the controllers' buffered gesture input, once per
// frame. Any orthographic pose change invalidates the drawing UVs.
func (s *Session) Update() {
	if s.ortho.Update() {
		s.textures.InvalidateProjection()
	}
	s.persp.Update()
}

// HandleResize propagates a new canvas size to both controllers and
// the drawing raster. An active paint stroke is finished first: the
// brush holds a handle to the raster being replaced.
func (s *Session) HandleResize(w, h int) {
	if s.mode == ModeDraw {
		s.finishStroke()
		s.gesture = nil
		s.gestureButton = input.ButtonNone
		s.mode = ModeIdle
	}

	box := trackball.Box{Width: float32(w), Height: float32(h)}
	s.ortho.SetBox(box)
	s.persp.SetBox(box)
	s.textures.Resize(w, h)
	logger.Debug("canvas resized", zap.Int("width", w), zap.Int("height", h))
}

// finishStroke completes the active stroke and runs the configured
// stroke-end export.
func (s *Session) finishStroke() {
	stroke := s.textures.StrokeEnd()
	logger.Debug("stroke finished",
		zap.Int("dabs", stroke.Dabs),
		zap.Float32("length", stroke.Length))
	if s.autoExport {
		s.exportNow()
	}
}

// exportNow saves the drawing raster. Failures are logged and the
// session carries on.
func (s *Session) exportNow() {
	if s.exporter == nil {
		return
	}
	path, err := s.exporter.Export(s.textures.Drawing().Image())
	if err != nil {
		logger.Error("export failed", zap.Error(err))
		return
	}
	logger.Info("painting exported", zap.String("path", path))
}

type drawGesture struct {
	s *Session
}

func (g drawGesture) move(ev input.Event) {
	g.s.textures.StrokeMove(math.Vec2{X: ev.X, Y: ev.Y})
}

func (g drawGesture) end(input.Event) {
	g.s.finishStroke()
}

type viewGesture struct {
	ctrl *camera.Controller
}

func (g viewGesture) move(ev input.Event) {
	g.ctrl.PointerMove(math.Vec2{X: ev.X, Y: ev.Y})
}

func (g viewGesture) end(input.Event) {
	g.ctrl.EndDrag()
}
