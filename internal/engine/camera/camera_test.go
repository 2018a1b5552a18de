package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/footsoldier/chameleon/pkg/math"
	"github.com/footsoldier/chameleon/pkg/trackball"
)

var testBox = trackball.Box{Left: 0, Top: 0, Width: 800, Height: 600}

func newTestController(kind Kind) *Controller {
	return New(Config{
		Kind:        kind,
		FOV:         45,
		RotateSpeed: 1.0,
		PanSpeed:    0.3,
		ZoomSpeed:   1.0,
	}, testBox, 1)
}

func TestResetFramesBoundingBall(t *testing.T) {
	c := newTestController(Perspective)
	pose := c.Pose()

	wantDist := 2 / math32.Tan(radians(45)/2)
	if math32.Abs(pose.Position.Z-wantDist) > 0.001 {
		t.Errorf("reset distance = %v, want %v", pose.Position.Z, wantDist)
	}
	if pose.Target != (math.Vec3{}) {
		t.Errorf("reset target = %v, want origin", pose.Target)
	}
	if pose.Up != (math.Vec3{Y: 1}) {
		t.Errorf("reset up = %v, want +Y", pose.Up)
	}
	if pose.Zoom != 1 {
		t.Errorf("reset zoom = %v, want 1", pose.Zoom)
	}
}

func TestUpdateWithoutInputIsNoop(t *testing.T) {
	c := newTestController(Orthographic)
	before := c.Pose()

	if c.Update() {
		t.Error("Update with no input reported a pose change")
	}
	if c.Pose() != before {
		t.Error("Update with no input moved the pose")
	}
}

func TestRotateDragOrbitsEye(t *testing.T) {
	c := newTestController(Perspective)
	startLen := c.Pose().Eye().Length()

	c.BeginRotate(math.Vec2{X: 400, Y: 300})
	c.PointerMove(math.Vec2{X: 500, Y: 300})

	if !c.Update() {
		t.Fatal("rotate drag did not change the pose")
	}

	pose := c.Pose()
	if math32.Abs(pose.Eye().Length()-startLen) > 0.001 {
		t.Errorf("rotation changed eye length from %v to %v", startLen, pose.Eye().Length())
	}
	// Dragging right orbits the camera left so the mesh follows the
	// pointer.
	if pose.Position.X >= 0 {
		t.Errorf("drag right should move the eye to -X, got %v", pose.Position)
	}
	// A horizontal drag spins around the vertical axis, leaving up
	// untouched.
	if pose.Up.Distance(math.Vec3{Y: 1}) > 0.0001 {
		t.Errorf("horizontal rotation disturbed up: %v", pose.Up)
	}
	if pose.Target != (math.Vec3{}) {
		t.Errorf("rotation moved the target: %v", pose.Target)
	}
}

func TestRotateConsumedOncePerFrame(t *testing.T) {
	c := newTestController(Perspective)

	c.BeginRotate(math.Vec2{X: 400, Y: 300})
	c.PointerMove(math.Vec2{X: 500, Y: 300})
	c.Update()

	after := c.Pose()
	if c.Update() {
		t.Error("second Update re-applied a consumed rotation")
	}
	if c.Pose() != after {
		t.Error("pose moved without new input")
	}
}

func TestRotateStationaryPointerIsIdentity(t *testing.T) {
	c := newTestController(Perspective)

	c.BeginRotate(math.Vec2{X: 250, Y: 125})
	if c.Update() {
		t.Error("rotate drag with no movement changed the pose")
	}
}

func TestPointerMoveWithoutDragIsIgnored(t *testing.T) {
	c := newTestController(Perspective)

	c.PointerMove(math.Vec2{X: 100, Y: 100})
	if c.Update() {
		t.Error("pointer move without an active drag changed the pose")
	}
}

func TestEndDragStopsTracking(t *testing.T) {
	c := newTestController(Perspective)

	c.BeginRotate(math.Vec2{X: 400, Y: 300})
	c.EndDrag()
	c.PointerMove(math.Vec2{X: 500, Y: 300})

	if c.Update() {
		t.Error("pointer move after EndDrag changed the pose")
	}
}

func TestPanDragMovesTargetHorizontally(t *testing.T) {
	c := newTestController(Orthographic)
	startEye := c.Pose().Eye()

	c.BeginPan(math.Vec2{X: 400, Y: 300})
	c.PointerMove(math.Vec2{X: 420, Y: 300})

	if !c.Update() {
		t.Fatal("pan drag did not change the pose")
	}

	pose := c.Pose()
	if pose.Target.X == 0 {
		t.Error("horizontal pan left target.X at 0")
	}
	if pose.Target.Y != 0 || pose.Target.Z != 0 {
		t.Errorf("horizontal pan should only move X, got target %v", pose.Target)
	}
	// Pan translates position and target together.
	if pose.Eye().Distance(startEye) > 0.0001 {
		t.Errorf("pan changed the eye vector from %v to %v", startEye, pose.Eye())
	}

	// Magnitude follows the screen fraction scaled by eye length and
	// pan speed.
	wantMag := float32(20.0/800.0) * startEye.Length() * 0.3
	if math32.Abs(math32.Abs(pose.Target.X)-wantMag) > 0.001 {
		t.Errorf("pan magnitude = %v, want %v", math32.Abs(pose.Target.X), wantMag)
	}
}

func TestWheelZoomShortensEyePerspective(t *testing.T) {
	c := newTestController(Perspective)
	startLen := c.Pose().Eye().Length()

	// One wheel notch up: +120 accumulates 0.03, factor 1.03.
	c.Wheel(120)
	if !c.Update() {
		t.Fatal("wheel zoom did not change the pose")
	}

	gotLen := c.Pose().Eye().Length()
	wantLen := startLen / 1.03
	if math32.Abs(gotLen-wantLen) > 0.001 {
		t.Errorf("eye length after zoom = %v, want %v", gotLen, wantLen)
	}
	if c.Pose().Zoom != 1 {
		t.Errorf("perspective zoom should not touch Pose.Zoom, got %v", c.Pose().Zoom)
	}
}

func TestWheelZoomMagnifiesOrthographic(t *testing.T) {
	c := newTestController(Orthographic)
	startPos := c.Pose().Position

	c.Wheel(120)
	if !c.Update() {
		t.Fatal("wheel zoom did not change the pose")
	}

	pose := c.Pose()
	if math32.Abs(pose.Zoom-1.03) > 0.0001 {
		t.Errorf("orthographic zoom = %v, want 1.03", pose.Zoom)
	}
	if pose.Position != startPos {
		t.Errorf("orthographic zoom moved the camera from %v to %v", startPos, pose.Position)
	}
}

func TestZoomConsumedOncePerFrame(t *testing.T) {
	c := newTestController(Perspective)

	c.Wheel(120)
	c.Update()
	after := c.Pose()

	if c.Update() {
		t.Error("second Update re-applied a consumed zoom")
	}
	if c.Pose() != after {
		t.Error("pose moved without new input")
	}
}

func TestZoomRejectsNonPositiveFactor(t *testing.T) {
	c := newTestController(Perspective)
	before := c.Pose()

	// Accumulate enough to drive the factor negative.
	for i := 0; i < 100; i++ {
		c.Wheel(-120)
	}
	if c.Update() {
		t.Error("non-positive zoom factor changed the pose")
	}
	if c.Pose() != before {
		t.Error("pose moved despite rejected zoom factor")
	}

	// The rejected delta must still be consumed.
	c.Wheel(120)
	c.Update()
	wantLen := before.Eye().Length() / 1.03
	if math32.Abs(c.Pose().Eye().Length()-wantLen) > 0.001 {
		t.Errorf("stale zoom delta leaked into later frame: eye length %v, want %v",
			c.Pose().Eye().Length(), wantLen)
	}
}

func TestResetClearsPendingGestures(t *testing.T) {
	c := newTestController(Perspective)
	initial := c.Pose()

	c.BeginRotate(math.Vec2{X: 400, Y: 300})
	c.PointerMove(math.Vec2{X: 500, Y: 400})
	c.Wheel(240)
	c.Reset()

	if c.Pose() != initial {
		t.Errorf("Reset pose = %v, want %v", c.Pose(), initial)
	}
	if c.Update() {
		t.Error("buffered gestures survived Reset")
	}
}

func TestProjectionMatrixKinds(t *testing.T) {
	persp := newTestController(Perspective).ProjectionMatrix()
	if persp[15] != 0 || persp[11] != -1 {
		t.Errorf("perspective projection shape wrong: [11]=%v [15]=%v", persp[11], persp[15])
	}

	ortho := newTestController(Orthographic).ProjectionMatrix()
	if ortho[15] != 1 || ortho[11] != 0 {
		t.Errorf("orthographic projection shape wrong: [11]=%v [15]=%v", ortho[11], ortho[15])
	}
}

func TestOrthographicHalfExtents(t *testing.T) {
	c := newTestController(Orthographic)
	m := c.ProjectionMatrix()

	// Half extents are 1.5 * radius, aspect-corrected: halfW=2, halfH=1.5.
	if math32.Abs(m[0]-0.5) > 0.0001 {
		t.Errorf("ortho [0] = %v, want 0.5", m[0])
	}
	if math32.Abs(m[5]-1.0/1.5) > 0.0001 {
		t.Errorf("ortho [5] = %v, want %v", m[5], 1.0/1.5)
	}

	// Zooming in shrinks the visible extents.
	c.Wheel(120)
	c.Update()
	zoomed := c.ProjectionMatrix()
	if zoomed[5] <= m[5] {
		t.Errorf("zooming in should increase [5], got %v -> %v", m[5], zoomed[5])
	}
}

func TestViewProjectionCentersTarget(t *testing.T) {
	c := newTestController(Orthographic)
	vp := c.ViewProjection()

	got := vp.MulVec4(math.Vec4{W: 1})
	if math32.Abs(got.X) > 0.0001 || math32.Abs(got.Y) > 0.0001 {
		t.Errorf("target should project to NDC center, got (%v, %v)", got.X, got.Y)
	}
}
