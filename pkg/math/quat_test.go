package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
	if !q.IsIdentity() {
		t.Error("IsIdentity() should be true for QuatIdentity()")
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := math32.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)
	if math32.Abs(length-1.0) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatNormalizeDegenerate(t *testing.T) {
	q := Quat{}
	got := q.Normalize()
	if !got.IsIdentity() {
		t.Errorf("Normalize on zero quaternion = %v, want identity", got)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, math32.Pi/2)

	// Should have Y component and W = cos(45deg)
	expectedW := math32.Cos(math32.Pi / 4)
	expectedY := math32.Sin(math32.Pi / 4)

	if math32.Abs(q.W-expectedW) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math32.Abs(q.Y-expectedY) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotateVec3(t *testing.T) {
	// 90 degrees around Z takes +X to +Y.
	q := QuatFromAxisAngle(Vec3{Z: 1}, math32.Pi/2)
	got := q.RotateVec3(Vec3{X: 1})
	want := Vec3{Y: 1}
	if got.Distance(want) > 0.0001 {
		t.Errorf("RotateVec3() = %v, want %v", got, want)
	}
}

func TestQuatRotateVec3Identity(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := QuatIdentity().RotateVec3(v)
	if got.Distance(v) > 0.0001 {
		t.Errorf("identity rotation moved %v to %v", v, got)
	}
}

func TestQuatMulComposes(t *testing.T) {
	// Two 45 degree rotations around Y should equal one 90 degree rotation.
	half := QuatFromAxisAngle(Vec3{Y: 1}, math32.Pi/4)
	full := QuatFromAxisAngle(Vec3{Y: 1}, math32.Pi/2)

	composed := half.Mul(half)
	v := Vec3{X: 1}
	got := composed.RotateVec3(v)
	want := full.RotateVec3(v)
	if got.Distance(want) > 0.0001 {
		t.Errorf("composed rotation = %v, want %v", got, want)
	}
}
