package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := LookAt(Vec3{1, 2, 3}, Vec3{}, Vec3{0, 1, 0})
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math32.Pi / 4) // 45 degrees
	aspect := float32(1.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Perspective(fov, aspect, near, far)

	// Should be a valid projection matrix (not identity)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestOrtho(t *testing.T) {
	m := Ortho(-4, 4, -3, 3, 0.1, 100)

	if abs(m[0]-0.25) > 0.0001 {
		t.Errorf("Ortho [0] = %f, want 0.25", m[0])
	}
	if abs(m[5]-1.0/3.0) > 0.0001 {
		t.Errorf("Ortho [5] = %f, want 1/3", m[5])
	}
	// Element [15] should be 1 for orthographic projection
	if m[15] != 1 {
		t.Errorf("Ortho [15] should be 1, got %f", m[15])
	}
}

func TestOrthoMapsCornersToNDC(t *testing.T) {
	m := Ortho(-4, 4, -3, 3, 1, 100)

	got := m.MulVec4(Vec4{X: 4, Y: 3, Z: -1, W: 1})
	if abs(got.X-1) > 0.0001 || abs(got.Y-1) > 0.0001 {
		t.Errorf("top-right corner maps to (%f, %f), want (1, 1)", got.X, got.Y)
	}

	got = m.MulVec4(Vec4{X: -4, Y: -3, Z: -1, W: 1})
	if abs(got.X+1) > 0.0001 || abs(got.Y+1) > 0.0001 {
		t.Errorf("bottom-left corner maps to (%f, %f), want (-1, -1)", got.X, got.Y)
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	center := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}

	// The eye position should map to the view-space origin.
	got := m.MulVec4(Vec4{X: eye.X, Y: eye.Y, Z: eye.Z, W: 1})
	if abs(got.X) > 0.0001 || abs(got.Y) > 0.0001 || abs(got.Z) > 0.0001 {
		t.Errorf("eye maps to (%f, %f, %f), want origin", got.X, got.Y, got.Z)
	}

	// A point in front of the eye should land on the -Z axis.
	got = m.MulVec4(Vec4{W: 1})
	if abs(got.Z+5) > 0.0001 {
		t.Errorf("center z = %f, want -5", got.Z)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
