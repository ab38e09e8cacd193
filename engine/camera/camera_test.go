package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	x, y, z := c.Position()
	if x != 0 || y != 10 || z != 0 {
		t.Errorf("Position() = (%v, %v, %v), want (0, 10, 0)", x, y, z)
	}
	rx, ry, rz := c.Rotation()
	if rx != 0 || ry != 0 || rz != 0 {
		t.Errorf("Rotation() = (%v, %v, %v), want (0, 0, 0)", rx, ry, rz)
	}
}

func TestResetRestoresConfiguredDefaults(t *testing.T) {
	c := NewCamera(WithDefaultPosition(1, 2, 3), WithDefaultRotation(10, 20, 30))
	c.Translate(5, -7, 9)
	c.Rotate(400, -720, 1)
	c.SetPosition(100, 100, 100)

	for i := 0; i < 2; i++ {
		c.Reset()
		x, y, z := c.Position()
		rx, ry, rz := c.Rotation()
		if x != 1 || y != 2 || z != 3 {
			t.Errorf("Reset #%d: Position() = (%v, %v, %v), want (1, 2, 3)", i, x, y, z)
		}
		if rx != 10 || ry != 20 || rz != 30 {
			t.Errorf("Reset #%d: Rotation() = (%v, %v, %v), want (10, 20, 30)", i, rx, ry, rz)
		}
	}
}

func TestRotationIsNotNormalized(t *testing.T) {
	c := NewCamera()
	c.Rotate(365, -370, 720)
	rx, ry, rz := c.Rotation()
	if rx != 365 || ry != -370 || rz != 720 {
		t.Errorf("Rotation() = (%v, %v, %v), want (365, -370, 720)", rx, ry, rz)
	}
}

func TestLookAtMatrixLooksDownPositiveZ(t *testing.T) {
	c := NewCamera(WithDefaultPosition(2, 3, 4))
	want := mgl32.LookAtV(mgl32.Vec3{2, 3, 4}, mgl32.Vec3{2, 3, 5}, mgl32.Vec3{0, 1, 0})
	if got := c.LookAtMatrix(); !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("LookAtMatrix() = %v, want %v", got, want)
	}

	// A point one unit in front of the eye lands on the view-space -Z axis.
	p := c.LookAtMatrix().Mul4x1(mgl32.Vec4{2, 3, 5, 1})
	if !near(p[0], 0) || !near(p[1], 0) || !near(p[2], -1) {
		t.Errorf("view-space target = %v, want (0, 0, -1)", p)
	}
}

func TestViewMatrixWithoutRotationEqualsLookAt(t *testing.T) {
	c := NewCamera()
	if got, want := c.ViewMatrix(), c.LookAtMatrix(); !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("ViewMatrix() = %v, want %v", got, want)
	}
}

func TestViewMatrixRotationOrder(t *testing.T) {
	c := NewCamera()
	c.SetRotation(30, 45, 60)

	lookAt := c.LookAtMatrix()
	want := lookAt.
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(-45))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(60)))
	got := c.ViewMatrix()
	if !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("ViewMatrix() = %v, want %v", got, want)
	}

	// Any other order yields a different orientation.
	swapped := lookAt.
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(60))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(-45))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30)))
	if got.ApproxEqualThreshold(swapped, eps) {
		t.Error("ViewMatrix() matches Z-Y-X order, want X-Y-Z")
	}
}

func TestViewMatrixInvertsRotateY(t *testing.T) {
	c := NewCamera()
	c.SetRotation(0, 90, 0)
	want := c.LookAtMatrix().Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(-90)))
	if got := c.ViewMatrix(); !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("ViewMatrix() = %v, want %v", got, want)
	}
}
