package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

func TestPanAccumulatesScaledDeltas(t *testing.T) {
	cc := NewCameraController(NewCamera())
	deltas := [][2]float32{{10, 5}, {-3, 25}, {50, -50}, {0.5, 0}}

	var sumX, sumY float32
	for _, d := range deltas {
		cc.Pan(d[0], d[1])
		sumX += d[0] / 50
		sumY += d[1] / 50
	}

	x, y, z := cc.Camera().Position()
	if !near(x, sumX) || !near(y, 10+sumY) || z != 0 {
		t.Errorf("Position() = (%v, %v, %v), want (%v, %v, 0)", x, y, z, sumX, 10+sumY)
	}
}

func TestZoom(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float32
		wantZ  float32
		moved  []bool
	}{
		{"scroll up zooms toward -z", []float32{120}, -1, []bool{true}},
		{"scroll down zooms toward +z", []float32{-120}, 1, []bool{true}},
		{"magnitude is ignored", []float32{0.1, 480}, -2, []bool{true, true}},
		{"up then down cancels", []float32{120, -120}, 0, []bool{true, true}},
		{"zero delta is a no-op", []float32{0}, 0, []bool{false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := NewCameraController(NewCamera())
			for i, d := range tt.deltas {
				if got := cc.Zoom(d); got != tt.moved[i] {
					t.Errorf("Zoom(%v) = %v, want %v", d, got, tt.moved[i])
				}
			}
			if _, _, z := cc.Camera().Position(); z != tt.wantZ {
				t.Errorf("z = %v, want %v", z, tt.wantZ)
			}
		})
	}
}

func TestHandleKeyBindings(t *testing.T) {
	tests := []struct {
		name    string
		key     uint32
		wantPos [3]float32
		wantRot [3]float32
	}{
		{"left", common.KeyLeft, [3]float32{1, 10, 0}, [3]float32{}},
		{"right", common.KeyRight, [3]float32{-1, 10, 0}, [3]float32{}},
		{"up", common.KeyUp, [3]float32{0, 11, 0}, [3]float32{}},
		{"down", common.KeyDown, [3]float32{0, 9, 0}, [3]float32{}},
		{"equal", common.KeyEqual, [3]float32{0, 10, 1}, [3]float32{}},
		{"keypad plus", common.KeyKPAdd, [3]float32{0, 10, 1}, [3]float32{}},
		{"minus", common.KeyMinus, [3]float32{0, 10, -1}, [3]float32{}},
		{"keypad minus", common.KeyKPSubtract, [3]float32{0, 10, -1}, [3]float32{}},
		{"w", common.KeyW, [3]float32{0, 10, 0}, [3]float32{1, 0, 0}},
		{"s", common.KeyS, [3]float32{0, 10, 0}, [3]float32{-1, 0, 0}},
		{"a looks left", common.KeyA, [3]float32{0, 10, 0}, [3]float32{0, 1, 0}},
		{"d looks right", common.KeyD, [3]float32{0, 10, 0}, [3]float32{0, -1, 0}},
		{"l", common.KeyL, [3]float32{0, 10, 0}, [3]float32{0, 0, -1}},
		{"p", common.KeyP, [3]float32{0, 10, 0}, [3]float32{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := NewCameraController(NewCamera())
			if !cc.HandleKey(tt.key) {
				t.Fatalf("HandleKey(%d) = false, want true", tt.key)
			}
			x, y, z := cc.Camera().Position()
			rx, ry, rz := cc.Camera().Rotation()
			if [3]float32{x, y, z} != tt.wantPos {
				t.Errorf("Position() = (%v, %v, %v), want %v", x, y, z, tt.wantPos)
			}
			if [3]float32{rx, ry, rz} != tt.wantRot {
				t.Errorf("Rotation() = (%v, %v, %v), want %v", rx, ry, rz, tt.wantRot)
			}
		})
	}
}

func TestHandleKeyUnbound(t *testing.T) {
	cc := NewCameraController(NewCamera())
	if cc.HandleKey(common.KeySpace) {
		t.Error("HandleKey(space) = true, want false")
	}
	if IsMovementKey(common.KeyEsc) {
		t.Error("IsMovementKey(escape) = true, want false")
	}
}

func TestLeftThenRightReturnsToStart(t *testing.T) {
	cc := NewCameraController(NewCamera())
	const n = 17
	for i := 0; i < n; i++ {
		cc.HandleKey(common.KeyLeft)
	}
	for i := 0; i < n; i++ {
		cc.HandleKey(common.KeyRight)
	}
	if x, _, _ := cc.Camera().Position(); x != 0 {
		t.Errorf("x = %v, want 0", x)
	}
}

func TestControllerOptions(t *testing.T) {
	cc := NewCameraController(NewCamera(), WithDragDivisor(10), WithStepSize(0.5))
	if cc.DragDivisor() != 10 || cc.StepSize() != 0.5 {
		t.Fatalf("DragDivisor(), StepSize() = %v, %v, want 10, 0.5", cc.DragDivisor(), cc.StepSize())
	}
	cc.Pan(20, 0)
	cc.HandleKey(common.KeyLeft)
	if x, _, _ := cc.Camera().Position(); x != 2.5 {
		t.Errorf("x = %v, want 2.5", x)
	}

	ignored := NewCameraController(NewCamera(), WithDragDivisor(0))
	if ignored.DragDivisor() != 50 {
		t.Errorf("DragDivisor() with zero option = %v, want 50", ignored.DragDivisor())
	}
}
