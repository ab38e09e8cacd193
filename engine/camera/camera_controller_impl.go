package camera

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
)

// keyStep is the signed direction a movement key applies to each pose scalar,
// ordered x, y, z, rotateX, rotateY, rotateZ.
type keyStep [6]float32

// movementKeys binds each movement key to exactly one pose scalar.
// Left increases X, and A (look left) increases rotateY while D decreases it.
var movementKeys = map[uint32]keyStep{
	common.KeyLeft:       {1, 0, 0, 0, 0, 0},
	common.KeyRight:      {-1, 0, 0, 0, 0, 0},
	common.KeyUp:         {0, 1, 0, 0, 0, 0},
	common.KeyDown:       {0, -1, 0, 0, 0, 0},
	common.KeyEqual:      {0, 0, 1, 0, 0, 0},
	common.KeyKPAdd:      {0, 0, 1, 0, 0, 0},
	common.KeyMinus:      {0, 0, -1, 0, 0, 0},
	common.KeyKPSubtract: {0, 0, -1, 0, 0, 0},
	common.KeyW:          {0, 0, 0, 1, 0, 0},
	common.KeyS:          {0, 0, 0, -1, 0, 0},
	common.KeyA:          {0, 0, 0, 0, 1, 0},
	common.KeyD:          {0, 0, 0, 0, -1, 0},
	common.KeyL:          {0, 0, 0, 0, 0, -1},
	common.KeyP:          {0, 0, 0, 0, 0, 1},
}

// IsMovementKey reports whether key has a built-in movement binding.
//
// Parameters:
//   - key: the virtual key code
//
// Returns:
//   - bool: true if HandleKey would consume the key
func IsMovementKey(key uint32) bool {
	_, ok := movementKeys[key]
	return ok
}

type cameraControllerImpl struct {
	camera Camera

	dragDivisor float32
	stepSize    float32
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller driving cam.
// Defaults: drag divisor 50, step size 1.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(cam Camera, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		camera:      cam,
		dragDivisor: 50.0,
		stepSize:    1.0,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) Camera() Camera {
	return cc.camera
}

func (cc *cameraControllerImpl) Pan(dx, dy float32) {
	cc.camera.Translate(dx/cc.dragDivisor, dy/cc.dragDivisor, 0)
}

func (cc *cameraControllerImpl) Zoom(delta float32) bool {
	direction := common.Sign(delta)
	if direction == 0 {
		return false
	}
	cc.camera.Translate(0, 0, -direction*cc.stepSize)
	return true
}

func (cc *cameraControllerImpl) HandleKey(key uint32) bool {
	step, ok := movementKeys[key]
	if !ok {
		return false
	}
	s := cc.stepSize
	if step[0] != 0 || step[1] != 0 || step[2] != 0 {
		cc.camera.Translate(step[0]*s, step[1]*s, step[2]*s)
	} else {
		cc.camera.Rotate(step[3]*s, step[4]*s, step[5]*s)
	}
	return true
}

func (cc *cameraControllerImpl) DragDivisor() float32 {
	return cc.dragDivisor
}

func (cc *cameraControllerImpl) StepSize() float32 {
	return cc.stepSize
}
