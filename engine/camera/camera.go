package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Default camera pose used when no builder option overrides it.
var (
	DefaultPosition = [3]float32{0, 10, 0}
	DefaultRotation = [3]float32{0, 0, 0}
)

type cameraImpl struct {
	mu *sync.Mutex

	// position is the eye point in world space.
	position [3]float32
	// rotation holds rotateX, rotateY, rotateZ in degrees. Never normalized.
	rotation [3]float32

	defaultPosition [3]float32
	defaultRotation [3]float32
}

// Camera defines the interface for the fixed-function camera pose.
// The pose is six independent scalars: a world-space position and an Euler
// rotation in degrees. No clamping or wrapping is applied to either.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Rotation returns the camera's Euler rotation in degrees.
	//
	// Returns:
	//   - rx, ry, rz: rotation about the X, Y and Z axes in degrees
	Rotation() (rx, ry, rz float32)

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// SetRotation sets the camera's Euler rotation directly.
	//
	// Parameters:
	//   - rx, ry, rz: rotation about the X, Y and Z axes in degrees
	SetRotation(rx, ry, rz float32)

	// Translate offsets the camera position.
	//
	// Parameters:
	//   - dx, dy, dz: offset added to each position component
	Translate(dx, dy, dz float32)

	// Rotate offsets the camera rotation.
	//
	// Parameters:
	//   - drx, dry, drz: degrees added to each rotation component
	Rotate(drx, dry, drz float32)

	// Reset restores position and rotation to the configured defaults.
	Reset()

	// Defaults returns the configured default pose.
	//
	// Returns:
	//   - position: default world-space position
	//   - rotation: default rotation in degrees
	Defaults() (position, rotation [3]float32)

	// LookAtMatrix returns the look-at part of the view transform: the eye at the
	// camera position, looking one unit along +Z, with +Y up.
	//
	// Returns:
	//   - mgl32.Mat4: column-major look-at matrix
	LookAtMatrix() mgl32.Mat4

	// ViewMatrix returns the full view transform: LookAtMatrix followed by
	// rotateX about X, -rotateY about Y and rotateZ about Z, in that order.
	//
	// Returns:
	//   - mgl32.Mat4: column-major view matrix
	ViewMatrix() mgl32.Mat4
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera positioned at its default pose.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:              &sync.Mutex{},
		defaultPosition: DefaultPosition,
		defaultRotation: DefaultRotation,
	}
	for _, option := range options {
		option(c)
	}
	c.position = c.defaultPosition
	c.rotation = c.defaultRotation
	return c
}

func (c *cameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position[0], c.position[1], c.position[2]
}

func (c *cameraImpl) Rotation() (rx, ry, rz float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation[0], c.rotation[1], c.rotation[2]
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = [3]float32{x, y, z}
}

func (c *cameraImpl) SetRotation(rx, ry, rz float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotation = [3]float32{rx, ry, rz}
}

func (c *cameraImpl) Translate(dx, dy, dz float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position[0] += dx
	c.position[1] += dy
	c.position[2] += dz
}

func (c *cameraImpl) Rotate(drx, dry, drz float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotation[0] += drx
	c.rotation[1] += dry
	c.rotation[2] += drz
}

func (c *cameraImpl) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = c.defaultPosition
	c.rotation = c.defaultRotation
}

func (c *cameraImpl) Defaults() (position, rotation [3]float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.defaultPosition, c.defaultRotation
}

func (c *cameraImpl) LookAtMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookAt()
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()

	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(c.rotation[0]))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(-c.rotation[1]))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(c.rotation[2]))
	return c.lookAt().Mul4(rx).Mul4(ry).Mul4(rz)
}

// lookAt builds the look-at matrix for the current position. Caller must hold the mutex.
func (c *cameraImpl) lookAt() mgl32.Mat4 {
	eye := mgl32.Vec3(c.position)
	return mgl32.LookAtV(eye, eye.Add(mgl32.Vec3{0, 0, 1}), mgl32.Vec3{0, 1, 0})
}
