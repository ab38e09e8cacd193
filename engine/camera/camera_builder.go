package camera

type CameraBuilderOption func(*cameraImpl)

// WithDefaultPosition sets the position the camera starts at and returns to on Reset.
//
// Parameters:
//   - x, y, z: default world-space position
//
// Returns:
//   - CameraBuilderOption: a function that sets the default position
func WithDefaultPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.defaultPosition = [3]float32{x, y, z}
	}
}

// WithDefaultRotation sets the rotation the camera starts at and returns to on Reset.
//
// Parameters:
//   - rx, ry, rz: default rotation in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the default rotation
func WithDefaultRotation(rx, ry, rz float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.defaultRotation = [3]float32{rx, ry, rz}
	}
}
