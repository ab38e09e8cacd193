package camera

// CameraController translates discrete navigation input into camera pose increments.
// Pointer drags pan the camera in X/Y, the wheel zooms along Z, and the movement
// keys step one of the six pose scalars by a fixed amount.
type CameraController interface {
	// Camera returns the camera driven by this controller.
	//
	// Returns:
	//   - Camera: the controlled camera
	Camera() Camera

	// Pan moves the camera by a pointer delta divided by DragDivisor.
	// The X delta is added to the camera X and the Y delta to the camera Y.
	//
	// Parameters:
	//   - dx, dy: pointer movement in pixels since the last recorded point
	Pan(dx, dy float32)

	// Zoom steps the camera along Z opposite to the sign of the wheel delta.
	// A zero delta is ignored.
	//
	// Parameters:
	//   - delta: raw signed wheel magnitude
	//
	// Returns:
	//   - bool: true if the camera moved
	Zoom(delta float32) bool

	// HandleKey applies the movement binding for key, if any.
	//
	// Parameters:
	//   - key: the virtual key code (see common.Key*)
	//
	// Returns:
	//   - bool: true if key is a movement key and the camera was stepped
	HandleKey(key uint32) bool

	// DragDivisor returns the divisor applied to pointer deltas.
	//
	// Returns:
	//   - float32: pixels per world unit of panning
	DragDivisor() float32

	// StepSize returns the amount a movement key adds to its pose scalar.
	//
	// Returns:
	//   - float32: units (position) or degrees (rotation) per key press
	StepSize() float32
}
