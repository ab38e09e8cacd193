package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithDragDivisor sets the divisor applied to pointer deltas while panning.
// Values <= 0 are ignored.
//
// Parameters:
//   - divisor: pixels per world unit
//
// Returns:
//   - CameraControllerOption: functional option to set the drag divisor
func WithDragDivisor(divisor float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if divisor > 0 {
			cc.dragDivisor = divisor
		}
	}
}

// WithStepSize sets the amount each movement key and wheel notch applies.
//
// Parameters:
//   - step: units or degrees per event
//
// Returns:
//   - CameraControllerOption: functional option to set the step size
func WithStepSize(step float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.stepSize = step
	}
}
