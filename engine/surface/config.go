package surface

import "github.com/Carmen-Shannon/oxy-gl/common"

// RenderConfig holds the static render settings of a surface. It is read-only
// once the surface is constructed.
type RenderConfig struct {
	// BackgroundColor is the clear color, one 0-255 value per channel.
	BackgroundColor common.Color

	// FieldOfView is the vertical field of view in degrees.
	FieldOfView float32

	// Near and Far are the clip plane distances. Anything outside [Near, Far] is not rendered.
	Near float32
	Far  float32

	// MovementKeys enables the built-in arrow/WASD camera bindings.
	MovementKeys bool
}

// DefaultRenderConfig returns a black background, a 45 degree field of view,
// clip planes at 1 and 100, and movement keys enabled.
//
// Returns:
//   - RenderConfig: the default configuration
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		BackgroundColor: common.Color{},
		FieldOfView:     45.0,
		Near:            1.0,
		Far:             100.0,
		MovementKeys:    true,
	}
}
