// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Color is an 8-bit-per-channel RGB color, with each channel in the range [0, 255].
type Color struct {
	R, G, B uint8
}

// Normalized converts the color channels to the [0.0, 1.0] range used by OpenGL.
//
// Returns:
//   - r, g, b: the channel values divided by 255
func (c Color) Normalized() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}
