//go:build !linux && !darwin

package gl

// Load reports ErrUnsupportedPlatform; only the dlopen-capable platforms are bound.
func Load() (OpenGL, error) {
	return nil, ErrUnsupportedPlatform
}
