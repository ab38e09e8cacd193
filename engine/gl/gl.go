// Package gl exposes the subset of the fixed-function OpenGL 1.x API used by the
// navigable surface, loaded at runtime from the platform GL library through purego.
package gl

import (
	"errors"
	"unsafe"
)

const (
	// DepthBufferBit is a mask used with Clear to clear the depth buffer.
	DepthBufferBit = 0x00000100
	// ColorBufferBit is a mask used with Clear to clear the color buffer.
	ColorBufferBit = 0x00004000

	// DepthTest enables depth comparisons.
	DepthTest = 0x0B71
	// Blend enables blending of incoming fragments with the framebuffer.
	Blend = 0x0BE2
	// Texture2D is the texture target for 2D textures.
	Texture2D = 0x0DE1

	// SrcAlpha and OneMinusSrcAlpha are blend factors.
	SrcAlpha         = 0x0302
	OneMinusSrcAlpha = 0x0303

	// TextureMagFilter and TextureMinFilter select the texture filters.
	TextureMagFilter = 0x2800
	TextureMinFilter = 0x2801

	// Nearest selects nearest-neighbor filtering.
	Nearest = 0x2600
	// Linear selects linear filtering.
	Linear = 0x2601

	// RGBA is a pixel format representing red/green/blue/alpha.
	RGBA = 0x1908
	// UnsignedByte is a pixel data type indicating 8-bit unsigned values.
	UnsignedByte = 0x1401
	// UnpackAlignment specifies the row alignment of uploaded pixel data.
	UnpackAlignment = 0x0CF5

	// ModelView selects the model-view matrix stack for MatrixMode.
	ModelView = 0x1700
	// Projection selects the projection matrix stack for MatrixMode.
	Projection = 0x1701

	// Quads, QuadStrip and Polygon are legacy immediate-mode primitive types.
	Quads     = 0x0007
	QuadStrip = 0x0008
	Polygon   = 0x0009

	// Vendor and Version are GetString parameters.
	Vendor  = 0x1F00
	Version = 0x1F02
)

// ErrUnsupportedPlatform is returned by Load on platforms without a fixed-function GL library.
var ErrUnsupportedPlatform = errors.New("fixed-function OpenGL is not available on this platform")

// OpenGL describes the fixed-function OpenGL entry points used by this module.
//
// All methods operate on the GL context that is current on the calling thread.
type OpenGL interface {
	// ClearColor sets the clear color used by Clear when clearing the color buffer.
	ClearColor(r, g, b, a float32)

	// Clear clears buffers to preset values (ColorBufferBit, DepthBufferBit).
	Clear(mask uint32)

	// Viewport sets the affine transformation from normalized device to window coordinates.
	Viewport(x, y, width, height int32)

	// Enable enables a server-side GL capability.
	Enable(cap uint32)

	// Disable disables a server-side GL capability.
	Disable(cap uint32)

	// BlendFunc specifies the pixel arithmetic for blending.
	BlendFunc(sfactor, dfactor uint32)

	// GenTextures generates texture object names.
	GenTextures(n int32, textures *uint32)

	// BindTexture binds a named texture to a texturing target.
	BindTexture(target, texture uint32)

	// TexImage2D specifies a two-dimensional texture image.
	TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer)

	// TexParameteri sets a texture parameter for the currently bound texture.
	TexParameteri(target, pname uint32, param int32)

	// PixelStorei sets pixel storage modes.
	PixelStorei(pname uint32, param int32)

	// MatrixMode selects the matrix stack targeted by matrix operations.
	MatrixMode(mode uint32)

	// LoadIdentity replaces the current matrix with the identity matrix.
	LoadIdentity()

	// LoadMatrixf replaces the current matrix with 16 column-major values.
	LoadMatrixf(m *float32)

	// MultMatrixf multiplies the current matrix by 16 column-major values.
	MultMatrixf(m *float32)

	// Rotatef multiplies the current matrix by a rotation of angle degrees about (x, y, z).
	Rotatef(angle, x, y, z float32)

	// Begin starts immediate-mode vertex specification for a primitive.
	Begin(mode uint32)

	// End finishes vertex specification started by Begin.
	End()

	// Normal3f sets the current normal.
	Normal3f(x, y, z float32)

	// Vertex3f specifies a vertex.
	Vertex3f(x, y, z float32)

	// Color3f sets the current color.
	Color3f(r, g, b float32)

	// TexCoord2f sets the current texture coordinates.
	TexCoord2f(s, t float32)

	// GetString returns a string describing a GL property, or "" when unavailable.
	GetString(name uint32) string
}

func gostring(ptr *byte) string {
	if ptr == nil {
		return ""
	}
	var bytes []byte
	for p := ptr; *p != 0; p = (*byte)(unsafe.Add(unsafe.Pointer(p), 1)) {
		bytes = append(bytes, *p)
	}
	return string(bytes)
}
