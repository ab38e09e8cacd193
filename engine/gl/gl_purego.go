//go:build linux || darwin

package gl

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// openGL binds the fixed-function OpenGL 1.x entry points exposed by the system GL library.
type openGL struct {
	clearColor    func(float32, float32, float32, float32)
	clear         func(uint32)
	viewport      func(int32, int32, int32, int32)
	enable        func(uint32)
	disable       func(uint32)
	blendFunc     func(uint32, uint32)
	genTextures   func(int32, *uint32)
	bindTexture   func(uint32, uint32)
	texImage2D    func(uint32, int32, int32, int32, int32, int32, uint32, uint32, unsafe.Pointer)
	texParameteri func(uint32, uint32, int32)
	pixelStorei   func(uint32, int32)
	matrixMode    func(uint32)
	loadIdentity  func()
	loadMatrixf   func(*float32)
	multMatrixf   func(*float32)
	rotatef       func(float32, float32, float32, float32)
	begin         func(uint32)
	end           func()
	normal3f      func(float32, float32, float32)
	vertex3f      func(float32, float32, float32)
	color3f       func(float32, float32, float32)
	texCoord2f    func(float32, float32)
	getString     func(uint32) *byte
}

var _ OpenGL = &openGL{}

func (gl *openGL) ClearColor(r, g, b, a float32)  { gl.clearColor(r, g, b, a) }
func (gl *openGL) Clear(mask uint32)              { gl.clear(mask) }
func (gl *openGL) Viewport(x, y, w, h int32)      { gl.viewport(x, y, w, h) }
func (gl *openGL) Enable(cap uint32)              { gl.enable(cap) }
func (gl *openGL) Disable(cap uint32)             { gl.disable(cap) }
func (gl *openGL) BlendFunc(s, d uint32)          { gl.blendFunc(s, d) }
func (gl *openGL) GenTextures(n int32, t *uint32) { gl.genTextures(n, t) }
func (gl *openGL) BindTexture(target, t uint32)   { gl.bindTexture(target, t) }

func (gl *openGL) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.texImage2D(target, level, internalFormat, width, height, border, format, xtype, pixels)
}

func (gl *openGL) TexParameteri(target, pname uint32, param int32) {
	gl.texParameteri(target, pname, param)
}

func (gl *openGL) PixelStorei(pname uint32, param int32) { gl.pixelStorei(pname, param) }
func (gl *openGL) MatrixMode(mode uint32)                { gl.matrixMode(mode) }
func (gl *openGL) LoadIdentity()                         { gl.loadIdentity() }
func (gl *openGL) LoadMatrixf(m *float32)                { gl.loadMatrixf(m) }
func (gl *openGL) MultMatrixf(m *float32)                { gl.multMatrixf(m) }
func (gl *openGL) Rotatef(angle, x, y, z float32)        { gl.rotatef(angle, x, y, z) }
func (gl *openGL) Begin(mode uint32)                     { gl.begin(mode) }
func (gl *openGL) End()                                  { gl.end() }
func (gl *openGL) Normal3f(x, y, z float32)              { gl.normal3f(x, y, z) }
func (gl *openGL) Vertex3f(x, y, z float32)              { gl.vertex3f(x, y, z) }
func (gl *openGL) Color3f(r, g, b float32)               { gl.color3f(r, g, b) }
func (gl *openGL) TexCoord2f(s, t float32)               { gl.texCoord2f(s, t) }

func (gl *openGL) GetString(name uint32) string {
	return gostring(gl.getString(name))
}

// Load opens the platform GL library and resolves every entry point of OpenGL.
// A GL context does not need to be current to load, only to call.
//
// Returns:
//   - OpenGL: the bound entry points
//   - error: error if the library cannot be opened
func Load() (OpenGL, error) {
	handle, err := purego.Dlopen(libraryPath, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", libraryPath, err)
	}
	register := func(dst any, name string) {
		purego.RegisterLibFunc(dst, handle, name)
	}

	gl := &openGL{}
	register(&gl.clearColor, "glClearColor")
	register(&gl.clear, "glClear")
	register(&gl.viewport, "glViewport")
	register(&gl.enable, "glEnable")
	register(&gl.disable, "glDisable")
	register(&gl.blendFunc, "glBlendFunc")
	register(&gl.genTextures, "glGenTextures")
	register(&gl.bindTexture, "glBindTexture")
	register(&gl.texImage2D, "glTexImage2D")
	register(&gl.texParameteri, "glTexParameteri")
	register(&gl.pixelStorei, "glPixelStorei")
	register(&gl.matrixMode, "glMatrixMode")
	register(&gl.loadIdentity, "glLoadIdentity")
	register(&gl.loadMatrixf, "glLoadMatrixf")
	register(&gl.multMatrixf, "glMultMatrixf")
	register(&gl.rotatef, "glRotatef")
	register(&gl.begin, "glBegin")
	register(&gl.end, "glEnd")
	register(&gl.normal3f, "glNormal3f")
	register(&gl.vertex3f, "glVertex3f")
	register(&gl.color3f, "glColor3f")
	register(&gl.texCoord2f, "glTexCoord2f")
	register(&gl.getString, "glGetString")
	return gl, nil
}
