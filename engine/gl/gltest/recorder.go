// Package gltest provides a recording gl.OpenGL implementation for tests.
package gltest

import (
	"fmt"
	"strings"
	"sync"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-gl/engine/gl"
)

// Call is a single recorded GL invocation.
type Call struct {
	Name string
	Args []any
}

// String formats the call as Name(arg, arg, ...).
func (c Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Recorder implements gl.OpenGL by appending every call to an in-memory log.
// Matrix arguments are copied so later mutation of the caller's array does not affect the log.
type Recorder struct {
	mu          sync.Mutex
	calls       []Call
	nextTexture uint32
}

var _ gl.OpenGL = &Recorder{}

// NewRecorder creates an empty Recorder. Texture names start at 1.
func NewRecorder() *Recorder {
	return &Recorder{nextTexture: 1}
}

func (r *Recorder) record(name string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Names returns only the names of the recorded calls, in order.
func (r *Recorder) Names() []string {
	calls := r.Calls()
	names := make([]string, len(calls))
	for i, c := range calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many times the named call was recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls() {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset clears the log.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func matrix(m *float32) [16]float32 {
	return *(*[16]float32)(unsafe.Pointer(m))
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}
func (r *Recorder) Clear(mask uint32)                     { r.record("Clear", mask) }
func (r *Recorder) Viewport(x, y, width, height int32)    { r.record("Viewport", x, y, width, height) }
func (r *Recorder) Enable(cap uint32)                     { r.record("Enable", cap) }
func (r *Recorder) Disable(cap uint32)                    { r.record("Disable", cap) }
func (r *Recorder) BlendFunc(sfactor, dfactor uint32)     { r.record("BlendFunc", sfactor, dfactor) }
func (r *Recorder) BindTexture(target, texture uint32)    { r.record("BindTexture", target, texture) }
func (r *Recorder) PixelStorei(pname uint32, param int32) { r.record("PixelStorei", pname, param) }
func (r *Recorder) MatrixMode(mode uint32)                { r.record("MatrixMode", mode) }
func (r *Recorder) LoadIdentity()                         { r.record("LoadIdentity") }
func (r *Recorder) LoadMatrixf(m *float32)                { r.record("LoadMatrixf", matrix(m)) }
func (r *Recorder) MultMatrixf(m *float32)                { r.record("MultMatrixf", matrix(m)) }
func (r *Recorder) Rotatef(angle, x, y, z float32)        { r.record("Rotatef", angle, x, y, z) }
func (r *Recorder) Begin(mode uint32)                     { r.record("Begin", mode) }
func (r *Recorder) End()                                  { r.record("End") }
func (r *Recorder) Normal3f(x, y, z float32)              { r.record("Normal3f", x, y, z) }
func (r *Recorder) Vertex3f(x, y, z float32)              { r.record("Vertex3f", x, y, z) }
func (r *Recorder) Color3f(red, green, blue float32)      { r.record("Color3f", red, green, blue) }
func (r *Recorder) TexCoord2f(s, t float32)               { r.record("TexCoord2f", s, t) }
func (r *Recorder) GetString(name uint32) string          { r.record("GetString", name); return "gltest" }

func (r *Recorder) TexParameteri(target, pname uint32, param int32) {
	r.record("TexParameteri", target, pname, param)
}

// GenTextures hands out sequential texture names.
func (r *Recorder) GenTextures(n int32, textures *uint32) {
	r.mu.Lock()
	out := unsafe.Slice(textures, n)
	for i := range out {
		out[i] = r.nextTexture
		r.nextTexture++
	}
	r.mu.Unlock()
	r.record("GenTextures", n)
}

// TexImage2D records the image dimensions and formats; the pixel data is not retained.
func (r *Recorder) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	r.record("TexImage2D", target, level, internalFormat, width, height, border, format, xtype, pixels != nil)
}
