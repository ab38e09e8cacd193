// Package surface implements a navigable fixed-function OpenGL surface: it owns the
// camera pose, maps input events onto it, and issues the per-frame render sequence
// around an embedder-supplied draw hook. The host window calls into the surface;
// the surface never reaches back into the toolkit except through callbacks.
package surface

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/gl"
	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
	"github.com/Carmen-Shannon/oxy-gl/engine/model"
)

// ErrNoOpenGL is returned by NewSurface when no GL implementation is given.
var ErrNoOpenGL = errors.New("surface requires an OpenGL implementation")

// surfaceImpl is the implementation of the Surface interface.
// All methods are expected to be called from the thread that owns the GL context.
type surfaceImpl struct {
	gl     gl.OpenGL
	config RenderConfig

	camera     camera.Camera
	controller camera.CameraController

	cameraOptions     []camera.CameraBuilderOption
	controllerOptions []camera.CameraControllerOption

	width, height int
	projection    mgl32.Mat4

	// dragging is true between a mouse press and release; anchor is the last recorded pointer position.
	dragging bool
	anchor   [2]float32

	quitKey     uint32
	keyBindings map[uint32]KeyHandler

	onSetup      SetupHook
	onInitialize InitializeHook
	onDraw       DrawHook
	onQuit       QuitHook

	onRedraw func()
	onClose  func()
	onReset  func()

	closeRequested bool

	binder ContextBinder
	loader loader.Loader
}

// Surface is a render surface that owns a camera pose and drives the fixed-function
// render sequence. The host window forwards paint, resize and input events to it.
type Surface interface {
	// Initialize enables depth testing and runs the initialize hook.
	// Call once, with the GL context current, before the first Render.
	//
	// Returns:
	//   - error: the initialize hook's error, wrapped
	Initialize() error

	// Resize updates the viewport and the perspective projection.
	// A width or height that is not positive is ignored and the projection is left unchanged.
	//
	// Parameters:
	//   - width, height: the new framebuffer size in pixels
	Resize(width, height int)

	// Render clears the frame, applies the texture/blend state, positions the camera
	// and runs the draw hook. Texturing is disabled again on every path out, including
	// a panicking draw hook.
	Render()

	// Reset restores the camera to its configured default pose. It does not touch GL state.
	Reset()

	// MousePress records the pointer position as the drag anchor.
	//
	// Parameters:
	//   - button: the mouse button (see common.MouseButton*)
	//   - x, y: the pointer position in window coordinates
	MousePress(button uint32, x, y float32)

	// MouseRelease ends the current drag.
	//
	// Parameters:
	//   - button: the mouse button
	//   - x, y: the pointer position in window coordinates
	MouseRelease(button uint32, x, y float32)

	// MouseMove pans the camera by the pointer movement since the anchor, divided by 50,
	// and moves the anchor. Ignored when no drag is in progress.
	//
	// Parameters:
	//   - x, y: the pointer position in window coordinates
	MouseMove(x, y float32)

	// MouseDoubleClick resets the camera and requests a redraw when button is the primary button.
	//
	// Parameters:
	//   - button: the mouse button
	//   - x, y: the pointer position in window coordinates
	MouseDoubleClick(button uint32, x, y float32)

	// Scroll moves the camera one step along Z, opposite to the sign of delta.
	// A zero delta is ignored.
	//
	// Parameters:
	//   - delta: the raw signed wheel magnitude
	Scroll(delta float32)

	// KeyPress handles the quit key, the movement keys (when enabled) and the embedder
	// key bindings, in that order. Every key except the quit key ends with a redraw request.
	//
	// Parameters:
	//   - key: the virtual key code (see common.Key*)
	KeyPress(key uint32)

	// DrawSphere draws a UV sphere centered at the origin as GL quad strips.
	//
	// Parameters:
	//   - radius: the sphere radius
	//   - lats: number of latitude slices
	//   - lons: number of longitude slices
	DrawSphere(radius float32, lats, lons int)

	// CreateTexture decodes the image at path and uploads it as a linear-filtered RGBA
	// texture. The upload is bracketed by the context binder, so it is safe to call
	// outside the draw hook.
	//
	// Parameters:
	//   - path: the image file path
	//
	// Returns:
	//   - uint32: the GL texture name
	//   - error: error if the image cannot be loaded
	CreateTexture(path string) (uint32, error)

	// CreateTextures decodes every path concurrently, then uploads the images in order
	// inside a single context bracket.
	//
	// Parameters:
	//   - paths: the image file paths
	//
	// Returns:
	//   - []uint32: the GL texture names, index-aligned with paths
	//   - error: error if any image cannot be loaded; nothing is uploaded in that case
	CreateTextures(paths []string) ([]uint32, error)

	// UploadTexture uploads an already decoded image as a linear-filtered RGBA texture.
	//
	// Parameters:
	//   - img: the image to upload
	//
	// Returns:
	//   - uint32: the GL texture name
	//   - error: error if img is empty
	UploadTexture(img image.Image) (uint32, error)

	// CameraPosition returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: the camera position
	CameraPosition() (x, y, z float32)

	// CameraRotation returns the camera's rotation in degrees.
	//
	// Returns:
	//   - rx, ry, rz: rotation about the X, Y and Z axes
	CameraRotation() (rx, ry, rz float32)

	// Camera returns the camera, for direct pose setters.
	//
	// Returns:
	//   - camera.Camera: the surface's camera
	Camera() camera.Camera

	// Config returns the render configuration.
	//
	// Returns:
	//   - RenderConfig: a copy of the configuration
	Config() RenderConfig

	// OpenGL returns the GL implementation the surface draws with.
	//
	// Returns:
	//   - gl.OpenGL: the GL entry points
	OpenGL() gl.OpenGL

	// Size returns the last accepted framebuffer size.
	//
	// Returns:
	//   - width, height: size in pixels, zero before the first valid Resize
	Size() (width, height int)

	// ProjectionMatrix returns the projection loaded by the last valid Resize.
	//
	// Returns:
	//   - mgl32.Mat4: the projection, identity before the first valid Resize
	ProjectionMatrix() mgl32.Mat4

	// CloseRequested reports whether the quit key has been pressed.
	//
	// Returns:
	//   - bool: true once a close has been requested
	CloseRequested() bool

	// SetRedrawCallback sets the function called whenever the surface needs repainting.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetRedrawCallback(callback func())

	// SetCloseCallback sets the function called after the quit hook when the quit key is pressed.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetCloseCallback(callback func())

	// SetKeyBinding binds handler to key, replacing any previous binding. A nil handler removes it.
	//
	// Parameters:
	//   - key: the virtual key code
	//   - handler: the handler to run on key press
	SetKeyBinding(key uint32, handler KeyHandler)
}

var _ Surface = &surfaceImpl{}

// NewSurface creates a surface drawing through openGL, with its camera at the default pose.
// The setup hook, if any, runs last.
//
// Parameters:
//   - openGL: the GL entry points
//   - options: functional options to configure the surface
//
// Returns:
//   - Surface: the newly created surface
//   - error: ErrNoOpenGL if openGL is nil
func NewSurface(openGL gl.OpenGL, options ...SurfaceBuilderOption) (Surface, error) {
	if openGL == nil {
		return nil, ErrNoOpenGL
	}

	s := &surfaceImpl{
		gl:          openGL,
		config:      DefaultRenderConfig(),
		projection:  mgl32.Ident4(),
		quitKey:     common.KeyEsc,
		keyBindings: make(map[uint32]KeyHandler),
	}
	for _, opt := range options {
		opt(s)
	}

	s.camera = camera.NewCamera(s.cameraOptions...)
	s.controller = camera.NewCameraController(s.camera, s.controllerOptions...)
	if s.loader == nil {
		s.loader = loader.NewLoader()
	}

	if s.onSetup != nil {
		s.onSetup(s)
	}
	return s, nil
}

func (s *surfaceImpl) Initialize() error {
	s.gl.Enable(gl.DepthTest)
	if s.onInitialize == nil {
		return nil
	}
	if err := s.onInitialize(s.gl); err != nil {
		return fmt.Errorf("failed to initialize surface: %w", err)
	}
	return nil
}

func (s *surfaceImpl) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		common.Logger().Debug("ignoring degenerate resize", "width", width, "height", height)
		return
	}
	s.width, s.height = width, height

	s.gl.Viewport(0, 0, int32(width), int32(height))
	s.gl.MatrixMode(gl.Projection)
	s.projection = mgl32.Perspective(
		mgl32.DegToRad(s.config.FieldOfView),
		float32(width)/float32(height),
		s.config.Near,
		s.config.Far,
	)
	s.gl.LoadMatrixf(&s.projection[0])
}

func (s *surfaceImpl) Reset() {
	s.camera.Reset()
	if s.onReset != nil {
		s.onReset()
	}
}

func (s *surfaceImpl) DrawSphere(radius float32, lats, lons int) {
	model.DrawQuadStrips(s.gl, model.Sphere(radius, lats, lons))
}

func (s *surfaceImpl) CameraPosition() (x, y, z float32) {
	return s.camera.Position()
}

func (s *surfaceImpl) CameraRotation() (rx, ry, rz float32) {
	return s.camera.Rotation()
}

func (s *surfaceImpl) Camera() camera.Camera {
	return s.camera
}

func (s *surfaceImpl) Config() RenderConfig {
	return s.config
}

func (s *surfaceImpl) OpenGL() gl.OpenGL {
	return s.gl
}

func (s *surfaceImpl) Size() (width, height int) {
	return s.width, s.height
}

func (s *surfaceImpl) ProjectionMatrix() mgl32.Mat4 {
	return s.projection
}

func (s *surfaceImpl) CloseRequested() bool {
	return s.closeRequested
}

func (s *surfaceImpl) SetRedrawCallback(callback func()) {
	s.onRedraw = callback
}

func (s *surfaceImpl) SetCloseCallback(callback func()) {
	s.onClose = callback
}

func (s *surfaceImpl) SetKeyBinding(key uint32, handler KeyHandler) {
	if handler == nil {
		delete(s.keyBindings, key)
		return
	}
	s.keyBindings[key] = handler
}

// requestRedraw asks the host to repaint.
func (s *surfaceImpl) requestRedraw() {
	if s.onRedraw != nil {
		s.onRedraw()
	}
}
