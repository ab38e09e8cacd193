package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/surface"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
)

var (
	// ErrNoWindow is returned by Run when the engine has no window.
	ErrNoWindow = errors.New("engine has no window")

	// ErrNoSurface is returned by Run when the engine has no surface.
	ErrNoSurface = errors.New("engine has no surface")
)

// engine implements the Engine interface.
// Binds a window's events to a surface and repaints only when the surface asks for it.
type engine struct {
	window  window.Window
	surface surface.Surface

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderCallback func(deltaTime float32)
	lastRender     time.Time

	// dirty is set by redraw requests and cleared when a frame is rendered.
	dirty bool

	quitOnce sync.Once
}

// Engine is the main entry point for the engine.
// It connects a window to a surface and drives the event-driven redraw loop.
// All methods must be called from the thread that owns the window.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Surface returns the surface the engine renders.
	//
	// Returns:
	//   - surface.Surface: the surface instance
	Surface() surface.Surface

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderCallback registers the function called after each rendered frame.
	//
	// Parameters:
	//   - callback: function to call after each frame, receiving the time since the previous frame in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// RequestRedraw marks the surface for repainting on the next loop iteration.
	RequestRedraw()

	// Run initializes the surface, renders the first frame and runs the window message loop.
	// Blocks until the window closes.
	//
	// Returns:
	//   - error: ErrNoWindow or ErrNoSurface if either is missing, or the surface initialization error
	Run() error

	// Quit asks the window to close, which ends Run.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (window, surface, profiling)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Surface() surface.Surface {
	return e.surface
}

func (e *engine) Run() error {
	if e.window == nil {
		return ErrNoWindow
	}
	if e.surface == nil {
		return ErrNoSurface
	}

	e.bind()

	e.window.MakeCurrent()
	defer e.window.DoneCurrent()
	if err := e.surface.Initialize(); err != nil {
		return fmt.Errorf("failed to run engine: %w", err)
	}
	e.surface.Resize(e.window.Width(), e.window.Height())

	e.lastRender = time.Now()
	e.RequestRedraw()
	e.update()

	e.window.ProcessMessages()
	common.Logger().Debug("engine stopped")
	return nil
}

// Quit asks the window to close.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

func (e *engine) RequestRedraw() {
	e.dirty = true
}

// bind routes window events to the surface and surface requests back to the engine.
func (e *engine) bind() {
	w, s := e.window, e.surface

	w.SetResizeCallback(func(width, height int) {
		s.Resize(width, height)
		e.RequestRedraw()
	})
	w.SetRefreshCallback(e.RequestRedraw)
	w.SetScrollCallback(s.Scroll)
	w.SetKeyDownCallback(s.KeyPress)
	w.SetMouseDownCallback(s.MousePress)
	w.SetMouseUpCallback(s.MouseRelease)
	w.SetDoubleClickCallback(s.MouseDoubleClick)
	w.SetMouseMoveCallback(s.MouseMove)
	w.SetUpdateCallback(e.update)

	s.SetRedrawCallback(e.RequestRedraw)
	s.SetCloseCallback(e.Quit)
}

// update renders and presents a frame if one was requested since the last frame.
func (e *engine) update() {
	if !e.dirty || !e.window.IsRunning() {
		return
	}
	e.dirty = false

	now := time.Now()
	dt := float32(now.Sub(e.lastRender).Seconds())
	e.lastRender = now

	e.surface.Render()
	e.window.SwapBuffers()

	if e.renderCallback != nil {
		e.renderCallback(dt)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetRenderCallback registers the function called after each rendered frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}
