package engine

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/gl"
	"github.com/Carmen-Shannon/oxy-gl/engine/gl/gltest"
	"github.com/Carmen-Shannon/oxy-gl/engine/surface"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
)

// fakeWindow replays a fixed list of events from ProcessMessages, calling the update
// callback after each one, until the list runs out or a close is requested.
type fakeWindow struct {
	width, height int
	events        []func(w *fakeWindow)

	running      bool
	swaps        int
	closeCalls   int
	currentCalls int
	doneCalls    int

	onUpdate      func()
	onResize      func(width, height int)
	onRefresh     func()
	onScroll      func(delta float32)
	onKeyDown     func(keyCode uint32)
	onMouseDown   func(button uint32, x, y float32)
	onMouseUp     func(button uint32, x, y float32)
	onDoubleClick func(button uint32, x, y float32)
	onMouseMove   func(x, y float32)
}

var _ window.Window = &fakeWindow{}

func newFakeWindow(events ...func(w *fakeWindow)) *fakeWindow {
	return &fakeWindow{width: 640, height: 480, running: true, events: events}
}

func (w *fakeWindow) SetUpdateCallback(callback func())                  { w.onUpdate = callback }
func (w *fakeWindow) SetResizeCallback(callback func(width, height int)) { w.onResize = callback }
func (w *fakeWindow) SetRefreshCallback(callback func())                 { w.onRefresh = callback }
func (w *fakeWindow) SetScrollCallback(callback func(delta float32))     { w.onScroll = callback }
func (w *fakeWindow) SetKeyDownCallback(callback func(keyCode uint32))   { w.onKeyDown = callback }
func (w *fakeWindow) SetKeyUpCallback(callback func(keyCode uint32))     {}
func (w *fakeWindow) SetMouseDownCallback(callback func(button uint32, x, y float32)) {
	w.onMouseDown = callback
}
func (w *fakeWindow) SetMouseUpCallback(callback func(button uint32, x, y float32)) {
	w.onMouseUp = callback
}
func (w *fakeWindow) SetDoubleClickCallback(callback func(button uint32, x, y float32)) {
	w.onDoubleClick = callback
}
func (w *fakeWindow) SetMouseMoveCallback(callback func(x, y float32)) { w.onMouseMove = callback }
func (w *fakeWindow) MakeCurrent()                                     { w.currentCalls++ }
func (w *fakeWindow) DoneCurrent()                                     { w.doneCalls++ }
func (w *fakeWindow) SwapBuffers()                                     { w.swaps++ }
func (w *fakeWindow) RequestClose()                                    { w.closeCalls++; w.running = false }
func (w *fakeWindow) IsRunning() bool                                  { return w.running }
func (w *fakeWindow) Close() error                                     { w.running = false; return nil }
func (w *fakeWindow) Width() int                                       { return w.width }
func (w *fakeWindow) Height() int                                      { return w.height }

func (w *fakeWindow) ProcessMessages() {
	for _, event := range w.events {
		if !w.running {
			return
		}
		event(w)
		if w.onUpdate != nil {
			w.onUpdate()
		}
	}
}

func newTestEngine(t *testing.T, w *fakeWindow, options ...surface.SurfaceBuilderOption) (Engine, *gltest.Recorder) {
	t.Helper()
	rec := gltest.NewRecorder()
	s, err := surface.NewSurface(rec, options...)
	if err != nil {
		t.Fatal(err)
	}
	return NewEngine(WithWindow(w), WithSurface(s)), rec
}

func TestRunRequiresWindowAndSurface(t *testing.T) {
	if err := NewEngine().Run(); !errors.Is(err, ErrNoWindow) {
		t.Errorf("Run() without window error = %v, want ErrNoWindow", err)
	}
	if err := NewEngine(WithWindow(newFakeWindow())).Run(); !errors.Is(err, ErrNoSurface) {
		t.Errorf("Run() without surface error = %v, want ErrNoSurface", err)
	}
}

func TestRunInitializesAndRendersFirstFrame(t *testing.T) {
	w := newFakeWindow()
	initialized := 0
	e, _ := newTestEngine(t, w, surface.WithInitializeHook(func(gl.OpenGL) error {
		initialized++
		return nil
	}))

	if err := e.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if initialized != 1 || w.currentCalls != 1 || w.doneCalls != 1 {
		t.Errorf("initialized, MakeCurrent, DoneCurrent = %d, %d, %d, want 1, 1, 1", initialized, w.currentCalls, w.doneCalls)
	}
	if width, height := e.Surface().Size(); width != 640 || height != 480 {
		t.Errorf("surface size = %d x %d, want 640 x 480", width, height)
	}
	if w.swaps != 1 {
		t.Errorf("swaps = %d, want 1", w.swaps)
	}
}

func TestRunInitializeError(t *testing.T) {
	sentinel := errors.New("bad context")
	w := newFakeWindow()
	e, _ := newTestEngine(t, w, surface.WithInitializeHook(func(gl.OpenGL) error { return sentinel }))
	if err := e.Run(); !errors.Is(err, sentinel) {
		t.Errorf("Run() error = %v, want wrapped %v", err, sentinel)
	}
	if w.swaps != 0 {
		t.Errorf("swaps = %d, want 0", w.swaps)
	}
}

func TestRendersOnlyWhenDirty(t *testing.T) {
	w := newFakeWindow(
		func(w *fakeWindow) {},
		func(w *fakeWindow) { w.onKeyDown(common.KeyLeft) },
		func(w *fakeWindow) { w.onMouseMove(10, 10) },
		func(w *fakeWindow) { w.onScroll(0) },
		func(w *fakeWindow) { w.onScroll(1) },
		func(w *fakeWindow) { w.onRefresh() },
		func(w *fakeWindow) { w.onResize(800, 600) },
	)
	e, _ := newTestEngine(t, w)
	frames := 0
	e.SetRenderCallback(func(float32) { frames++ })

	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	// First frame, key, scroll, refresh and resize.
	if w.swaps != 5 || frames != 5 {
		t.Errorf("swaps, frames = %d, %d, want 5, 5", w.swaps, frames)
	}

	x, _, z := e.Surface().CameraPosition()
	if x != 1 || z != -1 {
		t.Errorf("camera x, z = %v, %v, want 1, -1", x, z)
	}
}

func TestInputRouting(t *testing.T) {
	w := newFakeWindow(
		func(w *fakeWindow) { w.onMouseDown(common.MouseButtonLeft, 0, 0) },
		func(w *fakeWindow) { w.onMouseMove(100, 50) },
		func(w *fakeWindow) { w.onMouseUp(common.MouseButtonLeft, 100, 50) },
		func(w *fakeWindow) { w.onMouseMove(500, 500) },
	)
	e, _ := newTestEngine(t, w)
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	if x, y, _ := e.Surface().CameraPosition(); x != 2 || y != 11 {
		t.Errorf("camera x, y = %v, %v, want 2, 11", x, y)
	}

	resets := 0
	w = newFakeWindow(
		func(w *fakeWindow) { w.onKeyDown(common.KeyUp) },
		func(w *fakeWindow) { w.onDoubleClick(common.MouseButtonLeft, 0, 0) },
	)
	e, _ = newTestEngine(t, w, surface.WithResetHook(func() { resets++ }))
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	if _, y, _ := e.Surface().CameraPosition(); y != 10 || resets != 1 {
		t.Errorf("y, resets = %v, %d, want 10, 1", y, resets)
	}
}

func TestQuitKeyClosesWindow(t *testing.T) {
	afterQuit := 0
	w := newFakeWindow(
		func(w *fakeWindow) { w.onKeyDown(common.KeyEsc) },
		func(w *fakeWindow) { afterQuit++ },
	)
	quits := 0
	e, _ := newTestEngine(t, w, surface.WithQuitHook(func() error { quits++; return nil }))

	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	if quits != 1 || w.closeCalls != 1 || afterQuit != 0 {
		t.Errorf("quits, closes, later events = %d, %d, %d, want 1, 1, 0", quits, w.closeCalls, afterQuit)
	}
	// Only the first frame; the quit key does not redraw.
	if w.swaps != 1 {
		t.Errorf("swaps = %d, want 1", w.swaps)
	}

	e.Quit()
	e.Quit()
	if w.closeCalls != 1 {
		t.Errorf("closes after repeated Quit = %d, want 1", w.closeCalls)
	}
}

func TestProfilerToggle(t *testing.T) {
	e := NewEngine(WithProfiling(true)).(*engine)
	if !e.profilingEnabled {
		t.Error("profiling disabled after WithProfiling(true)")
	}
	e.DisableProfiler()
	if e.profilingEnabled {
		t.Error("profiling enabled after DisableProfiler")
	}
	e.EnableProfiler()
	if !e.profilingEnabled {
		t.Error("profiling disabled after EnableProfiler")
	}
}
