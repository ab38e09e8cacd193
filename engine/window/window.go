package window

import (
	"fmt"
	"time"
)

// Window provides platform windowing, an OpenGL context and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called after each batch of processed events.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetRefreshCallback sets the function called when the window contents need repainting,
	// for example after being uncovered.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetRefreshCallback(callback func())

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving the vertical scroll delta (positive = away from the user)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press and key repeat events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseDownCallback sets the callback for mouse button presses.
	//
	// Parameters:
	//   - callback: function receiving the button and the cursor x, y position
	SetMouseDownCallback(callback func(button uint32, x, y float32))

	// SetMouseUpCallback sets the callback for mouse button releases.
	//
	// Parameters:
	//   - callback: function receiving the button and the cursor x, y position
	SetMouseUpCallback(callback func(button uint32, x, y float32))

	// SetDoubleClickCallback sets the callback for double clicks. It fires on the second
	// press, after the mouse down callback.
	//
	// Parameters:
	//   - callback: function receiving the button and the cursor x, y position
	SetDoubleClickCallback(callback func(button uint32, x, y float32))

	// SetMouseMoveCallback sets the callback for mouse movement.
	//
	// Parameters:
	//   - callback: function receiving the cursor x, y position
	SetMouseMoveCallback(callback func(x, y float32))

	// MakeCurrent makes the window's OpenGL context current on the calling thread.
	// Each call must be paired with a DoneCurrent.
	MakeCurrent()

	// DoneCurrent releases the context made current by the matching MakeCurrent.
	// A context that was already current before that call is left current.
	DoneCurrent()

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// RequestClose asks the message loop to stop. The window stays valid until Close.
	RequestClose()

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed, waiting for events rather than polling.
	// Calls the update callback after each batch of events.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height are the current framebuffer size in pixels.
	width  int
	height int

	// swapInterval is the number of screen updates to wait before swapping buffers.
	swapInterval int

	// clicks synthesizes double clicks from button presses.
	clicks clickTracker

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate      func()
	onResize      func(width, height int)
	onRefresh     func()
	onScroll      func(delta float32)
	onKeyDown     func(keyCode uint32)
	onKeyUp       func(keyCode uint32)
	onMouseDown   func(button uint32, x, y float32)
	onMouseUp     func(button uint32, x, y float32)
	onDoubleClick func(button uint32, x, y float32)
	onMouseMove   func(x, y float32)
}

var _ Window = &engineWindow{}

// defaultWindow returns an engineWindow holding the default configuration.
func defaultWindow() *engineWindow {
	return &engineWindow{
		title:        "oxy-gl",
		maxWidth:     3840,
		maxHeight:    2160,
		minWidth:     200,
		minHeight:    150,
		width:        640,
		height:       480,
		swapInterval: 1,
		clicks: clickTracker{
			interval: 400 * time.Millisecond,
			distance: 4,
		},
	}
}

// NewWindow creates a new Window with an OpenGL 2.1 context and the specified options.
// Applies default values first, then each option in order. Must be called from the main thread.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window, its context current on the calling thread
//   - error: error if GLFW or the window cannot be initialized
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := defaultWindow()
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetRefreshCallback(callback func()) {
	w.onRefresh = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseDownCallback(callback func(button uint32, x, y float32)) {
	w.onMouseDown = callback
}

func (w *engineWindow) SetMouseUpCallback(callback func(button uint32, x, y float32)) {
	w.onMouseUp = callback
}

func (w *engineWindow) SetDoubleClickCallback(callback func(button uint32, x, y float32)) {
	w.onDoubleClick = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y float32)) {
	w.onMouseMove = callback
}

func (w *engineWindow) MakeCurrent() {
	platformMakeCurrent(w)
}

func (w *engineWindow) DoneCurrent() {
	platformDoneCurrent(w)
}

func (w *engineWindow) SwapBuffers() {
	platformSwapBuffers(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// mouseDown dispatches a button press and, when it completes a double click, the double click.
func (w *engineWindow) mouseDown(button uint32, x, y float32, at time.Time) {
	if w.onMouseDown != nil {
		w.onMouseDown(button, x, y)
	}
	if w.clicks.press(button, x, y, at) && w.onDoubleClick != nil {
		w.onDoubleClick(button, x, y)
	}
}

// resize records the framebuffer size and forwards it.
func (w *engineWindow) resize(width, height int) {
	w.width = width
	w.height = height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}
