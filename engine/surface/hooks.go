package surface

import "github.com/Carmen-Shannon/oxy-gl/engine/gl"

// SetupHook runs once at the end of NewSurface with the constructed surface.
type SetupHook func(s Surface)

// InitializeHook runs once from Initialize, before the first frame, with a current GL context.
type InitializeHook func(openGL gl.OpenGL) error

// DrawHook draws the scene each frame. The model-view matrix already holds the camera transform.
type DrawHook func(openGL gl.OpenGL)

// QuitHook runs when the quit key is pressed, before the close request is raised.
// Its error is logged, never propagated.
type QuitHook func() error

// KeyHandler handles a key that has no built-in binding.
type KeyHandler func(key uint32)

// ContextBinder makes the surface's GL context current on the calling thread and releases it.
// Hosts whose context is always current may leave it unset.
type ContextBinder interface {
	MakeCurrent()
	DoneCurrent()
}

// The capability interfaces below let an embedder pass a single application value
// to WithApp instead of individual hook functions. Any subset may be implemented.

// Initializer is implemented by applications that set up GL state before the first frame.
type Initializer interface {
	Initialize(openGL gl.OpenGL) error
}

// Drawer is implemented by applications that draw each frame.
type Drawer interface {
	Draw(openGL gl.OpenGL)
}

// Quitter is implemented by applications that clean up when the quit key is pressed.
type Quitter interface {
	Quit() error
}

// KeyMapper is implemented by applications that bind extra keys.
type KeyMapper interface {
	KeyBindings() map[uint32]KeyHandler
}
