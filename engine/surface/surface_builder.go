package surface

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
)

// SurfaceBuilderOption is a functional option for configuring a Surface.
type SurfaceBuilderOption func(s *surfaceImpl)

// WithRenderConfig replaces the whole render configuration.
//
// Parameters:
//   - config: the configuration to use
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithRenderConfig(config RenderConfig) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.config = config
	}
}

// WithBackgroundColor sets the clear color.
//
// Parameters:
//   - r, g, b: channel values in [0, 255]
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithBackgroundColor(r, g, b uint8) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.config.BackgroundColor = common.Color{R: r, G: g, B: b}
	}
}

// WithFieldOfView sets the vertical field of view.
//
// Parameters:
//   - degrees: the field of view in degrees
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithFieldOfView(degrees float32) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.config.FieldOfView = degrees
	}
}

// WithClipPlanes sets the near and far clip distances.
//
// Parameters:
//   - near: near clip distance (must be > 0)
//   - far: far clip distance (must be > near)
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithClipPlanes(near, far float32) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.config.Near = near
		s.config.Far = far
	}
}

// WithMovementKeys enables or disables the built-in camera key bindings.
// When disabled those keys are dispatched to the key bindings like any other key.
//
// Parameters:
//   - enabled: true to enable the movement keys
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithMovementKeys(enabled bool) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.config.MovementKeys = enabled
	}
}

// WithDefaultCameraPosition sets the camera's start and reset position.
//
// Parameters:
//   - x, y, z: the default world-space position
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithDefaultCameraPosition(x, y, z float32) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.cameraOptions = append(s.cameraOptions, camera.WithDefaultPosition(x, y, z))
	}
}

// WithDefaultCameraRotation sets the camera's start and reset rotation.
//
// Parameters:
//   - rx, ry, rz: the default rotation in degrees
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithDefaultCameraRotation(rx, ry, rz float32) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.cameraOptions = append(s.cameraOptions, camera.WithDefaultRotation(rx, ry, rz))
	}
}

// WithControllerOptions forwards options to the camera controller (drag divisor, step size).
//
// Parameters:
//   - options: controller options
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithControllerOptions(options ...camera.CameraControllerOption) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.controllerOptions = append(s.controllerOptions, options...)
	}
}

// WithQuitKey replaces the key that runs the quit hook and requests a close. Defaults to escape.
//
// Parameters:
//   - key: the virtual key code
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithQuitKey(key uint32) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.quitKey = key
	}
}

// WithSetupHook sets the hook run at the end of construction.
func WithSetupHook(hook SetupHook) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.onSetup = hook
	}
}

// WithInitializeHook sets the hook run by Initialize.
func WithInitializeHook(hook InitializeHook) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.onInitialize = hook
	}
}

// WithDrawHook sets the per-frame draw hook.
func WithDrawHook(hook DrawHook) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.onDraw = hook
	}
}

// WithQuitHook sets the hook run when the quit key is pressed.
func WithQuitHook(hook QuitHook) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.onQuit = hook
	}
}

// WithResetHook sets a function called after every Reset.
func WithResetHook(hook func()) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.onReset = hook
	}
}

// WithKeyBinding binds handler to key. Movement keys take precedence while enabled.
//
// Parameters:
//   - key: the virtual key code
//   - handler: the handler to run on key press
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithKeyBinding(key uint32, handler KeyHandler) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		if handler != nil {
			s.keyBindings[key] = handler
		}
	}
}

// WithApp wires every capability app implements (Initializer, Drawer, Quitter, KeyMapper)
// as the corresponding hook.
//
// Parameters:
//   - app: the embedding application
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithApp(app any) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		if i, ok := app.(Initializer); ok {
			s.onInitialize = i.Initialize
		}
		if d, ok := app.(Drawer); ok {
			s.onDraw = d.Draw
		}
		if q, ok := app.(Quitter); ok {
			s.onQuit = q.Quit
		}
		if k, ok := app.(KeyMapper); ok {
			for key, handler := range k.KeyBindings() {
				if handler != nil {
					s.keyBindings[key] = handler
				}
			}
		}
	}
}

// WithContextBinder sets the binder used to bracket texture uploads.
//
// Parameters:
//   - binder: typically the host window
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithContextBinder(binder ContextBinder) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.binder = binder
	}
}

// WithLoader sets the image loader used by CreateTexture and CreateTextures.
//
// Parameters:
//   - l: the loader to use
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithLoader(l loader.Loader) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.loader = l
	}
}
