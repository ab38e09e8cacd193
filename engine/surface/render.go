package surface

import "github.com/Carmen-Shannon/oxy-gl/engine/gl"

func (s *surfaceImpl) Render() {
	s.gl.Clear(gl.ColorBufferBit | gl.DepthBufferBit)

	s.beginTextureScope()
	defer s.endTextureScope()

	s.applyCamera()
	if s.onDraw != nil {
		s.onDraw(s.gl)
	}
}

// beginTextureScope enables 2D texturing and alpha blending with nearest filtering,
// clears to the background color and sets the viewport to the surface size.
func (s *surfaceImpl) beginTextureScope() {
	s.gl.Enable(gl.Texture2D)

	r, g, b := s.config.BackgroundColor.Normalized()
	s.gl.ClearColor(r, g, b, 0.0)

	s.gl.Enable(gl.Blend)
	s.gl.BlendFunc(gl.SrcAlpha, gl.OneMinusSrcAlpha)
	s.gl.TexParameteri(gl.Texture2D, gl.TextureMagFilter, gl.Nearest)
	s.gl.TexParameteri(gl.Texture2D, gl.TextureMinFilter, gl.Nearest)
	s.gl.Clear(gl.ColorBufferBit)
	s.gl.Viewport(0, 0, int32(s.width), int32(s.height))
}

// endTextureScope reverts the state changed by beginTextureScope that the host relies on.
func (s *surfaceImpl) endTextureScope() {
	s.gl.Disable(gl.Texture2D)
}

// applyCamera loads the camera transform into the model-view matrix: a look-at from the
// camera position one unit along +Z, then rotateX, -rotateY and rotateZ in that order.
func (s *surfaceImpl) applyCamera() {
	s.gl.MatrixMode(gl.ModelView)
	s.gl.LoadIdentity()

	lookAt := s.camera.LookAtMatrix()
	s.gl.MultMatrixf(&lookAt[0])

	rx, ry, rz := s.camera.Rotation()
	s.gl.Rotatef(rx, 1, 0, 0)
	s.gl.Rotatef(-ry, 0, 1, 0)
	s.gl.Rotatef(rz, 0, 0, 1)
}
