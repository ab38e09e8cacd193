package surface

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-gl/engine/gl"
	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
)

func (s *surfaceImpl) CreateTexture(path string) (uint32, error) {
	img, err := s.loader.Load(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create texture: %w", err)
	}

	s.makeCurrent()
	defer s.doneCurrent()
	return s.upload(img), nil
}

func (s *surfaceImpl) CreateTextures(paths []string) ([]uint32, error) {
	images, err := s.loader.LoadAll(paths)
	if err != nil {
		return nil, fmt.Errorf("failed to create textures: %w", err)
	}

	s.makeCurrent()
	defer s.doneCurrent()

	textures := make([]uint32, len(images))
	for i, img := range images {
		textures[i] = s.upload(img)
	}
	return textures, nil
}

func (s *surfaceImpl) UploadTexture(img image.Image) (uint32, error) {
	rgba, err := loader.ToRGBA(img)
	if err != nil {
		return 0, fmt.Errorf("failed to upload texture: %w", err)
	}

	s.makeCurrent()
	defer s.doneCurrent()
	return s.upload(rgba), nil
}

// upload creates a linear-filtered 2D texture from a packed RGBA image. The context must be current.
func (s *surfaceImpl) upload(img *image.RGBA) uint32 {
	var texture uint32
	s.gl.GenTextures(1, &texture)
	s.gl.BindTexture(gl.Texture2D, texture)
	s.gl.TexParameteri(gl.Texture2D, gl.TextureMinFilter, gl.Linear)
	s.gl.TexParameteri(gl.Texture2D, gl.TextureMagFilter, gl.Linear)
	s.gl.PixelStorei(gl.UnpackAlignment, 1)
	s.gl.TexImage2D(
		gl.Texture2D, 0, gl.RGBA,
		int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RGBA, gl.UnsignedByte,
		unsafe.Pointer(&img.Pix[0]),
	)
	return texture
}

func (s *surfaceImpl) makeCurrent() {
	if s.binder != nil {
		s.binder.MakeCurrent()
	}
}

func (s *surfaceImpl) doneCurrent() {
	if s.binder != nil {
		s.binder.DoneCurrent()
	}
}
