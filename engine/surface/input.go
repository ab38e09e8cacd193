package surface

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

func (s *surfaceImpl) MousePress(button uint32, x, y float32) {
	s.dragging = true
	s.anchor = [2]float32{x, y}
}

func (s *surfaceImpl) MouseRelease(button uint32, x, y float32) {
	s.dragging = false
}

func (s *surfaceImpl) MouseMove(x, y float32) {
	if !s.dragging {
		return
	}
	dx, dy := x-s.anchor[0], y-s.anchor[1]
	s.anchor = [2]float32{x, y}

	s.controller.Pan(dx, dy)
	s.requestRedraw()
}

func (s *surfaceImpl) MouseDoubleClick(button uint32, x, y float32) {
	if button != common.MouseButtonLeft {
		return
	}
	s.Reset()
	s.requestRedraw()
}

func (s *surfaceImpl) Scroll(delta float32) {
	if s.controller.Zoom(delta) {
		s.requestRedraw()
	}
}

func (s *surfaceImpl) KeyPress(key uint32) {
	if key == s.quitKey {
		s.quit()
		return
	}

	handled := s.config.MovementKeys && s.controller.HandleKey(key)
	if !handled {
		if handler, ok := s.keyBindings[key]; ok {
			handler(key)
		}
	}
	s.requestRedraw()
}

// quit runs the quit hook and raises the close request. A failing hook is logged
// and never prevents the close request.
func (s *surfaceImpl) quit() {
	if err := s.runQuitHook(); err != nil {
		common.Logger().Error("quit hook failed", "error", err)
	}
	s.closeRequested = true
	if s.onClose != nil {
		s.onClose()
	}
}

func (s *surfaceImpl) runQuitHook() (err error) {
	if s.onQuit == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("quit hook panicked: %v", r)
		}
	}()
	return s.onQuit()
}
