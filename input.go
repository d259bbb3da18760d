package sceneedit

import "github.com/hajimehoshi/ebiten/v2"

// EbitenInput polls the mouse through ebiten. The cursor is reported in
// window pixels and Hovering is true while it lies inside the camera viewport.
type EbitenInput struct {
	cam *Camera
}

// NewEbitenInput creates an input source whose hover test uses cam's
// viewport.
func NewEbitenInput(cam *Camera) *EbitenInput {
	return &EbitenInput{cam: cam}
}

// Poll samples the cursor and button state for this frame.
func (e *EbitenInput) Poll() InputState {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	var in InputState
	in.Cursor = ScreenPoint{sx, sy}
	if e.cam != nil {
		in.Hovering = e.cam.Viewport.Contains(sx, sy)
	}
	in.Held[MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Held[MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	in.Held[MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	return in
}
