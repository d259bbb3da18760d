package sceneedit

import "fmt"

// CursorReadout is the cursor position shown in the editor status line.
type CursorReadout struct {
	World WorldPoint
	Grid  GridPoint
}

// String renders the readout as two lines with coordinates truncated to
// integers.
func (r CursorReadout) String() string {
	return fmt.Sprintf("Cursor [%d %d]\nGrid [%d %d]",
		int(r.World.X), int(r.World.Y), int(r.Grid.X), int(r.Grid.Y))
}

// CursorReadout returns the world cursor and the center of the grid cell
// under it. Reports false while the cursor is off the canvas.
func (s *Session) CursorReadout() (CursorReadout, bool) {
	if !s.hovering {
		return CursorReadout{}, false
	}
	w := s.CursorWorld()
	return CursorReadout{
		World: w,
		Grid:  SnapToGrid(w, s.settings.GridSpacing),
	}, true
}

// Overlay is the world-space geometry drawn on top of the scene.
type Overlay struct {
	// Selected holds the hitbox of each selected thing, in selection order.
	Selected []Polygon
	// DragQuad is the live drag-box region, nil when no gesture is active.
	DragQuad Polygon
}

// Overlay returns the selection outlines and, while a drag-box gesture is
// in progress, the drag quad.
func (s *Session) Overlay() Overlay {
	var o Overlay
	for _, uid := range s.selection.uids {
		t, ok := s.registry.Thing(uid)
		if !ok || !t.RefreshHitbox() {
			continue
		}
		o.Selected = append(o.Selected, append(Polygon(nil), t.Hitbox().World()...))
	}
	if s.dragSelecting && s.prevHeld[MouseButtonLeft] &&
		Distance(s.selectStart.Vec(), s.cursor.Vec()) > s.settings.DragThreshold {
		o.DragQuad = s.DragQuad()
	}
	return o
}
