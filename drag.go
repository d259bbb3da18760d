package sceneedit

// DragFrame is the per-frame context a drag delta is computed in.
type DragFrame struct {
	// Cursor is the raw cursor position in viewport pixels.
	Cursor ScreenPoint
	// Zoom converts pixels to world units (pixels per unit).
	Zoom float64
	// Rotation is the camera rotation in degrees.
	Rotation float64
	// CellSize is the grid spacing used when snapping.
	CellSize float64
}

// form returns the cursor in form space: viewport pixels scaled to world
// units, before the camera's rotation and translation.
func (f DragFrame) form() Vec2 {
	z := f.Zoom
	if z <= 0 {
		z = DefaultZoom
	}
	return Vec2{f.Cursor.X / z, f.Cursor.Y / z}
}

// DragTracker keeps the previous frame's cursor sample, raw and grid
// snapped, and turns the movement since then into a displacement.
type DragTracker struct {
	prevRaw  Vec2
	prevGrid Vec2
}

// Sample records the current cursor as the baseline for the next frame.
// Call it every frame, dragging or not, so a drag starts from an accurate
// baseline on the frame the button goes down.
func (d *DragTracker) Sample(f DragFrame) {
	d.prevRaw = f.form()
	d.prevGrid = snapVec(d.prevRaw, f.CellSize)
}

// Baseline returns the previous raw and grid-snapped samples in form space.
func (d *DragTracker) Baseline() (raw, grid Vec2) {
	return d.prevRaw, d.prevGrid
}

// Delta returns anchor displaced by the cursor movement since the last
// Sample, rotated into camera space. With snap, both samples are quantized to
// grid cell centers first, so the anchor moves in whole cells. With reverse,
// the displacement is negated (panning moves the view opposite the drag).
// No movement returns anchor unchanged.
func (d *DragTracker) Delta(anchor Vec2, reverse, snap bool, f DragFrame) Vec2 {
	prev := d.prevRaw
	pos := f.form()
	if snap {
		prev = d.prevGrid
		pos = snapVec(pos, f.CellSize)
	}

	dist := Distance(prev, pos)
	if dist == 0 {
		return anchor
	}
	ang := Angle(prev, pos)
	if reverse {
		dist = -dist
	}
	return RotateTranslate(anchor, f.Rotation+ang, dist)
}
