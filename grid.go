package sceneedit

import "math"

// MinGridSpacing is the smallest grid cell size, in world units.
const MinGridSpacing = 8.0

// majorGridEvery marks every line whose coordinate is a multiple of it.
const majorGridEvery = 1000.0

// GridSpacing clamps a user-configured spacing to at least MinGridSpacing.
// Zero, negative and NaN values resolve to the minimum.
func GridSpacing(value float64) float64 {
	if math.IsNaN(value) || value < MinGridSpacing {
		return MinGridSpacing
	}
	return value
}

// SnapToGrid returns the center of the grid cell containing p.
// A non-positive cell size leaves the point where it is.
func SnapToGrid(p WorldPoint, cellSize float64) GridPoint {
	v := snapVec(p.Vec(), cellSize)
	return GridPoint{v.X, v.Y}
}

// snapVec quantizes each axis down to a multiple of cell and re-centers on the
// cell. Shared by world snapping and drag-space snapping.
func snapVec(v Vec2, cell float64) Vec2 {
	if cell <= 0 {
		return v
	}
	half := cell / 2
	return Vec2{
		quantize(v.X, cell) + half,
		quantize(v.Y, cell) + half,
	}
}

// quantize returns the cell boundary at or below v.
func quantize(v, cell float64) float64 {
	return math.Floor(v/cell) * cell
}

// GridLineKind classifies a grid line for coloring.
type GridLineKind uint8

const (
	GridMinor GridLineKind = iota // ordinary cell boundary
	GridMajor                     // coordinate is a multiple of 1000
	GridAxis                      // the X or Y axis itself
)

// GridLine is one world-space grid segment lying on a cell boundary.
type GridLine struct {
	A, B     WorldPoint
	Kind     GridLineKind
	Vertical bool
}

func gridLineKind(coordinate float64) GridLineKind {
	switch {
	case coordinate == 0:
		return GridAxis
	case math.Mod(coordinate, majorGridEvery) == 0:
		return GridMajor
	default:
		return GridMinor
	}
}

// GridLines returns the grid segments around the camera. Lines extend twice
// the visible extent in every direction so rotated views stay covered.
func GridLines(cam *Camera, spacing float64) []GridLine {
	spacing = GridSpacing(spacing)
	bounds := cam.VisibleBounds()
	w, h := bounds.Width, bounds.Height
	cx, cy := cam.Center.X, cam.Center.Y

	cols := int(w*4/spacing) + 1
	rows := int(h*4/spacing) + 1
	lines := make([]GridLine, 0, cols+rows)

	top := quantize(cy-h*2, spacing)
	bot := quantize(cy+h*2, spacing)
	for i := 0; i < cols; i++ {
		x := quantize(cx-w*2+float64(i)*spacing, spacing)
		lines = append(lines, GridLine{
			A:        WorldPoint{x, top},
			B:        WorldPoint{x, bot},
			Kind:     gridLineKind(x),
			Vertical: true,
		})
	}

	left := quantize(cx-w*2, spacing)
	right := quantize(cx+w*2, spacing)
	for i := 0; i < rows; i++ {
		y := quantize(cy-h*2+float64(i)*spacing, spacing)
		lines = append(lines, GridLine{
			A:    WorldPoint{left, y},
			B:    WorldPoint{right, y},
			Kind: gridLineKind(y),
		})
	}
	return lines
}

// GridLineQuad widens a grid line into a quad of the given world-space
// thickness. Corners are returned in drawing order.
func GridLineQuad(l GridLine, thickness float64) [4]WorldPoint {
	half := thickness / 2
	if l.Vertical {
		return [4]WorldPoint{
			l.A.RotateTranslate(180, half),
			l.A.RotateTranslate(0, half),
			l.B.RotateTranslate(0, half),
			l.B.RotateTranslate(180, half),
		}
	}
	return [4]WorldPoint{
		l.A.RotateTranslate(270, half),
		l.A.RotateTranslate(90, half),
		l.B.RotateTranslate(90, half),
		l.B.RotateTranslate(270, half),
	}
}
