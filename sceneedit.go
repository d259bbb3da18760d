package sceneedit

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the default tint.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlue is the tint given to things created from the canvas.
	ColorBlue = Color{0, 0, 1, 1}
)

// toRGBA converts to an 8-bit straight-alpha color.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// Vec2 is an untagged 2D vector used for offsets, sizes, directions and
// local-space geometry.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// ScreenPoint is a position in viewport pixels. The origin is the top-left of
// the viewport and Y grows downward.
type ScreenPoint struct {
	X, Y float64
}

// Vec returns the untagged coordinates.
func (p ScreenPoint) Vec() Vec2 { return Vec2{p.X, p.Y} }

// WorldPoint is a position in world units.
type WorldPoint struct {
	X, Y float64
}

// Vec returns the untagged coordinates.
func (p WorldPoint) Vec() Vec2 { return Vec2{p.X, p.Y} }

// Add offsets the point by v.
func (p WorldPoint) Add(v Vec2) WorldPoint { return WorldPoint{p.X + v.X, p.Y + v.Y} }

// Sub returns the offset from o to p.
func (p WorldPoint) Sub(o WorldPoint) Vec2 { return Vec2{p.X - o.X, p.Y - o.Y} }

// RotateTranslate moves the point by distance along angleDegrees.
func (p WorldPoint) RotateTranslate(angleDegrees, distance float64) WorldPoint {
	v := RotateTranslate(p.Vec(), angleDegrees, distance)
	return WorldPoint{v.X, v.Y}
}

// GridPoint is the world-space center of a grid cell. Values are produced by
// [SnapToGrid]; a GridPoint never names a cell corner.
type GridPoint struct {
	X, Y float64
}

// World returns the cell center as a world position.
func (g GridPoint) World() WorldPoint { return WorldPoint{g.X, g.Y} }

// Cell returns the column and row of the cell for the given cell size.
func (g GridPoint) Cell(cellSize float64) (col, row int) {
	if cellSize <= 0 {
		return 0, 0
	}
	return int(math.Floor(g.X / cellSize)), int(math.Floor(g.Y / cellSize))
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary button: click and drag-box selection
	MouseButtonRight                     // secondary button: marks the create position
	MouseButtonMiddle                    // middle button: pan or move selection

	mouseButtonCount = 3
)

// String returns the lowercase button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}
