package sceneedit

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultZoom is the zoom scale restored by Reset.
	DefaultZoom = 1.0
	// MinZoom and MaxZoom bound the zoom scale reachable through SetZoom.
	MinZoom = 0.1
	MaxZoom = 10.0

	// Slider domain accepted by SetZoom and SetRotation.
	inputMin = 0.0
	inputMax = 100.0
)

// scrollAnim holds active scroll-to tweens for the camera center.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// viewKey is the set of inputs the cached view matrix was built from.
type viewKey struct {
	center   WorldPoint
	zoom     float64
	rotation float64
	viewport Rect
}

// Camera controls the view into the scene: center, zoom, rotation, and viewport.
type Camera struct {
	// Center is the world position shown at the middle of the viewport.
	Center WorldPoint
	// Zoom is screen pixels per world unit (>1 zooms in, <1 zooms out).
	Zoom float64
	// Rotation is the view rotation in degrees (clockwise), in [0, 360).
	Rotation float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	built         viewKey
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a Camera with default values and the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     DefaultZoom,
		Viewport: viewport,
		dirty:    true,
	}
}

// SetViewport resizes the viewport, typically from the host's Layout call.
func (c *Camera) SetViewport(viewport Rect) {
	c.Viewport = viewport
	c.dirty = true
}

// Pan moves the camera center by delta world units. Cancels any active scroll.
func (c *Camera) Pan(delta Vec2) {
	c.scrollTween = nil
	c.Center = c.Center.Add(delta)
	c.dirty = true
}

// SetZoom maps a slider value in [0, 100] linearly onto [MinZoom, MaxZoom].
// Out-of-range values are clamped.
func (c *Camera) SetZoom(value float64) {
	value = clamp(value, inputMin, inputMax)
	c.Zoom = mapRange(value, inputMin, inputMax, MinZoom, MaxZoom)
	c.dirty = true
}

// ZoomInput returns the slider value that produces the current zoom.
func (c *Camera) ZoomInput() float64 {
	return clamp(mapRange(c.Zoom, MinZoom, MaxZoom, inputMin, inputMax), inputMin, inputMax)
}

// SetRotation maps a slider value in [0, 100] linearly onto [0°, 360°).
// Out-of-range values are clamped; 100 wraps to 0°.
func (c *Camera) SetRotation(value float64) {
	value = clamp(value, inputMin, inputMax)
	c.Rotation = normalizeDegrees(mapRange(value, inputMin, inputMax, 0, 360))
	c.dirty = true
}

// RotationInput returns the slider value that produces the current rotation.
func (c *Camera) RotationInput() float64 {
	return mapRange(normalizeDegrees(c.Rotation), 0, 360, inputMin, inputMax)
}

// Reset centers the camera on the world origin with no rotation and the
// default zoom. Cancels any active scroll.
func (c *Camera) Reset() {
	c.scrollTween = nil
	c.Center = WorldPoint{}
	c.Rotation = 0
	c.Zoom = DefaultZoom
	c.dirty = true
}

// ScrollTo animates the camera center to the given world position over
// duration seconds. Pan and Reset cancel the animation.
func (c *Camera) ScrollTo(center WorldPoint, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.Center.X), float32(center.X), duration, easeFn),
		tweenY: gween.New(float32(c.Center.Y), float32(center.Y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// update advances the scroll animation. Called from Session.Update.
func (c *Camera) update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.Center.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.Center.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
	c.dirty = true
}

// computeViewMatrix recomputes the cached view matrix if any input changed.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	key := viewKey{c.Center, c.Zoom, c.Rotation, c.Viewport}
	if !c.dirty && key == c.built {
		return c.viewMatrix
	}
	c.dirty = false
	c.built = key

	cx, cy := c.Viewport.Center()
	z := c.Zoom
	if z <= 0 {
		z = DefaultZoom
	}

	m := translateAffine(-c.Center.X, -c.Center.Y)
	m = multiplyAffine(rotateAffine(-c.Rotation), m)
	m = multiplyAffine(scaleAffine(z, z), m)
	m = multiplyAffine(translateAffine(cx, cy), m)

	c.viewMatrix = m
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts a world position to viewport pixels. This is the
// projection the renderer uses.
func (c *Camera) WorldToScreen(p WorldPoint) ScreenPoint {
	c.computeViewMatrix()
	x, y := transformPoint(c.viewMatrix, p.X, p.Y)
	return ScreenPoint{x, y}
}

// ScreenToWorld converts viewport pixels to a world position. It is the exact
// inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(p ScreenPoint) WorldPoint {
	c.computeViewMatrix()
	x, y := transformPoint(c.invViewMatrix, p.X, p.Y)
	return WorldPoint{x, y}
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's visible
// area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	// Transform the four viewport corners to world space.
	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
