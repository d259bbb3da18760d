package sceneedit

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if cam.Rotation != 0 {
		t.Errorf("Rotation = %f, want 0", cam.Rotation)
	}
	if cam.Viewport.Width != 800 || cam.Viewport.Height != 600 {
		t.Errorf("Viewport = %v, want 800x600", cam.Viewport)
	}
}

func TestCameraIdentityViewMatrix(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	vm := cam.computeViewMatrix()
	// At (0,0), zoom 1, no rotation the view is a translation to the
	// viewport center.
	sx, sy := transformPoint(vm, 0, 0)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(0,0) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraTranslation(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Center = WorldPoint{100, 50}
	sp := cam.WorldToScreen(WorldPoint{100, 50})
	if !approxEqual(sp.X, 400, epsilon) || !approxEqual(sp.Y, 300, epsilon) {
		t.Errorf("WorldToScreen(100,50) with cam at (100,50) = %v, want (400,300)", sp)
	}
}

func TestCameraZoom(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Zoom = 2.0

	// At zoom 2, a point 1 unit from camera center should appear 2 pixels away.
	s1 := cam.WorldToScreen(WorldPoint{1, 0})
	s0 := cam.WorldToScreen(WorldPoint{0, 0})
	if !approxEqual(s1.X-s0.X, 2.0, epsilon) {
		t.Errorf("screen distance at zoom 2 = %f, want 2.0", s1.X-s0.X)
	}
}

func TestCameraRotation90(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Rotation = 90

	// Rotating the camera clockwise turns the world counter-clockwise on
	// screen: world +X points up.
	sp := cam.WorldToScreen(WorldPoint{10, 0})
	if !approxEqual(sp.X, 400, 1e-9) || !approxEqual(sp.Y, 290, 1e-9) {
		t.Errorf("WorldToScreen(10,0) = %v, want (400,290)", sp)
	}

	// A rightward screen offset maps to world +Y.
	wp := cam.ScreenToWorld(ScreenPoint{410, 300})
	if !approxEqual(wp.X, 0, 1e-9) || !approxEqual(wp.Y, 10, 1e-9) {
		t.Errorf("ScreenToWorld(410,300) = %v, want (0,10)", wp)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(Rect{X: 20, Y: 10, Width: 800, Height: 600})
	cam.Center = WorldPoint{-123.5, 77}
	points := []WorldPoint{{0, 0}, {10, -5}, {-300, 250}, {1e4, 3}}

	for _, zoom := range []float64{0.1, 0.5, 1, 3.7, 10} {
		for rot := 0.0; rot < 360; rot += 15 {
			cam.Zoom = zoom
			cam.Rotation = rot
			for _, p := range points {
				got := cam.ScreenToWorld(cam.WorldToScreen(p))
				if !approxEqual(got.X, p.X, 1e-6) || !approxEqual(got.Y, p.Y, 1e-6) {
					t.Errorf("zoom %v rot %v: round trip %v -> %v", zoom, rot, p, got)
				}
			}
		}
	}
}

func TestCameraMatrixCacheInvalidatesOnFieldChange(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	_ = cam.WorldToScreen(WorldPoint{})
	cam.Center = WorldPoint{50, 0}
	sp := cam.WorldToScreen(WorldPoint{50, 0})
	if !approxEqual(sp.X, 400, epsilon) {
		t.Errorf("stale view matrix: WorldToScreen = %v", sp)
	}
}

func TestCameraPan(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Pan(Vec2{10, -4})
	cam.Pan(Vec2{5, 4})
	if cam.Center != (WorldPoint{15, 0}) {
		t.Errorf("Center = %v, want (15,0)", cam.Center)
	}
}

func TestCameraSetZoom(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, MinZoom},
		{100, MaxZoom},
		{50, 5.05},
		{-20, MinZoom},
		{250, MaxZoom},
	}
	cam := NewCamera(Rect{Width: 800, Height: 600})
	for _, tt := range tests {
		cam.SetZoom(tt.in)
		if !approxEqual(cam.Zoom, tt.want, 1e-9) {
			t.Errorf("SetZoom(%v): Zoom = %v, want %v", tt.in, cam.Zoom, tt.want)
		}
	}

	cam.SetZoom(30)
	if !approxEqual(cam.ZoomInput(), 30, 1e-9) {
		t.Errorf("ZoomInput = %v, want 30", cam.ZoomInput())
	}
}

func TestCameraSetRotation(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{25, 90},
		{50, 180},
		{75, 270},
		{100, 0},
		{-10, 0},
	}
	cam := NewCamera(Rect{Width: 800, Height: 600})
	for _, tt := range tests {
		cam.SetRotation(tt.in)
		if !approxEqual(cam.Rotation, tt.want, 1e-9) {
			t.Errorf("SetRotation(%v): Rotation = %v, want %v", tt.in, cam.Rotation, tt.want)
		}
		if cam.Rotation < 0 || cam.Rotation >= 360 {
			t.Errorf("SetRotation(%v): Rotation %v out of [0, 360)", tt.in, cam.Rotation)
		}
	}

	cam.SetRotation(40)
	if !approxEqual(cam.RotationInput(), 40, 1e-9) {
		t.Errorf("RotationInput = %v, want 40", cam.RotationInput())
	}
}

func TestCameraReset(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Center = WorldPoint{300, -20}
	cam.SetZoom(80)
	cam.SetRotation(33)
	cam.ScrollTo(WorldPoint{1, 1}, 1, nil)

	cam.Reset()
	if cam.Center != (WorldPoint{}) || cam.Rotation != 0 || cam.Zoom != DefaultZoom {
		t.Errorf("after Reset: center %v rotation %v zoom %v", cam.Center, cam.Rotation, cam.Zoom)
	}
	if cam.Scrolling() {
		t.Error("Reset should cancel scrolling")
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.ScrollTo(WorldPoint{100, 50}, 1.0, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("Scrolling = false after ScrollTo")
	}

	cam.update(0.5)
	if !approxEqual(cam.Center.X, 50, 1e-3) || !approxEqual(cam.Center.Y, 25, 1e-3) {
		t.Errorf("halfway Center = %v, want (50,25)", cam.Center)
	}

	cam.update(0.5)
	if cam.Center != (WorldPoint{100, 50}) {
		t.Errorf("final Center = %v, want (100,50)", cam.Center)
	}
	if cam.Scrolling() {
		t.Error("Scrolling = true after tween finished")
	}
}

func TestCameraPanCancelsScroll(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.ScrollTo(WorldPoint{100, 50}, 1.0, nil)
	cam.Pan(Vec2{1, 0})
	if cam.Scrolling() {
		t.Error("Pan should cancel scrolling")
	}
}

func TestCameraVisibleBounds(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	b := cam.VisibleBounds()
	if !approxEqual(b.X, -400, 1e-9) || !approxEqual(b.Y, -300, 1e-9) ||
		!approxEqual(b.Width, 800, 1e-9) || !approxEqual(b.Height, 600, 1e-9) {
		t.Errorf("VisibleBounds = %+v", b)
	}

	cam.Zoom = 2
	b = cam.VisibleBounds()
	if !approxEqual(b.Width, 400, 1e-9) || !approxEqual(b.Height, 300, 1e-9) {
		t.Errorf("VisibleBounds at zoom 2 = %+v", b)
	}

	cam.Zoom = 1
	cam.Rotation = 90
	b = cam.VisibleBounds()
	if !approxEqual(b.Width, 600, 1e-9) || !approxEqual(b.Height, 800, 1e-9) {
		t.Errorf("VisibleBounds at 90° = %+v", b)
	}
}
