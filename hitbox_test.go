package sceneedit

import "testing"

func square(x0, y0, x1, y1 float64) Polygon {
	return Polygon{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func TestPointInConvexPolygon(t *testing.T) {
	sq := square(0, 0, 10, 10)
	tests := []struct {
		name string
		pt   WorldPoint
		poly Polygon
		want bool
	}{
		{"inside", WorldPoint{5, 5}, sq, true},
		{"outside", WorldPoint{15, 5}, sq, false},
		{"on edge", WorldPoint{10, 5}, sq, true},
		{"on vertex", WorldPoint{0, 0}, sq, true},
		{"reverse winding", WorldPoint{5, 5}, Polygon{{0, 0}, {0, 10}, {10, 10}, {10, 0}}, true},
		{"triangle inside", WorldPoint{2, 1}, Polygon{{0, 0}, {10, 0}, {0, 10}}, true},
		{"triangle outside", WorldPoint{8, 8}, Polygon{{0, 0}, {10, 0}, {0, 10}}, false},
		{"degenerate", WorldPoint{0, 0}, Polygon{{0, 0}, {1, 1}}, false},
		{"empty", WorldPoint{0, 0}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInConvexPolygon(tt.pt, tt.poly); got != tt.want {
				t.Errorf("PointInConvexPolygon(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestConvexContainsConvex(t *testing.T) {
	outer := square(0, 0, 100, 100)
	tests := []struct {
		name  string
		inner Polygon
		want  bool
	}{
		{"inside", square(10, 10, 20, 20), true},
		{"identical", square(0, 0, 100, 100), true},
		{"partial", square(90, 90, 110, 110), false},
		{"outside", square(200, 200, 210, 210), false},
		{"surrounds", square(-10, -10, 110, 110), false},
		{"degenerate", Polygon{{10, 10}, {20, 20}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvexContainsConvex(outer, tt.inner); got != tt.want {
				t.Errorf("ConvexContainsConvex = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonLines(t *testing.T) {
	lines := square(0, 0, 1, 1).Lines()
	if len(lines) != 4 {
		t.Fatalf("len(Lines) = %d, want 4", len(lines))
	}
	last := lines[3]
	if last.A != (WorldPoint{0, 1}) || last.B != (WorldPoint{0, 0}) {
		t.Errorf("closing edge = %+v", last)
	}
	if (Polygon{{1, 1}}).Lines() != nil {
		t.Error("single vertex should have no lines")
	}
}

func TestPolygonCentroid(t *testing.T) {
	c := square(0, 0, 10, 20).Centroid()
	if c != (WorldPoint{5, 10}) {
		t.Errorf("Centroid = %v, want (5,10)", c)
	}
	if (Polygon{}).Centroid() != (WorldPoint{}) {
		t.Error("empty centroid should be zero")
	}
}

func TestNewRectHitbox(t *testing.T) {
	h := NewRectHitbox(100, 50)
	want := []Vec2{{-50, -25}, {50, -25}, {50, 25}, {-50, 25}}
	got := h.Local()
	if len(got) != len(want) {
		t.Fatalf("len(Local) = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Local[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if !h.Dirty() {
		t.Error("new hitbox should be dirty")
	}
}

func TestHitboxTransform(t *testing.T) {
	h := NewRectHitbox(10, 10)
	h.Transform(WorldPoint{100, 200}, 0, Vec2{1, 1})
	if h.Dirty() {
		t.Error("Transform should clear dirty")
	}
	w := h.World()
	if w[0] != (WorldPoint{95, 195}) || w[2] != (WorldPoint{105, 205}) {
		t.Errorf("World = %v", w)
	}

	h.MarkDirty()
	h.Transform(WorldPoint{}, 90, Vec2{2, 1})
	w = h.World()
	// Local (5,-5) scaled to (10,-5) then rotated 90° clockwise.
	if !approxEqual(w[1].X, 5, 1e-9) || !approxEqual(w[1].Y, 10, 1e-9) {
		t.Errorf("rotated vertex = %v, want (5,10)", w[1])
	}
	if len(h.Lines()) != 4 {
		t.Errorf("len(Lines) = %d, want 4", len(h.Lines()))
	}
}

func TestHitboxLocalIsCopy(t *testing.T) {
	h := NewRectHitbox(10, 10)
	pts := h.Local()
	pts[0] = Vec2{999, 999}
	if h.Local()[0] == (Vec2{999, 999}) {
		t.Error("Local should return a copy")
	}
}

func TestHitboxSetLocalMarksDirty(t *testing.T) {
	h := NewRectHitbox(10, 10)
	h.Transform(WorldPoint{}, 0, Vec2{1, 1})
	h.SetLocal([]Vec2{{0, 0}, {1, 0}, {0, 1}})
	if !h.Dirty() {
		t.Error("SetLocal should mark dirty")
	}
}
