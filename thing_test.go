package sceneedit

import (
	"errors"
	"testing"
)

func TestNewThingDefaults(t *testing.T) {
	th := NewThing("a", "crate")
	if th.UID != "a" || th.Name != "crate" {
		t.Errorf("identity = %q/%q", th.UID, th.Name)
	}
	if th.Scale() != (Vec2{1, 1}) {
		t.Errorf("Scale = %v, want (1,1)", th.Scale())
	}
	if th.Tint != ColorWhite {
		t.Errorf("Tint = %v, want white", th.Tint)
	}
	if _, ok := th.Position(); ok {
		t.Error("new thing should have no position")
	}
	if _, ok := th.Depth(); ok {
		t.Error("new thing should have no depth")
	}
	if th.Hitbox() != nil {
		t.Error("new thing should have no hitbox")
	}
}

func TestThingSettersInvalidateHitbox(t *testing.T) {
	tests := []struct {
		name string
		fn   func(*Thing)
	}{
		{"position", func(th *Thing) { th.SetPosition(WorldPoint{1, 2}) }},
		{"rotation", func(th *Thing) { th.SetRotation(45) }},
		{"scale", func(th *Thing) { th.SetScale(Vec2{2, 2}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := NewThing("a", "a")
			th.SetHitbox(NewRectHitbox(10, 10))
			th.RefreshHitbox()
			if th.Hitbox().Dirty() {
				t.Fatal("RefreshHitbox left the hitbox dirty")
			}
			tt.fn(th)
			if !th.Hitbox().Dirty() {
				t.Error("setter did not invalidate the hitbox")
			}
		})
	}
}

func TestThingRefreshHitboxSharedBetweenThings(t *testing.T) {
	shared := NewRectHitbox(10, 10)
	a := NewThing("a", "a")
	a.SetPosition(WorldPoint{0, 0})
	a.SetHitbox(shared)
	b := NewThing("b", "b")
	b.SetPosition(WorldPoint{500, 0})
	b.SetHitbox(shared)

	a.RefreshHitbox()
	if got := shared.World()[0]; got != (WorldPoint{-5, -5}) {
		t.Fatalf("after refreshing a, World[0] = %v, want (-5,-5)", got)
	}
	b.RefreshHitbox()
	if got := shared.World()[0]; got != (WorldPoint{495, -5}) {
		t.Errorf("after refreshing b, World[0] = %v, want (495,-5)", got)
	}
	if !PointInConvexPolygon(WorldPoint{499.5, 0}, b.Hitbox().World()) {
		t.Error("point inside b not hit after refresh")
	}
}

func TestThingRefreshHitboxAfterHandOff(t *testing.T) {
	h := NewRectHitbox(10, 10)
	a := NewThing("a", "a")
	a.SetPosition(WorldPoint{0, 0})
	if err := a.Set(PropHitbox, h); err != nil {
		t.Fatal(err)
	}
	a.RefreshHitbox()

	b := NewThing("b", "b")
	b.SetPosition(WorldPoint{0, 300})
	b.SetRotation(90)
	if err := b.Set(PropHitbox, h); err != nil {
		t.Fatal(err)
	}
	// Another owner refreshing in between must not leave b with a's geometry.
	a.RefreshHitbox()
	b.RefreshHitbox()
	c := b.Hitbox().World().Centroid()
	if !approxEqual(c.X, 0, 1e-9) || !approxEqual(c.Y, 300, 1e-9) {
		t.Errorf("b centroid = %v, want (0,300)", c)
	}
}

func TestHitboxStaleFor(t *testing.T) {
	h := NewRectHitbox(10, 10)
	if !h.StaleFor(WorldPoint{}, 0, Vec2{1, 1}) {
		t.Error("new hitbox should be stale")
	}
	h.Transform(WorldPoint{1, 2}, 30, Vec2{1, 1})
	if h.StaleFor(WorldPoint{1, 2}, 30, Vec2{1, 1}) {
		t.Error("same placement should not be stale")
	}
	tests := []struct {
		name  string
		pos   WorldPoint
		rot   float64
		scale Vec2
	}{
		{"position", WorldPoint{1, 3}, 30, Vec2{1, 1}},
		{"rotation", WorldPoint{1, 2}, 31, Vec2{1, 1}},
		{"scale", WorldPoint{1, 2}, 30, Vec2{2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !h.StaleFor(tt.pos, tt.rot, tt.scale) {
				t.Errorf("StaleFor(%v, %v, %v) = false", tt.pos, tt.rot, tt.scale)
			}
		})
	}
}

func TestThingDepthDoesNotInvalidateHitbox(t *testing.T) {
	th := NewThing("a", "a")
	th.SetHitbox(NewRectHitbox(10, 10))
	th.RefreshHitbox()
	th.SetDepth(3)
	if th.Hitbox().Dirty() {
		t.Error("SetDepth should not touch the hitbox")
	}
	th.ClearDepth()
	if _, ok := th.Depth(); ok {
		t.Error("ClearDepth left a depth")
	}
}

func TestThingRefreshHitbox(t *testing.T) {
	th := NewThing("a", "a")
	if th.RefreshHitbox() {
		t.Error("RefreshHitbox without hitbox = true")
	}
	th.SetHitbox(NewRectHitbox(10, 10))
	th.SetPosition(WorldPoint{50, 50})
	if !th.RefreshHitbox() {
		t.Fatal("RefreshHitbox = false")
	}
	if !PointInConvexPolygon(WorldPoint{52, 48}, th.Hitbox().World()) {
		t.Error("hitbox did not follow the position")
	}

	th.SetPosition(WorldPoint{0, 0})
	th.RefreshHitbox()
	if PointInConvexPolygon(WorldPoint{52, 48}, th.Hitbox().World()) {
		t.Error("hitbox kept the old position")
	}
}

func TestThingGetSet(t *testing.T) {
	th := NewThing("a", "a")
	h := NewRectHitbox(1, 1)

	sets := []struct {
		name  string
		value any
	}{
		{PropPosition, WorldPoint{3, 4}},
		{PropDepth, 7},
		{PropHitbox, h},
		{PropRotation, 90.0},
		{PropScale, Vec2{2, 3}},
		{PropTint, ColorBlue},
		{"Label", "door"},
	}
	for _, s := range sets {
		if err := th.Set(s.name, s.value); err != nil {
			t.Fatalf("Set(%s): %v", s.name, err)
		}
		got, ok := th.Get(s.name)
		if !ok {
			t.Errorf("Get(%s) missing", s.name)
			continue
		}
		if got != s.value {
			t.Errorf("Get(%s) = %v, want %v", s.name, got, s.value)
		}
		if !th.Has(s.name) {
			t.Errorf("Has(%s) = false", s.name)
		}
	}
}

func TestThingSetTypeMismatch(t *testing.T) {
	th := NewThing("a", "a")
	for _, name := range []string{PropPosition, PropDepth, PropHitbox, PropRotation, PropScale, PropTint} {
		err := th.Set(name, "wrong")
		if !errors.Is(err, ErrPropertyType) {
			t.Errorf("Set(%s, string) error = %v, want ErrPropertyType", name, err)
		}
	}
	if th.Has(PropPosition) || th.Has(PropDepth) || th.Has(PropHitbox) {
		t.Error("failed Set should not assign the property")
	}
}

func TestThingHasUnknown(t *testing.T) {
	th := NewThing("a", "a")
	if th.Has("Missing") {
		t.Error("Has(Missing) = true")
	}
	if _, ok := th.Get("Missing"); ok {
		t.Error("Get(Missing) ok = true")
	}
}
