package sceneedit

// DefaultHitboxSize is the side length of the square hitbox installed by the
// ApplyDefaultHitbox action.
const DefaultHitboxSize = 100.0

// Polygon is a closed vertex loop in world space. The last vertex connects
// back to the first; repeating the first vertex at the end is harmless.
type Polygon []WorldPoint

// Line is a single polygon edge.
type Line struct {
	A, B WorldPoint
}

// Lines returns the polygon's edges in order, including the closing edge.
func (p Polygon) Lines() []Line {
	n := len(p)
	if n < 2 {
		return nil
	}
	lines := make([]Line, n)
	for i := range p {
		lines[i] = Line{p[i], p[(i+1)%n]}
	}
	return lines
}

// Centroid returns the vertex average. Zero for an empty polygon.
func (p Polygon) Centroid() WorldPoint {
	if len(p) == 0 {
		return WorldPoint{}
	}
	var sx, sy float64
	for _, v := range p {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(p))
	return WorldPoint{sx / n, sy / n}
}

// PointInConvexPolygon reports whether pt lies inside or on the boundary of a
// convex polygon in either winding order, using a cross-product sign test.
// Polygons with fewer than 3 vertices contain nothing.
func PointInConvexPolygon(pt WorldPoint, poly Polygon) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1, y1 := poly[i].X, poly[i].Y
		j := (i + 1) % n
		x2, y2 := poly[j].X, poly[j].Y

		cross := (x2-x1)*(pt.Y-y1) - (y2-y1)*(pt.X-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// ConvexContainsConvex reports whether every vertex of inner lies inside
// outer. Partial overlap is not containment. A degenerate inner polygon is
// never contained.
func ConvexContainsConvex(outer, inner Polygon) bool {
	if len(outer) < 3 || len(inner) < 3 {
		return false
	}
	for _, v := range inner {
		if !PointInConvexPolygon(v, outer) {
			return false
		}
	}
	return true
}

// Hitbox is a polygonal boundary in a thing's local space plus a cached
// world-space copy. The cache is dirty until Transform runs and becomes dirty
// again whenever the owning thing moves, rotates or scales. The cache also
// remembers the placement it was built for, so a hitbox shared between
// things is rebuilt for whichever owner refreshes it.
type Hitbox struct {
	local []Vec2
	world Polygon
	dirty bool
	built placement
}

// placement is the owner transform a world-space copy was computed from.
type placement struct {
	pos      WorldPoint
	rotation float64
	scale    Vec2
}

// NewHitbox creates a hitbox from a local-space vertex loop.
func NewHitbox(points ...Vec2) *Hitbox {
	h := &Hitbox{}
	h.SetLocal(points)
	return h
}

// NewRectHitbox creates a w×h rectangle centered on the local origin, wound
// top-left, top-right, bottom-right, bottom-left.
func NewRectHitbox(w, h float64) *Hitbox {
	hw, hh := w/2, h/2
	return NewHitbox(
		Vec2{-hw, -hh},
		Vec2{hw, -hh},
		Vec2{hw, hh},
		Vec2{-hw, hh},
	)
}

// Local returns a copy of the local-space vertices.
func (h *Hitbox) Local() []Vec2 {
	out := make([]Vec2, len(h.local))
	copy(out, h.local)
	return out
}

// SetLocal replaces the local-space vertices and marks the hitbox dirty.
func (h *Hitbox) SetLocal(points []Vec2) {
	h.local = append(h.local[:0], points...)
	h.dirty = true
}

// MarkDirty flags the world-space copy as stale.
func (h *Hitbox) MarkDirty() {
	h.dirty = true
}

// Dirty reports whether the world-space copy is stale.
func (h *Hitbox) Dirty() bool {
	return h.dirty
}

// StaleFor reports whether the world-space copy must be rebuilt for an owner
// at the given position, rotation (degrees) and scale.
func (h *Hitbox) StaleFor(pos WorldPoint, rotationDegrees float64, scale Vec2) bool {
	return h.dirty || h.built != placement{pos, rotationDegrees, scale}
}

// Transform recomputes the world-space copy from the owner's position,
// rotation (degrees) and scale, and clears the dirty flag.
func (h *Hitbox) Transform(pos WorldPoint, rotationDegrees float64, scale Vec2) {
	m := localToWorld(pos, rotationDegrees, scale)
	if cap(h.world) < len(h.local) {
		h.world = make(Polygon, len(h.local))
	}
	h.world = h.world[:len(h.local)]
	for i, v := range h.local {
		x, y := transformPoint(m, v.X, v.Y)
		h.world[i] = WorldPoint{x, y}
	}
	h.built = placement{pos, rotationDegrees, scale}
	h.dirty = false
}

// World returns the world-space polygon as of the last Transform. The slice
// is owned by the hitbox and is overwritten by the next Transform.
func (h *Hitbox) World() Polygon {
	return h.world
}

// Lines returns the world-space edges.
func (h *Hitbox) Lines() []Line {
	return h.world.Lines()
}
