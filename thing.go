package sceneedit

import "fmt"

// Property and action names understood by the selection core.
const (
	PropPosition = "Position"
	PropDepth    = "Depth"
	PropHitbox   = "Hitbox"
	PropRotation = "Rotation"
	PropScale    = "Scale"
	PropTint     = "Tint"

	ActionApplyDefaultHitbox = "ApplyDefaultHitbox"
)

// Thing is a placed object. Position, Depth and Hitbox are optional: a thing
// without a hitbox or depth is a decoration and is never hit-tested. Any other
// named data lives in Props.
type Thing struct {
	UID  string
	Name string
	Tint Color
	// Props holds properties the core does not interpret.
	Props map[string]any

	position    WorldPoint
	hasPosition bool
	depth       int
	hasDepth    bool
	rotation    float64
	scale       Vec2
	hitbox      *Hitbox
}

// NewThing creates a thing with unit scale, a white tint and no optional
// properties set.
func NewThing(uid, name string) *Thing {
	return &Thing{
		UID:   uid,
		Name:  name,
		Tint:  ColorWhite,
		scale: Vec2{1, 1},
	}
}

// Position returns the thing's world position and whether it has one.
func (t *Thing) Position() (WorldPoint, bool) {
	return t.position, t.hasPosition
}

// SetPosition moves the thing and invalidates its hitbox.
func (t *Thing) SetPosition(p WorldPoint) {
	t.position = p
	t.hasPosition = true
	t.invalidate()
}

// Depth returns the thing's z-order and whether it has one.
func (t *Thing) Depth() (int, bool) {
	return t.depth, t.hasDepth
}

// SetDepth sets the z-order. Higher values are on top.
func (t *Thing) SetDepth(d int) {
	t.depth = d
	t.hasDepth = true
}

// ClearDepth removes the z-order, excluding the thing from click selection.
func (t *Thing) ClearDepth() {
	t.depth = 0
	t.hasDepth = false
}

// Rotation returns the thing's rotation in degrees.
func (t *Thing) Rotation() float64 {
	return t.rotation
}

// SetRotation rotates the thing and invalidates its hitbox.
func (t *Thing) SetRotation(degrees float64) {
	t.rotation = degrees
	t.invalidate()
}

// Scale returns the thing's scale.
func (t *Thing) Scale() Vec2 {
	return t.scale
}

// SetScale scales the thing and invalidates its hitbox.
func (t *Thing) SetScale(s Vec2) {
	t.scale = s
	t.invalidate()
}

// Hitbox returns the thing's hitbox, or nil.
func (t *Thing) Hitbox() *Hitbox {
	return t.hitbox
}

// SetHitbox replaces the hitbox. A nil hitbox makes the thing unselectable.
func (t *Thing) SetHitbox(h *Hitbox) {
	t.hitbox = h
	t.invalidate()
}

// RefreshHitbox brings the world-space hitbox up to date if it is stale.
// Reports false when the thing has no hitbox. A thing without a position is
// placed at the origin.
func (t *Thing) RefreshHitbox() bool {
	if t.hitbox == nil {
		return false
	}
	if t.hitbox.StaleFor(t.position, t.rotation, t.scale) {
		t.hitbox.Transform(t.position, t.rotation, t.scale)
	}
	return true
}

func (t *Thing) invalidate() {
	if t.hitbox != nil {
		t.hitbox.MarkDirty()
	}
}

// Has reports whether the named property is set.
func (t *Thing) Has(name string) bool {
	switch name {
	case PropPosition:
		return t.hasPosition
	case PropDepth:
		return t.hasDepth
	case PropHitbox:
		return t.hitbox != nil
	case PropRotation, PropScale, PropTint:
		return true
	}
	_, ok := t.Props[name]
	return ok
}

// Get returns the named property. Known properties come back as their typed
// values (WorldPoint, int, *Hitbox, float64, Vec2, Color).
func (t *Thing) Get(name string) (any, bool) {
	switch name {
	case PropPosition:
		return t.position, t.hasPosition
	case PropDepth:
		return t.depth, t.hasDepth
	case PropHitbox:
		return t.hitbox, t.hitbox != nil
	case PropRotation:
		return t.rotation, true
	case PropScale:
		return t.scale, true
	case PropTint:
		return t.Tint, true
	}
	v, ok := t.Props[name]
	return v, ok
}

// Set assigns the named property. Known properties must carry their typed
// value; anything else is stored in Props.
func (t *Thing) Set(name string, value any) error {
	switch name {
	case PropPosition:
		p, ok := value.(WorldPoint)
		if !ok {
			return propertyTypeError(name, value)
		}
		t.SetPosition(p)
	case PropDepth:
		d, ok := value.(int)
		if !ok {
			return propertyTypeError(name, value)
		}
		t.SetDepth(d)
	case PropHitbox:
		h, ok := value.(*Hitbox)
		if !ok {
			return propertyTypeError(name, value)
		}
		t.SetHitbox(h)
	case PropRotation:
		r, ok := value.(float64)
		if !ok {
			return propertyTypeError(name, value)
		}
		t.SetRotation(r)
	case PropScale:
		s, ok := value.(Vec2)
		if !ok {
			return propertyTypeError(name, value)
		}
		t.SetScale(s)
	case PropTint:
		c, ok := value.(Color)
		if !ok {
			return propertyTypeError(name, value)
		}
		t.Tint = c
	default:
		if t.Props == nil {
			t.Props = make(map[string]any)
		}
		t.Props[name] = value
	}
	return nil
}

func propertyTypeError(name string, value any) error {
	return fmt.Errorf("set %s to %T: %w", name, value, ErrPropertyType)
}
