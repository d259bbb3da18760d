package sceneedit

import (
	"fmt"

	"github.com/google/uuid"
)

// Registry is the object store the session reads things from. UIDs must
// enumerate in a stable order; selection order follows it.
type Registry interface {
	UIDs() []string
	Thing(uid string) (*Thing, bool)
	Invoke(uid, action string) error
}

// Creator is implemented by registries that can create things on request.
type Creator interface {
	Create(name string) (*Thing, error)
}

// SceneStore persists and loads scenes. The session treats both calls as
// opaque.
type SceneStore interface {
	Save(path string) error
	LoadAssets(path string) error
}

// ActionFunc runs a named action against a thing.
type ActionFunc func(t *Thing) error

// MemoryRegistry is an in-memory Registry that enumerates things in
// insertion order.
type MemoryRegistry struct {
	order   []string
	things  map[string]*Thing
	actions map[string]ActionFunc
	newUID  func() string
}

// NewMemoryRegistry creates an empty registry with the ApplyDefaultHitbox
// action installed. New UIDs are random UUIDs.
func NewMemoryRegistry() *MemoryRegistry {
	r := &MemoryRegistry{
		things:  make(map[string]*Thing),
		actions: make(map[string]ActionFunc),
		newUID:  uuid.NewString,
	}
	r.RegisterAction(ActionApplyDefaultHitbox, applyDefaultHitbox)
	return r
}

func applyDefaultHitbox(t *Thing) error {
	t.SetHitbox(NewRectHitbox(DefaultHitboxSize, DefaultHitboxSize))
	return nil
}

// RegisterAction installs or replaces a named action.
func (r *MemoryRegistry) RegisterAction(name string, fn ActionFunc) {
	r.actions[name] = fn
}

// Add inserts a thing at the end of the enumeration order. A thing with an
// empty UID is assigned a fresh one.
func (r *MemoryRegistry) Add(t *Thing) error {
	if t.UID == "" {
		t.UID = r.newUID()
	}
	if _, ok := r.things[t.UID]; ok {
		return fmt.Errorf("add %q: %w", t.UID, ErrDuplicateUID)
	}
	r.things[t.UID] = t
	r.order = append(r.order, t.UID)
	return nil
}

// Create adds a new thing with a fresh UID and depth 0.
func (r *MemoryRegistry) Create(name string) (*Thing, error) {
	t := NewThing(r.newUID(), name)
	t.SetDepth(0)
	if err := r.Add(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Remove deletes a thing. Reports whether it existed.
func (r *MemoryRegistry) Remove(uid string) bool {
	if _, ok := r.things[uid]; !ok {
		return false
	}
	delete(r.things, uid)
	for i, id := range r.order {
		if id == uid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of things.
func (r *MemoryRegistry) Len() int {
	return len(r.order)
}

// UIDs returns a copy of the UIDs in insertion order.
func (r *MemoryRegistry) UIDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Thing looks up a thing by UID.
func (r *MemoryRegistry) Thing(uid string) (*Thing, bool) {
	t, ok := r.things[uid]
	return t, ok
}

// Invoke runs a registered action against a thing.
func (r *MemoryRegistry) Invoke(uid, action string) error {
	t, ok := r.things[uid]
	if !ok {
		return fmt.Errorf("invoke %s on %q: %w", action, uid, ErrUnknownThing)
	}
	fn, ok := r.actions[action]
	if !ok {
		return fmt.Errorf("invoke %s on %q: %w", action, uid, ErrUnknownAction)
	}
	if err := fn(t); err != nil {
		return fmt.Errorf("invoke %s on %q: %w", action, uid, err)
	}
	return nil
}
