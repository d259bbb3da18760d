// Package ecs provides ECS adapters for sceneedit.
package ecs

import (
	"github.com/phanxgames/sceneedit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SelectionEventType is the Donburi event type for sceneedit selection events.
// Subscribe to this in your ECS systems to react to click, box, create and
// move changes.
var SelectionEventType = events.NewEventType[sceneedit.SelectionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Selection events are published to SelectionEventType and can be
// consumed with Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) sceneedit.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event sceneedit.SelectionEvent) {
	SelectionEventType.Publish(s.world, event)
}
