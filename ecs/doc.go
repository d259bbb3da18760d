// Package ecs provides ECS adapters for sceneedit's selection events.
//
// The primary adapter is [NewDonburiStore], which bridges selection changes
// (click select, box select, create, move) into a [Donburi] world as typed
// events. Subscribe to [SelectionEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	session.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
