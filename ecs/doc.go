// Package ecs provides ECS adapters for photogesture's event stream.
//
// The primary adapter is [NewDonburiStore], which bridges gesture events
// (reach moves, reach up, taps, double taps, resets) into a [Donburi] world
// as typed events. Subscribe to [GestureEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	ctrl.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
