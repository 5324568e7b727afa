// Package ecs bridges thicket physics events into an ECS world.
//
// The primary adapter is [NewDonburiSink], which forwards collision and
// pointer hits from a scene's physics into a [Donburi] world as typed events.
// Subscribe to [PhysicsEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
