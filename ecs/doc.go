// Package ecs provides ECS adapters for grove.
//
// The primary adapter is [NewDonburiSink], which bridges grove file
// lifecycle transitions (created, expired, revived, removed) into a
// [Donburi] world as typed events. Subscribe to [LifecycleEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	sim := grove.NewSimulation(settings, grove.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
