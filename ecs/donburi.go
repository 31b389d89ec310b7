package ecs

import (
	"github.com/phanxgames/grove"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for grove lifecycle events.
var LifecycleEventType = events.NewEventType[grove.LifecycleEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Lifecycle events are published to LifecycleEventType and can be
// consumed with Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) grove.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitLifecycle(event grove.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}
