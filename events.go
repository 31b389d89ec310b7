package grove

// EventSink is the interface for optional ECS integration.
// When set on a Simulation, file lifecycle transitions are forwarded to it.
type EventSink interface {
	EmitLifecycle(event LifecycleEvent)
}

// LifecycleEventType identifies a file lifecycle transition.
type LifecycleEventType uint8

const (
	EventFileCreated LifecycleEventType = iota // first touch of a new path
	EventFileExpired                           // faded out, joined the registry
	EventFileRevived                           // touched while expiring, left the registry
	EventFileRemoved                           // finalized by the collector
)

func (t LifecycleEventType) String() string {
	switch t {
	case EventFileCreated:
		return "created"
	case EventFileExpired:
		return "expired"
	case EventFileRevived:
		return "revived"
	case EventFileRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// LifecycleEvent carries a file transition for the ECS bridge.
type LifecycleEvent struct {
	Type    LifecycleEventType
	FileID  uint32
	Path    string
	Elapsed float64 // file-local clock at the transition
}
