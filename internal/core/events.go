package core

// EventKind classifies a side-effect notification emitted by a tick.
type EventKind int

const (
	// EventBoundaryBump fires when a move is stopped at a world edge.
	EventBoundaryBump EventKind = iota
	// EventWallBump fires when a move is rejected by a solid cell.
	EventWallBump
	// EventCeilingBump fires when a rising character hits a solid cell.
	EventCeilingBump
	// EventPickup fires when one or more pickups are collected.
	EventPickup
)

// Event is a fire-and-forget notification returned alongside a tick result.
// The simulation never calls out to hardware itself; collaborators such as
// the haptic/audio layer decide how to react.
type Event struct {
	Kind  EventKind
	Count int // Pickups collected for EventPickup, otherwise 0
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// HasBump reports whether any event in the result is a bump.
func (r StepResult) HasBump() bool {
	for _, e := range r.Events {
		if e.Kind == EventBoundaryBump || e.Kind == EventWallBump || e.Kind == EventCeilingBump {
			return true
		}
	}
	return false
}
