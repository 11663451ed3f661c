package photogesture

// EventStore is the interface for optional event fan-out (for example into an
// ECS world). When set on a Controller, every callback-worthy occurrence is
// also forwarded here.
type EventStore interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent carries one gesture occurrence for an EventStore.
type GestureEvent struct {
	Type EventType
	// ClientX and ClientY are the pointer position the event refers to.
	// Zero for EventResize.
	ClientX float64
	ClientY float64
	// Transform is the controller's transform after the event was applied.
	Transform Transform
	// Reach is the reach state at the time of the event.
	Reach ReachState
}

// SetEventStore attaches an EventStore. Pass nil to detach.
func (c *Controller) SetEventStore(store EventStore) {
	c.store = store
}

func (c *Controller) emit(t EventType, x, y float64) {
	if c.store == nil {
		return
	}
	c.store.EmitEvent(GestureEvent{
		Type:      t,
		ClientX:   x,
		ClientY:   y,
		Transform: c.Transform(),
		Reach:     c.reach.axis(),
	})
}
