package ecs

import (
	"github.com/phanxgames/photogesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for photogesture events.
//
// Subscribers see every event a Controller emits, in emission order, once
// ProcessEvents runs:
//
//   - EventReachLeft, EventReachRight, EventReachTop or EventReachBottom on
//     each single-point move while a direction is locked.
//   - EventReachUp on every release, before any tap event of that release.
//     Its Transform is the slide-to-rest target.
//   - EventMaskTap right after EventReachUp for a backdrop tap.
//   - EventDoubleTap right after the second EventReachUp, carrying the
//     zoomed Transform.
//   - EventPhotoTap only once the double-tap window has passed, from
//     Controller.Update, or from the next tap's release when that one is too
//     late or too far to pair with it.
//   - EventResize after Reset has returned to the identity transform.
var GestureEventType = events.NewEventType[photogesture.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events are
// queued on GestureEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) photogesture.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event photogesture.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
