package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/photogesture"

	"github.com/yohamta/donburi"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []photogesture.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e photogesture.GestureEvent) {
		received = append(received, e)
	})

	store.EmitEvent(photogesture.GestureEvent{
		Type:    photogesture.EventReachBottom,
		ClientX: 100,
		ClientY: 200,
		Reach:   photogesture.ReachY,
	})
	store.EmitEvent(photogesture.GestureEvent{
		Type:      photogesture.EventDoubleTap,
		Transform: photogesture.Transform{Scale: 2},
	})

	// Publish only queues; deliver now.
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != photogesture.EventReachBottom || e0.Reach != photogesture.ReachY {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.ClientX != 100 || e0.ClientY != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.ClientX, e0.ClientY)
	}
	e1 := received[1]
	if e1.Type != photogesture.EventDoubleTap || e1.Transform.Scale != 2 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEventStore(t *testing.T) {
	world := donburi.NewWorld()
	var store photogesture.EventStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_ControllerGesture(t *testing.T) {
	world := donburi.NewWorld()
	clk := photogesture.NewManualClock(time.Unix(0, 0))
	ctrl := photogesture.NewController(photogesture.DefaultConfig(), clk)
	ctrl.SetGeometry(photogesture.FitGeometry(400, 300, photogesture.Rect{Width: 400, Height: 600}))
	ctrl.OnReachBottomMove = func(x, y float64) {}
	ctrl.SetEventStore(NewDonburiStore(world))

	var types []photogesture.EventType
	GestureEventType.Subscribe(world, func(w donburi.World, e photogesture.GestureEvent) {
		types = append(types, e.Type)
	})

	ctrl.Start(photogesture.Vec2{X: 200, Y: 300})
	clk.Advance(16 * time.Millisecond)
	ctrl.Move(photogesture.Vec2{X: 200, Y: 250})
	clk.Advance(16 * time.Millisecond)
	ctrl.End(photogesture.Vec2{X: 200, Y: 250})

	GestureEventType.ProcessEvents(world)

	want := []photogesture.EventType{photogesture.EventReachBottom, photogesture.EventReachUp}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiStore_TapOrder(t *testing.T) {
	world := donburi.NewWorld()
	clk := photogesture.NewManualClock(time.Unix(0, 0))
	ctrl := photogesture.NewController(photogesture.DefaultConfig(), clk)
	ctrl.SetGeometry(photogesture.FitGeometry(400, 300, photogesture.Rect{Width: 400, Height: 600}))
	ctrl.SetEventStore(NewDonburiStore(world))

	var got []photogesture.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e photogesture.GestureEvent) {
		got = append(got, e)
	})
	tap := func(x, y float64) {
		ctrl.Start(photogesture.Vec2{X: x, Y: y})
		ctrl.End(photogesture.Vec2{X: x, Y: y})
	}
	assertTypes := func(t *testing.T, want ...photogesture.EventType) {
		t.Helper()
		GestureEventType.ProcessEvents(world)
		if len(got) != len(want) {
			t.Fatalf("events = %v, want %v", got, want)
		}
		for i := range want {
			if got[i].Type != want[i] {
				t.Errorf("event %d = %v, want %v", i, got[i].Type, want[i])
			}
		}
	}

	t.Run("double tap", func(t *testing.T) {
		got = nil
		tap(200, 300)
		clk.Advance(100 * time.Millisecond)
		tap(200, 300)
		assertTypes(t, photogesture.EventReachUp, photogesture.EventReachUp, photogesture.EventDoubleTap)
		if s := got[2].Transform.Scale; s <= 1 {
			t.Errorf("EventDoubleTap scale = %v, want the zoomed scale", s)
		}
	})

	t.Run("single tap waits for Update", func(t *testing.T) {
		clk.Advance(time.Second)
		ctrl.Update()
		got = nil
		tap(100, 320)
		ctrl.Update()
		assertTypes(t, photogesture.EventReachUp)

		clk.Advance(400 * time.Millisecond)
		ctrl.Update()
		assertTypes(t, photogesture.EventReachUp, photogesture.EventPhotoTap)
		if got[1].ClientX != 100 || got[1].ClientY != 320 {
			t.Errorf("EventPhotoTap at (%v,%v), want (100,320)", got[1].ClientX, got[1].ClientY)
		}
	})

	t.Run("resize after reset", func(t *testing.T) {
		got = nil
		ctrl.Resize(photogesture.FitGeometry(400, 300, photogesture.Rect{Width: 600, Height: 600}))
		assertTypes(t, photogesture.EventResize)
		if got[0].Transform != (photogesture.Transform{Scale: 1}) {
			t.Errorf("EventResize transform = %+v, want identity", got[0].Transform)
		}
	})
}
