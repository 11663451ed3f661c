package photogesture

// syntheticPointerEvent represents a single injected mouse-style event.
// Coordinates are client coordinates, identical to real cursor input.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	wheel   bool // wheel-only event; button state is left alone
	wheelY  float64
}

// InjectPress queues a left-button press at (x, y). The event is consumed by
// the next Update call.
func (s *InputSource) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *InputSource) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a button release at (x, y).
func (s *InputSource) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectWheel queues a wheel turn at (x, y). wheelY uses ebiten's sign
// convention: positive scrolls up and zooms in.
func (s *InputSource) InjectWheel(x, y, wheelY float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		wheel:  true,
		wheelY: wheelY,
	})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two frames.
func (s *InputSource) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (s *InputSource) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of injected events not yet consumed.
func (s *InputSource) Pending() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one injected event and feeds it through the mouse
// state machine. Returns true if an event was consumed, in which case real
// input is skipped for this frame.
func (s *InputSource) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if evt.wheel {
		s.ctrl.Wheel(evt.x, evt.y, -evt.wheelY*s.WheelStep)
		return true
	}
	s.applyMouse(evt.pressed, Vec2{X: evt.x, Y: evt.y})
	return true
}
