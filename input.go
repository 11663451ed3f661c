package photogesture

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// defaultWheelStep converts one ebiten wheel notch into browser-style deltaY.
const defaultWheelStep = 100.0

// touchPoint is one active touch.
type touchPoint struct {
	id  ebiten.TouchID
	pos Vec2
}

// inputFrame is the polled pointer state for a single frame.
type inputFrame struct {
	mouseDown bool
	mouse     Vec2
	wheelY    float64
	touches   []touchPoint
}

// InputSource polls ebiten each frame and forwards pointer input to a
// Controller. In mouse mode the left button drags and the wheel zooms; in
// touch mode one or two touches drag or pinch. Presses outside the displayed
// image start a backdrop (mask) gesture.
type InputSource struct {
	// WheelStep is the deltaY passed to Controller.Wheel per wheel notch.
	WheelStep float64

	ctrl *Controller
	mode InputMode

	mouseDown bool
	lastMouse Vec2
	touches   []touchPoint // active touches in landing order

	frame       inputFrame
	touchIDs    []ebiten.TouchID
	injectQueue []syntheticPointerEvent
}

// NewInputSource creates an InputSource for c using the controller's
// configured InputMode.
func NewInputSource(c *Controller) *InputSource {
	return &InputSource{
		WheelStep: defaultWheelStep,
		ctrl:      c,
		mode:      c.Config().InputMode,
	}
}

// Update polls input and forwards it. Call once per ebiten Update, before
// Controller.Update. Injected events take precedence over real input.
func (s *InputSource) Update() {
	if s.processInjectedInput() {
		return
	}
	s.readFrame(&s.frame)
	s.apply(&s.frame)
}

// readFrame fills f from ebiten's current input state.
func (s *InputSource) readFrame(f *inputFrame) {
	mx, my := ebiten.CursorPosition()
	f.mouse = Vec2{X: float64(mx), Y: float64(my)}
	f.mouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	_, f.wheelY = ebiten.Wheel()

	f.touches = f.touches[:0]
	if s.mode != InputTouch {
		return
	}
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		f.touches = append(f.touches, touchPoint{id: id, pos: Vec2{X: float64(tx), Y: float64(ty)}})
	}
}

func (s *InputSource) apply(f *inputFrame) {
	// ebiten reports wheel-up as positive; browsers report zoom-in as negative deltaY.
	if f.wheelY != 0 {
		s.ctrl.Wheel(f.mouse.X, f.mouse.Y, -f.wheelY*s.WheelStep)
	}
	if s.mode == InputTouch {
		s.applyTouches(f.touches)
		return
	}
	s.applyMouse(f.mouseDown, f.mouse)
}

// applyMouse runs the press/drag/release state machine for the left button.
func (s *InputSource) applyMouse(down bool, p Vec2) {
	switch {
	case down && !s.mouseDown:
		s.press([]Vec2{p})
	case down && s.mouseDown:
		if p != s.lastMouse {
			s.ctrl.Move(p)
		}
	case !down && s.mouseDown:
		s.ctrl.End(p)
	}
	s.mouseDown = down
	s.lastMouse = p
}

// applyTouches diffs the active touches against the previous frame. Lifting
// any finger ends the gesture at that finger's last position; a finger
// landing during an image gesture re-anchors it for pinching.
func (s *InputSource) applyTouches(cur []touchPoint) {
	ended := false
	for i := 0; i < len(s.touches); {
		t := s.touches[i]
		if _, ok := findTouch(cur, t.id); !ok {
			if !ended {
				s.ctrl.End(t.pos)
				ended = true
			}
			copy(s.touches[i:], s.touches[i+1:])
			s.touches = s.touches[:len(s.touches)-1]
			continue
		}
		i++
	}

	moved := false
	for i := range s.touches {
		if p, ok := findTouch(cur, s.touches[i].id); ok && p != s.touches[i].pos {
			s.touches[i].pos = p
			moved = true
		}
	}

	added := false
	for _, t := range cur {
		if _, ok := findTouch(s.touches, t.id); !ok {
			s.touches = append(s.touches, t)
			added = true
		}
	}

	switch {
	case added && s.ctrl.Touched():
		s.ctrl.Start(s.points()...)
	case added && !s.ctrl.MaskTouched():
		s.press(s.points())
	case moved && len(s.touches) > 0:
		s.ctrl.Move(s.points()...)
	}
}

// press starts an image gesture when the first point is on the image and a
// backdrop gesture otherwise.
func (s *InputSource) press(points []Vec2) {
	if s.ctrl.HitImage(points[0].X, points[0].Y) {
		s.ctrl.Start(points...)
		return
	}
	s.ctrl.MaskStart(points[0])
}

// points returns the positions of the first two active touches.
func (s *InputSource) points() []Vec2 {
	n := len(s.touches)
	if n > 2 {
		n = 2
	}
	pts := make([]Vec2, n)
	for i := 0; i < n; i++ {
		pts[i] = s.touches[i].pos
	}
	return pts
}

func findTouch(touches []touchPoint, id ebiten.TouchID) (Vec2, bool) {
	for _, t := range touches {
		if t.id == id {
			return t.pos, true
		}
	}
	return Vec2{}, false
}
