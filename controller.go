package photogesture

import (
	"io"
	"math"
	"time"
)

// unitScaleEpsilon is how close to 1 a scale must be for a double tap to
// zoom in rather than reset.
const unitScaleEpsilon = 1e-6

// Controller turns a stream of pointer events into a translation and scale
// for one displayed image. It owns the viewport state exclusively; the host
// forwards raw events, reads Transform to render, and receives callbacks.
//
// All methods run synchronously on the caller's goroutine and the controller
// is not safe for concurrent use. Nothing happens between calls: a pending
// single tap is only delivered from Update, which the host calls once per
// frame.
type Controller struct {
	// OnPhotoTap fires for a confirmed single tap on the image, once the
	// double-tap window has passed.
	OnPhotoTap func(clientX, clientY float64)
	// OnMaskTap fires immediately for a tap on the backdrop.
	OnMaskTap func(clientX, clientY float64)
	// OnDoubleTap fires after a double tap has toggled the zoom.
	OnDoubleTap func(clientX, clientY float64)

	// OnReachLeftMove and friends fire on every move while the image is being
	// dragged past that edge. A nil handler disables that direction.
	OnReachLeftMove   func(clientX, clientY float64)
	OnReachRightMove  func(clientX, clientY float64)
	OnReachTopMove    func(clientX, clientY float64)
	OnReachBottomMove func(clientX, clientY float64)
	// OnReachUp fires once when any gesture is released.
	OnReachUp func(clientX, clientY float64)

	// OnResize fires after Reset has cleared the state.
	OnResize func()

	cfg   Config
	clock Clock
	geom  ImageGeometry

	x, y        float64
	scale       float64
	touched     bool
	maskTouched bool
	reach       reachDirection

	tracker gestureTracker
	taps    tapClassifier

	store    EventStore
	debug    bool
	debugOut io.Writer
	disposed bool
}

// NewController creates a controller at the identity transform. A cfg from
// DefaultConfig or LoadConfig is used as is; zero fields of a Config literal
// take their defaults. A nil clock uses the wall clock. Use LoadConfig or
// Config.Validate to reject bad tuning before calling this.
func NewController(cfg Config, clock Clock) *Controller {
	cfg = cfg.withDefaults()
	if clock == nil {
		clock = SystemClock{}
	}
	c := &Controller{cfg: cfg, clock: clock}
	c.resetState()
	return c
}

func (c *Controller) resetState() {
	c.x, c.y, c.scale = identity.X, identity.Y, identity.Scale
	c.touched = false
	c.maskTouched = false
	c.reach = reachNone
	c.tracker = newGestureTracker(c.cfg.MoveThrottle, c.cfg.TapMoveTolerance)
	c.taps = newTapClassifier(c.cfg.DoubleTapWindow, c.cfg.DoubleTapTolerance)
}

// Config returns the effective configuration.
func (c *Controller) Config() Config { return c.cfg }

// Transform returns the current target transform.
func (c *Controller) Transform() Transform {
	return Transform{X: c.x, Y: c.y, Scale: c.scale}
}

// Touched reports whether the image itself is the target of an active
// gesture. Hosts use it to disable eased transitions while the user drags.
func (c *Controller) Touched() bool { return c.touched }

// MaskTouched reports whether the backdrop is being dragged.
func (c *Controller) MaskTouched() bool { return c.maskTouched }

// ReachState returns the reach state of the active gesture.
func (c *Controller) ReachState() ReachState { return c.reach.axis() }

// IsDisposed reports whether Dispose has been called.
func (c *Controller) IsDisposed() bool { return c.disposed }

// Geometry returns the last geometry passed to SetGeometry.
func (c *Controller) Geometry() ImageGeometry { return c.geom }

// SetGeometry updates the measured image and viewport sizes. It does not
// reset state; call Resize when the layout itself changed.
func (c *Controller) SetGeometry(g ImageGeometry) {
	c.geom = g
}

// ImageBounds returns the client-space rectangle the scaled image covers.
// Empty until geometry is known.
func (c *Controller) ImageBounds() Rect {
	if !c.geom.Valid() {
		return Rect{}
	}
	center := c.geom.Viewport.Center()
	w := c.geom.RenderedWidth * c.scale
	h := c.geom.RenderedHeight * c.scale
	return Rect{
		X:      center.X + c.x - w/2,
		Y:      center.Y + c.y - h/2,
		Width:  w,
		Height: h,
	}
}

// HitImage reports whether a client point lies on the displayed image.
func (c *Controller) HitImage(clientX, clientY float64) bool {
	return c.ImageBounds().Contains(clientX, clientY)
}

// Start begins a gesture on the image with one or two pointers. Extra points
// are ignored. Starting again while a gesture is active (a second finger
// landing) re-anchors the gesture.
func (c *Controller) Start(points ...Vec2) {
	if c.disposed || len(points) == 0 {
		return
	}
	if len(points) > 2 {
		points = points[:2]
	}
	c.tracker.begin(points, Vec2{X: c.x, Y: c.y}, c.clock.Now())
	c.touched = true
	c.debugLog("start %v (%d points)", points[0], len(points))
}

// MaskStart begins a drag on the backdrop. The image does not pan, but reach
// handlers and OnMaskTap still fire.
func (c *Controller) MaskStart(p Vec2) {
	if c.disposed {
		return
	}
	c.tracker.begin([]Vec2{p}, Vec2{X: c.x, Y: c.y}, c.clock.Now())
	c.maskTouched = true
	c.debugLog("mask start %v", p)
}

// Move feeds the current pointer positions. One point pans; two points pinch
// around the first point. Moves arriving within MoveThrottle of the last
// processed move are dropped.
func (c *Controller) Move(points ...Vec2) {
	if c.disposed || len(points) == 0 || !(c.touched || c.maskTouched) || !c.geom.Valid() {
		return
	}
	if !c.tracker.accept(c.clock.Now()) {
		return
	}
	if len(points) > 2 {
		points = points[:2]
	}

	s := c.tracker.sample(points, Vec2{X: c.x, Y: c.y})
	if !s.pinch {
		prev := c.reach
		c.reach = nextReach(c.reach, reachInput{
			x:          s.pan.X,
			y:          s.pan.Y,
			horizontal: EdgeClosedHorizontal(s.pan.X, c.scale, c.geom.RenderedWidth, c.geom.Viewport.Width),
			vertical:   EdgeClosedVertical(s.pan.Y, c.scale, c.geom.RenderedHeight, c.geom.Viewport.Height),
			minOffset:  c.cfg.MinReachOffset,
		}, c.reachHandlers())
		if c.reach != prev {
			c.debugLog("reach %s at %v", c.reach, s.pointer)
		}
		c.fireReach(s.pointer)
	}

	// A horizontal reach or a backdrop drag holds the image in place.
	if c.reach.axis() == ReachX || c.maskTouched {
		return
	}

	toScale := c.scale
	if s.pinch {
		lo, hi := ScaleBounds(c.cfg, c.geom)
		toScale = clamp(c.scale*s.ratio, lo-c.cfg.ScaleBuffer, hi)
	}
	t := RepositionOnTransform(RepositionParams{
		X:         s.pan.X,
		Y:         s.pan.Y,
		AnchorX:   s.pointer.X,
		AnchorY:   s.pointer.Y,
		Origin:    c.geom.Viewport.Center(),
		FromScale: c.scale,
		ToScale:   toScale,
	})
	c.x, c.y, c.scale = t.X, t.Y, t.Scale
	c.debugCheckScale("move")
}

// End releases the gesture at p. A drag slides to rest; a press that did not
// move is classified as a tap. Touch flags and reach state are always
// cleared.
func (c *Controller) End(p Vec2) {
	if c.disposed || !(c.touched || c.maskTouched) {
		return
	}
	now := c.clock.Now()
	moved, elapsed := c.tracker.finish(p, now)
	wasTouched, wasMask := c.touched, c.maskTouched
	c.touched = false
	c.maskTouched = false
	c.reach = reachNone

	if !c.geom.Valid() {
		c.debugLog("end %v without geometry", p)
		return
	}

	lo, hi := ScaleBounds(c.cfg, c.geom)
	c.scale = clamp(c.scale, lo, hi)
	if moved {
		rest := SlideToPosition(SlideParams{
			X:            c.x,
			Y:            c.y,
			OriginX:      c.tracker.origin.X,
			OriginY:      c.tracker.origin.Y,
			Elapsed:      elapsed,
			Scale:        c.scale,
			Geometry:     c.geom,
			Deceleration: c.cfg.SlideDeceleration,
			MaxDistance:  c.cfg.MaxSlideDistance,
			MinElapsed:   c.cfg.MinSlideElapsed,
		})
		c.x, c.y = rest.X, rest.Y
	}
	c.debugLog("end %v moved=%t after %v -> %+v", p, moved, elapsed, c.Transform())

	if c.OnReachUp != nil {
		c.OnReachUp(p.X, p.Y)
	}
	c.emit(EventReachUp, p.X, p.Y)

	if moved {
		return
	}
	switch {
	case wasTouched:
		c.classifyTap(p, now)
	case wasMask:
		c.debugLog("mask tap %v", p)
		if c.OnMaskTap != nil {
			c.OnMaskTap(p.X, p.Y)
		}
		c.emit(EventMaskTap, p.X, p.Y)
	}
}

// Wheel zooms by deltaY around the cursor. Positive deltaY zooms out, as
// with a browser wheel event.
func (c *Controller) Wheel(clientX, clientY, deltaY float64) {
	if c.disposed || !c.geom.Valid() || deltaY == 0 {
		return
	}
	lo, hi := ScaleBounds(c.cfg, c.geom)
	c.zoomTo(Vec2{X: clientX, Y: clientY}, clamp(c.scale-deltaY*c.cfg.WheelZoomFactor, lo, hi))
	c.debugCheckScale("wheel")
}

// Update delivers a single tap whose double-tap window has elapsed. Call it
// once per frame.
func (c *Controller) Update() {
	if c.disposed {
		return
	}
	if at, ok := c.taps.flush(c.clock.Now()); ok {
		c.firePhotoTap(at)
	}
}

// Reset abandons any gesture in progress and returns to the identity
// transform. Hosts call it when the layout changes, since every offset and
// bound depends on the rendered size. A pending tap is discarded.
func (c *Controller) Reset() {
	if c.disposed {
		return
	}
	c.resetState()
	c.debugLog("reset")
	if c.OnResize != nil {
		c.OnResize()
	}
	c.emit(EventResize, 0, 0)
}

// Resize sets new geometry and resets.
func (c *Controller) Resize(g ImageGeometry) {
	c.SetGeometry(g)
	c.Reset()
}

// Dispose detaches all callbacks and the event store. Every later call is a
// no-op.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.taps.reset()
	c.store = nil
	c.OnPhotoTap = nil
	c.OnMaskTap = nil
	c.OnDoubleTap = nil
	c.OnReachLeftMove = nil
	c.OnReachRightMove = nil
	c.OnReachTopMove = nil
	c.OnReachBottomMove = nil
	c.OnReachUp = nil
	c.OnResize = nil
}

func (c *Controller) reachHandlers() reachHandlers {
	return reachHandlers{
		left:   c.OnReachLeftMove != nil,
		right:  c.OnReachRightMove != nil,
		top:    c.OnReachTopMove != nil,
		bottom: c.OnReachBottomMove != nil,
	}
}

// fireReach notifies the handler of the locked direction, if any.
func (c *Controller) fireReach(p Vec2) {
	var fn func(float64, float64)
	switch c.reach {
	case reachLeft:
		fn = c.OnReachLeftMove
	case reachRight:
		fn = c.OnReachRightMove
	case reachTop:
		fn = c.OnReachTopMove
	case reachBottom:
		fn = c.OnReachBottomMove
	default:
		return
	}
	if fn != nil {
		fn(p.X, p.Y)
	}
	c.emit(c.reach.eventType(), p.X, p.Y)
}

func (c *Controller) classifyTap(p Vec2, now time.Time) {
	res := c.taps.classify(p, now)
	if res.single {
		c.firePhotoTap(res.singleAt)
	}
	if res.double {
		c.doubleTap(p)
	}
}

func (c *Controller) firePhotoTap(p Vec2) {
	c.debugLog("photo tap %v", p)
	if c.OnPhotoTap != nil {
		c.OnPhotoTap(p.X, p.Y)
	}
	c.emit(EventPhotoTap, p.X, p.Y)
}

// doubleTap toggles between scale 1 and a zoom large enough to show the image
// at its natural size (at least DoubleTapScale), anchored at p.
func (c *Controller) doubleTap(p Vec2) {
	if !c.geom.Valid() {
		return
	}
	to := 1.0
	if math.Abs(c.scale-1) < unitScaleEpsilon {
		to = max(c.cfg.DoubleTapScale, c.geom.naturalRatio())
	}
	lo, hi := ScaleBounds(c.cfg, c.geom)
	c.zoomTo(p, clamp(to, lo, hi))
	c.debugLog("double tap %v -> scale %v", p, c.scale)
	if c.OnDoubleTap != nil {
		c.OnDoubleTap(p.X, p.Y)
	}
	c.emit(EventDoubleTap, p.X, p.Y)
}

// zoomTo changes the scale keeping the client point anchor fixed on screen.
func (c *Controller) zoomTo(anchor Vec2, toScale float64) {
	t := RepositionOnTransform(RepositionParams{
		X:         c.x,
		Y:         c.y,
		AnchorX:   anchor.X,
		AnchorY:   anchor.Y,
		Origin:    c.geom.Viewport.Center(),
		FromScale: c.scale,
		ToScale:   toScale,
	})
	c.x, c.y, c.scale = t.X, t.Y, t.Scale
}
