package photogesture

import (
	"math"
	"time"
)

// gestureTracker holds the per-gesture interaction state: where the pointer
// went down, what the translation was at that moment, the last pinch span, and
// when the gesture began. It also throttles move processing.
type gestureTracker struct {
	throttle  time.Duration
	tolerance float64

	active       bool
	originClient Vec2 // pointer position at start (or last re-anchor)
	origin       Vec2 // translation at start (or last re-anchor)
	startTime    time.Time
	lastSpan     float64
	anchorSpan   float64
	pointCount   int
	moved        bool

	lastMove    time.Time
	hasLastMove bool
}

func newGestureTracker(throttle time.Duration, tolerance float64) gestureTracker {
	return gestureTracker{throttle: throttle, tolerance: tolerance}
}

// moveSample is one normalized move: the primary pointer, the translation a
// pan would produce, and the pinch scale ratio since the previous sample.
type moveSample struct {
	pointer Vec2
	pan     Vec2
	pinch   bool
	ratio   float64
}

// begin anchors a gesture at the first point. Calling it again while a
// gesture is active (a second finger landing) re-anchors the origin and span
// but keeps the start time and the moved flag.
func (t *gestureTracker) begin(points []Vec2, offset Vec2, now time.Time) {
	if !t.active {
		t.active = true
		t.startTime = now
		t.moved = false
		t.hasLastMove = false
	}
	t.anchor(points, offset)
}

func (t *gestureTracker) anchor(points []Vec2, offset Vec2) {
	t.originClient = points[0]
	t.origin = offset
	t.pointCount = len(points)
	t.lastSpan = 0
	if len(points) >= 2 {
		t.lastSpan, _ = MultiTouchSpan(points[0], points[1])
	}
	t.anchorSpan = t.lastSpan
}

// accept reports whether a move arriving at now should be processed. Moves
// closer than the throttle interval to the last accepted one are dropped.
func (t *gestureTracker) accept(now time.Time) bool {
	if t.hasLastMove && now.Sub(t.lastMove) < t.throttle {
		return false
	}
	t.lastMove = now
	t.hasLastMove = true
	return true
}

// sample normalizes a move. offset is the current translation. A change in
// the number of points re-anchors first so lifting or adding a finger does
// not make the image jump.
func (t *gestureTracker) sample(points []Vec2, offset Vec2) moveSample {
	if len(points) != t.pointCount {
		t.anchor(points, offset)
	}
	p := points[0]
	if t.exceeds(p) {
		t.moved = true
	}

	s := moveSample{pointer: p, ratio: 1}
	if len(points) < 2 {
		s.pan = Vec2{
			X: p.X - t.originClient.X + t.origin.X,
			Y: p.Y - t.originClient.Y + t.origin.Y,
		}
		return s
	}

	s.pinch = true
	s.pan = offset
	span, _ := MultiTouchSpan(points[0], points[1])
	if t.lastSpan > 0 {
		s.ratio = span / t.lastSpan
	}
	if math.Abs(span-t.anchorSpan) > t.tolerance {
		t.moved = true
	}
	t.lastSpan = span
	return s
}

// finish closes the gesture and reports whether it was a drag and how long
// it lasted.
func (t *gestureTracker) finish(p Vec2, now time.Time) (moved bool, elapsed time.Duration) {
	moved = t.moved || t.exceeds(p)
	elapsed = now.Sub(t.startTime)
	t.active = false
	t.moved = false
	t.hasLastMove = false
	return moved, elapsed
}

// exceeds reports whether p is further than the tap tolerance from the origin
// on either axis.
func (t *gestureTracker) exceeds(p Vec2) bool {
	return math.Abs(p.X-t.originClient.X) > t.tolerance ||
		math.Abs(p.Y-t.originClient.Y) > t.tolerance
}
