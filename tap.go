package photogesture

import (
	"math"
	"time"
)

// tapClassifier tells single taps from double taps. It holds at most one
// pending tap; nothing fires on its own. The owner polls flush each frame to
// deliver a single tap whose window has run out.
type tapClassifier struct {
	window    time.Duration
	tolerance float64

	pending  bool
	at       Vec2
	deadline time.Time
}

func newTapClassifier(window time.Duration, tolerance float64) tapClassifier {
	return tapClassifier{window: window, tolerance: tolerance}
}

// tapResult is the outcome of classifying one tap.
type tapResult struct {
	// single is set when an earlier pending tap is confirmed as a single tap
	// and should be delivered before anything else.
	single   bool
	singleAt Vec2
	// double is set when this tap completes a double tap.
	double bool
}

// classify registers a tap at p. A pending tap still inside its window and
// within tolerance turns this into a double tap. Any other pending tap is
// returned as a confirmed single and p becomes the new pending tap.
func (t *tapClassifier) classify(p Vec2, now time.Time) tapResult {
	var res tapResult
	if t.pending {
		if !now.After(t.deadline) && t.near(p) {
			t.pending = false
			res.double = true
			return res
		}
		res.single = true
		res.singleAt = t.at
	}
	t.pending = true
	t.at = p
	t.deadline = now.Add(t.window)
	return res
}

// flush returns the pending tap if its window has elapsed.
func (t *tapClassifier) flush(now time.Time) (Vec2, bool) {
	if !t.pending || !now.After(t.deadline) {
		return Vec2{}, false
	}
	t.pending = false
	return t.at, true
}

// reset drops any pending tap.
func (t *tapClassifier) reset() {
	t.pending = false
}

func (t *tapClassifier) near(p Vec2) bool {
	return math.Abs(p.X-t.at.X) <= t.tolerance && math.Abs(p.Y-t.at.Y) <= t.tolerance
}
