package photogesture

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default easing for TransformTween, close to a CSS
// cubic-bezier(0.25, 0.8, 0.25, 1) over half a second.
const defaultTweenDuration = 0.5

// TransformTween eases the displayed transform toward the controller's
// target. While the image is touched it snaps so the image tracks the
// pointer exactly; after release it animates to each new target.
//
// There is no global animation manager. Call Update once per frame.
type TransformTween struct {
	duration float32
	easeFn   ease.TweenFunc

	current Transform
	target  Transform
	tweens  [3]*gween.Tween
	active  bool
	started bool
}

// NewTransformTween creates a tween with the given duration in seconds and
// easing function. A non-positive duration or nil easing uses the defaults.
func NewTransformTween(duration float32, fn ease.TweenFunc) *TransformTween {
	if duration <= 0 {
		duration = defaultTweenDuration
	}
	if fn == nil {
		fn = ease.OutCubic
	}
	return &TransformTween{duration: duration, easeFn: fn}
}

// Current returns the displayed transform.
func (t *TransformTween) Current() Transform { return t.current }

// Done reports whether the displayed transform has reached the target.
func (t *TransformTween) Done() bool { return !t.active }

// Update advances the tween by dt seconds toward target and returns the
// transform to draw this frame.
func (t *TransformTween) Update(target Transform, touched bool, dt float32) Transform {
	if !t.started || touched {
		t.started = true
		t.snap(target)
		return t.current
	}

	if target != t.target {
		t.target = target
		t.tweens[0] = gween.New(float32(t.current.X), float32(target.X), t.duration, t.easeFn)
		t.tweens[1] = gween.New(float32(t.current.Y), float32(target.Y), t.duration, t.easeFn)
		t.tweens[2] = gween.New(float32(t.current.Scale), float32(target.Scale), t.duration, t.easeFn)
		t.active = true
	}
	if !t.active {
		return t.current
	}

	fields := [3]*float64{&t.current.X, &t.current.Y, &t.current.Scale}
	allDone := true
	for i, tw := range t.tweens {
		val, finished := tw.Update(dt)
		*fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		// Land exactly on the target rather than its float32 rounding.
		t.current = t.target
		t.active = false
	}
	return t.current
}

func (t *TransformTween) snap(target Transform) {
	t.current = target
	t.target = target
	t.active = false
}
