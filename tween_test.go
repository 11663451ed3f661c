package photogesture

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTransformTween_SnapsFirstFrame(t *testing.T) {
	tw := NewTransformTween(0.5, ease.Linear)
	target := Transform{X: 10, Y: -4, Scale: 1.5}
	if got := tw.Update(target, false, 0.016); got != target {
		t.Errorf("first Update = %+v, want %+v", got, target)
	}
	if !tw.Done() {
		t.Error("Done = false after snap")
	}
}

func TestTransformTween_Eases(t *testing.T) {
	tw := NewTransformTween(0.5, ease.Linear)
	tw.Update(Transform{X: 10, Scale: 1}, false, 0.016)

	target := Transform{X: 100, Y: 0, Scale: 2}
	got := tw.Update(target, false, 0.25)
	if !approxEqual(got.X, 55, 1e-4) || !approxEqual(got.Scale, 1.5, 1e-4) {
		t.Errorf("halfway = %+v, want X=55 Scale=1.5", got)
	}
	if tw.Done() {
		t.Error("Done = true halfway")
	}

	got = tw.Update(target, false, 0.25)
	if got != target {
		t.Errorf("final = %+v, want exact %+v", got, target)
	}
	if !tw.Done() || tw.Current() != target {
		t.Error("tween not settled on target")
	}

	// Settled: further frames keep the target.
	if got := tw.Update(target, false, 0.25); got != target {
		t.Errorf("after settle = %+v, want %+v", got, target)
	}
}

func TestTransformTween_TouchedSnaps(t *testing.T) {
	tw := NewTransformTween(0.5, ease.Linear)
	tw.Update(identity, false, 0.016)
	tw.Update(Transform{X: 200, Scale: 1}, false, 0.1)

	target := Transform{X: -5, Y: 5, Scale: 3}
	if got := tw.Update(target, true, 0.016); got != target {
		t.Errorf("touched Update = %+v, want %+v", got, target)
	}
	if !tw.Done() {
		t.Error("Done = false after touched snap")
	}
}

func TestTransformTween_RetargetStartsFromCurrent(t *testing.T) {
	tw := NewTransformTween(0.5, ease.Linear)
	tw.Update(identity, false, 0.016)
	mid := tw.Update(Transform{X: 100, Scale: 1}, false, 0.25)

	got := tw.Update(Transform{X: 0, Scale: 1}, false, 0.25)
	want := mid.X / 2
	if !approxEqual(got.X, want, 1e-4) {
		t.Errorf("X = %v, want %v halfway back from %v", got.X, want, mid.X)
	}
}

func TestNewTransformTween_Defaults(t *testing.T) {
	tw := NewTransformTween(0, nil)
	if tw.duration != defaultTweenDuration {
		t.Errorf("duration = %v, want %v", tw.duration, defaultTweenDuration)
	}
	if tw.easeFn == nil {
		t.Error("easeFn = nil, want default easing")
	}
}
