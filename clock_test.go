package photogesture

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	start := time.Unix(100, 0)
	clk := NewManualClock(start)
	if !clk.Now().Equal(start) {
		t.Errorf("Now = %v, want %v", clk.Now(), start)
	}

	clk.Advance(250 * time.Millisecond)
	if got := clk.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("after Advance: %v, want 250ms", got)
	}

	clk.Advance(-time.Second)
	if got := clk.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("negative Advance moved the clock to %v", got)
	}

	clk.Set(start)
	if !clk.Now().Equal(start) {
		t.Errorf("after Set: %v, want %v", clk.Now(), start)
	}
}

func TestSystemClockMovesForward(t *testing.T) {
	var clk Clock = SystemClock{}
	a := clk.Now()
	b := clk.Now()
	if b.Before(a) {
		t.Errorf("SystemClock went backwards: %v then %v", a, b)
	}
}
