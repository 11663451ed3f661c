package photogesture

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action   string         `json:"action"`
	Points   []Vec2         `json:"points,omitempty"`
	X        float64        `json:"x,omitempty"`
	Y        float64        `json:"y,omitempty"`
	DeltaY   float64        `json:"deltaY,omitempty"`
	Ms       float64        `json:"ms,omitempty"`
	Geometry *ImageGeometry `json:"geometry,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a recorded gesture against a Controller, one step per
// frame. Supported actions:
//
//	start  {points}        Controller.Start
//	mask   {x, y}          Controller.MaskStart
//	move   {points}        Controller.Move
//	end    {x, y}          Controller.End
//	tap    {x, y}          Start then End at the same point
//	wheel  {x, y, deltaY}  Controller.Wheel
//	wait   {ms}            idle until the controller's clock has advanced ms
//	resize {geometry}      Controller.Resize (current geometry if omitted)
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waiting   bool
	waitUntil time.Time
	done      bool
}

// LoadScript parses a JSON gesture script and returns a ScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "start", "move":
		if len(st.Points) == 0 {
			return fmt.Errorf("%s needs at least one point", st.Action)
		}
	case "wait":
		if st.Ms <= 0 {
			return fmt.Errorf("wait needs a positive ms")
		}
	case "mask", "end", "tap", "wheel", "resize":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step executes the next step, then calls c.Update so due taps are
// delivered. A pending wait consumes frames until c's clock passes it.
func (r *ScriptRunner) Step(c *Controller) {
	defer c.Update()
	if r.done {
		return
	}
	now := c.clock.Now()
	if r.waiting {
		if now.Before(r.waitUntil) {
			return
		}
		r.waiting = false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "start":
		c.Start(st.Points...)
	case "mask":
		c.MaskStart(Vec2{X: st.X, Y: st.Y})
	case "move":
		c.Move(st.Points...)
	case "end":
		c.End(Vec2{X: st.X, Y: st.Y})
	case "tap":
		c.Start(Vec2{X: st.X, Y: st.Y})
		c.End(Vec2{X: st.X, Y: st.Y})
	case "wheel":
		c.Wheel(st.X, st.Y, st.DeltaY)
	case "wait":
		r.waiting = true
		r.waitUntil = now.Add(millis(st.Ms))
	case "resize":
		g := c.Geometry()
		if st.Geometry != nil {
			g = *st.Geometry
		}
		c.Resize(g)
	}

	if r.cursor >= len(r.steps) && !r.waiting {
		r.done = true
	}
}

// Run steps the script to completion, advancing clk by frame after every
// step. c must read its time from clk.
func (r *ScriptRunner) Run(c *Controller, clk *ManualClock, frame time.Duration) error {
	if frame <= 0 {
		return fmt.Errorf("run gesture script: frame must be positive, got %v", frame)
	}
	for !r.done {
		r.Step(c)
		clk.Advance(frame)
	}
	// Deliver anything that became due on the final advance.
	c.Update()
	return nil
}
