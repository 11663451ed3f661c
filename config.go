package photogesture

import (
	"encoding/json"
	"fmt"
	"time"
)

// Config tunes the gesture engine. Start from DefaultConfig or LoadConfig and
// change fields as needed; such a Config is used exactly as given, zeros
// included. A Config built from a literal has its zero fields replaced with
// the DefaultConfig values when a Controller is created.
type Config struct {
	// InputMode selects mouse or touch handling in InputSource.
	InputMode InputMode

	// MinScale and MaxScale bound the resting scale. The effective upper bound
	// is max(MaxScale, NaturalWidth/RenderedWidth).
	MinScale float64
	MaxScale float64
	// ScaleBuffer lets a pinch undershoot MinScale while the gesture is active.
	ScaleBuffer float64

	// MinReachOffset is how far past centered, in pixels, a closed edge must be
	// dragged before a reach handler takes over.
	MinReachOffset float64

	// MoveThrottle is the minimum wall-clock gap between processed moves.
	MoveThrottle time.Duration

	// DoubleTapWindow is how long a tap waits for a second tap.
	DoubleTapWindow time.Duration
	// DoubleTapTolerance is the maximum distance between the two taps.
	DoubleTapTolerance float64
	// DoubleTapScale is the minimum zoom a double tap jumps to.
	DoubleTapScale float64
	// TapMoveTolerance is the movement on either axis that turns a press into a drag.
	TapMoveTolerance float64

	// WheelZoomFactor converts wheel deltaY into a scale change.
	WheelZoomFactor float64

	// SlideDeceleration is the momentum decay in px/ms².
	SlideDeceleration float64
	// MaxSlideDistance caps the momentum extrapolation per axis. Zero means
	// no cap.
	MaxSlideDistance float64
	// MinSlideElapsed floors the gesture duration used for velocity.
	MinSlideElapsed time.Duration

	// complete marks a Config that started from DefaultConfig, so its zero
	// fields are deliberate.
	complete bool
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		InputMode:          InputMouse,
		MinScale:           1,
		MaxScale:           6,
		ScaleBuffer:        0.2,
		MinReachOffset:     20,
		MoveThrottle:       8 * time.Millisecond,
		DoubleTapWindow:    300 * time.Millisecond,
		DoubleTapTolerance: 30,
		DoubleTapScale:     2,
		TapMoveTolerance:   1,
		WheelZoomFactor:    0.005,
		SlideDeceleration:  0.01,
		MaxSlideDistance:   400,
		MinSlideElapsed:    time.Millisecond,
		complete:           true,
	}
}

// withDefaults fills zero fields of a literal Config from DefaultConfig.
// InputMode is kept as is because its zero value is a valid choice.
func (c Config) withDefaults() Config {
	if c.complete {
		return c
	}
	d := DefaultConfig()
	if c.MinScale == 0 {
		c.MinScale = d.MinScale
	}
	if c.MaxScale == 0 {
		c.MaxScale = d.MaxScale
	}
	if c.ScaleBuffer == 0 {
		c.ScaleBuffer = d.ScaleBuffer
	}
	if c.MinReachOffset == 0 {
		c.MinReachOffset = d.MinReachOffset
	}
	if c.MoveThrottle == 0 {
		c.MoveThrottle = d.MoveThrottle
	}
	if c.DoubleTapWindow == 0 {
		c.DoubleTapWindow = d.DoubleTapWindow
	}
	if c.DoubleTapTolerance == 0 {
		c.DoubleTapTolerance = d.DoubleTapTolerance
	}
	if c.DoubleTapScale == 0 {
		c.DoubleTapScale = d.DoubleTapScale
	}
	if c.TapMoveTolerance == 0 {
		c.TapMoveTolerance = d.TapMoveTolerance
	}
	if c.WheelZoomFactor == 0 {
		c.WheelZoomFactor = d.WheelZoomFactor
	}
	if c.SlideDeceleration == 0 {
		c.SlideDeceleration = d.SlideDeceleration
	}
	if c.MaxSlideDistance == 0 {
		c.MaxSlideDistance = d.MaxSlideDistance
	}
	if c.MinSlideElapsed == 0 {
		c.MinSlideElapsed = d.MinSlideElapsed
	}
	c.complete = true
	return c
}

// Validate reports the first field that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.InputMode > InputTouch:
		return fmt.Errorf("config: unknown input mode %d", c.InputMode)
	case c.MinScale <= 0:
		return fmt.Errorf("config: minScale must be positive, got %v", c.MinScale)
	case c.MaxScale < c.MinScale:
		return fmt.Errorf("config: maxScale %v is below minScale %v", c.MaxScale, c.MinScale)
	case c.ScaleBuffer < 0 || c.ScaleBuffer >= c.MinScale:
		return fmt.Errorf("config: scaleBuffer must be in [0, minScale), got %v", c.ScaleBuffer)
	case c.MinReachOffset < 0:
		return fmt.Errorf("config: minReachOffset must not be negative, got %v", c.MinReachOffset)
	case c.MoveThrottle < 0:
		return fmt.Errorf("config: moveThrottle must not be negative, got %v", c.MoveThrottle)
	case c.DoubleTapWindow <= 0:
		return fmt.Errorf("config: doubleTapWindow must be positive, got %v", c.DoubleTapWindow)
	case c.DoubleTapTolerance < 0 || c.TapMoveTolerance < 0:
		return fmt.Errorf("config: tap tolerances must not be negative")
	case c.DoubleTapScale <= 0:
		return fmt.Errorf("config: doubleTapScale must be positive, got %v", c.DoubleTapScale)
	case c.WheelZoomFactor <= 0:
		return fmt.Errorf("config: wheelZoomFactor must be positive, got %v", c.WheelZoomFactor)
	case c.SlideDeceleration <= 0:
		return fmt.Errorf("config: slideDeceleration must be positive, got %v", c.SlideDeceleration)
	case c.MaxSlideDistance < 0:
		return fmt.Errorf("config: maxSlideDistance must not be negative, got %v", c.MaxSlideDistance)
	case c.MinSlideElapsed <= 0:
		return fmt.Errorf("config: minSlideElapsed must be positive, got %v", c.MinSlideElapsed)
	}
	return nil
}

// configFile is the JSON shape of a Config. Durations are milliseconds and
// absent fields keep their defaults.
type configFile struct {
	InputMode          *string  `json:"inputMode,omitempty"`
	MinScale           *float64 `json:"minScale,omitempty"`
	MaxScale           *float64 `json:"maxScale,omitempty"`
	ScaleBuffer        *float64 `json:"scaleBuffer,omitempty"`
	MinReachOffset     *float64 `json:"minReachOffset,omitempty"`
	MoveThrottleMs     *float64 `json:"moveThrottleMs,omitempty"`
	DoubleTapWindowMs  *float64 `json:"doubleTapWindowMs,omitempty"`
	DoubleTapTolerance *float64 `json:"doubleTapTolerance,omitempty"`
	DoubleTapScale     *float64 `json:"doubleTapScale,omitempty"`
	TapMoveTolerance   *float64 `json:"tapMoveTolerance,omitempty"`
	WheelZoomFactor    *float64 `json:"wheelZoomFactor,omitempty"`
	SlideDeceleration  *float64 `json:"slideDeceleration,omitempty"`
	MaxSlideDistance   *float64 `json:"maxSlideDistance,omitempty"`
	MinSlideElapsedMs  *float64 `json:"minSlideElapsedMs,omitempty"`
}

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// LoadConfig parses a JSON configuration on top of DefaultConfig and
// validates the result.
func LoadConfig(jsonData []byte) (Config, error) {
	var f configFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	c := DefaultConfig()
	if f.InputMode != nil {
		switch *f.InputMode {
		case "mouse":
			c.InputMode = InputMouse
		case "touch":
			c.InputMode = InputTouch
		default:
			return Config{}, fmt.Errorf("parse config: unknown inputMode %q", *f.InputMode)
		}
	}
	setFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setFloat(&c.MinScale, f.MinScale)
	setFloat(&c.MaxScale, f.MaxScale)
	setFloat(&c.ScaleBuffer, f.ScaleBuffer)
	setFloat(&c.MinReachOffset, f.MinReachOffset)
	setFloat(&c.DoubleTapTolerance, f.DoubleTapTolerance)
	setFloat(&c.DoubleTapScale, f.DoubleTapScale)
	setFloat(&c.TapMoveTolerance, f.TapMoveTolerance)
	setFloat(&c.WheelZoomFactor, f.WheelZoomFactor)
	setFloat(&c.SlideDeceleration, f.SlideDeceleration)
	setFloat(&c.MaxSlideDistance, f.MaxSlideDistance)
	if f.MoveThrottleMs != nil {
		c.MoveThrottle = millis(*f.MoveThrottleMs)
	}
	if f.DoubleTapWindowMs != nil {
		c.DoubleTapWindow = millis(*f.DoubleTapWindowMs)
	}
	if f.MinSlideElapsedMs != nil {
		c.MinSlideElapsed = millis(*f.MinSlideElapsedMs)
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return c, nil
}
