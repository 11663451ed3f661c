package photogesture

import (
	"math"
	"time"
)

// MultiTouchSpan returns the distance between two touch points and the point
// used as the zoom anchor. The anchor is the first point rather than the
// centroid so that it stays put while the second finger moves.
func MultiTouchSpan(p1, p2 Vec2) (span float64, anchor Vec2) {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y), p1
}

// closeEdge classifies one axis. offset is the image translation from
// centered, size the rendered size at scale 1 and view the viewport size.
func closeEdge(offset, scale, size, view float64) CloseEdge {
	current := size * scale
	if current <= view {
		return CloseEdgeSmall
	}
	overflow := (current - view) / 2
	if offset > 0 && overflow-offset <= 0 {
		return CloseEdgeBefore
	}
	if offset < 0 && overflow+offset <= 0 {
		return CloseEdgeAfter
	}
	return CloseEdgeNone
}

// EdgeClosedHorizontal reports where the image sits horizontally: Small when
// it fits inside the viewport, Before when its left edge has been pulled to or
// inside the viewport's left edge, After for the right edge, None otherwise.
func EdgeClosedHorizontal(x, scale, width, viewportWidth float64) CloseEdge {
	return closeEdge(x, scale, width, viewportWidth)
}

// EdgeClosedVertical is EdgeClosedHorizontal for the vertical axis.
func EdgeClosedVertical(y, scale, height, viewportHeight float64) CloseEdge {
	return closeEdge(y, scale, height, viewportHeight)
}

// RepositionParams describes a scale change around a fixed client point.
type RepositionParams struct {
	// X and Y are the current translation.
	X, Y float64
	// AnchorX and AnchorY are the client point that must not move on screen.
	AnchorX, AnchorY float64
	// Origin is the client position that a zero translation centers the image
	// on, normally the viewport center.
	Origin Vec2
	// FromScale is the current scale and ToScale the new one.
	FromScale, ToScale float64
}

// RepositionOnTransform returns the translation that keeps the anchor point
// visually fixed while the scale changes. Pinch, wheel and double tap all
// zoom through this function.
func RepositionOnTransform(p RepositionParams) Transform {
	if p.FromScale <= 0 || p.FromScale == p.ToScale {
		return Transform{X: p.X, Y: p.Y, Scale: p.ToScale}
	}
	ratio := p.ToScale / p.FromScale
	ax := p.AnchorX - p.Origin.X
	ay := p.AnchorY - p.Origin.Y
	return Transform{
		X:     ax - (ax-p.X)*ratio,
		Y:     ay - (ay-p.Y)*ratio,
		Scale: p.ToScale,
	}
}

// ScaleBounds returns the resting scale range for an image: MinScale up to
// the larger of MaxScale and the natural-to-rendered width ratio.
func ScaleBounds(cfg Config, g ImageGeometry) (lo, hi float64) {
	return cfg.MinScale, math.Max(cfg.MaxScale, g.naturalRatio())
}

// RestBound is how far the image may rest from centered on one axis: half of
// the amount the scaled image overflows the viewport, or zero if it fits.
func RestBound(size, scale, view float64) float64 {
	return math.Max(0, (size*scale-view)/2)
}

// SlideParams describes a release for momentum projection.
type SlideParams struct {
	// X and Y are the translation at release.
	X, Y float64
	// OriginX and OriginY are the translation when the gesture started.
	OriginX, OriginY float64
	// Elapsed is the gesture duration.
	Elapsed time.Duration
	// Scale is the resting scale the position is bounded for.
	Scale    float64
	Geometry ImageGeometry

	// Deceleration in px/ms². Zero disables extrapolation.
	Deceleration float64
	// MaxDistance caps the extrapolated distance per axis. Zero means no cap.
	MaxDistance float64
	// MinElapsed floors Elapsed to keep the velocity finite.
	MinElapsed time.Duration
}

// SlideToPosition projects where a released image comes to rest. The average
// velocity over the gesture is decayed at a constant rate, and the result is
// clamped so the image never rests further than RestBound from centered.
func SlideToPosition(p SlideParams) Vec2 {
	minElapsed := p.MinElapsed
	if minElapsed <= 0 {
		minElapsed = time.Millisecond
	}
	elapsed := p.Elapsed
	if elapsed < minElapsed {
		elapsed = minElapsed
	}
	ms := float64(elapsed) / float64(time.Millisecond)

	x := p.X + slideDistance((p.X-p.OriginX)/ms, p.Deceleration, p.MaxDistance)
	y := p.Y + slideDistance((p.Y-p.OriginY)/ms, p.Deceleration, p.MaxDistance)

	g := p.Geometry
	bx := RestBound(g.RenderedWidth, p.Scale, g.Viewport.Width)
	by := RestBound(g.RenderedHeight, p.Scale, g.Viewport.Height)
	return Vec2{X: clamp(x, -bx, bx), Y: clamp(y, -by, by)}
}

// slideDistance is the distance covered by velocity v (px/ms) decelerating
// at a until it stops, capped at maxDist.
func slideDistance(v, a, maxDist float64) float64 {
	if a <= 0 || v == 0 {
		return 0
	}
	d := v * math.Abs(v) / (2 * a)
	if maxDist > 0 {
		d = clamp(d, -maxDist, maxDist)
	}
	return d
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
