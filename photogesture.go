package photogesture

// Vec2 is a 2D point or vector in client (screen) pixels.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Transform is the state a host renders: translate(X, Y) then scale(Scale),
// applied around the image center. X and Y are offsets from the centered
// position in the viewport.
type Transform struct {
	X, Y  float64
	Scale float64
}

// identity is the resting transform of a freshly created or reset controller.
var identity = Transform{Scale: 1}

// ImageGeometry describes the displayed image. The host supplies it whenever
// layout changes; the controller reads it on every move, release, tap and wheel.
type ImageGeometry struct {
	// RenderedWidth and RenderedHeight are the laid-out size at scale 1.
	RenderedWidth, RenderedHeight float64
	// NaturalWidth and NaturalHeight are the intrinsic pixel size of the image.
	NaturalWidth, NaturalHeight float64
	// Viewport is the container rectangle in client coordinates. Its center
	// is the origin of Transform.X and Transform.Y.
	Viewport Rect
}

// Valid reports whether the geometry has been measured.
func (g ImageGeometry) Valid() bool {
	return g.RenderedWidth > 0 && g.RenderedHeight > 0 &&
		g.Viewport.Width > 0 && g.Viewport.Height > 0
}

// naturalRatio is how far the image can be zoomed before it shows more pixels
// than it has. Zero when the natural size is unknown.
func (g ImageGeometry) naturalRatio() float64 {
	if g.RenderedWidth <= 0 {
		return 0
	}
	return g.NaturalWidth / g.RenderedWidth
}

// ReachState records which axis, if any, has taken over a drag because the
// image was pushed past its edge.
type ReachState uint8

const (
	ReachNormal ReachState = iota // image pans normally
	ReachX                        // horizontal edge drag; pan is held
	ReachY                        // vertical edge drag
)

// String returns the state name.
func (r ReachState) String() string {
	switch r {
	case ReachX:
		return "XReach"
	case ReachY:
		return "YReach"
	default:
		return "Normal"
	}
}

// CloseEdge classifies where the scaled image sits relative to the viewport
// on one axis.
type CloseEdge uint8

const (
	CloseEdgeNone   CloseEdge = iota // image overflows on both sides
	CloseEdgeSmall                   // image fits inside the viewport
	CloseEdgeBefore                  // leading edge (left/top) is at or inside the viewport
	CloseEdgeAfter                   // trailing edge (right/bottom) is at or inside the viewport
)

// Closed reports whether there is no more image to pan in some direction.
func (e CloseEdge) Closed() bool {
	return e != CloseEdgeNone
}

// InputMode selects which pointer modality the input adapter listens to.
type InputMode uint8

const (
	InputMouse InputMode = iota // mouse buttons and cursor
	InputTouch                  // touch points
)

// String returns the lowercase mode name used in configuration files.
func (m InputMode) String() string {
	if m == InputTouch {
		return "touch"
	}
	return "mouse"
}

// EventType identifies a kind of gesture event emitted to an EventStore.
type EventType uint8

const (
	EventReachLeft   EventType = iota // fires on every move while a left reach is active
	EventReachRight                   // fires on every move while a right reach is active
	EventReachTop                     // fires on every move while a top reach is active
	EventReachBottom                  // fires on every move while a bottom reach is active
	EventReachUp                      // fires once when a gesture is released
	EventPhotoTap                     // fires for a confirmed single tap on the image
	EventMaskTap                      // fires for a tap on the backdrop
	EventDoubleTap                    // fires after a double tap has toggled zoom
	EventResize                       // fires after a resize reset
)
