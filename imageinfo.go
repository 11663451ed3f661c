package photogesture

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Orientation is an EXIF orientation tag: how the stored pixels must be
// flipped or rotated to display the image upright.
type Orientation int

const (
	OrientationNormal           Orientation = iota + 1
	OrientationMirrorHorizontal             // 2
	OrientationRotate180                    // 3
	OrientationMirrorVertical               // 4
	OrientationTranspose                    // 5: mirrored and rotated
	OrientationRotate90                     // 6: rotate clockwise to display
	OrientationTransverse                   // 7: mirrored and rotated
	OrientationRotate270                    // 8: rotate counterclockwise to display
)

func orientationOf(tag int) Orientation {
	if tag < int(OrientationNormal) || tag > int(OrientationRotate270) {
		return OrientationNormal
	}
	return Orientation(tag)
}

// Swapped reports whether the displayed image is the stored one turned on
// its side, so displayed width is stored height.
func (o Orientation) Swapped() bool {
	return o >= OrientationTranspose && o <= OrientationRotate270
}

// GeoM maps stored pixel coordinates of a w x h image onto the upright
// image, with the origin at its top-left corner.
func (o Orientation) GeoM(w, h float64) ebiten.GeoM {
	// a, b, tx, c, d, ty
	m := [6]float64{1, 0, 0, 0, 1, 0}
	switch o {
	case OrientationMirrorHorizontal:
		m = [6]float64{-1, 0, w, 0, 1, 0}
	case OrientationRotate180:
		m = [6]float64{-1, 0, w, 0, -1, h}
	case OrientationMirrorVertical:
		m = [6]float64{1, 0, 0, 0, -1, h}
	case OrientationTranspose:
		m = [6]float64{0, 1, 0, 1, 0, 0}
	case OrientationRotate90:
		m = [6]float64{0, -1, h, 1, 0, 0}
	case OrientationTransverse:
		m = [6]float64{0, -1, h, -1, 0, w}
	case OrientationRotate270:
		m = [6]float64{0, 1, 0, -1, 0, w}
	}
	var g ebiten.GeoM
	for i, v := range m {
		g.SetElement(i/3, i%3, v)
	}
	return g
}

// NaturalSize reads an image's intrinsic size and EXIF orientation without
// decoding the pixels. Width and height are as displayed: swapped from the
// stored size when the orientation turns the image on its side. Images
// without EXIF report OrientationNormal.
func NaturalSize(r io.ReadSeeker) (width, height int, orient Orientation, err error) {
	config, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("decoding image config: %w", err)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, 0, 0, fmt.Errorf("seeking for exif: %w", err)
	}
	orient = OrientationNormal
	if x, err := exif.Decode(r); err == nil { // EXIF might not be present
		if tag, err := x.Get(exif.Orientation); err == nil {
			if v, err := tag.Int(0); err == nil {
				orient = orientationOf(v)
			}
		}
	}

	if orient.Swapped() {
		return config.Height, config.Width, orient, nil
	}
	return config.Width, config.Height, orient, nil
}

// FitGeometry lays out an image the way a max-width/max-height container
// does: shrunk to fit inside the viewport, never enlarged past its natural
// size. Returns geometry with zero rendered size if the natural size is
// unknown.
func FitGeometry(naturalWidth, naturalHeight float64, viewport Rect) ImageGeometry {
	g := ImageGeometry{
		NaturalWidth:  naturalWidth,
		NaturalHeight: naturalHeight,
		Viewport:      viewport,
	}
	if naturalWidth <= 0 || naturalHeight <= 0 {
		return g
	}
	s := math.Min(1, math.Min(viewport.Width/naturalWidth, viewport.Height/naturalHeight))
	g.RenderedWidth = naturalWidth * s
	g.RenderedHeight = naturalHeight * s
	return g
}
