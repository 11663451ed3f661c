package photogesture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestNaturalSize_PNG(t *testing.T) {
	w, h, orient, err := NaturalSize(bytes.NewReader(encodePNG(t, 30, 20)))
	if err != nil {
		t.Fatalf("NaturalSize: %v", err)
	}
	if w != 30 || h != 20 {
		t.Errorf("NaturalSize = %dx%d, want 30x20", w, h)
	}
	if orient != OrientationNormal {
		t.Errorf("orientation = %d, want OrientationNormal without EXIF", orient)
	}
}

func TestNaturalSize_NotAnImage(t *testing.T) {
	if _, _, _, err := NaturalSize(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected error for non-image data")
	}
}

func TestOrientationOf(t *testing.T) {
	tests := []struct {
		tag         int
		want        Orientation
		wantSwapped bool
	}{
		{0, OrientationNormal, false},
		{1, OrientationNormal, false},
		{3, OrientationRotate180, false},
		{4, OrientationMirrorVertical, false},
		{5, OrientationTranspose, true},
		{6, OrientationRotate90, true},
		{7, OrientationTransverse, true},
		{8, OrientationRotate270, true},
		{9, OrientationNormal, false},
	}
	for _, tt := range tests {
		o := orientationOf(tt.tag)
		if o != tt.want || o.Swapped() != tt.wantSwapped {
			t.Errorf("orientationOf(%d) = %d (swapped %t), want %d (swapped %t)",
				tt.tag, o, o.Swapped(), tt.want, tt.wantSwapped)
		}
	}
}

func TestOrientationGeoM(t *testing.T) {
	// A 40x30 stored image. Each case maps the stored top-left and top-right
	// corners onto the upright image.
	tests := []struct {
		name            string
		o               Orientation
		topLeft, topRgt Vec2
	}{
		{"normal", OrientationNormal, Vec2{0, 0}, Vec2{40, 0}},
		{"mirror horizontal", OrientationMirrorHorizontal, Vec2{40, 0}, Vec2{0, 0}},
		{"rotate 180", OrientationRotate180, Vec2{40, 30}, Vec2{0, 30}},
		{"mirror vertical", OrientationMirrorVertical, Vec2{0, 30}, Vec2{40, 30}},
		{"transpose", OrientationTranspose, Vec2{0, 0}, Vec2{0, 40}},
		{"rotate 90", OrientationRotate90, Vec2{30, 0}, Vec2{30, 40}},
		{"transverse", OrientationTransverse, Vec2{30, 40}, Vec2{30, 0}},
		{"rotate 270", OrientationRotate270, Vec2{0, 40}, Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.o.GeoM(40, 30)
			if x, y := g.Apply(0, 0); !approxEqual(x, tt.topLeft.X, epsilon) || !approxEqual(y, tt.topLeft.Y, epsilon) {
				t.Errorf("(0,0) -> (%v,%v), want %v", x, y, tt.topLeft)
			}
			if x, y := g.Apply(40, 0); !approxEqual(x, tt.topRgt.X, epsilon) || !approxEqual(y, tt.topRgt.Y, epsilon) {
				t.Errorf("(40,0) -> (%v,%v), want %v", x, y, tt.topRgt)
			}

			// The whole image stays inside the upright bounds.
			w, h := 40.0, 30.0
			if tt.o.Swapped() {
				w, h = h, w
			}
			x, y := g.Apply(40, 30)
			if x < -epsilon || x > w+epsilon || y < -epsilon || y > h+epsilon {
				t.Errorf("(40,30) -> (%v,%v), outside %vx%v", x, y, w, h)
			}
		})
	}
}

func TestOrientationGeoM_SquareImageRotates(t *testing.T) {
	g := OrientationRotate90.GeoM(50, 50)
	if x, y := g.Apply(0, 0); !approxEqual(x, 50, epsilon) || !approxEqual(y, 0, epsilon) {
		t.Errorf("(0,0) -> (%v,%v), want (50,0)", x, y)
	}
}

func TestFitGeometry(t *testing.T) {
	viewport := Rect{Width: 800, Height: 600}
	tests := []struct {
		name         string
		natW, natH   float64
		wantW, wantH float64
	}{
		{"landscape shrinks to width", 1600, 900, 800, 450},
		{"portrait shrinks to height", 1200, 2400, 300, 600},
		{"small image keeps natural size", 200, 100, 200, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := FitGeometry(tt.natW, tt.natH, viewport)
			if !approxEqual(g.RenderedWidth, tt.wantW, 1e-9) || !approxEqual(g.RenderedHeight, tt.wantH, 1e-9) {
				t.Errorf("rendered = %vx%v, want %vx%v", g.RenderedWidth, g.RenderedHeight, tt.wantW, tt.wantH)
			}
			if !g.Valid() {
				t.Error("geometry not valid")
			}
			if g.Viewport != viewport || g.NaturalWidth != tt.natW {
				t.Errorf("geometry %+v lost its inputs", g)
			}
		})
	}

	if g := FitGeometry(0, 100, viewport); g.Valid() {
		t.Errorf("FitGeometry with unknown size = %+v, want invalid", g)
	}
}
