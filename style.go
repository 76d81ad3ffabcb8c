package sketch

import "image/color"

// Style holds the pens used to render shapes.
type Style struct {
	// LineColor strokes committed geometry.
	LineColor color.Color
	// GuideColor strokes guide geometry and selection outlines.
	GuideColor color.Color
	// MarkerColor fills guide points and selection handles.
	MarkerColor color.Color

	LineWidth    float64
	GuideWidth   float64
	PointRadius  float64
	MarkerRadius float64

	// Dash is the dash pattern for guide strokes.
	Dash []float64
}

// DefaultStyle returns red committed strokes with dashed lawn-green guides
// and yellow markers.
func DefaultStyle() Style {
	return Style{
		LineColor:    color.NRGBA{R: 0xff, A: 0xff},
		GuideColor:   color.NRGBA{R: 0x7c, G: 0xfc, A: 0xff},
		MarkerColor:  color.NRGBA{R: 0xff, G: 0xff, A: 0xff},
		LineWidth:    2,
		GuideWidth:   1,
		PointRadius:  3,
		MarkerRadius: 3,
		Dash:         []float64{6, 4},
	}
}
