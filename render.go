package sketch

import (
	"image/color"
	"math"
)

// Surface is the drawing target handed to RenderAll by the host's paint
// routine. Its method set is a subset of *gg.Context, so a gg drawing
// context can be passed directly.
type Surface interface {
	Push()
	Pop()
	Translate(x, y float64)

	SetColor(c color.Color)
	SetLineWidth(width float64)
	// SetDash sets the dash pattern; no arguments restore solid strokes.
	SetDash(lengths ...float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	DrawLine(x1, y1, x2, y2 float64)
	DrawRectangle(x, y, w, h float64)
	DrawCircle(x, y, r float64)
	DrawEllipse(x, y, rx, ry float64)
	// DrawArc adds a clockwise (on screen) arc from angle1 to angle2,
	// both in radians measured from the positive X axis.
	DrawArc(x, y, r, angle1, angle2 float64)
	DrawPoint(x, y, r float64)

	Stroke() error
	Fill() error
}

// pen groups the stroke and fill helpers shared by the shape renderers.
type pen struct {
	s  Surface
	st *Style
}

func (p pen) solid() {
	p.s.SetColor(p.st.LineColor)
	p.s.SetLineWidth(p.st.LineWidth)
	p.s.SetDash()
}

func (p pen) guide() {
	p.s.SetColor(p.st.GuideColor)
	p.s.SetLineWidth(p.st.GuideWidth)
	p.s.SetDash(p.st.Dash...)
}

func (p pen) stroke() {
	_ = p.s.Stroke()
}

// markers fills a small disc at every point.
func (p pen) markers(pts ...Point) {
	p.s.SetColor(p.st.MarkerColor)
	for _, pt := range pts {
		p.s.DrawPoint(pt.X, pt.Y, p.st.MarkerRadius)
		_ = p.s.Fill()
	}
}

func (p pen) line(a, b Point) {
	p.s.DrawLine(a.X, a.Y, b.X, b.Y)
	p.stroke()
}

func (p pen) rect(r Rect) {
	p.s.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	p.stroke()
}

func (p pen) ellipse(r Rect) {
	c := r.Center()
	p.s.DrawEllipse(c.X, c.Y, r.Width()/2, r.Height()/2)
	p.stroke()
}

func (p pen) circle(c Point, r float64) {
	p.s.DrawCircle(c.X, c.Y, r)
	p.stroke()
}

// arc strokes the arc centred on c through start, sweeping to the ray
// toward end. The sweep covers the headings between the two rays, the same
// span ArcShape.Contains accepts.
func (p pen) arc(c, start, end Point) {
	r := c.Distance(start)
	h1 := c.Heading(start)
	h2 := c.Heading(end)
	lo, hi := math.Min(h1, h2), math.Max(h1, h2)
	if hi == lo {
		return
	}
	// Headings run counter-clockwise on screen; Surface angles run
	// clockwise, so the span flips sign.
	p.s.DrawArc(c.X, c.Y, r, -hi*math.Pi/180, -lo*math.Pi/180)
	p.stroke()
}

func (p pen) path(pts []Point, closed bool) {
	if len(pts) < 2 {
		return
	}
	p.s.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.s.LineTo(pt.X, pt.Y)
	}
	if closed {
		p.s.ClosePath()
	}
	p.stroke()
}
