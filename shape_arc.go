package sketch

import "math"

// ArcShape is a circular arc built from three presses: the center, a point
// fixing the radius and the starting ray, and a point fixing the ending ray.
type ArcShape struct {
	shapeState
	center, start, end Point
	old                [3]Point

	// guide mirrors center, start and end while under construction
	guide    [3]Point
	hasGuide bool
}

// NewArc returns an empty arc awaiting its center.
func NewArc() *ArcShape {
	return &ArcShape{shapeState: newShapeState(KindArc, StageAwaitingCenter)}
}

// Geometry returns the committed center, start point and end point.
func (s *ArcShape) Geometry() (center, start, end Point) {
	return s.center, s.start, s.end
}

// Radius returns the distance from the center to the start point.
func (s *ArcShape) Radius() float64 {
	return s.center.Distance(s.start)
}

// Update accepts only presses; the arc has no use for a release.
func (s *ArcShape) Update(ev Event, p Point) {
	switch ev {
	case EventConstructing:
		switch s.stage {
		case StageAwaitingCenter:
			s.center = p
			s.guide = [3]Point{p, p, p}
			s.advance(StageAwaitingArcStart)
		case StageAwaitingArcStart:
			s.start = p
			s.guide[1], s.guide[2] = p, p
			s.hasGuide = true
			s.advance(StageAwaitingArcEnd)
		case StageAwaitingArcEnd:
			s.end = p
			s.guide = [3]Point{s.center, s.start, s.end}
			s.hasGuide = false
			s.advance(StageComplete)
		}
	case EventGuidePreview:
		switch s.stage {
		case StageAwaitingArcStart:
			s.guide[1], s.guide[2] = p, p
		case StageAwaitingArcEnd:
			s.guide[2] = p
		}
	}
}

// Contains reports whether p lies within ArcDelta of the circle through the
// start point and its heading from the center falls between the headings
// of the two arc rays.
func (s *ArcShape) Contains(p Point) bool {
	if math.Abs(s.center.Distance(p)-s.Radius()) > ArcDelta {
		return false
	}
	hp := s.center.Heading(p)
	ha := s.center.Heading(s.start)
	hb := s.center.Heading(s.end)
	return (hp >= ha && hp <= hb) || (hp <= ha && hp >= hb)
}

func (s *ArcShape) Bounds() Rect {
	r := s.Radius()
	return Rect{
		Min: Point{X: s.center.X - r, Y: s.center.Y - r},
		Max: Point{X: s.center.X + r, Y: s.center.Y + r},
	}
}

func (s *ArcShape) BeginMove(p Point) {
	s.beginMove(p)
	s.old = [3]Point{s.center, s.start, s.end}
}

func (s *ArcShape) Move(p Point) {
	d := s.moveDelta(p)
	s.center = s.old[0].Add(d)
	s.start = s.old[1].Add(d)
	s.end = s.old[2].Add(d)
	s.guide = [3]Point{s.center, s.start, s.end}
}

func (s *ArcShape) EndMove(p Point) {
	s.Move(p)
	s.moving = false
}

func (s *ArcShape) Render(surface Surface, st *Style) {
	pn := pen{s: surface, st: st}

	if s.selected && s.moving {
		pn.guide()
		pn.arc(s.guide[0], s.guide[1], s.guide[2])
		return
	}

	switch s.stage {
	case StageAwaitingArcStart:
		pn.markers(s.guide[0])
		pn.guide()
		pn.line(s.guide[0], s.guide[1])
	case StageAwaitingArcEnd:
		if s.hasGuide {
			pn.markers(s.guide[0], s.guide[1])
			pn.guide()
			pn.line(s.guide[0], s.guide[1])
			pn.line(s.guide[0], s.guide[2])
			pn.arc(s.guide[0], s.guide[1], s.guide[2])
		}
	}

	if s.Complete() {
		pn.solid()
		pn.arc(s.center, s.start, s.end)
		if s.selected {
			pn.markers(s.center, s.start, s.end)
		}
	}
}
