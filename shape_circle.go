package sketch

// CircleShape is pressed at its center and released on its rim.
type CircleShape struct {
	shapeState
	center, rim Point
	old         [2]Point
	guide       [2]Point
	hasGuide    bool
}

// NewCircle returns an empty circle awaiting its center.
func NewCircle() *CircleShape {
	return &CircleShape{shapeState: newShapeState(KindCircle, StageAwaitingCenter)}
}

// Center returns the committed center.
func (s *CircleShape) Center() Point { return s.center }

// Radius returns the committed radius.
func (s *CircleShape) Radius() float64 { return s.center.Distance(s.rim) }

func (s *CircleShape) Update(ev Event, p Point) {
	switch s.stage {
	case StageAwaitingCenter:
		if ev != EventConstructing {
			return
		}
		s.center = p
		s.guide = [2]Point{p, p}
		s.advance(StageAwaitingRadius)
	case StageAwaitingRadius:
		switch ev {
		case EventConstructing, EventConstructionFinished:
			s.rim = p
			s.guide = [2]Point{s.center, s.rim}
			s.hasGuide = false
			s.advance(StageComplete)
		case EventGuidePreview:
			s.guide = [2]Point{s.center, p}
			s.hasGuide = true
		}
	}
}

// Contains reports whether p is inside or on the circle.
func (s *CircleShape) Contains(p Point) bool {
	return s.center.Distance(p) <= s.Radius()
}

func (s *CircleShape) Bounds() Rect {
	r := s.Radius()
	return Rect{
		Min: Point{X: s.center.X - r, Y: s.center.Y - r},
		Max: Point{X: s.center.X + r, Y: s.center.Y + r},
	}
}

func (s *CircleShape) BeginMove(p Point) {
	s.beginMove(p)
	s.old = [2]Point{s.center, s.rim}
}

func (s *CircleShape) Move(p Point) {
	d := s.moveDelta(p)
	s.center = s.old[0].Add(d)
	s.rim = s.old[1].Add(d)
	s.guide = [2]Point{s.center, s.rim}
}

func (s *CircleShape) EndMove(p Point) {
	s.Move(p)
	s.moving = false
}

func (s *CircleShape) Render(surface Surface, st *Style) {
	pn := pen{s: surface, st: st}
	c, rim := s.guide[0], s.guide[1]

	if s.selected && s.moving {
		pn.guide()
		pn.circle(c, c.Distance(rim))
		return
	}

	if s.stage == StageAwaitingRadius && s.hasGuide {
		pn.markers(c, rim)
		pn.guide()
		pn.line(c, rim)
		pn.circle(c, c.Distance(rim))
	}

	if s.Complete() {
		pn.solid()
		pn.circle(s.center, s.Radius())
		if s.selected {
			pn.markers(s.center, s.rim)
		}
	}
}
