package sketch

// PointShape is a single location, completed by one press.
type PointShape struct {
	shapeState
	at  Point
	old Point
}

// NewPoint returns an empty point awaiting its position.
func NewPoint() *PointShape {
	return &PointShape{shapeState: newShapeState(KindPoint, StageAwaitingPoint)}
}

// At returns the committed position.
func (s *PointShape) At() Point { return s.at }

func (s *PointShape) Update(ev Event, p Point) {
	if ev != EventConstructing || s.stage != StageAwaitingPoint {
		return
	}
	s.at = p
	s.advance(StageComplete)
}

func (s *PointShape) Contains(p Point) bool {
	return s.at.Distance(p) <= PointDelta
}

func (s *PointShape) Bounds() Rect {
	return Rect{Min: s.at, Max: s.at}
}

func (s *PointShape) BeginMove(p Point) {
	s.beginMove(p)
	s.old = s.at
}

func (s *PointShape) Move(p Point) {
	s.at = s.old.Add(s.moveDelta(p))
}

func (s *PointShape) EndMove(p Point) {
	s.Move(p)
	s.moving = false
}

func (s *PointShape) Render(surface Surface, st *Style) {
	if !s.Complete() {
		return
	}
	pn := pen{s: surface, st: st}

	surface.SetColor(st.LineColor)
	surface.DrawPoint(s.at.X, s.at.Y, st.PointRadius)
	_ = surface.Fill()

	if s.selected {
		// halo showing the grab radius
		pn.guide()
		pn.circle(s.at, PointDelta)
	}
}
