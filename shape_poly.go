package sketch

// vertexPath is the vertex list shared by PolygonShape and PolylineShape.
// Each press appends a vertex; construction ends only on an explicit
// EventConstructionFinished.
type vertexPath struct {
	pts      []Point
	old      []Point
	guide    []Point
	hasGuide bool
}

func (v *vertexPath) construct(st *shapeState, ev Event, p Point) {
	if st.Complete() {
		return
	}
	switch ev {
	case EventConstructing:
		v.pts = append(v.pts, p)
		v.hasGuide = true
		st.advance(StageCollectingVertices)
	case EventConstructionFinished:
		v.hasGuide = false
		v.guide = append(v.guide[:0], v.pts...)
		st.advance(StageComplete)
	case EventGuidePreview:
		v.guide = append(append(v.guide[:0], v.pts...), p)
	}
}

func (v *vertexPath) snapshot(st *shapeState, p Point) {
	st.beginMove(p)
	v.old = append(v.old[:0], v.pts...)
}

func (v *vertexPath) translate(st *shapeState, p Point) {
	v.pts = translated(v.old, st.moveDelta(p))
	v.guide = append(v.guide[:0], v.pts...)
}

// Vertices returns a copy of the committed vertex list.
func (v *vertexPath) Vertices() []Point {
	return append([]Point(nil), v.pts...)
}

// insideEvenOdd reports whether p is inside the polygon pts under the
// even-odd fill rule. Fewer than three vertices enclose nothing.
func insideEvenOdd(pts []Point, p Point) bool {
	if len(pts) < 3 {
		return false
	}
	inside := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// PolygonShape is a closed polygon of any number of vertices.
type PolygonShape struct {
	shapeState
	vertexPath
}

// NewPolygon returns an empty polygon awaiting its first vertex.
func NewPolygon() *PolygonShape {
	return &PolygonShape{shapeState: newShapeState(KindPolygon, StageAwaitingPoint)}
}

func (s *PolygonShape) Update(ev Event, p Point) { s.construct(&s.shapeState, ev, p) }
func (s *PolygonShape) Contains(p Point) bool    { return insideEvenOdd(s.pts, p) }
func (s *PolygonShape) Bounds() Rect             { return boundsOf(s.pts...) }
func (s *PolygonShape) BeginMove(p Point)        { s.snapshot(&s.shapeState, p) }
func (s *PolygonShape) Move(p Point)             { s.translate(&s.shapeState, p) }

func (s *PolygonShape) EndMove(p Point) {
	s.Move(p)
	s.moving = false
}

func (s *PolygonShape) Render(surface Surface, st *Style) {
	pn := pen{s: surface, st: st}

	if s.selected && s.moving {
		pn.guide()
		pn.path(s.guide, true)
		return
	}

	if s.hasGuide {
		pn.guide()
		pn.path(s.guide, true)
	}

	if s.Complete() {
		pn.solid()
		pn.path(s.pts, true)
		if s.selected {
			pn.markers(s.pts...)
		}
	}
}

// PolylineShape is an open chain of segments.
type PolylineShape struct {
	shapeState
	vertexPath
}

// NewPolyline returns an empty polyline awaiting its first vertex.
func NewPolyline() *PolylineShape {
	return &PolylineShape{shapeState: newShapeState(KindPolyline, StageAwaitingPoint)}
}

func (s *PolylineShape) Update(ev Event, p Point) { s.construct(&s.shapeState, ev, p) }
func (s *PolylineShape) Bounds() Rect             { return boundsOf(s.pts...) }
func (s *PolylineShape) BeginMove(p Point)        { s.snapshot(&s.shapeState, p) }
func (s *PolylineShape) Move(p Point)             { s.translate(&s.shapeState, p) }

// Contains applies the polygon's even-odd test to the vertices, so a
// path that encloses no area is never hit.
func (s *PolylineShape) Contains(p Point) bool { return insideEvenOdd(s.pts, p) }

func (s *PolylineShape) EndMove(p Point) {
	s.Move(p)
	s.moving = false
}

func (s *PolylineShape) Render(surface Surface, st *Style) {
	pn := pen{s: surface, st: st}

	if s.selected && s.moving {
		pn.guide()
		pn.path(s.guide, false)
		return
	}

	if s.hasGuide {
		pn.guide()
		pn.path(s.guide, false)
	}

	if s.Complete() {
		pn.solid()
		pn.path(s.pts, false)
		if s.selected {
			pn.markers(s.pts...)
		}
	}
}
