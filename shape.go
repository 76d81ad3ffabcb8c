package sketch

// Event is a construction input fed to a Shape.
type Event uint8

const (
	// EventConstructing commits the pointer position as the next piece of
	// geometry (a pointer press).
	EventConstructing Event = iota + 1

	// EventConstructionFinished ends construction. Two-point kinds take
	// their final point from it (a pointer release); polygons and
	// polylines complete on it (an explicit finish action).
	EventConstructionFinished

	// EventGuidePreview moves the guide geometry to the live pointer
	// position. It never changes committed geometry or the step counter
	// and may fire any number of times.
	EventGuidePreview
)

func (e Event) String() string {
	switch e {
	case EventConstructing:
		return "constructing"
	case EventConstructionFinished:
		return "finished"
	case EventGuidePreview:
		return "guide"
	default:
		return "unknown"
	}
}

// Stage names the piece of geometry a shape under construction is waiting
// for. Each variant walks its own fixed sequence of stages and ends in
// StageComplete.
type Stage uint8

const (
	StageAwaitingPoint Stage = iota
	StageAwaitingStart
	StageAwaitingEnd
	StageAwaitingCenter
	StageAwaitingRadius
	StageAwaitingArcStart
	StageAwaitingArcEnd
	StageAwaitingCorner
	StageAwaitingOppositeCorner
	StageCollectingVertices
	StageComplete
)

var stageNames = [...]string{
	StageAwaitingPoint:          "awaiting point",
	StageAwaitingStart:          "awaiting start",
	StageAwaitingEnd:            "awaiting end",
	StageAwaitingCenter:         "awaiting center",
	StageAwaitingRadius:         "awaiting radius point",
	StageAwaitingArcStart:       "awaiting arc start",
	StageAwaitingArcEnd:         "awaiting arc end",
	StageAwaitingCorner:         "awaiting corner",
	StageAwaitingOppositeCorner: "awaiting opposite corner",
	StageCollectingVertices:     "collecting vertices",
	StageComplete:               "complete",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// Hit-test tolerances in canvas pixels.
const (
	PointDelta = 10.0
	LineDelta  = 5.0
	ArcDelta   = 10.0
	RectDelta  = 20.0
)

// Shape is one geometric primitive together with its construction state
// machine, hit test and move logic.
//
// Contains must only be called on complete shapes; the result for a shape
// still under construction is unspecified.
type Shape interface {
	Kind() Kind

	// Step returns the number of construction events accepted so far.
	Step() int
	Stage() Stage
	Complete() bool

	// Valid reports false for a completed shape whose geometry is
	// degenerate. Such shapes must be discarded by the caller.
	Valid() bool

	Selected() bool
	SetSelected(selected bool)

	// Update advances construction. Events that do not apply to the
	// current stage, and every event after completion, are ignored.
	Update(ev Event, p Point)

	Contains(p Point) bool
	Bounds() Rect

	// BeginMove snapshots the committed geometry and the cursor position.
	// Move writes snapshot + (p - start) into committed and guide geometry,
	// so repeated calls never accumulate drift. EndMove applies the final
	// position and leaves the moving state.
	BeginMove(p Point)
	Move(p Point)
	EndMove(p Point)
	Moving() bool

	// Render draws the shape. It must not mutate the shape.
	Render(s Surface, st *Style)
}

// Resizer is implemented by shapes that support edge and corner
// drag-resizing (rectangles and ellipses).
type Resizer interface {
	Shape

	// ResizeCursorAt returns the resize affordance at p, or CursorDefault.
	ResizeCursorAt(p Point) Cursor

	// BeginResize arms a resize drag using the affordance at p. It returns
	// false when p is not in a resize zone.
	BeginResize(p Point) bool
	DragResize(p Point)
	EndResize()
	Resizing() bool
}

// shapeState is the bookkeeping shared by every variant.
type shapeState struct {
	kind      Kind
	step      int
	stage     Stage
	selected  bool
	moving    bool
	invalid   bool
	moveStart Point
}

func newShapeState(kind Kind, initial Stage) shapeState {
	return shapeState{kind: kind, stage: initial}
}

func (s *shapeState) Kind() Kind                { return s.kind }
func (s *shapeState) Step() int                 { return s.step }
func (s *shapeState) Stage() Stage              { return s.stage }
func (s *shapeState) Complete() bool            { return s.stage == StageComplete }
func (s *shapeState) Valid() bool               { return !s.invalid }
func (s *shapeState) Selected() bool            { return s.selected }
func (s *shapeState) SetSelected(selected bool) { s.selected = selected }
func (s *shapeState) Moving() bool              { return s.moving }

// advance records one accepted construction event and enters next.
func (s *shapeState) advance(next Stage) {
	s.step++
	s.stage = next
	Logger().Debug("sketch: construction step",
		"kind", s.kind, "step", s.step, "stage", next)
}

func (s *shapeState) beginMove(p Point) {
	s.moving = true
	s.moveStart = p
}

func (s *shapeState) moveDelta(p Point) Point {
	return p.Sub(s.moveStart)
}

// translated returns pts shifted by d in a new slice.
func translated(pts []Point, d Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(d)
	}
	return out
}
