package sketch

import (
	"errors"
	"testing"
)

func completeShape(t *testing.T, kind Kind, pts ...Point) Shape {
	t.Helper()
	s, err := NewShape(kind)
	if err != nil {
		t.Fatalf("NewShape(%v): %v", kind, err)
	}
	construct(s, pts...)
	if !s.Complete() {
		s.Update(EventConstructionFinished, pts[len(pts)-1])
	}
	return s
}

func TestRegistry_AppendGetRemove(t *testing.T) {
	r := NewRegistry()
	s := completeShape(t, KindPoint, Pt(10, 10))

	h, err := r.Append(KindPoint, s)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if h.IsNil() {
		t.Fatal("Append returned nil handle")
	}
	if got, ok := r.Get(h); !ok || got != s {
		t.Errorf("Get(h) = (%v, %v), want the appended shape", got, ok)
	}
	if r.Len() != 1 || r.LenKind(KindPoint) != 1 {
		t.Errorf("Len = %d, LenKind = %d, want 1, 1", r.Len(), r.LenKind(KindPoint))
	}

	got, ok := r.Remove(h)
	if !ok || got != s {
		t.Fatalf("Remove(h) = (%v, %v), want the appended shape", got, ok)
	}
	if r.Has(h) {
		t.Error("Has(h) = true after Remove")
	}
	if _, ok := r.Remove(h); ok {
		t.Error("second Remove(h) = true, want false")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistry_AppendErrors(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Append(KindNone, NewPoint()); !errors.Is(err, ErrInvalidShapeKind) {
		t.Errorf("Append(KindNone) error = %v, want ErrInvalidShapeKind", err)
	}
	if _, err := r.Append(KindRect, NewPoint()); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("Append(point as rect) error = %v, want ErrKindMismatch", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after failed appends, want 0", r.Len())
	}
}

func TestRegistry_OrderAndHitTest(t *testing.T) {
	r := NewRegistry()

	// Overlapping shapes at (50, 50), appended against kind order.
	polygon := completeShape(t, KindPolygon, Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100))
	rect := completeShape(t, KindRect, Pt(0, 0), Pt(100, 100))
	circle := completeShape(t, KindCircle, Pt(50, 50), Pt(50, 90))
	point := completeShape(t, KindPoint, Pt(50, 50))

	hPolygon, _ := r.Append(KindPolygon, polygon)
	hRect, _ := r.Append(KindRect, rect)
	r.Append(KindCircle, circle)
	hPoint, _ := r.Append(KindPoint, point)

	var order []Kind
	for _, s := range r.All() {
		order = append(order, s.Kind())
	}
	want := []Kind{KindPoint, KindCircle, KindRect, KindPolygon}
	if len(order) != len(want) {
		t.Fatalf("All() yielded %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("All()[%d] = %v, want %v", i, order[i], want[i])
		}
	}

	if h, _, ok := r.HitTest(Pt(50, 50)); !ok || h != hPoint {
		t.Errorf("HitTest(50,50) = %v, want the point", h)
	}
	// (5, 5) is outside the circle: the rect precedes the polygon.
	if h, _, ok := r.HitTest(Pt(5, 5)); !ok || h != hRect {
		t.Errorf("HitTest(5,5) = %v, want the rect", h)
	}
	r.Remove(hRect)
	if h, _, ok := r.HitTest(Pt(5, 5)); !ok || h != hPolygon {
		t.Errorf("HitTest(5,5) = %v, want the polygon", h)
	}
	if _, _, ok := r.HitTest(Pt(500, 500)); ok {
		t.Error("HitTest(500,500) hit a shape")
	}
}

func TestRegistry_HitTestSkipsIncomplete(t *testing.T) {
	r := NewRegistry()
	s := NewRect()
	s.Update(EventConstructing, Pt(10, 10))
	r.Append(KindRect, s)

	if _, _, ok := r.HitTest(Pt(10, 10)); ok {
		t.Error("HitTest hit an incomplete shape")
	}
}

func TestRegistry_Last(t *testing.T) {
	r := NewRegistry()
	if _, _, ok := r.Last(KindLine); ok {
		t.Fatal("Last on empty registry = true")
	}
	r.Append(KindLine, NewLine())
	s2 := NewLine()
	h2, _ := r.Append(KindLine, s2)

	h, s, ok := r.Last(KindLine)
	if !ok || h != h2 || s != Shape(s2) {
		t.Errorf("Last(KindLine) = (%v, %v), want the second line", h, ok)
	}
	if _, _, ok := r.Last(KindNone); ok {
		t.Error("Last(KindNone) = true")
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry()
	for _, k := range Kinds() {
		s, _ := NewShape(k)
		r.Append(k, s)
	}
	if r.Len() != len(Kinds()) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(Kinds()))
	}
	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", r.Len())
	}
	for range r.All() {
		t.Fatal("All() yielded after Clear")
	}
}
