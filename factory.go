package sketch

import "fmt"

// NewShape returns a new, empty shape of the given kind. Its step counter
// is zero and it is not complete.
//
// An unknown kind is a programming error: it is logged and reported as
// ErrInvalidShapeKind.
func NewShape(kind Kind) (Shape, error) {
	switch kind {
	case KindPoint:
		return NewPoint(), nil
	case KindLine:
		return NewLine(), nil
	case KindArc:
		return NewArc(), nil
	case KindPolyline:
		return NewPolyline(), nil
	case KindCircle:
		return NewCircle(), nil
	case KindRect:
		return NewRect(), nil
	case KindEllipse:
		return NewEllipse(), nil
	case KindPolygon:
		return NewPolygon(), nil
	}
	err := fmt.Errorf("%w: %v", ErrInvalidShapeKind, kind)
	Logger().Error("sketch: cannot create shape", "kind", uint8(kind), "err", err)
	return nil, err
}
