package sketch

import (
	"fmt"
	"strings"
)

// Kind identifies the geometric primitive a Shape represents.
// The numeric order of the constants is the order in which the Registry
// visits kinds for hit-testing and rendering.
type Kind uint8

const (
	// KindNone is the zero value; no tool is active.
	KindNone Kind = iota

	KindPoint
	KindLine
	KindArc
	KindPolyline
	KindCircle
	KindRect
	KindEllipse
	KindPolygon

	kindEnd
)

var kindNames = [...]string{
	KindNone:     "none",
	KindPoint:    "point",
	KindLine:     "line",
	KindArc:      "arc",
	KindPolyline: "polyline",
	KindCircle:   "circle",
	KindRect:     "rect",
	KindEllipse:  "ellipse",
	KindPolygon:  "polygon",
}

// Kinds returns every drawable kind in registry order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindEnd-KindPoint)
	for k := KindPoint; k < kindEnd; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k names a drawable primitive.
func (k Kind) Valid() bool {
	return k > KindNone && k < kindEnd
}

// String returns the lower-case tool name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Title returns the display name used in status lines and toolbars.
func (k Kind) Title() string {
	if !k.Valid() {
		return "None"
	}
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Steps returns the number of construction events that complete a shape of
// kind k. Polygons and polylines have no fixed count; they report
// (0, false) and complete only on an explicit ConstructionFinished event.
func (k Kind) Steps() (n int, fixed bool) {
	switch k {
	case KindPoint:
		return 1, true
	case KindLine, KindCircle, KindRect, KindEllipse:
		return 2, true
	case KindArc:
		return 3, true
	default:
		return 0, false
	}
}

// Resizable reports whether shapes of kind k support edge drag-resizing.
func (k Kind) Resizable() bool {
	return k == KindRect || k == KindEllipse
}

// ParseKind converts a tool name such as "rect" or "Polygon" to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k := KindPoint; k < kindEnd; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	switch name {
	case "rectangle":
		return KindRect, nil
	case "pt":
		return KindPoint, nil
	}
	return KindNone, fmt.Errorf("%w: %q", ErrInvalidShapeKind, s)
}
