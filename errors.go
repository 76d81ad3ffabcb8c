package sketch

import "errors"

// Errors reported by the shape factory, registry and selection.
var (
	// ErrInvalidShapeKind is returned when a Kind outside the drawable set
	// is requested. It signals a caller or configuration bug.
	ErrInvalidShapeKind = errors.New("sketch: invalid shape kind")

	// ErrDegenerateGeometry describes a completed shape whose geometry is
	// below the minimum size. The controller discards such shapes.
	ErrDegenerateGeometry = errors.New("sketch: degenerate geometry")

	// ErrStaleReference is returned when a selection handle no longer
	// names a registry entry.
	ErrStaleReference = errors.New("sketch: stale shape reference")

	// ErrKindMismatch is returned when a shape is appended under a kind
	// other than its own.
	ErrKindMismatch = errors.New("sketch: shape kind mismatch")

	// ErrUnknownInput is returned when a button, key or modifier name
	// cannot be parsed.
	ErrUnknownInput = errors.New("sketch: unknown input name")
)
