package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/sketch"
)

// mouseButtons maps ebiten buttons to controller buttons.
var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	b  sketch.Button
}{
	{ebiten.MouseButtonLeft, sketch.ButtonLeft},
	{ebiten.MouseButtonRight, sketch.ButtonRight},
	{ebiten.MouseButtonMiddle, sketch.ButtonMiddle},
}

// toolKeys selects the drawing tool. 0 leaves drawing mode.
var toolKeys = map[ebiten.Key]sketch.Kind{
	ebiten.KeyDigit0: sketch.KindNone,
	ebiten.KeyDigit1: sketch.KindPoint,
	ebiten.KeyDigit2: sketch.KindLine,
	ebiten.KeyDigit3: sketch.KindArc,
	ebiten.KeyDigit4: sketch.KindPolyline,
	ebiten.KeyDigit5: sketch.KindCircle,
	ebiten.KeyDigit6: sketch.KindRect,
	ebiten.KeyDigit7: sketch.KindEllipse,
	ebiten.KeyDigit8: sketch.KindPolygon,
}

// commandKeys maps ebiten keys to controller keys.
var commandKeys = map[ebiten.Key]sketch.Key{
	ebiten.KeyA:         sketch.KeyA,
	ebiten.KeyDelete:    sketch.KeyDelete,
	ebiten.KeyBackspace: sketch.KeyDelete,
	ebiten.KeyEscape:    sketch.KeyEscape,
}

// modifiersFrom reports the held modifiers using pressed to query keys.
func modifiersFrom(pressed func(ebiten.Key) bool) sketch.Modifiers {
	var mods sketch.Modifiers
	if pressed(ebiten.KeyShiftLeft) || pressed(ebiten.KeyShiftRight) {
		mods |= sketch.ModShift
	}
	if pressed(ebiten.KeyControlLeft) || pressed(ebiten.KeyControlRight) {
		mods |= sketch.ModControl
	}
	if pressed(ebiten.KeyAltLeft) || pressed(ebiten.KeyAltRight) {
		mods |= sketch.ModAlt
	}
	if pressed(ebiten.KeyMetaLeft) || pressed(ebiten.KeyMetaRight) {
		mods |= sketch.ModMeta
	}
	return mods
}

func cursorShape(c sketch.Cursor) ebiten.CursorShapeType {
	switch c {
	case sketch.CursorMove:
		return ebiten.CursorShapeMove
	case sketch.CursorResizeNS:
		return ebiten.CursorShapeNSResize
	case sketch.CursorResizeEW:
		return ebiten.CursorShapeEWResize
	case sketch.CursorResizeNESW:
		return ebiten.CursorShapeNESWResize
	case sketch.CursorResizeNWSE:
		return ebiten.CursorShapeNWSEResize
	}
	return ebiten.CursorShapeCrosshair
}
