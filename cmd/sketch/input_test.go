package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/gogpu/sketch"
)

func TestModifiersFrom(t *testing.T) {
	tests := []struct {
		name string
		held []ebiten.Key
		want sketch.Modifiers
	}{
		{"none", nil, 0},
		{"left ctrl", []ebiten.Key{ebiten.KeyControlLeft}, sketch.ModControl},
		{"right alt", []ebiten.Key{ebiten.KeyAltRight}, sketch.ModAlt},
		{"shift and meta", []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyMetaRight}, sketch.ModShift | sketch.ModMeta},
		{"letters ignored", []ebiten.Key{ebiten.KeyA}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pressed := func(k ebiten.Key) bool {
				for _, h := range tt.held {
					if h == k {
						return true
					}
				}
				return false
			}
			assert.Equal(t, tt.want, modifiersFrom(pressed))
		})
	}
}

func TestCursorShape(t *testing.T) {
	assert.Equal(t, ebiten.CursorShapeCrosshair, cursorShape(sketch.CursorDefault))
	assert.Equal(t, ebiten.CursorShapeMove, cursorShape(sketch.CursorMove))
	assert.Equal(t, ebiten.CursorShapeNSResize, cursorShape(sketch.CursorResizeNS))
	assert.Equal(t, ebiten.CursorShapeEWResize, cursorShape(sketch.CursorResizeEW))
	assert.Equal(t, ebiten.CursorShapeNESWResize, cursorShape(sketch.CursorResizeNESW))
	assert.Equal(t, ebiten.CursorShapeNWSEResize, cursorShape(sketch.CursorResizeNWSE))
}

func TestToolKeysCoverEveryKind(t *testing.T) {
	seen := map[sketch.Kind]bool{}
	for _, k := range toolKeys {
		seen[k] = true
	}
	assert.True(t, seen[sketch.KindNone])
	for _, k := range sketch.Kinds() {
		assert.True(t, seen[k], "no key selects %s", k)
	}
}

func TestLoadConfig_Default(t *testing.T) {
	cfg, err := loadConfig("")
	assert.NoError(t, err)
	assert.Equal(t, 1024, cfg.Canvas.Width)
}
