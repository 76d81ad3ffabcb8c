package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/integration/ggsurface"
)

type game struct {
	ctl    *sketch.Controller
	canvas *ggsurface.Canvas
	frame  *ebiten.Image

	held      sketch.Buttons
	last      sketch.Point
	cursor    ebiten.CursorShapeType
	cursorSet bool
	dirty     bool
}

func newGame(ctl *sketch.Controller, canvas *ggsurface.Canvas) *game {
	return &game{
		ctl:    ctl,
		canvas: canvas,
		dirty:  true,
	}
}

func (g *game) Update() error {
	mods := modifiersFrom(ebiten.IsKeyPressed)
	x, y := ebiten.CursorPosition()
	pos := sketch.Pt(float64(x), float64(y))

	for _, m := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(m.eb) {
			g.held = g.held.With(m.b)
			g.ctl.PointerDown(m.b, pos, mods)
		}
	}
	if pos != g.last {
		g.ctl.PointerMove(pos, g.held, mods)
		g.last = pos
	}
	for _, m := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(m.eb) {
			g.held = g.held.Without(m.b)
			g.ctl.PointerUp(m.b, pos, mods)
		}
	}

	for k, kind := range toolKeys {
		if inpututil.IsKeyJustPressed(k) && kind != g.ctl.Kind() {
			if err := g.ctl.SetKind(kind); err != nil {
				return err
			}
			g.dirty = true
		}
	}
	for k, key := range commandKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.ctl.KeyDown(key, mods)
		}
	}

	if c := cursorShape(g.ctl.Cursor()); !g.cursorSet || c != g.cursor {
		ebiten.SetCursorShape(c)
		g.cursor, g.cursorSet = c, true
	}
	if g.ctl.RedrawRequested() {
		g.dirty = true
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.canvas.Width(), g.canvas.Height()
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(w, h)
		g.dirty = true
	}
	if g.dirty {
		if err := g.canvas.Render(g.ctl); err != nil {
			sketch.Logger().Error("sketch: render", "err", err)
			return
		}
		g.frame.WritePixels(g.canvas.Image().Pix)
		g.dirty = false
	}
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.canvas.Width() || outsideHeight != g.canvas.Height() {
		if err := g.canvas.Resize(outsideWidth, outsideHeight); err != nil {
			sketch.Logger().Warn("sketch: resize", "err", err)
			return g.canvas.Width(), g.canvas.Height()
		}
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}
