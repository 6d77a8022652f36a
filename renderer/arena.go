// Package renderer presents the simulation's drawing surface and population
// chart in a raylib window.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rpsls/canvas"
	"github.com/pthm-cable/rpsls/rules"
)

// ArenaView paints a canvas.Surface at a fixed screen offset.
type ArenaView struct {
	surface *canvas.Surface
	x, y    int32
	radius  float32

	background rl.Color
	border     rl.Color
	colors     [rules.NumTypes]rl.Color
}

// NewArenaView creates a view of surface with its top-left corner at (x, y).
func NewArenaView(surface *canvas.Surface, x, y int32, radius float32) *ArenaView {
	v := &ArenaView{
		surface:    surface,
		x:          x,
		y:          y,
		radius:     radius,
		background: rl.Color{R: 18, G: 22, B: 28, A: 255},
		border:     rl.Color{R: 60, G: 70, B: 80, A: 255},
	}
	for _, t := range rules.All {
		r, g, b := t.Color()
		v.colors[t] = rl.NewColor(r, g, b, 255)
	}
	return v
}

// Draw renders the display list, then the banner if one is set.
// Glyph labels are drawn on each particle when labels is true.
func (v *ArenaView) Draw(labels bool) {
	w, h := v.surface.Size()
	rl.DrawRectangle(v.x, v.y, int32(w), int32(h), v.background)

	fontSize := int32(v.radius)
	for _, s := range v.surface.Sprites() {
		cx := int32(s.X) + v.x
		cy := int32(s.Y) + v.y
		rl.DrawCircle(cx, cy, v.radius, rl.Fade(v.colors[s.Type], 0.85))
		if !labels {
			continue
		}

		glyph := string(s.Type.Glyph())
		tw := rl.MeasureText(glyph, fontSize)
		rl.DrawText(glyph, cx-tw/2, cy-fontSize/2, fontSize, rl.Black)
	}

	rl.DrawRectangleLines(v.x, v.y, int32(w), int32(h), v.border)

	if banner := v.surface.Banner(); banner != "" {
		v.drawBanner(banner, int32(w), int32(h))
	}
}

// drawBanner draws centred text over a translucent band across the arena.
func (v *ArenaView) drawBanner(text string, w, h int32) {
	const bandHeight, fontSize = 80, 28

	rl.DrawRectangle(v.x, v.y+h/2-bandHeight/2, w, bandHeight, rl.Fade(rl.Black, 0.75))
	tw := rl.MeasureText(text, fontSize)
	rl.DrawText(text, v.x+w/2-tw/2, v.y+h/2-fontSize/2, fontSize, rl.White)
}
