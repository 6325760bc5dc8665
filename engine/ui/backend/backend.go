// Package backend adapts the engine's batched 2D renderer and font atlas
// onto the draw and text boundaries the UI core talks to.
package backend

import (
	"math"

	"github.com/rivo/uniseg"

	"github.com/seberle/lantern/engine/colors"
	"github.com/seberle/lantern/engine/gfx/renderer2d"
	"github.com/seberle/lantern/engine/text"
	"github.com/seberle/lantern/engine/ui"
)

// Renderer issues UI draw commands through a Renderer2D batch.
type Renderer struct {
	R2D  *renderer2d.Renderer2D
	Font *text.Font
}

// New returns the renderer/text pair for a Context, sharing one font atlas.
func New(r2d *renderer2d.Renderer2D, font *text.Font) (*Renderer, *TextSource) {
	return &Renderer{R2D: r2d, Font: font}, &TextSource{Font: font}
}

func (b *Renderer) DrawBox(r ui.Rect, st ui.BoxStyle) {
	cx := r.X + r.W*0.5
	cy := r.Y + r.H*0.5
	if st.Fill[3] > 0 {
		b.R2D.DrawQuad(cx, cy, r.W, r.H, st.Fill, 0)
	}
	if st.BorderWidth > 0 && st.Border[3] > 0 {
		b.R2D.DrawRect(r.X, r.Y, r.W, r.H, st.BorderWidth, st.Border)
	}
}

func (b *Renderer) DrawText(pos ui.Vec2, s string, st ui.TextStyle) {
	text.DrawText(b.R2D, b.Font, pos.X, pos.Y, s, st.Size, st.Color)
}

func (b *Renderer) DrawLine(a, c ui.Vec2, width float32, col colors.Color) {
	b.R2D.DrawLine(a.X, a.Y, c.X, c.Y, width, col)
}

func (b *Renderer) PushClipRect(r ui.Rect) {
	x := int(math.Floor(float64(r.X)))
	y := int(math.Floor(float64(r.Y)))
	w := int(math.Ceil(float64(r.X+r.W))) - x
	h := int(math.Ceil(float64(r.Y+r.H))) - y
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.R2D.PushClip(x, y, w, h)
}

func (b *Renderer) PopClipRect() {
	b.R2D.PopClip()
}

// TextSource implements measurement and hit testing over a font atlas.
type TextSource struct {
	Font *text.Font
}

func (t *TextSource) scale(st ui.TextStyle) float32 {
	if st.Size <= 0 {
		return 1
	}
	return st.Size / t.Font.SizePx
}

func (t *TextSource) MeasureText(s string, st ui.TextStyle) ui.Vec2 {
	w, h := text.MeasureText(t.Font, s, st.Size)
	return ui.Vec2{X: w, Y: h}
}

// HitTestPoint walks grapheme clusters so a position inside a multi-rune
// cluster resolves to one of its edges, never its interior.
func (t *TextSource) HitTestPoint(s string, st ui.TextStyle, x float32) ui.TextHit {
	if x < 0 {
		return ui.TextHit{Offset: 0}
	}
	native := x / t.scale(st)

	var pen float32
	var prev rune = -1
	pos := 0
	state := -1
	for pos < len(s) {
		var cluster string
		cluster, _, _, state = uniseg.FirstGraphemeClusterInString(s[pos:], state)
		var adv float32
		for _, r := range cluster {
			adv += t.Font.AdvanceOf(prev, r)
			prev = r
		}
		if native < pen+adv {
			if native < pen+adv*0.5 {
				return ui.TextHit{Offset: pos, Inside: true}
			}
			return ui.TextHit{Offset: pos + len(cluster), Trailing: true, Inside: true}
		}
		pen += adv
		pos += len(cluster)
	}
	return ui.TextHit{Offset: len(s), Trailing: true}
}

func (t *TextSource) HitTestOffset(s string, st ui.TextStyle, offset int) float32 {
	var x float32
	var prev rune = -1
	for i, r := range s {
		if i >= offset {
			break
		}
		x += t.Font.AdvanceOf(prev, r)
		prev = r
	}
	return x * t.scale(st)
}
