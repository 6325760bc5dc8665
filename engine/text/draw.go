package text

import "github.com/seberle/lantern/engine/gfx/renderer2d"

// AdvanceOf returns the pen advance for r following prev, in native pixels.
// Unknown runes fall back to the space advance; prev < 0 means no kerning.
func (f *Font) AdvanceOf(prev, r rune) float32 {
	g, ok := f.Glyphs[r]
	if !ok {
		if g, ok = f.Glyphs[' ']; !ok {
			return 0
		}
	}
	adv := g.Advance
	if prev >= 0 {
		adv += f.Kern(prev, r)
	}
	return adv
}

// DrawText draws s with top-left origin (x,y) at the given pixel size.
// Positive Y goes downward (matching the 2D projection).
func DrawText(r2d *renderer2d.Renderer2D, f *Font, x, y float32, s string, size float32, color [4]float32) {
	scale := size / f.SizePx
	penX := x
	baseY := y + f.Ascent*scale
	var prev rune = -1

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += f.LineHeight() * scale
			prev = -1
			continue
		}

		g, ok := f.Glyphs[r]
		if !ok {
			penX += f.AdvanceOf(prev, r) * scale
			prev = r
			continue
		}

		if prev >= 0 {
			penX += f.Kern(prev, r) * scale
		}

		// Baseline-aligned quad center (Y-down system): top = baseline - bearingY.
		left := penX + g.BearingX*scale
		top := baseY - g.BearingY*scale
		w := float32(g.W) * scale
		h := float32(g.H) * scale

		r2d.DrawTexturedQuadUV(
			left+w*0.5, top+h*0.5,
			w, h,
			f.Texture, color, 0,
			g.U0, g.V0, g.U1, g.V1,
		)

		penX += g.Advance * scale
		prev = r
	}
}

// MeasureText returns the bounding size of s at the given pixel size.
func MeasureText(f *Font, s string, size float32) (width, height float32) {
	var lineW float32
	var prev rune = -1
	lineH := f.LineHeight()
	height = lineH

	for _, r := range s {
		if r == '\n' {
			if lineW > width {
				width = lineW
			}
			lineW = 0
			height += lineH
			prev = -1
			continue
		}
		lineW += f.AdvanceOf(prev, r)
		prev = r
	}

	if lineW > width {
		width = lineW
	}
	scale := size / f.SizePx
	return width * scale, height * scale
}

// Baseline-to-top distance (useful to position text by top-left).
func (f *Font) BaselineToTop() float32    { return f.Ascent }
func (f *Font) BaselineToBottom() float32 { return -f.Descent }
