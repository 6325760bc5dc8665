package ui

import (
	"github.com/seberle/lantern/engine/colors"
	"github.com/seberle/lantern/engine/core"
)

// recordRenderer captures draw calls so tests can assert on what was issued.
type recordRenderer struct {
	boxes     []Rect
	texts     []string
	clipDepth int
}

func (r *recordRenderer) DrawBox(rc Rect, st BoxStyle) { r.boxes = append(r.boxes, rc) }
func (r *recordRenderer) DrawText(pos Vec2, s string, st TextStyle) {
	r.texts = append(r.texts, s)
}
func (r *recordRenderer) DrawLine(a, b Vec2, w float32, c colors.Color) {}
func (r *recordRenderer) PushClipRect(rc Rect)                          { r.clipDepth++ }
func (r *recordRenderer) PopClipRect()                                  { r.clipDepth-- }

// fixedText is a text service with a constant per-rune advance, which makes
// caret math exact in tests.
type fixedText struct {
	adv float32
}

func (f *fixedText) MeasureText(s string, st TextStyle) Vec2 {
	n := 0
	for range s {
		n++
	}
	return Vec2{float32(n) * f.adv, st.Size}
}

func (f *fixedText) HitTestPoint(s string, st TextStyle, x float32) TextHit {
	if x < 0 {
		return TextHit{Offset: 0}
	}
	var pen float32
	for i, r := range s {
		_ = r
		if x < pen+f.adv {
			if x < pen+f.adv/2 {
				return TextHit{Offset: i, Inside: true}
			}
			return TextHit{Offset: i + runeLen(s, i), Trailing: true, Inside: true}
		}
		pen += f.adv
	}
	return TextHit{Offset: len(s), Trailing: true}
}

func (f *fixedText) HitTestOffset(s string, st TextStyle, offset int) float32 {
	var x float32
	for i := range s {
		if i >= offset {
			break
		}
		x += f.adv
	}
	return x
}

func runeLen(s string, i int) int {
	for j := i + 1; j <= len(s); j++ {
		if j == len(s) || utf8Start(s[j]) {
			return j - i
		}
	}
	return 1
}

func utf8Start(b byte) bool { return b&0xC0 != 0x80 }

func newTestContext() (*Context, *recordRenderer) {
	r := &recordRenderer{}
	return New(r, &fixedText{adv: 8}), r
}

func testViewport() Rect { return Rect{0, 0, 800, 600} }

// Input builders.

func pointerAt(x, y float32) Input {
	return Input{MousePos: Vec2{x, y}}
}

func pressAt(x, y float32) Input {
	return Input{MousePos: Vec2{x, y}, MouseDown: true, MousePressed: true}
}

func holdAt(x, y float32) Input {
	return Input{MousePos: Vec2{x, y}, MouseDown: true}
}

func releaseAt(x, y float32) Input {
	return Input{MousePos: Vec2{x, y}, MouseReleased: true}
}

func keys(mods core.Mod, ks ...core.Key) Input {
	pressed := make(map[core.Key]bool, len(ks))
	held := make(map[core.Key]bool, len(ks))
	for _, k := range ks {
		pressed[k] = true
		held[k] = true
	}
	return Input{Mods: mods, pressed: pressed, held: held}
}
