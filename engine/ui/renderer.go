package ui

import "github.com/seberle/lantern/engine/colors"

// BoxStyle describes a filled rect with an optional border.
type BoxStyle struct {
	Fill        colors.Color
	Border      colors.Color
	BorderWidth float32
}

// TextStyle selects the face size and tint for a text run.
type TextStyle struct {
	Size  float32
	Color colors.Color
}

// Renderer is the draw surface the UI core issues commands to. Backends
// adapt it onto whatever they batch with (see Backend for the renderer2d
// adapter). Draw order is authoritative: later calls paint on top.
type Renderer interface {
	DrawBox(r Rect, st BoxStyle)
	DrawText(pos Vec2, s string, st TextStyle)
	DrawLine(a, b Vec2, width float32, col colors.Color)
	PushClipRect(r Rect)
	PopClipRect()
}

// TextHit is the result of mapping a pixel position into a string.
// Offset is a byte offset at a rune boundary; Trailing reports whether the
// position resolved to the trailing edge of the rune before it.
type TextHit struct {
	Offset   int
	Trailing bool
	Inside   bool
}

// TextService supplies text measurement and hit testing. The UI core never
// touches font data directly; everything goes through this boundary so tests
// can substitute a fixed-advance fake.
type TextService interface {
	// MeasureText returns the pixel size of s at the given style.
	MeasureText(s string, st TextStyle) Vec2
	// HitTestPoint maps pixel x (relative to the run origin) to the nearest
	// rune boundary, breaking ties toward the trailing edge.
	HitTestPoint(s string, st TextStyle, x float32) TextHit
	// HitTestOffset returns the pixel x of the caret before byte offset.
	HitTestOffset(s string, st TextStyle, offset int) float32
}
