package ui

import (
	"github.com/seberle/lantern/engine/scratch"
)

// Widget surface. Every widget takes a string key, reads input and
// persistent state, places itself through the container stack, issues draw
// calls (unless culled), and calls Advance with its full size so layout
// stays correct either way.

// Label draws static text and advances by its measured size.
func (ctx *Context) Label(text string) {
	ctx.LabelStyled(text, TextStyle{Size: ctx.theme.TextSize, Color: ctx.theme.Text})
}

// LabelStyled draws static text with an explicit style.
func (ctx *Context) LabelStyled(text string, st TextStyle) {
	size := ctx.T.MeasureText(text, st)
	pos := ctx.CursorPos()
	if ctx.IsRectVisible(RectFromSize(pos, size)) {
		ctx.R.DrawText(pos, text, st)
	}
	ctx.Advance(size)
}

// Spacer occupies layout space without drawing.
func (ctx *Context) Spacer(size Vec2) {
	ctx.Advance(size)
}

// Button draws a push button and reports whether it was clicked this frame
// (pressed and released on it).
func (ctx *Context) Button(key, label string) bool {
	return ctx.ButtonEx(key, label, false)
}

func (ctx *Context) ButtonEx(key, label string, disabled bool) bool {
	id := Hash(key)
	base := ctx.theme.Button.Normal
	textSize := ctx.T.MeasureText(label, base.TextStyle())
	size := Vec2{textSize.X + 2*base.PadX, textSize.Y + 2*base.PadY}
	pos := ctx.CursorPos()
	bounds := RectFromSize(pos, size)

	status := ctx.ItemBehavior(id, bounds, disabled)
	if ctx.IsRectVisible(bounds) {
		s := ResolveStyle(status, ctx.theme.Button)
		ctx.R.DrawBox(bounds, s.Box())
		ctx.R.DrawText(Vec2{pos.X + s.PadX, pos.Y + s.PadY}, label, s.TextStyle())
	}
	ctx.Advance(size)
	return status.Clicked
}

// ButtonSize reports the size Button would occupy; useful for dry-run
// sizing a region before drawing it.
func (ctx *Context) ButtonSize(label string) Vec2 {
	base := ctx.theme.Button.Normal
	textSize := ctx.T.MeasureText(label, base.TextStyle())
	return Vec2{textSize.X + 2*base.PadX, textSize.Y + 2*base.PadY}
}

// Checkbox toggles *value on click; returns true when it changed.
func (ctx *Context) Checkbox(key, label string, value *bool) bool {
	id := Hash(key)
	base := ctx.theme.Checkbox.Normal
	ts := TextStyle{Size: base.TextSize, Color: base.Text}
	textSize := ctx.T.MeasureText(label, ts)
	boxSide := textSize.Y
	const gap = 6
	size := Vec2{boxSide + gap + textSize.X, textSize.Y}
	pos := ctx.CursorPos()
	bounds := RectFromSize(pos, size)

	status := ctx.ItemBehavior(id, bounds, false)
	changed := false
	if status.Clicked {
		*value = !*value
		changed = true
	}

	if ctx.IsRectVisible(bounds) {
		s := ResolveStyle(status, ctx.theme.Checkbox)
		box := Rect{pos.X, pos.Y, boxSide, boxSide}
		ctx.R.DrawBox(box, s.Box())
		if *value {
			inner := box.Expand(-boxSide * 0.25)
			ctx.R.DrawBox(inner, BoxStyle{Fill: s.Text})
		}
		ctx.R.DrawText(Vec2{pos.X + boxSide + gap, pos.Y}, label, ts)
	}
	ctx.Advance(size)
	return changed
}

const (
	sliderTrackH = 6
	sliderKnobW  = 12
	sliderH      = 18
)

// Slider drags *value across [min,max]; returns true while the value is
// changing. The active owner keeps the gesture even when the pointer leaves
// the bounds.
func (ctx *Context) Slider(key string, value *float32, min, max, width float32) bool {
	id := Hash(key)
	pos := ctx.CursorPos()
	size := Vec2{width, sliderH}
	bounds := RectFromSize(pos, size)

	status := ctx.ItemBehavior(id, bounds, false)
	changed := false
	if status.Held && max > min {
		v := min + clampf((ctx.In.MousePos.X-pos.X)/width, 0, 1)*(max-min)
		if v != *value {
			*value = v
			changed = true
		}
	}

	if ctx.IsRectVisible(bounds) {
		track := Rect{pos.X, pos.Y + (sliderH-sliderTrackH)/2, width, sliderTrackH}
		ctx.R.DrawBox(track, BoxStyle{Fill: ctx.theme.SliderTrack})

		t := float32(0)
		if max > min {
			t = (*value - min) / (max - min)
		}
		knobX := pos.X + clampf(t, 0, 1)*(width-sliderKnobW)
		knob := Rect{knobX, pos.Y, sliderKnobW, sliderH}
		s := ResolveStyle(status, ctx.theme.SliderKnob)
		ctx.R.DrawBox(knob, s.Box())

		// Value readout, formatted through the frame scratch buffer.
		m := scratch.Mark()
		scratch.F().F32(*value, 2)
		ctx.R.DrawText(Vec2{pos.X + width + 8, pos.Y}, scratch.ViewFrom(m),
			TextStyle{Size: ctx.theme.TextSize, Color: ctx.theme.Text})
	}
	ctx.Advance(size)
	return changed
}

// Combo shows the selected option and opens a popup list on click. The
// chosen index comes back through the popup mailbox on the frame after the
// choice, which is when Combo reports a change.
func (ctx *Context) Combo(key string, options []string, selected *int, width float32) bool {
	id := Hash(key)
	base := ctx.theme.Combo.Normal
	size := Vec2{width, ctx.theme.TextSize + 2*base.PadY}
	pos := ctx.CursorPos()
	bounds := RectFromSize(pos, size)

	changed := false
	if v, ok := ctx.TakePopupResult(id); ok {
		if idx, ok := v.(int); ok && idx >= 0 && idx < len(options) {
			if idx != *selected {
				*selected = idx
				changed = true
			}
		}
	}

	status := ctx.ItemBehavior(id, bounds, false)
	if status.Clicked {
		if ctx.PopupOpen(id) {
			ctx.ClosePopup(id)
		} else {
			anchor := bounds
			opts := options
			ctx.OpenPopup(id, anchor, func(c *Context) {
				c.comboOverlay(id, anchor, opts)
			})
		}
	}

	if ctx.IsRectVisible(bounds) {
		s := ResolveStyle(status, ctx.theme.Combo)
		ctx.R.DrawBox(bounds, s.Box())
		label := ""
		if *selected >= 0 && *selected < len(options) {
			label = options[*selected]
		}
		ctx.R.DrawText(Vec2{pos.X + s.PadX, pos.Y + s.PadY}, label, s.TextStyle())
		// Drop-down arrow.
		ax := pos.X + width - s.PadX - 8
		ay := pos.Y + size.Y/2
		ctx.R.DrawLine(Vec2{ax, ay - 2}, Vec2{ax + 4, ay + 3}, 1, s.Text)
		ctx.R.DrawLine(Vec2{ax + 4, ay + 3}, Vec2{ax + 8, ay - 2}, 1, s.Text)
	}
	ctx.Advance(size)
	return changed
}

// comboOverlay is the deferred popup body: an option list anchored under the
// combo box. Runs during the end-of-frame overlay pass.
func (ctx *Context) comboOverlay(owner ID, anchor Rect, options []string) {
	base := ctx.theme.Combo.Normal
	rowH := ctx.theme.TextSize + 2*base.PadY
	panel := Rect{anchor.X, anchor.Y + anchor.H + 2, anchor.W, rowH * float32(len(options))}
	ctx.PopupBox(panel)

	for i, opt := range options {
		row := Rect{panel.X, panel.Y + float32(i)*rowH, panel.W, rowH}
		id := owner ^ Hash(opt) ^ ID(i+1)
		status := ctx.ItemBehavior(id, row, false)
		s := ResolveStyle(status, ctx.theme.Combo)
		if status.Hovered {
			ctx.R.DrawBox(row, BoxStyle{Fill: s.Fill})
		}
		ctx.R.DrawText(Vec2{row.X + s.PadX, row.Y + s.PadY}, opt, s.TextStyle())
		if status.Clicked {
			ctx.PostPopupResult(i)
			return
		}
	}
}
