package ui

import (
	"log"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/rivo/uniseg"

	"github.com/seberle/lantern/engine/core"
)

// Single-line editable text field. Caret and anchor are byte offsets into
// the UTF-8 text, always kept on grapheme-cluster boundaries so multi-rune
// characters (emoji, combining sequences) are never split by insertion,
// navigation, or deletion.

const (
	undoDepth    = 50
	caretMargin  = 4
	blinkPeriod  = 1.0 // seconds; caret visible for the first half
	caretWidthPx = 1
)

type editSnapshot struct {
	Text    string
	Caret   int
	Anchor  int
	ScrollX float32
}

type textEditState struct {
	Caret   int
	Anchor  int
	ScrollX float32

	blinkStart float64
	undo       []editSnapshot
	redo       []editSnapshot
}

// TextOpts tunes an InputText field.
type TextOpts struct {
	// MaxLength caps the text in bytes; 0 means unlimited. Insertion stops
	// at the last whole grapheme cluster that fits.
	MaxLength   int
	Disabled    bool
	Placeholder string
}

// InputText draws an editable text field over *text and returns true when
// the text changed this frame.
func (ctx *Context) InputText(key string, text *string, width float32, opts TextOpts) bool {
	id := Hash(key)
	st := StateOf[textEditState](ctx, id)
	base := ctx.theme.Field.Normal
	ts := base.TextStyle()
	size := Vec2{width, ts.Size + 2*base.PadY}
	pos := ctx.CursorPos()
	bounds := RectFromSize(pos, size)
	inner := Rect{pos.X + base.PadX, pos.Y + base.PadY, width - 2*base.PadX, ts.Size}

	// The caller may have replaced the text since last frame; clamp stale
	// offsets back into range before anything reads them.
	st.clampTo(*text)

	status := ctx.ItemBehavior(id, bounds, opts.Disabled)
	changed := false

	if status.Pressed || status.Held {
		relX := ctx.In.MousePos.X - inner.X + st.ScrollX
		hit := ctx.T.HitTestPoint(*text, ts, relX)
		st.Caret = snapBoundary(*text, hit.Offset)
		if status.Pressed && !ctx.In.ShiftHeld() {
			// Plain press collapses the selection to the hit point; a drag
			// afterwards extends from here since only the caret follows.
			st.Anchor = st.Caret
		}
		st.resetBlink(ctx.time)
	}

	if status.Focused && !opts.Disabled {
		if ctx.textEditKeys(st, text, opts) {
			changed = true
		}
		if len(ctx.In.Chars) > 0 {
			if st.insert(text, string(ctx.In.Chars), opts.MaxLength) {
				changed = true
			}
			st.resetBlink(ctx.time)
		}
		ctx.ensureCaretVisible(st, *text, ts, inner.W)
	}

	if ctx.IsRectVisible(bounds) {
		ctx.drawTextField(st, *text, opts, status, bounds, inner, ts)
	}
	ctx.Advance(size)
	return changed
}

// textEditKeys handles navigation, deletion, and undo/redo for the focused
// field. Returns true if the text mutated.
func (ctx *Context) textEditKeys(st *textEditState, text *string, opts TextOpts) bool {
	in := &ctx.In
	shift := in.ShiftHeld()
	word := in.WordModHeld()
	changed := false
	acted := false

	if in.KeyPressed(core.KeyLeft) {
		st.moveLeft(*text, word, shift)
		acted = true
	}
	if in.KeyPressed(core.KeyRight) {
		st.moveRight(*text, word, shift)
		acted = true
	}
	if in.KeyPressed(core.KeyHome) {
		st.moveTo(0, shift)
		acted = true
	}
	if in.KeyPressed(core.KeyEnd) {
		st.moveTo(len(*text), shift)
		acted = true
	}
	if in.KeyPressed(core.KeyBackspace) {
		changed = st.backspace(text, word) || changed
		acted = true
	}
	if in.KeyPressed(core.KeyDelete) {
		changed = st.deleteForward(text, word) || changed
		acted = true
	}
	if word {
		if in.KeyPressed(core.KeyA) {
			st.selectAll(*text)
			acted = true
		}
		if in.KeyPressed(core.KeyZ) {
			if shift {
				changed = st.redoOp(text) || changed
			} else {
				changed = st.undoOp(text) || changed
			}
			acted = true
		}
		if in.KeyPressed(core.KeyY) {
			changed = st.redoOp(text) || changed
			acted = true
		}
		if in.KeyPressed(core.KeyC) {
			st.copySelection(*text)
			acted = true
		}
		if in.KeyPressed(core.KeyX) {
			changed = st.cutSelection(text) || changed
			acted = true
		}
		if in.KeyPressed(core.KeyV) {
			changed = st.paste(text, opts.MaxLength) || changed
			acted = true
		}
	}

	if acted {
		st.resetBlink(ctx.time)
	}
	return changed
}

func (ctx *Context) drawTextField(st *textEditState, text string, opts TextOpts, status ItemStatus, bounds, inner Rect, ts TextStyle) {
	s := ResolveStyle(status, ctx.theme.Field)
	if status.Focused {
		s.Border = ctx.theme.Caret
	}
	ctx.R.DrawBox(bounds, s.Box())

	clip := inner.Expand(2)
	ctx.PushClipRect(clip)
	origin := Vec2{inner.X - st.ScrollX, inner.Y}

	if lo, hi := st.selection(); hi > lo {
		x0 := ctx.T.HitTestOffset(text, ts, lo)
		x1 := ctx.T.HitTestOffset(text, ts, hi)
		sel := Rect{origin.X + x0, inner.Y, x1 - x0, inner.H}
		ctx.R.DrawBox(sel, BoxStyle{Fill: ctx.theme.Selection})
	}

	if text == "" && opts.Placeholder != "" && !status.Focused {
		faded := ts
		faded.Color = faded.Color.WithAlpha(0.4)
		ctx.R.DrawText(origin, opts.Placeholder, faded)
	} else {
		ctx.R.DrawText(origin, text, ts)
	}

	if status.Focused && st.caretVisible(ctx.time) {
		cx := origin.X + ctx.T.HitTestOffset(text, ts, st.Caret)
		caret := Rect{cx, inner.Y, caretWidthPx, inner.H}
		ctx.R.DrawBox(caret, BoxStyle{Fill: ctx.theme.Caret})
	}
	ctx.PopClipRect()
}

// ensureCaretVisible shifts the horizontal scroll window by the minimum
// amount that keeps the caret (plus a small margin) on screen, clamped to
// [0, contentWidth - visibleWidth].
func (ctx *Context) ensureCaretVisible(st *textEditState, text string, ts TextStyle, visibleW float32) {
	caretX := ctx.T.HitTestOffset(text, ts, st.Caret)
	if caretX-st.ScrollX < caretMargin {
		st.ScrollX = caretX - caretMargin
	}
	if caretX-st.ScrollX > visibleW-caretMargin {
		st.ScrollX = caretX - (visibleW - caretMargin)
	}
	contentW := ctx.T.MeasureText(text, ts).X
	st.ScrollX = clampf(st.ScrollX, 0, maxf(0, contentW-visibleW))
}

// ---- selection & caret primitives ----

func (st *textEditState) selection() (lo, hi int) {
	if st.Caret < st.Anchor {
		return st.Caret, st.Anchor
	}
	return st.Anchor, st.Caret
}

func (st *textEditState) hasSelection() bool { return st.Caret != st.Anchor }

func (st *textEditState) clampTo(text string) {
	if st.Caret > len(text) {
		st.Caret = len(text)
	}
	if st.Anchor > len(text) {
		st.Anchor = len(text)
	}
}

func (st *textEditState) resetBlink(now float64) { st.blinkStart = now }

func (st *textEditState) caretVisible(now float64) bool {
	return math.Mod(now-st.blinkStart, blinkPeriod) < blinkPeriod/2
}

func (st *textEditState) moveTo(offset int, shift bool) {
	st.Caret = offset
	if !shift {
		st.Anchor = offset
	}
}

// moveLeft collapses an existing selection to its left edge when Shift is
// not held; otherwise it steps one grapheme cluster (or word) back.
func (st *textEditState) moveLeft(text string, word, shift bool) {
	if !shift && st.hasSelection() && !word {
		lo, _ := st.selection()
		st.moveTo(lo, false)
		return
	}
	var n int
	if word {
		n = prevWordBoundary(text, st.Caret)
	} else {
		n = prevBoundary(text, st.Caret)
	}
	st.moveTo(n, shift)
}

func (st *textEditState) moveRight(text string, word, shift bool) {
	if !shift && st.hasSelection() && !word {
		_, hi := st.selection()
		st.moveTo(hi, false)
		return
	}
	var n int
	if word {
		n = nextWordBoundary(text, st.Caret)
	} else {
		n = nextBoundary(text, st.Caret)
	}
	st.moveTo(n, shift)
}

func (st *textEditState) selectAll(text string) {
	st.Anchor = 0
	st.Caret = len(text)
}

// ---- mutations ----

func (st *textEditState) snapshot(text string) editSnapshot {
	return editSnapshot{Text: text, Caret: st.Caret, Anchor: st.Anchor, ScrollX: st.ScrollX}
}

func (st *textEditState) restore(text *string, snap editSnapshot) {
	*text = snap.Text
	st.Caret = snap.Caret
	st.Anchor = snap.Anchor
	st.ScrollX = snap.ScrollX
}

// beginEdit records the pre-mutation snapshot and invalidates the redo
// stack. The push is skipped when it would duplicate the current top, which
// debounces repeated no-op triggers.
func (st *textEditState) beginEdit(text string) {
	snap := st.snapshot(text)
	if n := len(st.undo); n > 0 && st.undo[n-1] == snap {
		st.redo = st.redo[:0]
		return
	}
	if len(st.undo) >= undoDepth {
		copy(st.undo, st.undo[1:])
		st.undo = st.undo[:undoDepth-1]
	}
	st.undo = append(st.undo, snap)
	st.redo = st.redo[:0]
}

// deleteSelection removes the selected range; caller must have pushed the
// undo snapshot already.
func (st *textEditState) deleteSelection(text *string) {
	lo, hi := st.selection()
	*text = (*text)[:lo] + (*text)[hi:]
	st.Caret = lo
	st.Anchor = lo
}

// insert deletes any selection, then inserts input one whole grapheme
// cluster at a time, stopping at the last cluster that keeps the text within
// maxLen bytes. Returns true if the text changed.
func (st *textEditState) insert(text *string, input string, maxLen int) bool {
	if input == "" {
		return false
	}
	// Work out whether anything will change before touching the undo stack:
	// a full field with no selection is a pure no-op.
	if !st.hasSelection() && maxLen > 0 {
		first, _, _, _ := uniseg.FirstGraphemeClusterInString(input, -1)
		if len(*text)+len(first) > maxLen {
			return false
		}
	}

	st.beginEdit(*text)
	if st.hasSelection() {
		st.deleteSelection(text)
	}
	state := -1
	rest := input
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if maxLen > 0 && len(*text)+len(cluster) > maxLen {
			break
		}
		*text = (*text)[:st.Caret] + cluster + (*text)[st.Caret:]
		st.Caret += len(cluster)
	}
	st.Anchor = st.Caret
	return true
}

// backspace removes the selection, or one grapheme cluster (one word under
// the word modifier) before the caret.
func (st *textEditState) backspace(text *string, word bool) bool {
	if st.hasSelection() {
		st.beginEdit(*text)
		st.deleteSelection(text)
		return true
	}
	if st.Caret == 0 {
		return false
	}
	var lo int
	if word {
		lo = prevWordBoundary(*text, st.Caret)
	} else {
		lo = prevBoundary(*text, st.Caret)
	}
	st.beginEdit(*text)
	*text = (*text)[:lo] + (*text)[st.Caret:]
	st.Caret = lo
	st.Anchor = lo
	return true
}

// deleteForward removes the selection, or one grapheme cluster (one word
// under the word modifier) after the caret.
func (st *textEditState) deleteForward(text *string, word bool) bool {
	if st.hasSelection() {
		st.beginEdit(*text)
		st.deleteSelection(text)
		return true
	}
	if st.Caret >= len(*text) {
		return false
	}
	var hi int
	if word {
		hi = nextWordBoundary(*text, st.Caret)
	} else {
		hi = nextBoundary(*text, st.Caret)
	}
	st.beginEdit(*text)
	*text = (*text)[:st.Caret] + (*text)[hi:]
	st.Anchor = st.Caret
	return true
}

func (st *textEditState) copySelection(text string) {
	lo, hi := st.selection()
	if hi == lo {
		return
	}
	if err := clipboard.WriteAll(text[lo:hi]); err != nil {
		log.Printf("ui: clipboard write: %v", err)
	}
}

func (st *textEditState) cutSelection(text *string) bool {
	if !st.hasSelection() {
		return false
	}
	st.copySelection(*text)
	st.beginEdit(*text)
	st.deleteSelection(text)
	return true
}

// paste inserts the clipboard contents, flattening line breaks since the
// field is single-line.
func (st *textEditState) paste(text *string, maxLen int) bool {
	clip, err := clipboard.ReadAll()
	if err != nil || clip == "" {
		return false
	}
	clip = strings.ReplaceAll(clip, "\r", "")
	clip = strings.ReplaceAll(clip, "\n", " ")
	return st.insert(text, clip, maxLen)
}

// undoOp pops the undo stack, parking the current state on redo.
func (st *textEditState) undoOp(text *string) bool {
	n := len(st.undo)
	if n == 0 {
		return false
	}
	snap := st.undo[n-1]
	st.undo = st.undo[:n-1]
	st.redo = append(st.redo, st.snapshot(*text))
	st.restore(text, snap)
	return true
}

func (st *textEditState) redoOp(text *string) bool {
	n := len(st.redo)
	if n == 0 {
		return false
	}
	snap := st.redo[n-1]
	st.redo = st.redo[:n-1]
	st.undo = append(st.undo, st.snapshot(*text))
	st.restore(text, snap)
	return true
}

// ---- grapheme & word boundaries ----

// nextBoundary returns the grapheme-cluster boundary after byte offset i.
func nextBoundary(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
	return i + len(cluster)
}

// prevBoundary returns the grapheme-cluster boundary before byte offset i.
func prevBoundary(s string, i int) int {
	if i <= 0 {
		return 0
	}
	pos, prev := 0, 0
	state := -1
	for pos < i && pos < len(s) {
		var cluster string
		cluster, _, _, state = uniseg.FirstGraphemeClusterInString(s[pos:], state)
		prev = pos
		pos += len(cluster)
	}
	return prev
}

// snapBoundary clamps an arbitrary byte offset onto the nearest preceding
// grapheme-cluster boundary.
func snapBoundary(s string, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(s) {
		return len(s)
	}
	pos := 0
	state := -1
	for pos < len(s) {
		var cluster string
		cluster, _, _, state = uniseg.FirstGraphemeClusterInString(s[pos:], state)
		next := pos + len(cluster)
		if next > i {
			return pos
		}
		if next == i {
			return i
		}
		pos = next
	}
	return len(s)
}

// nextWordBoundary scans forward past any whitespace, then to the end of the
// following word.
func nextWordBoundary(s string, i int) int {
	for i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += n
	}
	for i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			break
		}
		i += n
	}
	return i
}

// prevWordBoundary scans backward past any whitespace, then to the start of
// the preceding word.
func prevWordBoundary(s string, i int) int {
	trimmed := strings.TrimRightFunc(s[:i], unicode.IsSpace)
	i = len(trimmed)
	for i > 0 {
		r, n := utf8.DecodeLastRuneInString(s[:i])
		if unicode.IsSpace(r) {
			break
		}
		i -= n
	}
	return i
}
