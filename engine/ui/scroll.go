package ui

import "github.com/seberle/lantern/engine/colors"

// Cross-frame container state, kept in the identity store so it survives
// between frames like any other widget state.

type scrollState struct {
	Offset   float32 // pixels scrolled down
	ContentH float32 // content height measured last frame
}

type panelState struct {
	W float32
}

const (
	scrollBarW    = 8
	scrollSpeed   = 24 // pixels per wheel notch
	panelHandleW  = 6
	panelMinWidth = 40
)

// BeginScrollArea opens a vertically scrolling region of fixed viewport
// size. Content lays out as a VBox; anything outside the viewport is clipped
// and culled, and a persistent scroll offset (wheel or thumb drag) shifts the
// content. The content height used for clamping is the one measured last
// frame; the next frame's reconciliation self-corrects after content changes.
func (ctx *Context) BeginScrollArea(key string, pos Vec2, size Vec2, gap float32) {
	id := Hash(key)
	start := ctx.beginAt(pos)
	viewport := RectFromSize(start, size)
	st := StateOf[scrollState](ctx, id)

	maxScroll := maxf(0, st.ContentH-size.Y)
	if ctx.In.Wheel != 0 && ctx.inputReachable(viewport) && viewport.Contains(ctx.In.MousePos) {
		st.Offset -= ctx.In.Wheel * scrollSpeed
	}
	st.Offset = clampf(st.Offset, 0, maxScroll)

	if ctx.IsRectVisible(viewport) {
		ctx.R.DrawBox(viewport, BoxStyle{Fill: ctx.theme.ScrollTrack})
	}
	ctx.PushClipRect(viewport)

	inner := Vec2{start.X, start.Y - st.Offset}
	ctx.push(container{
		kind: containerScroll, id: id,
		start: inner, cursor: inner, gap: gap,
		viewport: viewport,
	})
}

// EndScrollArea closes the region: it records the content height for next
// frame, draws the scrollbar, pops the clip, and advances the parent by the
// viewport size (scrolled content never grows the parent).
func (ctx *Context) EndScrollArea() Vec2 {
	c, ok := ctx.pop(containerScroll)
	if !ok {
		return Vec2{}
	}
	st := StateOf[scrollState](ctx, c.id)
	st.ContentH = c.contentHeight()

	viewport := c.viewport
	if st.ContentH > viewport.H {
		ctx.scrollBar(c.id, viewport, st)
	}
	ctx.PopClipRect()
	return ctx.endInto(c)
}

func (ctx *Context) scrollBar(owner ID, viewport Rect, st *scrollState) {
	track := Rect{viewport.X + viewport.W - scrollBarW, viewport.Y, scrollBarW, viewport.H}
	thumbH := maxf(20, viewport.H*viewport.H/st.ContentH)
	maxScroll := st.ContentH - viewport.H
	travel := viewport.H - thumbH
	thumbY := viewport.Y
	if maxScroll > 0 {
		thumbY += travel * (st.Offset / maxScroll)
	}
	thumb := Rect{track.X, thumbY, scrollBarW, thumbH}

	thumbID := owner ^ Hash("scroll-thumb")
	status := ctx.ItemBehavior(thumbID, thumb, false)
	if status.Held && travel > 0 {
		rel := (ctx.In.MousePos.Y - viewport.Y - thumbH/2) / travel
		st.Offset = clampf(rel*maxScroll, 0, maxScroll)
	}

	ctx.R.DrawBox(track, BoxStyle{Fill: ctx.theme.ScrollTrack})
	ctx.R.DrawBox(thumb, ResolveStyle(status, ctx.theme.ScrollThumb).Box())
}

// BeginResizablePanel opens a vertical panel whose width persists across
// frames and is user-resizable by dragging the handle on its right edge.
// Returns the current width so callers can lay out against it.
func (ctx *Context) BeginResizablePanel(key string, pos Vec2, height, initialW, minW, maxW float32, gap float32) float32 {
	id := Hash(key)
	start := ctx.beginAt(pos)
	st := StateOf[panelState](ctx, id)
	if st.W == 0 {
		st.W = initialW
	}
	if minW < panelMinWidth {
		minW = panelMinWidth
	}

	handle := Rect{start.X + st.W - panelHandleW, start.Y, panelHandleW, height}
	status := ctx.ItemBehavior(id^Hash("resize-handle"), handle, false)
	if status.Held {
		// The handle follows the pointer even when it leaves the bounds: the
		// owner keeps interpreting movement for the whole gesture.
		st.W = clampf(ctx.In.MousePos.X-start.X, minW, maxW)
		handle.X = start.X + st.W - panelHandleW
	}

	viewport := Rect{start.X, start.Y, st.W, height}
	if ctx.IsRectVisible(viewport) {
		ctx.R.DrawBox(viewport, ctx.theme.Panel.Box())
		ctx.R.DrawBox(handle, ResolveStyle(status, ctx.theme.PanelHandle).Box())
	}
	ctx.PushClipRect(viewport)

	pad := ctx.theme.Panel.PadX
	inner := Vec2{start.X + pad, start.Y + ctx.theme.Panel.PadY}
	ctx.push(container{
		kind: containerPanel, id: id,
		start: inner, cursor: inner, gap: gap,
		viewport: viewport,
	})
	return st.W
}

// EndResizablePanel closes the panel, pops its clip, and advances the parent
// by the panel's full (persisted) size.
func (ctx *Context) EndResizablePanel() Vec2 {
	c, ok := ctx.pop(containerPanel)
	if !ok {
		return Vec2{}
	}
	ctx.PopClipRect()
	return ctx.endInto(c)
}

// PanelBorder draws a 1px outline; used by hosts that want separators
// between panels.
func (ctx *Context) PanelBorder(r Rect, col colors.Color) {
	if !ctx.IsRectVisible(r) {
		return
	}
	ctx.R.DrawBox(r, BoxStyle{Border: col, BorderWidth: 1})
}
