package ui

import "log"

// The popup layer holds at most one request at a time. A widget opens a
// popup with a draw function; the engine runs that function once per frame
// after the main content pass, so the overlay always paints on top. Results
// travel back through a single-slot mailbox consumed by the owner on its
// next update — a request/response handshake across the frame gap, not
// concurrency.

type popupRequest struct {
	owner  ID
	anchor Rect
	draw   func(*Context)
}

type popupResult struct {
	owner ID
	value any
	set   bool
}

// OpenPopup replaces any existing popup request; the previous owner is not
// notified and will simply never see a mailbox result.
func (ctx *Context) OpenPopup(owner ID, anchor Rect, draw func(*Context)) {
	ctx.popup = &popupRequest{owner: owner, anchor: anchor, draw: draw}
}

// ClosePopup dismisses the active popup if owner matches (idNone force-closes).
func (ctx *Context) ClosePopup(owner ID) {
	if ctx.popup == nil {
		return
	}
	if owner != idNone && ctx.popup.owner != owner {
		return
	}
	ctx.popup = nil
}

// PopupOpen reports whether owner's popup is the active one.
func (ctx *Context) PopupOpen(owner ID) bool {
	return ctx.popup != nil && ctx.popup.owner == owner
}

// PostPopupResult stores a value for the popup owner and closes the popup.
// Must be called from within the popup's draw function.
func (ctx *Context) PostPopupResult(value any) {
	if ctx.popup == nil || !ctx.inOverlay {
		log.Printf("ui: PostPopupResult with no active popup pass")
		return
	}
	ctx.mailbox = popupResult{owner: ctx.popup.owner, value: value, set: true}
	ctx.popup = nil
}

// TakePopupResult returns and clears the mailbox value if it belongs to
// owner. Anyone else's read leaves the slot untouched.
func (ctx *Context) TakePopupResult(owner ID) (any, bool) {
	if !ctx.mailbox.set || ctx.mailbox.owner != owner {
		return nil, false
	}
	v := ctx.mailbox.value
	ctx.mailbox = popupResult{}
	return v, true
}

// runPopupPass executes the deferred overlay at end of frame and applies the
// outside-click cancel rule: a press this frame that landed neither in the
// popup's drawn bounds nor on its anchor dismisses it with an empty mailbox.
func (ctx *Context) runPopupPass() {
	p := ctx.popup
	if p == nil {
		return
	}

	ctx.inOverlay = true
	ctx.popupBounds = Rect{}
	p.draw(ctx)
	ctx.inOverlay = false

	if ctx.popup == nil {
		// The draw function posted a result (or closed itself).
		return
	}
	if ctx.In.MousePressed {
		inside := ctx.popupBounds.Contains(ctx.In.MousePos) || p.anchor.Contains(ctx.In.MousePos)
		if !inside {
			ctx.popup = nil
		}
	}
}

// PopupBox draws the overlay background panel and registers its footprint
// for the outside-click test.
func (ctx *Context) PopupBox(r Rect) {
	ctx.notePopupBounds(r)
	ctx.R.DrawBox(r, ctx.theme.Popup.Box())
}

// notePopupBounds grows the recorded overlay footprint; widgets drawn during
// the popup pass call this through their behavior registration.
func (ctx *Context) notePopupBounds(r Rect) {
	if ctx.inOverlay {
		ctx.popupBounds = ctx.popupBounds.Union(r)
	}
}
