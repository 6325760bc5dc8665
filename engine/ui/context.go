package ui

import "log"

// Context owns all per-UI state: the identity store, the container stack,
// input ownership, and the popup slot. One Context per window; multiple
// independent UI contexts must not share one, or their ownership flags and
// mailboxes cross-talk.
//
// Everything here is single-threaded and frame-synchronous: the host calls
// BeginFrame, issues widget calls in draw order, then EndFrame. That call
// order is authoritative for both layout nesting and input tie-breaks.
type Context struct {
	R Renderer
	T TextService

	In       Input
	Viewport Rect

	store      stateStore
	containers []container
	clips      []Rect

	frame   int
	time    float64
	inFrame bool

	// Input arbitration.
	potentialTarget ID // frontmost hovered candidate this frame; last registration wins
	activeOwner     ID // holds the in-progress pointer gesture, press to release
	ownerSince      int
	focused         ID
	focusClaimed    bool

	// Popup layer (see popup.go).
	popup       *popupRequest
	popupBounds Rect
	mailbox     popupResult
	inOverlay   bool

	theme *Theme
}

func New(r Renderer, t TextService) *Context {
	return &Context{
		R:          r,
		T:          t,
		store:      newStateStore(),
		containers: make([]container, 0, 16),
		clips:      make([]Rect, 0, 8),
		theme:      DefaultTheme(),
	}
}

// Theme returns the active theme.
func (ctx *Context) Theme() *Theme { return ctx.theme }

// SetTheme swaps the active theme; nil restores the default.
func (ctx *Context) SetTheme(t *Theme) {
	if t == nil {
		t = DefaultTheme()
	}
	ctx.theme = t
}

// Time is the accumulated UI clock in seconds, advanced by BeginFrame.
func (ctx *Context) Time() float64 { return ctx.time }

// Frame is the current frame counter.
func (ctx *Context) Frame() int { return ctx.frame }

// BeginFrame starts a new frame with the given input snapshot and viewport.
// A missing EndFrame from the previous frame is logged and healed.
func (ctx *Context) BeginFrame(in Input, viewport Rect, dt float64) {
	if ctx.inFrame {
		log.Printf("ui: BeginFrame called twice without EndFrame; resetting frame state")
		ctx.recoverStacks()
	}
	ctx.frame++
	ctx.time += dt
	ctx.In = in
	ctx.Viewport = viewport
	ctx.potentialTarget = idNone
	ctx.focusClaimed = false
	ctx.popupBounds = Rect{}
	ctx.inFrame = true
}

// EndFrame runs the deferred popup pass, resolves press/release bookkeeping,
// and validates that every Begin* was matched by an End*.
func (ctx *Context) EndFrame() {
	if !ctx.inFrame {
		log.Printf("ui: EndFrame without BeginFrame; ignoring")
		return
	}
	if len(ctx.containers) > 0 {
		log.Printf("ui: %d container(s) left open at end of frame; clearing stack", len(ctx.containers))
		ctx.recoverStacks()
	}

	ctx.runPopupPass()

	if ctx.In.MouseReleased {
		ctx.activeOwner = idNone
	}
	if ctx.In.MousePressed && !ctx.focusClaimed {
		ctx.focused = idNone
	}
	ctx.inFrame = false
}

func (ctx *Context) recoverStacks() {
	ctx.containers = ctx.containers[:0]
	// Unwind any clip rects still pushed on the renderer.
	for range ctx.clips {
		ctx.R.PopClipRect()
	}
	ctx.clips = ctx.clips[:0]
}

// ---- input ownership arbitration ----

// ItemStatus is the per-frame interaction result for one widget.
type ItemStatus struct {
	Hovered  bool
	Held     bool // this widget is the active press owner
	Pressed  bool // acquired the press this frame
	Clicked  bool // released this frame while hovered and owning
	Focused  bool
	Disabled bool
}

// ItemBehavior registers an interactive widget with the arbitration pass and
// returns its interaction state. Call it once per widget per frame, in draw
// order; later calls overwrite earlier hover registrations, so the topmost
// widget at a point wins.
func (ctx *Context) ItemBehavior(id ID, bounds Rect, disabled bool) ItemStatus {
	if !ctx.inFrame {
		log.Printf("ui: widget call outside BeginFrame/EndFrame")
		return ItemStatus{}
	}
	if disabled {
		// A disabled widget forces its own flags false unconditionally; it
		// never hovers, never captures, and drops an ownership it held.
		if ctx.activeOwner == id {
			ctx.activeOwner = idNone
		}
		return ItemStatus{Disabled: true}
	}

	ctx.notePopupBounds(bounds)
	hovered := ctx.inputReachable(bounds) && bounds.Contains(ctx.In.MousePos)
	if hovered {
		ctx.potentialTarget = id
	}

	var st ItemStatus
	st.Hovered = hovered
	if hovered && ctx.In.MousePressed {
		st.Pressed = ctx.TrySetActivePress(id)
	}
	st.Held = ctx.activeOwner == id
	st.Clicked = st.Held && ctx.In.MouseReleased && hovered
	st.Focused = ctx.focused == id
	return st
}

// inputReachable reports whether pointer input can land on bounds this
// frame: the rect must survive clipping, and while a popup is active only
// the overlay pass receives input.
func (ctx *Context) inputReachable(bounds Rect) bool {
	if ctx.popup != nil && !ctx.inOverlay {
		return false
	}
	return ctx.IsRectVisible(bounds)
}

// TrySetActivePress attempts to make id the active press owner. It succeeds
// only on a press-this-frame, only for the current potential target, and
// only when no capture from an earlier frame is in progress. Within the
// press frame a later-drawn (topmost) widget may take the capture over an
// earlier one; once the frame ends the owner is locked until release.
func (ctx *Context) TrySetActivePress(id ID) bool {
	if !ctx.In.MousePressed {
		return false
	}
	if id != ctx.potentialTarget {
		return false
	}
	if ctx.activeOwner != idNone && ctx.ownerSince != ctx.frame {
		return false
	}
	ctx.activeOwner = id
	ctx.ownerSince = ctx.frame
	ctx.focused = id
	ctx.focusClaimed = true
	return true
}

// ActiveOwner returns the widget currently holding the pointer gesture.
func (ctx *Context) ActiveOwner() ID { return ctx.activeOwner }

// PotentialTarget returns the frontmost hovered candidate so far this frame.
func (ctx *Context) PotentialTarget() ID { return ctx.potentialTarget }

// Focused returns the keyboard-focus target.
func (ctx *Context) Focused() ID { return ctx.focused }

// SetFocus moves keyboard focus programmatically.
func (ctx *Context) SetFocus(id ID) {
	ctx.focused = id
	ctx.focusClaimed = true
}

// ClearActive drops an in-progress capture; widgets use this to abandon a
// gesture (e.g. Escape while dragging).
func (ctx *Context) ClearActive(id ID) {
	if ctx.activeOwner == id {
		ctx.activeOwner = idNone
	}
}
