package ui

import "log"

// Container stack. Each Begin* pushes a cursor-accumulator onto the stack,
// every widget calls Advance after placing itself, and End* pops and folds
// the accumulated size into the parent cursor so nested layouts compose.
// The accumulation rules live on the container value itself so the dry-run
// Sizer replays them without any drawing or clipping side effects.

type containerKind uint8

const (
	containerHBox containerKind = iota
	containerVBox
	containerGrid
	containerScroll
	containerPanel
)

func (k containerKind) String() string {
	switch k {
	case containerHBox:
		return "HBox"
	case containerVBox:
		return "VBox"
	case containerGrid:
		return "Grid"
	case containerScroll:
		return "ScrollArea"
	case containerPanel:
		return "ResizablePanel"
	}
	return "?"
}

type container struct {
	kind   containerKind
	id     ID
	start  Vec2
	cursor Vec2
	gap    float32
	count  int

	accW, accH float32
	maxW, maxH float32 // max element extent on the cross axis

	// Grid only.
	cols     int
	col      int
	cellW    float32
	rowGap   float32
	rowH     float32
	rowsDone int

	// Scroll/panel only: the on-screen region the content is clipped to.
	viewport Rect
}

// placement returns where the next widget goes. The inter-element gap is
// applied here, ahead of the element, so the accumulated total for N
// elements is sum(sizes) + gap*(N-1).
func (c *container) placement() Vec2 {
	switch c.kind {
	case containerHBox:
		if c.count > 0 {
			return Vec2{c.cursor.X + c.gap, c.cursor.Y}
		}
	case containerVBox, containerScroll, containerPanel:
		if c.count > 0 {
			return Vec2{c.cursor.X, c.cursor.Y + c.gap}
		}
	case containerGrid:
		// Gaps are folded into advance for the fixed cell walk.
	}
	return c.cursor
}

func (c *container) advance(size Vec2) {
	switch c.kind {
	case containerHBox:
		if c.count > 0 {
			c.cursor.X += c.gap
			c.accW += c.gap
		}
		c.cursor.X += size.X
		c.accW += size.X
		c.maxH = maxf(c.maxH, size.Y)
	case containerVBox, containerScroll, containerPanel:
		if c.count > 0 {
			c.cursor.Y += c.gap
			c.accH += c.gap
		}
		c.cursor.Y += size.Y
		c.accH += size.Y
		c.maxW = maxf(c.maxW, size.X)
	case containerGrid:
		c.rowH = maxf(c.rowH, size.Y)
		c.col++
		if c.col >= c.cols {
			// Row complete: fold its height into the running total and wrap.
			if c.rowsDone > 0 {
				c.accH += c.rowGap
			}
			c.accH += c.rowH
			c.rowsDone++
			c.col = 0
			c.rowH = 0
			c.cursor.X = c.start.X
			c.cursor.Y = c.start.Y + c.accH + c.rowGap
		} else {
			c.cursor.X += c.cellW + c.gap
		}
	}
	c.count++
}

// totalSize reports the accumulated extent of the container's content.
func (c *container) totalSize() Vec2 {
	switch c.kind {
	case containerHBox:
		return Vec2{c.accW, c.maxH}
	case containerVBox:
		return Vec2{c.maxW, c.accH}
	case containerGrid:
		colsUsed := c.cols
		if c.count < c.cols {
			colsUsed = c.count
		}
		w := float32(colsUsed) * c.cellW
		if colsUsed > 1 {
			w += float32(colsUsed-1) * c.gap
		}
		h := c.accH
		if c.col > 0 { // pending partial row
			if c.rowsDone > 0 {
				h += c.rowGap
			}
			h += c.rowH
		}
		return Vec2{w, h}
	case containerScroll, containerPanel:
		return c.viewport.Size()
	}
	return Vec2{}
}

// contentHeight is the inner accumulated height, used by scroll areas where
// totalSize reports the viewport instead.
func (c *container) contentHeight() float32 { return c.accH }

// ---- Context-facing stack operations ----

// CursorPos returns the placement position for the next widget in the
// innermost container.
func (ctx *Context) CursorPos() Vec2 {
	if top := ctx.top(); top != nil {
		return top.placement()
	}
	log.Printf("ui: widget placed with no open container; using viewport origin")
	return ctx.Viewport.Pos()
}

// Advance must be called after every widget with its full size — including
// widgets culled by the clip test, since layout correctness requires every
// widget to occupy its space whether or not it is rendered.
func (ctx *Context) Advance(size Vec2) {
	if top := ctx.top(); top != nil {
		top.advance(size)
		return
	}
	log.Printf("ui: Advance with no open container")
}

func (ctx *Context) top() *container {
	if len(ctx.containers) == 0 {
		return nil
	}
	return &ctx.containers[len(ctx.containers)-1]
}

func (ctx *Context) push(c container) {
	ctx.containers = append(ctx.containers, c)
}

// pop validates the expected kind, logging and best-effort recovering on a
// malformed Begin/End sequence instead of panicking; a bad frame must not
// take the host loop down.
func (ctx *Context) pop(kind containerKind) (container, bool) {
	if len(ctx.containers) == 0 {
		log.Printf("ui: End%s without matching Begin", kind)
		return container{}, false
	}
	c := ctx.containers[len(ctx.containers)-1]
	ctx.containers = ctx.containers[:len(ctx.containers)-1]
	if c.kind != kind {
		log.Printf("ui: End%s closes a %s container; layout may be off this frame", kind, c.kind)
	}
	return c, true
}

// beginAt resolves the start position for a new container: nested containers
// ignore the caller position and start at the parent's cursor.
func (ctx *Context) beginAt(pos Vec2) Vec2 {
	if top := ctx.top(); top != nil {
		return top.placement()
	}
	return pos
}

// endInto folds a finished container's total size into the parent, if any.
func (ctx *Context) endInto(c container) Vec2 {
	size := c.totalSize()
	if top := ctx.top(); top != nil {
		top.advance(size)
	}
	return size
}

// ---- container surface ----

// BeginHBox opens a horizontal row at pos (ignored when nested).
func (ctx *Context) BeginHBox(key string, pos Vec2, gap float32) {
	start := ctx.beginAt(pos)
	ctx.push(container{kind: containerHBox, id: Hash(key), start: start, cursor: start, gap: gap})
}

// EndHBox closes the row and returns its accumulated size.
func (ctx *Context) EndHBox() Vec2 {
	c, ok := ctx.pop(containerHBox)
	if !ok {
		return Vec2{}
	}
	return ctx.endInto(c)
}

// BeginVBox opens a vertical column at pos (ignored when nested).
func (ctx *Context) BeginVBox(key string, pos Vec2, gap float32) {
	start := ctx.beginAt(pos)
	ctx.push(container{kind: containerVBox, id: Hash(key), start: start, cursor: start, gap: gap})
}

// EndVBox closes the column and returns its accumulated size.
func (ctx *Context) EndVBox() Vec2 {
	c, ok := ctx.pop(containerVBox)
	if !ok {
		return Vec2{}
	}
	return ctx.endInto(c)
}

// BeginGrid opens a fixed-cell-width grid: cols columns of cellW, gap between
// columns and rowGap between rows. Cells advance left to right; the cols-th
// element wraps to a new row whose height is the max of its cells.
func (ctx *Context) BeginGrid(key string, pos Vec2, cols int, cellW, gap, rowGap float32) {
	if cols < 1 {
		log.Printf("ui: BeginGrid %q with cols=%d; using 1", key, cols)
		cols = 1
	}
	start := ctx.beginAt(pos)
	ctx.push(container{
		kind: containerGrid, id: Hash(key), start: start, cursor: start,
		gap: gap, cols: cols, cellW: cellW, rowGap: rowGap,
	})
}

// EndGrid closes the grid and returns its accumulated size, including any
// partial final row.
func (ctx *Context) EndGrid() Vec2 {
	c, ok := ctx.pop(containerGrid)
	if !ok {
		return Vec2{}
	}
	return ctx.endInto(c)
}

// ---- clip stack & culling ----

// PushClipRect narrows the active clip to r (intersected with the current
// innermost clip) and mirrors it to the renderer.
func (ctx *Context) PushClipRect(r Rect) {
	if len(ctx.clips) > 0 {
		r = r.Intersect(ctx.clips[len(ctx.clips)-1])
	}
	ctx.clips = append(ctx.clips, r)
	ctx.R.PushClipRect(r)
}

func (ctx *Context) PopClipRect() {
	if len(ctx.clips) == 0 {
		log.Printf("ui: PopClipRect with empty clip stack")
		return
	}
	ctx.clips = ctx.clips[:len(ctx.clips)-1]
	ctx.R.PopClipRect()
}

// IsRectVisible tests r against the innermost active clip. Widgets that fail
// it skip their draw calls but must still Advance with their full size.
func (ctx *Context) IsRectVisible(r Rect) bool {
	if len(ctx.clips) == 0 {
		return true
	}
	return r.Overlaps(ctx.clips[len(ctx.clips)-1])
}

// ---- dry-run sizing ----

// Sizer replays a container's accumulation rules without touching the stack,
// the renderer, or the clip state, letting a parent size a child region
// before it is actually drawn in the same pass.
type Sizer struct{ c container }

func NewHBoxSizer(gap float32) *Sizer {
	return &Sizer{c: container{kind: containerHBox, gap: gap}}
}

func NewVBoxSizer(gap float32) *Sizer {
	return &Sizer{c: container{kind: containerVBox, gap: gap}}
}

func NewGridSizer(cols int, cellW, gap, rowGap float32) *Sizer {
	if cols < 1 {
		cols = 1
	}
	return &Sizer{c: container{kind: containerGrid, cols: cols, cellW: cellW, gap: gap, rowGap: rowGap}}
}

// Add accumulates one element of the given size.
func (s *Sizer) Add(size Vec2) { s.c.advance(size) }

// Size reports the total accumulated extent so far.
func (s *Sizer) Size() Vec2 { return s.c.totalSize() }

// Count reports how many elements were added.
func (s *Sizer) Count() int { return s.c.count }
