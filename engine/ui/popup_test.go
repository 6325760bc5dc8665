package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPopupSingleSlotReplacement(t *testing.T) {
	ctx, _ := newTestContext()
	a := Hash("a")
	b := Hash("b")

	ctx.BeginFrame(Input{}, testViewport(), 0)
	ctx.OpenPopup(a, Rect{0, 0, 10, 10}, func(*Context) {})
	require.True(t, ctx.PopupOpen(a))

	ctx.OpenPopup(b, Rect{0, 0, 10, 10}, func(*Context) {})
	require.False(t, ctx.PopupOpen(a))
	require.True(t, ctx.PopupOpen(b))
	ctx.EndFrame()
}

func TestPopupRunsInOverlayPassAndPostsResult(t *testing.T) {
	ctx, _ := newTestContext()
	owner := Hash("combo")
	ran := 0

	ctx.BeginFrame(Input{}, testViewport(), 0)
	ctx.OpenPopup(owner, Rect{0, 0, 50, 20}, func(c *Context) {
		ran++
		c.PostPopupResult(3)
	})
	require.Equal(t, 0, ran) // deferred until EndFrame
	ctx.EndFrame()
	require.Equal(t, 1, ran)
	require.False(t, ctx.PopupOpen(owner)) // posting closes the popup

	// Result waits in the mailbox for the owner on the next frame.
	ctx.BeginFrame(Input{}, testViewport(), 0)
	wrong, ok := ctx.TakePopupResult(Hash("someone-else"))
	require.False(t, ok)
	require.Nil(t, wrong)

	v, ok := ctx.TakePopupResult(owner)
	require.True(t, ok)
	require.Equal(t, 3, v)

	// Consumed: a second read comes up empty.
	_, ok = ctx.TakePopupResult(owner)
	require.False(t, ok)
	ctx.EndFrame()
}

func TestPopupBlocksMainPassInput(t *testing.T) {
	ctx, _ := newTestContext()
	owner := Hash("combo")
	btn := Hash("btn")
	bounds := Rect{0, 0, 100, 40}

	ctx.BeginFrame(Input{}, testViewport(), 0)
	ctx.OpenPopup(owner, bounds, func(c *Context) { c.PopupBox(Rect{0, 50, 100, 80}) })
	ctx.EndFrame()

	// While the popup is up, main-pass widgets cannot hover or take presses.
	ctx.BeginFrame(pressAt(50, 20), testViewport(), 0)
	st := ctx.ItemBehavior(btn, bounds, false)
	require.False(t, st.Hovered)
	require.False(t, st.Pressed)
	ctx.EndFrame()
}

func TestPopupOutsideClickCancels(t *testing.T) {
	ctx, _ := newTestContext()
	owner := Hash("combo")
	anchor := Rect{0, 0, 50, 20}
	body := Rect{0, 22, 120, 80}

	ctx.BeginFrame(Input{}, testViewport(), 0)
	ctx.OpenPopup(owner, anchor, func(c *Context) { c.PopupBox(body) })
	ctx.EndFrame()
	require.True(t, ctx.PopupOpen(owner))

	// Click inside the overlay body: stays open.
	ctx.BeginFrame(pressAt(60, 60), testViewport(), 0)
	ctx.EndFrame()
	require.True(t, ctx.PopupOpen(owner))

	// Click far away: dismissed with an empty mailbox.
	ctx.BeginFrame(pressAt(500, 400), testViewport(), 0)
	ctx.EndFrame()
	require.False(t, ctx.PopupOpen(owner))

	ctx.BeginFrame(Input{}, testViewport(), 0)
	_, ok := ctx.TakePopupResult(owner)
	require.False(t, ok)
	ctx.EndFrame()
}

func TestPopupOverlayWidgetsReceiveInput(t *testing.T) {
	ctx, _ := newTestContext()
	owner := Hash("combo")
	row := Rect{0, 30, 100, 20}
	var clicked bool

	open := func() {
		ctx.OpenPopup(owner, Rect{0, 0, 100, 25}, func(c *Context) {
			c.PopupBox(Rect{0, 28, 100, 60})
			st := c.ItemBehavior(owner^Hash("row0"), row, false)
			if st.Clicked {
				clicked = true
				c.PostPopupResult(0)
			}
		})
	}

	ctx.BeginFrame(Input{}, testViewport(), 0)
	open()
	ctx.EndFrame()

	// Press lands on the row during the overlay pass.
	ctx.BeginFrame(pressAt(50, 40), testViewport(), 0)
	open()
	ctx.EndFrame()

	ctx.BeginFrame(releaseAt(50, 40), testViewport(), 0)
	open()
	ctx.EndFrame()

	require.True(t, clicked)
	v, ok := ctx.TakePopupResult(owner)
	require.True(t, ok)
	require.Equal(t, 0, v)
}
