package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLastRegisteredHoverWins(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.BeginFrame(pointerAt(50, 50), testViewport(), 0)

	under := Hash("under")
	over := Hash("over")
	bounds := Rect{0, 0, 100, 100}

	stUnder := ctx.ItemBehavior(under, bounds, false)
	stOver := ctx.ItemBehavior(over, bounds, false)
	ctx.EndFrame()

	require.True(t, stUnder.Hovered)
	require.True(t, stOver.Hovered)
	require.Equal(t, over, ctx.PotentialTarget())
}

func TestTopmostTakesPressOnOverlap(t *testing.T) {
	ctx, _ := newTestContext()
	bounds := Rect{0, 0, 100, 100}
	under := Hash("under")
	over := Hash("over")

	// Single pass in draw order: the later-drawn widget must end up owning
	// the press even though the earlier one acquired it first.
	ctx.BeginFrame(pressAt(50, 50), testViewport(), 0)
	ctx.ItemBehavior(under, bounds, false)
	ctx.ItemBehavior(over, bounds, false)
	ctx.EndFrame()

	require.Equal(t, over, ctx.ActiveOwner())
}

func TestCapturePersistsOutsideBounds(t *testing.T) {
	ctx, _ := newTestContext()
	id := Hash("drag")
	bounds := Rect{0, 0, 100, 100}

	ctx.BeginFrame(pressAt(50, 50), testViewport(), 0)
	st := ctx.ItemBehavior(id, bounds, false)
	ctx.EndFrame()
	require.True(t, st.Pressed)

	// Pointer leaves the bounds while held: still the owner, not hovered.
	ctx.BeginFrame(holdAt(500, 500), testViewport(), 0)
	st = ctx.ItemBehavior(id, bounds, false)
	ctx.EndFrame()
	require.True(t, st.Held)
	require.False(t, st.Hovered)

	// Another widget cannot steal the capture mid-gesture.
	ctx.BeginFrame(holdAt(500, 500), testViewport(), 0)
	other := ctx.ItemBehavior(Hash("other"), Rect{450, 450, 100, 100}, false)
	st = ctx.ItemBehavior(id, bounds, false)
	ctx.EndFrame()
	require.False(t, other.Held)
	require.True(t, st.Held)
}

func TestReleaseClearsOwner(t *testing.T) {
	ctx, _ := newTestContext()
	id := Hash("btn")
	bounds := Rect{0, 0, 100, 100}

	ctx.BeginFrame(pressAt(50, 50), testViewport(), 0)
	ctx.ItemBehavior(id, bounds, false)
	ctx.EndFrame()
	require.Equal(t, id, ctx.ActiveOwner())

	ctx.BeginFrame(releaseAt(50, 50), testViewport(), 0)
	st := ctx.ItemBehavior(id, bounds, false)
	ctx.EndFrame()
	require.True(t, st.Clicked)
	require.Equal(t, idNone, ctx.ActiveOwner())
}

func TestReleaseOutsideIsNotAClick(t *testing.T) {
	ctx, _ := newTestContext()
	id := Hash("btn")
	bounds := Rect{0, 0, 100, 100}

	ctx.BeginFrame(pressAt(50, 50), testViewport(), 0)
	ctx.ItemBehavior(id, bounds, false)
	ctx.EndFrame()

	ctx.BeginFrame(releaseAt(400, 400), testViewport(), 0)
	st := ctx.ItemBehavior(id, bounds, false)
	ctx.EndFrame()
	require.False(t, st.Clicked)
	require.Equal(t, idNone, ctx.ActiveOwner())
}

func TestDisabledWidgetIsInert(t *testing.T) {
	ctx, _ := newTestContext()
	id := Hash("btn")
	bounds := Rect{0, 0, 100, 100}

	ctx.BeginFrame(pressAt(50, 50), testViewport(), 0)
	st := ctx.ItemBehavior(id, bounds, true)
	ctx.EndFrame()

	require.True(t, st.Disabled)
	require.False(t, st.Hovered)
	require.False(t, st.Pressed)
	require.Equal(t, idNone, ctx.ActiveOwner())
}

func TestDisablingMidGestureDropsOwnership(t *testing.T) {
	ctx, _ := newTestContext()
	id := Hash("btn")
	bounds := Rect{0, 0, 100, 100}

	ctx.BeginFrame(pressAt(50, 50), testViewport(), 0)
	ctx.ItemBehavior(id, bounds, false)
	ctx.EndFrame()
	require.Equal(t, id, ctx.ActiveOwner())

	ctx.BeginFrame(holdAt(50, 50), testViewport(), 0)
	st := ctx.ItemBehavior(id, bounds, true)
	ctx.EndFrame()
	require.False(t, st.Held)
	require.Equal(t, idNone, ctx.ActiveOwner())
}

func TestFocusFollowsPressAndClearsOnEmptyPress(t *testing.T) {
	ctx, _ := newTestContext()
	id := Hash("field")
	bounds := Rect{0, 0, 100, 30}

	ctx.BeginFrame(pressAt(50, 15), testViewport(), 0)
	ctx.ItemBehavior(id, bounds, false)
	ctx.EndFrame()
	require.Equal(t, id, ctx.Focused())

	// Press on empty space clears focus.
	ctx.BeginFrame(pressAt(700, 500), testViewport(), 0)
	ctx.ItemBehavior(id, bounds, false)
	ctx.EndFrame()
	require.Equal(t, idNone, ctx.Focused())
}

func TestPressOutsideClipIsUnreachable(t *testing.T) {
	ctx, _ := newTestContext()
	id := Hash("hidden")

	ctx.BeginFrame(pressAt(50, 200), testViewport(), 0)
	ctx.PushClipRect(Rect{0, 0, 100, 100})
	st := ctx.ItemBehavior(id, Rect{0, 180, 100, 40}, false) // clipped away
	ctx.PopClipRect()
	ctx.EndFrame()

	require.False(t, st.Hovered)
	require.Equal(t, idNone, ctx.ActiveOwner())
}
