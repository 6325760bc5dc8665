package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func scrollFrame(ctx *Context, in Input, items int, itemH float32) {
	ctx.BeginFrame(in, testViewport(), 1.0/60)
	ctx.BeginScrollArea("sc", Vec2{0, 0}, Vec2{100, 100}, 0)
	for i := 0; i < items; i++ {
		ctx.Advance(Vec2{80, itemH})
	}
	ctx.EndScrollArea()
	ctx.EndFrame()
}

func TestScrollWheelUsesLastFrameContentHeight(t *testing.T) {
	ctx, _ := newTestContext()
	wheel := pointerAt(50, 50)
	wheel.Wheel = -2

	// First frame has no measured content yet, so scrolling clamps to zero.
	scrollFrame(ctx, wheel, 3, 60)
	st := StateOf[scrollState](ctx, Hash("sc"))
	require.Equal(t, float32(0), st.Offset)
	require.Equal(t, float32(180), st.ContentH)

	scrollFrame(ctx, wheel, 3, 60)
	require.Equal(t, float32(48), st.Offset)

	wheel.Wheel = -3
	scrollFrame(ctx, wheel, 3, 60)
	require.Equal(t, float32(80), st.Offset) // clamped to contentH - viewportH
}

func TestScrollWheelOutsideViewportIsIgnored(t *testing.T) {
	ctx, _ := newTestContext()
	scrollFrame(ctx, pointerAt(50, 50), 3, 60)

	wheel := pointerAt(400, 400)
	wheel.Wheel = -2
	scrollFrame(ctx, wheel, 3, 60)
	st := StateOf[scrollState](ctx, Hash("sc"))
	require.Equal(t, float32(0), st.Offset)
}

func TestScrollOffsetReclampsWhenContentShrinks(t *testing.T) {
	ctx, _ := newTestContext()
	scrollFrame(ctx, pointerAt(50, 50), 3, 60)
	st := StateOf[scrollState](ctx, Hash("sc"))
	st.Offset = 80 // scrolled to the bottom

	// Shrink frame still clamps against last frame's measurement; the one
	// after sees the new height and pulls the offset back in.
	scrollFrame(ctx, pointerAt(50, 50), 1, 60)
	require.Equal(t, float32(80), st.Offset)
	require.Equal(t, float32(60), st.ContentH)

	scrollFrame(ctx, pointerAt(50, 50), 1, 60)
	require.Equal(t, float32(0), st.Offset)
}

func TestScrollThumbDragMapsToOffset(t *testing.T) {
	ctx, _ := newTestContext()
	frame := func(in Input) {
		scrollFrame(ctx, in, 4, 50) // 200px of content in a 100px viewport
	}

	frame(pointerAt(50, 50)) // measure
	// thumbH = 100*100/200 = 50, travel = 50, maxScroll = 100.
	frame(pressAt(96, 10)) // grab the thumb near its top
	frame(holdAt(96, 70))  // rel = (70-25)/50 = 0.9

	st := StateOf[scrollState](ctx, Hash("sc"))
	require.InDelta(t, 90, st.Offset, 0.01)

	frame(holdAt(96, 500)) // far past the track clamps to maxScroll
	require.Equal(t, float32(100), st.Offset)
}

func TestPanelWidthPersistsAndDragClamps(t *testing.T) {
	ctx, _ := newTestContext()
	var w float32
	frame := func(in Input) {
		ctx.BeginFrame(in, testViewport(), 1.0/60)
		w = ctx.BeginResizablePanel("pn", Vec2{0, 0}, 200, 240, 100, 300, 0)
		ctx.Advance(Vec2{80, 30})
		ctx.EndResizablePanel()
		ctx.EndFrame()
	}

	frame(pointerAt(400, 400))
	require.Equal(t, float32(240), w)

	frame(pressAt(237, 50)) // handle spans x 234..240
	frame(holdAt(500, 50))
	require.Equal(t, float32(300), w) // clamped to maxW

	frame(holdAt(50, 50))
	require.Equal(t, float32(100), w) // clamped to minW

	frame(releaseAt(50, 50))
	frame(pointerAt(400, 400))
	require.Equal(t, float32(100), w) // width persists after the gesture
}

func TestScrollAreaAdvancesParentByViewportSize(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.BeginFrame(pointerAt(0, 0), testViewport(), 1.0/60)
	ctx.BeginVBox("root", Vec2{0, 0}, 0)
	ctx.Advance(Vec2{100, 30})

	ctx.BeginScrollArea("sc", Vec2{}, Vec2{100, 100}, 0)
	for i := 0; i < 10; i++ {
		ctx.Advance(Vec2{80, 50})
	}
	size := ctx.EndScrollArea()
	require.Equal(t, Vec2{100, 100}, size)

	total := ctx.EndVBox()
	ctx.EndFrame()
	require.Equal(t, Vec2{100, 130}, total)
}
