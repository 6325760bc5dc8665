package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHBoxAccumulation(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.BeginFrame(Input{}, testViewport(), 0)

	ctx.BeginHBox("row", Vec2{100, 50}, 10)
	positions := make([]Vec2, 0, 3)
	for _, w := range []float32{50, 30, 70} {
		positions = append(positions, ctx.CursorPos())
		ctx.Advance(Vec2{w, 20})
	}
	size := ctx.EndHBox()
	ctx.EndFrame()

	require.Equal(t, Vec2{100, 50}, positions[0])
	require.Equal(t, Vec2{160, 50}, positions[1]) // 100 + 50 + 10
	require.Equal(t, Vec2{200, 50}, positions[2]) // 160 + 30 + 10
	require.Equal(t, Vec2{170, 20}, size)         // 50+30+70 + 2*10
}

func TestVBoxAccumulation(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.BeginFrame(Input{}, testViewport(), 0)

	ctx.BeginVBox("col", Vec2{0, 0}, 4)
	ctx.Advance(Vec2{80, 20})
	ctx.Advance(Vec2{120, 30})
	size := ctx.EndVBox()
	ctx.EndFrame()

	require.Equal(t, Vec2{120, 54}, size) // maxW=120, 20+4+30
}

func TestGridWrapAndRowHeights(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.BeginFrame(Input{}, testViewport(), 0)

	// 3 columns of width 40, 7 cells of height 20, rowGap 5.
	ctx.BeginGrid("grid", Vec2{0, 0}, 3, 40, 6, 5)
	var rowStarts []Vec2
	for i := 0; i < 7; i++ {
		if i%3 == 0 {
			rowStarts = append(rowStarts, ctx.CursorPos())
		}
		ctx.Advance(Vec2{40, 20})
	}
	size := ctx.EndGrid()
	ctx.EndFrame()

	require.Equal(t, float32(0), rowStarts[0].Y)
	require.Equal(t, float32(25), rowStarts[1].Y) // 20 + 5
	require.Equal(t, float32(50), rowStarts[2].Y)
	require.Equal(t, float32(70), size.Y)         // 3 rows of 20 + 2 gaps of 5
	require.Equal(t, float32(3*40+2*6), size.X)
}

func TestGridRowHeightIsMaxOfCells(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.BeginFrame(Input{}, testViewport(), 0)

	ctx.BeginGrid("grid", Vec2{0, 0}, 2, 50, 0, 0)
	ctx.Advance(Vec2{50, 10})
	ctx.Advance(Vec2{50, 35}) // tallest in row 1
	ctx.Advance(Vec2{50, 15})
	size := ctx.EndGrid()
	ctx.EndFrame()

	require.Equal(t, float32(50), size.Y) // 35 + 15
}

func TestNestedContainersFoldIntoParent(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.BeginFrame(Input{}, testViewport(), 0)

	ctx.BeginVBox("outer", Vec2{10, 10}, 5)
	ctx.Advance(Vec2{60, 20})

	ctx.BeginHBox("inner", Vec2{999, 999}, 10) // pos ignored when nested
	innerStart := ctx.CursorPos()
	ctx.Advance(Vec2{30, 25})
	ctx.Advance(Vec2{30, 25})
	ctx.EndHBox()

	size := ctx.EndVBox()
	ctx.EndFrame()

	require.Equal(t, Vec2{10, 35}, innerStart) // below first widget + gap
	require.Equal(t, Vec2{70, 50}, size)       // maxW=70 row, 20+5+25
}

func TestSizerMatchesContainer(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.BeginFrame(Input{}, testViewport(), 0)

	sizes := []Vec2{{50, 20}, {30, 18}, {70, 24}}

	s := NewHBoxSizer(10)
	for _, sz := range sizes {
		s.Add(sz)
	}

	ctx.BeginHBox("row", Vec2{0, 0}, 10)
	for _, sz := range sizes {
		ctx.Advance(sz)
	}
	real := ctx.EndHBox()
	ctx.EndFrame()

	require.Equal(t, real, s.Size())
	require.Equal(t, 3, s.Count())
}

func TestGridSizerPartialRow(t *testing.T) {
	s := NewGridSizer(3, 40, 6, 5)
	for i := 0; i < 7; i++ {
		s.Add(Vec2{40, 20})
	}
	require.Equal(t, Vec2{3*40 + 2*6, 70}, s.Size())
}

func TestMismatchedEndRecovers(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.BeginFrame(Input{}, testViewport(), 0)

	ctx.BeginHBox("row", Vec2{0, 0}, 0)
	ctx.EndVBox() // wrong End; must not panic, stack still pops
	ctx.EndFrame()

	// Next frame must start clean.
	ctx.BeginFrame(Input{}, testViewport(), 0)
	ctx.BeginVBox("col", Vec2{0, 0}, 0)
	ctx.Advance(Vec2{10, 10})
	size := ctx.EndVBox()
	ctx.EndFrame()
	require.Equal(t, Vec2{10, 10}, size)
}

func TestUnclosedContainerHealedAtEndFrame(t *testing.T) {
	ctx, r := newTestContext()
	ctx.BeginFrame(Input{}, testViewport(), 0)
	ctx.BeginVBox("col", Vec2{0, 0}, 0)
	ctx.PushClipRect(Rect{0, 0, 50, 50})
	ctx.EndFrame() // leaks a container and a clip; both must be unwound

	require.Equal(t, 0, r.clipDepth)
	ctx.BeginFrame(Input{}, testViewport(), 0)
	require.True(t, ctx.IsRectVisible(Rect{700, 0, 10, 10}))
	ctx.EndFrame()
}

func TestClipCulling(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.BeginFrame(Input{}, testViewport(), 0)

	ctx.PushClipRect(Rect{0, 0, 100, 100})
	require.True(t, ctx.IsRectVisible(Rect{90, 90, 50, 50}))  // partial overlap
	require.False(t, ctx.IsRectVisible(Rect{200, 0, 50, 50})) // fully outside

	// Nested clips intersect.
	ctx.PushClipRect(Rect{50, 0, 100, 100})
	require.False(t, ctx.IsRectVisible(Rect{0, 0, 40, 40}))
	require.True(t, ctx.IsRectVisible(Rect{60, 10, 10, 10}))
	ctx.PopClipRect()
	ctx.PopClipRect()
	ctx.EndFrame()
}

func TestCulledWidgetStillAdvances(t *testing.T) {
	ctx, r := newTestContext()
	ctx.BeginFrame(Input{}, testViewport(), 0)

	ctx.PushClipRect(Rect{0, 0, 50, 50})
	ctx.BeginVBox("col", Vec2{0, 200}, 0) // entirely below the clip
	ctx.Label("hidden")
	after := ctx.CursorPos()
	ctx.EndVBox()
	ctx.PopClipRect()
	ctx.EndFrame()

	require.Empty(t, r.texts)                  // culled, no draw
	require.Greater(t, after.Y, float32(200)) // but layout advanced
}
