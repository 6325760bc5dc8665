package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashStability(t *testing.T) {
	require.Equal(t, Hash("button-1"), Hash("button-1"))
	require.NotEqual(t, Hash("button-1"), Hash("button-2"))
	require.NotEqual(t, idNone, Hash(""))
	require.NotEqual(t, SubID("list", "3"), SubID("list", "4"))
}

func TestStateOfPersistsAcrossFrames(t *testing.T) {
	ctx, _ := newTestContext()
	id := Hash("scroll")

	ctx.BeginFrame(Input{}, testViewport(), 0)
	st := StateOf[scrollState](ctx, id)
	st.Offset = 42
	ctx.EndFrame()

	ctx.BeginFrame(Input{}, testViewport(), 0)
	st = StateOf[scrollState](ctx, id)
	ctx.EndFrame()
	require.Equal(t, float32(42), st.Offset)
	require.Equal(t, 1, ctx.StateLen())
}

func TestStateOfRecreatesOnTypeMismatch(t *testing.T) {
	ctx, _ := newTestContext()
	id := Hash("reused-key")

	st := StateOf[scrollState](ctx, id)
	st.Offset = 10

	// Same id claimed by a different widget kind: freshly zeroed state, no
	// panic.
	ps := StateOf[panelState](ctx, id)
	require.Equal(t, float32(0), ps.W)

	// And back again: the old scroll state is gone.
	st = StateOf[scrollState](ctx, id)
	require.Equal(t, float32(0), st.Offset)
}
