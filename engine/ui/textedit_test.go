package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seberle/lantern/engine/core"
)

func TestInsertAndCaret(t *testing.T) {
	st := &textEditState{}
	text := ""

	require.True(t, st.insert(&text, "hi", 0))
	require.Equal(t, "hi", text)
	require.Equal(t, 2, st.Caret)
	require.Equal(t, 2, st.Anchor)
}

func TestInsertReplacesSelection(t *testing.T) {
	st := &textEditState{Anchor: 1, Caret: 4}
	text := "abcdef"

	require.True(t, st.insert(&text, "X", 0))
	require.Equal(t, "aXef", text)
	require.Equal(t, 2, st.Caret)
	require.False(t, st.hasSelection())
}

func TestInsertRespectsMaxLengthBytes(t *testing.T) {
	st := &textEditState{Caret: 5, Anchor: 5}
	text := "abcde"

	require.False(t, st.insert(&text, "f", 5))
	require.Equal(t, "abcde", text)
	require.Equal(t, 5, st.Caret)
	require.Empty(t, st.undo) // a pure no-op leaves no undo entry

	// Partial fit: only the clusters that fit go in.
	require.True(t, st.insert(&text, "fg", 6))
	require.Equal(t, "abcdef", text)
}

func TestBackspaceRemovesWholeCluster(t *testing.T) {
	text := "a\U0001F926\U0001F3FC‍♂️" // a + multi-codepoint emoji
	st := &textEditState{Caret: len(text), Anchor: len(text)}

	require.True(t, st.backspace(&text, false))
	require.Equal(t, "a", text)
	require.Equal(t, 1, st.Caret)

	require.True(t, st.backspace(&text, false))
	require.Equal(t, "", text)
	require.False(t, st.backspace(&text, false)) // nothing left
}

func TestDeleteForwardWord(t *testing.T) {
	st := &textEditState{}
	text := "foo bar"

	require.True(t, st.deleteForward(&text, true))
	require.Equal(t, " bar", text)
	require.Equal(t, 0, st.Caret)
}

func TestWordNavigation(t *testing.T) {
	st := &textEditState{}
	text := "foo  bar baz"

	st.moveRight(text, true, false)
	require.Equal(t, 3, st.Caret)
	st.moveRight(text, true, false)
	require.Equal(t, 8, st.Caret)

	st.moveLeft(text, true, false)
	require.Equal(t, 5, st.Caret)
	st.moveLeft(text, true, false)
	require.Equal(t, 0, st.Caret)
}

func TestUnshiftedNavCollapsesSelection(t *testing.T) {
	st := &textEditState{Anchor: 1, Caret: 4}
	text := "abcdef"

	st.moveLeft(text, false, false)
	require.Equal(t, 1, st.Caret) // collapses to the left edge, no extra step
	require.Equal(t, 1, st.Anchor)

	st.Anchor, st.Caret = 1, 4
	st.moveRight(text, false, false)
	require.Equal(t, 4, st.Caret)
}

func TestShiftNavExtendsSelection(t *testing.T) {
	st := &textEditState{}
	text := "abc"

	st.moveRight(text, false, true)
	st.moveRight(text, false, true)
	lo, hi := st.selection()
	require.Equal(t, 0, lo)
	require.Equal(t, 2, hi)

	st.moveTo(len(text), true)
	require.Equal(t, 0, st.Anchor)
	require.Equal(t, 3, st.Caret)
}

func TestUndoRedoRoundTrip(t *testing.T) {
	st := &textEditState{}
	text := ""

	for _, s := range []string{"a", "b", "c"} {
		st.insert(&text, s, 0)
	}
	require.Equal(t, "abc", text)

	for i := 0; i < 3; i++ {
		require.True(t, st.undoOp(&text))
	}
	require.Equal(t, "", text)
	require.Equal(t, 0, st.Caret)
	require.False(t, st.undoOp(&text))

	for i := 0; i < 3; i++ {
		require.True(t, st.redoOp(&text))
	}
	require.Equal(t, "abc", text)
	require.False(t, st.redoOp(&text))
}

func TestNewEditClearsRedo(t *testing.T) {
	st := &textEditState{}
	text := ""

	st.insert(&text, "a", 0)
	st.undoOp(&text)
	st.insert(&text, "b", 0)
	require.False(t, st.redoOp(&text))
	require.Equal(t, "b", text)
}

func TestUndoDepthIsBounded(t *testing.T) {
	st := &textEditState{}
	text := ""
	for i := 0; i < undoDepth+10; i++ {
		st.insert(&text, "x", 0)
	}
	require.Len(t, st.undo, undoDepth)
}

func TestBoundaryHelpers(t *testing.T) {
	s := "a\U0001F926\U0001F3FC‍♂️b"
	emojiEnd := len(s) - 1

	require.Equal(t, emojiEnd, nextBoundary(s, 1))
	require.Equal(t, 1, prevBoundary(s, emojiEnd))
	require.Equal(t, 1, snapBoundary(s, 3)) // mid-cluster snaps back
	require.Equal(t, len(s), nextBoundary(s, len(s)))
	require.Equal(t, 0, prevBoundary(s, 0))
}

func TestInputTextTypingAndSelectAll(t *testing.T) {
	ctx, _ := newTestContext()
	text := ""

	// Field is at the VBox origin; press inside it to focus.
	frameField := func(in Input) bool {
		ctx.BeginFrame(in, testViewport(), 1.0/60)
		ctx.BeginVBox("root", Vec2{0, 0}, 0)
		changed := ctx.InputText("field", &text, 200, TextOpts{})
		ctx.EndVBox()
		ctx.EndFrame()
		return changed
	}

	frameField(pressAt(20, 10))
	require.Equal(t, Hash("field"), ctx.Focused())

	in := releaseAt(20, 10)
	in.Chars = []rune("hey")
	require.True(t, frameField(in))
	require.Equal(t, "hey", text)

	// Ctrl+A then a typed rune replaces the whole text.
	frameField(keys(core.ModCtrl, core.KeyA))
	in = Input{Chars: []rune{'z'}}
	require.True(t, frameField(in))
	require.Equal(t, "z", text)
}

func TestInputTextUndoShortcut(t *testing.T) {
	ctx, _ := newTestContext()
	text := ""

	frameField := func(in Input) bool {
		ctx.BeginFrame(in, testViewport(), 1.0/60)
		ctx.BeginVBox("root", Vec2{0, 0}, 0)
		changed := ctx.InputText("field", &text, 200, TextOpts{})
		ctx.EndVBox()
		ctx.EndFrame()
		return changed
	}

	frameField(pressAt(20, 10))
	in := Input{Chars: []rune("ab")}
	frameField(in)
	require.Equal(t, "ab", text)

	require.True(t, frameField(keys(core.ModCtrl, core.KeyZ)))
	require.Equal(t, "", text)

	require.True(t, frameField(keys(core.ModCtrl|core.ModShift, core.KeyZ)))
	require.Equal(t, "ab", text)
}
