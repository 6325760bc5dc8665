package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seberle/lantern/engine/colors"
)

func TestResolveStylePriority(t *testing.T) {
	set := DeriveStyleSet(Style{Fill: colors.Color{0.5, 0.5, 0.5, 1}, Text: colors.White})

	require.Equal(t, set.Normal, ResolveStyle(ItemStatus{}, set))
	require.Equal(t, set.Hover, ResolveStyle(ItemStatus{Hovered: true}, set))
	require.Equal(t, set.Pressed, ResolveStyle(ItemStatus{Hovered: true, Held: true}, set))
	// Disabled wins over everything.
	require.Equal(t, set.Disabled,
		ResolveStyle(ItemStatus{Hovered: true, Held: true, Disabled: true}, set))
}

func TestDeriveStyleSetVariants(t *testing.T) {
	base := Style{Fill: colors.Color{0.4, 0.4, 0.4, 1}, Text: colors.White}
	set := DeriveStyleSet(base)

	require.Equal(t, base, set.Normal)
	require.NotEqual(t, base.Fill, set.Hover.Fill)
	require.NotEqual(t, base.Fill, set.Pressed.Fill)
	require.InDelta(t, 0.4, set.Disabled.Fill[3], 1e-6)
	require.InDelta(t, 0.4, set.Disabled.Text[3], 1e-6)
}

func TestThemeFileOverridesDefaults(t *testing.T) {
	tf := themeFile{
		TextSize: 18,
		Button:   "#ff0000",
	}
	th, err := tf.build()
	require.NoError(t, err)
	require.Equal(t, float32(18), th.TextSize)
	require.InDelta(t, 1.0, th.Button.Normal.Fill[0], 0.01)
	require.InDelta(t, 0.0, th.Button.Normal.Fill[1], 0.01)
	// Untouched sections keep defaults.
	require.Equal(t, DefaultTheme().SliderTrack, th.SliderTrack)
}

func TestThemeFileRejectsBadColor(t *testing.T) {
	tf := themeFile{Button: "not-a-color"}
	_, err := tf.build()
	require.Error(t, err)
}
