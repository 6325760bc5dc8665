package ui

import "github.com/seberle/lantern/engine/colors"

// Style is a fully resolved widget appearance for one interaction phase.
type Style struct {
	Fill        colors.Color
	Border      colors.Color
	BorderWidth float32
	Text        colors.Color
	TextSize    float32
	PadX, PadY  float32
}

func (s Style) Box() BoxStyle {
	return BoxStyle{Fill: s.Fill, Border: s.Border, BorderWidth: s.BorderWidth}
}

func (s Style) TextStyle() TextStyle {
	return TextStyle{Size: s.TextSize, Color: s.Text}
}

// StyleSet holds one Style per interaction phase.
type StyleSet struct {
	Normal   Style
	Hover    Style
	Pressed  Style
	Disabled Style
}

// ResolveStyle picks the phase style for an interaction state. Priority is
// Disabled > Pressed > Hover > Normal. It is a pure function: no "current
// style" pointer is ever mutated.
func ResolveStyle(st ItemStatus, set StyleSet) Style {
	switch {
	case st.Disabled:
		return set.Disabled
	case st.Held:
		return set.Pressed
	case st.Hovered:
		return set.Hover
	default:
		return set.Normal
	}
}

// DeriveStyleSet builds the hover/pressed/disabled phases from a base style:
// hover lightens the fill, pressed darkens it, disabled fades everything.
func DeriveStyleSet(base Style) StyleSet {
	hover := base
	hover.Fill = base.Fill.Lighten(0.06)
	pressed := base
	pressed.Fill = base.Fill.Darken(0.08)
	disabled := base
	disabled.Fill = base.Fill.WithAlpha(base.Fill[3] * 0.4)
	disabled.Text = base.Text.WithAlpha(base.Text[3] * 0.4)
	disabled.Border = base.Border.WithAlpha(base.Border[3] * 0.4)
	return StyleSet{Normal: base, Hover: hover, Pressed: pressed, Disabled: disabled}
}
