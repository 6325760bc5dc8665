package ui

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/seberle/lantern/engine/colors"
)

// Theme collects the style sets widgets draw with. Hosts can swap themes at
// runtime; widget code always resolves through ResolveStyle so a theme is
// data only.
type Theme struct {
	TextSize float32
	Text     colors.Color

	Button   StyleSet
	Field    StyleSet
	Checkbox StyleSet
	Combo    StyleSet

	SliderTrack colors.Color
	SliderKnob  StyleSet

	Panel       Style
	PanelHandle StyleSet

	ScrollTrack colors.Color
	ScrollThumb StyleSet

	Popup     Style
	Selection colors.Color
	Caret     colors.Color
}

func DefaultTheme() *Theme {
	const textSize = 15
	base := func(fill colors.Color) Style {
		return Style{
			Fill:     fill,
			Text:     colors.White,
			TextSize: textSize,
			PadX:     10,
			PadY:     6,
		}
	}
	field := base(colors.Color{0.13, 0.15, 0.18, 1})
	field.Border = colors.Color{0.35, 0.40, 0.48, 1}
	field.BorderWidth = 1

	return &Theme{
		TextSize: textSize,
		Text:     colors.White,

		Button:   DeriveStyleSet(base(colors.Color{0.22, 0.38, 0.55, 1})),
		Field:    DeriveStyleSet(field),
		Checkbox: DeriveStyleSet(base(colors.Color{0.18, 0.20, 0.24, 1})),
		Combo:    DeriveStyleSet(base(colors.Color{0.18, 0.20, 0.24, 1})),

		SliderTrack: colors.Color{0.18, 0.20, 0.24, 1},
		SliderKnob:  DeriveStyleSet(base(colors.Color{0.45, 0.55, 0.70, 1})),

		Panel:       base(colors.Color{0.11, 0.12, 0.15, 1}),
		PanelHandle: DeriveStyleSet(base(colors.Color{0.30, 0.33, 0.40, 1})),

		ScrollTrack: colors.Color{0.10, 0.11, 0.13, 1},
		ScrollThumb: DeriveStyleSet(base(colors.Color{0.35, 0.38, 0.45, 1})),

		Popup:     base(colors.Color{0.14, 0.16, 0.20, 1}),
		Selection: colors.Color{0.25, 0.45, 0.75, 0.55},
		Caret:     colors.White,
	}
}

// themeFile is the on-disk TOML shape: hex colors plus a few scalars. Only
// base fills are given per widget; the phase variants derive from them.
type themeFile struct {
	TextSize float32 `toml:"text_size"`
	Text     string  `toml:"text"`

	Button      string `toml:"button"`
	Field       string `toml:"field"`
	FieldBorder string `toml:"field_border"`
	Checkbox    string `toml:"checkbox"`
	Combo       string `toml:"combo"`
	SliderTrack string `toml:"slider_track"`
	SliderKnob  string `toml:"slider_knob"`
	Panel       string `toml:"panel"`
	PanelHandle string `toml:"panel_handle"`
	ScrollTrack string `toml:"scroll_track"`
	ScrollThumb string `toml:"scroll_thumb"`
	Popup       string `toml:"popup"`
	Selection   string `toml:"selection"`
	Caret       string `toml:"caret"`
}

// LoadTheme reads a TOML theme file. Unset keys keep their default value.
func LoadTheme(path string) (*Theme, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %q: %w", path, err)
	}
	var tf themeFile
	if err := toml.Unmarshal(b, &tf); err != nil {
		return nil, fmt.Errorf("parse theme %q: %w", path, err)
	}
	return tf.build()
}

func (tf *themeFile) build() (*Theme, error) {
	th := DefaultTheme()
	if tf.TextSize > 0 {
		th.TextSize = tf.TextSize
	}

	parse := func(dst *colors.Color, hex string) error {
		if hex == "" {
			return nil
		}
		c, err := colors.FromHex(hex)
		if err != nil {
			return fmt.Errorf("color %q: %w", hex, err)
		}
		*dst = c
		return nil
	}
	if err := parse(&th.Text, tf.Text); err != nil {
		return nil, err
	}

	styleSet := func(dst *StyleSet, hex string) error {
		if hex == "" {
			return nil
		}
		fill, err := colors.FromHex(hex)
		if err != nil {
			return fmt.Errorf("color %q: %w", hex, err)
		}
		base := dst.Normal
		base.Fill = fill
		base.Text = th.Text
		base.TextSize = th.TextSize
		*dst = DeriveStyleSet(base)
		return nil
	}

	if err := styleSet(&th.Button, tf.Button); err != nil {
		return nil, err
	}
	if tf.FieldBorder != "" {
		// Apply the border to the base before deriving so every phase gets it.
		if err := parse(&th.Field.Normal.Border, tf.FieldBorder); err != nil {
			return nil, err
		}
		th.Field = DeriveStyleSet(th.Field.Normal)
	}
	if err := styleSet(&th.Field, tf.Field); err != nil {
		return nil, err
	}
	if err := styleSet(&th.Checkbox, tf.Checkbox); err != nil {
		return nil, err
	}
	if err := styleSet(&th.Combo, tf.Combo); err != nil {
		return nil, err
	}
	if err := parse(&th.SliderTrack, tf.SliderTrack); err != nil {
		return nil, err
	}
	if err := styleSet(&th.SliderKnob, tf.SliderKnob); err != nil {
		return nil, err
	}
	if err := parse(&th.Panel.Fill, tf.Panel); err != nil {
		return nil, err
	}
	if err := styleSet(&th.PanelHandle, tf.PanelHandle); err != nil {
		return nil, err
	}
	if err := parse(&th.ScrollTrack, tf.ScrollTrack); err != nil {
		return nil, err
	}
	if err := styleSet(&th.ScrollThumb, tf.ScrollThumb); err != nil {
		return nil, err
	}
	if err := parse(&th.Popup.Fill, tf.Popup); err != nil {
		return nil, err
	}
	if err := parse(&th.Selection, tf.Selection); err != nil {
		return nil, err
	}
	if err := parse(&th.Caret, tf.Caret); err != nil {
		return nil, err
	}
	return th, nil
}
