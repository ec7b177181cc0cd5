package ui

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Kind is the widget category used for theme lookup.
type Kind int

const (
	KindNone Kind = iota
	KindButton
	KindCheckBox
	KindRadioButton
	KindSlider
	KindLabel
	KindTextBox
	KindWidgetSet
	KindLabelHelp
	KindDialog
)

var kindNames = map[Kind]string{
	KindNone:        "none",
	KindButton:      "button",
	KindCheckBox:    "checkbox",
	KindRadioButton: "radio",
	KindSlider:      "slider",
	KindLabel:       "label",
	KindTextBox:     "textbox",
	KindWidgetSet:   "set",
	KindLabelHelp:   "labelhelp",
	KindDialog:      "dialog",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Bevel is the edge treatment of a widget body.
type Bevel string

const (
	BevelNone  Bevel = "none"
	BevelRound Bevel = "round"
	BevelSlant Bevel = "slant"
)

// Look is the presentation record for one combined state.
type Look struct {
	Body         Color   `toml:"body"`
	Outline      Color   `toml:"outline"`
	OutlineWidth float32 `toml:"outline_width"`
	CornerRadius float32 `toml:"corner_radius"`
	Bevel        Bevel   `toml:"bevel"`
	Text         Color   `toml:"text"`
}

// StateLooks holds the looks of one widget kind.
type StateLooks struct {
	Normal          Look `toml:"normal"`
	NormalFocused   Look `toml:"normal_focused"`
	Hover           Look `toml:"hover"`
	Selected        Look `toml:"selected"`
	SelectedFocused Look `toml:"selected_focused"`
	Disabled        Look `toml:"disabled"`
}

// For picks the look for a combined state. Inactive widgets get the zero
// Look and are not drawn.
func (sl StateLooks) For(s UIState) Look {
	switch s {
	case StateDisabled, StateDisabledSelected:
		return sl.Disabled
	case StateActive:
		return sl.Normal
	case StateActiveHover:
		return sl.Hover
	case StateActiveFocused, StateActiveFocusedHover:
		return sl.NormalFocused
	case StateActiveSelected, StateActiveSelectedHover:
		return sl.Selected
	case StateActiveSelectedFocused, StateActiveSelectedFocusedHover:
		return sl.SelectedFocused
	}
	return Look{}
}

// Theme maps widget kinds and combined states to looks, plus the timing
// of state twitches.
type Theme struct {
	Name            string                `toml:"name"`
	TwitchTime      float32               `toml:"twitch_time"`
	QuickTwitchTime float32               `toml:"quick_twitch_time"`
	TwitchShape     Shape                 `toml:"twitch_shape"`
	FocusColor      Color                 `toml:"focus_color"`
	Default         StateLooks            `toml:"default"`
	Kinds           map[string]StateLooks `toml:"kinds"`
}

// Look returns the look for kind in combined state s. Kinds missing from
// the theme use Default.
func (t *Theme) Look(kind Kind, s UIState) Look {
	if sl, ok := t.Kinds[kind.String()]; ok {
		return sl.For(s)
	}
	return t.Default.For(s)
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	base := StateLooks{
		Normal: Look{
			Body: RGBA(58, 58, 66, 255), Outline: RGBA(90, 90, 100, 255),
			OutlineWidth: 1, CornerRadius: 4, Bevel: BevelRound, Text: RGBA(220, 220, 220, 255),
		},
		NormalFocused: Look{
			Body: RGBA(70, 78, 96, 255), Outline: RGBA(120, 180, 255, 255),
			OutlineWidth: 2, CornerRadius: 4, Bevel: BevelRound, Text: ColorWhite,
		},
		Hover: Look{
			Body: RGBA(72, 72, 82, 255), Outline: RGBA(110, 110, 124, 255),
			OutlineWidth: 1, CornerRadius: 4, Bevel: BevelRound, Text: ColorWhite,
		},
		Selected: Look{
			Body: RGBA(46, 110, 190, 255), Outline: RGBA(90, 150, 230, 255),
			OutlineWidth: 1, CornerRadius: 4, Bevel: BevelRound, Text: ColorWhite,
		},
		SelectedFocused: Look{
			Body: RGBA(56, 128, 214, 255), Outline: RGBA(160, 210, 255, 255),
			OutlineWidth: 2, CornerRadius: 4, Bevel: BevelRound, Text: ColorWhite,
		},
		Disabled: Look{
			Body: RGBA(44, 44, 48, 255), Outline: RGBA(60, 60, 64, 255),
			OutlineWidth: 1, CornerRadius: 4, Bevel: BevelNone, Text: RGBA(110, 110, 110, 255),
		},
	}
	label := StateLooks{}
	for _, l := range []*Look{&label.Normal, &label.NormalFocused, &label.Hover, &label.Selected, &label.SelectedFocused} {
		*l = Look{Text: RGBA(220, 220, 220, 255)}
	}
	label.Disabled = Look{Text: RGBA(110, 110, 110, 255)}

	dialog := StateLooks{}
	for _, l := range []*Look{&dialog.Normal, &dialog.NormalFocused, &dialog.Hover, &dialog.Selected, &dialog.SelectedFocused, &dialog.Disabled} {
		*l = Look{Body: RGBA(28, 28, 32, 230), Outline: RGBA(70, 70, 80, 255), OutlineWidth: 1, CornerRadius: 8, Bevel: BevelRound}
	}

	return &Theme{
		Name:            "default",
		TwitchTime:      0.15,
		QuickTwitchTime: 0.08,
		TwitchShape:     ShapeEaseOut,
		FocusColor:      RGBA(120, 180, 255, 255),
		Default:         base,
		Kinds: map[string]StateLooks{
			KindLabel.String():     label,
			KindWidgetSet.String(): {},
			KindLabelHelp.String(): {},
			KindDialog.String():    dialog,
		},
	}
}

// ParseTheme decodes a TOML theme on top of the default theme.
func ParseTheme(data []byte) (*Theme, error) {
	t := DefaultTheme()
	if err := toml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return t, nil
}

// LoadTheme reads and decodes a TOML theme file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	t, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
