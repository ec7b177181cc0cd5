package ui

import "strings"

// UIState is a widget's top-level activity state combined with its
// selected/focused/hover flags.
type UIState uint8

// Top-level states (mutually exclusive) and the orthogonal flags.
const (
	StateInactive UIState = 1 << iota
	StateDisabled
	StateActive
	StateSelected
	StateFocused
	StateHover
)

// StateNone is the zero value; no live widget reports it.
const StateNone UIState = 0

// Enumerated combined states.
const (
	StateDisabledSelected           = StateDisabled | StateSelected
	StateActiveHover                = StateActive | StateHover
	StateActiveFocused              = StateActive | StateFocused
	StateActiveFocusedHover         = StateActive | StateFocused | StateHover
	StateActiveSelected             = StateActive | StateSelected
	StateActiveSelectedHover        = StateActive | StateSelected | StateHover
	StateActiveSelectedFocused      = StateActive | StateSelected | StateFocused
	StateActiveSelectedFocusedHover = StateActive | StateSelected | StateFocused | StateHover
)

const topMask = StateInactive | StateDisabled | StateActive

// Combine folds the flags into top. Disabled widgets only carry Selected;
// inactive widgets carry nothing.
func Combine(top UIState, selected, focused, hover bool) UIState {
	switch top & topMask {
	case StateActive:
		s := StateActive
		if selected {
			s |= StateSelected
		}
		if focused {
			s |= StateFocused
		}
		if hover {
			s |= StateHover
		}
		return s
	case StateDisabled:
		if selected {
			return StateDisabledSelected
		}
		return StateDisabled
	case StateInactive:
		return StateInactive
	}
	return StateNone
}

// Family returns the top-level part of s.
func (s UIState) Family() UIState { return s & topMask }

// Has reports whether every bit of flag is set.
func (s UIState) Has(flag UIState) bool { return s&flag == flag }

// Valid reports whether s is one of the enumerated combined states.
func (s UIState) Valid() bool {
	switch s {
	case StateNone, StateInactive, StateDisabled, StateDisabledSelected,
		StateActive, StateActiveHover, StateActiveFocused, StateActiveFocusedHover,
		StateActiveSelected, StateActiveSelectedHover, StateActiveSelectedFocused,
		StateActiveSelectedFocusedHover:
		return true
	}
	return false
}

func (s UIState) String() string {
	if s == StateNone {
		return "None"
	}
	var b strings.Builder
	for _, p := range []struct {
		bit  UIState
		name string
	}{
		{StateInactive, "Inactive"},
		{StateDisabled, "Disabled"},
		{StateActive, "Active"},
		{StateSelected, "Selected"},
		{StateFocused, "Focused"},
		{StateHover, "Hover"},
	} {
		if s&p.bit != 0 {
			b.WriteString(p.name)
		}
	}
	return b.String()
}
