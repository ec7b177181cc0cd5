package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color packed as 0xAABBGGRR, the layout the vertex
// buffer expects.
type Color uint32

// Color constants.
const (
	ColorWhite       Color = 0xFFFFFFFF
	ColorBlack       Color = 0xFF000000
	ColorRed         Color = 0xFF0000FF
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFFFF0000
	ColorYellow      Color = 0xFF00FFFF
	ColorCyan        Color = 0xFFFFFF00
	ColorGray        Color = 0xFF808080
	ColorDarkGray    Color = 0xFF404040
	ColorLightGray   Color = 0xFFC0C0C0
	ColorTransparent Color = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// Components extracts RGBA components.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Alpha returns the alpha component.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

func (c Color) colorful() colorful.Color {
	r, g, b, _ := c.Components()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Lerp blends from c toward to by t in [0,1]. RGB goes through go-colorful,
// alpha is interpolated linearly.
func (c Color) Lerp(to Color, t float32) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return to
	}
	mixed := c.colorful().BlendRgb(to.colorful(), float64(t)).Clamped()
	r, g, b := mixed.RGB255()
	a := float32(c.Alpha()) + (float32(to.Alpha())-float32(c.Alpha()))*t
	return RGBA(r, g, b, uint8(clampf(a+0.5, 0, 255)))
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch len(s) {
	case 7:
		cf, err := colorful.Hex(s)
		if err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b := cf.RGB255()
		return RGBA(r, g, b, 255), nil
	case 9:
		cf, err := colorful.Hex(s[:7])
		if err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("parse color alpha %q: %w", s, err)
		}
		r, g, b := cf.RGB255()
		return RGBA(r, g, b, uint8(a)), nil
	default:
		return 0, fmt.Errorf("parse color %q: want #rrggbb or #rrggbbaa", s)
	}
}

// String formats the color as #rrggbbaa.
func (c Color) String() string {
	r, g, b, a := c.Components()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
