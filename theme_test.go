package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTheme = `
name = "crimson"
twitch_time = 0.25
twitch_shape = "overshoot-out"
focus_color = "#00ff00"

[default.normal]
body = "#ff0000"

[kinds.button.normal_focused]
body = "#0000ff80"
bevel = "slant"
`

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme([]byte(testTheme))
	require.NoError(t, err)
	def := DefaultTheme()

	assert.Equal(t, "crimson", th.Name)
	assert.Equal(t, float32(0.25), th.TwitchTime)
	assert.Equal(t, def.QuickTwitchTime, th.QuickTwitchTime)
	assert.Equal(t, ShapeOvershootOut, th.TwitchShape)
	assert.Equal(t, ColorGreen, th.FocusColor)

	normal := th.Look(KindCheckBox, StateActive)
	assert.Equal(t, ColorRed, normal.Body)
	assert.Equal(t, def.Default.Normal.OutlineWidth, normal.OutlineWidth, "unset fields keep their defaults")

	focused := th.Look(KindButton, StateActiveFocusedHover)
	assert.Equal(t, RGBA(0, 0, 255, 128), focused.Body)
	assert.Equal(t, BevelSlant, focused.Bevel)
}

func TestParseThemeErrors(t *testing.T) {
	for name, src := range map[string]string{
		"bad shape":  `twitch_shape = "wobble"`,
		"bad colour": `focus_color = "red"`,
		"bad toml":   `name = `,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTheme([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(testTheme), 0o644))
	th, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, "crimson", th.Name)

	_, err = LoadTheme(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestThemeLookFallsBackToDefault(t *testing.T) {
	th := DefaultTheme()
	assert.Equal(t, th.Default.Hover, th.Look(KindSlider, StateActiveHover))
	assert.Equal(t, Look{}, th.Look(KindWidgetSet, StateActive), "sets draw nothing")
	assert.Equal(t, Look{}, th.Look(KindButton, StateInactive))
	assert.Equal(t, "labelhelp", KindLabelHelp.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("hover_claims_focus = false\npad_repeat_delay = 0.5\ntheme_file = \"dark.toml\"\n"))
	require.NoError(t, err)
	assert.False(t, cfg.HoverClaimsFocus)
	assert.Equal(t, float32(0.5), cfg.PadRepeatDelay)
	assert.Equal(t, PadRepeatInterval, cfg.PadRepeatInterval)
	assert.Equal(t, "dark.toml", cfg.ThemeFile)
	assert.False(t, cfg.WatchTheme)

	_, err = ParseConfig([]byte("pad_repeat_interval = -1"))
	assert.Error(t, err)
	_, err = ParseConfig([]byte("verbose = 3"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.toml")
	require.NoError(t, os.WriteFile(path, []byte("watch_theme = true\n"), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.WatchTheme)
	assert.True(t, cfg.HoverClaimsFocus)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestColor(t *testing.T) {
	c := RGBA(10, 20, 30, 40)
	r, g, b, a := c.Components()
	assert.Equal(t, [4]uint8{10, 20, 30, 40}, [4]uint8{r, g, b, a})
	assert.Equal(t, Color(0x281E140A), c)
	assert.Equal(t, uint8(200), c.WithAlpha(200).Alpha())
	assert.Equal(t, "#0a141e28", c.String())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, ColorRed, c)

	c, err = ParseColor(" #00000080 ")
	require.NoError(t, err)
	assert.Equal(t, RGBA(0, 0, 0, 128), c)

	for _, bad := range []string{"", "ff0000", "#ff00", "#gg0000", "#ff0000zz"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}

	var u Color
	require.NoError(t, u.UnmarshalText([]byte("#0000ff")))
	assert.Equal(t, ColorBlue, u)
	text, err := u.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#0000ffff", string(text))
}

func TestColorLerp(t *testing.T) {
	assert.Equal(t, ColorBlack, ColorBlack.Lerp(ColorWhite, 0))
	assert.Equal(t, ColorWhite, ColorBlack.Lerp(ColorWhite, 1))
	assert.Equal(t, RGBA(128, 128, 128, 255), ColorBlack.Lerp(ColorWhite, 0.5))
	assert.Equal(t, uint8(128), ColorTransparent.Lerp(ColorBlack, 0.5).Alpha())
}
