package terminal

import (
	"io"
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ui "github.com/go-theft-auto/koixui"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(20, 6)
	return s
}

func cell(s tcell.Screen, x, y int) (rune, tcell.Color) {
	ch, _, st, _ := s.GetContent(x, y)
	_, bg, _ := st.Decompose()
	return ch, bg
}

func TestRendererPaintsPrims(t *testing.T) {
	s := newScreen(t)
	r := NewRenderer(s, ui.ColorBlack)
	red := tcellColor(ui.ColorRed)

	dl := ui.AcquireDrawList()
	defer ui.ReleaseDrawList(dl)
	dl.AddRect(ui.Rect{X: 0, Y: 0, W: 80, H: 24}, ui.ColorRed)
	dl.AddText(ui.Vec2{X: 16, Y: 8}, "hi", ui.ColorWhite, 1)
	dl.AddRectOutline(ui.Rect{X: 88, Y: 0, W: 48, H: 24}, ui.ColorWhite, 1)
	require.NoError(t, r.Render(dl))

	ch, bg := cell(s, 2, 1)
	assert.Equal(t, 'h', ch)
	assert.Equal(t, red, bg, "text keeps the fill beneath it")
	ch, _ = cell(s, 3, 1)
	assert.Equal(t, 'i', ch)
	_, bg = cell(s, 9, 2)
	assert.Equal(t, red, bg)
	ch, bg = cell(s, 10, 2)
	assert.Equal(t, ' ', ch)
	assert.Equal(t, tcellColor(ui.ColorBlack), bg)

	ch, _ = cell(s, 11, 0)
	assert.Equal(t, tcell.RuneULCorner, ch)
	ch, _ = cell(s, 12, 0)
	assert.Equal(t, tcell.RuneHLine, ch)
	ch, _ = cell(s, 11, 1)
	assert.Equal(t, tcell.RuneVLine, ch)
	ch, _ = cell(s, 16, 2)
	assert.Equal(t, tcell.RuneLRCorner, ch)
}

func TestRendererClipsText(t *testing.T) {
	s := newScreen(t)
	r := NewRenderer(s, ui.ColorBlack)

	dl := ui.AcquireDrawList()
	defer ui.ReleaseDrawList(dl)
	dl.PushClipRect(ui.Rect{X: 0, Y: 0, W: 24, H: 48})
	dl.AddText(ui.Vec2{X: 0, Y: 32}, "hello", ui.ColorWhite, 1)
	dl.PopClipRect()
	require.NoError(t, r.Render(dl))

	ch, _ := cell(s, 2, 4)
	assert.Equal(t, 'l', ch)
	ch, _ = cell(s, 3, 4)
	assert.Equal(t, ' ', ch)
}

func TestRendererResize(t *testing.T) {
	s := newScreen(t)
	r := NewRenderer(s, ui.ColorBlack)
	assert.Equal(t, [2]int{20, 6}, [2]int{r.cols, r.rows})
	r.Resize(80, 16)
	assert.Equal(t, [2]int{10, 2}, [2]int{r.cols, r.rows})
	assert.Zero(t, r.FontTextureID())
}

func TestTerminalFrame(t *testing.T) {
	s := newScreen(t)
	g := ui.New(NewRenderer(s, ui.ColorBlack), ui.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	defer g.Close()
	ctx := g.Context()

	var clicked int
	b := ui.NewButton(ctx, "ok", ui.At(8, 8, 64, 16), ui.OnChange(func() { clicked++ }))
	d := ui.NewDialog(ctx, ui.At(0, 0, 160, 48))
	d.AddChild(b)
	ctx.Dialogs().Show(d)

	a := NewAdapter(g.Queue())
	a.Handle(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	a.Handle(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone))
	g.Begin(1)
	assert.Equal(t, 1, clicked)
	require.NoError(t, g.End())

	ch, _ := cell(s, 4, 2)
	assert.Equal(t, 'o', ch, "the label is centred on the button")
}
