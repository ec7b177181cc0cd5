package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records what it was asked to draw.
type fakeRenderer struct {
	frames int
	cmds   []DrawCmd
	prims  int
	idx    int
	w, h   int
	fail   error
}

func (r *fakeRenderer) Render(dl *DrawList) error {
	r.frames++
	r.cmds = append([]DrawCmd(nil), dl.CmdBuffer...)
	r.prims = len(dl.Prims)
	r.idx = len(dl.IdxBuffer)
	return r.fail
}

func (r *fakeRenderer) FontTextureID() uint32 { return 3 }

func (r *fakeRenderer) Resize(w, h int) { r.w, r.h = w, h }

func newTestGUI(t *testing.T, cfg Config) (*GUI, *fakeRenderer) {
	t.Helper()
	r := &fakeRenderer{}
	g := New(r, WithLogger(quietLogger), WithConfig(cfg))
	t.Cleanup(func() { g.Close() })
	return g, r
}

func writeTheme(t *testing.T, path, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("name = \""+name+"\"\n"), 0o644))
}

func TestGUIBeginDrainsQueue(t *testing.T) {
	g, _ := newTestGUI(t, DefaultConfig())
	ctx := g.Context()
	clicked, n := counter()
	b := NewButton(ctx, "ok", At(10, 10, 100, 30), OnChange(clicked))
	newTestDialog(ctx, b)

	p := center(b)
	g.Queue().Push(MouseEvent{Kind: MouseLeftDown, Pos: p})
	g.Queue().Push(MouseEvent{Kind: MouseLeftUp, Pos: p})
	assert.Equal(t, 2, g.Queue().Len())

	g.Begin(0.016)
	assert.Equal(t, 1, *n)
	assert.Equal(t, 0, g.Queue().Len())
	assert.Equal(t, ModalityMouse, ctx.Modality())
}

func TestGUIGamePad(t *testing.T) {
	g, _ := newTestGUI(t, DefaultConfig())
	ctx := g.Context()
	clicked, n := counter()
	newTestDialog(ctx, NewButton(ctx, "ok", At(10, 10, 100, 30), OnChange(clicked)))

	g.Pad().Set(PadA, true)
	g.Begin(0.016)
	assert.Equal(t, 1, *n)
	require.NoError(t, g.End())

	g.Begin(0.016)
	assert.Equal(t, 1, *n, "a held button is delivered once")
	assert.Equal(t, ModalityGamePad, ctx.Modality())
}

func TestGUIEndRenders(t *testing.T) {
	g, r := newTestGUI(t, DefaultConfig())
	ctx := g.Context()
	newTestDialog(ctx, NewButton(ctx, "ok", At(10, 10, 100, 30), OnChange(nop)))

	g.Begin(1)
	require.NoError(t, g.End())
	assert.Equal(t, 1, r.frames)
	assert.NotZero(t, r.prims)

	var total int
	var sawFont bool
	for _, cmd := range r.cmds {
		assert.NotZero(t, cmd.ElemCount, "empty commands are dropped")
		total += int(cmd.ElemCount)
		sawFont = sawFont || cmd.TextureID == 3
	}
	assert.Equal(t, r.idx, total)
	assert.True(t, sawFont, "text samples the renderer's font texture")
}

func TestGUIEndReturnsRendererError(t *testing.T) {
	g, r := newTestGUI(t, DefaultConfig())
	r.fail = errors.New("device lost")
	g.Begin(0)
	assert.ErrorIs(t, g.End(), r.fail)
}

func TestGUIResize(t *testing.T) {
	g, r := newTestGUI(t, DefaultConfig())
	g.Resize(640, 480)
	assert.Equal(t, Vec2{X: 640, Y: 480}, g.Size())
	assert.Equal(t, [2]int{640, 480}, [2]int{r.w, r.h})
}

func TestGUILoadsThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	writeTheme(t, path, "file")
	cfg := DefaultConfig()
	cfg.ThemeFile = path
	cfg.PadRepeatDelay = 0.25
	g, _ := newTestGUI(t, cfg)
	assert.Equal(t, "file", g.Context().Theme().Name)
	assert.Equal(t, float32(0.25), g.Pad().RepeatDelay)
	assert.NoError(t, g.Close(), "no watcher to close")
}

func TestGUIBadThemeKeepsDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ThemeFile = filepath.Join(t.TempDir(), "missing.toml")
	g, _ := newTestGUI(t, cfg)
	assert.Equal(t, "default", g.Context().Theme().Name)

	err := g.LoadTheme(cfg.ThemeFile, true)
	assert.Error(t, err)
}

func TestGUIWatchesTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	writeTheme(t, path, "first")
	cfg := DefaultConfig()
	cfg.ThemeFile = path
	cfg.WatchTheme = true
	g, _ := newTestGUI(t, cfg)
	require.Equal(t, "first", g.Context().Theme().Name)

	writeTheme(t, path, "second")
	require.Eventually(t, func() bool {
		g.Begin(0)
		return g.Context().Theme().Name == "second"
	}, 5*time.Second, 10*time.Millisecond)

	assert.NoError(t, g.Close())
	assert.NoError(t, g.Close())
}

func TestWatchThemeMissingDir(t *testing.T) {
	_, err := WatchTheme(filepath.Join(t.TempDir(), "nope", "theme.toml"), quietLogger)
	assert.Error(t, err)
}

func TestThemeWatcherKeepsNewest(t *testing.T) {
	tw := &ThemeWatcher{themes: make(chan *Theme, 1)}
	first, second := &Theme{Name: "first"}, &Theme{Name: "second"}
	tw.publish(first)
	tw.publish(second)
	select {
	case got := <-tw.Themes():
		assert.Same(t, second, got)
	default:
		t.Fatal("no theme published")
	}
	assert.Empty(t, tw.themes)
}
