// Command gen builds each widget kind in a dialog, renders a few frames
// into a hidden window and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/ [-theme theme.toml]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	ui "github.com/go-theft-auto/koixui"
	"github.com/go-theft-auto/koixui/backend/opengl"
	"github.com/go-theft-auto/koixui/example/menu"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	theme := flag.String("theme", "", "TOML theme to render with")
	flag.Parse()
	if err := run(*theme); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is one captured image.
type screenshot struct {
	name   string
	width  int
	height int
	build  func(ctx *ui.Context)
	input  []ui.Event // delivered before the first frame
	frames int        // 0 = default 3
}

func run(themePath string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "koixui-screenshots", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("ui renderer: %w", err)
	}
	defer renderer.Delete()

	cfg := ui.DefaultConfig()
	cfg.ThemeFile = themePath

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, cfg, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}
	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, cfg ui.Config, s screenshot, outDir string) error {
	// The hidden window stays at 800x600; only the projection follows the
	// shot so the framebuffer and scissor agree.
	renderer.Resize(s.width, s.height)

	// Fresh GUI per shot so focus and dialogs do not leak between them.
	g := ui.New(renderer, ui.WithConfig(cfg), ui.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	defer g.Close()
	s.build(g.Context())
	for _, ev := range s.input {
		g.Queue().Push(ev)
	}

	frames := 3
	if s.frames > 0 {
		frames = s.frames
	}
	for range frames {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		// A full second per frame lets every twitch settle.
		g.Begin(1)
		if err := g.End(); err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// OpenGL rows run bottom-up.
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// show stacks widgets vertically in a dialog filling the shot.
func show(ctx *ui.Context, w, h float32, widgets ...ui.Handler) *ui.Dialog {
	d := ui.NewDialog(ctx, ui.At(0, 0, w, h))
	set := ui.NewWidgetSet(ctx, ui.StackWith(ui.Layout{Type: ui.LayoutVertical, Gap: 8, Padding: 12}))
	set.Add(widgets...)
	d.AddChild(set)
	ctx.Dialogs().Show(d)
	return d
}

func nop() {}

func buildScreenshots() []screenshot {
	tab := ui.KeyEvent{Key: ui.KeyTab}
	return []screenshot{
		{
			name: "button", width: 300, height: 140,
			build: func(ctx *ui.Context) {
				show(ctx, 300, 140,
					ui.NewButton(ctx, "Focused", ui.At(0, 0, 140, 28), ui.OnChange(nop)),
					ui.NewButton(ctx, "Normal", ui.At(0, 0, 140, 28), ui.OnChange(nop)),
					ui.NewButton(ctx, "Latched", ui.At(0, 0, 140, 28), ui.Latchable(), ui.OnChange(nop)),
				)
			},
			input: []ui.Event{tab, tab, ui.KeyEvent{Key: ui.KeyEnter}},
		},
		{
			name: "checkbox", width: 300, height: 100,
			build: func(ctx *ui.Context) {
				show(ctx, 300, 100,
					ui.NewLabelHelp(ctx, ui.NewCheckBox(ctx, "", ui.WithChecked(true)), "Enabled feature"),
					ui.NewLabelHelp(ctx, ui.NewCheckBox(ctx, ""), "Disabled feature"),
				)
			},
		},
		{
			name: "radio", width: 300, height: 150,
			build: func(ctx *ui.Context) {
				group := ui.NewRadioGroup(ctx, nil)
				var rows []ui.Handler
				for i, name := range []string{"Easy", "Normal", "Hard"} {
					rb := ui.NewRadioButton(ctx, group, name, ui.WithChecked(i == 1))
					rows = append(rows, ui.NewLabelHelp(ctx, rb, name))
				}
				show(ctx, 300, 150, rows...)
			},
		},
		{
			name: "slider", width: 320, height: 80,
			build: func(ctx *ui.Context) {
				s := ui.NewSlider(ctx, "volume", ui.WithRange(0, 1), ui.WithIncrement(0.05),
					ui.WithValue(0.65), ui.At(0, 0, 200, 24))
				s.SetDecimals(2)
				show(ctx, 320, 80, s)
			},
		},
		{
			name: "textbox", width: 300, height: 130,
			build: func(ctx *ui.Context) {
				show(ctx, 300, 130,
					ui.NewTextBox(ctx, ui.WithText("Hello, world!"), ui.At(0, 0, 200, 24)),
					ui.NewTextBox(ctx, ui.WithHint("player name"), ui.At(0, 0, 200, 24)),
					ui.NewTextBox(ctx, ui.WithText("secret"), ui.Masked(), ui.At(0, 0, 200, 24)),
				)
			},
		},
		{
			name: "labelhelp", width: 360, height: 80,
			build: func(ctx *ui.Context) {
				show(ctx, 360, 80,
					ui.NewLabelHelp(ctx, ui.NewCheckBox(ctx, ""), "Show grid", ui.WithHelp(nop)),
				)
			},
		},
		{
			name: "menu", width: 480, height: 420,
			build: func(ctx *ui.Context) {
				menu.New(ctx, nop)
			},
		},
	}
}
