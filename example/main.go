// Example shows the settings menu in a GLFW window.
//
//	go run ./example/ [-config koix.toml]
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	ui "github.com/go-theft-auto/koixui"
	"github.com/go-theft-auto/koixui/backend/opengl"
	"github.com/go-theft-auto/koixui/example/menu"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "koixui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	flag.Parse()
	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := ui.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = ui.LoadConfig(configPath); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	// The adapter needs the GUI's queue and the GUI wants the adapter's
	// clipboard, so the clipboard is bound through the window directly.
	clip := opengl.WindowClipboard(window)
	g := ui.New(renderer, ui.WithConfig(cfg), ui.WithClipboard(clip))
	defer g.Close()
	input := opengl.NewGLFWInputAdapter(window, g.Queue(), g.Pad())

	menu.New(g.Context(), func() { window.SetShouldClose(true) })

	last := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()
		input.Poll()

		w, h := window.GetFramebufferSize()
		if v := g.Size(); int(v.X) != w || int(v.Y) != h {
			g.Resize(w, h)
		}
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		now := time.Now()
		g.Begin(float32(now.Sub(last).Seconds()))
		last = now
		if err := g.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		window.SwapBuffers()
	}
	return nil
}
