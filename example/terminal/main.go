// Terminal shows the settings menu in a terminal.
//
//	go run ./example/terminal/
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	ui "github.com/go-theft-auto/koixui"
	"github.com/go-theft-auto/koixui/backend/terminal"
	"github.com/go-theft-auto/koixui/example/menu"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// The screen owns stdout; logs would corrupt it.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	cfg := ui.DefaultConfig()
	cfg.HoverClaimsFocus = false
	renderer := terminal.NewRenderer(screen, ui.RGBA(18, 18, 22, 255))
	g := ui.New(renderer, ui.WithConfig(cfg), ui.WithLogger(logger))
	defer g.Close()
	input := terminal.NewAdapter(g.Queue())

	cols, rows := screen.Size()
	g.Resize(int(float32(cols)*terminal.CellWidth), int(float32(rows)*terminal.CellHeight))

	quit := make(chan struct{})
	menu.New(g.Context(), func() { close(quit) })

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-quit:
			return nil
		case ev := <-events:
			if k, ok := ev.(*tcell.EventKey); ok && k.Key() == tcell.KeyCtrlQ {
				return nil
			}
			if size, resized := input.Handle(ev); resized {
				g.Resize(int(size.X), int(size.Y))
				screen.Sync()
			}
		case now := <-ticker.C:
			g.Begin(float32(now.Sub(last).Seconds()))
			last = now
			if err := g.End(); err != nil {
				return err
			}
		}
	}
}
