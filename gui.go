package ui

// Renderer draws a frame's draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI drives one Context from a frame loop. Backends push events into
// Queue and pad state into Pad; each frame calls Begin then End.
//
//	g := ui.New(renderer, ui.WithConfig(cfg))
//	defer g.Close()
//	for running {
//		g.Begin(dt)
//		if err := g.End(); err != nil { ... }
//	}
type GUI struct {
	renderer Renderer
	ctx      *Context
	queue    EventQueue
	pad      *GamePad
	watcher  *ThemeWatcher
	size     Vec2
}

// New creates a GUI. When the configuration names a theme file it is
// loaded, and watched if asked; a theme that fails to load is logged and
// the current theme kept.
func New(renderer Renderer, opts ...ContextOption) *GUI {
	g := &GUI{
		renderer: renderer,
		ctx:      NewContext(opts...),
		pad:      NewGamePad(),
	}
	cfg := g.ctx.config
	if cfg.Verbose {
		SetVerbose(true)
	}
	g.pad.RepeatDelay = cfg.PadRepeatDelay
	g.pad.RepeatInterval = cfg.PadRepeatInterval
	if cfg.ThemeFile != "" {
		if err := g.LoadTheme(cfg.ThemeFile, cfg.WatchTheme); err != nil {
			g.ctx.logger.Warn("theme not loaded", "err", err)
		}
	}
	return g
}

// Context returns the widget context.
func (g *GUI) Context() *Context { return g.ctx }

// Queue returns the event queue backends feed.
func (g *GUI) Queue() *EventQueue { return &g.queue }

// Pad returns the gamepad backends update.
func (g *GUI) Pad() *GamePad { return g.pad }

// Size returns the display size from the last Resize.
func (g *GUI) Size() Vec2 { return g.size }

// LoadTheme applies the theme at path and, with watch set, keeps applying
// it as the file changes. Any earlier watch is stopped.
func (g *GUI) LoadTheme(path string, watch bool) error {
	t, err := LoadTheme(path)
	if err != nil {
		return err
	}
	g.ctx.SetTheme(t)
	if g.watcher != nil {
		g.watcher.Close()
		g.watcher = nil
	}
	if !watch {
		return nil
	}
	w, err := WatchTheme(path, g.ctx.logger)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

// Begin applies a pending theme reload, dispatches the queued events and
// the gamepad, then updates every shown widget.
func (g *GUI) Begin(dt float32) {
	if g.watcher != nil {
		select {
		case t := <-g.watcher.Themes():
			g.ctx.SetTheme(t)
		default:
		}
	}
	for _, ev := range g.queue.Drain() {
		g.ctx.ProcessEvent(ev)
	}
	g.pad.Advance(dt)
	if g.pad.Pending() {
		g.ctx.ProcessEvent(GamePadEvent{Pad: g.pad})
	}
	g.ctx.Update(dt)
}

// End renders the shown dialogs and clears the pad's edges.
func (g *GUI) End() error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	dl.SetFontTexture(g.renderer.FontTextureID())
	g.ctx.Render(dl)
	dl.Finalize()
	g.pad.EndFrame()
	return g.renderer.Render(dl)
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	g.size = Vec2{X: float32(width), Y: float32(height)}
	g.renderer.Resize(width, height)
}

// Close stops the theme watcher, if any.
func (g *GUI) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}
