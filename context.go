package ui

import (
	"log/slog"
	"slices"
)

// SceneSwitcher is the scene-management collaborator buttons fall back
// to when they have no callback.
type SceneSwitcher interface {
	SwitchToScene(name string, t Transition) bool
}

// Transition is the visual transition used when switching scenes.
type Transition int

const (
	TransitionCut Transition = iota
	TransitionFade
)

// Context owns one widget tree: the arena, the event manager with its
// capture and focus tokens, the theme and the dialog stack. It is not safe for
// concurrent use; drive it from the frame loop only.
type Context struct {
	widgets   []Handler // indexed by ID; slot 0 is unused
	events    *EventManager
	dialogs   *DialogManager
	theme     *Theme
	config    Config
	scenes    SceneSwitcher
	clipboard Clipboard
	logger    *slog.Logger

	modality  Modality
	mousePos  Vec2
	mouseDown [3]bool
	frame     uint64
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithTheme sets the initial theme.
func WithTheme(t *Theme) ContextOption {
	return func(c *Context) {
		if t != nil {
			c.theme = t
		}
	}
}

// WithConfig sets the configuration.
func WithConfig(cfg Config) ContextOption {
	return func(c *Context) { c.config = cfg }
}

// WithSceneSwitcher sets the scene collaborator.
func WithSceneSwitcher(s SceneSwitcher) ContextOption {
	return func(c *Context) { c.scenes = s }
}

// WithLogger overrides the logger.
func WithLogger(l *slog.Logger) ContextOption {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewContext creates an empty context.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		widgets:   make([]Handler, 1, 64),
		theme:     DefaultTheme(),
		config:    DefaultConfig(),
		clipboard: &MemoryClipboard{},
		logger:    defaultLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.events = NewEventManager(c.receiver, c.logger)
	c.dialogs = newDialogManager(c)
	return c
}

func (c *Context) add(h Handler) ID {
	c.widgets = append(c.widgets, h)
	return ID(len(c.widgets) - 1)
}

func (c *Context) receiver(id ID) Receiver {
	if h := c.Handler(id); h != nil {
		return h
	}
	return nil
}

// Handler returns the variant registered under id, or nil.
func (c *Context) Handler(id ID) Handler {
	if id == 0 || int(id) >= len(c.widgets) {
		return nil
	}
	return c.widgets[id]
}

// Widget returns the widget record for id, or nil.
func (c *Context) Widget(id ID) *Widget {
	if h := c.Handler(id); h != nil {
		return h.Base()
	}
	return nil
}

// Events returns the event manager.
func (c *Context) Events() *EventManager { return c.events }

// Dialogs returns the dialog manager.
func (c *Context) Dialogs() *DialogManager { return c.dialogs }

// Theme returns the current theme.
func (c *Context) Theme() *Theme { return c.theme }

// SetTheme swaps the theme; every live widget re-resolves its look.
func (c *Context) SetTheme(t *Theme) {
	if t == nil {
		return
	}
	c.theme = t
	for _, h := range c.widgets[1:] {
		if h != nil {
			h.Base().resolveLook()
		}
	}
	c.logger.Info("theme applied", "name", t.Name)
}

// Config returns the configuration.
func (c *Context) Config() Config { return c.config }

// Logger returns the context logger.
func (c *Context) Logger() *slog.Logger { return c.logger }

// Modality returns the device class of the last processed event.
func (c *Context) Modality() Modality { return c.modality }

// MousePos returns the last known pointer position.
func (c *Context) MousePos() Vec2 { return c.mousePos }

// MouseHit returns the widget under the mouse.
func (c *Context) MouseHit() ID { return c.events.MouseHit() }

// Frame returns the number of completed Update calls.
func (c *Context) Frame() uint64 { return c.frame }

func (c *Context) anyMouseDown() bool {
	return c.mouseDown[0] || c.mouseDown[1] || c.mouseDown[2]
}

// FocusedID returns the focus holder, or 0.
func (c *Context) FocusedID() ID { return c.events.Focus() }

// Focused returns the focus holder, or nil.
func (c *Context) Focused() *Widget { return c.Widget(c.events.Focus()) }

// ClearFocus drops the focus token.
func (c *Context) ClearFocus() { c.setFocus(0) }

func (c *Context) setFocus(id ID) {
	prev := c.events.SetFocus(id)
	if prev == id {
		return
	}
	if w := c.Widget(id); w != nil {
		if d := w.ParentDialog(); d != nil {
			d.lastFocus = id
			c.dialogs.current = d.id
		}
	}
	if uiVerbose() {
		c.logger.Debug("focus", "from", c.describe(prev), "to", c.describe(id))
	}
}

func (c *Context) describe(id ID) string {
	w := c.Widget(id)
	if w == nil {
		return "none"
	}
	if w.name != "" {
		return w.name
	}
	return w.kind.String()
}

// SwitchScene asks the scene collaborator to switch scenes.
func (c *Context) SwitchScene(name string, t Transition) bool {
	if c.scenes == nil {
		contract(false, "no scene switcher configured", "scene", name)
		return false
	}
	return c.scenes.SwitchToScene(name, t)
}

// HitTest returns the widget under screen point p. Dialogs are tested
// top-down; a modal dialog hides everything beneath it.
func (c *Context) HitTest(p Vec2) ID {
	stack := c.dialogs.stack
	for i := len(stack) - 1; i >= 0; i-- {
		d, ok := c.Handler(stack[i]).(*Dialog)
		if !ok {
			continue
		}
		if hit := d.HitTest(p); hit != 0 {
			return hit
		}
		if d.modal {
			return 0
		}
	}
	return 0
}

// ProcessEvent records the event's modality and pointer position,
// resolves hit targets and dispatches it. It reports whether a widget
// consumed the event.
func (c *Context) ProcessEvent(ev Event) bool {
	c.modality = ev.Modality()
	switch e := ev.(type) {
	case MouseEvent:
		c.mousePos = e.Pos
		switch e.Kind {
		case MouseLeftDown, MouseLeftUp:
			c.mouseDown[0] = e.Kind == MouseLeftDown
		case MouseRightDown, MouseRightUp:
			c.mouseDown[1] = e.Kind == MouseRightDown
		case MouseMiddleDown, MouseMiddleUp:
			c.mouseDown[2] = e.Kind == MouseMiddleDown
		}
		c.events.SetMouseHit(c.HitTest(e.Pos))
	case TouchEvent:
		if s, ok := e.Primary(); ok {
			e.Hit = c.HitTest(s.Pos)
			c.events.SetTouchHit(e.Hit)
		}
		ev = e
	case TapEvent:
		if e.Hit == 0 {
			e.Hit = c.HitTest(e.Pos)
		}
		ev = e
	}

	if c.events.Dispatch(ev) {
		return true
	}
	if ke, ok := ev.(KeyEvent); ok && ke.Key == KeyTab && ke.Ctrl {
		if ke.Shift {
			c.dialogs.FocusPrevDialog()
		} else {
			c.dialogs.FocusNextDialog()
		}
		return true
	}
	return false
}

// Update advances every shown dialog by dt seconds: hover sampling,
// variant state, combined-state resolution and look twitches.
func (c *Context) Update(dt float32) {
	for _, id := range c.dialogs.stack {
		if w := c.Widget(id); w != nil {
			w.update(dt)
		}
	}
	c.frame++
}

// Render draws every shown dialog, bottom to top.
func (c *Context) Render(dl *DrawList) {
	for _, id := range c.dialogs.stack {
		if w := c.Widget(id); w != nil {
			w.render(dl)
		}
	}
}

// Remove tears a widget down: it is deactivated, loses any token it
// holds and leaves the arena. Its id is never handed out again.
func (c *Context) Remove(id ID) {
	h := c.Handler(id)
	if h == nil {
		return
	}
	if d, ok := h.(*Dialog); ok {
		c.dialogs.Kill(d)
	} else {
		h.Deactivate()
	}
	w := h.Base()
	for _, child := range slices.Clone(w.children) {
		c.Remove(child)
	}
	if p := c.Widget(w.parent); p != nil {
		p.children = slices.DeleteFunc(p.children, func(x ID) bool { return x == id })
	}
	c.events.UnregisterAll(id)
	c.widgets[id] = nil
}
