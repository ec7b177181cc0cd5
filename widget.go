package ui

// ID identifies a widget in its Context. IDs are never reused; 0 means none.
type ID uint32

// Handler is a widget variant. Variants embed *Widget, which supplies
// no-op event handlers and the shared lifecycle, and override what they
// need.
type Handler interface {
	Receiver
	Base() *Widget
	Activate()
	Deactivate()
	Disable()
}

// Optional variant hooks.
type (
	// categorized variants list the event categories they register for
	// on activation.
	categorized interface {
		Categories() []Category
	}
	// updater variants advance per-frame state of their own.
	updater interface {
		UpdateWidget(dt float32)
	}
	// drawer variants render themselves; the default draws the look.
	drawer interface {
		Draw(dl *DrawList, r Rect, look Look)
	}
	// stateWatcher variants are told about combined-state changes.
	stateWatcher interface {
		StateChanged(prev, next UIState)
	}
	// triggerable variants perform their primary action on demand.
	triggerable interface {
		Trigger()
	}
)

// exclusiveGroup keeps at most one member selected.
type exclusiveGroup interface {
	clearExcept(id ID)
	changed(w *Widget)
}

// Direction indexes d-pad links.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Widget is the record every variant shares: tree position, top-level
// state, the selected/hover flags and the eased look.
type Widget struct {
	ctx      *Context
	id       ID
	kind     Kind
	name     string
	data     any
	handler  Handler
	parent   ID
	dialog   ID
	children []ID
	rect     Rect

	state     UIState
	selected  bool
	hover     bool
	hoverable bool
	focusable bool
	hittable  bool

	focusProxy ID
	group      exclusiveGroup
	links      [4]ID
	onChange   func()

	combined UIState
	look     *LookTwitch
	resolves int
}

// newWidget allocates the shared record for a variant. Callers must call
// attach once the variant wraps it.
func newWidget(ctx *Context, kind Kind, o options) *Widget {
	w := &Widget{
		ctx:       ctx,
		kind:      kind,
		name:      GetOpt(o, OptID),
		data:      GetOpt(o, OptData),
		rect:      GetOpt(o, OptRect),
		state:     StateInactive,
		hoverable: GetOpt(o, OptHoverable),
		focusable: GetOpt(o, OptFocusable),
		hittable:  true,
		onChange:  GetOpt(o, OptOnChange),
		combined:  StateInactive,
	}
	t := ctx.Theme()
	w.look = NewLookTwitch(t.Look(kind, StateInactive), t.TwitchTime, t.TwitchShape)
	return w
}

// attach registers the variant in the context arena.
func (w *Widget) attach(h Handler) {
	w.handler = h
	w.id = w.ctx.add(h)
}

// Base returns w itself.
func (w *Widget) Base() *Widget { return w }

// ID returns the widget's arena id.
func (w *Widget) ID() ID { return w.id }

// Kind returns the widget kind.
func (w *Widget) Kind() Kind { return w.kind }

// Name returns the debug name given with WithID.
func (w *Widget) Name() string { return w.name }

// Data returns the user value attached with WithData.
func (w *Widget) Data() any { return w.data }

// SetData attaches a user value.
func (w *Widget) SetData(v any) { w.data = v }

// Context returns the owning context.
func (w *Widget) Context() *Context { return w.ctx }

// Parent returns the parent id, or 0 for roots.
func (w *Widget) Parent() ID { return w.parent }

// Children returns the child ids in registration order.
func (w *Widget) Children() []ID { return w.children }

// Rect returns the rectangle relative to the parent.
func (w *Widget) Rect() Rect { return w.rect }

// SetRect sets the rectangle relative to the parent.
func (w *Widget) SetRect(r Rect) { w.rect = r }

// ScreenRect returns the rectangle in screen coordinates.
func (w *Widget) ScreenRect() Rect {
	r := w.rect
	for p := w.ctx.Widget(w.parent); p != nil; p = w.ctx.Widget(p.parent) {
		r = r.Offset(p.rect.Min())
	}
	return r
}

// AddChild appends h to w's children. A child belongs to exactly one
// parent; children activate and register before their parent.
func (w *Widget) AddChild(h Handler) {
	c := h.Base()
	if c.parent != 0 {
		contract(false, "widget already has a parent", "child", c.id, "parent", c.parent)
		return
	}
	c.parent = w.id
	w.children = append(w.children, c.id)
	dialog := w.dialog
	if w.kind == KindDialog {
		dialog = w.id
	}
	c.setDialog(dialog)
	if w.Active() {
		h.Activate()
	}
}

func (w *Widget) setDialog(d ID) {
	w.dialog = d
	for _, id := range w.children {
		if c := w.ctx.Widget(id); c != nil {
			c.setDialog(d)
		}
	}
}

// ParentDialog returns the dialog containing w, or nil.
func (w *Widget) ParentDialog() *Dialog {
	if d, ok := w.ctx.Handler(w.dialog).(*Dialog); ok {
		return d
	}
	return nil
}

// Active reports whether w is rendering and accepting input.
func (w *Widget) Active() bool { return w.state == StateActive }

// Inactive reports whether w is neither rendering nor accepting input.
func (w *Widget) Inactive() bool { return w.state == StateInactive }

// Disabled reports whether w is rendering greyed out without input.
func (w *Widget) Disabled() bool { return w.state == StateDisabled }

// Activate makes w and its children active and registers them for input,
// children first.
func (w *Widget) Activate() {
	if w.Active() {
		return
	}
	for _, id := range w.children {
		if h := w.ctx.Handler(id); h != nil {
			h.Activate()
		}
	}
	if c, ok := w.handler.(categorized); ok {
		for _, cat := range c.Categories() {
			w.ctx.events.Register(w.id, cat)
		}
	}
	w.state = StateActive
}

// Deactivate removes w and its children from input and rendering. Any
// capture or focus token they hold is released.
func (w *Widget) Deactivate() {
	if w.Inactive() {
		return
	}
	w.ctx.events.UnregisterAll(w.id)
	for _, id := range w.children {
		if h := w.ctx.Handler(id); h != nil {
			h.Deactivate()
		}
	}
	w.hover = false
	w.state = StateInactive
}

// Disable greys w out. If it held focus, focus moves on to the next
// widget in its dialog.
func (w *Widget) Disable() {
	if w.Disabled() {
		return
	}
	if w.InFocus() {
		if d := w.ParentDialog(); d != nil {
			d.FocusNextWidget()
		}
	}
	// Still focused when nothing else could take it; UnregisterAll drops it.
	w.ctx.events.UnregisterAll(w.id)
	for _, id := range w.children {
		if h := w.ctx.Handler(id); h != nil {
			h.Disable()
		}
	}
	w.hover = false
	w.state = StateDisabled
}

// Selected reports the pressed/checked/on flag.
func (w *Widget) Selected() bool { return w.selected }

// SetSelected sets the selected flag. In an exclusivity group, selecting
// w unselects every sibling before w is marked, and the group is told
// about the change if w is active.
func (w *Widget) SetSelected(v bool) {
	if w.selected == v {
		return
	}
	if v && w.group != nil {
		w.group.clearExcept(w.id)
	}
	w.selected = v
	if v && w.group != nil && w.Active() {
		w.group.changed(w)
	}
}

// Hover reports whether the pointer is over w with nothing else captured.
func (w *Widget) Hover() bool { return w.hover }

// Hoverable reports whether w responds to hover.
func (w *Widget) Hoverable() bool { return w.hoverable }

// SetHoverable enables or disables hover tracking.
func (w *Widget) SetHoverable(v bool) {
	w.hoverable = v
	if !v {
		w.hover = false
	}
}

// Focusable reports whether w can take focus itself.
func (w *Widget) Focusable() bool { return w.focusable }

// SetFocusable opts w in or out of focus.
func (w *Widget) SetFocusable(v bool) { w.focusable = v }

// SetFocusProxy makes w report the focus of id, and forwards SetFocus to it.
func (w *Widget) SetFocusProxy(id ID) { w.focusProxy = id }

// FocusProxy returns the proxied id, or 0.
func (w *Widget) FocusProxy() ID { return w.focusProxy }

// InFocus reports whether w (or its focus proxy) holds the focus token.
func (w *Widget) InFocus() bool {
	if w.focusProxy != 0 {
		if p := w.ctx.Widget(w.focusProxy); p != nil {
			return p.InFocus()
		}
		return false
	}
	return w.id != 0 && w.ctx.events.Focus() == w.id
}

// focusTarget returns the widget that SetFocus on w would focus.
func (w *Widget) focusTarget() *Widget {
	if w.focusProxy != 0 {
		if p := w.ctx.Widget(w.focusProxy); p != nil {
			return p.focusTarget()
		}
		return nil
	}
	if w.focusable {
		return w
	}
	for _, id := range w.children {
		if c := w.ctx.Widget(id); c != nil && c.Active() {
			if t := c.focusTarget(); t != nil {
				return t
			}
		}
	}
	return nil
}

// CanFocus reports whether SetFocus would succeed now.
func (w *Widget) CanFocus() bool {
	t := w.focusTarget()
	return t != nil && t.Active()
}

// SetFocus steals the focus token for w. Composites forward to their
// proxy, or to their first focusable child.
func (w *Widget) SetFocus() bool {
	t := w.focusTarget()
	if t == nil || !t.Active() {
		return false
	}
	w.ctx.setFocus(t.id)
	return true
}

// ClearFocus releases the focus token if w holds it.
func (w *Widget) ClearFocus() {
	if w.focusProxy != 0 {
		if p := w.ctx.Widget(w.focusProxy); p != nil {
			p.ClearFocus()
		}
		return
	}
	if w.ctx.events.Focus() == w.id {
		w.ctx.setFocus(0)
	}
}

// SetPadLink sets the widget d-pad navigation moves to from w.
func (w *Widget) SetPadLink(dir Direction, id ID) {
	if dir >= DirUp && dir <= DirRight {
		w.links[dir] = id
	}
}

// PadLink returns the d-pad neighbour in dir.
func (w *Widget) PadLink(dir Direction) ID {
	if dir < DirUp || dir > DirRight {
		return 0
	}
	return w.links[dir]
}

// OnChange runs the change callback, if any.
func (w *Widget) OnChange() {
	if w.onChange != nil {
		w.onChange()
	}
}

// SetOnChange replaces the change callback.
func (w *Widget) SetOnChange(fn func()) { w.onChange = fn }

// HitTest returns the deepest active widget under screen point p, or 0.
// Decorative widgets are never hit; the point falls through to their parent.
func (w *Widget) HitTest(p Vec2) ID {
	if !w.Active() || !w.ScreenRect().Contains(p) {
		return 0
	}
	for _, id := range w.children {
		if c := w.ctx.Widget(id); c != nil {
			if hit := c.HitTest(p); hit != 0 {
				return hit
			}
		}
	}
	if w.hittable {
		return w.id
	}
	return 0
}

// Contains reports whether id is w or one of its descendants.
func (w *Widget) Contains(id ID) bool {
	for x := w.ctx.Widget(id); x != nil; x = w.ctx.Widget(x.parent) {
		if x.id == w.id {
			return true
		}
	}
	return false
}

// CombinedState computes the combined state from the current flags.
func (w *Widget) CombinedState() UIState {
	return Combine(w.state, w.selected, w.InFocus(), w.hover)
}

// update samples hover, advances variant state and, when the combined
// state changed since the last tick, re-resolves the look once.
func (w *Widget) update(dt float32) {
	w.sampleHover()
	for _, id := range w.children {
		if c := w.ctx.Widget(id); c != nil {
			c.update(dt)
		}
	}
	if u, ok := w.handler.(updater); ok && !w.Inactive() {
		u.UpdateWidget(dt)
	}
	w.refreshState()
	w.look.Update(dt)
}

func (w *Widget) sampleHover() {
	ctx := w.ctx
	w.hover = false
	if !w.Active() || !w.hoverable || ctx.modality != ModalityMouse || ctx.anyMouseDown() {
		return
	}
	if c := ctx.events.MouseCapture(); c != 0 && c != w.id {
		return
	}
	w.hover = ctx.events.MouseHit() == w.id
	if w.hover && ctx.config.HoverClaimsFocus && !w.InFocus() && w.CanFocus() {
		w.SetFocus()
	}
}

func (w *Widget) refreshState() {
	next := w.CombinedState()
	if next == w.combined {
		return
	}
	prev := w.combined
	w.combined = next
	w.resolveLook()
	if sw, ok := w.handler.(stateWatcher); ok {
		sw.StateChanged(prev, next)
	}
}

func (w *Widget) resolveLook() {
	t := w.ctx.Theme()
	w.resolves++
	w.look.SetTarget(t.Look(w.kind, w.combined), t.TwitchTime, t.TwitchShape)
}

// Look returns the displayed (possibly mid-twitch) look.
func (w *Widget) Look() Look { return w.look.Current() }

// render draws w and its children.
func (w *Widget) render(dl *DrawList) {
	if w.Inactive() {
		return
	}
	r := w.ScreenRect()
	look := w.look.Current()
	if d, ok := w.handler.(drawer); ok {
		d.Draw(dl, r, look)
	} else {
		dl.AddLook(r, look)
	}
	for _, id := range w.children {
		if c := w.ctx.Widget(id); c != nil {
			c.render(dl)
		}
	}
}

// Default event handlers: not consumed.

func (w *Widget) HandleMouse(MouseEvent) bool     { return false }
func (w *Widget) HandleKey(KeyEvent) bool         { return false }
func (w *Widget) HandleGamePad(GamePadEvent) bool { return false }
func (w *Widget) HandleTouch(TouchEvent) bool     { return false }
func (w *Widget) HandleTap(TapEvent) bool         { return false }

// claimPress takes mouse capture for a press on w and asks for the
// matching release. It fails unless w is under the pointer and the
// capture token is free.
func (w *Widget) claimPress(extra ...Category) bool {
	em := w.ctx.events
	if em.MouseHit() != w.id || !em.CaptureMouse(w.id) {
		return false
	}
	em.Register(w.id, CategoryMouseLeftUp)
	for _, cat := range extra {
		em.Register(w.id, cat)
	}
	return true
}

// releasePress gives capture back after a press claimed by claimPress.
// It reports false if w did not hold capture.
func (w *Widget) releasePress(extra ...Category) bool {
	em := w.ctx.events
	if em.MouseCapture() != w.id {
		return false
	}
	em.ReleaseMouse(w.id)
	em.Unregister(w.id, CategoryMouseLeftUp)
	for _, cat := range extra {
		em.Unregister(w.id, cat)
	}
	return true
}
