package ui

import "github.com/chewxy/math32"

// linkBias is the share of the perpendicular gap added to the primary gap
// when scoring diagonal d-pad neighbours, so straight links win.
const linkBias = 0.2

// Dialog is a root container shown through the DialogManager. A modal
// dialog gets its own registration scope, so nothing beneath it sees
// input until it is killed.
type Dialog struct {
	*Widget
	modal                 bool
	dismissOnClickOutside bool
	onCancel              func()
	onDeactivate          func()

	tabList   []ID
	autoTabs  bool
	lastFocus ID
	scope     *RegistrationSet
}

// NewDialog creates an inactive dialog. Show it with Context.Dialogs().Show.
func NewDialog(ctx *Context, opts ...Option) *Dialog {
	o := applyOptions(opts)
	d := &Dialog{
		Widget:                newWidget(ctx, KindDialog, o),
		modal:                 GetOpt(o, OptModal),
		dismissOnClickOutside: GetOpt(o, OptDismissOnClickOutside),
		onCancel:              GetOpt(o, OptOnCancel),
		onDeactivate:          GetOpt(o, OptOnDeactivate),
	}
	d.focusable = false
	d.hoverable = false
	d.attach(d)
	return d
}

// Modal reports whether the dialog owns a registration scope.
func (d *Dialog) Modal() bool { return d.modal }

// Categories registers for navigation input, and for presses when the
// dialog dismisses on an outside click.
func (d *Dialog) Categories() []Category {
	cats := []Category{CategoryKeyboard, CategoryGamePad}
	if d.dismissOnClickOutside {
		cats = append(cats, CategoryMouseLeftDown, CategoryTap)
	}
	return cats
}

// Activate pushes the dialog's scope when modal, then activates the
// children and the dialog itself, builds the tab list and d-pad links if
// none were given and, when the dialog is on top, seeds focus.
func (d *Dialog) Activate() {
	if d.Active() {
		return
	}
	if d.modal {
		d.scope = d.ctx.events.PushSet()
	}
	d.Widget.Activate()
	if len(d.tabList) == 0 || d.autoTabs {
		d.CreateTabList()
		d.CreateDPadLinks()
		d.autoTabs = true
	}
	if m := d.ctx.dialogs; m.Top() == d || !m.Shown(d) {
		d.SetFocus()
	}
}

// Deactivate tears the dialog down: every descendant leaves dispatch and
// drops any capture or focus token it holds, OnDeactivate runs and a
// modal dialog's own scope is popped, even when another sits above it.
// The dialog leaves the manager's stack.
func (d *Dialog) Deactivate() {
	if d.Inactive() {
		return
	}
	d.Widget.Deactivate()
	if d.onDeactivate != nil {
		d.onDeactivate()
	}
	if d.scope != nil {
		d.ctx.events.PopSet(d.scope)
		d.scope = nil
	}
	d.ctx.dialogs.dropped(d)
}

// Kill removes the dialog from the manager.
func (d *Dialog) Kill() { d.ctx.dialogs.Kill(d) }

// TabList returns the tab order.
func (d *Dialog) TabList() []ID { return d.tabList }

// CreateTabList sets the tab order. With no arguments every focusable
// widget in the dialog is collected depth first; composites that proxy
// focus count as one entry.
func (d *Dialog) CreateTabList(entries ...Handler) {
	d.tabList = d.tabList[:0]
	d.autoTabs = false
	if len(entries) == 0 {
		d.collectFocusable(d.Widget)
		return
	}
	for _, h := range entries {
		w := h.Base()
		contract(w.focusTarget() != nil, "tab list entry cannot take focus", "widget", d.ctx.describe(w.id))
		d.tabList = append(d.tabList, w.id)
	}
}

func (d *Dialog) collectFocusable(w *Widget) {
	for _, id := range w.children {
		c := d.ctx.Widget(id)
		if c == nil {
			continue
		}
		if c.focusProxy != 0 || c.focusable {
			d.tabList = append(d.tabList, id)
			continue
		}
		d.collectFocusable(c)
	}
}

// CreateDPadLinks links each entry to its nearest neighbour in every
// direction. With no arguments the tab list is used.
func (d *Dialog) CreateDPadLinks(entries ...Handler) {
	ws := make([]*Widget, 0, len(d.tabList))
	if len(entries) == 0 {
		for _, id := range d.tabList {
			if w := d.ctx.Widget(id); w != nil {
				ws = append(ws, w)
			}
		}
	} else {
		for _, h := range entries {
			ws = append(ws, h.Base())
		}
	}
	for _, cur := range ws {
		for dir := DirUp; dir <= DirRight; dir++ {
			cur.links[dir] = nearest(ws, cur, dir)
		}
	}
}

// nearest scores every other widget by the gap between the two rects
// along dir. Widgets separated on one axis only beat diagonal ones;
// overlapping widgets are never linked.
func nearest(ws []*Widget, cur *Widget, dir Direction) ID {
	a := cur.ScreenRect()
	best := ID(0)
	bestSplits := 3
	bestGap := float32(math32.MaxFloat32)
	bestSecond := float32(math32.MaxFloat32)
	for _, other := range ws {
		if other == cur {
			continue
		}
		b := other.ScreenRect()
		gaps := [4]float32{
			DirUp:    a.Y - (b.Y + b.H),
			DirDown:  b.Y - (a.Y + a.H),
			DirLeft:  a.X - (b.X + b.W),
			DirRight: b.X - (a.X + a.W),
		}
		splits := 0
		for _, g := range gaps {
			if g >= 0 {
				splits++
			}
		}
		gap := gaps[dir]
		if gap < 0 || splits == 0 || splits >= 3 {
			continue
		}
		vertical := dir == DirUp || dir == DirDown
		second := float32(math32.MaxFloat32)
		if splits == 2 {
			cross := [2]float32{gaps[DirLeft], gaps[DirRight]}
			if !vertical {
				cross = [2]float32{gaps[DirUp], gaps[DirDown]}
			}
			for _, g := range cross {
				if g >= 0 {
					second = math32.Min(second, g)
				}
			}
			gap += linkBias * second
		} else if vertical {
			second = math32.Abs(a.Center().X - b.Center().X)
		} else {
			second = math32.Abs(a.Center().Y - b.Center().Y)
		}
		better := splits < bestSplits ||
			splits == bestSplits && (gap < bestGap || gap == bestGap && second < bestSecond)
		if better {
			best, bestSplits, bestGap, bestSecond = other.id, splits, gap, second
		}
	}
	return best
}

// SetFocus restores focus to the widget that last held it in this
// dialog, or to the first entry of the tab list.
func (d *Dialog) SetFocus() bool {
	if w := d.ctx.Widget(d.lastFocus); w != nil && d.Contains(w.id) && w.CanFocus() {
		return w.SetFocus()
	}
	return d.FocusFirst()
}

// FocusFirst focuses the first tab entry that can take focus.
func (d *Dialog) FocusFirst() bool {
	for _, id := range d.tabList {
		if w := d.ctx.Widget(id); w != nil && w.CanFocus() {
			return w.SetFocus()
		}
	}
	return false
}

// FocusLast focuses the last tab entry that can take focus.
func (d *Dialog) FocusLast() bool {
	for i := len(d.tabList) - 1; i >= 0; i-- {
		if w := d.ctx.Widget(d.tabList[i]); w != nil && w.CanFocus() {
			return w.SetFocus()
		}
	}
	return false
}

// FocusWidget returns the focused widget if it lives in this dialog.
func (d *Dialog) FocusWidget() *Widget {
	if f := d.ctx.Focused(); f != nil && d.Contains(f.id) {
		return f
	}
	return nil
}

// focusIndex returns the tab entry holding focus, or -1.
func (d *Dialog) focusIndex() int {
	f := d.ctx.FocusedID()
	for i, id := range d.tabList {
		if w := d.ctx.Widget(id); w != nil && (w.InFocus() || f != 0 && w.Contains(f)) {
			return i
		}
	}
	return -1
}

// FocusNextWidget moves focus along the tab list. Past the last entry
// focus moves to the next dialog, which may be this one again.
func (d *Dialog) FocusNextWidget() {
	cur := d.focusIndex()
	if cur < 0 {
		d.FocusFirst()
		return
	}
	for i := cur + 1; i < len(d.tabList); i++ {
		if w := d.ctx.Widget(d.tabList[i]); w != nil && w.CanFocus() {
			w.SetFocus()
			return
		}
	}
	if !d.ctx.dialogs.FocusNextDialog() {
		d.FocusFirst()
	}
}

// FocusPrevWidget moves focus backwards along the tab list.
func (d *Dialog) FocusPrevWidget() {
	cur := d.focusIndex()
	if cur < 0 {
		d.FocusLast()
		return
	}
	for i := cur - 1; i >= 0; i-- {
		if w := d.ctx.Widget(d.tabList[i]); w != nil && w.CanFocus() {
			w.SetFocus()
			return
		}
	}
	if !d.ctx.dialogs.FocusPrevDialog() {
		d.FocusLast()
	}
}

// FocusDirection follows the d-pad link of the focused entry.
func (d *Dialog) FocusDirection(dir Direction) bool {
	cur := d.focusIndex()
	if cur < 0 {
		return d.FocusFirst()
	}
	entry := d.ctx.Widget(d.tabList[cur])
	id := entry.PadLink(dir)
	// Skip neighbours that cannot take focus, in the same direction.
	for range d.tabList {
		w := d.ctx.Widget(id)
		if w == nil || w == entry {
			return false
		}
		if w.CanFocus() {
			return w.SetFocus()
		}
		id = w.PadLink(dir)
	}
	return false
}

func (d *Dialog) hasFocus() bool {
	return d.ctx.dialogs.CurrentFocusDialog() == d
}

func (d *Dialog) HandleKey(ev KeyEvent) bool {
	if !d.hasFocus() {
		return false
	}
	switch {
	case ev.Key == KeyTab && !ev.Ctrl && !ev.Alt:
		if len(d.tabList) == 0 {
			return false
		}
		if ev.Shift {
			d.FocusPrevWidget()
		} else {
			d.FocusNextWidget()
		}
		return true
	case ev.Is(KeyUp):
		return len(d.tabList) > 0 && d.navigate(DirUp)
	case ev.Is(KeyDown):
		return len(d.tabList) > 0 && d.navigate(DirDown)
	case ev.Is(KeyLeft):
		return len(d.tabList) > 0 && d.navigate(DirLeft)
	case ev.Is(KeyRight):
		return len(d.tabList) > 0 && d.navigate(DirRight)
	case ev.Is(KeyEscape):
		return d.cancel()
	}
	return false
}

// navigate always consumes the key so arrows never leak past the dialog.
func (d *Dialog) navigate(dir Direction) bool {
	d.FocusDirection(dir)
	return true
}

func (d *Dialog) cancel() bool {
	if d.onCancel == nil {
		return false
	}
	if uiVerbose() {
		d.ctx.logger.Debug("dialog cancelled", "dialog", d.ctx.describe(d.id))
	}
	d.onCancel()
	return true
}

func (d *Dialog) HandleGamePad(ev GamePadEvent) bool {
	if !d.hasFocus() {
		return false
	}
	pad := ev.Pad
	if pad.B().WasPressed() || pad.Button(PadBack).WasPressed() {
		if d.cancel() {
			pad.ClearAllWasPressedState()
			return true
		}
	}
	if len(d.tabList) == 0 {
		return false
	}
	switch {
	case pad.DPadUp().WasPressedOrRepeat():
		return d.navigate(DirUp)
	case pad.DPadDown().WasPressedOrRepeat():
		return d.navigate(DirDown)
	case pad.DPadLeft().WasPressedOrRepeat():
		return d.navigate(DirLeft)
	case pad.DPadRight().WasPressedOrRepeat():
		return d.navigate(DirRight)
	}
	return false
}

// HandleMouse only sees presses no child consumed.
func (d *Dialog) HandleMouse(ev MouseEvent) bool {
	if ev.Kind != MouseLeftDown || !d.dismissOnClickOutside {
		return false
	}
	if d.ScreenRect().Contains(ev.Pos) {
		return false
	}
	d.Kill()
	return true
}

func (d *Dialog) HandleTap(ev TapEvent) bool {
	if !d.dismissOnClickOutside || d.Contains(ev.Hit) {
		return false
	}
	d.Kill()
	return true
}
