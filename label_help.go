package ui

// labelMargin is the gap around the parts of a LabelHelp.
const labelMargin = 8

// LabelHelp is a row holding a primary control, a label and, when given a
// help action, a small help button. The row is one tab stop: its focus is
// the primary's. Enter or a press anywhere on the row runs the primary;
// F1 or gamepad Y runs help.
type LabelHelp struct {
	*WidgetSet
	primary Handler
	label   *Label
	help    *Button
}

// NewLabelHelp wraps primary (a button, check box, radio button or
// slider) with a label. WithHelp adds the help button; WithRect sets the
// row's position and width.
func NewLabelHelp(ctx *Context, primary Handler, text string, opts ...Option) *LabelHelp {
	o := applyOptions(opts)
	rect := GetOpt(o, OptRect)
	if rect.W == 0 {
		rect.W = 320
	}
	set := &WidgetSet{Widget: newWidget(ctx, KindLabelHelp, o), layout: Layout{Type: LayoutNone}}
	set.focusable = false
	// The row is hit over the label and the gaps, so hovering there
	// focuses the primary like hovering the primary does.
	set.hittable = true
	set.rect = rect
	lh := &LabelHelp{WidgetSet: set, primary: primary}
	if lh.name == "" {
		lh.name = text
	}
	lh.attach(lh)

	p := primary.Base()
	lh.label = NewLabel(ctx, text)
	if fn := GetOpt(o, OptHelp); fn != nil {
		lh.help = NewButton(ctx, "?", WithID(text+" help"), OnChange(fn), NotFocusable())
	}

	ph := max(p.rect.H, GlyphHeight+2*labelMargin)
	if p.rect.W == 0 {
		p.rect.W = 2 * ph
	}
	p.rect = Rect{X: labelMargin, Y: labelMargin, W: p.rect.W, H: ph}
	lh.label.rect = Rect{X: p.rect.W + 3*labelMargin, Y: labelMargin, W: lh.label.Size().X, H: ph}
	lh.AddChild(primary)
	lh.AddChild(lh.label)
	if lh.help != nil {
		lh.help.rect = Rect{X: rect.W - ph - labelMargin, Y: labelMargin, W: ph, H: ph}
		lh.AddChild(lh.help)
		if room := lh.help.rect.X - labelMargin - lh.label.rect.X; room > 0 {
			lh.label.rect.W = min(lh.label.rect.W, room)
		}
	}
	lh.rect.H = max(rect.H, ph+2*labelMargin)
	lh.SetFocusProxy(p.id)
	return lh
}

// Primary returns the wrapped control.
func (lh *LabelHelp) Primary() Handler { return lh.primary }

// Label returns the text part.
func (lh *LabelHelp) Label() *Label { return lh.label }

// HelpButton returns the help button, or nil.
func (lh *LabelHelp) HelpButton() *Button { return lh.help }

// SetOnChange forwards to the primary.
func (lh *LabelHelp) SetOnChange(fn func()) { lh.primary.Base().SetOnChange(fn) }

// SetFocus focuses the primary.
func (lh *LabelHelp) SetFocus() bool { return lh.primary.Base().SetFocus() }

// FocusWidget returns the primary when it is in focus.
func (lh *LabelHelp) FocusWidget() *Widget {
	if p := lh.primary.Base(); p.InFocus() {
		return p
	}
	return nil
}

// Trigger runs the primary's action.
func (lh *LabelHelp) Trigger() {
	if t, ok := lh.primary.(triggerable); ok {
		t.Trigger()
	}
}

// Help runs the help action. It reports false when there is none.
func (lh *LabelHelp) Help() bool {
	if lh.help == nil {
		return false
	}
	lh.help.OnSelect()
	return true
}

func (lh *LabelHelp) Categories() []Category {
	return []Category{CategoryKeyboard, CategoryMouseLeftDown, CategoryGamePad, CategoryTap, CategoryTouch}
}

func (lh *LabelHelp) HandleKey(ev KeyEvent) bool {
	if !lh.InFocus() {
		return false
	}
	switch {
	case ev.Is(KeyEnter):
		lh.Trigger()
		return true
	case ev.Is(KeyF1):
		return lh.Help()
	}
	return false
}

func (lh *LabelHelp) HandleMouse(ev MouseEvent) bool {
	if ev.Kind != MouseLeftDown || lh.ctx.events.MouseCapture() != 0 {
		return false
	}
	if !lh.ScreenRect().Contains(ev.Pos) {
		return false
	}
	lh.primary.Base().SetFocus()
	lh.Trigger()
	return true
}

func (lh *LabelHelp) HandleGamePad(ev GamePadEvent) bool {
	if !lh.InFocus() || !ev.Pad.Y().WasPressedOrRepeat() || lh.help == nil {
		return false
	}
	ev.Pad.ClearAllWasPressedState()
	return lh.Help()
}

// HandleTap focuses the primary for a tap anywhere on the row and runs
// it unless the help button was tapped.
func (lh *LabelHelp) HandleTap(ev TapEvent) bool {
	if ev.Hit == 0 || !lh.Contains(ev.Hit) {
		return false
	}
	lh.primary.Base().SetFocus()
	if lh.help != nil && ev.Hit == lh.help.id {
		return false
	}
	lh.Trigger()
	return true
}

func (lh *LabelHelp) HandleTouch(ev TouchEvent) bool {
	s, ok := ev.Primary()
	if !ok || s.Phase != TouchPressed || ev.Hit == 0 || !lh.Contains(ev.Hit) {
		return false
	}
	lh.primary.Base().SetFocus()
	return true
}

// Draw rings the row in the focus colour while the primary is focused.
func (lh *LabelHelp) Draw(dl *DrawList, r Rect, look Look) {
	if !lh.InFocus() {
		return
	}
	ring := Rect{X: r.X - 2, Y: r.Y - 2, W: r.W + 4, H: r.H + 4}
	dl.AddShape(ring, BevelRound, labelMargin, lh.ctx.theme.FocusColor)
	dl.AddShape(r, BevelRound, labelMargin, RGBA(0, 0, 0, 96))
}
