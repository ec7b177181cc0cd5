package ui

// CheckBox toggles on press: mouse down, Enter or gamepad A while
// focused, or a tap. The selected flag is the checked state.
type CheckBox struct {
	*Widget
	label string
}

// NewCheckBox creates an inactive check box.
func NewCheckBox(ctx *Context, label string, opts ...Option) *CheckBox {
	o := applyOptions(opts)
	c := &CheckBox{Widget: newWidget(ctx, KindCheckBox, o), label: label}
	c.selected = GetOpt(o, OptChecked)
	if c.name == "" {
		c.name = label
	}
	c.attach(c)
	return c
}

// Checked reports the check state.
func (c *CheckBox) Checked() bool { return c.selected }

// SetChecked sets the check state, calling OnChange if it changed.
func (c *CheckBox) SetChecked(v bool) {
	if c.selected == v {
		return
	}
	c.SetSelected(v)
	c.OnChange()
}

// Toggle flips the check state.
func (c *CheckBox) Toggle() { c.SetChecked(!c.selected) }

// Trigger toggles the check box.
func (c *CheckBox) Trigger() { c.Toggle() }

func (c *CheckBox) Categories() []Category {
	return []Category{CategoryMouseLeftDown, CategoryKeyboard, CategoryTap, CategoryTouch, CategoryGamePad}
}

func (c *CheckBox) HandleMouse(ev MouseEvent) bool {
	switch ev.Kind {
	case MouseLeftDown:
		if !c.claimPress() {
			return false
		}
		c.Toggle()
		c.SetFocus()
		return true
	case MouseLeftUp:
		// Nothing happens on release; capture only keeps neighbours from
		// reacting while the button is held.
		return c.releasePress()
	}
	return false
}

func (c *CheckBox) HandleKey(ev KeyEvent) bool {
	if c.InFocus() && ev.Is(KeyEnter) {
		c.Toggle()
		return true
	}
	return false
}

func (c *CheckBox) HandleGamePad(ev GamePadEvent) bool {
	if c.InFocus() && ev.Pad.A().WasPressed() {
		ev.Pad.ClearAllWasPressedState()
		c.Toggle()
		return true
	}
	return false
}

func (c *CheckBox) HandleTap(ev TapEvent) bool {
	if ev.Hit != c.id {
		return false
	}
	c.Toggle()
	return true
}

// HandleTouch holds touch capture between press and release so a drag
// across the box does not reach its neighbours. Taps do the toggling.
func (c *CheckBox) HandleTouch(ev TouchEvent) bool {
	s, ok := ev.Primary()
	if !ok {
		return false
	}
	em := c.ctx.events
	switch s.Phase {
	case TouchPressed:
		return ev.Hit == c.id && em.CaptureTouch(c.id)
	case TouchMoved:
		return em.TouchCapture() == c.id
	case TouchReleased:
		if em.TouchCapture() == c.id {
			em.ReleaseTouch(c.id)
		}
	}
	return false
}

func (c *CheckBox) Draw(dl *DrawList, r Rect, look Look) {
	box := Rect{X: r.X, Y: r.Y + (r.H-r.H*0.8)*0.5, W: r.H * 0.8, H: r.H * 0.8}
	dl.AddLook(box, look)
	if c.selected {
		inset := box.W * 0.25
		dl.AddRect(Rect{X: box.X + inset, Y: box.Y + inset, W: box.W - 2*inset, H: box.H - 2*inset}, look.Text)
	}
	dl.AddText(Vec2{X: box.X + box.W + 6, Y: r.Y + (r.H-GlyphHeight)*0.5}, c.label, look.Text, 1)
}
