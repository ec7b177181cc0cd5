package ui

// Button is a push button. A one-shot button is selected only while
// pressed; a latchable one stays selected until ForceOff. The action runs
// on mouse release over the button, on Enter or gamepad A while focused,
// and on a tap.
type Button struct {
	*Widget
	label       string
	latchable   bool
	targetScene string
	transition  Transition
	killParent  bool
}

// NewButton creates an inactive button.
func NewButton(ctx *Context, label string, opts ...Option) *Button {
	o := applyOptions(opts)
	b := &Button{
		Widget:      newWidget(ctx, KindButton, o),
		label:       label,
		latchable:   GetOpt(o, OptLatchable),
		targetScene: GetOpt(o, OptTargetScene),
		transition:  GetOpt(o, OptTransition),
		killParent:  GetOpt(o, OptKillParent),
	}
	if b.name == "" {
		b.name = label
	}
	b.attach(b)
	return b
}

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// SetLabel replaces the button text.
func (b *Button) SetLabel(s string) { b.label = s }

// Latchable reports whether the selection persists after release.
func (b *Button) Latchable() bool { return b.latchable }

// HasValidTarget reports whether selecting the button does anything.
func (b *Button) HasValidTarget() bool {
	return b.onChange != nil || b.targetScene != "" || b.killParent
}

// ForceOff clears a latched selection.
func (b *Button) ForceOff() { b.SetSelected(false) }

func (b *Button) Categories() []Category {
	return []Category{CategoryMouseLeftDown, CategoryKeyboard, CategoryTap, CategoryTouch, CategoryGamePad}
}

// OnSelect runs the button's action: the parent dialog is killed first
// when configured, then the callback runs, or the target scene is
// switched to when there is no callback.
func (b *Button) OnSelect() {
	if b.killParent {
		if d := b.ParentDialog(); d != nil {
			d.Kill()
		}
	}
	switch {
	case b.onChange != nil:
		b.onChange()
	case b.targetScene != "":
		b.ctx.SwitchScene(b.targetScene, b.transition)
	default:
		contract(b.killParent, "button should do something", "button", b.ctx.describe(b.id))
	}
}

// Trigger performs the button's action as a keyboard confirm would.
func (b *Button) Trigger() {
	if b.latchable {
		b.SetSelected(true)
	}
	b.OnSelect()
}

func (b *Button) HandleMouse(ev MouseEvent) bool {
	switch ev.Kind {
	case MouseLeftDown:
		if !b.claimPress() {
			return false
		}
		b.SetSelected(true)
		b.SetFocus()
		return true
	case MouseLeftUp:
		if !b.releasePress() {
			return false
		}
		if !b.latchable {
			b.SetSelected(false)
		}
		// A release away from the button cancels the click.
		if b.ctx.events.MouseHit() == b.id {
			b.OnSelect()
		}
		return true
	}
	return false
}

func (b *Button) HandleKey(ev KeyEvent) bool {
	if b.InFocus() && ev.Is(KeyEnter) {
		b.Trigger()
		return true
	}
	return false
}

func (b *Button) HandleGamePad(ev GamePadEvent) bool {
	if b.InFocus() && ev.Pad.A().WasPressed() {
		ev.Pad.ClearAllWasPressedState()
		b.Trigger()
		return true
	}
	return false
}

func (b *Button) HandleTap(ev TapEvent) bool {
	if ev.Hit != b.id {
		return false
	}
	b.Trigger()
	return true
}

// HandleTouch only shows the pressed state; the action comes from the tap.
func (b *Button) HandleTouch(ev TouchEvent) bool {
	s, ok := ev.Primary()
	if !ok {
		return false
	}
	em := b.ctx.events
	switch s.Phase {
	case TouchPressed:
		if ev.Hit != b.id || !em.CaptureTouch(b.id) {
			return false
		}
		b.SetSelected(true)
		return true
	case TouchMoved:
		return em.TouchCapture() == b.id
	case TouchReleased:
		if em.TouchCapture() != b.id {
			return false
		}
		em.ReleaseTouch(b.id)
		if !b.latchable {
			b.SetSelected(false)
		}
		return false
	}
	return false
}

func (b *Button) Draw(dl *DrawList, r Rect, look Look) {
	dl.AddLook(r, look)
	dl.AddTextCentered(r, b.label, look.Text, 1)
}
