package ui

// RadioGroup keeps at most one member selected. Members may be radio
// buttons, colour swatches (radio buttons carrying a Color as data) or
// latchable tool buttons.
type RadioGroup struct {
	ctx      *Context
	members  []ID
	onChange func(Handler)
}

// NewRadioGroup creates an empty group. onChange, which may be nil, is
// called with the member selected through input.
func NewRadioGroup(ctx *Context, onChange func(Handler)) *RadioGroup {
	return &RadioGroup{ctx: ctx, onChange: onChange}
}

// Add puts h in the group. A member that arrives selected unselects the
// others.
func (g *RadioGroup) Add(h Handler) {
	w := h.Base()
	if w.group != nil {
		contract(false, "widget already in a group", "widget", g.ctx.describe(w.id))
		return
	}
	w.group = g
	g.members = append(g.members, w.id)
	if w.selected {
		g.clearExcept(w.id)
	}
}

// Members returns the members in the order they were added.
func (g *RadioGroup) Members() []Handler {
	out := make([]Handler, 0, len(g.members))
	for _, id := range g.members {
		if h := g.ctx.Handler(id); h != nil {
			out = append(out, h)
		}
	}
	return out
}

// Selected returns the selected member, or nil.
func (g *RadioGroup) Selected() Handler {
	if i := g.SelectedIndex(); i >= 0 {
		return g.ctx.Handler(g.members[i])
	}
	return nil
}

// SelectedIndex returns the index of the selected member, or -1.
func (g *RadioGroup) SelectedIndex() int {
	for i, id := range g.members {
		if w := g.ctx.Widget(id); w != nil && w.selected {
			return i
		}
	}
	return -1
}

// Select selects member i. Selecting before activation is silent.
func (g *RadioGroup) Select(i int) {
	if i < 0 || i >= len(g.members) {
		return
	}
	if w := g.ctx.Widget(g.members[i]); w != nil {
		w.SetSelected(true)
	}
}

func (g *RadioGroup) clearExcept(id ID) {
	for _, m := range g.members {
		if m == id {
			continue
		}
		if w := g.ctx.Widget(m); w != nil {
			w.selected = false
		}
	}
}

func (g *RadioGroup) changed(w *Widget) {
	w.OnChange()
	if g.onChange != nil {
		g.onChange(w.handler)
	}
}

// RadioButton is a member of a RadioGroup. It selects on press, Enter,
// gamepad A or a tap; choosing the button that is already selected runs
// OnChange again.
type RadioButton struct {
	*Widget
	label string
}

// NewRadioButton creates an inactive radio button in group.
func NewRadioButton(ctx *Context, group *RadioGroup, label string, opts ...Option) *RadioButton {
	o := applyOptions(opts)
	r := &RadioButton{Widget: newWidget(ctx, KindRadioButton, o), label: label}
	r.selected = GetOpt(o, OptChecked)
	if r.name == "" {
		r.name = label
	}
	r.attach(r)
	if group != nil {
		group.Add(r)
	}
	return r
}

// Label returns the button text.
func (r *RadioButton) Label() string { return r.label }

// Choose selects r as user input would.
func (r *RadioButton) Choose() {
	if r.selected {
		if r.group != nil && r.Active() {
			r.group.changed(r.Widget)
		}
		return
	}
	r.SetSelected(true)
}

// Trigger chooses the button.
func (r *RadioButton) Trigger() { r.Choose() }

func (r *RadioButton) Categories() []Category {
	return []Category{CategoryMouseLeftDown, CategoryKeyboard, CategoryTap, CategoryTouch, CategoryGamePad}
}

func (r *RadioButton) HandleMouse(ev MouseEvent) bool {
	switch ev.Kind {
	case MouseLeftDown:
		if !r.claimPress() {
			return false
		}
		r.Choose()
		r.SetFocus()
		return true
	case MouseLeftUp:
		return r.releasePress()
	}
	return false
}

func (r *RadioButton) HandleKey(ev KeyEvent) bool {
	if r.InFocus() && ev.Is(KeyEnter) {
		r.Choose()
		return true
	}
	return false
}

func (r *RadioButton) HandleGamePad(ev GamePadEvent) bool {
	if r.InFocus() && ev.Pad.A().WasPressed() {
		ev.Pad.ClearAllWasPressedState()
		r.Choose()
		return true
	}
	return false
}

func (r *RadioButton) HandleTap(ev TapEvent) bool {
	if ev.Hit != r.id {
		return false
	}
	r.Choose()
	return true
}

func (r *RadioButton) HandleTouch(ev TouchEvent) bool {
	s, ok := ev.Primary()
	if !ok {
		return false
	}
	em := r.ctx.events
	switch s.Phase {
	case TouchPressed:
		return ev.Hit == r.id && em.CaptureTouch(r.id)
	case TouchMoved:
		return em.TouchCapture() == r.id
	case TouchReleased:
		if em.TouchCapture() == r.id {
			em.ReleaseTouch(r.id)
		}
	}
	return false
}

// Draw renders a swatch when the button carries a Color, a round box
// with a label otherwise.
func (r *RadioButton) Draw(dl *DrawList, rect Rect, look Look) {
	if c, ok := r.data.(Color); ok {
		dl.AddLook(rect, look)
		inset := look.OutlineWidth + 2
		dl.AddShape(Rect{X: rect.X + inset, Y: rect.Y + inset, W: rect.W - 2*inset, H: rect.H - 2*inset},
			look.Bevel, look.CornerRadius, c)
		return
	}
	d := rect.H * 0.8
	dot := Rect{X: rect.X, Y: rect.Y + (rect.H-d)*0.5, W: d, H: d}
	look.Bevel, look.CornerRadius = BevelRound, d*0.5
	dl.AddLook(dot, look)
	if r.selected {
		dl.AddShape(Rect{X: dot.X + d*0.3, Y: dot.Y + d*0.3, W: d * 0.4, H: d * 0.4}, BevelRound, d*0.2, look.Text)
	}
	dl.AddText(Vec2{X: dot.X + d + 6, Y: rect.Y + (rect.H-GlyphHeight)*0.5}, r.label, look.Text, 1)
}
