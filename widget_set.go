package ui

// WidgetSet groups children. It activates them before itself, never takes
// focus or hits on its own behalf, and reports hover while any child is
// hovered.
type WidgetSet struct {
	*Widget
	layout    Layout
	mouseOver bool
}

// NewWidgetSet creates an inactive set. Children added with Add are
// stacked according to the set's layout.
func NewWidgetSet(ctx *Context, opts ...Option) *WidgetSet {
	o := applyOptions(opts)
	s := &WidgetSet{Widget: newWidget(ctx, KindWidgetSet, o), layout: GetOpt(o, OptLayout)}
	s.focusable = false
	s.hoverable = false
	s.hittable = false
	s.attach(s)
	return s
}

// Add adds children in order and re-stacks the set.
func (s *WidgetSet) Add(hs ...Handler) {
	for _, h := range hs {
		s.AddChild(h)
	}
	s.Arrange()
}

// Layout returns the stacking rules.
func (s *WidgetSet) Layout() Layout { return s.layout }

// SetLayout changes the stacking rules and re-stacks the set.
func (s *WidgetSet) SetLayout(l Layout) {
	s.layout = l
	s.Arrange()
}

// Arrange positions the children and grows the set to fit them.
func (s *WidgetSet) Arrange() {
	kids := make([]*Widget, 0, len(s.children))
	rects := make([]Rect, 0, len(s.children))
	for _, id := range s.children {
		if c := s.ctx.Widget(id); c != nil {
			if cs, ok := c.handler.(*WidgetSet); ok {
				cs.Arrange()
			}
			kids = append(kids, c)
			rects = append(rects, c.rect)
		}
	}
	ext := s.layout.arrange(rects, Vec2{X: s.rect.W, Y: s.rect.H})
	for i, c := range kids {
		c.rect = rects[i]
	}
	s.rect.W = max(s.rect.W, ext.X)
	s.rect.H = max(s.rect.H, ext.Y)
}

// MatchChildSizes gives every child the largest width and height among
// them.
func (s *WidgetSet) MatchChildSizes() {
	var size Vec2
	for _, id := range s.children {
		if c := s.ctx.Widget(id); c != nil {
			size.X = max(size.X, c.rect.W)
			size.Y = max(size.Y, c.rect.H)
		}
	}
	for _, id := range s.children {
		if c := s.ctx.Widget(id); c != nil {
			c.rect.W, c.rect.H = size.X, size.Y
		}
	}
	s.Arrange()
}

// MouseOver reports whether the last hit test landed inside the set.
func (s *WidgetSet) MouseOver() bool { return s.mouseOver }

// SetFocus keeps focus where it is if a descendant holds it, otherwise
// focuses the first child that takes it.
func (s *WidgetSet) SetFocus() bool {
	if s.FocusWidget() != nil {
		return true
	}
	for _, id := range s.children {
		if h := s.ctx.Handler(id); h != nil && h.Base().Active() {
			if f, ok := h.(interface{ SetFocus() bool }); ok && f.SetFocus() {
				return true
			}
		}
	}
	return false
}

// FocusWidget returns the descendant in focus, or nil.
func (s *WidgetSet) FocusWidget() *Widget {
	f := s.ctx.Focused()
	if f != nil && f.id != s.id && s.Contains(f.id) {
		return f
	}
	return nil
}

// FirstFocusable returns the first focusable descendant, depth first.
// Nested sets are searched, never returned.
func (s *WidgetSet) FirstFocusable() *Widget {
	for _, id := range s.children {
		c := s.ctx.Widget(id)
		if c == nil {
			continue
		}
		if cs, ok := c.handler.(*WidgetSet); ok {
			if w := cs.FirstFocusable(); w != nil {
				return w
			}
			continue
		}
		if c.focusable {
			return c
		}
	}
	return nil
}

// UpdateWidget adds child hover to the set's own.
func (s *WidgetSet) UpdateWidget(float32) {
	s.mouseOver = s.Active() && s.ScreenRect().Contains(s.ctx.mousePos)
	hover := s.hover
	for _, id := range s.children {
		if c := s.ctx.Widget(id); c != nil && c.hover {
			hover = true
			break
		}
	}
	s.hover = hover
}

// Draw renders nothing of its own; the default theme gives sets an empty
// look.
func (s *WidgetSet) Draw(dl *DrawList, r Rect, look Look) {
	if look.Body.Alpha() != 0 || look.Outline.Alpha() != 0 {
		dl.AddLook(r, look)
	}
}
