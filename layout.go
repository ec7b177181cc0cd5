package ui

// LayoutType is the stacking direction of a WidgetSet.
type LayoutType uint8

const (
	LayoutNone       LayoutType = iota // children keep their own rects
	LayoutVertical                     // children stack top to bottom
	LayoutHorizontal                   // children stack left to right
)

// Alignment places children on the cross axis.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// Layout describes how a WidgetSet stacks its children.
type Layout struct {
	Type    LayoutType
	Gap     float32 // space between children
	Padding float32 // inset from the set's edges
	Align   Alignment
}

// Layout options.
var (
	OptLayout = NewOptKey("layout", Layout{Type: LayoutVertical})
)

// Stack lays children out in direction t.
func Stack(t LayoutType) Option {
	return WithOpt(OptLayout, Layout{Type: t})
}

// StackWith sets the full layout.
func StackWith(l Layout) Option { return WithOpt(OptLayout, l) }

// arrange positions rects (child sizes in, relative positions out) inside
// a box of size area and returns the extent the stack needs. Rects with
// LayoutNone are left alone.
func (l Layout) arrange(rects []Rect, area Vec2) Vec2 {
	if l.Type == LayoutNone {
		var ext Rect
		for _, r := range rects {
			ext = ext.Union(r)
		}
		return Vec2{X: ext.X + ext.W, Y: ext.Y + ext.H}
	}

	var main, cross float32
	for i, r := range rects {
		if i > 0 {
			main += l.Gap
		}
		if l.Type == LayoutVertical {
			main += r.H
			cross = max(cross, r.W)
		} else {
			main += r.W
			cross = max(cross, r.H)
		}
	}

	pos := l.Padding
	for i := range rects {
		r := &rects[i]
		if l.Type == LayoutVertical {
			r.Y = pos
			r.X = l.Padding + l.offset(area.X-2*l.Padding, r.W)
			pos += r.H + l.Gap
		} else {
			r.X = pos
			r.Y = l.Padding + l.offset(area.Y-2*l.Padding, r.H)
			pos += r.W + l.Gap
		}
	}
	if l.Type == LayoutVertical {
		return Vec2{X: cross + 2*l.Padding, Y: main + 2*l.Padding}
	}
	return Vec2{X: main + 2*l.Padding, Y: cross + 2*l.Padding}
}

func (l Layout) offset(space, size float32) float32 {
	switch l.Align {
	case AlignCenter:
		return (space - size) * 0.5
	case AlignEnd:
		return space - size
	}
	return 0
}
