package ui

// Label is static text. It never takes focus or hover and is never hit;
// a point over a label falls through to its parent. Text wider than the
// label's rect is cut short with "..", or wrapped onto more lines when
// the label was made with Wrapped.
type Label struct {
	*Widget
	text  string
	scale float32
	wrap  bool
}

// NewLabel creates an inactive label.
func NewLabel(ctx *Context, text string, opts ...Option) *Label {
	o := applyOptions(opts)
	l := &Label{Widget: newWidget(ctx, KindLabel, o), text: text, scale: 1, wrap: GetOpt(o, OptWrap)}
	l.focusable = false
	l.hoverable = false
	l.hittable = false
	if l.name == "" {
		l.name = text
	}
	l.attach(l)
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label text.
func (l *Label) SetText(s string) { l.text = s }

// SetScale sets the glyph scale.
func (l *Label) SetScale(s float32) {
	if s > 0 {
		l.scale = s
	}
}

// Size returns the text extent. A wrapped label measures its text
// broken to the width of its rect.
func (l *Label) Size() Vec2 {
	if l.wrap && l.rect.W > 0 {
		return MeasureWrappedText(l.text, l.rect.W, l.scale, WrapModeAuto)
	}
	return TextSize(l.text, l.scale)
}

// Lines returns the text as drawn in a rect w wide.
func (l *Label) Lines(w float32) []string {
	switch {
	case w <= 0:
		return []string{l.text}
	case l.wrap:
		return WrapText(l.text, w, l.scale, WrapModeAuto)
	}
	return []string{TruncateText(l.text, w, l.scale)}
}

func (l *Label) Draw(dl *DrawList, r Rect, look Look) {
	lines := l.Lines(r.W)
	lh := GlyphHeight * l.scale
	y := r.Y + (r.H-lh*float32(len(lines)))*0.5
	if l.wrap {
		y = r.Y
	}
	for _, line := range lines {
		dl.AddText(Vec2{X: r.X, Y: y}, line, look.Text, l.scale)
		y += lh
	}
}
