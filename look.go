package ui

// LookTwitch eases every numeric field of a Look toward a target look.
type LookTwitch struct {
	body, outline, text *Twitch[Color]
	width, radius       *Twitch[float32]
	bevel               Bevel
}

// NewLookTwitch creates a settled twitch at l.
func NewLookTwitch(l Look, duration float32, shape Shape) *LookTwitch {
	return &LookTwitch{
		body:    NewColorTwitch(l.Body, duration, shape),
		outline: NewColorTwitch(l.Outline, duration, shape),
		text:    NewColorTwitch(l.Text, duration, shape),
		width:   NewFloatTwitch(l.OutlineWidth, duration, shape),
		radius:  NewFloatTwitch(l.CornerRadius, duration, shape),
		bevel:   l.Bevel,
	}
}

// SetTarget restarts the twitch toward l with the given timing.
func (lt *LookTwitch) SetTarget(l Look, duration float32, shape Shape) {
	for _, tw := range []*Twitch[Color]{lt.body, lt.outline, lt.text} {
		tw.SetTiming(duration, shape)
	}
	lt.width.SetTiming(duration, shape)
	lt.radius.SetTiming(duration, shape)

	lt.body.SetTarget(l.Body)
	lt.outline.SetTarget(l.Outline)
	lt.text.SetTarget(l.Text)
	lt.width.SetTarget(l.OutlineWidth)
	lt.radius.SetTarget(l.CornerRadius)
	lt.bevel = l.Bevel
}

// Snap jumps straight to l.
func (lt *LookTwitch) Snap(l Look) {
	lt.body.Snap(l.Body)
	lt.outline.Snap(l.Outline)
	lt.text.Snap(l.Text)
	lt.width.Snap(l.OutlineWidth)
	lt.radius.Snap(l.CornerRadius)
	lt.bevel = l.Bevel
}

// Update advances all fields and reports whether any is still moving.
func (lt *LookTwitch) Update(dt float32) bool {
	running := lt.body.Update(dt)
	running = lt.outline.Update(dt) || running
	running = lt.text.Update(dt) || running
	running = lt.width.Update(dt) || running
	running = lt.radius.Update(dt) || running
	return running
}

// Current returns the displayed look.
func (lt *LookTwitch) Current() Look {
	return Look{
		Body:         lt.body.Value(),
		Outline:      lt.outline.Value(),
		OutlineWidth: lt.width.Value(),
		CornerRadius: lt.radius.Value(),
		Bevel:        lt.bevel,
		Text:         lt.text.Value(),
	}
}

// Target returns the look being eased toward.
func (lt *LookTwitch) Target() Look {
	return Look{
		Body:         lt.body.Target(),
		Outline:      lt.outline.Target(),
		OutlineWidth: lt.width.Target(),
		CornerRadius: lt.radius.Target(),
		Bevel:        lt.bevel,
		Text:         lt.text.Target(),
	}
}
