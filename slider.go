package ui

import (
	"strconv"

	"github.com/chewxy/math32"
)

// Slider picks a value in [min, max] on a grid of increments. Dragging
// with the mouse or a finger sets the value from the pointer position for
// as long as the slider holds capture; Left/Right and the d-pad step it.
// The drawn thumb eases toward the value.
type Slider struct {
	*Widget
	label     string
	min, max  float32
	increment float32
	decimals  int
	value     float32
	shown     *Twitch[float32]
}

// NewSlider creates an inactive slider.
func NewSlider(ctx *Context, label string, opts ...Option) *Slider {
	o := applyOptions(opts)
	rng := GetOpt(o, OptRange)
	s := &Slider{
		Widget:    newWidget(ctx, KindSlider, o),
		label:     label,
		min:       rng.Min,
		max:       rng.Max,
		increment: GetOpt(o, OptIncrement),
		decimals:  -1,
	}
	contract(s.max > s.min, "slider range is empty", "min", s.min, "max", s.max)
	contract(s.increment >= 0 && s.increment < s.max-s.min, "slider increment out of range", "increment", s.increment)
	if s.name == "" {
		s.name = label
	}
	s.value = s.Validate(GetOpt(o, OptValue))
	t := ctx.Theme()
	s.shown = NewFloatTwitch(s.value, t.QuickTwitchTime, t.TwitchShape)
	s.attach(s)
	return s
}

// Value returns the current value.
func (s *Slider) Value() float32 { return s.value }

// DisplayValue returns the value the thumb is drawn at.
func (s *Slider) DisplayValue() float32 { return s.shown.Value() }

// Range returns the bounds.
func (s *Slider) Range() (minVal, maxVal float32) { return s.min, s.max }

// Increment returns the step.
func (s *Slider) Increment() float32 { return s.increment }

// SetDecimals sets how many decimals ValueString shows; -1 means as many
// as needed.
func (s *Slider) SetDecimals(n int) { s.decimals = n }

// ValueString formats the value for display.
func (s *Slider) ValueString() string {
	return strconv.FormatFloat(float64(s.value), 'f', s.decimals, 32)
}

// Validate clamps v into range and snaps it to min plus a whole number of
// increments.
func (s *Slider) Validate(v float32) float32 {
	v = clampf(v, s.min, s.max)
	if s.increment > 0 {
		v = s.min + s.increment*math32.Round((v-s.min)/s.increment)
		v = clampf(v, s.min, s.max)
	}
	return v
}

// SetValue validates v and, if the result differs, stores it, starts
// the thumb twitch and calls OnChange.
func (s *Slider) SetValue(v float32) {
	v = s.Validate(v)
	if v == s.value {
		return
	}
	s.value = v
	s.shown.SetTarget(v)
	s.OnChange()
}

// SnapValue sets the value without a twitch or OnChange.
func (s *Slider) SnapValue(v float32) {
	s.value = s.Validate(v)
	s.shown.Snap(s.value)
}

// Step moves the value by n increments.
func (s *Slider) Step(n int) {
	inc := s.increment
	if inc == 0 {
		inc = (s.max - s.min) / 100
	}
	s.SetValue(s.value + float32(n)*inc)
}

func (s *Slider) UpdateWidget(dt float32) { s.shown.Update(dt) }

func (s *Slider) Categories() []Category {
	return []Category{CategoryMouseLeftDown, CategoryKeyboard, CategoryTouch, CategoryGamePad}
}

// track returns the screen-space span the thumb centre moves along.
func (s *Slider) track() (x0, width float32) {
	r := s.ScreenRect()
	radius := r.H * 0.5
	return r.X + radius, r.W - 2*radius
}

func (s *Slider) fraction(p Vec2) float32 {
	x0, w := s.track()
	if w <= 0 {
		return 0
	}
	return clampf((p.X-x0)/w, 0, 1)
}

func (s *Slider) setFromPoint(p Vec2) {
	s.SetValue(s.min + (s.max-s.min)*s.fraction(p))
}

func (s *Slider) HandleMouse(ev MouseEvent) bool {
	switch ev.Kind {
	case MouseLeftDown:
		if !s.claimPress(CategoryMouseMove) {
			return false
		}
		s.SetFocus()
		s.setFromPoint(ev.Pos)
		return true
	case MouseMove:
		if s.ctx.events.MouseCapture() != s.id {
			return false
		}
		s.setFromPoint(ev.Pos)
		return true
	case MouseLeftUp:
		return s.releasePress(CategoryMouseMove)
	}
	return false
}

func (s *Slider) HandleKey(ev KeyEvent) bool {
	if !s.InFocus() || ev.Modifier() {
		return false
	}
	switch ev.Key {
	case KeyLeft:
		s.Step(-1)
	case KeyRight:
		s.Step(1)
	case KeyHome:
		s.SetValue(s.min)
	case KeyEnd:
		s.SetValue(s.max)
	default:
		return false
	}
	return true
}

func (s *Slider) HandleGamePad(ev GamePadEvent) bool {
	if !s.InFocus() {
		return false
	}
	pad := ev.Pad
	switch {
	case pad.DPadLeft().WasPressedOrRepeat():
		pad.ClearAllWasPressedState()
		s.Step(-1)
		return true
	case pad.DPadRight().WasPressedOrRepeat():
		pad.ClearAllWasPressedState()
		s.Step(1)
		return true
	}
	return false
}

// HandleTouch claims touch capture and focus on a press over the slider
// and tracks the finger until release.
func (s *Slider) HandleTouch(ev TouchEvent) bool {
	t, ok := ev.Primary()
	if !ok {
		return false
	}
	em := s.ctx.events
	if t.Phase == TouchPressed && ev.Hit == s.id && em.CaptureTouch(s.id) {
		s.SetFocus()
		s.setFromPoint(t.Pos)
		return true
	}
	if em.TouchCapture() != s.id {
		return false
	}
	s.setFromPoint(t.Pos)
	if t.Phase == TouchReleased {
		em.ReleaseTouch(s.id)
	}
	return true
}

func (s *Slider) Draw(dl *DrawList, r Rect, look Look) {
	dl.AddLook(r, look)
	x0, w := s.track()
	frac := float32(0)
	if s.max > s.min {
		frac = clampf((s.shown.Value()-s.min)/(s.max-s.min), 0, 1)
	}
	d := r.H - 2*look.OutlineWidth - 2
	cx := x0 + w*frac
	dl.AddShape(Rect{X: cx - d*0.5, Y: r.Y + (r.H-d)*0.5, W: d, H: d}, BevelRound, d*0.5, look.Text)
	dl.AddTextCentered(r, s.label+" "+s.ValueString(), look.Text, 1)
}
