package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestSlider shows a 0..100 slider stepping by 10 whose track runs
// from x=10 to x=210.
func newTestSlider(t *testing.T, opts ...Option) (*Context, *Slider, *int) {
	t.Helper()
	ctx := newTestContext(t)
	changed, n := counter()
	base := []Option{At(0, 0, 220, 20), WithRange(0, 100), WithIncrement(10), OnChange(changed)}
	s := NewSlider(ctx, "volume", append(base, opts...)...)
	newTestDialog(ctx, s)
	return ctx, s, n
}

func TestSliderValidate(t *testing.T) {
	ctx := newTestContext(t)
	s := NewSlider(ctx, "s", WithRange(0, 1), WithIncrement(0.25))
	tests := []struct {
		in, want float32
	}{
		{0.3, 0.25},
		{0.4, 0.5},
		{-5, 0},
		{9, 1},
		{0.75, 0.75},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Validate(tt.in), "Validate(%v)", tt.in)
	}
}

func TestSliderInitialValueSnaps(t *testing.T) {
	_, s, n := newTestSlider(t, WithValue(33))
	assert.Equal(t, float32(30), s.Value())
	assert.Equal(t, float32(30), s.DisplayValue())
	assert.Zero(t, *n)
}

func TestSliderDrag(t *testing.T) {
	ctx, s, n := newTestSlider(t)

	assert.True(t, mouseDown(ctx, Vec2{X: 110, Y: 10}))
	assert.Equal(t, float32(50), s.Value())
	assert.True(t, s.InFocus())

	assert.True(t, moveTo(ctx, Vec2{X: 156, Y: 300}), "moves go to the slider while it holds capture")
	assert.Equal(t, float32(70), s.Value())
	moveTo(ctx, Vec2{X: 900, Y: 10})
	assert.Equal(t, float32(100), s.Value())

	mouseUp(ctx, Vec2{X: 900, Y: 10})
	assert.Zero(t, ctx.Events().MouseCapture())
	assert.False(t, ctx.Events().IsRegistered(s.ID(), CategoryMouseMove))
	moveTo(ctx, Vec2{X: 10, Y: 10})
	assert.Equal(t, float32(100), s.Value())
	assert.Equal(t, 3, *n)
}

func TestSliderKeys(t *testing.T) {
	ctx, s, n := newTestSlider(t, WithValue(50))

	assert.True(t, key(ctx, KeyRight))
	assert.Equal(t, float32(60), s.Value())
	key(ctx, KeyLeft)
	key(ctx, KeyLeft)
	assert.Equal(t, float32(40), s.Value())
	key(ctx, KeyEnd)
	assert.Equal(t, float32(100), s.Value())
	key(ctx, KeyRight)
	assert.Equal(t, float32(100), s.Value(), "clamped at the top")
	key(ctx, KeyHome)
	assert.Equal(t, float32(0), s.Value())
	assert.Equal(t, 5, *n, "no callback when the value does not move")

	ctx.ProcessEvent(KeyEvent{Key: KeyRight, Shift: true})
	assert.Equal(t, float32(0), s.Value())
}

func TestSliderPad(t *testing.T) {
	ctx, s, _ := newTestSlider(t, WithValue(50))
	pad := NewGamePad()

	assert.True(t, padPress(ctx, pad, PadDPadRight))
	assert.Equal(t, float32(60), s.Value())

	pad.Set(PadDPadLeft, true)
	pad.Advance(0)
	ctx.ProcessEvent(GamePadEvent{Pad: pad})
	pad.EndFrame()
	assert.Equal(t, float32(50), s.Value())

	pad.Advance(PadRepeatDelay)
	assert.True(t, pad.Pending())
	ctx.ProcessEvent(GamePadEvent{Pad: pad})
	pad.EndFrame()
	assert.Equal(t, float32(40), s.Value(), "held d-pad repeats")
}

func TestSliderStepWithoutIncrement(t *testing.T) {
	ctx := newTestContext(t)
	s := NewSlider(ctx, "fine", WithRange(0, 1))
	s.Step(1)
	assert.InDelta(t, 0.01, s.Value(), 1e-6)
	s.Step(-5)
	assert.Equal(t, float32(0), s.Value())
}

func TestSliderThumbEases(t *testing.T) {
	ctx, s, _ := newTestSlider(t)
	key(ctx, KeyEnd)
	assert.Equal(t, float32(100), s.Value())
	assert.Equal(t, float32(0), s.DisplayValue(), "the thumb has not moved yet")

	ctx.Update(0.01)
	assert.Greater(t, s.DisplayValue(), float32(0))
	ctx.Update(1)
	assert.Equal(t, float32(100), s.DisplayValue())

	s.SnapValue(20)
	assert.Equal(t, float32(20), s.DisplayValue())
}

func TestSliderTouch(t *testing.T) {
	ctx, s, _ := newTestSlider(t)
	touch := func(x float32, phase TouchPhase) bool {
		return ctx.ProcessEvent(TouchEvent{Samples: []TouchSample{{Pos: Vec2{X: x, Y: 10}, Phase: phase}}})
	}

	assert.True(t, touch(110, TouchPressed))
	assert.Equal(t, float32(50), s.Value())
	assert.True(t, touch(210, TouchMoved))
	assert.Equal(t, float32(100), s.Value())
	assert.True(t, touch(10, TouchReleased))
	assert.Equal(t, float32(0), s.Value())
	assert.Zero(t, ctx.Events().TouchCapture())
	assert.False(t, touch(110, TouchMoved))
}

func TestSliderValueString(t *testing.T) {
	ctx := newTestContext(t)
	s := NewSlider(ctx, "s", WithRange(0, 1), WithIncrement(0.05), WithValue(0.25))
	s.SetDecimals(2)
	assert.Equal(t, "0.25", s.ValueString())

	_, whole, _ := newTestSlider(t, WithValue(50))
	assert.Equal(t, "50", whole.ValueString())
}
