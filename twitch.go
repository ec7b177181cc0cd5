package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/chewxy/math32"
)

// Shape is an easing curve applied to twitch progress.
type Shape int

const (
	ShapeLinear Shape = iota
	ShapeEaseIn
	ShapeEaseOut
	ShapeEaseInOut
	ShapeOvershootIn
	ShapeOvershootOut
	ShapeOvershootInOut
)

const overshoot = 1.70158

// Apply maps linear progress t in [0,1] onto the curve.
func (s Shape) Apply(t float32) float32 {
	t = clampf(t, 0, 1)
	switch s {
	case ShapeEaseIn:
		return t * t
	case ShapeEaseOut:
		return t * (2 - t)
	case ShapeEaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	case ShapeOvershootIn:
		return t * t * ((overshoot+1)*t - overshoot)
	case ShapeOvershootOut:
		u := t - 1
		return 1 + (overshoot+1)*u*u*u + overshoot*u*u
	case ShapeOvershootInOut:
		const c = overshoot * 1.525
		if t < 0.5 {
			return (math32.Pow(2*t, 2) * ((c+1)*2*t - c)) / 2
		}
		return (math32.Pow(2*t-2, 2)*((c+1)*(t*2-2)+c) + 2) / 2
	}
	return t
}

var shapeNames = [...]string{
	ShapeLinear:         "linear",
	ShapeEaseIn:         "ease-in",
	ShapeEaseOut:        "ease-out",
	ShapeEaseInOut:      "ease-in-out",
	ShapeOvershootIn:    "overshoot-in",
	ShapeOvershootOut:   "overshoot-out",
	ShapeOvershootInOut: "overshoot-in-out",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "linear"
	}
	return shapeNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	i := slices.Index(shapeNames[:], strings.ToLower(string(text)))
	if i < 0 {
		return fmt.Errorf("unknown twitch shape %q", text)
	}
	*s = Shape(i)
	return nil
}

// LerpFunc interpolates between two values.
type LerpFunc[T any] func(a, b T, t float32) T

// LerpFloat is the LerpFunc for float32.
func LerpFloat(a, b, t float32) float32 { return a + (b-a)*t }

// LerpColor is the LerpFunc for Color.
func LerpColor(a, b Color, t float32) Color { return a.Lerp(b, t) }

// Ease returns the value of a twitch from start to target after elapsed
// seconds of duration.
func Ease[T any](start, target T, elapsed, duration float32, shape Shape, lerp LerpFunc[T]) T {
	if duration <= 0 || elapsed >= duration {
		return target
	}
	if elapsed <= 0 {
		return start
	}
	return lerp(start, target, shape.Apply(elapsed/duration))
}

// Twitch is a restartable eased transition of a displayed value.
// It is advanced once per frame by Update.
type Twitch[T comparable] struct {
	start, target, value T
	elapsed, duration    float32
	shape                Shape
	lerp                 LerpFunc[T]
	running              bool
}

// NewTwitch creates a settled twitch holding v.
func NewTwitch[T comparable](v T, duration float32, shape Shape, lerp LerpFunc[T]) *Twitch[T] {
	return &Twitch[T]{start: v, target: v, value: v, duration: duration, shape: shape, lerp: lerp}
}

// NewFloatTwitch creates a float32 twitch.
func NewFloatTwitch(v, duration float32, shape Shape) *Twitch[float32] {
	return NewTwitch(v, duration, shape, LerpFloat)
}

// NewColorTwitch creates a color twitch.
func NewColorTwitch(c Color, duration float32, shape Shape) *Twitch[Color] {
	return NewTwitch(c, duration, shape, LerpColor)
}

// Value returns the currently displayed value.
func (tw *Twitch[T]) Value() T { return tw.value }

// Target returns the value being eased toward.
func (tw *Twitch[T]) Target() T { return tw.target }

// Done reports whether the displayed value has reached the target.
func (tw *Twitch[T]) Done() bool { return !tw.running }

// SetTiming changes duration and shape for subsequent retargets.
func (tw *Twitch[T]) SetTiming(duration float32, shape Shape) {
	tw.duration = duration
	tw.shape = shape
}

// SetTarget restarts the transition from the displayed value toward v.
// Retargeting to the current target is a no-op.
func (tw *Twitch[T]) SetTarget(v T) {
	if v == tw.target {
		return
	}
	tw.start = tw.value
	tw.target = v
	tw.elapsed = 0
	if tw.duration <= 0 {
		tw.value = v
		tw.running = false
		return
	}
	tw.running = true
}

// Snap jumps to v without easing.
func (tw *Twitch[T]) Snap(v T) {
	tw.start, tw.target, tw.value = v, v, v
	tw.elapsed = 0
	tw.running = false
}

// Update advances the transition by dt seconds and reports whether it is
// still running. The final step lands exactly on the target.
func (tw *Twitch[T]) Update(dt float32) bool {
	if !tw.running {
		return false
	}
	tw.elapsed += dt
	if tw.elapsed >= tw.duration {
		tw.value = tw.target
		tw.running = false
		return false
	}
	tw.value = Ease(tw.start, tw.target, tw.elapsed, tw.duration, tw.shape, tw.lerp)
	return true
}
