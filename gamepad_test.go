package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGamePadEdges(t *testing.T) {
	p := NewGamePad()
	assert.False(t, p.Pending())

	p.Set(PadA, true)
	assert.True(t, p.A().IsPressed())
	assert.True(t, p.A().WasPressed())
	assert.True(t, p.Pending())

	p.Set(PadA, true)
	p.EndFrame()
	assert.True(t, p.A().IsPressed())
	assert.False(t, p.A().WasPressed(), "holding is not a new press")
	assert.False(t, p.Pending())

	p.Set(PadA, false)
	assert.True(t, p.A().WasReleased())
	assert.False(t, p.A().IsPressed())
	assert.True(t, p.Pending())
	p.EndFrame()
	assert.False(t, p.A().WasReleased())
}

func TestGamePadRepeat(t *testing.T) {
	p := &GamePad{RepeatDelay: 0.5, RepeatInterval: 0.25}
	p.Set(PadDPadDown, true)
	p.Advance(0.1)
	assert.True(t, p.DPadDown().WasPressedOrRepeat())
	p.EndFrame()

	p.Advance(0.25)
	assert.False(t, p.DPadDown().WasPressedOrRepeat())
	p.Advance(0.25)
	assert.True(t, p.DPadDown().WasPressedOrRepeat(), "first repeat after the delay")
	assert.True(t, p.Pending())
	p.EndFrame()

	p.Advance(0.125)
	assert.False(t, p.DPadDown().WasPressedOrRepeat())
	p.Advance(0.125)
	assert.True(t, p.DPadDown().WasPressedOrRepeat(), "then once per interval")
	p.EndFrame()

	p.Set(PadDPadDown, false)
	p.EndFrame()
	p.Advance(1)
	assert.False(t, p.DPadDown().WasPressedOrRepeat())
}

func TestGamePadClearWasPressed(t *testing.T) {
	p := NewGamePad()
	p.Set(PadB, true)
	p.Set(PadY, false)
	p.ClearAllWasPressedState()
	assert.False(t, p.B().WasPressed())
	assert.True(t, p.B().IsPressed())
	assert.False(t, p.Pending())
}

func TestGamePadOutOfRange(t *testing.T) {
	p := NewGamePad()
	p.Set(PadButtonCount, true)
	p.Set(-1, true)
	assert.Equal(t, ButtonState{}, p.Button(PadButtonCount))
	assert.False(t, p.Pending())
}
