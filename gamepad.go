package ui

// PadButton identifies a gamepad button.
type PadButton int

const (
	PadA PadButton = iota
	PadB
	PadX
	PadY
	PadBack
	PadStart
	PadLeftShoulder
	PadRightShoulder
	PadDPadUp
	PadDPadDown
	PadDPadLeft
	PadDPadRight
	PadButtonCount
)

// Repeat timing defaults.
const (
	PadRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	PadRepeatInterval float32 = 0.12 // Repeat interval once repeating (seconds)
)

// ButtonState is the edge/level/repeat state of one pad button this frame.
type ButtonState struct {
	pressed     bool
	wasPressed  bool
	wasReleased bool
	repeat      bool
	held        float32
	nextRepeat  float32
}

// IsPressed reports whether the button is held.
func (b ButtonState) IsPressed() bool { return b.pressed }

// WasPressed reports a press edge this frame.
func (b ButtonState) WasPressed() bool { return b.wasPressed }

// WasReleased reports a release edge this frame.
func (b ButtonState) WasReleased() bool { return b.wasReleased }

// WasPressedOrRepeat reports a press edge or an auto-repeat tick.
func (b ButtonState) WasPressedOrRepeat() bool { return b.wasPressed || b.repeat }

// GamePad tracks one controller. Backends call Set while polling; the
// frame driver calls Advance and EndFrame around dispatch.
type GamePad struct {
	buttons        [PadButtonCount]ButtonState
	RepeatDelay    float32
	RepeatInterval float32
}

// NewGamePad creates a pad with default repeat timing.
func NewGamePad() *GamePad {
	return &GamePad{RepeatDelay: PadRepeatDelay, RepeatInterval: PadRepeatInterval}
}

// Set records the level of a button, generating edges on change.
func (p *GamePad) Set(b PadButton, down bool) {
	if b < 0 || b >= PadButtonCount {
		return
	}
	st := &p.buttons[b]
	if down && !st.pressed {
		st.wasPressed = true
		st.held = 0
		st.nextRepeat = p.RepeatDelay
	}
	if !down && st.pressed {
		st.wasReleased = true
		st.held = 0
	}
	st.pressed = down
}

// Button returns the state of b.
func (p *GamePad) Button(b PadButton) ButtonState {
	if b < 0 || b >= PadButtonCount {
		return ButtonState{}
	}
	return p.buttons[b]
}

// Convenience accessors used by widget handlers.
func (p *GamePad) A() ButtonState         { return p.Button(PadA) }
func (p *GamePad) B() ButtonState         { return p.Button(PadB) }
func (p *GamePad) Y() ButtonState         { return p.Button(PadY) }
func (p *GamePad) DPadUp() ButtonState    { return p.Button(PadDPadUp) }
func (p *GamePad) DPadDown() ButtonState  { return p.Button(PadDPadDown) }
func (p *GamePad) DPadLeft() ButtonState  { return p.Button(PadDPadLeft) }
func (p *GamePad) DPadRight() ButtonState { return p.Button(PadDPadRight) }

// Advance updates hold times and flags repeat ticks.
func (p *GamePad) Advance(dt float32) {
	for i := range p.buttons {
		st := &p.buttons[i]
		st.repeat = false
		if !st.pressed || st.wasPressed {
			continue
		}
		st.held += dt
		if p.RepeatInterval > 0 && st.held >= st.nextRepeat {
			st.repeat = true
			st.nextRepeat += p.RepeatInterval
		}
	}
}

// Pending reports whether any button has an edge or repeat to deliver.
func (p *GamePad) Pending() bool {
	for _, st := range p.buttons {
		if st.wasPressed || st.wasReleased || st.repeat {
			return true
		}
	}
	return false
}

// ClearAllWasPressedState drops this frame's press edges and repeats so
// later handlers in the same dispatch do not act on them again.
func (p *GamePad) ClearAllWasPressedState() {
	for i := range p.buttons {
		p.buttons[i].wasPressed = false
		p.buttons[i].repeat = false
	}
}

// EndFrame clears all edges.
func (p *GamePad) EndFrame() {
	for i := range p.buttons {
		p.buttons[i].wasPressed = false
		p.buttons[i].wasReleased = false
		p.buttons[i].repeat = false
	}
}
