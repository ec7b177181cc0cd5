package ui

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

var keyNames = map[Key]string{
	KeyNone:      "--",
	KeyTab:       "Tab",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyInsert:    "Ins",
	KeyDelete:    "Del",
	KeyBackspace: "Backspace",
	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeyA:         "A",
	KeyC:         "C",
	KeyV:         "V",
	KeyX:         "X",
	KeyY:         "Y",
	KeyZ:         "Z",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

// Modality is the kind of device that produced the most recent event.
type Modality int

const (
	ModalityMouse Modality = iota
	ModalityKeyboard
	ModalityGamePad
	ModalityTouch
)

func (m Modality) String() string {
	switch m {
	case ModalityKeyboard:
		return "keyboard"
	case ModalityGamePad:
		return "gamepad"
	case ModalityTouch:
		return "touch"
	}
	return "mouse"
}

// Event is a discrete input record fed to Context.ProcessEvent.
type Event interface {
	Category() Category
	Modality() Modality
}

// MouseKind identifies a mouse event.
type MouseKind int

const (
	MouseLeftDown MouseKind = iota
	MouseLeftUp
	MouseRightDown
	MouseRightUp
	MouseMiddleDown
	MouseMiddleUp
	MouseMove
	MouseWheel
)

// MouseEvent is a mouse button edge, move or wheel step.
type MouseEvent struct {
	Kind  MouseKind
	Pos   Vec2
	Wheel float32
}

func (e MouseEvent) Category() Category {
	switch e.Kind {
	case MouseLeftDown:
		return CategoryMouseLeftDown
	case MouseLeftUp:
		return CategoryMouseLeftUp
	case MouseRightDown:
		return CategoryMouseRightDown
	case MouseRightUp:
		return CategoryMouseRightUp
	case MouseMove:
		return CategoryMouseMove
	case MouseWheel:
		return CategoryMouseWheel
	}
	return CategoryNone
}

func (MouseEvent) Modality() Modality { return ModalityMouse }

// KeyEvent is a key press (or repeat) or a typed character. Character
// events carry KeyNone and a non-zero Char.
type KeyEvent struct {
	Key    Key
	Char   rune
	Ctrl   bool
	Shift  bool
	Alt    bool
	Repeat bool
}

// Modifier reports whether any modifier key is held.
func (e KeyEvent) Modifier() bool { return e.Ctrl || e.Shift || e.Alt }

// Is reports whether e is k pressed with no modifiers.
func (e KeyEvent) Is(k Key) bool { return e.Key == k && !e.Modifier() }

func (KeyEvent) Category() Category { return CategoryKeyboard }
func (KeyEvent) Modality() Modality { return ModalityKeyboard }

// TouchPhase is the lifecycle phase of one touch sample.
type TouchPhase int

const (
	TouchPressed TouchPhase = iota
	TouchMoved
	TouchReleased
)

// TouchSample is one finger in a touch event.
type TouchSample struct {
	ID    int
	Pos   Vec2
	Phase TouchPhase
}

// TouchEvent carries every finger sampled this frame. Hit is resolved by
// the context from the first sample before dispatch.
type TouchEvent struct {
	Samples []TouchSample
	Hit     ID
}

// Primary returns the first sample.
func (e TouchEvent) Primary() (TouchSample, bool) {
	if len(e.Samples) == 0 {
		return TouchSample{}, false
	}
	return e.Samples[0], true
}

func (TouchEvent) Category() Category { return CategoryTouch }
func (TouchEvent) Modality() Modality { return ModalityTouch }

// TapEvent is a recognised tap gesture. Hit is resolved by the context
// when the producer leaves it unset.
type TapEvent struct {
	Pos Vec2
	Hit ID
}

func (TapEvent) Category() Category { return CategoryTap }
func (TapEvent) Modality() Modality { return ModalityTouch }

// GamePadEvent is delivered once per frame while any pad button has an
// edge or repeat pending.
type GamePadEvent struct {
	Pad *GamePad
}

func (GamePadEvent) Category() Category { return CategoryGamePad }
func (GamePadEvent) Modality() Modality { return ModalityGamePad }

// EventQueue buffers events between the backend and the frame loop.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int { return len(q.events) }

// Drain returns the queued events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}
