package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	ui "github.com/go-theft-auto/koixui"
)

// GLFWInputAdapter turns GLFW window callbacks into queued ui events and
// polls a GLFW gamepad into a ui.GamePad.
type GLFWInputAdapter struct {
	window   *glfw.Window
	queue    *ui.EventQueue
	pad      *ui.GamePad
	joystick glfw.Joystick
	mouse    ui.Vec2
}

// NewGLFWInputAdapter installs callbacks on window that push into queue.
// pad may be nil when no gamepad should be polled.
func NewGLFWInputAdapter(window *glfw.Window, queue *ui.EventQueue, pad *ui.GamePad) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window:   window,
		queue:    queue,
		pad:      pad,
		joystick: glfw.Joystick1,
	}
	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	return a
}

// Clipboard returns a ui.Clipboard backed by the adapter's window.
func (a *GLFWInputAdapter) Clipboard() ui.Clipboard { return WindowClipboard(a.window) }

// WindowClipboard returns a ui.Clipboard backed by window.
func WindowClipboard(window *glfw.Window) ui.Clipboard { return glfwClipboard{window} }

type glfwClipboard struct{ window *glfw.Window }

func (c glfwClipboard) GetText() string  { return c.window.GetClipboardString() }
func (c glfwClipboard) SetText(s string) { c.window.SetClipboardString(s) }

// Poll reads the gamepad. Call it once per frame after glfw.PollEvents.
func (a *GLFWInputAdapter) Poll() {
	if a.pad == nil || !a.joystick.IsGamepad() {
		return
	}
	st := a.joystick.GetGamepadState()
	if st == nil {
		return
	}
	for gb, pb := range padButtons {
		a.pad.Set(pb, st.Buttons[gb] == glfw.Press)
	}
}

var padButtons = map[glfw.GamepadButton]ui.PadButton{
	glfw.ButtonA:           ui.PadA,
	glfw.ButtonB:           ui.PadB,
	glfw.ButtonX:           ui.PadX,
	glfw.ButtonY:           ui.PadY,
	glfw.ButtonBack:        ui.PadBack,
	glfw.ButtonStart:       ui.PadStart,
	glfw.ButtonLeftBumper:  ui.PadLeftShoulder,
	glfw.ButtonRightBumper: ui.PadRightShoulder,
	glfw.ButtonDpadUp:      ui.PadDPadUp,
	glfw.ButtonDpadDown:    ui.PadDPadDown,
	glfw.ButtonDpadLeft:    ui.PadDPadLeft,
	glfw.ButtonDpadRight:   ui.PadDPadRight,
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	k := glfwKeyToUIKey(key)
	if k == ui.KeyNone {
		return
	}
	a.queue.Push(ui.KeyEvent{
		Key:    k,
		Ctrl:   mods&glfw.ModControl != 0,
		Shift:  mods&glfw.ModShift != 0,
		Alt:    mods&glfw.ModAlt != 0,
		Repeat: action == glfw.Repeat,
	})
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.queue.Push(ui.KeyEvent{Char: char})
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	down := action == glfw.Press
	var kind ui.MouseKind
	switch button {
	case glfw.MouseButtonLeft:
		kind = pick(down, ui.MouseLeftDown, ui.MouseLeftUp)
	case glfw.MouseButtonRight:
		kind = pick(down, ui.MouseRightDown, ui.MouseRightUp)
	case glfw.MouseButtonMiddle:
		kind = pick(down, ui.MouseMiddleDown, ui.MouseMiddleUp)
	default:
		return
	}
	a.queue.Push(ui.MouseEvent{Kind: kind, Pos: a.mouse})
}

func pick(down bool, d, u ui.MouseKind) ui.MouseKind {
	if down {
		return d
	}
	return u
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.queue.Push(ui.MouseEvent{Kind: ui.MouseWheel, Pos: a.mouse, Wheel: float32(yoff)})
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.mouse = ui.Vec2{X: float32(xpos), Y: float32(ypos)}
	a.queue.Push(ui.MouseEvent{Kind: ui.MouseMove, Pos: a.mouse})
}

// glfwKeyToUIKey maps GLFW keys to ui keys.
func glfwKeyToUIKey(key glfw.Key) ui.Key {
	switch key {
	case glfw.KeyTab:
		return ui.KeyTab
	case glfw.KeyLeft:
		return ui.KeyLeft
	case glfw.KeyRight:
		return ui.KeyRight
	case glfw.KeyUp:
		return ui.KeyUp
	case glfw.KeyDown:
		return ui.KeyDown
	case glfw.KeyPageUp:
		return ui.KeyPageUp
	case glfw.KeyPageDown:
		return ui.KeyPageDown
	case glfw.KeyHome:
		return ui.KeyHome
	case glfw.KeyEnd:
		return ui.KeyEnd
	case glfw.KeyInsert:
		return ui.KeyInsert
	case glfw.KeyDelete:
		return ui.KeyDelete
	case glfw.KeyBackspace:
		return ui.KeyBackspace
	case glfw.KeySpace:
		return ui.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return ui.KeyEnter
	case glfw.KeyEscape:
		return ui.KeyEscape
	case glfw.KeyA:
		return ui.KeyA
	case glfw.KeyC:
		return ui.KeyC
	case glfw.KeyV:
		return ui.KeyV
	case glfw.KeyX:
		return ui.KeyX
	case glfw.KeyY:
		return ui.KeyY
	case glfw.KeyZ:
		return ui.KeyZ
	}
	if key >= glfw.KeyF1 && key <= glfw.KeyF12 {
		return ui.KeyF1 + ui.Key(key-glfw.KeyF1)
	}
	return ui.KeyNone
}
