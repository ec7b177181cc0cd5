// Package terminal runs a ui context inside a terminal with tcell. Widget
// coordinates stay in pixels; one cell covers one glyph of the built-in
// font.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	ui "github.com/go-theft-auto/koixui"
)

// Cell size in ui pixels.
var (
	CellWidth  = ui.GlyphWidth
	CellHeight = ui.GlyphHeight
)

// CellToPixel returns the ui position of the centre of cell (x, y).
func CellToPixel(x, y int) ui.Vec2 {
	return ui.Vec2{X: (float32(x) + 0.5) * CellWidth, Y: (float32(y) + 0.5) * CellHeight}
}

// PixelToCell returns the cell containing ui position p.
func PixelToCell(p ui.Vec2) (x, y int) {
	return int(p.X / CellWidth), int(p.Y / CellHeight)
}

// Adapter turns tcell events into queued ui events.
type Adapter struct {
	queue   *ui.EventQueue
	buttons tcell.ButtonMask
	mouse   ui.Vec2
}

// NewAdapter creates an adapter pushing into queue. The screen must have
// mouse reporting enabled for pointer input.
func NewAdapter(queue *ui.EventQueue) *Adapter {
	return &Adapter{queue: queue}
}

// Handle converts one tcell event. It reports the new size in ui pixels
// when ev is a resize.
func (a *Adapter) Handle(ev tcell.Event) (size ui.Vec2, resized bool) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return ui.Vec2{X: float32(w) * CellWidth, Y: float32(h) * CellHeight}, true
	case *tcell.EventKey:
		a.key(e)
	case *tcell.EventMouse:
		a.mouseEvent(e)
	}
	return ui.Vec2{}, false
}

func (a *Adapter) key(e *tcell.EventKey) {
	mods := e.Modifiers()
	ke := ui.KeyEvent{
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
		Alt:   mods&tcell.ModAlt != 0,
	}
	if e.Key() == tcell.KeyRune {
		r := e.Rune()
		if r == ' ' {
			ke.Key = ui.KeySpace
			a.queue.Push(ke)
			ke.Key = ui.KeyNone
		}
		ke.Char = r
		a.queue.Push(ke)
		return
	}
	k, ctrl, shift := tcellKeyToUIKey(e.Key())
	if k == ui.KeyNone {
		return
	}
	ke.Key = k
	ke.Ctrl = ke.Ctrl || ctrl
	ke.Shift = ke.Shift || shift
	a.queue.Push(ke)
}

// tcellKeyToUIKey maps tcell keys to ui keys. Control letters arrive as
// their own keys and come back with ctrl set; back-tab comes back as
// shifted Tab.
func tcellKeyToUIKey(k tcell.Key) (key ui.Key, ctrl, shift bool) {
	switch k {
	case tcell.KeyTab:
		return ui.KeyTab, false, false
	case tcell.KeyBacktab:
		return ui.KeyTab, false, true
	case tcell.KeyLeft:
		return ui.KeyLeft, false, false
	case tcell.KeyRight:
		return ui.KeyRight, false, false
	case tcell.KeyUp:
		return ui.KeyUp, false, false
	case tcell.KeyDown:
		return ui.KeyDown, false, false
	case tcell.KeyPgUp:
		return ui.KeyPageUp, false, false
	case tcell.KeyPgDn:
		return ui.KeyPageDown, false, false
	case tcell.KeyHome:
		return ui.KeyHome, false, false
	case tcell.KeyEnd:
		return ui.KeyEnd, false, false
	case tcell.KeyInsert:
		return ui.KeyInsert, false, false
	case tcell.KeyDelete:
		return ui.KeyDelete, false, false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ui.KeyBackspace, false, false
	case tcell.KeyEnter:
		return ui.KeyEnter, false, false
	case tcell.KeyEscape:
		return ui.KeyEscape, false, false
	case tcell.KeyCtrlA:
		return ui.KeyA, true, false
	case tcell.KeyCtrlC:
		return ui.KeyC, true, false
	case tcell.KeyCtrlV:
		return ui.KeyV, true, false
	case tcell.KeyCtrlX:
		return ui.KeyX, true, false
	case tcell.KeyCtrlY:
		return ui.KeyY, true, false
	case tcell.KeyCtrlZ:
		return ui.KeyZ, true, false
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return ui.KeyF1 + ui.Key(k-tcell.KeyF1), false, false
	}
	return ui.KeyNone, false, false
}

// mouseEvent turns tcell's button mask into edges. tcell reports the
// buttons held, not transitions.
func (a *Adapter) mouseEvent(e *tcell.EventMouse) {
	x, y := e.Position()
	pos := CellToPixel(x, y)
	held := e.Buttons()
	if pos != a.mouse {
		a.mouse = pos
		a.queue.Push(ui.MouseEvent{Kind: ui.MouseMove, Pos: pos})
	}
	edges := []struct {
		mask     tcell.ButtonMask
		down, up ui.MouseKind
	}{
		{tcell.Button1, ui.MouseLeftDown, ui.MouseLeftUp},
		{tcell.Button2, ui.MouseRightDown, ui.MouseRightUp},
		{tcell.Button3, ui.MouseMiddleDown, ui.MouseMiddleUp},
	}
	for _, b := range edges {
		was, is := a.buttons&b.mask != 0, held&b.mask != 0
		switch {
		case is && !was:
			a.queue.Push(ui.MouseEvent{Kind: b.down, Pos: pos})
		case was && !is:
			a.queue.Push(ui.MouseEvent{Kind: b.up, Pos: pos})
		}
	}
	a.buttons = held & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	switch {
	case held&tcell.WheelUp != 0:
		a.queue.Push(ui.MouseEvent{Kind: ui.MouseWheel, Pos: pos, Wheel: 1})
	case held&tcell.WheelDown != 0:
		a.queue.Push(ui.MouseEvent{Kind: ui.MouseWheel, Pos: pos, Wheel: -1})
	}
}
