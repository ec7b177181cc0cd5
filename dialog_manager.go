package ui

import "slices"

// DialogManager keeps the stack of shown dialogs, bottom to top, and
// which of them holds focus. Non-modal dialogs shown while a modal one
// is up slide in beneath it and activate once the modal dialog goes.
type DialogManager struct {
	ctx     *Context
	stack   []ID
	current ID
}

func newDialogManager(ctx *Context) *DialogManager {
	return &DialogManager{ctx: ctx}
}

func (m *DialogManager) dialog(id ID) *Dialog {
	d, _ := m.ctx.Handler(id).(*Dialog)
	return d
}

// Show puts d on the stack and activates it unless a modal dialog
// above it keeps it waiting.
func (m *DialogManager) Show(d *Dialog) {
	if d == nil || m.Shown(d) {
		return
	}
	at := len(m.stack)
	if !d.modal {
		for at > 0 && m.dialog(m.stack[at-1]).modal {
			at--
		}
	}
	m.stack = slices.Insert(m.stack, at, d.id)
	if uiVerbose() {
		m.ctx.logger.Debug("show dialog", "dialog", m.ctx.describe(d.id), "depth", len(m.stack))
	}
	m.sync()
}

// Kill deactivates d and removes it from the stack. It reports whether
// d was shown.
func (m *DialogManager) Kill(d *Dialog) bool {
	if d == nil || !m.forget(d.id) {
		return false
	}
	if m.current == d.id {
		m.current = 0
	}
	if uiVerbose() {
		m.ctx.logger.Debug("kill dialog", "dialog", m.ctx.describe(d.id), "depth", len(m.stack))
	}
	d.Deactivate()
	m.sync()
	return true
}

// dropped is called when a dialog deactivates on its own.
func (m *DialogManager) dropped(d *Dialog) {
	wasCurrent := m.current == d.id
	if wasCurrent {
		m.current = 0
	}
	if m.forget(d.id) || wasCurrent {
		m.sync()
	}
}

func (m *DialogManager) forget(id ID) bool {
	i := slices.Index(m.stack, id)
	if i < 0 {
		return false
	}
	m.stack = slices.Delete(m.stack, i, i+1)
	return true
}

// sync activates every dialog down to and including the topmost modal
// one, then hands focus to the topmost dialog that can take it.
func (m *DialogManager) sync() {
	for i := len(m.stack) - 1; i >= 0; i-- {
		d := m.dialog(m.stack[i])
		if d == nil {
			continue
		}
		if d.Inactive() {
			d.Activate()
		}
		if d.modal {
			break
		}
	}
	if cur := m.dialog(m.current); cur != nil && cur == m.Top() && cur.FocusWidget() != nil {
		return
	}
	m.current = 0
	for i := len(m.stack) - 1; i >= 0; i-- {
		d := m.dialog(m.stack[i])
		if d != nil && d.Active() && d.CanFocus() {
			m.current = d.id
			d.SetFocus()
			return
		}
	}
}

// Shown reports whether d is on the stack.
func (m *DialogManager) Shown(d *Dialog) bool {
	return d != nil && slices.Contains(m.stack, d.id)
}

// Top returns the topmost dialog, or nil.
func (m *DialogManager) Top() *Dialog {
	if len(m.stack) == 0 {
		return nil
	}
	return m.dialog(m.stack[len(m.stack)-1])
}

// Dialogs returns the shown dialogs, bottom to top.
func (m *DialogManager) Dialogs() []*Dialog {
	out := make([]*Dialog, 0, len(m.stack))
	for _, id := range m.stack {
		if d := m.dialog(id); d != nil {
			out = append(out, d)
		}
	}
	return out
}

// ModalActive reports whether a modal dialog is shown.
func (m *DialogManager) ModalActive() bool {
	for _, id := range m.stack {
		if d := m.dialog(id); d != nil && d.modal {
			return true
		}
	}
	return false
}

// CurrentFocusDialog returns the dialog that owns keyboard navigation.
func (m *DialogManager) CurrentFocusDialog() *Dialog {
	return m.dialog(m.current)
}

// FocusNextDialog moves focus to the first widget of the next active,
// focusable dialog up the stack, wrapping around. With a single dialog
// that is the same dialog again. It reports whether focus moved.
func (m *DialogManager) FocusNextDialog() bool {
	return m.cycle(1)
}

// FocusPrevDialog moves focus to the last widget of the previous
// dialog down the stack, wrapping around.
func (m *DialogManager) FocusPrevDialog() bool {
	return m.cycle(-1)
}

func (m *DialogManager) cycle(step int) bool {
	n := len(m.stack)
	if n == 0 {
		return false
	}
	start := slices.Index(m.stack, m.current)
	if start < 0 {
		start = n - 1
		if step > 0 {
			start = -1
		}
	}
	for k := 1; k <= n; k++ {
		i := ((start+step*k)%n + n) % n
		d := m.dialog(m.stack[i])
		if d == nil || !d.Active() || !d.CanFocus() {
			continue
		}
		m.current = d.id
		if step > 0 {
			return d.FocusFirst()
		}
		return d.FocusLast()
	}
	return false
}
