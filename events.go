package ui

import (
	"log/slog"
	"slices"
)

// Category is an input event category widgets register for.
type Category int

const (
	CategoryNone Category = iota
	CategoryMouseLeftDown
	CategoryMouseLeftUp
	CategoryMouseRightDown
	CategoryMouseRightUp
	CategoryMouseMove
	CategoryMouseWheel
	CategoryKeyboard
	CategoryGamePad
	CategoryTouch
	CategoryTap
	categoryCount
)

var categoryNames = [categoryCount]string{
	"none", "mouse-left-down", "mouse-left-up", "mouse-right-down", "mouse-right-up",
	"mouse-move", "mouse-wheel", "keyboard", "gamepad", "touch", "tap",
}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return "invalid"
	}
	return categoryNames[c]
}

func (c Category) isMouse() bool {
	return c >= CategoryMouseLeftDown && c <= CategoryMouseWheel
}

// Receiver is anything the event manager can deliver to. Every widget
// variant is a Receiver; handlers return true when they consume the event.
type Receiver interface {
	Active() bool
	HandleMouse(ev MouseEvent) bool
	HandleKey(ev KeyEvent) bool
	HandleGamePad(ev GamePadEvent) bool
	HandleTouch(ev TouchEvent) bool
	HandleTap(ev TapEvent) bool
}

// RegistrationSet is one scope of per-category handler lists. PushSet
// returns it as the handle to pass back to PopSet.
type RegistrationSet struct {
	lists [categoryCount][]ID
}

func (s *RegistrationSet) has(id ID) bool {
	for _, l := range s.lists {
		if slices.Contains(l, id) {
			return true
		}
	}
	return false
}

// EventManager routes input events to registered receivers and owns the
// exclusive tokens: mouse capture, touch capture and input focus. Only
// the top registration set receives events.
type EventManager struct {
	sets    []*RegistrationSet
	resolve func(ID) Receiver
	logger  *slog.Logger

	mouseCapture ID
	touchCapture ID
	mouseHit     ID
	touchHit     ID
	focus        ID
}

// NewEventManager creates a manager with a single base registration set.
// resolve maps an ID to its receiver, returning nil for unknown ids.
func NewEventManager(resolve func(ID) Receiver, logger *slog.Logger) *EventManager {
	if logger == nil {
		logger = defaultLogger
	}
	return &EventManager{
		sets:    []*RegistrationSet{{}},
		resolve: resolve,
		logger:  logger,
	}
}

func (m *EventManager) top() *RegistrationSet {
	return m.sets[len(m.sets)-1]
}

// PushSet starts a fresh, empty registration scope on top and returns it.
func (m *EventManager) PushSet() *RegistrationSet {
	set := &RegistrationSet{}
	m.sets = append(m.sets, set)
	if uiVerbose() {
		m.logger.Debug("push registration set", "depth", len(m.sets))
	}
	return set
}

// PopSet discards set and everything registered in it, wherever it sits
// in the stack. Tokens held by ids that are left registered nowhere are
// released. The base scope is never popped; an unknown set is ignored.
func (m *EventManager) PopSet(set *RegistrationSet) {
	i := slices.Index(m.sets, set)
	if i == 0 {
		contract(false, "PopSet on base registration set")
		return
	}
	if i < 0 {
		return
	}
	m.sets = slices.Delete(m.sets, i, i+1)

	for _, id := range []ID{m.mouseCapture, m.touchCapture, m.focus} {
		if id != 0 && set.has(id) && !m.RegisteredAnywhere(id) {
			m.dropTokens(id)
		}
	}
	if uiVerbose() {
		m.logger.Debug("pop registration set", "depth", len(m.sets), "index", i)
	}
}

// Depth returns the number of registration scopes, including the base.
func (m *EventManager) Depth() int { return len(m.sets) }

// Register adds id to the current scope's list for cat. Registration order
// is dispatch order; registering twice is a no-op.
func (m *EventManager) Register(id ID, cat Category) {
	if id == 0 || cat <= CategoryNone || cat >= categoryCount {
		return
	}
	set := m.top()
	if slices.Contains(set.lists[cat], id) {
		return
	}
	set.lists[cat] = append(set.lists[cat], id)
}

// Unregister removes id from the current scope's list for cat.
func (m *EventManager) Unregister(id ID, cat Category) {
	if cat <= CategoryNone || cat >= categoryCount {
		return
	}
	set := m.top()
	set.lists[cat] = slices.DeleteFunc(set.lists[cat], func(x ID) bool { return x == id })
}

// UnregisterAll removes id from every list in every scope and releases
// any capture or focus token it holds.
func (m *EventManager) UnregisterAll(id ID) {
	if id == 0 {
		return
	}
	for _, set := range m.sets {
		for c := range set.lists {
			set.lists[c] = slices.DeleteFunc(set.lists[c], func(x ID) bool { return x == id })
		}
	}
	m.dropTokens(id)
}

func (m *EventManager) dropTokens(id ID) {
	if m.mouseCapture == id {
		m.mouseCapture = 0
		if uiVerbose() {
			m.logger.Debug("mouse capture dropped", "id", id)
		}
	}
	if m.touchCapture == id {
		m.touchCapture = 0
	}
	if m.focus == id {
		m.focus = 0
	}
}

// IsRegistered reports whether id is registered for cat in the current scope.
func (m *EventManager) IsRegistered(id ID, cat Category) bool {
	if cat <= CategoryNone || cat >= categoryCount {
		return false
	}
	return slices.Contains(m.top().lists[cat], id)
}

// RegisteredAnywhere reports whether id appears in any scope.
func (m *EventManager) RegisteredAnywhere(id ID) bool {
	for _, set := range m.sets {
		if set.has(id) {
			return true
		}
	}
	return false
}

// Registrations returns a copy of the current scope's list for cat.
func (m *EventManager) Registrations(cat Category) []ID {
	if cat <= CategoryNone || cat >= categoryCount {
		return nil
	}
	return slices.Clone(m.top().lists[cat])
}

// RegistrationCount returns the total number of registrations in the
// current scope.
func (m *EventManager) RegistrationCount() int {
	n := 0
	for _, l := range m.top().lists {
		n += len(l)
	}
	return n
}

// MouseCapture returns the mouse capture owner, or 0.
func (m *EventManager) MouseCapture() ID { return m.mouseCapture }

// CaptureMouse claims the mouse capture token for id. It only succeeds when
// the token is free or already held by id.
func (m *EventManager) CaptureMouse(id ID) bool {
	if id == 0 {
		return false
	}
	if m.mouseCapture != 0 && m.mouseCapture != id {
		return false
	}
	m.mouseCapture = id
	if uiVerbose() {
		m.logger.Debug("mouse captured", "id", id)
	}
	return true
}

// ReleaseMouse releases the mouse capture token if id holds it.
func (m *EventManager) ReleaseMouse(id ID) {
	if id != 0 && m.mouseCapture == id {
		m.mouseCapture = 0
		if uiVerbose() {
			m.logger.Debug("mouse released", "id", id)
		}
	}
}

// TouchCapture returns the touch capture owner, or 0.
func (m *EventManager) TouchCapture() ID { return m.touchCapture }

// CaptureTouch claims the touch capture token, with the same rule as
// CaptureMouse.
func (m *EventManager) CaptureTouch(id ID) bool {
	if id == 0 {
		return false
	}
	if m.touchCapture != 0 && m.touchCapture != id {
		return false
	}
	m.touchCapture = id
	return true
}

// ReleaseTouch releases the touch capture token if id holds it.
func (m *EventManager) ReleaseTouch(id ID) {
	if id != 0 && m.touchCapture == id {
		m.touchCapture = 0
	}
}

// MouseHit returns the widget under the mouse.
func (m *EventManager) MouseHit() ID { return m.mouseHit }

// SetMouseHit records the widget under the mouse.
func (m *EventManager) SetMouseHit(id ID) { m.mouseHit = id }

// TouchHit returns the widget under the primary touch.
func (m *EventManager) TouchHit() ID { return m.touchHit }

// SetTouchHit records the widget under the primary touch.
func (m *EventManager) SetTouchHit(id ID) { m.touchHit = id }

// Focus returns the focus holder, or 0.
func (m *EventManager) Focus() ID { return m.focus }

// SetFocus makes id the focus holder, stealing it from whoever had it,
// and returns the previous holder.
func (m *EventManager) SetFocus(id ID) ID {
	prev := m.focus
	m.focus = id
	return prev
}

// ReleaseFocus clears focus if id holds it.
func (m *EventManager) ReleaseFocus(id ID) {
	if id != 0 && m.focus == id {
		m.focus = 0
	}
}

// priority returns the ids offered the event before the registration list.
func (m *EventManager) priority(cat Category) (capture ID, others []ID) {
	switch {
	case cat.isMouse():
		return m.mouseCapture, []ID{m.mouseHit}
	case cat == CategoryKeyboard:
		return 0, []ID{m.focus, m.mouseHit}
	case cat == CategoryGamePad:
		return 0, []ID{m.focus}
	case cat == CategoryTouch:
		return m.touchCapture, []ID{m.touchHit}
	}
	return 0, nil
}

// Dispatch delivers ev and reports whether some receiver consumed it.
//
// Mouse events go to the capture owner first, then the widget under the
// pointer. Keyboard events go to the focus holder, then the widget under
// the mouse; gamepad events go to the focus holder. Touch goes to the
// touch capture owner, then the touch hit. After that every receiver
// registered for the category in the current scope is tried in
// registration order. A receiver is offered a given event at most once.
func (m *EventManager) Dispatch(ev Event) bool {
	cat := ev.Category()
	if cat <= CategoryNone || cat >= categoryCount {
		return false
	}
	offered := make([]ID, 0, 4)
	try := func(id ID, needRegistration bool) bool {
		if id == 0 || slices.Contains(offered, id) {
			return false
		}
		if needRegistration && !m.IsRegistered(id, cat) {
			return false
		}
		offered = append(offered, id)
		r := m.resolve(id)
		if r == nil || !r.Active() {
			return false
		}
		return deliver(r, ev)
	}

	capture, others := m.priority(cat)
	if try(capture, false) {
		return true
	}
	for _, id := range others {
		if try(id, true) {
			return true
		}
	}
	// Handlers may register or unregister while we walk the list.
	for _, id := range slices.Clone(m.top().lists[cat]) {
		if try(id, true) {
			return true
		}
	}
	return false
}

func deliver(r Receiver, ev Event) bool {
	switch e := ev.(type) {
	case MouseEvent:
		return r.HandleMouse(e)
	case KeyEvent:
		return r.HandleKey(e)
	case GamePadEvent:
		return r.HandleGamePad(e)
	case TouchEvent:
		return r.HandleTouch(e)
	case TapEvent:
		return r.HandleTap(e)
	}
	return false
}
