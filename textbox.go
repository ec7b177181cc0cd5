package ui

import (
	"strings"
	"unicode"
)

// cursorBlink is the cursor blink period in seconds.
const cursorBlink = 1.0

// TextBox is a single-line edit box. It edits while focused: typed
// characters insert at the cursor and the editing keys act on the text.
// Enter commits, firing OnChange if the text differs from what was there
// when editing began; losing focus commits the same way. Escape restores
// the text from when editing began.
type TextBox struct {
	*Widget
	text      string
	committed string
	hint      string
	maxLength int
	numeric   bool
	masked    bool
	edit      InputTextState
}

// NewTextBox creates an inactive text box.
func NewTextBox(ctx *Context, opts ...Option) *TextBox {
	o := applyOptions(opts)
	t := &TextBox{
		Widget:    newWidget(ctx, KindTextBox, o),
		text:      GetOpt(o, OptText),
		hint:      GetOpt(o, OptHint),
		maxLength: GetOpt(o, OptMaxLength),
		numeric:   GetOpt(o, OptNumeric),
		masked:    GetOpt(o, OptMasked),
	}
	t.committed = t.text
	t.edit = newInputTextState(t.text)
	t.attach(t)
	return t
}

// Text returns the current contents, committed or not.
func (t *TextBox) Text() string { return t.text }

// Committed returns the contents as of the last commit.
func (t *TextBox) Committed() string { return t.committed }

// SetText replaces the contents and the committed text without calling
// OnChange. Undo history is cleared.
func (t *TextBox) SetText(s string) {
	s = t.limit(s)
	t.text, t.committed = s, s
	t.edit = newInputTextState(s)
}

// Editing reports whether the box is taking typed input.
func (t *TextBox) Editing() bool { return t.edit.Editing }

// Cursor returns the cursor position in runes.
func (t *TextBox) Cursor() int { return t.edit.CursorPos }

// State exposes the editing state.
func (t *TextBox) State() *InputTextState { return &t.edit }

// Commit ends an edit. OnChange runs if the text changed since the last
// commit.
func (t *TextBox) Commit() {
	t.edit.Editing = false
	t.edit.ClearSelection()
	if t.text == t.committed {
		return
	}
	t.committed = t.text
	if uiVerbose() {
		t.ctx.logger.Debug("text committed", "widget", t.ctx.describe(t.id), "len", len(t.text))
	}
	t.OnChange()
}

// Cancel restores the committed text and ends the edit.
func (t *TextBox) Cancel() {
	t.text = t.committed
	t.edit = newInputTextState(t.text)
}

func (t *TextBox) limit(s string) string {
	if t.maxLength > 0 {
		if r := []rune(s); len(r) > t.maxLength {
			return string(r[:t.maxLength])
		}
	}
	return s
}

func (t *TextBox) accepts(r rune) bool {
	if unicode.IsControl(r) {
		return false
	}
	return !t.numeric || unicode.IsDigit(r)
}

// StateChanged starts editing when the box gains focus and commits when
// it loses it.
func (t *TextBox) StateChanged(prev, next UIState) {
	had, has := prev.Has(StateFocused), next.Has(StateFocused)
	switch {
	case has && !had:
		t.edit.Editing = true
		t.edit.CursorBlinkTime = 0
	case had && !has && t.edit.Editing:
		t.Commit()
	}
}

func (t *TextBox) UpdateWidget(dt float32) {
	if t.edit.Editing {
		t.edit.CursorBlinkTime += dt
		if t.edit.CursorBlinkTime >= cursorBlink {
			t.edit.CursorBlinkTime -= cursorBlink
		}
	}
}

func (t *TextBox) Categories() []Category {
	return []Category{CategoryMouseLeftDown, CategoryKeyboard, CategoryTap}
}

// textOrigin returns where the first glyph is drawn.
func (t *TextBox) textOrigin() Vec2 {
	r := t.ScreenRect()
	pad := (r.H - GlyphHeight) * 0.5
	return Vec2{X: r.X + pad - t.edit.ScrollOffset, Y: r.Y + pad}
}

func (t *TextBox) cursorAt(p Vec2) int {
	n := len([]rune(t.text))
	i := int((p.X - t.textOrigin().X + GlyphWidth*0.5) / GlyphWidth)
	return max(0, min(n, i))
}

// HandleMouse takes focus and places the cursor when a press on the box
// is released over it.
func (t *TextBox) HandleMouse(ev MouseEvent) bool {
	switch ev.Kind {
	case MouseLeftDown:
		return t.claimPress()
	case MouseLeftUp:
		if !t.releasePress() {
			return false
		}
		if t.ctx.events.MouseHit() == t.id {
			t.SetFocus()
			t.edit.CursorPos = t.cursorAt(ev.Pos)
			t.edit.ClearSelection()
		}
		return true
	}
	return false
}

func (t *TextBox) HandleTap(ev TapEvent) bool {
	if ev.Hit != t.id {
		return false
	}
	t.SetFocus()
	t.edit.CursorPos = t.cursorAt(ev.Pos)
	t.edit.ClearSelection()
	return true
}

// HandleKey edits while focused. Tab, Up and Down are left to the dialog;
// Escape with nothing to revert is too. After a commit, Enter selects all
// and any other key resumes editing.
func (t *TextBox) HandleKey(ev KeyEvent) bool {
	if !t.InFocus() {
		return false
	}
	if !t.edit.Editing {
		switch {
		case ev.Is(KeyEnter):
			t.edit.Editing = true
			t.edit.SelectAll(len([]rune(t.text)))
			return true
		case ev.Key == KeyEscape, ev.Key == KeyTab, ev.Key == KeyUp, ev.Key == KeyDown:
			return false
		}
		t.edit.Editing = true
	}
	if ev.Key == KeyNone && ev.Char != 0 {
		if ev.Ctrl || ev.Alt || !t.accepts(ev.Char) {
			return true
		}
		t.insert(string(ev.Char))
		return true
	}
	if ev.Ctrl {
		return t.shortcut(ev)
	}

	runes := []rune(t.text)
	s := &t.edit
	switch ev.Key {
	case KeyLeft:
		if s.HasSelection() && !ev.Shift {
			start, _ := s.SelectedRange()
			s.extend(start, false)
		} else {
			s.extend(max(0, s.CursorPos-1), ev.Shift)
		}
	case KeyRight:
		if s.HasSelection() && !ev.Shift {
			_, end := s.SelectedRange()
			s.extend(end, false)
		} else {
			s.extend(min(len(runes), s.CursorPos+1), ev.Shift)
		}
	case KeyHome:
		s.extend(0, ev.Shift)
	case KeyEnd:
		s.extend(len(runes), ev.Shift)
	case KeyBackspace:
		if !t.deleteSelection() && s.CursorPos > 0 {
			s.PushUndo(t.text)
			t.text = string(append(runes[:s.CursorPos-1:s.CursorPos-1], runes[s.CursorPos:]...))
			s.CursorPos--
		}
	case KeyDelete:
		if !t.deleteSelection() && s.CursorPos < len(runes) {
			s.PushUndo(t.text)
			t.text = string(append(runes[:s.CursorPos:s.CursorPos], runes[s.CursorPos+1:]...))
		}
	case KeyEnter:
		t.Commit()
	case KeyEscape:
		if t.text == t.committed {
			t.edit.Editing = false
			return false
		}
		t.Cancel()
	default:
		return false
	}
	s.CursorBlinkTime = 0
	return true
}

func (t *TextBox) shortcut(ev KeyEvent) bool {
	s := &t.edit
	cb := t.ctx.clipboard
	runes := []rune(t.text)
	switch ev.Key {
	case KeyA:
		s.SelectAll(len(runes))
	case KeyC:
		if start, end := s.SelectedRange(); start >= 0 {
			cb.SetText(string(runes[start:end]))
		}
	case KeyX:
		if start, end := s.SelectedRange(); start >= 0 {
			cb.SetText(string(runes[start:end]))
			t.deleteSelection()
		}
	case KeyV:
		t.insert(cb.GetText())
	case KeyZ:
		if ev.Shift {
			t.restore(s.Redo())
		} else {
			t.restore(s.Undo(t.text))
		}
	case KeyY:
		t.restore(s.Redo())
	case KeyLeft:
		s.extend(wordLeft(runes, s.CursorPos), ev.Shift)
	case KeyRight:
		s.extend(wordRight(runes, s.CursorPos), ev.Shift)
	default:
		return false
	}
	return true
}

func (t *TextBox) restore(text string, ok bool) {
	if !ok {
		return
	}
	t.text = text
	t.edit.CursorPos = len([]rune(text))
	t.edit.ClearSelection()
}

// insert replaces the selection with s, dropping characters the box
// does not accept and whatever would overflow the length limit.
func (t *TextBox) insert(s string) {
	s = strings.Map(func(r rune) rune {
		if t.accepts(r) {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return
	}
	t.edit.PushUndo(t.text)
	runes := []rune(t.text)
	if start, end := t.edit.SelectedRange(); start >= 0 {
		runes = append(runes[:start:start], runes[end:]...)
		t.edit.CursorPos = start
		t.edit.ClearSelection()
	}
	add := []rune(s)
	if t.maxLength > 0 {
		room := t.maxLength - len(runes)
		if room <= 0 {
			return
		}
		if len(add) > room {
			add = add[:room]
		}
	}
	pos := min(t.edit.CursorPos, len(runes))
	out := make([]rune, 0, len(runes)+len(add))
	out = append(out, runes[:pos]...)
	out = append(out, add...)
	out = append(out, runes[pos:]...)
	t.text = string(out)
	t.edit.CursorPos = pos + len(add)
}

func (t *TextBox) deleteSelection() bool {
	start, end := t.edit.SelectedRange()
	if start < 0 {
		return false
	}
	t.edit.PushUndo(t.text)
	runes := []rune(t.text)
	t.text = string(append(runes[:start:start], runes[end:]...))
	t.edit.CursorPos = start
	t.edit.ClearSelection()
	return true
}

// display returns the text as drawn.
func (t *TextBox) display() string {
	if t.masked {
		return strings.Repeat("*", len([]rune(t.text)))
	}
	return t.text
}

func (t *TextBox) Draw(dl *DrawList, r Rect, look Look) {
	dl.AddLook(r, look)
	pad := (r.H - GlyphHeight) * 0.5
	inner := Rect{X: r.X + pad, Y: r.Y, W: r.W - 2*pad, H: r.H}

	// Keep the cursor in view.
	s := &t.edit
	cx := float32(s.CursorPos) * GlyphWidth
	if cx-s.ScrollOffset > inner.W {
		s.ScrollOffset = cx - inner.W
	}
	if cx < s.ScrollOffset {
		s.ScrollOffset = cx
	}

	dl.PushClipRect(inner)
	origin := t.textOrigin()
	if start, end := s.SelectedRange(); s.Editing && start >= 0 {
		sel := Rect{X: origin.X + float32(start)*GlyphWidth, Y: r.Y + 2, W: float32(end-start) * GlyphWidth, H: r.H - 4}
		dl.AddRect(sel, t.ctx.theme.FocusColor.WithAlpha(96))
	}
	if t.text == "" && !s.Editing {
		dl.AddText(origin, t.hint, look.Text.WithAlpha(look.Text.Alpha()/2), 1)
	} else {
		dl.AddText(origin, t.display(), look.Text, 1)
	}
	if s.Editing && s.CursorBlinkTime < cursorBlink*0.5 {
		x := origin.X + cx
		dl.AddLine(Vec2{X: x, Y: r.Y + 2}, Vec2{X: x, Y: r.Y + r.H - 2}, look.Text, 1)
	}
	dl.PopClipRect()
}
