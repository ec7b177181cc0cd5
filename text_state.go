package ui

// maxUndo bounds the undo history of one text box.
const maxUndo = 50

// InputTextState is the editing state of a text box: cursor, selection
// and undo history. Positions count runes, not bytes.
type InputTextState struct {
	// Editing is set while the box takes typed input. A focused box is
	// not necessarily editing.
	Editing bool

	CursorPos int

	// SelectionStart is the anchor, SelectionEnd follows the cursor. -1
	// means no selection.
	SelectionStart int
	SelectionEnd   int

	ScrollOffset float32

	UndoStack []string
	UndoIndex int

	CursorBlinkTime float32
}

func newInputTextState(text string) InputTextState {
	return InputTextState{
		CursorPos:      len([]rune(text)),
		SelectionStart: -1,
		SelectionEnd:   -1,
	}
}

// HasSelection reports whether a non-empty range is selected.
func (s *InputTextState) HasSelection() bool {
	return s.SelectionStart >= 0 && s.SelectionStart != s.SelectionEnd
}

// SelectedRange returns the selection as (start, end) with start <= end,
// or (-1, -1).
func (s *InputTextState) SelectedRange() (start, end int) {
	if !s.HasSelection() {
		return -1, -1
	}
	if s.SelectionStart < s.SelectionEnd {
		return s.SelectionStart, s.SelectionEnd
	}
	return s.SelectionEnd, s.SelectionStart
}

func (s *InputTextState) ClearSelection() {
	s.SelectionStart = -1
	s.SelectionEnd = -1
}

func (s *InputTextState) SelectAll(n int) {
	s.SelectionStart = 0
	s.SelectionEnd = n
	s.CursorPos = n
}

// extend moves the cursor to pos, growing the selection from its anchor
// when shift is held and dropping it otherwise.
func (s *InputTextState) extend(pos int, shift bool) {
	if !shift {
		s.CursorPos = pos
		s.ClearSelection()
		return
	}
	if s.SelectionStart < 0 {
		s.SelectionStart = s.CursorPos
	}
	s.CursorPos = pos
	s.SelectionEnd = pos
}

// PushUndo records text before a change. Forward history is dropped.
func (s *InputTextState) PushUndo(text string) {
	if s.UndoIndex < len(s.UndoStack) {
		s.UndoStack = s.UndoStack[:s.UndoIndex]
	}
	if n := len(s.UndoStack); n > 0 && s.UndoStack[n-1] == text {
		return
	}
	s.UndoStack = append(s.UndoStack, text)
	s.UndoIndex = len(s.UndoStack)
	if len(s.UndoStack) > maxUndo {
		s.UndoStack = s.UndoStack[1:]
		s.UndoIndex--
	}
}

// Undo returns the previous text. The current text is saved first so
// Redo can return to it.
func (s *InputTextState) Undo(current string) (string, bool) {
	if n := len(s.UndoStack); s.UndoIndex == n && n > 0 && s.UndoStack[n-1] != current {
		s.UndoStack = append(s.UndoStack, current)
	}
	if s.UndoIndex > 0 {
		s.UndoIndex--
		return s.UndoStack[s.UndoIndex], true
	}
	return "", false
}

// Redo returns the text Undo stepped back from.
func (s *InputTextState) Redo() (string, bool) {
	if s.UndoIndex < len(s.UndoStack)-1 {
		s.UndoIndex++
		return s.UndoStack[s.UndoIndex], true
	}
	return "", false
}

func (s *InputTextState) CanUndo() bool { return s.UndoIndex > 0 }
func (s *InputTextState) CanRedo() bool { return s.UndoIndex < len(s.UndoStack)-1 }

// wordLeft returns the start of the word left of pos.
func wordLeft(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && isSpace(runes[pos]) {
		pos--
	}
	for pos > 0 && !isSpace(runes[pos-1]) {
		pos--
	}
	return pos
}

// wordRight returns the position past the word right of pos and the
// whitespace after it.
func wordRight(runes []rune, pos int) int {
	n := len(runes)
	for pos < n && !isSpace(runes[pos]) {
		pos++
	}
	for pos < n && isSpace(runes[pos]) {
		pos++
	}
	return pos
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
