package ui

// Clipboard abstracts system clipboard access. Backends provide one
// through WithClipboard; text boxes use it for cut, copy and paste.
//
// For GLFW:
//
//	type glfwClipboard struct{ window *glfw.Window }
//
//	func (c glfwClipboard) GetText() string  { return c.window.GetClipboardString() }
//	func (c glfwClipboard) SetText(s string) { c.window.SetClipboardString(s) }
type Clipboard interface {
	// GetText returns the clipboard text, or "" when it holds none.
	GetText() string
	SetText(text string)
}

// MemoryClipboard is a process-local clipboard, the default when no
// backend clipboard is configured.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) GetText() string  { return c.text }
func (c *MemoryClipboard) SetText(s string) { c.text = s }

// WithClipboard sets the clipboard used by text boxes.
func WithClipboard(cb Clipboard) ContextOption {
	return func(c *Context) {
		if cb != nil {
			c.clipboard = cb
		}
	}
}

// Clipboard returns the context clipboard.
func (c *Context) Clipboard() Clipboard { return c.clipboard }
