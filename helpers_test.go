package ui

import (
	"io"
	"log/slog"
	"testing"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestContext(t *testing.T, opts ...ContextOption) *Context {
	t.Helper()
	return NewContext(append([]ContextOption{WithLogger(quietLogger)}, opts...)...)
}

// newTestDialog shows a screen-sized dialog holding widgets.
func newTestDialog(ctx *Context, widgets ...Handler) *Dialog {
	return showDialog(ctx, NewDialog(ctx, At(0, 0, 800, 600)), widgets...)
}

func showDialog(ctx *Context, d *Dialog, widgets ...Handler) *Dialog {
	for _, w := range widgets {
		d.AddChild(w)
	}
	ctx.Dialogs().Show(d)
	return d
}

func center(h Handler) Vec2 { return h.Base().ScreenRect().Center() }

func moveTo(ctx *Context, p Vec2) bool {
	return ctx.ProcessEvent(MouseEvent{Kind: MouseMove, Pos: p})
}

func mouseDown(ctx *Context, p Vec2) bool {
	return ctx.ProcessEvent(MouseEvent{Kind: MouseLeftDown, Pos: p})
}

func mouseUp(ctx *Context, p Vec2) bool {
	return ctx.ProcessEvent(MouseEvent{Kind: MouseLeftUp, Pos: p})
}

// click presses and releases the left button at p.
func click(ctx *Context, p Vec2) {
	mouseDown(ctx, p)
	mouseUp(ctx, p)
}

func key(ctx *Context, k Key) bool {
	return ctx.ProcessEvent(KeyEvent{Key: k})
}

func ctrlKey(ctx *Context, k Key) bool {
	return ctx.ProcessEvent(KeyEvent{Key: k, Ctrl: true})
}

func typeText(ctx *Context, s string) {
	for _, r := range s {
		ctx.ProcessEvent(KeyEvent{Char: r})
	}
}

func tap(ctx *Context, p Vec2) bool {
	return ctx.ProcessEvent(TapEvent{Pos: p})
}

// padPress delivers one frame with b pressed, then releases it.
func padPress(ctx *Context, pad *GamePad, b PadButton) bool {
	pad.Set(b, true)
	pad.Advance(0)
	consumed := ctx.ProcessEvent(GamePadEvent{Pad: pad})
	pad.EndFrame()
	pad.Set(b, false)
	pad.EndFrame()
	return consumed
}

// counter returns a callback and a pointer to how often it ran.
func counter() (func(), *int) {
	n := new(int)
	return func() { *n++ }, n
}
