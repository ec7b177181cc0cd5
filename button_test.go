package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScenes struct {
	name       string
	transition Transition
}

func (s *fakeScenes) SwitchToScene(name string, t Transition) bool {
	s.name, s.transition = name, t
	return true
}

func TestButtonClick(t *testing.T) {
	ctx := newTestContext(t)
	fire, n := counter()
	b := NewButton(ctx, "go", At(10, 10, 100, 30), OnChange(fire))
	newTestDialog(ctx, b)

	assert.True(t, mouseDown(ctx, center(b)))
	assert.True(t, b.Selected())
	assert.Zero(t, *n, "the action waits for the release")
	assert.True(t, mouseUp(ctx, center(b)))
	assert.Equal(t, 1, *n)
	assert.False(t, b.Selected())
	assert.Zero(t, ctx.Events().MouseCapture())
}

func TestButtonReleaseOutsideCancels(t *testing.T) {
	ctx := newTestContext(t)
	fire, n := counter()
	b := NewButton(ctx, "go", At(10, 10, 100, 30), OnChange(fire))
	other := NewButton(ctx, "other", At(10, 50, 100, 30), OnChange(nop))
	newTestDialog(ctx, b, other)

	mouseDown(ctx, center(b))
	moveTo(ctx, center(other))
	assert.True(t, mouseUp(ctx, center(other)), "the capture owner still gets the release")
	assert.Zero(t, *n)
	assert.False(t, b.Selected())
	assert.False(t, other.Selected())
}

func TestButtonReleaseAfterReturnFires(t *testing.T) {
	ctx := newTestContext(t)
	fire, n := counter()
	b := NewButton(ctx, "go", At(10, 10, 100, 30), OnChange(fire))
	other := NewButton(ctx, "other", At(10, 50, 100, 30), OnChange(nop))
	newTestDialog(ctx, b, other)

	mouseDown(ctx, center(b))
	moveTo(ctx, center(other))
	moveTo(ctx, center(b))
	assert.True(t, mouseUp(ctx, center(b)))
	assert.Equal(t, 1, *n)
	assert.False(t, other.Selected())
	assert.Zero(t, ctx.Events().MouseCapture())
}

func TestButtonLatchable(t *testing.T) {
	ctx := newTestContext(t)
	b := NewButton(ctx, "tool", At(10, 10, 100, 30), Latchable(), OnChange(nop))
	newTestDialog(ctx, b)
	assert.True(t, b.Latchable())

	click(ctx, center(b))
	assert.True(t, b.Selected())
	key(ctx, KeyEnter)
	assert.True(t, b.Selected())
	b.ForceOff()
	assert.False(t, b.Selected())
}

func TestButtonKeyboardAndPad(t *testing.T) {
	ctx := newTestContext(t)
	fire1, n1 := counter()
	fire2, n2 := counter()
	b1 := NewButton(ctx, "one", At(10, 10, 100, 30), OnChange(fire1))
	b2 := NewButton(ctx, "two", At(10, 50, 100, 30), OnChange(fire2))
	newTestDialog(ctx, b1, b2)

	assert.True(t, key(ctx, KeyEnter))
	assert.Equal(t, 1, *n1)
	assert.Zero(t, *n2, "only the focused button confirms")

	ctx.ProcessEvent(KeyEvent{Key: KeyEnter, Shift: true})
	assert.Equal(t, 1, *n1)

	pad := NewGamePad()
	assert.True(t, padPress(ctx, pad, PadA))
	assert.Equal(t, 2, *n1)
	assert.False(t, b1.Selected())
}

func TestButtonTap(t *testing.T) {
	ctx := newTestContext(t)
	fire, n := counter()
	b1 := NewButton(ctx, "one", At(10, 10, 100, 30), OnChange(nop))
	b2 := NewButton(ctx, "two", At(10, 50, 100, 30), OnChange(fire))
	newTestDialog(ctx, b1, b2)

	assert.True(t, tap(ctx, center(b2)))
	assert.Equal(t, 1, *n)
	assert.Equal(t, ModalityTouch, ctx.Modality())
}

func TestButtonTouchShowsPressed(t *testing.T) {
	ctx := newTestContext(t)
	fire, n := counter()
	b := NewButton(ctx, "go", At(10, 10, 100, 30), OnChange(fire))
	newTestDialog(ctx, b)

	p := center(b)
	assert.True(t, ctx.ProcessEvent(TouchEvent{Samples: []TouchSample{{Pos: p, Phase: TouchPressed}}}))
	assert.True(t, b.Selected())
	assert.Equal(t, b.ID(), ctx.Events().TouchCapture())

	ctx.ProcessEvent(TouchEvent{Samples: []TouchSample{{Pos: p, Phase: TouchReleased}}})
	assert.False(t, b.Selected())
	assert.Zero(t, ctx.Events().TouchCapture())
	assert.Zero(t, *n, "touch alone never fires")

	tap(ctx, p)
	assert.Equal(t, 1, *n)
}

func TestKillParentOnSelect(t *testing.T) {
	ctx := newTestContext(t)
	base := newTestDialog(ctx, NewButton(ctx, "base", At(10, 10, 100, 30), OnChange(nop)))

	var shownDuringCallback bool
	var d *Dialog
	yes := NewButton(ctx, "yes", At(10, 10, 80, 20), KillParentOnSelect(),
		OnChange(func() { shownDuringCallback = ctx.Dialogs().Shown(d) }))
	d = showDialog(ctx, NewDialog(ctx, At(200, 200, 200, 100), Modal()), yes)
	require.True(t, yes.InFocus())

	key(ctx, KeyEnter)
	assert.False(t, ctx.Dialogs().Shown(d))
	assert.False(t, shownDuringCallback, "the parent is killed before the callback runs")
	assert.Equal(t, base, ctx.Dialogs().CurrentFocusDialog())
}

func TestButtonTargetScene(t *testing.T) {
	scenes := &fakeScenes{}
	ctx := newTestContext(t, WithSceneSwitcher(scenes))
	b := NewButton(ctx, "options", At(10, 10, 100, 30), TargetScene("options", TransitionFade))
	newTestDialog(ctx, b)
	assert.True(t, b.HasValidTarget())

	click(ctx, center(b))
	assert.Equal(t, "options", scenes.name)
	assert.Equal(t, TransitionFade, scenes.transition)
}

func TestButtonWithoutTarget(t *testing.T) {
	ctx := newTestContext(t)
	b := NewButton(ctx, "idle")
	assert.False(t, b.HasValidTarget())
	assert.Equal(t, "idle", b.Name())
	b.SetLabel("busy")
	assert.Equal(t, "busy", b.Label())
}

func TestCheckBoxToggles(t *testing.T) {
	ctx := newTestContext(t)
	changed, n := counter()
	c := NewCheckBox(ctx, "grid", At(10, 10, 100, 20), WithChecked(true), OnChange(changed))
	newTestDialog(ctx, c)
	assert.True(t, c.Checked())

	mouseDown(ctx, center(c))
	assert.False(t, c.Checked(), "a check box toggles on press")
	assert.Equal(t, 1, *n)
	mouseUp(ctx, center(c))
	assert.False(t, c.Checked())

	key(ctx, KeyEnter)
	assert.True(t, c.Checked())
	padPress(ctx, NewGamePad(), PadA)
	assert.False(t, c.Checked())
	tap(ctx, center(c))
	assert.True(t, c.Checked())
	assert.Equal(t, 4, *n)

	c.SetChecked(true)
	assert.Equal(t, 4, *n, "no change, no callback")
}

func TestCheckBoxTouchHoldsCapture(t *testing.T) {
	ctx := newTestContext(t)
	c := NewCheckBox(ctx, "grid", At(10, 10, 100, 20))
	newTestDialog(ctx, c)

	p := center(c)
	assert.True(t, ctx.ProcessEvent(TouchEvent{Samples: []TouchSample{{Pos: p, Phase: TouchPressed}}}))
	assert.False(t, c.Checked())
	assert.True(t, ctx.ProcessEvent(TouchEvent{Samples: []TouchSample{{Pos: Vec2{X: 500, Y: 500}, Phase: TouchMoved}}}))
	ctx.ProcessEvent(TouchEvent{Samples: []TouchSample{{Pos: p, Phase: TouchReleased}}})
	assert.Zero(t, ctx.Events().TouchCapture())
}

func radios(ctx *Context, onChange func(Handler)) (*RadioGroup, []*RadioButton) {
	g := NewRadioGroup(ctx, onChange)
	rs := []*RadioButton{
		NewRadioButton(ctx, g, "easy", At(10, 10, 100, 20)),
		NewRadioButton(ctx, g, "normal", At(10, 40, 100, 20), WithChecked(true)),
		NewRadioButton(ctx, g, "hard", At(10, 70, 100, 20)),
	}
	newTestDialog(ctx, rs[0], rs[1], rs[2])
	return g, rs
}

func TestRadioExclusive(t *testing.T) {
	ctx := newTestContext(t)
	var chosen []string
	g, rs := radios(ctx, func(h Handler) { chosen = append(chosen, h.(*RadioButton).Label()) })
	assert.Equal(t, 1, g.SelectedIndex())
	assert.Equal(t, rs[1], g.Selected())

	mouseDown(ctx, center(rs[2]))
	assert.True(t, rs[2].Selected())
	assert.False(t, rs[1].Selected())
	mouseUp(ctx, center(rs[2]))

	tap(ctx, center(rs[0]))
	assert.Equal(t, 0, g.SelectedIndex())
	assert.Equal(t, []string{"hard", "easy"}, chosen)

	selected := 0
	for _, r := range rs {
		if r.Selected() {
			selected++
		}
	}
	assert.Equal(t, 1, selected)
}

func TestRadioRechooseFiresAgain(t *testing.T) {
	ctx := newTestContext(t)
	var calls int
	_, rs := radios(ctx, func(Handler) { calls++ })
	rs[1].SetFocus()

	key(ctx, KeyEnter)
	assert.Equal(t, 1, calls)
	padPress(ctx, NewGamePad(), PadA)
	assert.Equal(t, 2, calls)
	assert.True(t, rs[1].Selected())
}

func TestRadioSelectBeforeActivationIsSilent(t *testing.T) {
	ctx := newTestContext(t)
	var calls int
	g := NewRadioGroup(ctx, func(Handler) { calls++ })
	a := NewRadioButton(ctx, g, "a")
	b := NewRadioButton(ctx, g, "b")
	g.Select(1)
	assert.True(t, b.Selected())
	g.Select(0)
	assert.True(t, a.Selected())
	assert.False(t, b.Selected())
	g.Select(7)
	assert.Zero(t, calls)
	assert.Len(t, g.Members(), 2)
}

func TestRadioSwatchDraw(t *testing.T) {
	ctx := newTestContext(t)
	g := NewRadioGroup(ctx, nil)
	sw := NewRadioButton(ctx, g, "", At(10, 10, 30, 30), WithData(ColorRed))
	newTestDialog(ctx, sw)
	ctx.Update(1)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	ctx.Render(dl)
	var red bool
	for _, p := range dl.Prims {
		if p.Kind == PrimFill && p.Color == ColorRed {
			red = true
		}
	}
	assert.True(t, red)
}
