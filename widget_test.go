package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoButtons(ctx *Context) (*Dialog, *Button, *Button) {
	b1 := NewButton(ctx, "one", At(10, 10, 100, 30), OnChange(func() {}))
	b2 := NewButton(ctx, "two", At(10, 50, 100, 30), OnChange(func() {}))
	d := newTestDialog(ctx, b1, b2)
	return d, b1, b2
}

func TestActivationRegistersChildrenFirst(t *testing.T) {
	ctx := newTestContext(t)
	b1 := NewButton(ctx, "one", OnChange(func() {}))
	b2 := NewButton(ctx, "two", OnChange(func() {}))
	set := NewWidgetSet(ctx)
	set.Add(b1, b2)
	assert.True(t, b1.Inactive())

	d := newTestDialog(ctx, set)
	assert.True(t, set.Active())
	assert.Equal(t, []ID{b1.ID(), b2.ID(), d.ID()}, ctx.Events().Registrations(CategoryKeyboard))
}

func TestAddChildToActiveParent(t *testing.T) {
	ctx := newTestContext(t)
	d := newTestDialog(ctx)
	b := NewButton(ctx, "late", OnChange(func() {}))
	d.AddChild(b)
	assert.True(t, b.Active())
	assert.True(t, ctx.Events().IsRegistered(b.ID(), CategoryMouseLeftDown))
	assert.Equal(t, d, b.ParentDialog())
}

func TestAddChildTwice(t *testing.T) {
	if debugAsserts {
		t.Skip("asserts panic in debug builds")
	}
	ctx := newTestContext(t)
	a := NewWidgetSet(ctx)
	b := NewWidgetSet(ctx)
	l := NewLabel(ctx, "x")
	a.AddChild(l)
	b.AddChild(l)
	assert.Equal(t, a.ID(), l.Parent())
	assert.Empty(t, b.Children())
}

func TestScreenRect(t *testing.T) {
	ctx := newTestContext(t)
	b := NewButton(ctx, "b", At(5, 5, 20, 10), OnChange(func() {}))
	set := NewWidgetSet(ctx, Stack(LayoutNone), At(10, 10, 100, 100))
	set.Add(b)
	d := NewDialog(ctx, At(100, 50, 300, 300))
	showDialog(ctx, d, set)
	assert.Equal(t, Rect{X: 115, Y: 65, W: 20, H: 10}, b.ScreenRect())
}

func TestHitTest(t *testing.T) {
	ctx := newTestContext(t)
	b := NewButton(ctx, "b", At(10, 10, 100, 30), OnChange(func() {}))
	l := NewLabel(ctx, "caption", At(10, 60, 100, 20))
	d := newTestDialog(ctx, b, l)

	assert.Equal(t, b.ID(), ctx.HitTest(Vec2{X: 20, Y: 20}))
	assert.Equal(t, d.ID(), ctx.HitTest(Vec2{X: 20, Y: 70}), "labels are never hit")
	assert.Zero(t, ctx.HitTest(Vec2{X: 900, Y: 20}))

	b.Deactivate()
	assert.Equal(t, d.ID(), ctx.HitTest(Vec2{X: 20, Y: 20}))
}

func TestShowSeedsFocus(t *testing.T) {
	ctx := newTestContext(t)
	_, b1, _ := twoButtons(ctx)
	assert.True(t, b1.InFocus())
	assert.Equal(t, b1.ID(), ctx.FocusedID())
}

func TestHoverClaimsFocus(t *testing.T) {
	ctx := newTestContext(t)
	_, b1, b2 := twoButtons(ctx)
	ctx.Update(0)
	assert.Equal(t, StateActiveFocused, b1.combined)

	moveTo(ctx, center(b2))
	ctx.Update(0)
	assert.True(t, b2.Hover())
	assert.True(t, b2.InFocus())
	assert.Equal(t, StateActiveFocusedHover, b2.combined)

	ctx.Update(0)
	assert.Equal(t, StateActive, b1.combined)
}

func TestHoverWithoutFocusClaim(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HoverClaimsFocus = false
	ctx := newTestContext(t, WithConfig(cfg))
	_, b1, b2 := twoButtons(ctx)

	moveTo(ctx, center(b2))
	ctx.Update(0)
	assert.True(t, b2.Hover())
	assert.True(t, b1.InFocus())
	assert.Equal(t, StateActiveHover, b2.combined)
}

func TestHoverNeedsMouseModality(t *testing.T) {
	ctx := newTestContext(t)
	_, _, b2 := twoButtons(ctx)
	moveTo(ctx, center(b2))
	key(ctx, KeyF5)
	ctx.Update(0)
	assert.False(t, b2.Hover(), "the last event came from the keyboard")
}

func TestHoverSuppressedWhileButtonHeld(t *testing.T) {
	ctx := newTestContext(t)
	_, b1, b2 := twoButtons(ctx)
	mouseDown(ctx, center(b1))
	moveTo(ctx, center(b2))
	ctx.Update(0)
	assert.False(t, b2.Hover())
	assert.True(t, b1.InFocus())
}

func TestLookResolvedOncePerChange(t *testing.T) {
	ctx := newTestContext(t)
	_, b1, b2 := twoButtons(ctx)
	ctx.Update(0)
	n := b2.resolves
	ctx.Update(0.016)
	ctx.Update(0.016)
	assert.Equal(t, n, b2.resolves)

	b2.SetFocus()
	ctx.Update(0.016)
	assert.Equal(t, n+1, b2.resolves)
	assert.Equal(t, ctx.Theme().Look(KindButton, StateActiveFocused), b2.look.Target())
	assert.Equal(t, StateActive, b1.combined)
}

func TestSetThemeResolvesLooks(t *testing.T) {
	ctx := newTestContext(t)
	_, b1, _ := twoButtons(ctx)
	ctx.Update(1)

	th := DefaultTheme()
	th.TwitchTime = 0
	th.Default.NormalFocused.Body = ColorRed
	ctx.SetTheme(th)
	assert.Equal(t, ColorRed, b1.Look().Body)
}

func TestDeactivateDropsTokens(t *testing.T) {
	ctx := newTestContext(t)
	_, b1, _ := twoButtons(ctx)
	mouseDown(ctx, center(b1))
	require.Equal(t, b1.ID(), ctx.Events().MouseCapture())

	b1.Deactivate()
	assert.Zero(t, ctx.FocusedID())
	assert.Zero(t, ctx.Events().MouseCapture())
	assert.False(t, ctx.Events().RegisteredAnywhere(b1.ID()))
}

func TestDisableMovesFocus(t *testing.T) {
	ctx := newTestContext(t)
	_, b1, b2 := twoButtons(ctx)
	b1.SetSelected(true)
	b1.Disable()
	assert.True(t, b1.Disabled())
	assert.True(t, b2.InFocus())
	assert.False(t, b1.SetFocus())
	assert.Equal(t, StateDisabledSelected, b1.CombinedState())
}

func TestFocusProxy(t *testing.T) {
	ctx := newTestContext(t)
	_, b1, b2 := twoButtons(ctx)
	b2.SetFocusProxy(b1.ID())
	b2.ClearFocus()
	assert.Zero(t, ctx.FocusedID())
	assert.True(t, b2.SetFocus())
	assert.True(t, b1.InFocus())
	assert.True(t, b2.InFocus())
}

func TestRemove(t *testing.T) {
	ctx := newTestContext(t)
	d, b1, b2 := twoButtons(ctx)
	ctx.Remove(b1.ID())
	assert.Nil(t, ctx.Handler(b1.ID()))
	assert.Equal(t, []ID{b2.ID()}, d.Children())
	assert.False(t, ctx.Events().RegisteredAnywhere(b1.ID()))

	b3 := NewButton(ctx, "three", OnChange(func() {}))
	assert.Greater(t, b3.ID(), b2.ID(), "ids are not reused")
}

func TestRenderSkipsInactive(t *testing.T) {
	ctx := newTestContext(t)
	_, b1, _ := twoButtons(ctx)
	ctx.Update(1)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	ctx.Render(dl)
	full := len(dl.Prims)

	b1.Deactivate()
	dl.Clear()
	ctx.Render(dl)
	assert.Less(t, len(dl.Prims), full)
}
