package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helpRows shows two check box rows stacked at the top of a dialog.
// Each row is 320x40: check box at (8,8,48,24), label from x=72, help
// button at (288,8,24,24).
func helpRows(t *testing.T) (*Context, [2]*LabelHelp, [2]*CheckBox, *int) {
	t.Helper()
	ctx := newTestContext(t)
	help, n := counter()
	var rows [2]*LabelHelp
	var boxes [2]*CheckBox
	set := NewWidgetSet(ctx)
	for i := range rows {
		boxes[i] = NewCheckBox(ctx, "")
		rows[i] = NewLabelHelp(ctx, boxes[i], "Show grid", WithHelp(help))
		set.Add(rows[i])
	}
	newTestDialog(ctx, set)
	return ctx, rows, boxes, n
}

func TestLabelHelpGeometry(t *testing.T) {
	_, rows, boxes, _ := helpRows(t)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 320, H: 40}, rows[0].Rect())
	assert.Equal(t, Rect{X: 0, Y: 40, W: 320, H: 40}, rows[1].Rect())
	assert.Equal(t, Rect{X: 8, Y: 8, W: 48, H: 24}, boxes[0].Rect())
	assert.Equal(t, float32(72), rows[0].Label().Rect().X)
	assert.Equal(t, Rect{X: 288, Y: 8, W: 24, H: 24}, rows[0].HelpButton().Rect())
}

func TestLabelHelpIsOneTabStop(t *testing.T) {
	ctx, rows, boxes, _ := helpRows(t)
	d := rows[0].ParentDialog()
	assert.Equal(t, []ID{rows[0].ID(), rows[1].ID()}, d.TabList())
	assert.True(t, boxes[0].InFocus())
	assert.True(t, rows[0].InFocus())
	assert.Equal(t, boxes[0].Base(), rows[0].FocusWidget())

	key(ctx, KeyTab)
	assert.True(t, boxes[1].InFocus())
	assert.Nil(t, rows[0].FocusWidget())
}

func TestLabelHelpKeys(t *testing.T) {
	ctx, _, boxes, n := helpRows(t)
	assert.True(t, key(ctx, KeyEnter))
	assert.True(t, boxes[0].Checked())

	assert.True(t, key(ctx, KeyF1))
	assert.Equal(t, 1, *n)
	assert.False(t, boxes[1].Checked())
}

func TestLabelHelpPad(t *testing.T) {
	ctx, _, boxes, n := helpRows(t)
	pad := NewGamePad()
	assert.True(t, padPress(ctx, pad, PadY))
	assert.Equal(t, 1, *n)
	assert.True(t, padPress(ctx, pad, PadA))
	assert.True(t, boxes[0].Checked())
}

func TestLabelHelpPressOnLabelRunsPrimary(t *testing.T) {
	ctx, rows, boxes, _ := helpRows(t)
	p := center(rows[1].Label())
	require.Equal(t, rows[1].ID(), ctx.HitTest(p), "the row is hit over its label")

	assert.True(t, mouseDown(ctx, p))
	assert.True(t, boxes[1].Checked())
	assert.True(t, boxes[1].InFocus())
	mouseUp(ctx, p)

	click(ctx, center(boxes[1]))
	assert.False(t, boxes[1].Checked(), "the primary handles presses on itself once")
}

func TestLabelHelpHelpButton(t *testing.T) {
	ctx, rows, boxes, n := helpRows(t)
	click(ctx, center(rows[0].HelpButton()))
	assert.Equal(t, 1, *n)
	assert.False(t, boxes[0].Checked())

	tap(ctx, center(rows[1].HelpButton()))
	assert.Equal(t, 2, *n)
	assert.False(t, boxes[1].Checked())
}

func TestLabelHelpTap(t *testing.T) {
	ctx, rows, boxes, _ := helpRows(t)
	assert.True(t, tap(ctx, center(rows[1].Label())))
	assert.True(t, boxes[1].Checked())
	assert.True(t, boxes[1].InFocus())
}

func TestLabelHelpHoverFocusesPrimary(t *testing.T) {
	ctx, rows, boxes, _ := helpRows(t)
	moveTo(ctx, center(rows[1].Label()))
	ctx.Update(0)
	assert.True(t, rows[1].Hover())
	assert.True(t, boxes[1].InFocus())
}

func TestLabelHelpWithoutHelp(t *testing.T) {
	ctx := newTestContext(t)
	changed, n := counter()
	s := NewSlider(ctx, "", At(0, 0, 120, 20), WithRange(0, 1), WithIncrement(0.1))
	row := NewLabelHelp(ctx, s, "Volume", At(0, 0, 400, 0))
	row.SetOnChange(changed)
	newTestDialog(ctx, row)

	assert.Nil(t, row.HelpButton())
	assert.False(t, row.Help())
	assert.False(t, key(ctx, KeyF1))
	assert.Equal(t, Rect{X: 8, Y: 8, W: 120, H: 24}, s.Rect())
	assert.Equal(t, float32(400), row.Rect().W)

	key(ctx, KeyRight)
	assert.InDelta(t, 0.1, s.Value(), 1e-6)
	assert.Equal(t, 1, *n)
	assert.Equal(t, s, row.Primary())
}

func TestLabelHelpDrawsFocusRing(t *testing.T) {
	ctx, rows, _, _ := helpRows(t)
	ctx.Update(1)
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	ctx.Render(dl)

	ring := Rect{X: -2, Y: -2, W: 324, H: 44}
	var found bool
	for _, p := range dl.Prims {
		if p.Kind == PrimFill && p.Rect == ring && p.Color == ctx.Theme().FocusColor {
			found = true
		}
	}
	assert.True(t, found)
	assert.True(t, rows[0].InFocus())
}
