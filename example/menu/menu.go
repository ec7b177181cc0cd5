// Package menu builds the settings menu both example programs show.
package menu

import (
	"fmt"

	ui "github.com/go-theft-auto/koixui"
)

// Settings holds what the menu edits.
type Settings struct {
	ShowGrid   bool
	Volume     float32
	Difficulty string
	Name       string
}

// Menu is the settings dialog plus the quit confirmation.
type Menu struct {
	Dialog   *ui.Dialog
	Settings Settings

	ctx     *ui.Context
	confirm *ui.Dialog
	status  *ui.Label
	quit    func()
}

// New builds the menu and shows it. quit runs when the user confirms
// leaving.
func New(ctx *ui.Context, quit func()) *Menu {
	m := &Menu{ctx: ctx, quit: quit, Settings: Settings{Volume: 0.5, Difficulty: "Normal"}}
	m.Dialog = ui.NewDialog(ctx, ui.WithID("settings"), ui.At(40, 40, 360, 0))

	rows := ui.NewWidgetSet(ctx, ui.StackWith(ui.Layout{Type: ui.LayoutVertical, Gap: 4, Padding: 8}))

	grid := ui.NewCheckBox(ctx, "grid", ui.WithChecked(m.Settings.ShowGrid))
	grid.SetOnChange(func() {
		m.Settings.ShowGrid = grid.Checked()
		m.report("grid %v", m.Settings.ShowGrid)
	})
	rows.Add(ui.NewLabelHelp(ctx, grid, "Show grid", ui.WithHelp(func() {
		m.report("draws a grid over the map")
	})))

	volume := ui.NewSlider(ctx, "volume", ui.WithRange(0, 1), ui.WithIncrement(0.05),
		ui.WithValue(m.Settings.Volume), ui.At(0, 0, 96, 0))
	volume.SetDecimals(2)
	volume.SetOnChange(func() {
		m.Settings.Volume = volume.Value()
		m.report("volume %s", volume.ValueString())
	})
	rows.Add(ui.NewLabelHelp(ctx, volume, "Volume"))

	levels := ui.NewRadioGroup(ctx, func(h ui.Handler) {
		m.Settings.Difficulty = h.(*ui.RadioButton).Label()
		m.report("difficulty %s", m.Settings.Difficulty)
	})
	for _, name := range []string{"Easy", "Normal", "Hard"} {
		rb := ui.NewRadioButton(ctx, levels, name, ui.WithChecked(name == m.Settings.Difficulty))
		rows.Add(ui.NewLabelHelp(ctx, rb, name))
	}

	name := ui.NewTextBox(ctx, ui.WithHint("player name"), ui.WithMaxLength(16), ui.At(0, 0, 160, 24))
	name.SetOnChange(func() {
		m.Settings.Name = name.Committed()
		m.report("name %q", m.Settings.Name)
	})
	rows.Add(name)

	quitButton := ui.NewButton(ctx, "Quit", ui.At(0, 0, 96, 24), ui.OnChange(m.askQuit))
	rows.Add(quitButton)

	m.status = ui.NewLabel(ctx, "", ui.At(0, 0, 320, 16))
	rows.Add(m.status)

	m.Dialog.AddChild(rows)
	m.Dialog.SetRect(ui.Rect{X: 40, Y: 40, W: rows.Rect().W, H: rows.Rect().H})
	ctx.Dialogs().Show(m.Dialog)
	return m
}

func (m *Menu) report(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	m.status.SetText(msg)
	m.ctx.Logger().Info("settings changed", "what", msg)
}

// askQuit shows a modal yes/no dialog over the menu.
func (m *Menu) askQuit() {
	if m.confirm != nil {
		return
	}
	d := ui.NewDialog(m.ctx, ui.WithID("confirm quit"), ui.Modal(), ui.At(80, 120, 240, 80),
		ui.OnCancel(m.closeConfirm),
		ui.OnDeactivate(func() { m.confirm = nil }))
	d.AddChild(ui.NewLabel(m.ctx, "Really quit?", ui.At(16, 12, 200, 16)))
	d.AddChild(ui.NewButton(m.ctx, "Yes", ui.At(16, 40, 96, 24), ui.OnChange(m.quit), ui.KillParentOnSelect()))
	d.AddChild(ui.NewButton(m.ctx, "No", ui.At(128, 40, 96, 24), ui.OnChange(m.closeConfirm)))
	m.confirm = d
	m.ctx.Dialogs().Show(d)
}

func (m *Menu) closeConfirm() {
	if m.confirm != nil {
		m.confirm.Kill()
	}
}
