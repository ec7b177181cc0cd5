/*
Package ui is a retained-mode widget kernel for in-game configuration
dialogs, designed as idiomatic Go with a dedicated Context type.

# Overview

Widgets are built once and kept. A Dialog owns a tree of widgets; the
DialogManager stacks dialogs and activates them. Active widgets register
for the input categories they care about with the Context's
EventManager, which routes each event to the capture holder, the focused
widget, the widget under the pointer and then the registered widgets, in
that order, until one consumes it.

Each widget carries a combined state (inactive, disabled or active, plus
selected, focused and hovered). The theme maps kind and state to a Look,
and looks are eased over TwitchTime so state changes animate.

All state lives in an explicit Context; nothing is global except the log
level. Everything runs on the frame loop's goroutine.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1920, 1080)
	g := ui.New(renderer, ui.WithConfig(cfg))
	defer g.Close()
	input := opengl.NewGLFWInputAdapter(window, g.Queue(), g.Pad())

	// Build once
	ctx := g.Context()
	d := ui.NewDialog(ctx, ui.At(40, 40, 300, 120))
	d.AddChild(ui.NewButton(ctx, "Play", ui.At(12, 12, 120, 28), ui.OnChange(play)))
	ctx.Dialogs().Show(d)

	// Game loop
	for !window.ShouldClose() {
	    input.Poll()
	    g.Begin(deltaTime)
	    if err := g.End(); err != nil {
	        return err
	    }
	    window.SwapBuffers()
	}

# Keyboard Shortcuts Reference

## Dialogs

	Tab              Focus the next widget in the tab list
	Shift+Tab        Focus the previous widget
	Arrow keys       Move focus to the nearest widget in that direction
	Escape           Run the dialog's OnCancel, if it has one
	Ctrl+Tab         Hand focus to the next dialog
	Ctrl+Shift+Tab   Hand focus to the previous dialog

## Buttons, Check Boxes and Radio Buttons

	Enter            Activate
	F1               Run the help action of a label+help row

## Sliders

	Left, Right      Step by one increment
	Home, End        Jump to the minimum or maximum

## TextBox

Navigation:

	Left, Right      Move the cursor one character
	Ctrl+Left/Right  Move the cursor one word
	Home, End        Jump to the start or end

Selection and clipboard:

	Shift+movement   Extend the selection
	Ctrl+A           Select all
	Ctrl+C, Ctrl+X   Copy or cut the selection
	Ctrl+V           Paste

Editing:

	Ctrl+Z           Undo
	Ctrl+Y           Redo
	Ctrl+Shift+Z     Redo
	Enter            Commit; a second Enter selects everything
	Escape           Revert to the committed text

# Gamepad

The d-pad moves focus like the arrow keys and auto-repeats after
PadRepeatDelay. A activates, B (or Back) cancels the dialog and Y runs
help.

# Theming

Themes are TOML files decoded over DefaultTheme, so a file only names
what it changes:

	name = "crimson"
	twitch_time = 0.2
	twitch_shape = "overshoot-out"

	[kinds.button.normal_focused]
	body = "#b02020ff"

Set Config.WatchTheme to reload the file while the game runs.

# Debug Builds

Build with -tags koixdebug to turn contract violations, such as adding a
widget to two parents, into panics.
*/
package ui
