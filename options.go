package ui

// Option configures a widget at construction.
type Option func(*options)

// options holds widget configuration keyed by option name.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
// Example:
//
//	var OptTint = ui.NewOptKey("tint", ui.ColorWhite)
//
//	b := ui.NewButton(ctx, "Apply", ui.WithOpt(OptTint, ui.ColorRed))
//	tint := ui.ApplyAndGet(opts, OptTint)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// Default returns the value GetOpt yields when the option is unset.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt returns the option value, or the key default when unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt reports whether the option was set explicitly.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.extensions[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies opts and returns a single value. Widgets defined
// outside this package use it to read their own keys.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// RangeValue holds the bounds of a slider.
type RangeValue struct {
	Min, Max float32
}

// Common widget options.
var (
	OptID        = NewOptKey("id", "")
	OptData      = NewOptKey[any]("data", nil)
	OptRect      = NewOptKey("rect", Rect{})
	OptHoverable = NewOptKey("hoverable", true)
	OptFocusable = NewOptKey("focusable", true)
	OptOnChange  = NewOptKey[func()]("onChange", nil)
)

// Button options.
var (
	OptLatchable   = NewOptKey("latchable", false)
	OptTargetScene = NewOptKey("targetScene", "")
	OptTransition  = NewOptKey("transition", TransitionCut)
	OptKillParent  = NewOptKey("killParent", false)
	OptHelp        = NewOptKey[func()]("help", nil)
)

// Label options.
var OptWrap = NewOptKey("wrap", false)

// Slider, check box and text box options.
var (
	OptRange     = NewOptKey("range", RangeValue{Min: 0, Max: 1})
	OptIncrement = NewOptKey[float32]("increment", 0)
	OptValue     = NewOptKey[float32]("value", 0)
	OptChecked   = NewOptKey("checked", false)
	OptText      = NewOptKey("text", "")
	OptMaxLength = NewOptKey("maxLength", 0)
	OptNumeric   = NewOptKey("numeric", false)
	OptMasked    = NewOptKey("masked", false)
	OptHint      = NewOptKey("hint", "")
)

// Dialog options.
var (
	OptModal                 = NewOptKey("modal", false)
	OptDismissOnClickOutside = NewOptKey("dismissOnClickOutside", false)
	OptOnCancel              = NewOptKey[func()]("onCancel", nil)
	OptOnDeactivate          = NewOptKey[func()]("onDeactivate", nil)
)

// WithID sets a debug name for the widget.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithData attaches a user value, such as the colour of a swatch.
func WithData(v any) Option { return WithOpt(OptData, v) }

// WithRect sets the rectangle relative to the parent.
func WithRect(r Rect) Option { return WithOpt(OptRect, r) }

// At is WithRect for x, y, w, h.
func At(x, y, w, h float32) Option { return WithOpt(OptRect, Rect{X: x, Y: y, W: w, H: h}) }

// NotHoverable turns hover tracking off.
func NotHoverable() Option { return WithOpt(OptHoverable, false) }

// NotFocusable opts the widget out of focus.
func NotFocusable() Option { return WithOpt(OptFocusable, false) }

// OnChange sets the change callback.
func OnChange(fn func()) Option { return WithOpt(OptOnChange, fn) }

// Latchable keeps a button selected after release until ForceOff.
func Latchable() Option { return WithOpt(OptLatchable, true) }

// TargetScene makes a button without a callback switch to scene name.
func TargetScene(name string, t Transition) Option {
	return func(o *options) {
		WithOpt(OptTargetScene, name)(o)
		WithOpt(OptTransition, t)(o)
	}
}

// KillParentOnSelect closes the button's dialog before its action runs.
func KillParentOnSelect() Option { return WithOpt(OptKillParent, true) }

// Wrapped makes a label break its text onto more lines instead of
// cutting it short.
func Wrapped() Option { return WithOpt(OptWrap, true) }

// WithHelp adds a help action to a LabelHelp composite.
func WithHelp(fn func()) Option { return WithOpt(OptHelp, fn) }

// WithRange sets slider bounds.
func WithRange(minVal, maxVal float32) Option {
	return WithOpt(OptRange, RangeValue{Min: minVal, Max: maxVal})
}

// WithIncrement sets the slider step; 0 means continuous.
func WithIncrement(inc float32) Option { return WithOpt(OptIncrement, inc) }

// WithValue sets the initial slider value.
func WithValue(v float32) Option { return WithOpt(OptValue, v) }

// WithChecked sets the initial check box state.
func WithChecked(v bool) Option { return WithOpt(OptChecked, v) }

// WithText sets the initial text box contents.
func WithText(s string) Option { return WithOpt(OptText, s) }

// WithMaxLength limits text box contents to n runes.
func WithMaxLength(n int) Option { return WithOpt(OptMaxLength, n) }

// NumbersOnly restricts a text box to digits.
func NumbersOnly() Option { return WithOpt(OptNumeric, true) }

// Masked draws a text box's contents as asterisks.
func Masked() Option { return WithOpt(OptMasked, true) }

// WithHint sets the greyed text an empty text box shows.
func WithHint(s string) Option { return WithOpt(OptHint, s) }

// Modal gives the dialog its own registration scope and blocks hits to
// dialogs beneath it.
func Modal() Option { return WithOpt(OptModal, true) }

// DismissOnClickOutside closes a popup on a press no child handled.
func DismissOnClickOutside() Option { return WithOpt(OptDismissOnClickOutside, true) }

// OnCancel is called for Escape or gamepad B.
func OnCancel(fn func()) Option { return WithOpt(OptOnCancel, fn) }

// OnDeactivate is called after the dialog is torn down.
func OnDeactivate(fn func()) Option { return WithOpt(OptOnDeactivate, fn) }
