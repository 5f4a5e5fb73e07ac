package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"baseconv-tool/internal/radix"
)

const autoDetectOption = "Auto-detect"

// convertRequest carries the form values for one conversion.
type convertRequest struct {
	input  string
	from   radix.Base // meaningful only when auto is false
	auto   bool
	to     radix.Base // primary target for copy/swap and the status line
	digits int
	prefix bool
}

// InputForm holds the GUI fields describing a conversion: the numeral, the
// source and primary target base, and the rendering options.
type InputForm struct {
	numeralEntry *widget.Entry
	fromSelect   *widget.Select
	toSelect     *widget.Select
	digitsSelect *widget.Select
	prefixCheck  *widget.Check
	form         *fyne.Container
}

// NewInputForm creates a new input form with default values.
func NewInputForm() *InputForm {
	f := &InputForm{}

	f.numeralEntry = widget.NewEntry()
	f.numeralEntry.SetPlaceHolder("0xFF, 0b101.1, -42.5 ...")
	f.numeralEntry.Validator = func(text string) error {
		base, auto := f.sourceBase()
		return validateNumeral(text, base, auto)
	}

	fromOpts := []string{autoDetectOption}
	toOpts := make([]string, 0, 4)
	for _, b := range radix.Bases() {
		fromOpts = append(fromOpts, b.String())
		toOpts = append(toOpts, b.String())
	}

	f.fromSelect = widget.NewSelect(fromOpts, nil)
	f.fromSelect.SetSelected(autoDetectOption)

	f.toSelect = widget.NewSelect(toOpts, nil)
	f.toSelect.SetSelected(radix.Binary.String())

	digitOpts := make([]string, radix.MaxFracDigits+1)
	for i := range digitOpts {
		digitOpts[i] = strconv.Itoa(i)
	}
	f.digitsSelect = widget.NewSelect(digitOpts, nil)
	f.digitsSelect.SetSelected(strconv.Itoa(radix.MaxFracDigits))

	f.prefixCheck = widget.NewCheck("Show 0b/0o/0x prefixes", nil)
	f.prefixCheck.SetChecked(true)

	f.form = container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Number", f.numeralEntry),
			widget.NewFormItem("From Base", f.fromSelect),
			widget.NewFormItem("To Base", f.toSelect),
			widget.NewFormItem("Frac. Digits", f.digitsSelect),
		),
		f.prefixCheck,
	)

	return f
}

// Container returns the form's Fyne container.
func (f *InputForm) Container() *fyne.Container {
	return f.form
}

// SetOnSubmit runs fn when Enter is pressed in the numeral entry.
func (f *InputForm) SetOnSubmit(fn func()) {
	f.numeralEntry.OnSubmitted = func(string) { fn() }
}

// SetNumeral replaces the numeral entry text.
func (f *InputForm) SetNumeral(s string) {
	f.numeralEntry.SetText(s)
}

// SetFromBase selects an explicit source base.
func (f *InputForm) SetFromBase(b radix.Base) {
	f.fromSelect.SetSelected(b.String())
}

// SetToBase selects the primary target base.
func (f *InputForm) SetToBase(b radix.Base) {
	f.toSelect.SetSelected(b.String())
}

// sourceBase resolves the From selector; auto is true for Auto-detect.
func (f *InputForm) sourceBase() (radix.Base, bool) {
	if f.fromSelect.Selected == autoDetectOption || f.fromSelect.Selected == "" {
		return radix.Decimal, true
	}
	base, err := radix.ParseBase(f.fromSelect.Selected)
	if err != nil {
		return radix.Decimal, true
	}
	return base, false
}

// targetBase resolves the To selector.
func (f *InputForm) targetBase() radix.Base {
	base, err := radix.ParseBase(f.toSelect.Selected)
	if err != nil {
		return radix.Binary
	}
	return base
}

// request builds a convertRequest from the current form values.
func (f *InputForm) request() convertRequest {
	from, auto := f.sourceBase()
	return convertRequest{
		input:  f.numeralEntry.Text,
		from:   from,
		auto:   auto,
		to:     f.targetBase(),
		digits: parseIntOrDefault(f.digitsSelect.Selected, radix.MaxFracDigits),
		prefix: f.prefixCheck.Checked,
	}
}

// LoadPreferences restores form values from persistent preferences.
func (f *InputForm) LoadPreferences(prefs fyne.Preferences) {
	if v := prefs.String("form.from_base"); v != "" {
		f.fromSelect.SetSelected(v)
	}
	if v := prefs.String("form.to_base"); v != "" {
		f.toSelect.SetSelected(v)
	}
	if v := prefs.String("form.frac_digits"); v != "" {
		f.digitsSelect.SetSelected(v)
	}
	f.prefixCheck.SetChecked(prefs.BoolWithFallback("form.show_prefix", true))
}

// SavePreferences persists form values to preferences.
func (f *InputForm) SavePreferences(prefs fyne.Preferences) {
	prefs.SetString("form.from_base", f.fromSelect.Selected)
	prefs.SetString("form.to_base", f.toSelect.Selected)
	prefs.SetString("form.frac_digits", f.digitsSelect.Selected)
	prefs.SetBool("form.show_prefix", f.prefixCheck.Checked)
}
