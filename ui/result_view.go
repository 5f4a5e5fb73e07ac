package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"baseconv-tool/internal/format"
	"baseconv-tool/internal/model"
	"baseconv-tool/internal/radix"
)

// ResultView shows the current conversion in all four bases, one read-only
// field per base.
type ResultView struct {
	entries map[radix.Base]*readOnlyEntry
	box     *fyne.Container
}

// NewResultView creates the four per-base result fields.
func NewResultView() *ResultView {
	rv := &ResultView{entries: make(map[radix.Base]*readOnlyEntry)}

	form := widget.NewForm()
	for _, b := range radix.Bases() {
		entry := newReadOnlyEntry(false)
		rv.entries[b] = entry
		form.Append(b.String(), entry)
	}

	rv.box = container.NewVBox(form)
	return rv
}

// Container returns the result view's container.
func (rv *ResultView) Container() *fyne.Container {
	return rv.box
}

// Show fills the fields from a conversion.
func (rv *ResultView) Show(c *model.Conversion, withPrefix bool) {
	for b, entry := range rv.entries {
		text := c.Result(b)
		if withPrefix {
			text = format.WithPrefix(text, b)
		}
		entry.SetText(text)
	}
}

// Clear empties all result fields.
func (rv *ResultView) Clear() {
	for _, entry := range rv.entries {
		entry.SetText("")
	}
}
