package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"baseconv-tool/internal/format"
	"baseconv-tool/internal/model"
)

// DetailsView displays the formatted block for the current conversion.
type DetailsView struct {
	text      *readOnlyEntry
	scrollBox *container.Scroll
}

// NewDetailsView creates a new scrollable details view.
func NewDetailsView() *DetailsView {
	dv := &DetailsView{}

	dv.text = newReadOnlyEntry(true)
	dv.text.Wrapping = fyne.TextWrapWord

	dv.scrollBox = container.NewVScroll(dv.text)
	dv.scrollBox.SetMinSize(NewDetailsViewMinSize())

	return dv
}

// Container returns the details view's container.
func (dv *DetailsView) Container() *container.Scroll {
	return dv.scrollBox
}

// Show renders a conversion into the view.
func (dv *DetailsView) Show(c *model.Conversion, withPrefix bool) {
	dv.text.SetText(format.FormatConversion(c, withPrefix))
}

// Clear empties the view.
func (dv *DetailsView) Clear() {
	dv.text.SetText("")
}
