package ui

import "fyne.io/fyne/v2"

// Window dimensions
const (
	WindowWidth  = 560
	WindowHeight = 640
)

// Split ratios
const (
	MainSplitRatio = 0.55 // 55% top (input + results), 45% bottom (tabs)
)

// DetailsView dimensions
const (
	DetailsViewMinWidth  = 200
	DetailsViewMinHeight = 120
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewDetailsViewMinSize returns the minimum size for the details view
func NewDetailsViewMinSize() fyne.Size {
	return fyne.NewSize(DetailsViewMinWidth, DetailsViewMinHeight)
}
