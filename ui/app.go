package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App) fyne.Window {
	win, _ := buildMainWindow(app)
	return win
}

func buildMainWindow(app fyne.App) (fyne.Window, *Controls) {
	ApplyTheme(app)

	win := app.NewWindow("Number Base Converter")
	win.Resize(NewWindowSize())

	inputForm := NewInputForm()
	resultView := NewResultView()
	detailsView := NewDetailsView()
	historyView := NewHistoryView()
	controls := NewControls(inputForm, resultView, detailsView, historyView)

	prefs := app.Preferences()
	inputForm.LoadPreferences(prefs)

	top := container.NewVBox(
		inputForm.Container(),
		controls.Container(),
		resultView.Container(),
	)

	detailsTab := container.NewTabItem("Details", detailsView.Container())
	historyTab := container.NewTabItem("History", historyView.Container())
	tabs := container.NewAppTabs(detailsTab, historyTab)

	content := container.NewVSplit(top, tabs)
	content.SetOffset(MainSplitRatio)

	win.SetContent(content)

	// Escape clears everything, the counterpart to Enter-to-convert in the
	// numeral entry.
	win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			controls.onClear()
		}
	})

	win.SetCloseIntercept(func() {
		inputForm.SavePreferences(prefs)
		win.Close()
	})

	return win, controls
}
