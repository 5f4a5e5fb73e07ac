package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"baseconv-tool/internal/export"
	"baseconv-tool/internal/format"
	"baseconv-tool/internal/model"
)

// Controls manages the action buttons, the status line, and the wiring from
// button taps to the conversion pipeline. Errors leave the previous result
// and history untouched.
type Controls struct {
	inputForm   *InputForm
	resultView  *ResultView
	detailsView *DetailsView
	historyView *HistoryView

	convertBtn  *StyledButton
	swapBtn     *widget.Button
	clearBtn    *widget.Button
	copyBtn     *widget.Button
	exportBtn   *widget.Button
	themeSelect *widget.Select
	status      *widget.Label

	last      *model.Conversion
	container *fyne.Container
}

// NewControls creates the control buttons wired to the given views.
func NewControls(f *InputForm, rv *ResultView, dv *DetailsView, hv *HistoryView) *Controls {
	c := &Controls{
		inputForm:   f,
		resultView:  rv,
		detailsView: dv,
		historyView: hv,
	}

	accent := color.NRGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	c.convertBtn = NewStyledButton("Convert", c.onConvert, accent, color.White)
	c.swapBtn = widget.NewButton("Swap", c.onSwap)
	c.clearBtn = widget.NewButton("Clear", c.onClear)
	c.copyBtn = widget.NewButton("Copy", c.onCopy)
	c.exportBtn = widget.NewButton("Export CSV", c.onExport)
	c.themeSelect = widget.NewSelect(ThemeNames(), func(name string) {
		SetTheme(fyne.CurrentApp(), name)
	})
	c.themeSelect.SetSelected(CurrentThemeName(fyne.CurrentApp()))

	c.status = widget.NewLabel("Ready")
	c.status.Truncation = fyne.TextTruncateEllipsis

	f.SetOnSubmit(c.onConvert)

	c.container = container.NewVBox(
		container.NewHBox(c.convertBtn, c.swapBtn, c.clearBtn, c.copyBtn, c.exportBtn, c.themeSelect),
		c.status,
	)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

func (c *Controls) onConvert() {
	req := c.inputForm.request()

	if strings.TrimSpace(req.input) == "" {
		c.status.SetText("Error: no input provided")
		return
	}

	conv, err := model.Convert(req.input, req.from, req.auto, req.digits)
	if err != nil {
		c.status.SetText(fmt.Sprintf("Error: %v", err))
		return
	}

	// Reflect an auto-detected prefix in the From selector, as if the user
	// had picked the base explicitly.
	if conv.Detected {
		c.inputForm.SetFromBase(conv.FromBase)
	}

	c.last = &conv
	c.resultView.Show(&conv, req.prefix)
	c.detailsView.Show(&conv, req.prefix)
	c.historyView.AddConversion(conv)
	c.status.SetText(format.HistoryLine(&conv, req.to))
}

// onSwap feeds the primary result back as input, exchanging the From and To
// bases, then converts again.
func (c *Controls) onSwap() {
	if c.last == nil {
		c.status.SetText("Nothing to swap yet.")
		return
	}

	req := c.inputForm.request()
	from := c.last.FromBase

	c.inputForm.SetNumeral(c.last.Result(req.to))
	c.inputForm.SetFromBase(req.to)
	c.inputForm.SetToBase(from)
	c.onConvert()
}

func (c *Controls) onClear() {
	c.last = nil
	c.inputForm.SetNumeral("")
	c.resultView.Clear()
	c.detailsView.Clear()
	c.status.SetText("Cleared")
}

func (c *Controls) onCopy() {
	if c.last == nil {
		c.status.SetText("Nothing to copy yet.")
		return
	}

	req := c.inputForm.request()
	text := c.last.Result(req.to)
	if req.prefix {
		text = format.WithPrefix(text, req.to)
	}

	fyne.CurrentApp().Clipboard().SetContent(text)
	c.status.SetText(fmt.Sprintf("Copied %s to clipboard", text))
}

func (c *Controls) onExport() {
	conversions := c.historyView.Conversions()
	if len(conversions) == 0 {
		c.status.SetText("No conversions to export.")
		return
	}

	win := fyne.CurrentApp().Driver().AllWindows()
	if len(win) == 0 {
		return
	}

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if exportErr := export.WriteCSV(path, conversions); exportErr != nil {
			c.status.SetText(fmt.Sprintf("CSV export error: %v", exportErr))
			return
		}

		txtPath := strings.TrimSuffix(path, ".csv") + ".txt"
		if exportErr := export.WriteTXT(txtPath, conversions); exportErr != nil {
			c.status.SetText(fmt.Sprintf("TXT export error: %v", exportErr))
			return
		}

		c.status.SetText(fmt.Sprintf("Exported %d conversions to %s", len(conversions), path))
	}, win[0])
}
