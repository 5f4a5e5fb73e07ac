package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"baseconv-tool/internal/model"
	"baseconv-tool/internal/radix"
)

var historyColumns = []string{"Time", "Input", "Base", "Binary", "Octal", "Decimal", "Hex"}

// HistoryView displays a table of past conversions. The list lives in
// memory only and is discarded when the window closes.
type HistoryView struct {
	mu          sync.Mutex
	conversions []model.Conversion
	table       *widget.Table
}

// NewHistoryView creates a new history table view.
func NewHistoryView() *HistoryView {
	hv := &HistoryView{}

	hv.table = widget.NewTable(
		hv.tableSize,
		hv.createCell,
		hv.updateCell,
	)

	hv.table.SetColumnWidth(0, 90)  // Time
	hv.table.SetColumnWidth(1, 120) // Input
	hv.table.SetColumnWidth(2, 110) // Base
	hv.table.SetColumnWidth(3, 150) // Binary
	hv.table.SetColumnWidth(4, 90)  // Octal
	hv.table.SetColumnWidth(5, 100) // Decimal
	hv.table.SetColumnWidth(6, 110) // Hex

	return hv
}

// Container returns the table widget.
func (hv *HistoryView) Container() *widget.Table {
	return hv.table
}

// AddConversion appends a conversion to the history.
func (hv *HistoryView) AddConversion(c model.Conversion) {
	hv.mu.Lock()
	hv.conversions = append(hv.conversions, c)
	hv.mu.Unlock()
	hv.table.Refresh()
}

// Conversions returns a copy of all stored conversions.
func (hv *HistoryView) Conversions() []model.Conversion {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	out := make([]model.Conversion, len(hv.conversions))
	copy(out, hv.conversions)
	return out
}

func (hv *HistoryView) tableSize() (rows int, cols int) {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	return len(hv.conversions) + 1, len(historyColumns) // +1 for header
}

func (hv *HistoryView) createCell() fyne.CanvasObject {
	return widget.NewLabel("")
}

func (hv *HistoryView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)

	if id.Row == 0 {
		label.SetText(historyColumns[id.Col])
		label.TextStyle = fyne.TextStyle{Bold: true}
		return
	}

	hv.mu.Lock()
	defer hv.mu.Unlock()

	idx := id.Row - 1
	if idx >= len(hv.conversions) {
		label.SetText("")
		return
	}

	c := hv.conversions[idx]
	label.TextStyle = fyne.TextStyle{}

	switch id.Col {
	case 0:
		label.SetText(c.Timestamp.Format("15:04:05"))
	case 1:
		label.SetText(c.Input)
	case 2:
		label.SetText(c.FromBase.String())
	case 3:
		label.SetText(c.Result(radix.Binary))
	case 4:
		label.SetText(c.Result(radix.Octal))
	case 5:
		label.SetText(c.Result(radix.Decimal))
	case 6:
		label.SetText(c.Result(radix.Hexadecimal))
	}
}
