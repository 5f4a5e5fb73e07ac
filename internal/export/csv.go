package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"baseconv-tool/internal/model"
)

var csvHeaders = []string{
	"date",
	"time",
	"input",
	"from_base",
	"detected",
	"frac_digits",
	"binary",
	"octal",
	"decimal",
	"hexadecimal",
	"error",
}

// WriteCSV writes conversions to a CSV file (semicolon-separated), creating
// it with headers if it doesn't exist, or appending rows if it does.
func WriteCSV(path string, conversions []model.Conversion) error {
	exists := fileExists(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	defer w.Flush()

	if !exists {
		if err := w.Write(csvHeaders); err != nil {
			return fmt.Errorf("write csv headers: %w", err)
		}
	}

	for _, c := range conversions {
		detected := "0"
		if c.Detected {
			detected = "1"
		}

		row := []string{
			c.Timestamp.Format("02.01.2006"),
			c.Timestamp.Format("15:04:05"),
			c.Input,
			c.FromBase.String(),
			detected,
			strconv.Itoa(c.FracDigits),
			c.Binary,
			c.Octal,
			c.Decimal,
			c.Hexadecimal,
			c.Error,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	return nil
}
