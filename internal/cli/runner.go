package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"baseconv-tool/internal/export"
	"baseconv-tool/internal/format"
	"baseconv-tool/internal/model"
	"baseconv-tool/internal/radix"
)

// RunnerConfig holds all CLI options for a conversion.
type RunnerConfig struct {
	Input      string
	FromBase   string // base selector or "auto"
	FracDigits int
	ShowPrefix bool

	// Output
	OutputCSV string
	Verbose   bool
}

// Convert runs a single conversion from the parsed flags and optionally
// appends it to a CSV file.
func Convert(cfg RunnerConfig) (*model.Conversion, error) {
	auto := cfg.FromBase == "" || strings.EqualFold(cfg.FromBase, "auto")

	var from radix.Base
	if !auto {
		var err error
		from, err = radix.ParseBase(cfg.FromBase)
		if err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
	}

	if cfg.FracDigits < 0 || cfg.FracDigits > radix.MaxFracDigits {
		return nil, fmt.Errorf("invalid config: fractional digits must be between 0 and %d, got %d",
			radix.MaxFracDigits, cfg.FracDigits)
	}

	if cfg.Verbose {
		fmt.Printf("Converting %q (source base: %s)\n", cfg.Input, cfg.FromBase)
	}

	c, err := model.Convert(cfg.Input, from, auto, cfg.FracDigits)
	if err != nil {
		return nil, err
	}

	if cfg.OutputCSV != "" {
		path := cfg.OutputCSV
		// A directory target gets a date-stamped file inside it.
		if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			path = export.BuildPath(filepath.Join(path, "conversions"), "", ".csv", c.Timestamp)
		}
		if err := export.EnsureDir(path); err != nil {
			return &c, fmt.Errorf("save CSV: %w", err)
		}
		if err := export.WriteCSV(path, []model.Conversion{c}); err != nil {
			return &c, fmt.Errorf("save CSV: %w", err)
		}
		if cfg.Verbose {
			fmt.Printf("Conversion saved to: %s\n", path)
		}
	}

	return &c, nil
}

// PrintConversion formats and prints a conversion result.
func PrintConversion(c *model.Conversion, withPrefix bool) {
	fmt.Println(format.FormatConversion(c, withPrefix))
}
