package cli

import (
	"flag"
	"fmt"
	"os"

	"baseconv-tool/internal/radix"
)

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config and prints help if no arguments or --help is provided.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{
		FromBase:   "auto",
		FracDigits: radix.MaxFracDigits,
	}

	fs := flag.NewFlagSet("baseconv-tool", flag.ContinueOnError)

	fs.StringVar(&cfg.Input, "n", "", "Numeral to convert (0b/0o/0x prefix honoured)")
	fs.StringVar(&cfg.Input, "number", "", "Numeral to convert (0b/0o/0x prefix honoured)")
	fs.StringVar(&cfg.FromBase, "f", cfg.FromBase, "Source base: 2, 8, 10, 16 or auto")
	fs.StringVar(&cfg.FromBase, "from", cfg.FromBase, "Source base: 2, 8, 10, 16 or auto")
	fs.IntVar(&cfg.FracDigits, "d", cfg.FracDigits, "Fractional digits to emit (0-10)")
	fs.IntVar(&cfg.FracDigits, "digits", cfg.FracDigits, "Fractional digits to emit (0-10)")
	fs.BoolVar(&cfg.ShowPrefix, "prefix", false, "Attach 0b/0o/0x prefixes to results")

	fs.StringVar(&cfg.OutputCSV, "o", "", "Append the conversion to a CSV file")
	fs.StringVar(&cfg.OutputCSV, "output", "", "Append the conversion to a CSV file")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	// A bare positional numeral works too: baseconv-tool 0xFF
	if cfg.Input == "" && fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}

	if cfg.Input == "" {
		fmt.Fprintf(os.Stderr, "Error: must provide -n <numeral> to convert\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing required flags")
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Number Base Converter

Usage: baseconv-tool [flags] [numeral]
       baseconv-tool help    (show this message)

CONVERSION:
  -n, -number <numeral>    Numeral to convert (required; 0b/0o/0x prefix honoured)
  -f, -from <base>         Source base: 2, 8, 10, 16 or auto (default: auto)
  -d, -digits <num>        Fractional digits to emit, 0-10 (default: 10)
  -prefix                  Attach 0b/0o/0x prefixes to results

OUTPUT:
  -o, -output <file>       Append the conversion to a CSV file
  -v, -verbose             Verbose output

EXAMPLES:
  # Convert a prefixed hex numeral to all bases
  baseconv-tool 0xFF

  # Convert a binary fraction, explicit source base
  baseconv-tool -n 1010.101 -f 2

  # Decimal 0.1 in all bases, 8 fractional digits, prefixed
  baseconv-tool -n 0.1 -d 8 -prefix

  # Log the conversion to a CSV file
  baseconv-tool -n -42 -o conversions.csv

Run without flags to start the GUI.

`)
}
