package cli

import (
	"os"
	"testing"

	"baseconv-tool/internal/radix"
)

func TestParseFlags_NoArgs(t *testing.T) {
	// Save original args
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	// Simulate no arguments
	os.Args = []string{"baseconv-tool"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Errorf("ParseFlags() error = %v, want nil", err)
	}
	if cfg != nil {
		t.Errorf("ParseFlags() with no args should return nil config for GUI mode, got %v", cfg)
	}
}

func TestParseFlags_HelpFlag(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"baseconv-tool", "--help"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Errorf("ParseFlags() error = %v, want nil", err)
	}
	if cfg != nil {
		t.Errorf("ParseFlags() with --help should return nil config, got %v", cfg)
	}
}

func TestParseFlags_Conversion(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"baseconv-tool", "-n", "1010.101", "-f", "2", "-d", "4", "-prefix"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags() error = %v, want nil", err)
	}
	if cfg == nil {
		t.Fatal("ParseFlags() returned nil, want config")
	}

	if cfg.Input != "1010.101" {
		t.Errorf("Input = %q, want 1010.101", cfg.Input)
	}
	if cfg.FromBase != "2" {
		t.Errorf("FromBase = %q, want 2", cfg.FromBase)
	}
	if cfg.FracDigits != 4 {
		t.Errorf("FracDigits = %d, want 4", cfg.FracDigits)
	}
	if !cfg.ShowPrefix {
		t.Error("ShowPrefix should be true")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"baseconv-tool", "-n", "0xFF"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if cfg.FromBase != "auto" {
		t.Errorf("FromBase = %q, want auto", cfg.FromBase)
	}
	if cfg.FracDigits != radix.MaxFracDigits {
		t.Errorf("FracDigits = %d, want %d", cfg.FracDigits, radix.MaxFracDigits)
	}
	if cfg.ShowPrefix {
		t.Error("ShowPrefix should default to false")
	}
}

func TestParseFlags_PositionalNumeral(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"baseconv-tool", "0xFF"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if cfg.Input != "0xFF" {
		t.Errorf("Input = %q, want 0xFF", cfg.Input)
	}
}

func TestParseFlags_Output(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"baseconv-tool", "-n", "42", "-o", "out.csv", "-v"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if cfg.OutputCSV != "out.csv" {
		t.Errorf("OutputCSV = %q, want out.csv", cfg.OutputCSV)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
}
