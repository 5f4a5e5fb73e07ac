package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"baseconv-tool/internal/export"
	"baseconv-tool/internal/radix"
)

func TestConvertExplicitBase(t *testing.T) {
	cfg := RunnerConfig{
		Input:      "1010",
		FromBase:   "2",
		FracDigits: 10,
	}

	c, err := Convert(cfg)
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	if c.Decimal != "10" {
		t.Errorf("Decimal = %q, want 10", c.Decimal)
	}
	if c.Hexadecimal != "A" {
		t.Errorf("Hexadecimal = %q, want A", c.Hexadecimal)
	}
}

func TestConvertAutoDetect(t *testing.T) {
	cfg := RunnerConfig{
		Input:      "0xFF",
		FromBase:   "auto",
		FracDigits: 10,
	}

	c, err := Convert(cfg)
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	if c.FromBase != radix.Hexadecimal {
		t.Errorf("FromBase = %v, want Hexadecimal", c.FromBase)
	}
	if c.Decimal != "255" {
		t.Errorf("Decimal = %q, want 255", c.Decimal)
	}
}

func TestConvertInvalidBase(t *testing.T) {
	cfg := RunnerConfig{
		Input:    "42",
		FromBase: "7",
	}

	if _, err := Convert(cfg); err == nil {
		t.Error("Convert() with base 7 should fail")
	}
}

func TestConvertInvalidDigits(t *testing.T) {
	cfg := RunnerConfig{
		Input:      "42",
		FromBase:   "10",
		FracDigits: radix.MaxFracDigits + 1,
	}

	_, err := Convert(cfg)
	if err == nil || !strings.Contains(err.Error(), "fractional digits") {
		t.Errorf("Convert() error = %v, want fractional digits bound error", err)
	}
}

func TestConvertParseError(t *testing.T) {
	cfg := RunnerConfig{
		Input:      "102",
		FromBase:   "2",
		FracDigits: 10,
	}

	_, err := Convert(cfg)
	var digitErr *radix.InvalidDigitError
	if !errors.As(err, &digitErr) {
		t.Errorf("Convert() error = %v, want *InvalidDigitError", err)
	}
}

func TestConvertWritesCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "conversions.csv")

	cfg := RunnerConfig{
		Input:      "-42",
		FromBase:   "10",
		FracDigits: 10,
		OutputCSV:  path,
	}

	if _, err := Convert(cfg); err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("CSV was not written: %v", err)
	}
	if !strings.Contains(string(data), "-2A") {
		t.Errorf("CSV missing hex result, got:\n%s", data)
	}
}

func TestConvertCSVDirectoryTarget(t *testing.T) {
	dir := t.TempDir()

	cfg := RunnerConfig{
		Input:      "255",
		FromBase:   "10",
		FracDigits: 10,
		OutputCSV:  dir,
	}

	c, err := Convert(cfg)
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	path := export.BuildPath(filepath.Join(dir, "conversions"), "", ".csv", c.Timestamp)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("dated CSV was not written: %v", err)
	}
	if !strings.Contains(string(data), "FF") {
		t.Errorf("CSV missing hex result, got:\n%s", data)
	}
}
