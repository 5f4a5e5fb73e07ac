package model

import (
	"strings"
	"time"

	"baseconv-tool/internal/radix"
)

// Conversion holds one completed conversion attempt: the raw input, the
// source base, and the rendered result in all four bases. Records are
// immutable once created.
type Conversion struct {
	Timestamp  time.Time
	Input      string     // raw text as typed, prefix included
	FromBase   radix.Base // detected or selected source base
	Detected   bool       // FromBase came from a 0b/0o/0x prefix
	FracDigits int        // fractional digit budget used for rendering

	Binary      string
	Octal       string
	Decimal     string
	Hexadecimal string

	Error string // empty on success
}

// NewConversion renders v in all four bases and returns the record.
func NewConversion(input string, from radix.Base, detected bool, v radix.Value, fracDigits int) Conversion {
	return Conversion{
		Timestamp:   time.Now(),
		Input:       input,
		FromBase:    from,
		Detected:    detected,
		FracDigits:  fracDigits,
		Binary:      radix.Format(v, radix.Binary, fracDigits),
		Octal:       radix.Format(v, radix.Octal, fracDigits),
		Decimal:     radix.Format(v, radix.Decimal, fracDigits),
		Hexadecimal: radix.Format(v, radix.Hexadecimal, fracDigits),
	}
}

// Convert is the full pipeline behind both the GUI and the CLI: detect the
// base when asked to, parse, and render all four representations. On error
// the zero Conversion is returned alongside it; callers keep their previous
// state.
func Convert(input string, from radix.Base, autoDetect bool, fracDigits int) (Conversion, error) {
	trimmed := strings.TrimSpace(input)

	rest := trimmed
	detected := false
	if autoDetect {
		from, rest = radix.DetectBase(trimmed)
		detected = rest != trimmed
	}

	v, err := radix.Parse(rest, from)
	if err != nil {
		return Conversion{}, err
	}
	return NewConversion(trimmed, from, detected, v, fracDigits), nil
}

// Result returns the rendered representation for the given base.
func (c *Conversion) Result(base radix.Base) string {
	switch base {
	case radix.Binary:
		return c.Binary
	case radix.Octal:
		return c.Octal
	case radix.Decimal:
		return c.Decimal
	case radix.Hexadecimal:
		return c.Hexadecimal
	}
	return ""
}

// HasFraction reports whether any representation carries fractional digits.
func (c *Conversion) HasFraction() bool {
	return strings.Contains(c.Binary, ".") ||
		strings.Contains(c.Octal, ".") ||
		strings.Contains(c.Decimal, ".") ||
		strings.Contains(c.Hexadecimal, ".")
}

// Status returns "OK" or the error string.
func (c *Conversion) Status() string {
	if c.Error != "" {
		return c.Error
	}
	return "OK"
}
