package radix

import (
	"fmt"
	"strings"
)

// Base is the radix of a positional numeral system.
type Base int

// The four supported bases.
const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// Bases returns the supported bases in ascending order.
func Bases() []Base {
	return []Base{Binary, Octal, Decimal, Hexadecimal}
}

// Valid reports whether b is one of the four supported bases.
func (b Base) Valid() bool {
	switch b {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	}
	return false
}

// String returns the base name, e.g. "Hexadecimal".
func (b Base) String() string {
	switch b {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	}
	return fmt.Sprintf("Base(%d)", int(b))
}

// Prefix returns the display prefix for the base: "0b", "0o", "0x", or ""
// for decimal.
func (b Base) Prefix() string {
	switch b {
	case Binary:
		return "0b"
	case Octal:
		return "0o"
	case Hexadecimal:
		return "0x"
	}
	return ""
}

// ParseBase resolves a base selector as typed on the CLI or shown in the
// GUI: a numeric value ("2", "16") or a name ("binary", "hex", ...).
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2", "bin", "binary":
		return Binary, nil
	case "8", "oct", "octal":
		return Octal, nil
	case "10", "dec", "decimal":
		return Decimal, nil
	case "16", "hex", "hexadecimal":
		return Hexadecimal, nil
	}
	return 0, fmt.Errorf("unknown base %q (use 2, 8, 10 or 16)", s)
}

// DetectBase examines a leading case-insensitive prefix ("0b", "0o", "0x",
// optionally after a sign) and returns the indicated base together with the
// input with that prefix removed. Input without a recognized prefix is
// decimal and is returned unchanged.
func DetectBase(input string) (Base, string) {
	sign := ""
	rest := input
	if strings.HasPrefix(rest, "+") || strings.HasPrefix(rest, "-") {
		sign, rest = rest[:1], rest[1:]
	}

	if len(rest) >= 2 {
		switch strings.ToLower(rest[:2]) {
		case "0b":
			return Binary, sign + rest[2:]
		case "0o":
			return Octal, sign + rest[2:]
		case "0x":
			return Hexadecimal, sign + rest[2:]
		}
	}
	return Decimal, input
}
