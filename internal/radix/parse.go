package radix

import (
	"math"
	"strings"
)

// Value is a parsed numeral: a sign, an integer magnitude, and an optional
// fractional component in [0,1).
type Value struct {
	Neg  bool
	Int  uint64
	Frac float64
}

// IsZero reports whether the value is exactly zero.
func (v Value) IsZero() bool {
	return v.Int == 0 && v.Frac == 0
}

// Float64 returns the signed value as a float64. Integer magnitudes above
// 2^53 lose precision here; Format renders them exactly.
func (v Value) Float64() float64 {
	f := float64(v.Int) + v.Frac
	if v.Neg {
		return -f
	}
	return f
}

// FromInt64 wraps a native integer in a Value.
func FromInt64(n int64) Value {
	if n < 0 {
		// two-step negation keeps math.MinInt64 in range
		return Value{Neg: true, Int: uint64(-(n + 1)) + 1}
	}
	return Value{Int: uint64(n)}
}

// digitVal maps a digit character to its numeric value. Letters are
// case-insensitive; ok is false for anything outside 0-9/A-F.
func digitVal(r rune) (uint64, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint64(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint64(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint64(r-'A') + 10, true
	}
	return 0, false
}

// Parse converts a numeral string in the given base into a Value. The string
// may carry an optional sign, digits valid in the base, and at most one
// radix point. A base prefix matching the requested base is skipped, so
// "0xFF" parses fine with base 16.
//
// Errors are *InvalidDigitError, *MalformedError, or *OverflowError.
func Parse(input string, base Base) (Value, error) {
	if !base.Valid() {
		return Value{}, &MalformedError{Input: input, Reason: "unsupported base"}
	}
	if input == "" {
		return Value{}, &MalformedError{Input: input, Reason: "empty input"}
	}

	s := input
	var v Value
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		v.Neg = s[0] == '-'
		s = s[1:]
	}
	if p := base.Prefix(); p != "" && len(s) >= 2 && strings.EqualFold(s[:2], p) {
		s = s[2:]
	}

	b := uint64(base)
	ndigits := 0
	seenPoint := false
	fracNum, fracDen := 0.0, 1.0

	for _, r := range s {
		if r == '.' {
			if seenPoint {
				return Value{}, &MalformedError{Input: input, Reason: "multiple radix points"}
			}
			seenPoint = true
			continue
		}

		d, ok := digitVal(r)
		if !ok || d >= b {
			return Value{}, &InvalidDigitError{Char: r, Base: base}
		}
		ndigits++

		if seenPoint {
			// Digits this far down are below float64 resolution.
			if fracDen < 1e17 {
				fracNum = fracNum*float64(b) + float64(d)
				fracDen *= float64(b)
			}
			continue
		}
		if v.Int > (math.MaxUint64-d)/b {
			return Value{}, &OverflowError{Input: input, Base: base}
		}
		v.Int = v.Int*b + d
	}

	if ndigits == 0 {
		return Value{}, &MalformedError{Input: input, Reason: "no digits"}
	}

	if fracNum > 0 {
		// The fraction is digits/base^k in one correctly rounded division.
		v.Frac = fracNum / fracDen
		if v.Frac >= 1 {
			// rounding at the resolution cutoff can land on 1.0
			v.Frac = math.Nextafter(1, 0)
		}
	}
	return v, nil
}
