package radix

import "fmt"

// InvalidDigitError reports a character outside the digit alphabet of the
// stated base.
type InvalidDigitError struct {
	Char rune
	Base Base
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %q for base %d", e.Char, int(e.Base))
}

// MalformedError reports a structurally invalid numeral: empty input,
// multiple radix points, or a sign/point with no digits.
type MalformedError struct {
	Input  string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed numeral %q: %s", e.Input, e.Reason)
}

// OverflowError reports an integer magnitude beyond the 64-bit range.
type OverflowError struct {
	Input string
	Base  Base
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("numeral %q overflows the 64-bit range in base %d", e.Input, int(e.Base))
}
