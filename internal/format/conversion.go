package format

import (
	"fmt"
	"strings"

	"baseconv-tool/internal/model"
	"baseconv-tool/internal/radix"
)

// WithPrefix attaches the display prefix of base to an already formatted
// numeral, keeping any sign ahead of the prefix ("-2A" -> "-0x2A"). Decimal
// has no prefix and is returned unchanged.
func WithPrefix(text string, base radix.Base) string {
	p := base.Prefix()
	if p == "" || text == "" {
		return text
	}
	if text[0] == '-' || text[0] == '+' {
		return text[:1] + p + text[1:]
	}
	return p + text
}

// FormatConversion produces a human-readable block with the input and all
// four representations. withPrefix controls 0b/0o/0x on the results.
func FormatConversion(c *model.Conversion, withPrefix bool) string {
	var b strings.Builder

	b.WriteString("=== Conversion ===\n")
	b.WriteString(fmt.Sprintf("Timestamp:    %s\n", c.Timestamp.Format("2006-01-02 15:04:05")))

	source := c.FromBase.String()
	if c.Detected {
		source += ", detected from prefix"
	}
	b.WriteString(fmt.Sprintf("Input:        %s (%s)\n", c.Input, source))

	if c.Error != "" {
		b.WriteString(fmt.Sprintf("\nError: %s\n", c.Error))
		b.WriteString("==================")
		return b.String()
	}

	for _, base := range radix.Bases() {
		result := c.Result(base)
		if withPrefix {
			result = WithPrefix(result, base)
		}
		b.WriteString(fmt.Sprintf("%-13s %s\n", base.String()+":", result))
	}

	if c.HasFraction() {
		b.WriteString(fmt.Sprintf("\nFractional digits capped at %d (truncated, not rounded)\n", c.FracDigits))
	}

	b.WriteString("==================")
	return b.String()
}

// HistoryLine returns the one-line form of a conversion towards a single
// target base: "1010 (Binary) -> 0xA (Hexadecimal)".
func HistoryLine(c *model.Conversion, to radix.Base) string {
	return fmt.Sprintf("%s (%s) -> %s (%s)",
		c.Input, c.FromBase, WithPrefix(c.Result(to), to), to)
}
