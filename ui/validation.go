package ui

import (
	"strconv"
	"strings"

	"baseconv-tool/internal/radix"
)

// parseIntOrDefault attempts to parse a string as an integer.
// Returns the parsed value or defaultValue if parsing fails.
func parseIntOrDefault(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return val
}

// validateNumeral checks text against the base the same way a conversion
// will, without rendering anything. Empty text passes so an untouched entry
// is not flagged.
func validateNumeral(text string, base radix.Base, auto bool) error {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}
	if auto {
		base, s = radix.DetectBase(s)
	}
	_, err := radix.Parse(s, base)
	return err
}
