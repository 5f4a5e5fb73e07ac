package radix

// MaxFracDigits bounds the fractional digits Format will emit. Fractions
// that do not terminate in the target base (e.g. decimal 0.1 in binary) are
// truncated at this bound, not rounded, so the rendering is lossy for them.
const MaxFracDigits = 10

const digitChars = "0123456789ABCDEF"

// Format renders v in the target base with at most fracDigits fractional
// digits (clamped to MaxFracDigits). The integer part is produced by
// repeated division, the fraction by repeated multiplication, stopping early
// once the fractional remainder reaches exactly zero. Trailing zero digits
// are stripped, so the output never ends in '0' after the point or in a
// bare point. Hex digits are uppercase, the sign is emitted once before the
// integer part, and no base prefix is added.
func Format(v Value, base Base, fracDigits int) string {
	if fracDigits < 0 {
		fracDigits = 0
	}
	if fracDigits > MaxFracDigits {
		fracDigits = MaxFracDigits
	}

	b := uint64(base)
	var intBuf [64]byte
	pos := len(intBuf)
	n := v.Int
	for {
		pos--
		intBuf[pos] = digitChars[n%b]
		n /= b
		if n == 0 {
			break
		}
	}

	out := make([]byte, 0, len(intBuf)-pos+fracDigits+2)
	if v.Neg && !v.IsZero() {
		out = append(out, '-')
	}
	out = append(out, intBuf[pos:]...)

	if v.Frac > 0 && fracDigits > 0 {
		out = append(out, '.')
		f := v.Frac
		for i := 0; i < fracDigits && f > 0; i++ {
			f *= float64(b)
			d := uint64(f)
			if d >= b {
				// float rounding can push the digit to the base at the boundary
				d = b - 1
			}
			out = append(out, digitChars[d])
			f -= float64(d)
		}
		// Truncation leaves no trailing zeros behind.
		for out[len(out)-1] == '0' {
			out = out[:len(out)-1]
		}
		if out[len(out)-1] == '.' {
			out = out[:len(out)-1]
		}
	}

	return string(out)
}
