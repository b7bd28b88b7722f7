package sheet

import "strings"

// FormatAmount renders an estimated value the way the grid shows it: digits
// grouped in thousands followed by the rupee sign. Everything but digits and
// the first decimal point is ignored, so "6,200,000" and "6200000" render
// alike. Empty input renders empty.
func FormatAmount(value string) string {
	if value == "" {
		return ""
	}
	var intPart, fracPart strings.Builder
	seenDot := false
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			if seenDot {
				fracPart.WriteRune(r)
			} else {
				intPart.WriteRune(r)
			}
		case r == '.' && !seenDot:
			seenDot = true
		}
	}

	digits := strings.TrimLeft(intPart.String(), "0")
	if digits == "" {
		digits = "0"
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	frac := strings.TrimRight(fracPart.String(), "0")
	if len(frac) > 3 {
		frac = frac[:3]
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String() + " ₹"
}

// Link returns the address a URL cell points at.
func Link(value string) string {
	if value == "" || strings.Contains(value, "://") {
		return value
	}
	return "https://" + value
}
