// Package currency parses and formats the free-form money and percentage strings deals are
// entered with, such as "$1,250,000" or "12.5%".
package currency

import (
	"math"
	"strconv"
	"strings"
)

// Parse extracts the numeric value of s, ignoring every character that is not a digit, '.' or '-'.
// Only the leading number of what remains is read, so "1.5.3" is 1.5 and "12-5" is 12.
// Input without a leading number yields (0, false).
func Parse(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	num := leadingNumber(b.String())
	if num == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// leadingNumber returns the longest prefix of s shaped like -?digits[.digits], or "" when it has no digits.
func leadingNumber(s string) string {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > i+1 {
			digits += j - i - 1
			i = j
		}
	}
	if digits == 0 {
		return ""
	}
	return s[:i]
}

// ParseOrZero is Parse without the ok flag.
func ParseOrZero(s string) float64 {
	v, _ := Parse(s)
	return v
}

// Format renders amount as US dollars with two decimals and thousands separators: $1,234.50.
func Format(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	raw := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, frac := raw[:len(raw)-3], raw[len(raw)-3:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)
	return b.String()
}
