package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Separators holds the punctuation a locale uses for amounts.
type Separators struct {
	Decimal  rune
	Grouping rune
}

// SeparatorsFor returns the amount separators for a locale.
// Unknown locales fall back to the English convention.
func SeparatorsFor(tag language.Tag) Separators {
	if region, conf := tag.Region(); conf > language.No && region.String() == "CH" {
		// Swiss formats group with an apostrophe regardless of language
		return Separators{Decimal: '.', Grouping: '\''}
	}

	base, _ := tag.Base()
	switch base.String() {
	case "de", "es", "it", "pt", "nl", "tr", "id":
		return Separators{Decimal: ',', Grouping: '.'}
	case "fr", "ru", "uk", "pl", "cs", "sv", "fi", "nb":
		return Separators{Decimal: ',', Grouping: ' '}
	default:
		return Separators{Decimal: '.', Grouping: ','}
	}
}

// ParseAmount parses a locale-formatted amount string.
//
// Both "." and "," are accepted in either the decimal or the grouping role.
// When both appear, the one occurring last is the decimal separator. When only
// one appears, it is read as a decimal separator only if the segment after it
// looks like a decimal fraction: 1-2 digits, or exactly 3 digits while the
// segment before it has at most 2, since "1.234" typed into an amount field
// is more likely a fraction than a grouped integer. Everything else is
// stripped as grouping punctuation.
//
// The result is rounded to 2 decimal places when the fraction is longer.
// ok is false for empty or unparsable input; callers must treat that as
// "no amount", never as zero.
func ParseAmount(text string) (amount decimal.Decimal, ok bool) {
	s := sanitizeAmount(text)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return decimal.Zero, false
	}

	lastDot := strings.LastIndexByte(s, '.')
	lastComma := strings.LastIndexByte(s, ',')

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastDot > lastComma {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		}
	case lastDot >= 0:
		if !decimalRole(s, '.') {
			s = strings.ReplaceAll(s, ".", "")
		}
	case lastComma >= 0:
		if decimalRole(s, ',') {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}

	if frac := strings.IndexByte(s, '.'); frac >= 0 && len(s)-frac-1 > 2 {
		amount = amount.Round(2)
	}

	if negative {
		amount = amount.Neg()
	}

	return amount, true
}

// decimalRole reports whether a single punctuation mark in s is consistent
// with being a decimal separator.
//
// A 1-2 digit trailing segment always is. A 3 digit trailing segment is only
// read as a fraction when the leading segment cannot be the first group of a
// grouped integer, so "1.234" stays 1234 while "1234.567" is a fraction.
func decimalRole(s string, mark byte) bool {
	segments := strings.Split(s, string(mark))
	if len(segments) != 2 {
		return false
	}

	before, after := segments[0], segments[1]
	if len(after) >= 1 && len(after) <= 2 {
		return true
	}

	// a grouped integer never starts with a zero group
	groupingPlausible := len(before) >= 1 && len(before) <= 3 && before[0] != '0'
	return len(after) == 3 && !groupingPlausible
}

// sanitizeAmount strips whitespace and keeps digits, the two separator
// characters and a leading minus sign.
func sanitizeAmount(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// FormatAmount renders an amount with the locale separators.
func FormatAmount(amount decimal.Decimal, sep Separators) string {
	s := amount.String()

	var sign string
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	integer, fraction, hasFraction := strings.Cut(s, ".")

	out := sign + groupDigits(integer, sep.Grouping)
	if hasFraction {
		out += string(sep.Decimal) + fraction
	}

	return out
}

// ReformatAmountInput re-groups an amount while the user is typing.
//
// The integer part is regrouped after every keystroke. A trailing decimal
// separator the user just typed is preserved so that "1234." does not
// collapse back to "1,234".
func ReformatAmountInput(text string, sep Separators) string {
	s := sanitizeAmount(text)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	integer := s
	fraction := ""
	trailingSeparator := false
	if i := strings.LastIndexByte(s, byte(sep.Decimal)); i >= 0 {
		integer, fraction = s[:i], digitsOnly(s[i+1:])
		trailingSeparator = fraction == ""
	}

	out := groupDigits(digitsOnly(integer), sep.Grouping)
	if negative {
		out = "-" + out
	}

	switch {
	case trailingSeparator:
		out += string(sep.Decimal)
	case fraction != "":
		out += string(sep.Decimal) + fraction
	}

	return out
}

// groupDigits inserts the grouping separator every three digits from the right.
func groupDigits(digits string, grouping rune) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}

	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteRune(grouping)
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
