// Package format renders catalog values for display.
package format

import (
	"math"

	"github.com/san-kum/filmdash/internal/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is shown wherever a value is undefined.
const Placeholder = "—"

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats v as en-US dollars with no fraction digits, e.g. $1,234.
// Halves round away from zero. NaN and infinities render as Placeholder.
func Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	n := math.Round(v)
	sign := ""
	switch {
	case n == 0: // -0
		n = 0
	case n < 0:
		sign, n = "-", -n
	}
	return printer.Sprintf("%s$%v", sign, number.Decimal(n, number.MaxFractionDigits(0)))
}

// BoxOffice reformats a raw box office field. Malformed input renders as $0.
func BoxOffice(raw string) string {
	v, _ := catalog.ParseBoxOffice(raw)
	return Currency(v)
}

// Truncate keeps the first n runes of s and appends "..." when s is longer.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n < 0 || len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
