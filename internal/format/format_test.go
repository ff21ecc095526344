package format

import (
	"math"
	"testing"

	"github.com/san-kum/filmdash/internal/catalog"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{150, "$150"},
		{300, "$300"},
		{1234567, "$1,234,567"},
		{2797501328, "$2,797,501,328"},
		{99.5, "$100"},
		{-42.4, "-$42"},
		{-0.4, "$0"},
		{1e19, "$10,000,000,000,000,000,000"},
		{1e20, "$100,000,000,000,000,000,000"},
		{-1e20, "-$100,000,000,000,000,000,000"},
		{math.NaN(), Placeholder},
		{math.Inf(1), Placeholder},
	}

	for _, tt := range tests {
		if got := Currency(tt.in); got != tt.want {
			t.Errorf("Currency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBoxOfficeRoundTrip(t *testing.T) {
	inputs := []string{"$100", "$1,234.56", "$2,797,501,328", "$0.49", "1.2.3", "N/A", "$150.5", "$99,999,999,999,999,999,999", "$100,000,000,000,000,000,000"}

	for _, in := range inputs {
		v, _ := catalog.ParseBoxOffice(in)
		formatted := BoxOffice(in)
		back, ok := catalog.ParseBoxOffice(formatted)
		if !ok {
			t.Errorf("BoxOffice(%q) = %q does not parse back", in, formatted)
			continue
		}
		if back != math.Round(v) {
			t.Errorf("round trip of %q: got %v, want %v", in, back, math.Round(v))
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Short", 15, "Short"},
		{"Exactly fifteen", 15, "Exactly fifteen"},
		{"The Lord of the Rings: The Return of the King", 15, "The Lord of the..."},
		{"Amélie Poulain et compagnie", 6, "Amélie..."},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
