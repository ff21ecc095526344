package catalog

import (
	"strconv"
	"strings"
)

// Film is one catalog record. Field values are kept verbatim.
type Film struct {
	Title           string `json:"title"`
	Director        string `json:"director"`
	ReleaseYear     string `json:"release_year"`
	CountryOfOrigin string `json:"country_of_origin"`
	BoxOffice       string `json:"box_office"`
}

// Revenue is the parsed box office, or 0 when the field is malformed.
func (f Film) Revenue() float64 {
	v, _ := ParseBoxOffice(f.BoxOffice)
	return v
}

// Year is the parsed release year, or 0 when the field is malformed.
func (f Film) Year() int {
	y, _ := ParseYear(f.ReleaseYear)
	return y
}

// ParseBoxOffice strips every character that is not a digit or '.' and
// parses the longest leading run that forms a decimal number, so "1.2.3"
// yields 1.2 and "$1,234" yields 1234. The second result is false when no
// number could be read.
func ParseBoxOffice(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	end, digits, dot := 0, 0, false
	for end < len(cleaned) {
		c := cleaned[end]
		if c == '.' {
			if dot {
				break
			}
			dot = true
		} else {
			digits++
		}
		end++
	}
	if digits == 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(cleaned[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseYear reads the leading integer of s after trimming spaces.
func ParseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	y, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return y, true
}
