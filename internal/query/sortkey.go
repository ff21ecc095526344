package query

import (
	"errors"
	"fmt"
)

// ErrUnknownSortKey is returned by ParseSortKey for unrecognized names.
var ErrUnknownSortKey = errors.New("query: unknown sort key")

// SortKey names one of the selector's orderings.
type SortKey string

const (
	SortNone          SortKey = "none"
	SortBoxOfficeDesc SortKey = "box_office_desc"
	SortBoxOfficeAsc  SortKey = "box_office_asc"
	SortYearDesc      SortKey = "year_desc"
	SortYearAsc       SortKey = "year_asc"
	SortTitleAsc      SortKey = "title_asc"
	SortTitleDesc     SortKey = "title_desc"
)

var sortLabels = map[SortKey]string{
	SortNone:          "Catalog order",
	SortBoxOfficeDesc: "Box office (high to low)",
	SortBoxOfficeAsc:  "Box office (low to high)",
	SortYearDesc:      "Year (newest first)",
	SortYearAsc:       "Year (oldest first)",
	SortTitleAsc:      "Title (A-Z)",
	SortTitleDesc:     "Title (Z-A)",
}

// SortKeys returns the keys in selector order.
func SortKeys() []SortKey {
	return []SortKey{
		SortNone,
		SortBoxOfficeDesc,
		SortBoxOfficeAsc,
		SortYearDesc,
		SortYearAsc,
		SortTitleAsc,
		SortTitleDesc,
	}
}

// ParseSortKey maps a selector value to a SortKey. The empty string means SortNone.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortNone, nil
	}
	k := SortKey(s)
	if _, ok := sortLabels[k]; !ok {
		return SortNone, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
	return k, nil
}

// Label is the human readable selector text.
func (k SortKey) Label() string {
	if l, ok := sortLabels[k]; ok {
		return l
	}
	return string(k)
}

// Next cycles forward (or backward when step is negative) through SortKeys.
func (k SortKey) Next(step int) SortKey {
	keys := SortKeys()
	idx := 0
	for i, key := range keys {
		if key == k {
			idx = i
			break
		}
	}
	n := len(keys)
	return keys[((idx+step)%n+n)%n]
}
