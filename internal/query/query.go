// Package query derives working sets from a catalog: filtering by a search
// term and ordering by a selector key.
package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/san-kum/filmdash/internal/catalog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Matches reports whether f matches the lowercased search term.
func Matches(f catalog.Film, term string) bool {
	return strings.Contains(strings.ToLower(f.Title), term) ||
		strings.Contains(strings.ToLower(f.Director), term) ||
		strings.Contains(f.ReleaseYear, term)
}

// Filter returns the films whose title or director contains term
// (case-insensitive) or whose release year contains it. An empty term keeps
// every film. The result is always a new slice.
func Filter(films []catalog.Film, term string) []catalog.Film {
	term = strings.ToLower(term)
	out := make([]catalog.Film, 0, len(films))
	for _, f := range films {
		if term == "" || Matches(f, term) {
			out = append(out, f)
		}
	}
	return out
}

// Sort orders films in place. The sort is stable, so ties keep their
// relative order and sorting twice by the same key is a no-op.
func Sort(films []catalog.Film, key SortKey) {
	cmpFn := comparator(key)
	if cmpFn == nil {
		return
	}
	slices.SortStableFunc(films, cmpFn)
}

// Sorted returns a sorted copy of films.
func Sorted(films []catalog.Film, key SortKey) []catalog.Film {
	out := slices.Clone(films)
	Sort(out, key)
	return out
}

// Apply filters then sorts, producing a fresh working set.
func Apply(films []catalog.Film, term string, key SortKey) []catalog.Film {
	out := Filter(films, term)
	Sort(out, key)
	return out
}

// ByRevenueDesc orders films from highest to lowest box office.
func ByRevenueDesc(a, b catalog.Film) int {
	return cmp.Compare(b.Revenue(), a.Revenue())
}

func comparator(key SortKey) func(a, b catalog.Film) int {
	switch key {
	case SortBoxOfficeDesc:
		return ByRevenueDesc
	case SortBoxOfficeAsc:
		return func(a, b catalog.Film) int { return cmp.Compare(a.Revenue(), b.Revenue()) }
	case SortYearDesc:
		return func(a, b catalog.Film) int { return cmp.Compare(b.Year(), a.Year()) }
	case SortYearAsc:
		return func(a, b catalog.Film) int { return cmp.Compare(a.Year(), b.Year()) }
	case SortTitleAsc:
		c := collate.New(language.AmericanEnglish)
		return func(a, b catalog.Film) int { return c.CompareString(a.Title, b.Title) }
	case SortTitleDesc:
		c := collate.New(language.AmericanEnglish)
		return func(a, b catalog.Film) int { return c.CompareString(b.Title, a.Title) }
	}
	return nil
}
