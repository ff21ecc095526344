// Package stats computes the global summary shown above every view.
//
// Stats always describe the whole catalog, never the filtered working set.
package stats

import (
	"strconv"

	"github.com/san-kum/filmdash/internal/catalog"
	"github.com/san-kum/filmdash/internal/format"
)

// Stats aggregates a catalog. AvgBoxOffice is meaningful only when
// TotalFilms > 0 and RecentYear only when HasRecentYear is set.
type Stats struct {
	TotalFilms         int
	TotalBoxOffice     float64
	AvgBoxOffice       float64
	RecentYear         int
	HasRecentYear      bool
	MalformedBoxOffice int
	MalformedYears     int
}

// Display holds the panel strings.
type Display struct {
	TotalFilms     string
	TotalBoxOffice string
	AvgBoxOffice   string
	RecentYear     string
}

// Compute aggregates films. Malformed box office values count as zero and
// malformed years are left out of RecentYear.
func Compute(films []catalog.Film) Stats {
	s := Stats{TotalFilms: len(films)}

	for _, f := range films {
		v, ok := catalog.ParseBoxOffice(f.BoxOffice)
		if !ok {
			s.MalformedBoxOffice++
		}
		s.TotalBoxOffice += v

		y, ok := catalog.ParseYear(f.ReleaseYear)
		if !ok {
			s.MalformedYears++
			continue
		}
		if !s.HasRecentYear || y > s.RecentYear {
			s.RecentYear = y
			s.HasRecentYear = true
		}
	}

	if s.TotalFilms > 0 {
		s.AvgBoxOffice = s.TotalBoxOffice / float64(s.TotalFilms)
	}
	return s
}

// Empty reports whether the catalog had no films.
func (s Stats) Empty() bool { return s.TotalFilms == 0 }

// Display formats the panel, substituting format.Placeholder for undefined values.
func (s Stats) Display() Display {
	d := Display{
		TotalFilms:     strconv.Itoa(s.TotalFilms),
		TotalBoxOffice: format.Currency(s.TotalBoxOffice),
		AvgBoxOffice:   format.Placeholder,
		RecentYear:     format.Placeholder,
	}
	if s.TotalFilms > 0 {
		d.AvgBoxOffice = format.Currency(s.AvgBoxOffice)
	}
	if s.HasRecentYear {
		d.RecentYear = strconv.Itoa(s.RecentYear)
	}
	return d
}
