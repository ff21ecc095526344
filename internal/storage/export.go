package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/filmdash/internal/catalog"
	"github.com/san-kum/filmdash/internal/layout"
)

var csvHeader = []string{"title", "director", "release_year", "country_of_origin", "box_office", "revenue"}

// WriteCSV writes films with their raw fields plus the parsed revenue.
func WriteCSV(w io.Writer, films []catalog.Film) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, f := range films {
		row := []string{
			f.Title,
			f.Director,
			f.ReleaseYear,
			f.CountryOfOrigin,
			f.BoxOffice,
			strconv.FormatFloat(f.Revenue(), 'f', 0, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads films written by WriteCSV. The revenue column is ignored.
func ReadCSV(r io.Reader) ([]catalog.Film, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []catalog.Film{}, nil
	}

	films := make([]catalog.Film, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 5 {
			continue
		}
		films = append(films, catalog.Film{
			Title:           rec[0],
			Director:        rec[1],
			ReleaseYear:     rec[2],
			CountryOfOrigin: rec[3],
			BoxOffice:       rec[4],
		})
	}
	return films, nil
}

// WriteJSON writes films in the catalog file format.
func WriteJSON(w io.Writer, films []catalog.Film) error {
	if films == nil {
		films = []catalog.Film{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(films)
}

func ExportCSV(path string, films []catalog.Film) error {
	return writeFile(path, func(w io.Writer) error { return WriteCSV(w, films) })
}

func ExportJSON(path string, films []catalog.Film) error {
	return writeFile(path, func(w io.Writer) error { return WriteJSON(w, films) })
}

// LayoutData is a settled bubble layout.
type LayoutData struct {
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Iterations int            `json:"iterations"`
	Converged  bool           `json:"converged"`
	HitCap     bool           `json:"hit_cap"`
	MaxOverlap float64        `json:"max_overlap"`
	Bubbles    []BubbleRecord `json:"bubbles"`
}

type BubbleRecord struct {
	Title   string  `json:"title"`
	Revenue float64 `json:"revenue"`
	Year    int     `json:"year"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Size    float64 `json:"size"`
	Color   string  `json:"color"`
	Label   string  `json:"label,omitempty"`
}

// NewLayoutData captures l after a run that produced res.
func NewLayoutData(l *layout.Layout, res layout.Result) LayoutData {
	b := l.Bounds()
	data := LayoutData{
		Width:      b.Width,
		Height:     b.Height,
		Iterations: res.Iterations,
		Converged:  res.Converged,
		HitCap:     res.HitCap,
		MaxOverlap: res.MaxOverlap,
		Bubbles:    make([]BubbleRecord, 0, l.Len()),
	}
	for _, bub := range l.Bubbles() {
		data.Bubbles = append(data.Bubbles, BubbleRecord{
			Title:   bub.Film.Title,
			Revenue: bub.Film.Revenue(),
			Year:    bub.Film.Year(),
			X:       bub.X,
			Y:       bub.Y,
			Size:    bub.Size,
			Color:   bub.Color(l.Params()).Hex(),
			Label:   bub.Label,
		})
	}
	return data
}

func WriteLayoutJSON(w io.Writer, l *layout.Layout, res layout.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewLayoutData(l, res))
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
