package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Catalog is the ordered source list of films.
type Catalog []Film

// Load reads a JSON array of films from path.
func Load(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return c, nil
}

// Decode reads a JSON array of films.
func Decode(r io.Reader) (Catalog, error) {
	var films []Film
	if err := json.NewDecoder(r).Decode(&films); err != nil {
		return nil, fmt.Errorf("decode films: %w", err)
	}
	return Catalog(films), nil
}

// Films returns a copy of the catalog contents.
func (c Catalog) Films() []Film {
	out := make([]Film, len(c))
	copy(out, c)
	return out
}

func (c Catalog) Len() int { return len(c) }
