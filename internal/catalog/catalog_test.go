package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const twoFilms = `[
  {"title": "A", "director": "X", "release_year": "2000", "country_of_origin": "US", "box_office": "$100"},
  {"title": "B", "director": "Y", "release_year": "2010", "country_of_origin": "UK", "box_office": "$200"}
]`

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(twoFilms))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("expected 2 films, got %d", c.Len())
	}
	if c[1].Director != "Y" || c[1].CountryOfOrigin != "UK" {
		t.Errorf("unexpected second film: %+v", c[1])
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "films.json")
	if err := os.WriteFile(path, []byte(twoFilms), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if c[0].Title != "A" {
		t.Errorf("expected first title A, got %s", c[0].Title)
	}
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"title": "not an array"`), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.json")},
		{"malformed json", bad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(tt.path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrLoad) {
				t.Errorf("expected ErrLoad, got %v", err)
			}
			var le *LoadError
			if !errors.As(err, &le) || le.Path != tt.path {
				t.Errorf("expected LoadError for %s, got %v", tt.path, err)
			}
			if len(c) != 0 {
				t.Errorf("expected empty catalog on failure, got %d films", len(c))
			}
		})
	}
}

func TestFilmsReturnsCopy(t *testing.T) {
	c, _ := Decode(strings.NewReader(twoFilms))
	films := c.Films()
	films[0].Title = "changed"

	if c[0].Title != "A" {
		t.Error("mutating Films() result changed the catalog")
	}
}
