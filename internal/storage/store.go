// Package storage writes working sets and bubble layouts to disk: one-off
// CSV and JSON exports, and a directory of saved snapshots.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/filmdash/internal/catalog"
)

// Store keeps one directory per snapshot under baseDir.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Snapshot describes a saved working set.
type Snapshot struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Term      string    `json:"term"`
	Sort      string    `json:"sort"`
	Films     int       `json:"films"`
}

// Save writes films and the query that produced them. The snapshot id is
// derived from the current time.
func (s *Store) Save(source, term, sortKey string, films []catalog.Film) (string, error) {
	now := time.Now()
	id := fmt.Sprintf("snapshot_%s", now.Format("20060102T150405.000000000"))
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := Snapshot{
		ID:        id,
		Source:    source,
		Timestamp: now,
		Term:      term,
		Sort:      sortKey,
		Films:     len(films),
	}
	err := writeFile(filepath.Join(dir, "metadata.json"), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return "", fmt.Errorf("write snapshot metadata: %w", err)
	}

	if err := ExportCSV(filepath.Join(dir, "films.csv"), films); err != nil {
		return "", err
	}
	return id, nil
}

// List returns every readable snapshot, oldest first.
func (s *Store) List() ([]Snapshot, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Snapshot{}, nil
		}
		return nil, err
	}

	snaps := make([]Snapshot, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		snaps = append(snaps, *meta)
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Timestamp.Before(snaps[j].Timestamp) })
	return snaps, nil
}

func (s *Store) Load(id string) (*Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta Snapshot
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadFilms reads the films saved with a snapshot.
func (s *Store) LoadFilms(id string) ([]catalog.Film, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "films.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadCSV(file)
}
