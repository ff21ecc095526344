package layout

import (
	"context"
	"math/rand"
	"sync"

	"github.com/san-kum/filmdash/internal/catalog"
)

// Candidate is one seeded run of an Ensemble.
type Candidate struct {
	Seed   int64
	Layout *Layout
	Result Result
}

// Ensemble settles the same films from several seeds concurrently. Each run
// owns its arena and its rng.
type Ensemble struct {
	films     []catalog.Film
	bounds    Bounds
	params    Params
	numRuns   int
	seedStart int64
}

func NewEnsemble(films []catalog.Film, bounds Bounds, p Params, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{films: films, bounds: bounds, params: p, numRuns: max(numRuns, 1), seedStart: seedStart}
}

// Run returns one candidate per seed, in seed order.
func (e *Ensemble) Run(ctx context.Context) ([]Candidate, error) {
	if err := e.params.Validate(); err != nil {
		return nil, err
	}

	results := make([]Candidate, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := e.seedStart + int64(idx)
			l := New(e.films, e.bounds, e.params, rand.New(rand.NewSource(seed)))
			res, err := l.Run(ctx, e.params.MaxIterations)
			results[idx], errs[idx] = Candidate{Seed: seed, Layout: l, Result: res}, err
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Best picks the candidate with the least overlap, then the fewest
// iterations. It reports false for an empty slice.
func Best(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		switch {
		case c.Result.MaxOverlap < best.Result.MaxOverlap:
			best = c
		case c.Result.MaxOverlap == best.Result.MaxOverlap && c.Result.Iterations < best.Result.Iterations:
			best = c
		}
	}
	return best, true
}
