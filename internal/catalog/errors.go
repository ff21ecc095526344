package catalog

import "errors"

var (
	// ErrLoad indicates the catalog file could not be read or decoded.
	ErrLoad = errors.New("catalog: load failed")

	// ErrEmptyCatalog indicates an operation that needs at least one film.
	ErrEmptyCatalog = errors.New("catalog: no films")
)

// LoadError wraps a load failure with the offending path.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return "catalog: load " + e.Path + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}
