// Package catalog holds the immutable film catalog and the parsing rules for
// its loosely formatted fields.
//
// A [Catalog] is loaded once with [Load] or [Decode] and is never mutated
// afterwards. Working sets derived from it (see package query) are fresh
// slices, so callers may reorder them freely.
//
// Box office and release year are stored exactly as they appear in the input
// file. [ParseBoxOffice] and [ParseYear] report whether a field parsed; the
// [Film.Revenue] and [Film.Year] accessors fall back to zero so that sorting
// and aggregation always see a comparable number.
package catalog
