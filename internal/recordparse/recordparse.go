// Package recordparse implements the record parser factory: it composes
// scalar/nested-record field bindings into a parser of a caller's record
// type, driven by column-name resolution against a header.Header.
//
// A parser is built from an explicit, ordered list of FieldBinder values
// plus a constructor that assembles the record from the resolved []any,
// rather than one generated type per field count. The arity-specific
// convenience wrappers in package parser are thin front-ends over this
// one builder.
package recordparse

import (
	"github.com/rchillyard/tableparser/internal/header"
	"github.com/rchillyard/tableparser/tperr"
)

// FieldBinder resolves one field's value out of a full outer row, given
// the (possibly already-subheadered) view it was built against.
type FieldBinder struct {
	Name       string
	Candidates []string
	Optional   bool
	// Bind extracts and converts this field's value. h is the header view
	// of the record the field belongs to: the table's top-level header for
	// a top-level field, or the header.Subheader a Nested binder narrowed
	// it to. Either way h resolves names to positions in the full outer
	// row, so cells is always that outer row.
	Bind func(h *header.Header, cells []string) (any, error)
}

// candidateNames returns the configured candidates, falling back to the
// field's own Name.
func (f FieldBinder) candidateNames() []string {
	if len(f.Candidates) > 0 {
		return f.Candidates
	}
	return []string{f.Name}
}

// resolveColumn finds the first candidate present in h.
func (f FieldBinder) resolveColumn(h *header.Header) (string, bool) {
	for _, c := range f.candidateNames() {
		if h.IndexOf(c) >= 0 {
			return c, true
		}
	}
	return "", false
}

// Scalar builds a FieldBinder for a plain scalar column.
func Scalar[T any](name string, parse func(string) (T, error), candidates ...string) FieldBinder {
	return FieldBinder{
		Name:       name,
		Candidates: candidates,
		Bind: func(h *header.Header, cells []string) (any, error) {
			fb := FieldBinder{Name: name, Candidates: candidates}
			col, ok := fb.resolveColumn(h)
			if !ok {
				return nil, &tperr.Error{Kind: tperr.HeaderColumnMissing, Fragment: name}
			}
			cell, _ := h.Cell(cells, col)
			return parse(cell)
		},
	}
}

// OptionalScalar is like Scalar but substitutes an empty cell when the
// column is entirely missing from the header, instead of reporting
// HeaderColumnMissing.
func OptionalScalar[T any](name string, parse func(string) (T, error), candidates ...string) FieldBinder {
	return FieldBinder{
		Name:       name,
		Candidates: candidates,
		Optional:   true,
		Bind: func(h *header.Header, cells []string) (any, error) {
			fb := FieldBinder{Name: name, Candidates: candidates}
			col, ok := fb.resolveColumn(h)
			if !ok {
				return parse("")
			}
			cell, _ := h.Cell(cells, col)
			return parse(cell)
		},
	}
}

// Nested builds a FieldBinder for a field of record type T, namespaced
// under name: sub resolves its fields against h.Subheader(name), i.e. the
// columns named "name.<field>". The separator is always ".".
func Nested[T any](name string, sub *Parser[T]) FieldBinder {
	return FieldBinder{
		Name: name,
		Bind: func(h *header.Header, cells []string) (any, error) {
			return sub.parseAgainst(h.Subheader(name), cells)
		},
	}
}

// Parser is a composed record parser for R, built by New.
type Parser[R any] struct {
	fields []FieldBinder
	build  func(vals []any) (R, error)
}

// New composes fields into a Parser[R]. build receives the resolved
// field values in the same order as fields and assembles R.
func New[R any](build func(vals []any) (R, error), fields ...FieldBinder) *Parser[R] {
	return &Parser[R]{fields: fields, build: build}
}

// Parse resolves every field against h (the table's top-level header)
// and cells (one body row), then assembles R.
func (p *Parser[R]) Parse(h *header.Header, cells []string) (R, error) {
	return p.parseAgainst(h, cells)
}

func (p *Parser[R]) parseAgainst(h *header.Header, cells []string) (R, error) {
	vals := make([]any, len(p.fields))
	for i, f := range p.fields {
		v, err := f.Bind(h, cells)
		if err != nil {
			var zero R
			return zero, err
		}
		vals[i] = v
	}
	return p.build(vals)
}

// Arity reports the number of top-level fields this parser binds.
func (p *Parser[R]) Arity() int { return len(p.fields) }
