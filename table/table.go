// Package table implements C5, the table container: an immutable
// header plus an ordered, finite sequence of rows, with pure transform
// operations (map, filter, concat) that never mutate their input.
package table

import (
	"github.com/k0kubun/pp/v3"

	"github.com/rchillyard/tableparser/internal/header"
	"github.com/rchillyard/tableparser/tperr"
)

// Row is the generic (untyped) row shape: an ordered sequence of cells
// plus the 0-based sequence number assigned at parse time, with lookup
// by column name via the table's header.
type Row struct {
	Cells []string
	Seq   int
	h     *header.Header
}

// NewRow builds a Row bound to h.
func NewRow(h *header.Header, seq int, cells []string) Row {
	return Row{Cells: cells, Seq: seq, h: h}
}

// ByName looks up a cell by column name, reporting whether it was found.
func (r Row) ByName(name string) (string, bool) {
	if r.h == nil {
		return "", false
	}
	return r.h.Cell(r.Cells, name)
}

// Table owns an optional header plus a finite, ordered sequence of rows
// of type R (either Row or a typed record). The zero value is not
// useful; build one with New.
type Table[R any] struct {
	h    *header.Header
	rows []R
}

// New builds a Table from h (nil for headerless tables) and rows. rows
// is copied so later mutation of the caller's slice cannot affect the
// Table.
func New[R any](h *header.Header, rows []R) *Table[R] {
	cp := append([]R(nil), rows...)
	return &Table[R]{h: h, rows: cp}
}

// Header returns the table's header, or nil if headerless.
func (t *Table[R]) Header() *header.Header { return t.h }

// Rows returns a copy of the table's rows in order.
func (t *Table[R]) Rows() []R { return append([]R(nil), t.rows...) }

// Size reports the number of rows.
func (t *Table[R]) Size() int { return len(t.rows) }

// Head returns the first row, if any.
func (t *Table[R]) Head() (R, bool) {
	var zero R
	if len(t.rows) == 0 {
		return zero, false
	}
	return t.rows[0], true
}

// Take returns a new Table containing at most the first n rows.
func (t *Table[R]) Take(n int) *Table[R] {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	if n < 0 {
		n = 0
	}
	return New(t.h, t.rows[:n])
}

// Iter returns a pull-style iterator: repeated calls yield successive
// rows until the second return value is false.
func (t *Table[R]) Iter() func() (R, bool) {
	i := 0
	return func() (R, bool) {
		var zero R
		if i >= len(t.rows) {
			return zero, false
		}
		r := t.rows[i]
		i++
		return r, true
	}
}

// Filter keeps rows for which predicate returns true, preserving header
// and original row order/identity (sequence numbers on Row values are
// untouched since Filter never renumbers).
func (t *Table[R]) Filter(predicate func(R) bool) *Table[R] {
	var out []R
	for _, r := range t.rows {
		if predicate(r) {
			out = append(out, r)
		}
	}
	return New(t.h, out)
}

// Map applies f to every row, preserving arity and header (same-type
// transforms are always "header compatible").
func (t *Table[R]) Map(f func(R) R) *Table[R] {
	out := make([]R, len(t.rows))
	for i, r := range t.rows {
		out[i] = f(r)
	}
	return New(t.h, out)
}

// MapOptional applies f to every row, keeping the header, and compacts
// away rows for which f reports false.
func (t *Table[R]) MapOptional(f func(R) (R, bool)) *Table[R] {
	var out []R
	for _, r := range t.rows {
		if v, ok := f(r); ok {
			out = append(out, v)
		}
	}
	return New(t.h, out)
}

// Concat appends other's rows after t's, requiring both tables to share
// a header (by column names) or both be headerless.
func (t *Table[R]) Concat(other *Table[R]) (*Table[R], error) {
	if !sameHeader(t.h, other.h) {
		return nil, &tperr.Error{Kind: tperr.HeaderShapeMismatch, Fragment: "concat: incompatible headers"}
	}
	out := make([]R, 0, len(t.rows)+len(other.rows))
	out = append(out, t.rows...)
	out = append(out, other.rows...)
	h := t.h
	if h == nil {
		h = other.h
	}
	return New(h, out), nil
}

func sameHeader(a, b *header.Header) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, bn := a.Names(), b.Names()
	if len(an) != len(bn) {
		return false
	}
	for i := range an {
		if an[i] != bn[i] {
			return false
		}
	}
	return true
}

// Debug pretty-prints the table for ad hoc inspection; never used by the
// parse/render pipeline itself.
func (t *Table[R]) Debug() string {
	return pp.Sprint(t.rows)
}

// MapTo applies f across every row of t, producing a Table of a
// different row type. Because the row type changes, there is no general
// way to decide whether the old header still describes the new rows, so
// the result is always headerless; same-type maps (Table[R].Map) keep
// the header since nothing about its shape could have changed.
func MapTo[R, S any](t *Table[R], f func(R) S) *Table[S] {
	out := make([]S, len(t.rows))
	for i, r := range t.rows {
		out[i] = f(r)
	}
	return New[S](nil, out)
}

// MapOptionalTo is MapTo's compacting, cross-type counterpart.
func MapOptionalTo[R, S any](t *Table[R], f func(R) (S, bool)) *Table[S] {
	var out []S
	for _, r := range t.rows {
		if v, ok := f(r); ok {
			out = append(out, v)
		}
	}
	return New[S](nil, out)
}

// FilterByKey extracts a key from each row and keeps the row iff
// predicate(key) holds.
func FilterByKey[R any, K any](t *Table[R], keyOf func(R) K, predicate func(K) bool) *Table[R] {
	var out []R
	for _, r := range t.rows {
		if predicate(keyOf(r)) {
			out = append(out, r)
		}
	}
	return New(t.h, out)
}
