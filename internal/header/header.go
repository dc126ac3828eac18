// Package header implements C4, the header model: an ordered list of
// column names, possibly joined from several physical header rows.
package header

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/rchillyard/tableparser/tperr"
)

// Header is an ordered, immutable sequence of joined column names. Each
// name at position i refers to cell index origIndex[i] in any row
// produced against the *original* (top-level) header — Subheader narrows
// the name list but keeps this mapping so nested-record field resolution
// still extracts from the right cell of the outer row.
type Header struct {
	names     []string
	origIndex []int
	index     map[string]int
	fold      bool
}

// New builds a flat header directly from already-joined names. A
// duplicate non-blank name is rejected with HeaderShapeMismatch; repeated
// blank names are allowed, and a lookup of "" resolves to the first one.
func New(names []string, opts ...Option) (*Header, error) {
	origIndex := make([]int, len(names))
	for i := range names {
		origIndex[i] = i
	}
	return newIndexed(names, origIndex, opts...)
}

func newIndexed(names []string, origIndex []int, opts ...Option) (*Header, error) {
	h := &Header{names: append([]string(nil), names...), origIndex: append([]int(nil), origIndex...)}
	for _, opt := range opts {
		opt(h)
	}
	h.index = make(map[string]int, len(h.names))
	seen := make(map[string]bool, len(h.names))
	for i, n := range h.names {
		key := h.key(n)
		if n != "" {
			if seen[key] {
				return nil, &tperr.Error{Kind: tperr.HeaderShapeMismatch, Fragment: n}
			}
			seen[key] = true
		}
		if _, ok := h.index[key]; !ok {
			h.index[key] = i
		}
	}
	return h, nil
}

// Option configures Header construction.
type Option func(*Header)

// WithFold enables case-insensitive lookup, layered over the default
// exact-match behavior.
func WithFold() Option {
	return func(h *Header) { h.fold = true }
}

var folder = cases.Fold()

func (h *Header) key(name string) string {
	if h.fold {
		return folder.String(name)
	}
	return name
}

// FromRows joins N physical header rows positionally with sep, skipping
// blank tokens rather than treating them as empty components. All rows
// must have equal length.
func FromRows(rows [][]string, sep string, opts ...Option) (*Header, error) {
	if len(rows) == 0 {
		return New(nil, opts...)
	}
	width := len(rows[0])
	for _, r := range rows {
		if len(r) != width {
			return nil, &tperr.Error{Kind: tperr.HeaderShapeMismatch, Fragment: "unequal header row lengths"}
		}
	}
	names := make([]string, width)
	for col := 0; col < width; col++ {
		var parts []string
		for _, r := range rows {
			if r[col] != "" {
				parts = append(parts, r[col])
			}
		}
		names[col] = strings.Join(parts, sep)
	}
	return New(names, opts...)
}

// Names returns the joined column names in order.
func (h *Header) Names() []string {
	return append([]string(nil), h.names...)
}

// Len reports the header's arity.
func (h *Header) Len() int { return len(h.names) }

// IndexOf returns the *original row* cell position of name, or -1 if
// absent. On a Subheader this is still the index into the outer row,
// not a position within the subset.
func (h *Header) IndexOf(name string) int {
	if i, ok := h.index[h.key(name)]; ok {
		return h.origIndex[i]
	}
	return -1
}

// Cell extracts the cell bound to name from cells (a full outer row),
// reporting whether name was found.
func (h *Header) Cell(cells []string, name string) (string, bool) {
	i := h.IndexOf(name)
	if i < 0 || i >= len(cells) {
		return "", false
	}
	return cells[i], true
}

// Subheader returns the header restricted to columns whose joined name
// starts with "prefix.", with that prefix stripped — used to rebind a
// nested record's view of the header. Lookups against the result still
// resolve to positions in the original outer row.
func (h *Header) Subheader(prefix string) *Header {
	full := prefix + "."
	var names []string
	var origIndex []int
	for i, n := range h.names {
		if strings.HasPrefix(n, full) {
			names = append(names, strings.TrimPrefix(n, full))
			origIndex = append(origIndex, h.origIndex[i])
		}
	}
	sub, _ := newIndexed(names, origIndex, h.optsCopy()...)
	return sub
}

func (h *Header) optsCopy() []Option {
	if h.fold {
		return []Option{WithFold()}
	}
	return nil
}
