// Package recordrender implements the record half of C6, dual to
// internal/recordparse: a RecordRenderer[R] emits a row of cell strings
// plus the column names those cells belong under, recursing into nested
// records with an accumulated dotted prefix.
package recordrender

// RecordRenderer is satisfied by *Renderer[R] and the Skip wrapper
// returned by NewSkip.
type RecordRenderer[R any] interface {
	// ColumnNames returns this record's column names, each qualified by
	// prefix (joined with "." when prefix is non-empty).
	ColumnNames(prefix string) []string
	// Render returns the pre-quoting cell strings for v, in the same
	// order as ColumnNames.
	Render(v R) []string
}

// FieldRenderer binds one field's column-name and cell-string
// production.
type FieldRenderer[R any] struct {
	Name    string
	columns func(prefix string) []string
	cells   func(v R) []string
}

func joinName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// Scalar builds a FieldRenderer for a single scalar column, reading the
// field's value out of R via accessor and rendering it with render.
func Scalar[R, T any](name string, accessor func(R) T, render func(T) string) FieldRenderer[R] {
	return FieldRenderer[R]{
		Name: name,
		columns: func(prefix string) []string {
			return []string{joinName(prefix, name)}
		},
		cells: func(v R) []string {
			return []string{render(accessor(v))}
		},
	}
}

// Nested builds a FieldRenderer for a field of record type S, delegating
// column-name and cell production to sub with an extended prefix.
func Nested[R, S any](name string, accessor func(R) S, sub RecordRenderer[S]) FieldRenderer[R] {
	return FieldRenderer[R]{
		Name: name,
		columns: func(prefix string) []string {
			return sub.ColumnNames(joinName(prefix, name))
		},
		cells: func(v R) []string {
			return sub.Render(accessor(v))
		},
	}
}

// Renderer is the standard RecordRenderer built from an ordered list of
// FieldRenderers.
type Renderer[R any] struct {
	fields []FieldRenderer[R]
}

// New composes fields into a Renderer[R].
func New[R any](fields ...FieldRenderer[R]) *Renderer[R] {
	return &Renderer[R]{fields: fields}
}

// ColumnNames implements RecordRenderer.
func (r *Renderer[R]) ColumnNames(prefix string) []string {
	var out []string
	for _, f := range r.fields {
		out = append(out, f.columns(prefix)...)
	}
	return out
}

// Render implements RecordRenderer.
func (r *Renderer[R]) Render(v R) []string {
	var out []string
	for _, f := range r.fields {
		out = append(out, f.cells(v)...)
	}
	return out
}

// skipRenderer emits the same cell/column count as the renderer it
// wraps, but every column name and cell value is empty, keeping a
// partial projection positionally aligned with a full-schema reader.
type skipRenderer[R any] struct {
	n int
}

// NewSkip builds the skip variant of inner: same width, empty names and
// values.
func NewSkip[R any](inner RecordRenderer[R]) RecordRenderer[R] {
	return &skipRenderer[R]{n: len(inner.ColumnNames(""))}
}

func (s *skipRenderer[R]) ColumnNames(prefix string) []string {
	return make([]string, s.n)
}

func (s *skipRenderer[R]) Render(v R) []string {
	return make([]string, s.n)
}
