// Package dialect holds the lexical options shared by the row splitter,
// the renderers, and the serializer: delimiter, quote, escape style, and
// the multiline/whitespace toggles that govern how a physical line is
// split into cells and how a cell is later re-quoted.
package dialect

import "regexp"

// EscapeStyle enumerates how a literal quote is represented inside a
// quoted field. Only double-quote doubling is supported, matching the
// spec's single enumerated mode; the type exists so a caller's dialect
// struct documents the choice instead of leaving it implicit.
type EscapeStyle int

const (
	// DoubleQuote escapes an embedded quote by doubling it: `""`.
	DoubleQuote EscapeStyle = iota
)

// Dialect is the set of lexical options governing one CSV-family
// document. The zero value is not valid; start from Default().
type Dialect struct {
	Delimiter             byte
	Quote                 byte
	Escape                EscapeStyle
	AllowMultilineFields  bool
	TrimLeadingWhitespace bool
	CellPattern           *regexp.Regexp
	// HeaderNameSep joins physical header rows into one qualified column
	// name; default ".".
	HeaderNameSep string
	// NestedSep splits/joins a Sequence[T] cell; default "|".
	NestedSep byte
	// LineTerminator is emitted by the serializer between records.
	LineTerminator string
}

// Default returns the reference dialect: comma-delimited, double-quote
// quoted, no multiline, "." header-name joiner, "|" nested-sequence
// separator, "\n" line terminator.
func Default() Dialect {
	return Dialect{
		Delimiter:      ',',
		Quote:          '"',
		Escape:         DoubleQuote,
		HeaderNameSep:  ".",
		NestedSep:      '|',
		LineTerminator: "\n",
	}
}

// WithMultiline returns a copy of d with multiline quoted fields enabled.
func (d Dialect) WithMultiline() Dialect {
	d.AllowMultilineFields = true
	return d
}

// WithDelimiter returns a copy of d using the given field delimiter.
func (d Dialect) WithDelimiter(c byte) Dialect {
	d.Delimiter = c
	return d
}

// WithQuote returns a copy of d using the given quote character.
func (d Dialect) WithQuote(c byte) Dialect {
	d.Quote = c
	return d
}

// WithTrimLeadingWhitespace returns a copy of d with leading-whitespace
// trimming of unquoted cells enabled.
func (d Dialect) WithTrimLeadingWhitespace() Dialect {
	d.TrimLeadingWhitespace = true
	return d
}

// WithCellPattern returns a copy of d that rejects unquoted cells not
// matching re. The pattern is never applied to quoted cells.
func (d Dialect) WithCellPattern(re *regexp.Regexp) Dialect {
	d.CellPattern = re
	return d
}

// NeedsQuoting reports whether cell must be wrapped in quotes under d:
// iff it contains the delimiter, the quote character, or any newline.
func (d Dialect) NeedsQuoting(cell string) bool {
	for i := 0; i < len(cell); i++ {
		switch cell[i] {
		case d.Delimiter, d.Quote, '\n', '\r':
			return true
		}
	}
	return false
}
