// Package serialize implements C7: driving a RecordRenderer over a
// table.Table to produce a full delimited-text document (header line(s)
// plus one line per row), honoring the shared dialect's delimiter,
// quote, and line terminator.
package serialize

import (
	"io"
	"strings"

	"github.com/rchillyard/tableparser/internal/dialect"
	"github.com/rchillyard/tableparser/internal/recordrender"
	"github.com/rchillyard/tableparser/table"
)

// Writer drives a RecordRenderer[R] to serialize a table.Table[R] to an
// io.Writer under d.
type Writer[R any] struct {
	W io.Writer
	D dialect.Dialect
	R recordrender.RecordRenderer[R]
}

// New builds a Writer.
func New[R any](w io.Writer, d dialect.Dialect, r recordrender.RecordRenderer[R]) *Writer[R] {
	return &Writer[R]{W: w, D: d, R: r}
}

// WriteTable writes one header line (from R's ColumnNames) followed by
// one line per row, quoting a cell iff it contains the delimiter, the
// quote character, or any newline, and doubling a contained quote.
func (w *Writer[R]) WriteTable(t *table.Table[R]) error {
	if err := w.writeLine(w.R.ColumnNames("")); err != nil {
		return err
	}
	for _, row := range t.Rows() {
		if err := w.writeLine(w.R.Render(row)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer[R]) writeLine(cells []string) error {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = w.quoteCell(c)
	}
	line := strings.Join(quoted, string(w.D.Delimiter)) + w.D.LineTerminator
	_, err := io.WriteString(w.W, line)
	return err
}

func (w *Writer[R]) quoteCell(cell string) string {
	if !w.D.NeedsQuoting(cell) {
		return cell
	}
	q := string(w.D.Quote)
	escaped := strings.ReplaceAll(cell, q, q+q)
	return q + escaped + q
}

// RenderDocument is a convenience that serializes t to a string.
func RenderDocument[R any](t *table.Table[R], d dialect.Dialect, r recordrender.RecordRenderer[R]) (string, error) {
	var sb strings.Builder
	w := New[R](&sb, d, r)
	if err := w.WriteTable(t); err != nil {
		return "", err
	}
	return sb.String(), nil
}
