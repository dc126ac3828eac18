// Package rowsplitter implements the lexical row splitter: it turns one
// logical input line into an ordered sequence of cells, honoring quoting,
// embedded delimiters/newlines, and signaling an incomplete record when a
// quoted field isn't closed before end of input.
//
// LineSource sizes its read-ahead buffer off the CPU's actual L1 data
// cache geometry via klauspost/cpuid/v2 rather than an arbitrary literal.
package rowsplitter

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/klauspost/cpuid/v2"

	"github.com/rchillyard/tableparser/internal/dialect"
	"github.com/rchillyard/tableparser/tperr"
)

// ErrIncomplete signals that the input ended while still inside a quoted
// field. It is not itself a user-facing failure: a driver with
// AllowMultilineFields set should append the next physical line (joined
// by '\n') and retry; a driver without it should treat this as
// tperr.UnterminatedRecord.
var ErrIncomplete = errors.New("rowsplitter: incomplete record")

// Splitter tokenizes logical lines under one fixed Dialect.
type Splitter struct {
	d dialect.Dialect
}

// New builds a Splitter for the given dialect.
func New(d dialect.Dialect) *Splitter {
	return &Splitter{d: d}
}

// Split tokenizes one logical line into cells. It returns ErrIncomplete
// (with a nil cell slice) when the line ends inside an unclosed quoted
// field; the caller decides whether that's recoverable.
func (s *Splitter) Split(line string) ([]string, error) {
	d := s.d
	var cells []string
	var wasQuoted []bool
	var cur strings.Builder

	outside := true
	atCellStart := true
	quotedCell := false
	afterCloseQuote := false

	flush := func() {
		cells = append(cells, cur.String())
		wasQuoted = append(wasQuoted, quotedCell)
		cur.Reset()
		atCellStart = true
		quotedCell = false
		afterCloseQuote = false
	}

	i := 0
	n := len(line)
	for i < n {
		c := line[i]

		if outside {
			if atCellStart && !quotedCell && d.TrimLeadingWhitespace && (c == ' ' || c == '\t') {
				i++
				continue
			}
			if afterCloseQuote {
				if c == d.Delimiter {
					flush()
					i++
					continue
				}
				return nil, &tperr.Error{Kind: tperr.MalformedRecord, Seq: -1, Fragment: line}
			}
			if atCellStart && c == d.Quote {
				outside = false
				quotedCell = true
				atCellStart = false
				i++
				continue
			}
			if c == d.Delimiter {
				flush()
				i++
				continue
			}
			cur.WriteByte(c)
			atCellStart = false
			i++
			continue
		}

		// Inside a quoted field.
		if c == d.Quote {
			if i+1 < n && line[i+1] == d.Quote {
				cur.WriteByte(d.Quote)
				i += 2
				continue
			}
			outside = true
			afterCloseQuote = true
			i++
			continue
		}
		cur.WriteByte(c)
		i++
	}

	if !outside {
		return nil, ErrIncomplete
	}

	flush()

	if err := s.validate(cells, wasQuoted, line); err != nil {
		return nil, err
	}
	return cells, nil
}

// validate applies CellPattern to unquoted cells only: a quoted cell has
// already had its delimiters escaped away by the scanner above and is
// never checked against the pattern.
func (s *Splitter) validate(cells []string, wasQuoted []bool, line string) error {
	if s.d.CellPattern == nil {
		return nil
	}
	for i, cell := range cells {
		if wasQuoted[i] {
			continue
		}
		if !s.d.CellPattern.MatchString(cell) {
			return &tperr.Error{Kind: tperr.MalformedRecord, Seq: -1, Fragment: line}
		}
	}
	return nil
}

// bufSize picks a read-ahead buffer size from the CPU's L1 data cache
// geometry, falling back to a conservative default when cpuid can't
// determine it (virtualized or unrecognized CPUs report -1).
func bufSize() int {
	const fallback = 16 * 1024
	l1d := cpuid.CPU.Cache.L1D
	if l1d <= 0 {
		return fallback
	}
	// Read four L1D cache sizes ahead at a time.
	size := l1d * 4
	if size < fallback {
		return fallback
	}
	return size
}

// LineSource yields logical physical lines (newline-stripped) from an
// underlying stream, for consumption by a record driver.
type LineSource struct {
	r *bufio.Reader
}

// NewLineSource wraps r with a cache-aware read-ahead buffer.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: bufio.NewReaderSize(r, bufSize())}
}

// NextLine returns the next physical line with its trailing newline
// removed, or ("", io.EOF) when the stream is exhausted. A final line
// with no trailing newline is returned together with io.EOF.
func (ls *LineSource) NextLine() (string, error) {
	line, err := ls.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", tperr.Wrap(err, "LineSource.NextLine")
	}
	if line == "" && err == io.EOF {
		return "", io.EOF
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if err == io.EOF {
		return line, io.EOF
	}
	return line, nil
}
