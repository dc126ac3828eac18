// Package tableparser ties the row splitter, header model, record
// parser/renderer, table container, and encryption transport into the
// public parse/render entry points described by the Configuration
// surface (hasHeader, headerRowsToRead, predicate, forgiving,
// multiline/delimiter/quote/escapeStyle via Dialect, and the
// encrypted-mode fields).
package tableparser

import (
	"errors"
	"io"
	"strings"

	"github.com/rchillyard/tableparser/crypt"
	"github.com/rchillyard/tableparser/internal/dialect"
	"github.com/rchillyard/tableparser/internal/header"
	"github.com/rchillyard/tableparser/internal/logging"
	"github.com/rchillyard/tableparser/internal/recordparse"
	"github.com/rchillyard/tableparser/internal/recordrender"
	"github.com/rchillyard/tableparser/internal/rowsplitter"
	"github.com/rchillyard/tableparser/internal/serialize"
	"github.com/rchillyard/tableparser/table"
	"github.com/rchillyard/tableparser/tperr"
)

// Config gathers the Configuration surface for one parse/render run
// over record type R.
type Config[R any] struct {
	Dialect          dialect.Dialect
	HasHeader        bool
	HeaderRowsToRead int
	// Predicate samples rows by their 0-based sequence number; nil means
	// every row is kept.
	Predicate func(seq int) bool
	// Forgiving, when true, drops and logs a row whose record parse fails
	// (a cell conversion or a missing column) instead of aborting the
	// whole parse. A row the splitter rejects still aborts the parse.
	Forgiving bool
	Logger    logging.Logger

	// EncryptionPredicate, KeyMap, and Cipher are read only by
	// ParseEncryptedTable (which requires all three and decrypts the rows
	// whose row-id satisfies EncryptionPredicate) and RenderEncryptedTable
	// (which uses Cipher and KeyMap); ParseTable and RenderTable ignore them.
	EncryptionPredicate func(rowID string) bool
	KeyMap              crypt.KeyMap
	Cipher              *crypt.Cipher
	// HasKey extracts the row-identifier from a typed record, used by
	// the render path to build the outer (row-id, payload) pair.
	HasKey func(R) string
}

// DefaultConfig returns the reference configuration: one header row,
// no row sampling, fail-fast, default dialect, no encryption.
func DefaultConfig[R any]() Config[R] {
	return Config[R]{
		Dialect:          dialect.Default(),
		HasHeader:        true,
		HeaderRowsToRead: 1,
		Logger:           logging.Standard(),
	}
}

func (c Config[R]) logger() logging.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.Standard()
}

// nextLine wraps LineSource.NextLine, normalizing the shape where the
// final line of a stream lacking a trailing newline is returned
// together with io.EOF: such a line still carries data and is reported
// here as a valid (not-done) line, with true end-of-stream only
// reported once the source has nothing left at all.
func nextLine(src *rowsplitter.LineSource) (line string, done bool, err error) {
	line, err = src.NextLine()
	if err == nil {
		return line, false, nil
	}
	if err == io.EOF {
		if line == "" {
			return "", true, nil
		}
		return line, false, nil
	}
	return "", false, err
}

// readHeaderRows reads HeaderRowsToRead physical lines and builds a
// Header from them, joining multi-row headers with Dialect.HeaderNameSep.
func readHeaderRows(src *rowsplitter.LineSource, split *rowsplitter.Splitter, n int, sep string) (*header.Header, error) {
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		line, done, err := nextLine(src)
		if err != nil {
			return nil, tperr.Wrap(err, "tableparser: reading header row")
		}
		if done {
			return nil, tperr.New(tperr.HeaderShapeMismatch, "tableparser: stream ended before header rows read", nil)
		}
		cells, err := split.Split(line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, cells)
	}
	return header.FromRows(rows, sep)
}

// readLogicalRow reads one logical row, transparently joining
// continuation lines when the splitter reports ErrIncomplete and
// Dialect.AllowMultilineFields is set; otherwise an incomplete record at
// end of input becomes UnterminatedRecord. The second return value
// reports true once the stream is exhausted.
func readLogicalRow(src *rowsplitter.LineSource, split *rowsplitter.Splitter, d dialect.Dialect) ([]string, bool, error) {
	line, done, err := nextLine(src)
	if err != nil || done {
		return nil, done, err
	}
	for {
		cells, splitErr := split.Split(line)
		if splitErr == nil {
			return cells, false, nil
		}
		if !errors.Is(splitErr, rowsplitter.ErrIncomplete) || !d.AllowMultilineFields {
			if errors.Is(splitErr, rowsplitter.ErrIncomplete) {
				return nil, false, tperr.New(tperr.UnterminatedRecord, line, splitErr)
			}
			return nil, false, splitErr
		}
		next, nextDone, nextErr := nextLine(src)
		if nextErr != nil || nextDone {
			return nil, false, tperr.New(tperr.UnterminatedRecord, line, nextErr)
		}
		line = line + "\n" + next
	}
}

// ParseTable reads a plaintext delimited document from r, parsing each
// body row against p into a Table[R].
func ParseTable[R any](r io.Reader, cfg Config[R], p *recordparse.Parser[R]) (*table.Table[R], *tperr.Report, error) {
	src := rowsplitter.NewLineSource(r)
	split := rowsplitter.New(cfg.Dialect)

	var h *header.Header
	if cfg.HasHeader {
		n := cfg.HeaderRowsToRead
		if n == 0 {
			n = 1
		}
		var err error
		h, err = readHeaderRows(src, split, n, cfg.Dialect.HeaderNameSep)
		if err != nil {
			return nil, nil, err
		}
	}

	report := &tperr.Report{}
	var rows []R
	seq := 0
	for {
		cells, done, err := readLogicalRow(src, split, cfg.Dialect)
		if err != nil {
			return nil, nil, err
		}
		if done {
			break
		}
		if cfg.Predicate != nil && !cfg.Predicate(seq) {
			seq++
			continue
		}
		rec, perr := p.Parse(h, cells)
		if perr != nil {
			te := asRowError(perr, seq)
			if !cfg.Forgiving {
				return nil, nil, te
			}
			report.Add(te)
			logging.RowDropped(cfg.logger(), seq, kindLabel(te), te)
			seq++
			continue
		}
		rows = append(rows, rec)
		seq++
	}
	return table.New[R](h, rows), report, nil
}

// ParseEncryptedTable reads the outer (row-id,payload) document,
// decrypting and re-tokenizing the inner plaintext record of every row
// selected by cfg.EncryptionPredicate, then parsing it against p. The
// decryption key for each row is looked up in cfg.KeyMap by that row's
// plaintext row-id (the outer document's first cell), not by its
// position in the stream.
func ParseEncryptedTable[R any](r io.Reader, cfg Config[R], p *recordparse.Parser[R]) (*table.Table[R], error) {
	if cfg.EncryptionPredicate == nil || cfg.Cipher == nil || cfg.KeyMap == nil {
		return nil, errors.New("tableparser: encrypted parse requires EncryptionPredicate, Cipher, and KeyMap")
	}
	src := rowsplitter.NewLineSource(r)
	outer := rowsplitter.New(cfg.Dialect)
	inner := rowsplitter.New(cfg.Dialect)

	var h *header.Header
	if cfg.HasHeader {
		n := cfg.HeaderRowsToRead
		if n == 0 {
			n = 1
		}
		var err error
		h, err = readHeaderRows(src, outer, n, cfg.Dialect.HeaderNameSep)
		if err != nil {
			return nil, err
		}
	}

	var rows []R
	seq := 0
	for {
		line, done, err := nextLine(src)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		outerCells, err := outer.Split(line)
		if err != nil {
			return nil, err
		}
		if len(outerCells) != 2 {
			return nil, tperr.New(tperr.MalformedRecord, line, nil).WithSeq(seq)
		}
		rowID, payload := outerCells[0], outerCells[1]
		if !cfg.EncryptionPredicate(rowID) {
			seq++
			continue
		}
		key, ok := cfg.KeyMap.KeyFor(rowID)
		if !ok {
			return nil, tperr.New(tperr.KeyNotFound, rowID, nil).WithSeq(seq)
		}
		plain, err := cfg.Cipher.Decrypt(key, payload)
		if err != nil {
			return nil, tperr.Wrap(err, "tableparser: decrypting row")
		}
		innerCells, err := inner.Split(plain)
		if err != nil {
			return nil, err
		}
		rec, err := p.Parse(h, innerCells)
		if err != nil {
			return nil, asRowError(err, seq)
		}
		rows = append(rows, rec)
		seq++
	}
	return table.New[R](h, rows), nil
}

// RenderTable writes t to w as a plaintext delimited document.
func RenderTable[R any](w io.Writer, t *table.Table[R], cfg Config[R], rr recordrender.RecordRenderer[R]) error {
	sw := serialize.New[R](w, cfg.Dialect, rr)
	return sw.WriteTable(t)
}

// RenderEncryptedTable writes t as the outer document: an unencrypted
// header row naming the *inner* record's columns (so a later
// ParseEncryptedTable call can resolve field names against it), followed
// by one 2-cell (row-id,payload) body row per record, each rendered via
// rr to its plaintext inner record, encrypted under a fresh IV, and
// paired with its row-id (from cfg.HasKey).
func RenderEncryptedTable[R any](w io.Writer, t *table.Table[R], cfg Config[R], rr recordrender.RecordRenderer[R]) error {
	if cfg.Cipher == nil || cfg.KeyMap == nil || cfg.HasKey == nil {
		return errors.New("tableparser: encrypted render requires Cipher, KeyMap, and HasKey")
	}
	if cfg.HasHeader {
		if err := writeLine(w, cfg.Dialect, rr.ColumnNames("")); err != nil {
			return err
		}
	}
	for seq, row := range t.Rows() {
		rowID := cfg.HasKey(row)
		cells := rr.Render(row)
		plain := joinCells(cells, cfg.Dialect)
		key, ok := cfg.KeyMap.KeyFor(rowID)
		if !ok {
			return tperr.New(tperr.KeyNotFound, rowID, nil).WithSeq(seq)
		}
		payload, err := cfg.Cipher.Encrypt(key, plain)
		if err != nil {
			return err
		}
		if err := writeLine(w, cfg.Dialect, []string{rowID, payload}); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, d dialect.Dialect, cells []string) error {
	_, err := io.WriteString(w, joinCells(cells, d)+d.LineTerminator)
	return err
}

func joinCells(cells []string, d dialect.Dialect) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if d.NeedsQuoting(c) {
			q := string(d.Quote)
			c = q + strings.ReplaceAll(c, q, q+q) + q
		}
		out[i] = c
	}
	return strings.Join(out, string(d.Delimiter))
}

func asRowError(err error, seq int) *tperr.Error {
	var te *tperr.Error
	if errors.As(err, &te) {
		return te.WithSeq(seq)
	}
	return tperr.New(tperr.CellConversion, err.Error(), err).WithSeq(seq)
}

func kindLabel(err *tperr.Error) string {
	return err.Kind.String()
}
