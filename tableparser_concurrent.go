package tableparser

import (
	"bytes"
	"context"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rchillyard/tableparser/internal/header"
	"github.com/rchillyard/tableparser/internal/logging"
	"github.com/rchillyard/tableparser/internal/recordparse"
	"github.com/rchillyard/tableparser/internal/rowsplitter"
	"github.com/rchillyard/tableparser/table"
	"github.com/rchillyard/tableparser/tperr"
)

// ParseTableConcurrent is a bulk variant of ParseTable for inputs large
// enough that reading it whole and fanning the body out across
// goroutines (one per rowsplitter.Chunk, via errgroup) beats a single
// pass. chunkSize is the target chunk size in bytes; pass 0 to let
// SplitBlob choose a single chunk.
//
// Predicate is not honored here (row sampling needs a stable global
// sequence number, which a concurrent per-chunk pass can only assign
// after every chunk's line count is known; callers that need sampling
// should use ParseTable). Multiline fields and a chunk whose boundary
// the quote-ambiguity heuristic couldn't resolve (rowsplitter.Chunk.Ambiguous)
// both fall back to a single serial ParseTable pass over the whole
// input, since neither is safe to parse chunk-by-chunk in isolation.
func ParseTableConcurrent[R any](ctx context.Context, r io.Reader, cfg Config[R], p *recordparse.Parser[R], chunkSize int) (*table.Table[R], *tperr.Report, error) {
	blob, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, tperr.Wrap(err, "tableparser: reading input")
	}

	var h *header.Header
	body := blob
	if cfg.HasHeader {
		n := cfg.HeaderRowsToRead
		if n == 0 {
			n = 1
		}
		if n != 1 {
			return ParseTable(bytes.NewReader(blob), cfg, p)
		}
		idx := bytes.IndexByte(blob, '\n')
		headerLine := blob
		if idx >= 0 {
			headerLine = blob[:idx]
			body = blob[idx+1:]
		} else {
			body = nil
		}
		cells, err := rowsplitter.New(cfg.Dialect).Split(strings.TrimSuffix(string(headerLine), "\r"))
		if err != nil {
			return nil, nil, err
		}
		h, err = header.New(cells)
		if err != nil {
			return nil, nil, err
		}
	}

	if cfg.Dialect.AllowMultilineFields {
		return ParseTable(bytes.NewReader(blob), cfg, p)
	}

	chunks := rowsplitter.SplitBlob(body, chunkSize, cfg.Dialect)
	for _, c := range chunks {
		if c.Ambiguous {
			return ParseTable(bytes.NewReader(blob), cfg, p)
		}
	}

	bases := make([]int, len(chunks))
	seq := 0
	for i, c := range chunks {
		bases[i] = seq
		seq += countLines(c.Data)
	}

	rowsByChunk := make([][]R, len(chunks))
	reportsByChunk := make([]*tperr.Report, len(chunks))

	g, _ := errgroup.WithContext(ctx)
	for i, c := range chunks {
		i, c := i, c
		g.Go(func() error {
			rows, report, err := parseChunk(c.Data, bases[i], h, cfg, p)
			if err != nil {
				return err
			}
			rowsByChunk[i] = rows
			reportsByChunk[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	report := &tperr.Report{}
	var rows []R
	for i := range chunks {
		rows = append(rows, rowsByChunk[i]...)
		report.Rows = append(report.Rows, reportsByChunk[i].Rows...)
	}
	return table.New[R](h, rows), report, nil
}

func countLines(data []byte) int {
	n := bytes.Count(data, []byte{'\n'})
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n
}

func parseChunk[R any](data []byte, base int, h *header.Header, cfg Config[R], p *recordparse.Parser[R]) ([]R, *tperr.Report, error) {
	report := &tperr.Report{}
	var rows []R
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return rows, report, nil
	}
	split := rowsplitter.New(cfg.Dialect)
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		cells, err := split.Split(line)
		if err != nil {
			return nil, nil, err
		}
		seq := base + i
		rec, perr := p.Parse(h, cells)
		if perr != nil {
			te := asRowError(perr, seq)
			if !cfg.Forgiving {
				return nil, nil, te
			}
			report.Add(te)
			logging.RowDropped(cfg.logger(), seq, kindLabel(te), te)
			continue
		}
		rows = append(rows, rec)
	}
	return rows, report, nil
}
