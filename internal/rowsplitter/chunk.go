package rowsplitter

import "github.com/rchillyard/tableparser/internal/dialect"

// SplitBlob partitions a blob into worker-sized byte ranges for parallel
// parsing. Because a chunk boundary can fall inside a quoted field, each
// chunk is classified Ambiguous or Unambiguous using a quote/delimiter
// adjacency heuristic (QO/OQ pattern detection, below) that looks at
// whether a quote byte near the boundary can only be a field-opening or
// field-closing quote; a chunk flagged Ambiguous tells the caller it
// cannot trust where the boundary falls relative to quoting and should
// fall back to a serial pass.

// prefixWindow bounds how far into a chunk the ambiguity scan looks
// before accepting the boundary as resolvable.
const prefixWindow = 64 * 1024

// quoteOutsidePattern reports whether any quote byte in window is
// immediately followed by something other than another quote, the
// delimiter, or a newline (a "QO" pattern) — which can only happen when
// that quote opens a field, i.e. the scan was outside a quoted region
// up to that point.
func quoteOutsidePattern(window []byte, d dialect.Dialect) bool {
	for i := 0; i < len(window)-1; i++ {
		if window[i] != d.Quote {
			continue
		}
		next := window[i+1]
		if next != d.Quote && next != d.Delimiter && next != '\n' {
			return true
		}
	}
	return false
}

// outsideQuotePattern is quoteOutsidePattern's mirror: a quote
// immediately preceded by something other than another quote, the
// delimiter, or a newline (an "OQ" pattern) can only occur when that
// quote closes a field, i.e. the scan was inside a quoted region up to
// that point.
func outsideQuotePattern(window []byte, d dialect.Dialect) bool {
	for i := 1; i < len(window); i++ {
		if window[i] != d.Quote {
			continue
		}
		prev := window[i-1]
		if prev != d.Quote && prev != d.Delimiter && prev != '\n' {
			return true
		}
	}
	return false
}

// ChunkAmbiguous reports whether window contains a quote character but
// neither a QO nor an OQ pattern resolves whether byte 0 starts inside
// or outside a quoted field — meaning a parser must not trust this
// chunk's boundary and should fall back to a serial pass.
func ChunkAmbiguous(window []byte, d dialect.Dialect) bool {
	hasQuote := false
	for _, b := range window {
		if b == d.Quote {
			hasQuote = true
			break
		}
	}
	if !hasQuote {
		return false
	}
	return !quoteOutsidePattern(window, d) && !outsideQuotePattern(window, d)
}

// Chunk is one line-aligned slice of a larger input blob.
type Chunk struct {
	Part      int
	Data      []byte
	Ambiguous bool
}

// SplitBlob partitions blob into chunks of approximately chunkSize
// bytes, extending each boundary forward to the next newline so no
// chunk starts mid-record, and flagging any chunk whose boundary
// region the quote heuristic couldn't resolve.
func SplitBlob(blob []byte, chunkSize int, d dialect.Dialect) []Chunk {
	if chunkSize <= 0 || chunkSize >= len(blob) {
		if len(blob) == 0 {
			return nil
		}
		return []Chunk{{Part: 0, Data: blob}}
	}
	var chunks []Chunk
	start := 0
	part := 0
	for start < len(blob) {
		end := start + chunkSize
		if end >= len(blob) {
			end = len(blob)
		} else {
			for end < len(blob) && blob[end] != '\n' {
				end++
			}
			if end < len(blob) {
				end++
			}
		}
		window := blob[start:end]
		prefixLen := len(window)
		if prefixLen > prefixWindow {
			prefixLen = prefixWindow
		}
		chunks = append(chunks, Chunk{
			Part:      part,
			Data:      window,
			Ambiguous: ChunkAmbiguous(window[:prefixLen], d),
		})
		start = end
		part++
	}
	return chunks
}
