package rowsplitter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rchillyard/tableparser/internal/dialect"
)

func TestSplitBlobLineAligns(t *testing.T) {
	blob := []byte("a,b\nc,d\ne,f\n")
	chunks := SplitBlob(blob, 5, dialect.Default())
	for _, c := range chunks {
		assert.True(t, len(c.Data) == 0 || c.Data[len(c.Data)-1] == '\n')
	}
	var total int
	for _, c := range chunks {
		total += len(c.Data)
	}
	assert.Equal(t, len(blob), total)
}

func TestSplitBlobSmallerThanChunkSizeIsOneChunk(t *testing.T) {
	blob := []byte("a,b\n")
	chunks := SplitBlob(blob, 1024, dialect.Default())
	assert.Len(t, chunks, 1)
	assert.Equal(t, blob, chunks[0].Data)
}

func TestChunkAmbiguousDetectsUnresolvedQuoteRun(t *testing.T) {
	d := dialect.Default()
	assert.True(t, ChunkAmbiguous([]byte(`"`), d))
	assert.False(t, ChunkAmbiguous([]byte(`a,b`), d))
	assert.False(t, ChunkAmbiguous([]byte(`"a",b`), d))
}
