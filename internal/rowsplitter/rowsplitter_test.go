package rowsplitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rchillyard/tableparser/internal/dialect"
)

func TestSplitBasic(t *testing.T) {
	s := New(dialect.Default())

	cells, err := s.Split("1,hello,2.5")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "hello", "2.5"}, cells)
}

func TestSplitQuotedWithEscapedQuote(t *testing.T) {
	s := New(dialect.Default())

	cells, err := s.Split(`2,"he said ""hi""",3`)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", `he said "hi"`, "3"}, cells)
}

func TestSplitEmptyInput(t *testing.T) {
	s := New(dialect.Default())

	cells, err := s.Split("")
	require.NoError(t, err)
	assert.Equal(t, []string{""}, cells)
}

func TestSplitTrailingDelimiter(t *testing.T) {
	s := New(dialect.Default())

	cells, err := s.Split("a,")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", ""}, cells)
}

func TestSplitIncompleteRecord(t *testing.T) {
	s := New(dialect.Default().WithMultiline())

	_, err := s.Split(`"line1`)
	require.ErrorIs(t, err, ErrIncomplete)
}

func TestSplitMalformedQuoteFollowedByGarbage(t *testing.T) {
	s := New(dialect.Default())

	_, err := s.Split(`"ab"cd`)
	require.Error(t, err)
}
