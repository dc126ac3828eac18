package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rchillyard/tableparser/internal/dialect"
)

func TestCSVToMapsBasic(t *testing.T) {
	doc := "id,name\n1,alice\n2,bob\n"
	rows, err := csvToMaps(strings.NewReader(doc), dialect.Default())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "alice", rows[0]["name"])
	assert.Equal(t, "2", rows[1]["id"])
}

func TestCSVToMapsNoTrailingNewline(t *testing.T) {
	doc := "id,name\n1,alice"
	rows, err := csvToMaps(strings.NewReader(doc), dialect.Default())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alice", rows[0]["name"])
}
