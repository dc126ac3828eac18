package tableparser_test

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rchillyard/tableparser"
)

func TestParseTableConcurrentMatchesSerialParse(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("id,name,rate\n")
	for i := 1; i <= 200; i++ {
		sb.WriteString(strconv.Itoa(i) + ",name" + strconv.Itoa(i) + ",1.5\n")
	}
	doc := sb.String()

	cfg := tableparser.DefaultConfig[person]()
	serial, _, err := tableparser.ParseTable(strings.NewReader(doc), cfg, personParser())
	require.NoError(t, err)

	concurrent, _, err := tableparser.ParseTableConcurrent(context.Background(), strings.NewReader(doc), cfg, personParser(), 512)
	require.NoError(t, err)

	require.Equal(t, serial.Size(), concurrent.Size())
	assert.Equal(t, serial.Rows(), concurrent.Rows())
}

func TestParseTableConcurrentFallsBackOnAmbiguousChunkBoundary(t *testing.T) {
	// `1,"",2` holds quotes but neither a QO nor an OQ pattern, so its
	// chunk is flagged ambiguous and the serial path parses the input.
	doc := "id,name,rate\n1,\"\",2\n2,bob,3\n"

	cfg := tableparser.DefaultConfig[person]()
	tbl, _, err := tableparser.ParseTableConcurrent(context.Background(), strings.NewReader(doc), cfg, personParser(), 8)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Size())
}
