package tableparser_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rchillyard/tableparser"
	"github.com/rchillyard/tableparser/crypt"
	"github.com/rchillyard/tableparser/internal/cellparse"
	"github.com/rchillyard/tableparser/internal/cellrender"
	"github.com/rchillyard/tableparser/internal/recordrender"
	"github.com/rchillyard/tableparser/parser"
	"github.com/rchillyard/tableparser/table"
)

type person struct {
	ID   int64
	Name string
	Rate float64
}

func personParser() *parser.Parser[person] {
	return parser.Record3(
		func(id int64, name string, rate float64) person { return person{ID: id, Name: name, Rate: rate} },
		parser.Scalar[int64]("id", cellparse.Int64()),
		parser.Scalar[string]("name", cellparse.String()),
		parser.Scalar[float64]("rate", cellparse.Float64()),
	)
}

func personRenderer() recordrender.RecordRenderer[person] {
	return recordrender.New[person](
		recordrender.Scalar("id", func(p person) int64 { return p.ID }, cellrender.Int64()),
		recordrender.Scalar("name", func(p person) string { return p.Name }, cellrender.String()),
		recordrender.Scalar("rate", func(p person) float64 { return p.Rate }, cellrender.Float64()),
	)
}

func TestParseTableRoundTrip(t *testing.T) {
	doc := "id,name,rate\n1,hello,2.5\n2,\"he said \"\"hi\"\"\",3\n"

	cfg := tableparser.DefaultConfig[person]()
	tbl, report, err := tableparser.ParseTable(strings.NewReader(doc), cfg, personParser())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Len())
	require.Equal(t, 2, tbl.Size())

	rows := tbl.Rows()
	assert.Equal(t, person{ID: 1, Name: "hello", Rate: 2.5}, rows[0])
	assert.Equal(t, person{ID: 2, Name: `he said "hi"`, Rate: 3}, rows[1])

	var out strings.Builder
	require.NoError(t, tableparser.RenderTable(&out, tbl, cfg, personRenderer()))
	assert.Equal(t, doc, out.String())
}

func TestParseTableForgivingDropsMalformedRow(t *testing.T) {
	doc := "id,name,rate\n1,hello,2.5\nnotanumber,bad,3\n3,ok,1\n"

	cfg := tableparser.DefaultConfig[person]()
	cfg.Forgiving = true
	tbl, report, err := tableparser.ParseTable(strings.NewReader(doc), cfg, personParser())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Len())
	assert.Equal(t, 2, tbl.Size())
}

func TestParseTableFailFastOnMalformedRow(t *testing.T) {
	doc := "id,name,rate\nnotanumber,bad,3\n"
	cfg := tableparser.DefaultConfig[person]()
	_, _, err := tableparser.ParseTable(strings.NewReader(doc), cfg, personParser())
	require.Error(t, err)
}

func TestEncryptedRoundTrip(t *testing.T) {
	cfg := tableparser.DefaultConfig[person]()
	cfg.Cipher = crypt.NewCipher(crypt.Hex)
	// Row-ids are offset from ID and from the iteration sequence number
	// (which would be 0,1) to prove the lookup keys on the row-id, not
	// on stream position.
	cfg.KeyMap = crypt.KeyMapFromSeed("test-seed", []string{"7", "8"})
	cfg.HasKey = func(p person) string { return strconv.FormatInt(p.ID+6, 10) }

	people := []person{{ID: 1, Name: "alice", Rate: 10}, {ID: 2, Name: "bob", Rate: 20}}
	tbl := table.New[person](nil, people)

	var out strings.Builder
	require.NoError(t, tableparser.RenderEncryptedTable(&out, tbl, cfg, personRenderer()))

	cfg.EncryptionPredicate = func(rowID string) bool { return true }
	got, err := tableparser.ParseEncryptedTable(strings.NewReader(out.String()), cfg, personParser())
	require.NoError(t, err)
	assert.Equal(t, people, got.Rows())
}
