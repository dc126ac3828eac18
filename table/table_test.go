package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rchillyard/tableparser/internal/header"
	"github.com/rchillyard/tableparser/table"
)

func mkRows(h *header.Header, data [][]string) []table.Row {
	rows := make([]table.Row, len(data))
	for i, cells := range data {
		rows[i] = table.NewRow(h, i, cells)
	}
	return rows
}

func TestFilterPreservesHeaderAndOrder(t *testing.T) {
	h, err := header.New([]string{"a", "b"})
	require.NoError(t, err)
	rows := mkRows(h, [][]string{{"1", "x"}, {"2", "y"}, {"3", "z"}})
	tbl := table.New(h, rows)

	filtered := tbl.Filter(func(r table.Row) bool {
		v, _ := r.ByName("a")
		return v != "2"
	})

	assert.Equal(t, 2, filtered.Size())
	assert.Equal(t, 0, filtered.Rows()[0].Seq)
	assert.Equal(t, 2, filtered.Rows()[1].Seq)
	assert.NotNil(t, filtered.Header())
}

func TestConcatRequiresSameHeader(t *testing.T) {
	h1, _ := header.New([]string{"a"})
	h2, _ := header.New([]string{"b"})
	t1 := table.New(h1, mkRows(h1, [][]string{{"1"}}))
	t2 := table.New(h2, mkRows(h2, [][]string{{"2"}}))

	_, err := t1.Concat(t2)
	require.Error(t, err)
}

func TestConcatOrdersSelfFirst(t *testing.T) {
	h, _ := header.New([]string{"a"})
	t1 := table.New(h, mkRows(h, [][]string{{"1"}}))
	t2 := table.New(h, mkRows(h, [][]string{{"2"}}))

	out, err := t1.Concat(t2)
	require.NoError(t, err)
	require.Equal(t, 2, out.Size())
	v0, _ := out.Rows()[0].ByName("a")
	v1, _ := out.Rows()[1].ByName("a")
	assert.Equal(t, "1", v0)
	assert.Equal(t, "2", v1)
}

func TestMapToDropsHeader(t *testing.T) {
	h, _ := header.New([]string{"a"})
	tbl := table.New(h, mkRows(h, [][]string{{"1"}, {"2"}}))

	out := table.MapTo(tbl, func(r table.Row) int {
		v, _ := r.ByName("a")
		return len(v)
	})

	assert.Nil(t, out.Header())
	assert.Equal(t, []int{1, 1}, out.Rows())
}

func TestIterVisitsAllRowsInOrder(t *testing.T) {
	h, _ := header.New([]string{"a"})
	tbl := table.New(h, mkRows(h, [][]string{{"1"}, {"2"}}))

	next := tbl.Iter()
	var seen []int
	for {
		r, ok := next()
		if !ok {
			break
		}
		seen = append(seen, r.Seq)
	}
	assert.Equal(t, []int{0, 1}, seen)
}

func TestFilterByKey(t *testing.T) {
	h, _ := header.New([]string{"a"})
	tbl := table.New(h, mkRows(h, [][]string{{"1"}, {"2"}, {"3"}}))

	out := table.FilterByKey(tbl, func(r table.Row) string {
		v, _ := r.ByName("a")
		return v
	}, func(k string) bool { return k != "2" })

	assert.Equal(t, 2, out.Size())
}
