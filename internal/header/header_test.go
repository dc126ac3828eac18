package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlatHeader(t *testing.T) {
	h, err := New([]string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 1, h.IndexOf("b"))
	assert.Equal(t, -1, h.IndexOf("z"))
}

func TestFromRowsJoinsAndSkipsBlanks(t *testing.T) {
	h, err := FromRows([][]string{
		{"address", "", "name"},
		{"street", "zip", ""},
	}, ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"address.street", "zip", "name"}, h.Names())
}

func TestFromRowsRejectsUnequalLengths(t *testing.T) {
	_, err := FromRows([][]string{{"a", "b"}, {"c"}}, ".")
	require.Error(t, err)
}

func TestDuplicateNamesRejected(t *testing.T) {
	_, err := New([]string{"a", "a"})
	require.Error(t, err)
}

func TestSubheaderStripsPrefix(t *testing.T) {
	h, err := New([]string{"id", "addr.street", "addr.zip"})
	require.NoError(t, err)
	sub := h.Subheader("addr")
	assert.Equal(t, []string{"street", "zip"}, sub.Names())
}

func TestFoldedLookup(t *testing.T) {
	h, err := New([]string{"Name", "Age"}, WithFold())
	require.NoError(t, err)
	assert.Equal(t, 0, h.IndexOf("name"))
	assert.Equal(t, 1, h.IndexOf("AGE"))
}
