package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDialectOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.yaml")
	doc := `
hasHeader: true
forgiving: true
dialect:
  delimiter: ";"
  multiline: true
encryptionColumns: ["ssn"]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.HasHeader)
	assert.Equal(t, 1, cfg.HeaderRowsToRead)
	assert.True(t, cfg.Forgiving)
	assert.Equal(t, []string{"ssn"}, cfg.EncryptionColumns)

	d, err := cfg.Dialect.ToDialect()
	require.NoError(t, err)
	assert.Equal(t, byte(';'), d.Delimiter)
	assert.True(t, d.AllowMultilineFields)
}

func TestDialectConfigRejectsInvalidCellPattern(t *testing.T) {
	dc := DialectConfig{CellPattern: "("}
	_, err := dc.ToDialect()
	require.Error(t, err)
}
