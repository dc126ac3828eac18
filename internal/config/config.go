// Package config loads a dialect/pipeline configuration from YAML
// (os.ReadFile + yaml.Unmarshal into a struct with yaml tags).
package config

import (
	"os"
	"regexp"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rchillyard/tableparser/internal/dialect"
)

// DialectConfig is the YAML shape of a dialect block. Zero-value fields
// fall back to dialect.Default()'s values.
type DialectConfig struct {
	Delimiter             string `yaml:"delimiter"`
	Quote                 string `yaml:"quote"`
	AllowMultilineFields  bool   `yaml:"multiline"`
	TrimLeadingWhitespace bool   `yaml:"trimLeadingWhitespace"`
	CellPattern           string `yaml:"cellPattern"`
	HeaderNameSep         string `yaml:"headerNameSep"`
	NestedSep             string `yaml:"nestedSep"`
	LineTerminator        string `yaml:"lineTerminator"`
}

// PipelineConfig is the YAML shape of a full table-codec run: dialect
// plus the Config toggles that are safe to externalize (header handling,
// forgiving mode, encryption selection).
type PipelineConfig struct {
	Dialect           DialectConfig `yaml:"dialect"`
	HasHeader         bool          `yaml:"hasHeader"`
	HeaderRowsToRead  int           `yaml:"headerRowsToRead"`
	Forgiving         bool          `yaml:"forgiving"`
	EncryptionColumns []string      `yaml:"encryptionColumns"`
	Base64Payloads    bool          `yaml:"base64Payloads"`
}

// ToDialect realizes d against dialect.Default(), overriding only the
// fields the YAML document set.
func (d DialectConfig) ToDialect() (dialect.Dialect, error) {
	out := dialect.Default()
	if d.Delimiter != "" {
		out = out.WithDelimiter(d.Delimiter[0])
	}
	if d.Quote != "" {
		out = out.WithQuote(d.Quote[0])
	}
	if d.AllowMultilineFields {
		out = out.WithMultiline()
	}
	if d.TrimLeadingWhitespace {
		out = out.WithTrimLeadingWhitespace()
	}
	if d.CellPattern != "" {
		re, err := regexp.Compile(d.CellPattern)
		if err != nil {
			return dialect.Dialect{}, errors.Wrapf(err, "config: invalid cellPattern %q", d.CellPattern)
		}
		out = out.WithCellPattern(re)
	}
	if d.HeaderNameSep != "" {
		out.HeaderNameSep = d.HeaderNameSep
	}
	if d.NestedSep != "" {
		out.NestedSep = d.NestedSep[0]
	}
	if d.LineTerminator != "" {
		out.LineTerminator = d.LineTerminator
	}
	return out, nil
}

// Load reads and parses a PipelineConfig from path.
func Load(path string) (PipelineConfig, error) {
	var result PipelineConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return PipelineConfig{}, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := yaml.Unmarshal(raw, &result); err != nil {
		return PipelineConfig{}, errors.Wrapf(err, "config: parsing %s", path)
	}
	if result.HeaderRowsToRead == 0 && result.HasHeader {
		result.HeaderRowsToRead = 1
	}
	return result, nil
}
