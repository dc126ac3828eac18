package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rchillyard/tableparser/internal/dialect"
	"github.com/rchillyard/tableparser/internal/header"
	"github.com/rchillyard/tableparser/internal/rowsplitter"
)

var csvJSONCmd = &cobra.Command{
	Use:   "csv2json",
	Short: "Convert a headered CSV document to a JSON array of objects",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(inputPath)
		if err != nil {
			return err
		}
		defer in.Close()

		d := dialect.Default()
		if delimiterFlag != "" {
			d = d.WithDelimiter(delimiterFlag[0])
		}

		records, err := csvToMaps(in, d)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	},
}

func init() {
	rootCmd.AddCommand(csvJSONCmd)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// csvToMaps reads a headered document and returns one map[string]string
// per body row, keyed by column name — the generic (reflection-free)
// path, suitable for rows whose shape isn't known at compile time.
func csvToMaps(r io.Reader, d dialect.Dialect) ([]map[string]string, error) {
	src := rowsplitter.NewLineSource(r)
	split := rowsplitter.New(d)

	headerLine, err := src.NextLine()
	if err != nil && err != io.EOF {
		return nil, err
	}
	headerCells, err := split.Split(headerLine)
	if err != nil {
		return nil, err
	}
	h, err := header.New(headerCells)
	if err != nil {
		return nil, err
	}

	var out []map[string]string
	for {
		line, err := src.NextLine()
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line == "" && err == io.EOF {
			break
		}
		cells, err := split.Split(line)
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(h.Names()))
		for _, name := range h.Names() {
			v, _ := h.Cell(cells, name)
			row[name] = v
		}
		out = append(out, row)
		if err == io.EOF {
			break
		}
	}
	return out, nil
}
