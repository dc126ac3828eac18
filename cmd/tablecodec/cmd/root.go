package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "tablecodec",
		Short:        "tablecodec",
		SilenceUsage: true,
		Long:         `CLI for converting a delimited-text table to JSON using a generic cell table.`,
	}

	inputPath     string
	delimiterFlag string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "-", "input file path, or - for stdin")
	rootCmd.PersistentFlags().StringVarP(&delimiterFlag, "delimiter", "d", ",", "field delimiter")
	return rootCmd.Execute()
}
