package main

import (
	"os"

	"github.com/rchillyard/tableparser/cmd/tablecodec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
