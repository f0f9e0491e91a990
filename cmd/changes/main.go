package main

import (
	"os"

	"github.com/jbmorley/changes/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
