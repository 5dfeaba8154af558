package main

import (
	"os"

	"github.com/mstrand/beadchart/cmd/beadchart/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
