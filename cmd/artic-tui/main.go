package main

import (
	"fmt"
	"os"

	"github.com/handiism/artic-table/internal/cli"
	"github.com/handiism/artic-table/internal/tui"
)

func main() {
	settings, err := cli.LoadSettings(os.Getenv("ARTIC_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
