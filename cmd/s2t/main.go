package main

import (
	"fmt"
	"os"

	"speech2text/cmd/s2t/cmd"
	"speech2text/internal/config"
)

func main() {
	// Load .env before any command reads configuration.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load environment: %v\n", err)
		os.Exit(1)
	}

	cmd.Execute()
}
