// Package main provides the resume_normalizer command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// rootCmd is the command tree main executes. Tests build fresh trees with newRootCmd.
var rootCmd = newRootCmd()

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
