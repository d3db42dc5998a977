// Package main is the entry point for the analysis-simulator binary.
package main

import (
	"os"

	"github.com/ideaforge/analysis-simulator/cmd/analysis-simulator/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
