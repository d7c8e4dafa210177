// Package main is the entry point for the elxup CLI tool.
package main

import (
	"os"

	"github.com/baobao/elxup/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
