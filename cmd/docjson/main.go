// Package main provides the docjson command.
package main

import (
	"os"

	"github.com/example/docjson/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
