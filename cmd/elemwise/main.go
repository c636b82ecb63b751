// Package main provides the elemwise CLI.
package main

import (
	"os"

	"github.com/born-ml/elemwise/cmd/elemwise/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
