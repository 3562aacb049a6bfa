// Package main is the entry point for the refcheck CLI.
package main

import (
	"os"

	"refcheck/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
