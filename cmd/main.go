package main

import (
	"context"
	"os"

	"github.com/ryansobol/gitdiffparser/internal/cli"
)

// main parses a unified-diff hunk body from stdin or a file and renders it.
func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
