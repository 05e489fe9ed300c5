// Package cli wires the diff hunk parser into a command-line front end.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ryansobol/gitdiffparser/internal/report"
	"github.com/ryansobol/gitdiffparser/internal/tui"
	"github.com/ryansobol/gitdiffparser/pkg/diff"
)

// Run parses a diff body using the provided CLI arguments and renders the
// result to stdout. It returns a POSIX-style exit code indicating whether
// execution succeeded.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	if err := godotenv.Load(); err != nil {
		// A missing .env file is fine, but other errors should be surfaced to help with debugging.
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			fmt.Fprintf(stderr, "failed to load .env: %v\n", err)
			return 1
		}
	}

	defaultFormat := os.Getenv("DIFFPARSE_FORMAT")
	if defaultFormat == "" {
		defaultFormat = "text"
	}

	flagSet := flag.NewFlagSet("diffparse", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	input := flagSet.String("input", "", "path to a file holding the diff body (defaults to stdin)")
	format := flagSet.String("format", defaultFormat, "output format: text, json, or markdown")
	interactive := flagSet.Bool("tui", false, "open the parsed hunks in an interactive viewer")

	if err := flagSet.Parse(args); err != nil {
		return 2
	}

	if err := ctx.Err(); err != nil {
		fmt.Fprintf(stderr, "aborted: %v\n", err)
		return 1
	}

	body, err := readInput(*input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read diff: %v\n", err)
		return 1
	}

	hunks, err := diff.Parse(body)
	if err != nil {
		fmt.Fprintf(stderr, "failed to parse diff: %v\n", err)
		return 1
	}

	if *interactive {
		return tui.Run(hunks)
	}

	switch *format {
	case "text":
		fmt.Fprint(stdout, diff.Format(hunks))
		fmt.Fprintln(stderr, diff.Summary(hunks))
	case "json":
		data, err := report.Build(hunks).Marshal()
		if err != nil {
			fmt.Fprintf(stderr, "failed to serialize report: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(data))
	case "markdown":
		fmt.Fprint(stdout, report.Build(hunks).Markdown())
	default:
		fmt.Fprintf(stderr, "unknown format %q (want text, json, or markdown)\n", *format)
		return 2
	}
	return 0
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
