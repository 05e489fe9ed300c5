package diff

import (
	"fmt"
	"regexp"
	"strconv"
)

// ParseError reports diff text that matched none of the token grammars. The
// unconsumed remainder of the input is retained so callers can show where the
// scan stopped.
type ParseError struct {
	Remaining string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	remainder := e.Remaining
	if len(remainder) > 64 {
		remainder = remainder[:64] + "..."
	}
	return fmt.Sprintf("invalid diff format near %q", remainder)
}

// The three token grammars, anchored at the start of the unconsumed input.
// A content line and the no-newline marker may end at end-of-input; a hunk
// header must be terminated by exactly one newline.
var (
	contentLinePattern = regexp.MustCompile(`^([+\- ])([^\n]*)(?:\n|$)`)
	headerPattern      = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@ ?([^\n]*)\n`)
	noNewlinePattern   = regexp.MustCompile(`^\\( No newline at end of file)(?:\n|$)`)
)

// Parse converts the hunk body of a unified diff into structured hunks.
//
// The input is scanned greedily from the start, trying the content-line,
// hunk-header, and no-newline-marker grammars in that order at each position
// and consuming the first match. Hunks are returned in encounter order with
// their lines in encounter order; a trailing hunk is flushed even when no
// further header follows it. When no grammar matches, Parse fails atomically
// with a *ParseError carrying the unconsumed remainder; no partial result is
// returned. Empty input yields an empty result.
//
// Line tokens that appear before the first header are consumed and silently
// discarded: they have no hunk to belong to, and well-formed diff bodies
// always open with a header.
func Parse(input string) ([]Hunk, error) {
	var (
		hunks  []Hunk
		header *Header
		lines  []Line
	)

	rest := input
	for len(rest) > 0 {
		if m := contentLinePattern.FindStringSubmatch(rest); m != nil {
			kind, ok := kindForPrefix(m[1][0])
			if !ok {
				// Unreachable: the pattern only admits the three prefixes.
				return nil, &ParseError{Remaining: rest}
			}
			if header != nil {
				lines = append(lines, Line{Kind: kind, Content: m[2]})
			}
			rest = rest[len(m[0]):]
			continue
		}

		if m := headerPattern.FindStringSubmatch(rest); m != nil {
			parsed, err := headerFromMatch(m, rest)
			if err != nil {
				return nil, err
			}
			if header != nil {
				hunks = append(hunks, Hunk{Header: *header, Lines: lines})
			}
			header = &parsed
			lines = make([]Line, 0, maxCount(parsed))
			rest = rest[len(m[0]):]
			continue
		}

		if m := noNewlinePattern.FindStringSubmatch(rest); m != nil {
			if header != nil {
				lines = append(lines, Line{Kind: LineNoNewline, Content: m[1]})
			}
			rest = rest[len(m[0]):]
			continue
		}

		return nil, &ParseError{Remaining: rest}
	}

	if header != nil {
		hunks = append(hunks, Hunk{Header: *header, Lines: lines})
	}
	return hunks, nil
}

// headerFromMatch hydrates a Header from the capture groups of
// headerPattern. Omitted counts default to one, the unified-diff convention
// for single-line ranges.
func headerFromMatch(m []string, rest string) (Header, error) {
	oldStart, err := strconv.Atoi(m[1])
	if err != nil {
		return Header{}, &ParseError{Remaining: rest}
	}
	oldCount, err := countFromCapture(m[2])
	if err != nil {
		return Header{}, &ParseError{Remaining: rest}
	}
	newStart, err := strconv.Atoi(m[3])
	if err != nil {
		return Header{}, &ParseError{Remaining: rest}
	}
	newCount, err := countFromCapture(m[4])
	if err != nil {
		return Header{}, &ParseError{Remaining: rest}
	}
	return Header{
		OldStart: oldStart,
		OldCount: oldCount,
		NewStart: newStart,
		NewCount: newCount,
		Section:  m[5],
	}, nil
}

func countFromCapture(capture string) (int, error) {
	if capture == "" {
		return 1, nil
	}
	return strconv.Atoi(capture)
}

// maxCount is the capacity hint for a hunk's line buffer: the larger of the
// two declared ranges bounds the number of content lines a well-formed hunk
// carries, so most appends avoid reallocation.
func maxCount(h Header) int {
	if h.OldCount > h.NewCount {
		return h.OldCount
	}
	return h.NewCount
}
