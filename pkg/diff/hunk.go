package diff

import (
	"fmt"
	"strings"
)

// NoNewlineText is the body of the marker git appends when the final line of
// a file lacks a trailing newline. It includes the leading space so that
// prefix+content reproduces the marker line exactly.
const NoNewlineText = " No newline at end of file"

// LineKind identifies what a hunk line does to the file it patches.
type LineKind int

const (
	// LineUnchanged represents context lines present in both versions.
	LineUnchanged LineKind = iota
	// LineAddition represents lines present only in the new version.
	LineAddition
	// LineDeletion represents lines present only in the old version.
	LineDeletion
	// LineNoNewline represents the "\ No newline at end of file" marker.
	LineNoNewline
)

// String returns a readable name for the line kind.
func (k LineKind) String() string {
	switch k {
	case LineUnchanged:
		return "unchanged"
	case LineAddition:
		return "addition"
	case LineDeletion:
		return "deletion"
	case LineNoNewline:
		return "no-newline"
	default:
		return "unknown"
	}
}

// Prefix returns the one-byte prefix that introduces this kind of line in
// diff text.
func (k LineKind) Prefix() byte {
	switch k {
	case LineAddition:
		return '+'
	case LineDeletion:
		return '-'
	case LineNoNewline:
		return '\\'
	default:
		return ' '
	}
}

// kindForPrefix maps a prefix byte back to its LineKind. The mapping fails
// closed: any byte outside the four diff prefixes is rejected.
func kindForPrefix(b byte) (LineKind, bool) {
	switch b {
	case '+':
		return LineAddition, true
	case '-':
		return LineDeletion, true
	case ' ':
		return LineUnchanged, true
	case '\\':
		return LineNoNewline, true
	default:
		return 0, false
	}
}

// Header carries the line ranges a hunk covers in the old and new file, plus
// the optional section heading git copies after the closing "@@".
type Header struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Section  string
}

// String renders the header in unified-diff form. Counts of one are omitted,
// matching the convention git itself uses for single-line ranges.
func (h Header) String() string {
	var b strings.Builder
	b.WriteString("@@ -")
	writeRange(&b, h.OldStart, h.OldCount)
	b.WriteString(" +")
	writeRange(&b, h.NewStart, h.NewCount)
	b.WriteString(" @@")
	if h.Section != "" {
		b.WriteByte(' ')
		b.WriteString(h.Section)
	}
	return b.String()
}

func writeRange(b *strings.Builder, start, count int) {
	fmt.Fprintf(b, "%d", start)
	if count != 1 {
		fmt.Fprintf(b, ",%d", count)
	}
}

// Line is a single content line inside a hunk: its kind plus the raw text
// after the one-byte prefix. Content may be empty.
type Line struct {
	Kind    LineKind
	Content string
}

// Hunk is one change region of a unified diff: a header and the lines that
// appeared between it and the next header, in source order.
type Hunk struct {
	Header Header
	Lines  []Line
}

// Stats reports how many lines a hunk (or a whole diff body) adds and
// removes. Unchanged lines and no-newline markers are not counted.
type Stats struct {
	Additions int
	Deletions int
}

// Stats tallies the additions and deletions in this hunk.
func (h Hunk) Stats() Stats {
	var s Stats
	for _, line := range h.Lines {
		switch line.Kind {
		case LineAddition:
			s.Additions++
		case LineDeletion:
			s.Deletions++
		}
	}
	return s
}

// Tally sums the stats of every hunk in a parse result.
func Tally(hunks []Hunk) Stats {
	var total Stats
	for _, h := range hunks {
		s := h.Stats()
		total.Additions += s.Additions
		total.Deletions += s.Deletions
	}
	return total
}

// Summary returns a short human-readable description such as "2 hunks +3 -1".
func Summary(hunks []Hunk) string {
	total := Tally(hunks)
	noun := "hunks"
	if len(hunks) == 1 {
		noun = "hunk"
	}
	return fmt.Sprintf("%d %s +%d -%d", len(hunks), noun, total.Additions, total.Deletions)
}
