package diff

import "strings"

// Format renders hunks back into unified-diff text. For any value produced
// by a successful Parse, Format is its exact inverse: parsing the returned
// text reproduces the hunks, including the single-line ranges whose counts
// the header omits.
func Format(hunks []Hunk) string {
	var b strings.Builder
	for _, h := range hunks {
		b.WriteString(h.Header.String())
		b.WriteByte('\n')
		for _, line := range h.Lines {
			b.WriteByte(line.Kind.Prefix())
			b.WriteString(line.Content)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String renders a single hunk in unified-diff form.
func (h Hunk) String() string {
	return Format([]Hunk{h})
}
