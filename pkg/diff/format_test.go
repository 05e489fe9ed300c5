package diff

import (
	"strings"
	"testing"
)

func TestFormatRendersHeaderAndLines(t *testing.T) {
	t.Parallel()

	hunk := Hunk{
		Header: Header{OldStart: 3, OldCount: 2, NewStart: 3, NewCount: 3, Section: "type Header struct {"},
		Lines: []Line{
			{Kind: LineUnchanged, Content: "alpha"},
			{Kind: LineAddition, Content: "beta"},
		},
	}

	want := strings.Join([]string{
		"@@ -3,2 +3,3 @@ type Header struct {",
		" alpha",
		"+beta",
		"",
	}, "\n")
	if got := Format([]Hunk{hunk}); got != want {
		t.Fatalf("unexpected output: got %q want %q", got, want)
	}
}

func TestHeaderStringOmitsCountsOfOne(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header Header
		want   string
	}{
		{
			name:   "both counts one",
			header: Header{OldStart: 5, OldCount: 1, NewStart: 5, NewCount: 1},
			want:   "@@ -5 +5 @@",
		},
		{
			name:   "zero count stays explicit",
			header: Header{OldStart: 7, OldCount: 0, NewStart: 8, NewCount: 2},
			want:   "@@ -7,0 +8,2 @@",
		},
		{
			name:   "heading appended after closing marker",
			header: Header{OldStart: 1, OldCount: 3, NewStart: 1, NewCount: 3, Section: "func main() {"},
			want:   "@@ -1,3 +1,3 @@ func main() {",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.header.String(); got != tc.want {
				t.Fatalf("unexpected header: got %q want %q", got, tc.want)
			}
		})
	}
}

// Format must be the exact inverse of Parse: formatting synthetic hunks and
// parsing the result reproduces them field for field.
func TestRoundTripSyntheticHunks(t *testing.T) {
	t.Parallel()

	hunks := []Hunk{
		{
			Header: Header{OldStart: 1, OldCount: 1, NewStart: 1, NewCount: 2, Section: "intro"},
			Lines: []Line{
				{Kind: LineUnchanged, Content: "shared"},
				{Kind: LineAddition, Content: "added"},
			},
		},
		{
			Header: Header{OldStart: 40, OldCount: 3, NewStart: 41, NewCount: 2},
			Lines: []Line{
				{Kind: LineDeletion, Content: "removed"},
				{Kind: LineDeletion, Content: ""},
				{Kind: LineUnchanged, Content: "  indented context"},
				{Kind: LineNoNewline, Content: NoNewlineText},
			},
		},
		{
			Header: Header{OldStart: 90, OldCount: 0, NewStart: 91, NewCount: 1},
			Lines:  []Line{{Kind: LineAddition, Content: "appended"}},
		},
	}

	parsed, err := Parse(Format(hunks))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	assertHunksEqual(t, parsed, hunks)
}

func TestRoundTripParsedText(t *testing.T) {
	t.Parallel()

	body := strings.Join([]string{
		"@@ -1,3 +1,3 @@ func greet() {",
		" 	fmt.Println(\"hi\")",
		"-	return nil",
		"+	return greetErr",
		"@@ -20 +20 @@",
		"-so long",
		"\\ No newline at end of file",
		"",
	}, "\n")

	hunks, err := Parse(body)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := Format(hunks); got != body {
		t.Fatalf("reformatted text diverged:\ngot  %q\nwant %q", got, body)
	}
}

func TestHunkStringMatchesFormat(t *testing.T) {
	t.Parallel()

	hunk := Hunk{
		Header: Header{OldStart: 2, OldCount: 1, NewStart: 2, NewCount: 1},
		Lines:  []Line{{Kind: LineDeletion, Content: "x"}},
	}
	if hunk.String() != Format([]Hunk{hunk}) {
		t.Fatalf("Hunk.String diverged from Format")
	}
}

func assertHunksEqual(t *testing.T, got, want []Hunk) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("hunk count mismatch: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Header != want[i].Header {
			t.Fatalf("hunk %d header mismatch: got %+v want %+v", i, got[i].Header, want[i].Header)
		}
		assertLines(t, got[i].Lines, want[i].Lines)
	}
}
