// Package report serializes parsed diff hunks into validated JSON documents
// and human-readable summaries.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ryansobol/gitdiffparser/internal/schema"
	"github.com/ryansobol/gitdiffparser/pkg/diff"
)

var (
	reportSchemaLoader     gojsonschema.JSONLoader
	reportSchemaLoaderErr  error
	reportSchemaLoaderOnce sync.Once
)

// LineEntry mirrors diff.Line in the report document.
type LineEntry struct {
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

// HunkEntry carries one hunk's header, lines, and per-hunk stats.
type HunkEntry struct {
	OldStart  int         `json:"oldStart"`
	OldCount  int         `json:"oldCount"`
	NewStart  int         `json:"newStart"`
	NewCount  int         `json:"newCount"`
	Section   string      `json:"section,omitempty"`
	Lines     []LineEntry `json:"lines"`
	Additions int         `json:"additions"`
	Deletions int         `json:"deletions"`
}

// Report is the top-level JSON document for a parse result.
type Report struct {
	Hunks          []HunkEntry `json:"hunks"`
	HunkCount      int         `json:"hunkCount"`
	TotalAdditions int         `json:"totalAdditions"`
	TotalDeletions int         `json:"totalDeletions"`
}

// Build assembles a Report from parsed hunks.
func Build(hunks []diff.Hunk) Report {
	entries := make([]HunkEntry, 0, len(hunks))
	for _, h := range hunks {
		lines := make([]LineEntry, 0, len(h.Lines))
		for _, line := range h.Lines {
			lines = append(lines, LineEntry{Kind: line.Kind.String(), Content: line.Content})
		}
		stats := h.Stats()
		entries = append(entries, HunkEntry{
			OldStart:  h.Header.OldStart,
			OldCount:  h.Header.OldCount,
			NewStart:  h.Header.NewStart,
			NewCount:  h.Header.NewCount,
			Section:   h.Header.Section,
			Lines:     lines,
			Additions: stats.Additions,
			Deletions: stats.Deletions,
		})
	}
	totals := diff.Tally(hunks)
	return Report{
		Hunks:          entries,
		HunkCount:      len(hunks),
		TotalAdditions: totals.Additions,
		TotalDeletions: totals.Deletions,
	}
}

// Marshal serializes the report with indentation and validates the payload
// against the embedded schema before returning it.
func (r Report) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("report: marshal: %w", err)
	}
	if err := validateAgainstSchema(data); err != nil {
		return nil, err
	}
	return data, nil
}

func validateAgainstSchema(raw []byte) error {
	loader, err := loadReportSchema()
	if err != nil {
		return fmt.Errorf("report: load schema: %w", err)
	}

	result, err := gojsonschema.Validate(loader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("report: schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return fmt.Errorf("report: payload failed schema validation: %s", strings.Join(issues, "; "))
}

func loadReportSchema() (gojsonschema.JSONLoader, error) {
	reportSchemaLoaderOnce.Do(func() {
		schemaMap, err := schema.ReportSchema()
		if err != nil {
			reportSchemaLoaderErr = err
			return
		}
		reportSchemaLoader = gojsonschema.NewGoLoader(schemaMap)
	})
	if reportSchemaLoaderErr != nil {
		return nil, reportSchemaLoaderErr
	}
	return reportSchemaLoader, nil
}

// Markdown renders the report as a short markdown summary with one table row
// per hunk.
func (r Report) Markdown() string {
	var b strings.Builder
	b.WriteString("## Diff summary\n\n")
	fmt.Fprintf(&b, "- **Hunks:** %d\n", r.HunkCount)
	fmt.Fprintf(&b, "- **Additions:** %d\n", r.TotalAdditions)
	fmt.Fprintf(&b, "- **Deletions:** %d\n", r.TotalDeletions)
	if len(r.Hunks) == 0 {
		return b.String()
	}

	b.WriteString("\n| Hunk | Old range | New range | +/- | Section |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for i, h := range r.Hunks {
		section := h.Section
		if section == "" {
			section = "(none)"
		}
		fmt.Fprintf(&b, "| %d | %d,%d | %d,%d | +%d -%d | %s |\n",
			i+1, h.OldStart, h.OldCount, h.NewStart, h.NewCount, h.Additions, h.Deletions, section)
	}
	return b.String()
}
