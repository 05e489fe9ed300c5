// Package schema holds the JSON schema for serialized diff reports.
package schema

import (
	"encoding/json"
	"fmt"
)

// reportSchemaJSON describes the document produced by internal/report. Kind
// values mirror diff.LineKind.String().
const reportSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["hunks", "hunkCount", "totalAdditions", "totalDeletions"],
  "additionalProperties": false,
  "properties": {
    "hunkCount": {"type": "integer", "minimum": 0},
    "totalAdditions": {"type": "integer", "minimum": 0},
    "totalDeletions": {"type": "integer", "minimum": 0},
    "hunks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["oldStart", "oldCount", "newStart", "newCount", "lines", "additions", "deletions"],
        "additionalProperties": false,
        "properties": {
          "oldStart": {"type": "integer", "minimum": 0},
          "oldCount": {"type": "integer", "minimum": 0},
          "newStart": {"type": "integer", "minimum": 0},
          "newCount": {"type": "integer", "minimum": 0},
          "section": {"type": "string"},
          "additions": {"type": "integer", "minimum": 0},
          "deletions": {"type": "integer", "minimum": 0},
          "lines": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["kind", "content"],
              "additionalProperties": false,
              "properties": {
                "kind": {
                  "type": "string",
                  "enum": ["addition", "deletion", "unchanged", "no-newline"]
                },
                "content": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

// ReportSchema returns the diff report schema as a generic map suitable for
// gojsonschema's Go loader.
func ReportSchema() (map[string]any, error) {
	var schemaMap map[string]any
	if err := json.Unmarshal([]byte(reportSchemaJSON), &schemaMap); err != nil {
		return nil, fmt.Errorf("schema: decode report schema: %w", err)
	}
	return schemaMap, nil
}
