// Package diff parses the hunk body of a unified diff into structured values.
//
// The package deliberately handles only the hunk sequence itself: headers of
// the form "@@ -a,b +c,d @@" and the prefixed content lines that follow them.
// File-level metadata (diff --git lines, index lines, mode changes) is out of
// scope, which makes the parser easy to embed in tools that already know
// which file a diff body belongs to. Formatting is the exact inverse of
// parsing, so parsed hunks can be reconstructed byte-for-byte into an
// equivalent diff body.
package diff
