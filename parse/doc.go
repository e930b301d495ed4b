// Package parse implements the FTT line-oriented state machine (spec §4.1):
// it streams UTF-8 text into a [record.Document], emitting [diag.Issue]
// values rather than aborting on malformed input.
//
// The scanner classifies every line by its leading bytes and indentation
// (comment, block terminator, blank, indented continuation, key line, or
// invalid), accumulates multi-line field buffers, and flushes them into
// [record.Field] and [record.Modifier] values on the next key line, block
// terminator, or end of input. This hand-rolled classify-then-accumulate
// design plays the same role the teacher's byte-scanner plays for JSON: a
// single forward pass with no backtracking and no dependency on a grammar
// tool.
//
// Parse never returns an error in the Go sense; malformed input surfaces as
// diagnostics in the returned [diag.Result], and the partially-built
// Document is still returned so callers can inspect what was recovered.
package parse
