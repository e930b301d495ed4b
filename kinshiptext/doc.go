// Package kinshiptext renders a [kinship.Relationship] into the
// human-readable {term, detail} pair of spec §4.4.4, the way
// diag/renderer.go turns a structured [diag.Issue] into display text:
// a pure function over a closed set of variants, never a template
// engine or a lookup table keyed by string.
package kinshiptext
