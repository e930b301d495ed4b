// Package kinship computes relationships between two records in a
// [record.RecordGraph] (spec §4.4). It builds a fixed set of derived
// indices once per [Engine], then performs multi-path ancestor traversal
// and relationship enumeration on demand. kinship never imports parse:
// it consumes the immutable graph handed to it after post-processing and
// has no notion of FTT's text grammar.
package kinship
