// Package textlit provides text literal processing for FTT field buffers:
// backslash escaping/unescaping and pipe-delimited field splitting.
//
// Escape sequences (`\|`, `\\`, `\;`, `\{`, `\}`, `\<`, `\>`) let a text
// segment contain a literal pipe, semicolon, or brace without being split
// or misread as a modifier delimiter. [SplitPipeFields] walks a flushed
// field buffer left to right, copying any escaped rune literally and
// splitting on unescaped `|`. [Unescape] and [Escape] convert a single
// segment's text to and from its escaped wire form.
//
// # Internal Package
//
// This package is internal to the ftt library. Its API may change without
// notice between versions. External consumers should not import this package.
//
// # Main Functions
//
//   - SplitPipeFields: splits a field buffer into trimmed, NFC-normalized
//     pipe segments, respecting backslash escapes.
//   - Unescape: removes backslash-escaping from a segment's text.
//   - Escape: adds backslash-escaping so a string round-trips through
//     SplitPipeFields as a single segment.
//   - NFCNormalize: trims and NFC-normalizes a header or segment string.
//
// # Usage Notes
//
// This package is positioned in internal/ rather than as part of the parse
// package to allow both parse and postprocess to depend on it without
// creating upward dependencies.
package textlit
