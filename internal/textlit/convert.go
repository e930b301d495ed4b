package textlit

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// escapable is the set of characters that FTT text literals escape with a
// backslash. When unescaping, a backslash before any other character is
// handled the same way: the backslash is dropped and the character is
// copied literally (unrecognized escapes are not treated as errors).
const escapable = `|\;{}<>`

// Unescape removes backslash-escaping from a single pipe segment or flushed
// field buffer. Each backslash is dropped and the rune that follows it is
// copied literally, whether or not that rune is in escapable.
//
// A trailing, unpaired backslash at the end of the string is copied as-is.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) {
			next := runes[i+1]
			b.WriteRune(next)
			i++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Escape inserts backslash-escaping before every rune in s that requires
// it to round-trip through [SplitPipeFields]: `|`, `\`, `;`, `{`, `}`, `<`,
// `>`.
func Escape(s string) string {
	if !strings.ContainsAny(s, escapable) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(escapable, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SplitPipeFields splits a flushed field buffer into pipe-delimited
// segments. It walks the text left to right, treating `\` as an escape that
// copies the next rune literally (so an escaped `\|` does not end a
// segment); an unescaped `|` ends the current segment.
//
// Each returned segment is trimmed of leading/trailing whitespace, then
// NFC-normalized, matching the scanner's buffer-flush contract. Escaping is
// NOT removed by this function: callers that need the literal text of a
// segment (rather than its raw pipe-split form) should apply [Unescape]
// after splitting.
func SplitPipeFields(s string) []string {
	var segments []string
	var cur strings.Builder

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' && i+1 < len(runes):
			cur.WriteRune(r)
			cur.WriteRune(runes[i+1])
			i++
		case r == '|':
			segments = append(segments, normalizeSegment(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	segments = append(segments, normalizeSegment(cur.String()))
	return segments
}

// normalizeSegment trims surrounding whitespace and applies NFC
// normalization, matching the buffer-flush contract for pipe segments and
// headers.
func normalizeSegment(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NFCNormalize applies NFC normalization and trims surrounding whitespace,
// matching the buffer-flush contract applied to headers and to the whole
// field text before pipe-splitting.
func NFCNormalize(s string) string {
	return normalizeSegment(s)
}
