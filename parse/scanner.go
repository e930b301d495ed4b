package parse

import (
	"context"
	"log/slog"
	"strings"

	"github.com/arthurdick/familytree-text/diag"
	"github.com/arthurdick/familytree-text/internal/textlit"
	"github.com/arthurdick/familytree-text/internal/trace"
	"github.com/arthurdick/familytree-text/location"
	"github.com/arthurdick/familytree-text/record"
)

// pendingKind identifies what the scanner's line buffer currently belongs
// to. This models the Parser states of spec §4.5 (Global, InRecord,
// InField, InModifier): pendingNone corresponds to Global/InRecord (no
// buffer open), pendingHeader/pendingField/pendingModifier to InField (the
// buffer's owner determines where it is flushed to), and the scanner's
// recovering flag to ErrorRecovery.
type pendingKind uint8

const (
	pendingNone pendingKind = iota
	pendingHeader
	pendingField
	pendingModifier
)

// scanner holds the mutable state of one parse pass. It is not reused
// across calls to [Parse].
type scanner struct {
	source       location.SourceID
	doc          *record.Document
	collector    *diag.Collector
	lineNo       int
	currentRec   *record.Record
	lastFieldKey string        // key of the most recently flushed Field in currentRec
	lastFieldObj *record.Field // the Field itself, for modifier attachment
	recovering   bool

	pending          pendingKind
	pendingKey       string
	pendingSpan      location.Span
	buf              strings.Builder
	lastWasParagraph bool
}

// Parse streams content (assumed to be source's registered text) into a
// [record.Document], classifying and accumulating lines per spec §4.1.
// Diagnostics are collected without limit; Parse never fails outright, it
// only reports issues against the returned (possibly partial) Document.
func Parse(ctx context.Context, source location.SourceID, content []byte, opts ...Option) (*record.Document, diag.Result) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	op := trace.Begin(ctx, cfg.logger, "ftt.parse.parse", slog.Int("bytes", len(content)))

	s := &scanner{
		source:    source,
		doc:       record.NewDocument(),
		collector: diag.NewCollectorUnlimited(),
	}
	for _, line := range splitLines(content) {
		s.lineNo++
		s.step(classifyLine(line))
	}
	s.flush()
	result := s.collector.Result()

	op.End(nil, slog.Int("records", s.doc.RecordCount()), slog.Int("issues", result.Len()))
	return s.doc, result
}

// splitLines normalizes CR, LF, and CRLF line endings and splits content
// into lines, dropping a single trailing empty line produced by a final
// newline.
func splitLines(content []byte) []string {
	text := string(content)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return nil
	}
	endedInNewline := strings.HasSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	if endedInNewline && len(lines) > 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (s *scanner) spanHere() location.Span {
	return location.Point(s.source, s.lineNo, 1)
}

func (s *scanner) step(cl classifiedLine) {
	switch cl.kind {
	case lineComment:
		// Ignored; does not interrupt any open buffer.
	case lineBlockTerminator:
		s.flush()
		s.currentRec = nil
		s.lastFieldKey = ""
		s.lastFieldObj = nil
		s.recovering = false
	case lineBlank:
		if s.pending != pendingNone {
			s.buf.WriteByte('\n')
			s.lastWasParagraph = true
		}
	case lineContinuation:
		if s.pending != pendingNone {
			if !s.lastWasParagraph {
				s.buf.WriteByte(' ')
			}
			s.buf.WriteString(cl.text)
			s.lastWasParagraph = false
		}
		// A continuation line with nothing open has no Field to attach to;
		// it is silently dropped rather than escalated to a diagnostic,
		// since the preceding key line (if any) already reported whatever
		// was wrong with it.
	case lineKey:
		s.handleKeyLine(cl.key, cl.value)
	default:
		s.flush()
		s.collect(diag.E_SYNTAX_INVALID, "line does not match any recognized form")
	}
}

func (s *scanner) handleKeyLine(key, value string) {
	switch {
	case s.recovering && key != "ID":
		// Duplicate-ID recovery discards all fields until the next "---"
		// or next "ID:" line (spec §4.1 "Key handling").
		return
	case key == "ID":
		s.flush()
		s.beginRecord(value)
	case strings.HasPrefix(key, "HEAD_"):
		s.flush()
		if s.currentRec != nil {
			s.collect(diag.E_CTX_HEADER, "header key \""+key+"\" found inside a record")
			return
		}
		s.openPending(pendingHeader, key, value)
	case record.IsModifierKey(key):
		s.flush()
		s.beginModifier(key, value)
	default:
		s.flush()
		if s.currentRec == nil {
			s.collect(diag.E_CTX_ORPHAN, "field key \""+key+"\" has no enclosing record")
			return
		}
		s.openPending(pendingField, key, value)
	}
}

func (s *scanner) openPending(kind pendingKind, key, value string) {
	s.pending = kind
	s.pendingKey = key
	s.pendingSpan = s.spanHere()
	s.buf.Reset()
	s.buf.WriteString(value)
	s.lastWasParagraph = false
}

func (s *scanner) beginRecord(rawID string) {
	id := strings.TrimSpace(rawID)
	kind, bareID := record.ClassifyID(id)
	if !record.ValidateBareID(bareID) {
		s.collect(diag.E_SYNTAX_INVALID, "record ID \""+id+"\" does not match the allowed ID grammar")
		s.currentRec = nil
		s.recovering = true
		return
	}
	if _, exists := s.doc.Record(id); exists {
		s.collect(diag.E_DUPLICATE_ID, "record ID \""+id+"\" is already declared")
		s.currentRec = nil
		s.recovering = true
		return
	}
	rec := record.NewRecord(id, kind, s.spanHere())
	s.doc.AddRecord(rec)
	s.currentRec = rec
	s.lastFieldKey = ""
	s.lastFieldObj = nil
	s.recovering = false
}

func (s *scanner) beginModifier(key, value string) {
	if s.currentRec == nil {
		s.collect(diag.E_CTX_ORPHAN, "modifier key \""+key+"\" has no enclosing record")
		return
	}
	baseKey := modifierBaseKey(key)
	if s.lastFieldObj == nil || baseKey != s.lastFieldKey {
		s.collect(diag.E_CTX_MODIFIER, "modifier key \""+key+"\" does not attach to the preceding field")
		return
	}
	s.openPending(pendingModifier, key, value)
}

func modifierBaseKey(key string) string {
	switch {
	case strings.HasSuffix(key, "_SRC"):
		return key[:len(key)-len("_SRC")]
	case strings.HasSuffix(key, "_NOTE"):
		return key[:len(key)-len("_NOTE")]
	default:
		return key
	}
}

// flush finalizes the current pending buffer (if any) into the Document.
func (s *scanner) flush() {
	if s.pending == pendingNone {
		return
	}
	raw := strings.TrimSpace(s.buf.String())
	kind, key, span := s.pending, s.pendingKey, s.pendingSpan
	s.pending = pendingNone
	s.pendingKey = ""
	s.buf.Reset()
	s.lastWasParagraph = false

	switch kind {
	case pendingHeader:
		s.doc.SetHeader(key, textlit.NFCNormalize(raw))
	case pendingField:
		f := record.NewField(key, raw, segmentsOf(raw), span)
		s.currentRec.AddField(f)
		s.lastFieldKey = key
		s.lastFieldObj = f
	case pendingModifier:
		m := record.NewModifier(key, raw, segmentsOf(raw), span)
		if s.lastFieldObj != nil {
			s.lastFieldObj.AddModifier(m)
		}
	}
}

// segmentsOf pipe-splits and unescapes a flushed buffer per spec §4.1
// "Buffer flush".
func segmentsOf(raw string) []string {
	parts := textlit.SplitPipeFields(raw)
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = textlit.Unescape(p)
	}
	return out
}

func (s *scanner) collect(code diag.Code, message string) {
	s.collector.Collect(diag.NewIssue(diag.Error, code, message).WithSpan(s.spanHere()).Build())
}
