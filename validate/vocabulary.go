package validate

import (
	"github.com/arthurdick/familytree-text/diag"
	"github.com/arthurdick/familytree-text/location"
	"github.com/arthurdick/familytree-text/record"
)

// checkVocabulary implements spec §4.2 step 5: PARENT[1] and UNION[1] are
// closed sets (Error if present and unrecognized); UNION[4], when present,
// is also closed (Error); NAME[3] recognizes only PREF (Error if present
// and unrecognized); NAME[2] and ASSOC[1] are open vocabularies, so an
// unrecognized value is only a Warning. Fields synthesized by
// post-processing are skipped, per spec §4.3.1.
func checkVocabulary(doc *record.Document, collector *diag.Collector) {
	for _, id := range doc.RecordOrder() {
		rec, _ := doc.Record(id)

		for _, f := range rec.Fields("PARENT") {
			if f.IsImplicit() {
				continue
			}
			if t, ok := f.Segment(1); ok && t != "" && !IsKnownParentType(t) {
				reportVocab(collector, diag.Error, diag.E_VOCAB_INVALID, id, "PARENT", t, f.Span())
			}
		}

		for _, f := range rec.Fields("UNION") {
			if f.IsImplicit() {
				continue
			}
			if t, ok := f.Segment(1); ok && t != "" && !IsUnionType(t) {
				reportVocab(collector, diag.Error, diag.E_VOCAB_INVALID, id, "UNION", t, f.Span())
			}
			if r, ok := f.Segment(4); ok && r != "" && !IsUnionTerminationReason(r) {
				reportVocab(collector, diag.Error, diag.E_VOCAB_INVALID, id, "UNION", r, f.Span())
			}
		}

		for _, f := range rec.Fields("NAME") {
			if f.IsImplicit() {
				continue
			}
			if t, ok := f.Segment(2); ok && t != "" && !IsNameType(t) {
				reportVocab(collector, diag.Warning, diag.E_VOCAB_NONSTANDARD, id, "NAME", t, f.Span())
			}
			if s, ok := f.Segment(3); ok && s != "" && !IsNameStatus(s) {
				reportVocab(collector, diag.Error, diag.E_VOCAB_INVALID, id, "NAME", s, f.Span())
			}
		}

		for _, f := range rec.Fields("ASSOC") {
			if f.IsImplicit() {
				continue
			}
			if r, ok := f.Segment(1); ok && r != "" && !IsAssociateRole(r) {
				reportVocab(collector, diag.Warning, diag.E_VOCAB_NONSTANDARD, id, "ASSOC", r, f.Span())
			}
		}
	}
}

func reportVocab(collector *diag.Collector, sev diag.Severity, code diag.Code, recID, fieldKey, value string, span location.Span) {
	collector.Collect(diag.NewIssue(sev, code,
		"record \""+recID+"\" field "+fieldKey+" uses non-standard value \""+value+"\"").
		WithSpan(span).Build())
}
