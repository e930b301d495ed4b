package validate

import (
	"github.com/arthurdick/familytree-text/diag"
	"github.com/arthurdick/familytree-text/location"
	"github.com/arthurdick/familytree-text/record"
)

// referenceCheckedKeys are the fields whose first segment must resolve to a
// declared record or a placeholder (spec §4.2 step 2).
var referenceCheckedKeys = []string{"PARENT", "CHILD", "UNION", "ASSOC", "SRC", "EVENT_REF"}

// checkDanglingReferences implements spec §4.2 step 2: every first-segment
// ID in {PARENT, CHILD, UNION, ASSOC, SRC, EVENT_REF} and every first
// segment of a *_SRC modifier must either be a placeholder or resolve to a
// declared record.
func checkDanglingReferences(doc *record.Document, collector *diag.Collector) {
	for _, id := range doc.RecordOrder() {
		rec, _ := doc.Record(id)
		for _, key := range referenceCheckedKeys {
			code := diag.E_DANGLING_REF
			if key == "SRC" {
				code = diag.E_DANGLING_SRC
			}
			for _, f := range rec.Fields(key) {
				ref, ok := f.Segment(0)
				if !ok {
					continue
				}
				reportIfDangling(doc, collector, code, id, key, ref, f.Span())
			}
		}
		for _, key := range rec.FieldKeys() {
			for _, f := range rec.Fields(key) {
				for _, modKey := range f.ModifierKeys() {
					for _, m := range f.Modifiers(modKey) {
						if !m.IsSourceModifier() {
							continue
						}
						ref, ok := m.Segment(0)
						if !ok {
							continue
						}
						reportIfDangling(doc, collector, diag.E_DANGLING_SRC, id, m.Key(), ref, m.Span())
					}
				}
			}
		}
	}
}

func reportIfDangling(doc *record.Document, collector *diag.Collector, code diag.Code, recID, fieldKey, ref string, span location.Span) {
	if ref == "" || record.IsPlaceholderRef(ref) {
		return
	}
	if _, exists := doc.Record(ref); exists {
		return
	}
	collector.Collect(diag.NewIssue(diag.Error, code,
		"record \""+recID+"\" field "+fieldKey+" references undeclared ID \""+ref+"\"").
		WithSpan(span).Build())
}
