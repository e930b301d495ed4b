package postprocess

import (
	"strconv"

	"github.com/arthurdick/familytree-text/diag"
	"github.com/arthurdick/familytree-text/record"
)

// reconcileUnions implements spec §4.3.1: for every record A with UNION→B,
// if B exists and does not already list A in its UNIONs, an implicit UNION
// field is appended to B with A substituted as the target segment and every
// other segment copied from A's field. If both directions already exist,
// segments 1..4 (type, start date, end date, termination reason) are
// compared; a mismatched pair emits Warning(DATA_CONSISTENCY).
func reconcileUnions(doc *record.Document, collector *diag.Collector) {
	// Collect additions first so that inspecting "does B already list A"
	// always sees only user-authored fields, never an implicit field
	// appended earlier in this same pass (processing order must not affect
	// the result).
	type addition struct {
		target *record.Record
		field  *record.Field
	}
	var additions []addition

	for _, aID := range doc.RecordOrder() {
		a, _ := doc.Record(aID)
		for _, f := range a.Fields("UNION") {
			bID, ok := f.Segment(0)
			if !ok || bID == "" || record.IsPlaceholderRef(bID) {
				continue
			}
			b, exists := doc.Record(bID)
			if !exists {
				continue // reported as a dangling reference by validate
			}
			reciprocal := findUnion(b, aID)
			if reciprocal != nil {
				compareUnionSegments(collector, aID, bID, f, reciprocal)
				continue
			}
			segments := append([]string{aID}, f.Segments()[1:]...)
			implicit := record.NewField("UNION", f.Raw(), segments, f.Span())
			implicit.MarkImplicit()
			additions = append(additions, addition{target: b, field: implicit})
		}
	}

	for _, add := range additions {
		add.target.AddField(add.field)
	}
}

// findUnion returns the UNION field on rec targeting partnerID, if any.
func findUnion(rec *record.Record, partnerID string) *record.Field {
	for _, f := range rec.Fields("UNION") {
		if ref, ok := f.Segment(0); ok && ref == partnerID {
			return f
		}
	}
	return nil
}

func compareUnionSegments(collector *diag.Collector, aID, bID string, a, b *record.Field) {
	for i := 1; i <= 4; i++ {
		av, _ := a.Segment(i)
		bv, _ := b.Segment(i)
		if av != bv {
			collector.Collect(diag.NewIssue(diag.Warning, diag.W_DATA_CONSISTENCY,
				"union between \""+aID+"\" and \""+bID+"\" disagrees on segment "+strconv.Itoa(i)+
					": \""+av+"\" vs \""+bv+"\"").
				WithSpan(a.Span()).Build())
		}
	}
}
