package validate

import (
	"github.com/arthurdick/familytree-text/diag"
	"github.com/arthurdick/familytree-text/record"
)

// datePositions lists, for each field key, which segment indices carry a
// date literal (spec §4.2 step 6).
var datePositions = map[string][]int{
	"BORN":       {0},
	"DIED":       {0},
	"EVENT":      {1, 2},
	"UNION":      {2, 3},
	"ASSOC":      {2, 3},
	"MEDIA":      {1},
	"START_DATE": {0},
	"END_DATE":   {0},
}

// checkDates implements spec §4.2 step 6: every date-bearing field segment
// must conform to the FTT date grammar. Implicit fields are skipped, per
// spec §4.3.1.
func checkDates(doc *record.Document, collector *diag.Collector) {
	for _, id := range doc.RecordOrder() {
		rec, _ := doc.Record(id)
		for key, positions := range datePositions {
			for _, f := range rec.Fields(key) {
				if f.IsImplicit() {
					continue
				}
				for _, i := range positions {
					v, ok := f.Segment(i)
					if !ok || v == "" || IsValidDateLiteral(v) {
						continue
					}
					collector.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_DATE,
						"record \""+id+"\" field "+key+" has an invalid date literal \""+v+"\"").
						WithSpan(f.Span()).Build())
				}
			}
		}
	}
}
