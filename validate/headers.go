package validate

import (
	"github.com/arthurdick/familytree-text/diag"
	"github.com/arthurdick/familytree-text/record"
)

// checkHeaders implements spec §4.2 step 1: HEAD_FORMAT is mandatory;
// HEAD_DATE, if present, must be a valid date literal.
func checkHeaders(doc *record.Document, collector *diag.Collector) {
	if _, ok := doc.Header("HEAD_FORMAT"); !ok {
		collector.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_HEADER,
			"document is missing the required HEAD_FORMAT header").Build())
	}
	if v, ok := doc.Header("HEAD_DATE"); ok && !IsValidDateLiteral(v) {
		collector.Collect(diag.NewIssue(diag.Error, diag.E_INVALID_DATE,
			"HEAD_DATE value \""+v+"\" is not a valid date literal").Build())
	}
}
