package validate

import (
	"github.com/arthurdick/familytree-text/diag"
	"github.com/arthurdick/familytree-text/record"
)

// checkGhostChildren implements spec §4.2 step 3: for each CHILD(c) under
// parent p, if c is a non-placeholder defined record, c must list p under
// PARENT; otherwise the child is a "ghost" dangling one-way reference.
func checkGhostChildren(doc *record.Document, collector *diag.Collector) {
	for _, pID := range doc.RecordOrder() {
		parent, _ := doc.Record(pID)
		for _, f := range parent.Fields("CHILD") {
			childID, ok := f.Segment(0)
			if !ok || childID == "" || record.IsPlaceholderRef(childID) {
				continue
			}
			child, exists := doc.Record(childID)
			if !exists {
				continue // already reported as a dangling reference
			}
			if !childListsParent(child, pID) {
				collector.Collect(diag.NewIssue(diag.Error, diag.E_GHOST_CHILD,
					"\""+pID+"\" lists CHILD \""+childID+"\", but \""+childID+"\" does not list \""+pID+"\" under PARENT").
					WithSpan(f.Span()).Build())
			}
		}
	}
}

func childListsParent(child *record.Record, parentID string) bool {
	for _, f := range child.Fields("PARENT") {
		if ref, ok := f.Segment(0); ok && ref == parentID {
			return true
		}
	}
	return false
}
