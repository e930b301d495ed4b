package postprocess

import (
	"sort"

	"github.com/arthurdick/familytree-text/record"
)

// reconcileChildren implements spec §4.3.2: PARENT on the child is the
// source of truth for lineage. For each parent p, the user's CHILD manifest
// order is preserved (dropping any entry that doesn't refer to a real
// record), and any actual child missing from the manifest is appended,
// ordered by chronological BORN[0] key ("forgotten children").
func reconcileChildren(doc *record.Document) {
	actualChildrenOf := computeActualChildren(doc)

	for _, pID := range doc.RecordOrder() {
		parent, _ := doc.Record(pID)
		actual := actualChildrenOf[pID]
		if len(actual) == 0 && !parent.HasField("CHILD") {
			continue
		}

		inManifest := make(map[string]bool, len(actual))
		var reconciled []*record.Field
		for _, f := range parent.Fields("CHILD") {
			childID, ok := f.Segment(0)
			if !ok {
				continue
			}
			if _, exists := doc.Record(childID); !exists {
				continue
			}
			reconciled = append(reconciled, f)
			inManifest[childID] = true
		}

		var forgotten []string
		for childID := range actual {
			if !inManifest[childID] {
				forgotten = append(forgotten, childID)
			}
		}
		sort.Slice(forgotten, func(i, j int) bool {
			return chronologicalKey(doc, forgotten[i]) < chronologicalKey(doc, forgotten[j])
		})

		for _, childID := range forgotten {
			f := record.NewField("CHILD", childID, []string{childID}, parent.Span())
			f.MarkImplicit()
			reconciled = append(reconciled, f)
		}

		parent.SetFields("CHILD", reconciled)
	}
}

// computeActualChildren scans every record's PARENT arrows and returns, for
// each parent ID, the set of child IDs that name it.
func computeActualChildren(doc *record.Document) map[string]map[string]bool {
	out := make(map[string]map[string]bool)
	for _, cID := range doc.RecordOrder() {
		child, _ := doc.Record(cID)
		for _, f := range child.Fields("PARENT") {
			pID, ok := f.Segment(0)
			if !ok || pID == "" || record.IsPlaceholderRef(pID) {
				continue
			}
			if _, exists := doc.Record(pID); !exists {
				continue
			}
			if out[pID] == nil {
				out[pID] = make(map[string]bool)
			}
			out[pID][cID] = true
		}
	}
	return out
}

// chronologicalKey extracts the longest leading `YYYY(-MM(-DD)?)?` substring
// of childID's BORN[0], per spec §4.3.2. A missing or malformed date sorts
// last via a sentinel key that is lexicographically greater than any real
// date string.
func chronologicalKey(doc *record.Document, childID string) string {
	const sentinel = "9999-99-99"
	child, ok := doc.Record(childID)
	if !ok {
		return sentinel
	}
	born, ok := child.Field("BORN")
	if !ok {
		return sentinel
	}
	v, ok := born.Segment(0)
	if !ok {
		return sentinel
	}
	key := leadingDatePrefix(v)
	if key == "" {
		return sentinel
	}
	return key
}

// leadingDatePrefix returns the longest leading digit-group-dash run of s
// matching `YYYY`, `YYYY-MM`, or `YYYY-MM-DD`; empty if s doesn't start with
// 4 digits.
func leadingDatePrefix(s string) string {
	if len(s) < 4 || !isDigits(s[:4]) {
		return ""
	}
	if len(s) < 7 || s[4] != '-' || !isDigits(s[5:7]) {
		return s[:4]
	}
	if len(s) < 10 || s[7] != '-' || !isDigits(s[8:10]) {
		return s[:7]
	}
	return s[:10]
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
