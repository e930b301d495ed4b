package kinship

import (
	"sort"
	"strings"

	"github.com/arthurdick/familytree-text/record"
	"github.com/arthurdick/familytree-text/validate"
)

// spouseInfo captures one direction of a UNION edge (spec §4.4.1).
type spouseInfo struct {
	Active bool
	Reason string
	Type   string
}

// indices holds the derived, built-once lookups of spec §4.4.1.
type indices struct {
	lineageParents map[string][]string
	allParents     map[string][]string
	parentType     map[string]map[string]string
	children       map[string]map[string]bool
	spouses        map[string]map[string]spouseInfo
}

func buildIndices(graph *record.RecordGraph) *indices {
	idx := &indices{
		lineageParents: map[string][]string{},
		allParents:     map[string][]string{},
		parentType:     map[string]map[string]string{},
		children:       map[string]map[string]bool{},
		spouses:        map[string]map[string]spouseInfo{},
	}

	for _, id := range graph.RecordOrder() {
		rec, _ := graph.Record(id)
		if rec.Kind() != record.KindIndividual {
			continue
		}
		idx.parentType[id] = map[string]string{}

		for _, f := range rec.Fields("PARENT") {
			ref, ok := f.Segment(0)
			if !ok || ref == "" {
				continue
			}
			if _, exists := graph.Record(ref); !exists {
				continue
			}
			t, _ := f.Segment(1)
			idx.parentType[id][ref] = strings.ToLower(t)
			idx.allParents[id] = append(idx.allParents[id], ref)
			if t == "" || validate.IsLineageParentType(t) {
				idx.lineageParents[id] = append(idx.lineageParents[id], ref)
			}
			if idx.children[ref] == nil {
				idx.children[ref] = map[string]bool{}
			}
			idx.children[ref][id] = true
		}

		for _, f := range rec.Fields("UNION") {
			partner, ok := f.Segment(0)
			if !ok || partner == "" {
				continue
			}
			if _, exists := graph.Record(partner); !exists {
				continue
			}
			typ, _ := f.Segment(1)
			endDate, _ := f.Segment(3)
			reason, _ := f.Segment(4)
			active := !(reason != "" || (endDate != "" && endDate != ".." && endDate != "?"))
			if idx.spouses[id] == nil {
				idx.spouses[id] = map[string]spouseInfo{}
			}
			idx.spouses[id][partner] = spouseInfo{Active: active, Reason: reason, Type: typ}
		}
	}

	idx.injectStepParents(graph)
	return idx
}

// injectStepParents appends an active or former-step relationship for
// each of a lineage parent's spouses not already listed as a parent,
// per the last paragraph of spec §4.4.1.
func (idx *indices) injectStepParents(graph *record.RecordGraph) {
	for _, id := range graph.RecordOrder() {
		rec, _ := graph.Record(id)
		if rec.Kind() != record.KindIndividual {
			continue
		}
		for _, b := range idx.lineageParents[id] {
			for _, spouse := range sortedSpouseKeys(idx.spouses[b]) {
				if _, already := idx.parentType[id][spouse]; already {
					continue
				}
				if spouse == id {
					continue
				}
				info := idx.spouses[b][spouse]
				if idx.parentType[id] == nil {
					idx.parentType[id] = map[string]string{}
				}
				if info.Active {
					idx.parentType[id][spouse] = "ste"
				} else {
					idx.parentType[id][spouse] = "ste_ex"
				}
				idx.allParents[id] = append(idx.allParents[id], spouse)
			}
		}
	}
}

func sortedSpouseKeys(m map[string]spouseInfo) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isStepType(t string) bool { return t == "ste" || t == "ste_ex" }
