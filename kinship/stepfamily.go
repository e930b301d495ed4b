package kinship

// stepParentOrChild implements spec §4.4.3 step 4: direct step-parent /
// step-child, detected from the injected STE/STE_EX parentType entries.
func stepParentOrChild(idx *indices, a, b string) []Relationship {
	var rels []Relationship

	if t, ok := idx.parentType[b][a]; ok && isStepType(t) {
		if bio := bioSpouseParentOf(idx, b, a); bio != "" {
			rels = append(rels, StepParent{ParentID: bio, IsEx: t == "ste_ex"})
		}
	}
	if t, ok := idx.parentType[a][b]; ok && isStepType(t) {
		if bio := bioSpouseParentOf(idx, a, b); bio != "" {
			rels = append(rels, StepChild{ParentID: bio, IsEx: t == "ste_ex"})
		}
	}
	return rels
}

// bioSpouseParentOf returns childID's lineage parent who is married to
// stepParentID, if any.
func bioSpouseParentOf(idx *indices, childID, stepParentID string) string {
	for _, p := range idx.lineageParents[childID] {
		if _, married := partnerInfo(idx, p, stepParentID); married {
			return p
		}
	}
	return ""
}

// stepSiblingRelationships implements spec §4.4.3 step 5.
func stepSiblingRelationships(idx *indices, a, b string) []Relationship {
	if sharesLineageParent(idx, a, b) {
		return nil
	}
	var rels []Relationship
	seen := map[[2]string]bool{}
	for _, pa := range idx.allParents[a] {
		for _, pb := range idx.allParents[b] {
			if pa == pb {
				continue
			}
			info, partnered := partnerInfo(idx, pa, pb)
			if !partnered {
				continue
			}
			key := [2]string{pa, pb}
			if key[1] < key[0] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			rels = append(rels, StepSibling{ParentA: pa, ParentB: pb, UnionActive: info.Active, UnionReason: info.Reason})
		}
	}
	return rels
}

func sharesLineageParent(idx *indices, a, b string) bool {
	setB := map[string]bool{}
	for _, p := range idx.lineageParents[b] {
		setB[p] = true
	}
	for _, p := range idx.lineageParents[a] {
		if setB[p] {
			return true
		}
	}
	return false
}

// partnerInfo reports whether pa and pb are partners, either by an
// explicit UNION edge in either direction or by sharing a child.
func partnerInfo(idx *indices, pa, pb string) (spouseInfo, bool) {
	if info, ok := idx.spouses[pa][pb]; ok {
		return info, true
	}
	if info, ok := idx.spouses[pb][pa]; ok {
		return info, true
	}
	if sharesChild(idx, pa, pb) {
		return spouseInfo{Active: true}, true
	}
	return spouseInfo{}, false
}

func sharesChild(idx *indices, pa, pb string) bool {
	for c := range idx.children[pa] {
		if idx.children[pb][c] {
			return true
		}
	}
	return false
}
