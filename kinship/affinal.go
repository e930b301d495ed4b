package kinship

// affinalRelationships implements spec §4.4.3 step 6: in-law
// relationships mediated by a spouse of A (ViaSpouse) or of B
// (ViaBloodSpouse).
func affinalRelationships(idx *indices, a, b string) []Relationship {
	var rels []Relationship

	for _, s := range sortedSpouseKeys(idx.spouses[a]) {
		if s == b {
			continue
		}
		info := idx.spouses[a][s]
		for _, br := range lineageRelationships(idx, s, b, ancestorsOf(idx, s), ancestorsOf(idx, b)) {
			rels = append(rels, Affinal{SubType: "ViaSpouse", SpouseID: s, BloodRel: br, IsExUnion: !info.Active})
		}
	}

	for _, s := range sortedSpouseKeys(idx.spouses[b]) {
		if s == a {
			continue
		}
		info := idx.spouses[b][s]
		for _, br := range lineageRelationships(idx, a, s, ancestorsOf(idx, a), ancestorsOf(idx, s)) {
			rels = append(rels, Affinal{SubType: "ViaBloodSpouse", SpouseID: s, BloodRel: br, IsExUnion: !info.Active})
		}
	}

	return rels
}

// coAffinalRelationships implements spec §4.4.3 step 7: A's active
// spouse and B's active spouse share a blood relationship.
func coAffinalRelationships(idx *indices, a, b string) []Relationship {
	var rels []Relationship
	for _, sa := range sortedSpouseKeys(idx.spouses[a]) {
		if !idx.spouses[a][sa].Active {
			continue
		}
		for _, sb := range sortedSpouseKeys(idx.spouses[b]) {
			if !idx.spouses[b][sb].Active || sa == sb {
				continue
			}
			for _, br := range lineageRelationships(idx, sa, sb, ancestorsOf(idx, sa), ancestorsOf(idx, sb)) {
				rels = append(rels, CoAffinal{SpouseA: sa, SpouseB: sb, BloodRel: br})
			}
		}
	}
	return rels
}

// extendedAffinalRelationships implements spec §4.4.3 step 8: for every
// blood relative r of A (up or down the lineage graph), if r has an
// active spouse s with any blood path to B, emit the composed relation.
func extendedAffinalRelationships(idx *indices, a, b string) []Relationship {
	var rels []Relationship
	ancA := ancestorsOf(idx, a)

	relatives := map[string]bool{}
	for id := range ancA {
		if id != a {
			relatives[id] = true
		}
	}
	visited := map[string]bool{a: true}
	collectDescendants(idx, a, relatives, visited)

	ids := make([]string, 0, len(relatives))
	for id := range relatives {
		ids = append(ids, id)
	}
	sortStrings(ids)

	for _, r := range ids {
		if r == b {
			continue
		}
		for _, s := range sortedSpouseKeys(idx.spouses[r]) {
			if s == a || s == b || !idx.spouses[r][s].Active {
				continue
			}
			relA := lineageRelationships(idx, a, r, ancA, ancestorsOf(idx, r))
			relB := lineageRelationships(idx, s, b, ancestorsOf(idx, s), ancestorsOf(idx, b))
			if len(relA) == 0 || len(relB) == 0 {
				continue
			}
			for _, ra := range relA {
				for _, rb := range relB {
					rels = append(rels, ExtendedAffinal{Spouse1: r, Spouse2: s, RelA: ra, RelB: rb})
				}
			}
		}
	}
	return rels
}

func collectDescendants(idx *indices, id string, out, visited map[string]bool) {
	children := make([]string, 0, len(idx.children[id]))
	for c := range idx.children[id] {
		children = append(children, c)
	}
	sortStrings(children)
	for _, c := range children {
		if visited[c] {
			continue
		}
		visited[c] = true
		out[c] = true
		collectDescendants(idx, c, out, visited)
	}
}
