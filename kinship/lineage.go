package kinship

// commonAncestor is one Cartesian-product pairing of an A-path and a
// B-path meeting at the same ancestor (spec §4.4.3 step 3).
type commonAncestor struct {
	id             string
	distA, distB   int
	isStep         bool
	isExStep       bool
	isAdoptiveA    bool
	isAdoptiveB    bool
	isFosterA      bool
	isFosterB      bool
	lineageA       string
	lineageB       string
	initialBranchA string
	initialBranchB string
	viaPartnerA    string
	viaPartnerB    string
}

type tierKey struct {
	distA, distB     int
	isStep, isExStep bool
	lineageA         string
	lineageB         string
}

// lineageRelationships implements spec §4.4.3 step 3: it finds every
// common ancestor of A and B, filters to lowest common ancestors, groups
// the survivors into tiers, and emits one Lineage per tier.
func lineageRelationships(idx *indices, a, b string, ancA, ancB map[string][]PathInfo) []Relationship {
	var candidates []commonAncestor
	for id, pathsA := range ancA {
		pathsB, ok := ancB[id]
		if !ok {
			continue
		}
		for _, pa := range pathsA {
			for _, pb := range pathsB {
				candidates = append(candidates, commonAncestor{
					id:             id,
					distA:          pa.Dist,
					distB:          pb.Dist,
					isStep:         pa.IsStep || pb.IsStep,
					isExStep:       pa.IsExStep || pb.IsExStep,
					isAdoptiveA:    pa.IsAdoptive,
					isAdoptiveB:    pb.IsAdoptive,
					isFosterA:      pa.IsFoster,
					isFosterB:      pb.IsFoster,
					lineageA:       pa.LineageType,
					lineageB:       pb.LineageType,
					initialBranchA: pa.InitialBranch,
					initialBranchB: pb.InitialBranch,
					viaPartnerA:    pa.ViaPartner,
					viaPartnerB:    pb.ViaPartner,
				})
			}
		}
	}

	lcas := filterLCAs(idx, candidates)
	if len(lcas) == 0 {
		return nil
	}

	tiers := map[tierKey][]commonAncestor{}
	var order []tierKey
	for _, c := range lcas {
		k := tierKey{c.distA, c.distB, c.isStep, c.isExStep, c.lineageA, c.lineageB}
		if _, ok := tiers[k]; !ok {
			order = append(order, k)
		}
		tiers[k] = append(tiers[k], c)
	}

	rels := make([]Relationship, 0, len(order))
	for _, k := range order {
		rels = append(rels, buildLineage(idx, a, b, k, tiers[k]))
	}
	return rels
}

// filterLCAs drops a candidate ancestor X when another candidate Y is a
// strict descendant of X (reached via the same B-side branch) and
// closer to both A and B — X is not the *lowest* common ancestor.
func filterLCAs(idx *indices, candidates []commonAncestor) []commonAncestor {
	var kept []commonAncestor
outer:
	for _, x := range candidates {
		for _, y := range candidates {
			if y.id == x.id {
				continue
			}
			if y.distA < x.distA && y.distB < x.distB && y.initialBranchB == x.initialBranchB {
				if isAncestorOf(idx, x.id, y.id) {
					continue outer
				}
			}
		}
		kept = append(kept, x)
	}
	return kept
}

func isAncestorOf(idx *indices, ancestorID, descendantID string) bool {
	_, ok := ancestorsOf(idx, descendantID)[ancestorID]
	return ok
}

func buildLineage(idx *indices, a, b string, k tierKey, group []commonAncestor) Relationship {
	l := Lineage{
		AncestorID: group[0].id,
		DistA:      k.distA,
		DistB:      k.distB,
		IsStep:     k.isStep,
		IsExStep:   k.isExStep,
		LineageA:   k.lineageA,
		LineageB:   k.lineageB,
	}
	for _, c := range group {
		l.IsAdoptive = l.IsAdoptive || c.isAdoptiveA || c.isAdoptiveB
		l.IsFoster = l.IsFoster || c.isFosterA || c.isFosterB
	}
	l.IsAdoptive = l.IsAdoptive || k.lineageA == "ADO" || k.lineageB == "ADO"
	l.IsDouble = countDistinctNonPartnerLCAs(idx, group) >= 2

	switch {
	case k.distA == 1 && k.distB == 1:
		l.IsHalf, l.IsAmbiguous = siblingHalfCheck(group)
	case k.distA == 1 && k.distB > 1:
		l.IsHalf, l.IsAmbiguous = avuncularHalfCheck(idx, a)
	case k.distB == 1 && k.distA > 1:
		l.IsHalf, l.IsAmbiguous = avuncularHalfCheck(idx, b)
	default:
		l.IsHalf, l.IsAmbiguous = cousinHalfCheck(group)
	}
	return l
}

// siblingHalfCheck implements the (1,1) branch of spec §4.4.3's isHalf
// rule: positive proof requires a known, differing lineage parent on
// each side at the shared generation. ViaPartner already names each
// side's other lineage parent, so a present, distinct ViaPartner on
// both sides is exactly that proof.
func siblingHalfCheck(group []commonAncestor) (isHalf, isAmbiguous bool) {
	for _, c := range group {
		if c.viaPartnerA != "" && c.viaPartnerB != "" && c.viaPartnerA != c.viaPartnerB {
			return true, false
		}
	}
	return false, true
}

// avuncularHalfCheck implements the (1,N) branch: positive proof
// requires the dist-1 relative (the uncle/aunt, identified by id) to
// have >=2 known lineage parents.
func avuncularHalfCheck(idx *indices, uncleID string) (isHalf, isAmbiguous bool) {
	if len(idx.lineageParents[uncleID]) >= 2 {
		return true, false
	}
	return false, true
}

// cousinHalfCheck implements the (N,N) branch: positive proof requires
// the via-partner at the LCA generation to differ between the two
// sides.
func cousinHalfCheck(group []commonAncestor) (isHalf, isAmbiguous bool) {
	for _, c := range group {
		if c.viaPartnerA != "" && c.viaPartnerB != "" && c.viaPartnerA != c.viaPartnerB {
			return true, false
		}
	}
	return false, false
}

func countDistinctNonPartnerLCAs(idx *indices, group []commonAncestor) int {
	ids := map[string]bool{}
	for _, c := range group {
		ids[c.id] = true
	}
	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}

	count := 0
	used := map[string]bool{}
	for i, id1 := range list {
		if used[id1] {
			continue
		}
		for j, id2 := range list {
			if i == j || used[id2] {
				continue
			}
			if _, partnered := partnerInfo(idx, id1, id2); partnered {
				used[id2] = true
			}
		}
		count++
	}
	return count
}
