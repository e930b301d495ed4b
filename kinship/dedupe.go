package kinship

import "fmt"

// dedupe implements spec §4.4.3 step 9: drop exact repeats by a
// variant-specific composite key.
func dedupe(rels []Relationship) []Relationship {
	seen := map[string]bool{}
	out := make([]Relationship, 0, len(rels))
	for _, r := range rels {
		k := dedupeKey(r)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}

func dedupeKey(r Relationship) string {
	switch v := r.(type) {
	case Identity:
		return "identity"
	case Union:
		return fmt.Sprintf("union|%s|%v|%s|%s", v.Target, v.Active, v.Reason, v.Type)
	case Lineage:
		return fmt.Sprintf("lineage|%s|%d|%d|%v|%v|%s|%s", v.AncestorID, v.DistA, v.DistB, v.IsStep, v.IsExStep, v.LineageA, v.LineageB)
	case StepParent:
		return fmt.Sprintf("stepparent|%s|%v", v.ParentID, v.IsEx)
	case StepChild:
		return fmt.Sprintf("stepchild|%s|%v", v.ParentID, v.IsEx)
	case StepSibling:
		// Unordered: the same pair of partnered parents can be reached by
		// walking A's and B's allParents in either order.
		pa, pb := v.ParentA, v.ParentB
		if pb < pa {
			pa, pb = pb, pa
		}
		return fmt.Sprintf("stepsibling|%s|%s", pa, pb)
	case Affinal:
		return fmt.Sprintf("affinal|%s|%s|%s|%v", v.SubType, v.SpouseID, dedupeKey(v.BloodRel), v.IsExUnion)
	case CoAffinal:
		return fmt.Sprintf("coaffinal|%s|%s|%s", v.SpouseA, v.SpouseB, dedupeKey(v.BloodRel))
	case ExtendedAffinal:
		return fmt.Sprintf("extended|%s|%s|%s|%s", v.Spouse1, v.Spouse2, dedupeKey(v.RelA), dedupeKey(v.RelB))
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// filterRedundant implements spec §4.4.3 step 10's priority rules: a
// closer, more specific relationship suppresses a farther or more
// generic one that the enumeration also produced for the same pair.
func filterRedundant(rels []Relationship) []Relationship {
	hasStepParent := hasVariant(rels, func(r Relationship) bool { _, ok := r.(StepParent); return ok })
	hasStepChild := hasVariant(rels, func(r Relationship) bool { _, ok := r.(StepChild); return ok })

	var directNonStepLineage bool
	var anyNonStepLineage bool
	for _, r := range rels {
		if l, ok := r.(Lineage); ok && !l.IsStep {
			anyNonStepLineage = true
			if l.DistA == 0 || l.DistB == 0 {
				directNonStepLineage = true
			}
		}
	}

	hasOtherThanExtended := false
	for _, r := range rels {
		if _, ok := r.(ExtendedAffinal); !ok {
			hasOtherThanExtended = true
			break
		}
	}

	out := make([]Relationship, 0, len(rels))
	for _, r := range rels {
		switch v := r.(type) {
		case ExtendedAffinal:
			if hasOtherThanExtended {
				continue
			}
		case Lineage:
			if v.IsStep {
				if hasStepParent && v.DistB == 1 {
					continue
				}
				if hasStepChild && v.DistA == 1 {
					continue
				}
				if anyNonStepLineage {
					continue
				}
			} else if isDominatedCollateral(v, rels) {
				continue
			}
		case Affinal:
			if v.SubType == "ViaSpouse" {
				if lin, ok := v.BloodRel.(Lineage); ok && hasStepParent && lin.DistA == 0 {
					continue
				}
			}
			if directNonStepLineage {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func hasVariant(rels []Relationship, pred func(Relationship) bool) bool {
	for _, r := range rels {
		if pred(r) {
			return true
		}
	}
	return false
}

// isDominatedCollateral drops a collateral (non-direct) Lineage when a
// direct blood Parent with matching adoption/foster flags is present —
// spec §4.4.3 step 10's last rule.
func isDominatedCollateral(v Lineage, rels []Relationship) bool {
	if v.DistA == 0 || v.DistB == 0 {
		return false
	}
	for _, r := range rels {
		other, ok := r.(Lineage)
		if !ok || other.IsStep {
			continue
		}
		if (other.DistA == 0 || other.DistB == 0) &&
			other.IsAdoptive == v.IsAdoptive && other.IsFoster == v.IsFoster {
			return true
		}
	}
	return false
}
