package kinshiptext

import (
	"fmt"
	"strings"

	"github.com/arthurdick/familytree-text/internal/ident"
	"github.com/arthurdick/familytree-text/kinship"
)

// Term is the rendered {term, detail} result of spec §4.4.4.
type Term struct {
	Term   string
	Detail string
}

// Describe renders rel from A's point of view (A's gender chooses the
// base term) into a Term, per spec §4.4.4.
func Describe(rel kinship.Relationship, genderA Gender, nameA, nameB string) Term {
	detail := fmt.Sprintf("%s relative to %s", nameA, nameB)

	switch v := rel.(type) {
	case kinship.Identity:
		return Term{Term: "Self", Detail: detail}
	case kinship.Union:
		return Term{Term: unionTerm(v, genderA), Detail: detail}
	case kinship.Lineage:
		return Term{Term: lineageTerm(v, genderA), Detail: detail}
	case kinship.StepParent:
		return Term{Term: prefixFormerStep(parentBase(genderA), true, v.IsEx), Detail: detail}
	case kinship.StepChild:
		return Term{Term: prefixFormerStep(childBase(genderA), true, v.IsEx), Detail: detail}
	case kinship.StepSibling:
		return Term{Term: prefixFormerStep(siblingBase(genderA), true, !v.UnionActive), Detail: detail}
	case kinship.Affinal:
		return Term{Term: affinalTerm(v, genderA), Detail: detail}
	case kinship.CoAffinal:
		return Term{Term: "Co-Parent-in-law", Detail: detail}
	case kinship.ExtendedAffinal:
		return Term{Term: extendedAffinalTerm(v, genderA), Detail: detail}
	case kinship.None:
		return Term{Term: "No Known Relationship", Detail: detail}
	default:
		return Term{Term: "Unknown", Detail: detail}
	}
}

func parentBase(g Gender) string {
	switch g {
	case Male:
		return "Father"
	case Female:
		return "Mother"
	default:
		return "Parent"
	}
}

func childBase(g Gender) string {
	switch g {
	case Male:
		return "Son"
	case Female:
		return "Daughter"
	default:
		return "Child"
	}
}

func siblingBase(g Gender) string {
	switch g {
	case Male:
		return "Brother"
	case Female:
		return "Sister"
	default:
		return "Sibling"
	}
}

func avuncularBase(g Gender) string {
	if g == Male {
		return "Uncle"
	}
	if g == Female {
		return "Aunt"
	}
	return "Uncle/Aunt"
}

func niblingBase(g Gender) string {
	if g == Male {
		return "Nephew"
	}
	if g == Female {
		return "Niece"
	}
	return "Nephew/Niece"
}

func greatLadder(base string, greats int) string {
	switch {
	case greats <= 0:
		return "Grand" + base
	case greats == 1:
		return "Great-Grand" + base
	default:
		return fmt.Sprintf("%dx Great-Grand%s", greats, base)
	}
}

func greatAvuncularLadder(base string, greats int) string {
	switch {
	case greats <= 0:
		return base
	case greats == 1:
		return "Great-" + base
	default:
		return fmt.Sprintf("%dx Great-%s", greats, base)
	}
}

func unionTerm(u kinship.Union, g Gender) string {
	base := "Partner"
	switch strings.ToUpper(u.Type) {
	case "MARR":
		if g == Male {
			base = "Husband"
		} else if g == Female {
			base = "Wife"
		} else {
			base = "Spouse"
		}
	case "CIVL":
		base = "Civil Partner"
	case "PART":
		base = "Partner"
	case "UNK", "":
		base = "Partner"
	default:
		base = ident.Capitalize(strings.ToLower(u.Type)) + " Partner"
	}
	if !u.Active {
		return "Former " + base
	}
	return base
}

// lineageTerm renders the ancestor/descendant/collateral term ladder of
// spec §4.4.4, applying the prefix priority Former Step- / Step- /
// Half- / Double  and an (Ambiguous) suffix.
func lineageTerm(l kinship.Lineage, g Gender) string {
	base := lineageBase(l, g)
	base = applyAdoptionQualifier(l, base)

	if l.IsDouble {
		base = "Double " + base
	}
	if l.IsHalf {
		base = "Half-" + base
	}
	if l.IsAmbiguous {
		base += " (Ambiguous)"
	}
	if l.IsStep {
		if l.IsExStep {
			base = "Former Step-" + base
		} else {
			base = "Step-" + base
		}
	}
	return base
}

func lineageBase(l kinship.Lineage, g Gender) string {
	switch {
	case l.DistB == 0 && l.DistA > 0:
		return ancestorTerm(l.DistA, g)
	case l.DistA == 0 && l.DistB > 0:
		return descendantTerm(l.DistB, g)
	case l.DistA == 1 && l.DistB == 1:
		return siblingBase(g)
	case l.DistA == 1 && l.DistB > 1:
		return greatAvuncularLadder(avuncularBase(g), l.DistB-2)
	case l.DistB == 1 && l.DistA > 1:
		return greatAvuncularLadder(niblingBase(g), l.DistA-2)
	default:
		return cousinTerm(l.DistA, l.DistB)
	}
}

func ancestorTerm(dist int, g Gender) string {
	if dist == 1 {
		return parentBase(g)
	}
	return greatLadder(parentBase(g), dist-2)
}

func descendantTerm(dist int, g Gender) string {
	if dist == 1 {
		return childBase(g)
	}
	return greatLadder(childBase(g), dist-2)
}

func cousinTerm(distA, distB int) string {
	ordinal := min(distA, distB) - 1
	removed := distA - distB
	if removed < 0 {
		removed = -removed
	}
	term := fmt.Sprintf("%s Cousin", ordinalName(ordinal))
	if removed > 0 {
		term += fmt.Sprintf(" (%dx Removed)", removed)
	}
	return term
}

func ordinalName(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}

// applyAdoptionQualifier implements spec §4.4.4's adoption rule: direct
// lineage (distA or distB == 0) renders an Adoptive/Adopted/Foster
// prefix in place of the base, donor/surrogate render literally at
// (distA=0, distB=1) and (distA=1, distB=0); any other tier gets a
// trailing "(Adoptive)".
func applyAdoptionQualifier(l kinship.Lineage, base string) string {
	switch {
	case l.DistA == 0 && l.DistB == 1:
		if term, ok := donorSurrogateTerm(l.LineageB); ok {
			return term
		}
		if l.LineageB == "" {
			return base
		}
	case l.DistB == 0 && l.DistA == 1:
		if term, ok := donorSurrogateTerm(l.LineageA); ok {
			return term
		}
		if l.LineageA == "" {
			return base
		}
	}
	if !l.IsAdoptive && !l.IsFoster {
		return base
	}
	direct := l.DistA == 0 || l.DistB == 0
	if direct {
		if l.IsFoster {
			return "Foster " + base
		}
		if l.DistA == 0 {
			return "Adopted " + base
		}
		return "Adoptive " + base
	}
	return base + " (Adoptive)"
}

// donorSurrogateTerm implements spec §4.4.4's literal override: a direct
// DONR/SURR parent type renders as a fixed noun instead of the ordinary
// gendered Father/Mother/Parent base, regardless of the child's gender.
func donorSurrogateTerm(lineageType string) (string, bool) {
	switch lineageType {
	case "DONR":
		return "Sperm Donor", true
	case "SURR":
		return "Surrogate Mother", true
	default:
		return "", false
	}
}

func affinalTerm(a kinship.Affinal, g Gender) string {
	inner := Describe(a.BloodRel, g, "", "")
	base := inner.Term + "-in-law"
	if a.IsExUnion {
		base = "Former " + base
	}
	return base
}

func extendedAffinalTerm(e kinship.ExtendedAffinal, g Gender) string {
	termA := Describe(e.RelA, g, "", "").Term
	termSpouse1ToB := Describe(e.RelB, g, "", "").Term
	return fmt.Sprintf("%s of %s-in-law", termA, termSpouse1ToB)
}

func prefixFormerStep(base string, isStep, isEx bool) string {
	if !isStep {
		return base
	}
	if isEx {
		return "Former Step-" + base
	}
	return "Step-" + base
}
