package exportjson

import (
	"encoding/json"

	"github.com/arthurdick/familytree-text/kinship"
)

// MarshalRelationships serializes a [kinship.Relationship] slice to JSON,
// tagging each element with a "$type" field the way the teacher's
// adapter/json tags schema-routed union values, per spec §6.2's
// calculate(idA, idB) result shape.
func MarshalRelationships(rels []kinship.Relationship, opts ...WriteOption) ([]byte, error) {
	cfg := resolve(opts)
	out := make([]map[string]any, 0, len(rels))
	for _, r := range rels {
		out = append(out, relationshipObject(r))
	}
	if cfg.indent != "" {
		return json.MarshalIndent(out, "", cfg.indent)
	}
	return json.Marshal(out)
}

// relationshipObject converts a single Relationship variant into a
// "$type"-tagged map, recursing into nested Affinal/ExtendedAffinal
// BloodRel/RelA/RelB fields.
func relationshipObject(r kinship.Relationship) map[string]any {
	switch v := r.(type) {
	case kinship.Identity:
		return map[string]any{"$type": "Identity"}

	case kinship.Union:
		return map[string]any{
			"$type":  "Union",
			"target": v.Target,
			"active": v.Active,
			"reason": v.Reason,
			"type":   v.Type,
		}

	case kinship.Lineage:
		return map[string]any{
			"$type":        "Lineage",
			"ancestorId":   v.AncestorID,
			"distA":        v.DistA,
			"distB":        v.DistB,
			"isStep":       v.IsStep,
			"isExStep":     v.IsExStep,
			"isHalf":       v.IsHalf,
			"isAmbiguous":  v.IsAmbiguous,
			"isDouble":     v.IsDouble,
			"isAdoptive":   v.IsAdoptive,
			"isFoster":     v.IsFoster,
			"lineageA":     v.LineageA,
			"lineageB":     v.LineageB,
		}

	case kinship.StepParent:
		return map[string]any{
			"$type":    "StepParent",
			"parentId": v.ParentID,
			"isEx":     v.IsEx,
		}

	case kinship.StepChild:
		return map[string]any{
			"$type":    "StepChild",
			"parentId": v.ParentID,
			"isEx":     v.IsEx,
		}

	case kinship.StepSibling:
		return map[string]any{
			"$type":        "StepSibling",
			"parentA":      v.ParentA,
			"parentB":      v.ParentB,
			"unionActive":  v.UnionActive,
			"unionReason":  v.UnionReason,
		}

	case kinship.Affinal:
		return map[string]any{
			"$type":      "Affinal",
			"subType":    v.SubType,
			"spouseId":   v.SpouseID,
			"bloodRel":   relationshipObject(v.BloodRel),
			"isExUnion":  v.IsExUnion,
		}

	case kinship.CoAffinal:
		return map[string]any{
			"$type":    "CoAffinal",
			"spouseA":  v.SpouseA,
			"spouseB":  v.SpouseB,
			"bloodRel": relationshipObject(v.BloodRel),
		}

	case kinship.ExtendedAffinal:
		return map[string]any{
			"$type":   "ExtendedAffinal",
			"spouse1": v.Spouse1,
			"spouse2": v.Spouse2,
			"relA":    relationshipObject(v.RelA),
			"relB":    relationshipObject(v.RelB),
		}

	case kinship.None:
		return map[string]any{"$type": "None"}

	default:
		return map[string]any{"$type": "Unknown"}
	}
}
