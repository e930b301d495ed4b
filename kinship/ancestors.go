package kinship

// PathInfo describes one distinct way of reaching an ancestor from a
// starting record, per the multi-path traversal of spec §4.4.2. It is
// exported because converters and UI layouts may want raw ancestor-path
// data independent of a specific relationship query (see
// Engine.Ancestors).
type PathInfo struct {
	Dist          int
	IsStep        bool
	IsExStep      bool
	IsAdoptive    bool
	IsFoster      bool
	LineageType   string
	InitialBranch string
	ViaPartner    string
	ViaNode       string
}

type queueItem struct {
	id   string
	info PathInfo
}

// ancestorsOf performs the breadth-first multi-path traversal of spec
// §4.4.2, returning every non-redundant path from start to each
// reachable ancestor (including a SELF entry for start itself).
func ancestorsOf(idx *indices, start string) map[string][]PathInfo {
	selfInfo := PathInfo{Dist: 0, LineageType: "SELF"}
	result := map[string][]PathInfo{start: {selfInfo}}
	queue := []queueItem{{id: start, info: selfInfo}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, p := range idx.allParents[cur.id] {
			t := idx.parentType[cur.id][p]
			next := PathInfo{
				Dist:       cur.info.Dist + 1,
				IsStep:     cur.info.IsStep || isStepType(t),
				IsExStep:   cur.info.IsExStep || t == "ste_ex",
				IsAdoptive: cur.info.IsAdoptive || t == "ado",
				IsFoster:   cur.info.IsFoster || t == "fos",
			}

			switch {
			case t == "ado":
				next.LineageType = "ADO"
			case next.IsStep:
				next.LineageType = "STE"
			case cur.info.LineageType == "SELF":
				// Direct parent edge: carry DONR/SURR through so
				// kinshiptext can render the spec §4.4.4 literal terms
				// ("Sperm Donor"/"Surrogate Mother") at dist 1. BIO/LEGL
				// carry no special term, so they collapse to "".
				switch t {
				case "donr":
					next.LineageType = "DONR"
				case "surr":
					next.LineageType = "SURR"
				default:
					next.LineageType = ""
				}
			default:
				next.LineageType = cur.info.LineageType
			}

			if cur.id == start {
				next.InitialBranch = p
			} else {
				next.InitialBranch = cur.info.InitialBranch
			}
			next.ViaNode = p
			next.ViaPartner = coLineageParent(idx, cur.id, p)

			if pathRedundant(result[p], next) {
				continue
			}
			result[p] = append(result[p], next)
			queue = append(queue, queueItem{id: p, info: next})
		}
	}

	return result
}

func pathRedundant(existing []PathInfo, candidate PathInfo) bool {
	for _, e := range existing {
		if e.Dist == candidate.Dist && e.LineageType == candidate.LineageType &&
			e.IsStep == candidate.IsStep && e.ViaNode == candidate.ViaNode &&
			e.InitialBranch == candidate.InitialBranch {
			return true
		}
	}
	return false
}

// coLineageParent returns childID's other lineage parent besides
// parentID, if any — used as ViaPartner to discriminate half-relations.
func coLineageParent(idx *indices, childID, parentID string) string {
	for _, other := range idx.lineageParents[childID] {
		if other != parentID {
			return other
		}
	}
	return ""
}
