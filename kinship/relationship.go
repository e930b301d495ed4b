package kinship

// Relationship is a closed sum type describing how two records relate
// (spec §4.4.3). The set of concrete variants is fixed; relationship()
// is unexported so no type outside this package can implement the
// interface, mirroring the teacher's schema/expr.Expression pattern.
type Relationship interface {
	relationship()
}

// Identity is returned when both IDs passed to [Engine.Calculate] name
// the same record.
type Identity struct{}

func (Identity) relationship() {}

// Union is a direct spousal relationship: A and B are (or were) partners.
type Union struct {
	Target string
	Active bool
	Reason string
	Type   string
}

func (Union) relationship() {}

// Lineage is a blood (or adoptive/foster/step) ancestor-descendant or
// collateral relationship mediated by one or more lowest common
// ancestors, per the tier grouping of spec §4.4.3 step 3.
type Lineage struct {
	AncestorID  string
	DistA       int
	DistB       int
	IsStep      bool
	IsExStep    bool
	IsHalf      bool
	IsAmbiguous bool
	IsDouble    bool
	IsAdoptive  bool
	IsFoster    bool
	LineageA    string
	LineageB    string
}

func (Lineage) relationship() {}

// StepParent means A is B's step-parent through marriage to a bio
// parent identified by ParentID.
type StepParent struct {
	ParentID string
	IsEx     bool
}

func (StepParent) relationship() {}

// StepChild means A is B's step-child through B's marriage to A's bio
// parent identified by ParentID.
type StepChild struct {
	ParentID string
	IsEx     bool
}

func (StepChild) relationship() {}

// StepSibling means A and B share no lineage parent but their
// respective parents ParentA and ParentB are (or were) partners.
type StepSibling struct {
	ParentA     string
	ParentB     string
	UnionActive bool
	UnionReason string
}

func (StepSibling) relationship() {}

// Affinal is an in-law relationship mediated by a spouse. SubType is
// "ViaSpouse" (A's spouse is blood-related to B) or "ViaBloodSpouse"
// (B's spouse is blood-related to A).
type Affinal struct {
	SubType   string
	SpouseID  string
	BloodRel  Relationship
	IsExUnion bool
}

func (Affinal) relationship() {}

// CoAffinal means A's spouse and B's spouse are blood relatives of one
// another (co-parents-in-law and the like).
type CoAffinal struct {
	SpouseA  string
	SpouseB  string
	BloodRel Relationship
}

func (CoAffinal) relationship() {}

// ExtendedAffinal generalizes Affinal/CoAffinal to any blood relative of
// A whose spouse has a blood path to B.
type ExtendedAffinal struct {
	Spouse1 string
	Spouse2 string
	RelA    Relationship
	RelB    Relationship
}

func (ExtendedAffinal) relationship() {}

// None is returned when no relationship of any kind was found.
type None struct{}

func (None) relationship() {}
