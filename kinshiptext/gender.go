package kinshiptext

// Gender is the minimal three-state gender signal the term renderer
// needs to choose between gendered base terms (Father/Mother, Brother/
// Sister, ...) and their neutral fallback (Parent, Sibling, ...). FTT
// itself does not model sex or gender inference (spec §1 Non-goals);
// callers supply whatever external signal they have, or Unknown.
type Gender uint8

const (
	Unknown Gender = iota
	Male
	Female
)
