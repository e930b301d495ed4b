// Package postprocess implements spec §4.3: reconciling semantically
// symmetric relationships and normalizing place expressions on a parsed and
// validated [record.Document], before it is frozen into a [record.RecordGraph]
// for the kinship engine.
//
// Traversal order within each step is deterministic — records in file
// definition order, fields in file order — mirroring the teacher's
// graph/internal/walk package, which guarantees the same ordering
// contract for its own graph traversal.
package postprocess
