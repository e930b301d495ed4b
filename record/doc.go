// Package record defines the FTT data model: [Document], [Record], [Field],
// and [Modifier], the entities described in spec §3.1.
//
// A [Document] owns a table of [Record] values keyed by their normalized ID,
// mirroring the teacher's graph.Result ownership pattern: a single owner
// holds a contiguous table of keyed, immutable-after-build entities that
// downstream readers borrow but never mutate directly.
//
// # Construction vs. consumption
//
// Document and its Records/Fields/Modifiers are mutable during the parse
// and post-process phases ([parse.Parse] builds them field by field;
// [postprocess.Run] appends implicit Fields and place metadata). Once
// post-processing completes, the graph is frozen into a [RecordGraph] via
// [Document.Freeze] and handed to the kinship engine, which only ever reads
// its headers through an [immutable.Properties]-backed accessor (§3.3:
// "After post-processing, the graph is immutable to the kinship engine").
//
// # Ownership
//
// Per §3.3, the Document exclusively owns every Record; each Record
// exclusively owns its Fields and Modifiers. Releasing the Document releases
// everything reachable from it — there is no shared mutable state across
// documents and no global registry.
package record
