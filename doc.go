// Package ftt provides parsing, validation, and kinship analysis for the
// FamilyTree-Text (FTT) format.
//
// FTT is a line-oriented, pipe-delimited plain-text format for describing
// genealogical records: individuals, family unions, events, sources, and
// placeholders, linked by lineage edges that carry a relationship type
// (biological, adoptive, legal, surrogate, step, foster, donor, or
// step-ex). This module turns FTT source text into a validated record
// graph and answers kinship queries ("how is A related to B?") against
// that graph.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - location: Source positions, spans, and canonical paths
//	  - diag: Structured diagnostics with stable error codes
//	  - immutable: Read-only wrappers for safe data sharing
//
//	Pipeline tier:
//	  - record: Document, Record, Field, and Modifier types and the
//	    frozen RecordGraph they compile into
//	  - parse: Line-oriented scanner and state machine that turns FTT
//	    source text into a record.Document
//	  - validate: Header, reference, and structural checks plus cycle
//	    detection over the lineage graph
//	  - postprocess: Reciprocal union inference, child-list
//	    reconciliation, and place-string decomposition
//	  - kinship: Derived indices, multi-path ancestor traversal, and
//	    relationship classification between two individuals
//	  - kinshiptext: Human-readable kinship term rendering
//
//	Adapter tier:
//	  - exportjson: JSON export of parse results, diagnostics, and
//	    kinship relationships for external consumers
//
// # Entry Points
//
// Parsing and validation:
//
//	import "github.com/arthurdick/familytree-text/parse"
//	import "github.com/arthurdick/familytree-text/validate"
//	import "github.com/arthurdick/familytree-text/postprocess"
//
//	doc, parseResult := parse.Parse(ctx, src, content)
//	vresult := validate.Check(ctx, doc)
//	if vresult.HasErrors() {
//	    // Structural or referential diagnostics
//	}
//	graph, ppResult := postprocess.Run(ctx, doc)
//
// Kinship queries:
//
//	import "github.com/arthurdick/familytree-text/kinship"
//	import "github.com/arthurdick/familytree-text/kinshiptext"
//
//	engine := kinship.NewEngine(ctx, graph)
//	rels := engine.Calculate(ctx, idA, idB)
//	term := kinshiptext.Describe(rels[0], kinshiptext.Female, "Alice", "Bob")
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/arthurdick/familytree-text/diag]: Structured diagnostics
//   - [github.com/arthurdick/familytree-text/location]: Source location tracking
//   - [github.com/arthurdick/familytree-text/immutable]: Read-only data wrappers
//   - [github.com/arthurdick/familytree-text/record]: Document and record graph types
//   - [github.com/arthurdick/familytree-text/parse]: FTT scanner and state machine
//   - [github.com/arthurdick/familytree-text/validate]: Structural and referential validation
//   - [github.com/arthurdick/familytree-text/postprocess]: Graph inference and reconciliation
//   - [github.com/arthurdick/familytree-text/kinship]: Kinship derivation engine
//   - [github.com/arthurdick/familytree-text/kinshiptext]: Kinship term rendering
//   - [github.com/arthurdick/familytree-text/exportjson]: JSON export adapter
//   - [github.com/arthurdick/familytree-text/cmd/fttlint]: Command-line front end
package ftt
