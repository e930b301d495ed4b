// Package validate implements the FTT validator (spec §4.2): the six
// ordered, whole-graph checks that run after parsing completes.
//
// [Check] runs, in order: header presence, dangling reference, ghost
// child, lineage cycle detection, controlled-vocabulary validation, and
// date-literal validation. Every check appends [diag.Issue] values rather
// than stopping the pipeline; a Document with validation errors is still
// handed on to [postprocess] and [kinship] (spec §7: "the visualizer and
// kinship engine operate on the records map regardless of errors").
package validate
