// Package exportjson serializes FTT's post-pipeline types
// (record.RecordGraph, diag.Result, []kinship.Relationship) to JSON for
// the external browser-UI collaborator (spec §6.2, §6.3). It is the
// mirror image of the teacher's adapter/json: that package parses JSON
// into graph instances; this one writes FTT's own types out as JSON,
// using the same "$type" tagging convention for closed sum types
// ([kinship.Relationship]'s variants) that the teacher uses for
// schema-tagged union values.
package exportjson
