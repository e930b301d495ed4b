package diag

// Detail provides key-value context for diagnostic issues.
//
// Details are used to add structured information to issues that can be
// programmatically inspected by tools. Use the standard detail key constants
// to ensure consistent key naming across the codebase.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys for consistent diagnostic metadata.
//
// Use these constants to avoid stringly-typed drift and enable programmatic
// inspection of diagnostic details. Custom detail keys are permitted for
// domain-specific diagnostics; use lower_snake_case for custom keys.
const (
	// DetailKeyExpected is the expected value or form.
	DetailKeyExpected = "expected"

	// DetailKeyGot is the actual value or form received.
	DetailKeyGot = "got"

	// DetailKeyRecordKind is the record kind involved in the diagnostic
	// (Individual, Source, Event, Placeholder).
	DetailKeyRecordKind = "record_kind"

	// DetailKeyRecordID is the record identifier involved.
	DetailKeyRecordID = "record_id"

	// DetailKeyField is the field name involved (for unknown/malformed fields).
	DetailKeyField = "field"

	// DetailKeyModifier is the modifier name involved.
	DetailKeyModifier = "modifier"

	// DetailKeyReferencedID is the ID referenced by a lineage, union, or
	// source-citation field.
	// Used with E_DANGLING_REF and E_DANGLING_SRC.
	DetailKeyReferencedID = "referenced_id"

	// DetailKeyLineageType is the lineage-edge type discriminant (BIO, ADO,
	// LEGL, SURR, DONR, STE, FOS, STE_EX).
	DetailKeyLineageType = "lineage_type"

	// DetailKeyDetail is the specific error description (grammar violation,
	// date-literal malformation, scanner diagnostic).
	DetailKeyDetail = "detail"

	// DetailKeyVocabulary is the field whose controlled vocabulary was
	// violated or extended (for E_VOCAB_NONSTANDARD, E_VOCAB_INVALID).
	DetailKeyVocabulary = "vocabulary"

	// DetailKeyToken is the offending vocabulary token.
	DetailKeyToken = "token"

	// DetailKeyCycle is the cycle participants as an ordered JSON array of
	// record IDs (for E_CIRCULAR_LINEAGE).
	DetailKeyCycle = "cycle"

	// DetailKeyUnionID is the ID of the parent record whose CHILD entry is
	// involved in a ghost-child diagnostic.
	DetailKeyUnionID = "union_id"

	// DetailKeyChildID is the individual record ID involved in a
	// ghost-child diagnostic.
	DetailKeyChildID = "child_id"

	// DetailKeyVersion is the version string declared in a header line.
	DetailKeyVersion = "version"

	// DetailKeyContext is contextual information (e.g., "parser", "validator").
	DetailKeyContext = "context"
)

// ExpectedGot creates a pair of details for malformed-value diagnostics.
//
// This is the standard pattern for reporting "expected X, got Y" errors.
func ExpectedGot(expected, got string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyGot, Value: got},
	}
}

// RecordField creates detail entries for diagnostics involving a specific
// field on a specific record.
func RecordField(recordID, fieldName string) []Detail {
	return []Detail{
		{Key: DetailKeyRecordID, Value: recordID},
		{Key: DetailKeyField, Value: fieldName},
	}
}

// DanglingReference creates detail entries for a field that names an ID no
// record declares.
//
// Use with E_DANGLING_REF and E_DANGLING_SRC.
func DanglingReference(recordID, fieldName, referencedID string) []Detail {
	return []Detail{
		{Key: DetailKeyRecordID, Value: recordID},
		{Key: DetailKeyField, Value: fieldName},
		{Key: DetailKeyReferencedID, Value: referencedID},
	}
}

// GhostChild creates detail entries for a CHILD entry whose child record
// does not list the parent under PARENT; unionID is the parent record's ID.
//
// Use with E_GHOST_CHILD.
func GhostChild(unionID, childID string) []Detail {
	return []Detail{
		{Key: DetailKeyUnionID, Value: unionID},
		{Key: DetailKeyChildID, Value: childID},
	}
}

// VocabToken creates detail entries for a controlled-vocabulary diagnostic.
//
// Use with E_VOCAB_NONSTANDARD and E_VOCAB_INVALID.
func VocabToken(vocabulary, token string) []Detail {
	return []Detail{
		{Key: DetailKeyVocabulary, Value: vocabulary},
		{Key: DetailKeyToken, Value: token},
	}
}
