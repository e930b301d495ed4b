package diag

// Severity represents the severity level of an FTT diagnostic — the
// ghost-child/circular-lineage/vocabulary/header problems spec §4.2
// catalogs, plus the §4.3.1 DATA_CONSISTENCY warnings postprocess emits.
//
// Severity is an ordered enumeration where lower numeric values are more severe.
// Use the comparison methods rather than raw numeric comparisons for clarity.
type Severity uint8

const (
	// Fatal indicates an unrecoverable condition or collection limit reached.
	// parse, validate and postprocess never emit Fatal; a missing HEAD_FORMAT
	// header (spec §4.2 step 1) is reported as an Error.
	Fatal Severity = iota

	// Error indicates a validation failure where collection can continue —
	// a missing header, dangling reference, ghost child, circular lineage,
	// closed-vocabulary violation, or invalid date (spec §4.2 steps 1-6).
	// Errors cause Result.HasErrors to be true.
	Error

	// Warning indicates a condition that should be corrected but the record
	// is still usable, such as an open-vocabulary NAME[2]/ASSOC[1] value
	// (spec §4.2 step 5) or a reciprocal UNION whose segments disagree,
	// found by postprocess (spec §4.3.1).
	Warning

	// Info provides informational diagnostics that require no correction.
	Info

	// Hint provides suggestions for improvement.
	Hint
)

// String returns the canonical lowercase label for the severity.
//
// These values are used by FormatIssueJSON/FormatResultJSON and are part of
// the wire format stability guarantee. The returned strings are:
// "fatal", "error", "warning", "info", "hint".
func (s Severity) String() string {
	switch s {
	case Fatal:
		return "fatal"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// IsFailure reports whether the severity indicates a failure.
//
// Returns true for Fatal and Error severities. This matches the condition
// checked by !Result.OK().
func (s Severity) IsFailure() bool {
	return s <= Error
}

// IsAtLeastAsSevereAs reports whether s is at least as severe as other.
//
// Returns true when s is equal to or more severe than other.
func (s Severity) IsAtLeastAsSevereAs(other Severity) bool {
	return s <= other
}
