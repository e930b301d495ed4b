package diag

// CodeCategory represents the semantic domain of an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// pipeline stage that emits it. Most codes are emitted exclusively by their
// category's stage, but some codes represent cross-cutting concerns.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategorySyntax is for scanner/state-machine errors: malformed lines,
	// unescaped delimiters, and missing or malformed headers.
	CategorySyntax

	// CategoryContext is for key lines that appear where the state machine
	// does not expect them (a header key inside a record, a modifier that
	// does not follow its base field, a field or modifier outside any record).
	CategoryContext

	// CategoryIdentity is for record identifier errors, such as the same
	// ID declared on more than one record.
	CategoryIdentity

	// CategoryReference is for fields that reference an ID no record
	// declares (a dangling lineage or union reference, a dangling source
	// citation).
	CategoryReference

	// CategoryGraph is for structural errors discovered only by walking
	// the assembled lineage graph: ghost children and circular lineage.
	CategoryGraph

	// CategorySchema is for document-level format errors, such as an
	// unsupported FTT version declaration.
	CategorySchema

	// CategoryVocabulary is for controlled-vocabulary token errors:
	// non-standard tokens (warning) and tokens outside the closed set
	// where one is required (error).
	CategoryVocabulary

	// CategoryDate is for date-literal parsing and ordering errors.
	CategoryDate

	// CategoryConsistency is for cross-record data consistency warnings
	// that do not block graph construction (e.g. two reciprocal UNION
	// fields that disagree on type or dates).
	CategoryConsistency
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategorySyntax:
		return "syntax"
	case CategoryContext:
		return "context"
	case CategoryIdentity:
		return "identity"
	case CategoryReference:
		return "reference"
	case CategoryGraph:
		return "graph"
	case CategorySchema:
		return "schema"
	case CategoryVocabulary:
		return "vocabulary"
	case CategoryDate:
		return "date"
	case CategoryConsistency:
		return "consistency"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_DANGLING_REF").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification.
	// It does not automatically trigger Result.LimitReached(); use
	// Collector.LimitReached() to check limit status. Callers may inject
	// this code manually when desired.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	// Use for conditions that should never occur in correct code.
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)
)

// Syntax codes.
var (
	// E_SYNTAX_INVALID indicates the scanner could not tokenize a line
	// into record/field/modifier structure: an unescaped delimiter in the
	// wrong position, an unterminated escape sequence, or a line that
	// matches no recognized record-start or continuation form.
	E_SYNTAX_INVALID = code("E_SYNTAX_INVALID", CategorySyntax)

	// E_MISSING_HEADER indicates the document has no HEAD_FORMAT header
	// anywhere.
	E_MISSING_HEADER = code("E_MISSING_HEADER", CategorySyntax)
)

// Context codes.
var (
	// E_CTX_HEADER indicates a HEAD_* key line appears inside a record.
	E_CTX_HEADER = code("E_CTX_HEADER", CategoryContext)

	// E_CTX_MODIFIER indicates a modifier key line whose base key does not
	// match the field immediately preceding it.
	E_CTX_MODIFIER = code("E_CTX_MODIFIER", CategoryContext)

	// E_CTX_ORPHAN indicates a field or modifier key line appears with no
	// open record to attach to. A continuation line with nothing open is
	// dropped without a diagnostic.
	E_CTX_ORPHAN = code("E_CTX_ORPHAN", CategoryContext)
)

// Identity codes.
var (
	// E_DUPLICATE_ID indicates the same record identifier is declared on
	// more than one record.
	E_DUPLICATE_ID = code("E_DUPLICATE_ID", CategoryIdentity)
)

// Reference codes.
var (
	// E_DANGLING_REF indicates a lineage or union field references an ID
	// that no record declares.
	E_DANGLING_REF = code("E_DANGLING_REF", CategoryReference)

	// E_DANGLING_SRC indicates a source-citation field references a
	// source ID that no Source record declares.
	E_DANGLING_SRC = code("E_DANGLING_SRC", CategoryReference)
)

// Graph codes.
var (
	// E_GHOST_CHILD indicates a record lists a CHILD whose own record does
	// not list it back under PARENT.
	E_GHOST_CHILD = code("E_GHOST_CHILD", CategoryGraph)

	// E_CIRCULAR_LINEAGE indicates the lineage graph contains a cycle:
	// some individual is, transitively, their own ancestor.
	E_CIRCULAR_LINEAGE = code("E_CIRCULAR_LINEAGE", CategoryGraph)
)

// Schema codes.
var (
	// E_VERSION_UNSUPPORTED indicates the document's version header names
	// a format version this implementation does not support.
	E_VERSION_UNSUPPORTED = code("E_VERSION_UNSUPPORTED", CategorySchema)
)

// Vocabulary codes.
var (
	// E_VOCAB_NONSTANDARD indicates a controlled-vocabulary token is not
	// one of the standard values but is accepted as an extension.
	E_VOCAB_NONSTANDARD = code("E_VOCAB_NONSTANDARD", CategoryVocabulary)

	// E_VOCAB_INVALID indicates a token was given for a field whose
	// vocabulary is closed and the token is not a member of that set.
	E_VOCAB_INVALID = code("E_VOCAB_INVALID", CategoryVocabulary)
)

// Date codes.
var (
	// E_INVALID_DATE indicates a date literal does not conform to the
	// supported date grammar.
	E_INVALID_DATE = code("E_INVALID_DATE", CategoryDate)
)

// Consistency codes.
var (
	// W_DATA_CONSISTENCY indicates a cross-record consistency warning that
	// does not block graph construction: two reciprocal UNION fields that
	// disagree on type, dates, or termination reason.
	W_DATA_CONSISTENCY = code("W_DATA_CONSISTENCY", CategoryConsistency)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	// Sentinel
	E_LIMIT_REACHED,
	E_INTERNAL,
	// Syntax
	E_SYNTAX_INVALID,
	E_MISSING_HEADER,
	// Context
	E_CTX_HEADER,
	E_CTX_MODIFIER,
	E_CTX_ORPHAN,
	// Identity
	E_DUPLICATE_ID,
	// Reference
	E_DANGLING_REF,
	E_DANGLING_SRC,
	// Graph
	E_GHOST_CHILD,
	E_CIRCULAR_LINEAGE,
	// Schema
	E_VERSION_UNSUPPORTED,
	// Vocabulary
	E_VOCAB_NONSTANDARD,
	E_VOCAB_INVALID,
	// Date
	E_INVALID_DATE,
	// Consistency
	W_DATA_CONSISTENCY,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
