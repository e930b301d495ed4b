package location

// PositionRegistry provides byte-offset-to-position conversion.
//
// This interface abstracts the source content registries that perform the
// actual conversion, so callers holding a byte offset can obtain an accurate
// Position without depending on a concrete registry.
//
// The primary implementation is internal/source.Registry, which enables
// unified source tracking for parser and validator diagnostics.
//
// Design rationale:
//
//  1. Foundation tier placement: PositionRegistry is defined in location
//     (foundation tier) because the interface operates on location.Position and
//     location.SourceID — natural cohesion with the location package.
//
//  2. Decouples callers from any one registry implementation: callers can
//     use any PositionRegistry, not just internal/source.Registry. This enables
//     testing with mock registries.
type PositionRegistry interface {
	// PositionAt converts a byte offset to a Position for the given source.
	//
	// Returns a zero Position (check via IsZero()) if:
	//   - The source is not registered
	//   - The byte offset is out of range
	//   - The byte offset is negative
	//
	// The returned Position has:
	//   - Line: 1-based line number
	//   - Column: 1-based rune offset from line start
	//   - Byte: The input byteOffset (echoed back for convenience)
	PositionAt(source SourceID, byteOffset int) Position
}

// RuneOffsetConverter provides rune-to-byte offset conversion.
//
// Column positions count rune offsets (Unicode code points), but byte
// offsets are used for consistency with Go strings and UTF-8 handling. This
// interface enables conversion between the two coordinate systems.
//
// The primary implementation is internal/source.Registry.
type RuneOffsetConverter interface {
	// RuneToByteOffset converts a rune offset to a byte offset for the given source.
	//
	// Returns (byteOffset, true) on success.
	// Returns (0, false) if:
	//   - The source is not registered
	//   - The rune offset is out of range
	//   - The rune offset is negative
	RuneToByteOffset(source SourceID, runeOffset int) (byteOffset int, ok bool)
}
