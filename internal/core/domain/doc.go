// Package domain defines the core entities for keyscan.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A file on disk plus its inferred media type
//   - ExtractedText: The lower-cased text pulled out of a Document
//   - Chunk: A bounded slice of ExtractedText scanned independently
//   - KeywordSet: The normalised keywords to look for
//   - ScanResult: The keywords found in a Document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
