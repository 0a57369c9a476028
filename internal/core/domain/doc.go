// Package domain defines the core business entities for smartdocs.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: an enriched, indexable document with temporal and spatial metadata
//   - EntitySpan: a typed text span returned by a named-entity recogniser
//   - GeocodeResult: a resolved or unresolved place lookup
//   - QuerySpec: the input to the relevance query constructor
//   - RawDocument: opaque bytes read from a file before normalisation
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
