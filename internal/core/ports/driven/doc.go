// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SearchEngine: indexing, boosted queries and aggregations (OpenSearch or in-memory)
//   - EntityRecognizer: typed text spans (HTTP NER service or gazetteer)
//   - Normaliser / NormaliserRegistry: file format readers
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Geocoder: place name to coordinates. Without it, geo_points and geopoint stay empty.
//   - GeocodeCache: defaults to an in-process map when nil.
//   - DocumentStore: raw-document journal. Without it, reindex is unavailable.
//   - Metrics: pipeline counters. Defaults to a no-op.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
