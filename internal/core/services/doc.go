// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The enrichment pipeline (temporal extraction, geo extraction,
// geocode resolution, enrichment) and the relevance query constructor
// live here. Neither depends on a concrete search engine or recogniser.
package services
