// Package normalisers provides implementations of the Normaliser interface
// for the file formats accepted by ingestion. Each normaliser turns raw
// bytes of one format into zero or more documents in the caller schema.
//
// Normalisers are registered with a Registry at startup; see Defaults.
package normalisers
