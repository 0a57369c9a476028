// Package memory provides in-process implementations of driven ports:
// a document journal, a geocode cache and a search engine that evaluates
// the engine-neutral query tree. They back local runs and tests.
package memory
