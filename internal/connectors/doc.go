// Package connectors provides document sources that feed ingestion
// without an explicit request. The filesystem connector watches a
// directory and hands new or changed files to the indexer.
package connectors
