package search

import "errors"

// ErrNoSearchService is reported when a query is submitted without a
// search service to run it.
var ErrNoSearchService = errors.New("search: no search service configured")
