package tui

import "errors"

var (
	// ErrInvalidPorts is returned by NewApp when no ports are given.
	ErrInvalidPorts = errors.New("tui: ports are nil")

	// ErrMissingSearchService is returned by NewApp without a search port.
	ErrMissingSearchService = errors.New("tui: search port is required")
)
