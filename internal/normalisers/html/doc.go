// Package html provides a Normaliser implementation for HTML documents.
// It extracts readable text from the body, skipping scripts, styles and
// navigation chrome, and lifts title, author, date and geo meta tags
// into document fields.
package html
