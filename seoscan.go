// Package seoscan provides a CLI-based SEO text extraction tool. It parses
// an HTML document, searches it for elements by name and attribute
// constraints, and extracts the string an SEO report should record for each
// element (node text or an attribute value).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/).
package seoscan

import "context"

// ElementSearcher finds a single element in a parsed document.
type ElementSearcher interface {
	// Find returns the first element in document order satisfying the query.
	// Returns ENOTFOUND carrying the query if no element satisfies it.
	Find(q Query) (*Element, error)
}

// TextRetriever decides which string represents an element's relevant content.
type TextRetriever interface {
	// RelevantText returns the value of attr if attr is non-empty, or the
	// element's text content otherwise.
	// Returns EATTRIBUTE if attr is requested but absent from the element.
	RelevantText(el *Element, attr string) (string, error)
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
