package seoscan

import (
	"fmt"
	"sort"
	"strings"
)

// Element is a read-only view of one node in a parsed document. Search
// results hand out references into the document's element index; callers
// must not mutate an Element.
type Element struct {
	// Name is the lowercased tag name (e.g. "meta").
	Name string `json:"name"`

	// Attrs maps attribute names to their values.
	Attrs map[string]string `json:"attrs"`

	// Void reports whether the element is a void/self-closing element
	// (img, meta, br, ...) and therefore has no child content.
	Void bool `json:"void"`

	// Text is the concatenated text content of the element's descendants,
	// exactly as the parser produced it. Empty for void elements.
	Text string `json:"text"`
}

// Attr returns the value of the named attribute and whether it exists.
func (e *Element) Attr(name string) (string, bool) {
	val, ok := e.Attrs[name]
	return val, ok
}

// HasValue reports whether any attribute of the element has the given value.
func (e *Element) HasValue(value string) bool {
	for _, v := range e.Attrs {
		if v == value {
			return true
		}
	}
	return false
}

// String renders the element as its opening tag, for diagnostics.
func (e *Element) String() string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(e.Name)
	for _, k := range sortedKeys(e.Attrs) {
		fmt.Fprintf(&sb, " %s=%q", k, e.Attrs[k])
	}
	sb.WriteString(">")
	return sb.String()
}

// Query represents the search criteria for a single element lookup.
// Constraints are ANDed: every Attrs entry must match exactly, and Value
// (when set) must equal at least one attribute value of the candidate.
type Query struct {
	// Name is the tag name to search for. Required. Matched
	// case-insensitively, as HTML tag names are.
	Name string `json:"name"`

	// Value, if non-empty, requires some attribute of the element to hold
	// this exact value, regardless of the attribute's name.
	Value string `json:"value"`

	// Attrs, if non-empty, requires each named attribute to hold the given
	// value exactly.
	Attrs map[string]string `json:"attrs"`
}

// Validate returns an error if the query cannot be executed.
func (q Query) Validate() error {
	if q.Name == "" {
		return Errorf(EINVALID, "element name required")
	}
	return nil
}

// String renders the query in CSS-selector-like form for diagnostics,
// e.g. `meta[name="robots"]`.
func (q Query) String() string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(q.Name))
	for _, k := range sortedKeys(q.Attrs) {
		fmt.Fprintf(&sb, "[%s=%q]", k, q.Attrs[k])
	}
	if q.Value != "" {
		fmt.Fprintf(&sb, "[*=%q]", q.Value)
	}
	return sb.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
