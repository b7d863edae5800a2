// Package goquery provides a goquery-based implementation of
// seoscan.ElementSearcher. It parses an HTML document once and answers
// element queries against a materialized index of the parsed tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/seoscan/seoscan"
	"golang.org/x/net/html"
)

// Ensure Navigator implements seoscan.ElementSearcher at compile time.
var _ seoscan.ElementSearcher = (*Navigator)(nil)

// voidElements is the HTML void element set: elements with no closing tag
// and no child content. Mirrors the set used by golang.org/x/net/html.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

// Navigator indexes one parsed HTML document for element search. The
// document is parsed once at construction and never mutated; a Navigator
// is read-only after construction and repeated identical queries return
// the same element reference.
type Navigator struct {
	elements []*seoscan.Element
	byName   map[string][]*seoscan.Element
}

// NewNavigator parses the given HTML and builds the element index.
// Elements are indexed in document preorder, so searches resolve
// first-in-document-order matches.
func NewNavigator(rawHTML string) (*Navigator, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, seoscan.Errorf(seoscan.EINVALID, "failed to parse HTML: %v", err)
	}

	n := &Navigator{
		byName: make(map[string][]*seoscan.Element),
	}

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		node := sel.Get(0)
		if node == nil || node.Type != html.ElementNode {
			return
		}

		attrs := make(map[string]string, len(node.Attr))
		for _, a := range node.Attr {
			// The parser may surface duplicate attributes; the first wins.
			if _, ok := attrs[a.Key]; !ok {
				attrs[a.Key] = a.Val
			}
		}

		el := &seoscan.Element{
			Name:  node.Data,
			Attrs: attrs,
			Void:  voidElements[node.Data],
			Text:  sel.Text(),
		}

		n.elements = append(n.elements, el)
		n.byName[el.Name] = append(n.byName[el.Name], el)
	})

	return n, nil
}

// Len returns the number of indexed elements.
func (n *Navigator) Len() int {
	return len(n.elements)
}

// Find returns the first element in document order satisfying the query.
// Constraints are ANDed: every entry of q.Attrs must match exactly, and
// q.Value (when set) must equal at least one attribute value of the
// candidate. A query with no constraints beyond the name returns the
// first element with that tag. When several elements satisfy the query
// only the first is returned; later duplicates are ignored.
//
// Returns ENOTFOUND carrying the query when no element satisfies it,
// including when the tag name matches zero elements.
func (n *Navigator) Find(q seoscan.Query) (*seoscan.Element, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	for _, el := range n.byName[strings.ToLower(q.Name)] {
		if !matchesAttrs(el, q.Attrs) {
			continue
		}
		if q.Value != "" && !el.HasValue(q.Value) {
			continue
		}
		return el, nil
	}

	return nil, seoscan.NotFound(q)
}

// matchesAttrs reports whether el carries every filter attribute with
// exactly the required value.
func matchesAttrs(el *seoscan.Element, filters map[string]string) bool {
	for k, want := range filters {
		got, ok := el.Attr(k)
		if !ok || got != want {
			return false
		}
	}
	return true
}
