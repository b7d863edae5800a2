package seoscan

// Ensure Analyzer implements TextRetriever at compile time.
var _ TextRetriever = (*Analyzer)(nil)

// Analyzer determines what useful or relevant text an element contains.
// It is pure: the result depends only on the element and the requested
// attribute, and repeated calls cannot change the outcome.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// RelevantText returns the string an SEO report should record for el.
//
// When attr is non-empty, the element must carry that attribute and its
// value is returned exactly, with no trimming or normalization; a missing
// attribute is an EATTRIBUTE error, never an empty string. When attr is
// empty, the element's text content is returned as the parser produced
// it. Void elements have no child nodes, so their stored text is empty by
// construction; returning the stored field keeps extraction uniform
// across element kinds.
func (a *Analyzer) RelevantText(el *Element, attr string) (string, error) {
	if el == nil {
		return "", Errorf(EINVALID, "element required")
	}
	if attr != "" {
		val, ok := el.Attr(attr)
		if !ok {
			return "", MissingAttribute(el, attr)
		}
		return val, nil
	}
	return el.Text, nil
}
