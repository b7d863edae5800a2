package seoscan

// Scanner is the public entry point combining element search and text
// extraction for one parsed document. Each call is independent: the only
// state is the immutable document held by the searcher.
type Scanner struct {
	Searcher  ElementSearcher
	Retriever TextRetriever
}

// NewScanner creates a Scanner over the given searcher using the default
// Analyzer for text retrieval.
func NewScanner(searcher ElementSearcher) *Scanner {
	return &Scanner{
		Searcher:  searcher,
		Retriever: NewAnalyzer(),
	}
}

// GetText searches for an element matching q and extracts its relevant
// text. When seoAttr is non-empty the named attribute's value is
// extracted instead of node text. Search and extraction failures are
// propagated unchanged; no new error kinds are introduced here.
func (s *Scanner) GetText(q Query, seoAttr string) (string, error) {
	el, err := s.Searcher.Find(q)
	if err != nil {
		return "", err
	}
	return s.Retriever.RelevantText(el, seoAttr)
}

// Title returns the node text of the first title element.
func (s *Scanner) Title() (string, error) {
	return s.GetText(Query{Name: "title"}, "")
}

// MetaDescription returns the content of the meta description tag.
func (s *Scanner) MetaDescription() (string, error) {
	return s.GetText(Query{Name: "meta", Attrs: map[string]string{"name": "description"}}, "content")
}

// Robots returns the robots meta directive.
func (s *Scanner) Robots() (string, error) {
	return s.GetText(Query{Name: "meta", Attrs: map[string]string{"name": "robots"}}, "content")
}

// Canonical returns the canonical URL declared by the page.
func (s *Scanner) Canonical() (string, error) {
	return s.GetText(Query{Name: "link", Attrs: map[string]string{"rel": "canonical"}}, "href")
}

// Heading returns the node text of the first heading of the given level
// (e.g. "h1", "h2").
func (s *Scanner) Heading(level string) (string, error) {
	return s.GetText(Query{Name: level}, "")
}
