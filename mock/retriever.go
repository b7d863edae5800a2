package mock

import "github.com/seoscan/seoscan"

var _ seoscan.TextRetriever = (*TextRetriever)(nil)

// TextRetriever is a mock implementation of seoscan.TextRetriever.
type TextRetriever struct {
	RelevantTextFn func(el *seoscan.Element, attr string) (string, error)
}

func (r *TextRetriever) RelevantText(el *seoscan.Element, attr string) (string, error) {
	return r.RelevantTextFn(el, attr)
}
