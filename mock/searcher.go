package mock

import "github.com/seoscan/seoscan"

var _ seoscan.ElementSearcher = (*ElementSearcher)(nil)

// ElementSearcher is a mock implementation of seoscan.ElementSearcher.
type ElementSearcher struct {
	FindFn func(q seoscan.Query) (*seoscan.Element, error)
}

func (s *ElementSearcher) Find(q seoscan.Query) (*seoscan.Element, error) {
	return s.FindFn(q)
}
