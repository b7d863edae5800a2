package main

import (
	"fmt"
	"strings"

	"github.com/seoscan/seoscan"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	attrs, err := parseFilters(c.Filter)
	if err != nil {
		return reportError(deps, err)
	}

	scanner, err := NewScanner(deps, c.Source)
	if err != nil {
		return reportError(deps, err)
	}

	q := seoscan.Query{
		Name:  c.Tag,
		Value: c.Value,
		Attrs: attrs,
	}

	text, err := scanner.GetText(q, c.Extract)
	if err != nil {
		return reportError(deps, err)
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}

// parseFilters splits repeated "attribute=value" flags into a filter map.
func parseFilters(filters []string) (map[string]string, error) {
	if len(filters) == 0 {
		return nil, nil
	}

	attrs := make(map[string]string, len(filters))
	for _, f := range filters {
		attr, value, ok := strings.Cut(f, "=")
		if !ok || attr == "" {
			return nil, seoscan.Errorf(seoscan.EINVALID, "invalid filter %q, expected attribute=value", f)
		}
		attrs[attr] = value
	}
	return attrs, nil
}
