package main

import (
	"fmt"
	"strings"

	"github.com/seoscan/seoscan"
)

// Run executes the meta command.
func (c *MetaCmd) Run(deps *Dependencies) error {
	attr, value, err := parseAttrPair(c.Attr)
	if err != nil {
		return reportError(deps, err)
	}

	scanner, err := NewScanner(deps, c.Source)
	if err != nil {
		return reportError(deps, err)
	}

	q := seoscan.Query{
		Name:  "meta",
		Attrs: map[string]string{attr: value},
	}

	text, err := scanner.GetText(q, c.Extract)
	if err != nil {
		return reportError(deps, err)
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}

// parseAttrPair splits an "attribute:value" argument.
func parseAttrPair(pair string) (string, string, error) {
	attr, value, ok := strings.Cut(pair, ":")
	if !ok || attr == "" || value == "" {
		return "", "", seoscan.Errorf(seoscan.EINVALID, "invalid attribute pair %q, expected attribute:value", pair)
	}
	return attr, value, nil
}
