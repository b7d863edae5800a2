package main

import (
	"fmt"
	"regexp"

	"github.com/seoscan/seoscan"
)

var headingLevel = regexp.MustCompile(`^h[1-6]$`)

// Run executes the content command.
func (c *ContentCmd) Run(deps *Dependencies) error {
	if !headingLevel.MatchString(c.Heading) {
		return reportError(deps, seoscan.Errorf(seoscan.EINVALID, "invalid heading level %q, expected h1-h6", c.Heading))
	}

	scanner, err := NewScanner(deps, c.Source)
	if err != nil {
		return reportError(deps, err)
	}

	text, err := scanner.Heading(c.Heading)
	if err != nil {
		return reportError(deps, err)
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
