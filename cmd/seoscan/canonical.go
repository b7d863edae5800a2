package main

import "fmt"

// Run executes the canonical command.
func (c *CanonicalCmd) Run(deps *Dependencies) error {
	scanner, err := NewScanner(deps, c.Source)
	if err != nil {
		return reportError(deps, err)
	}

	text, err := scanner.Canonical()
	if err != nil {
		return reportError(deps, err)
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
