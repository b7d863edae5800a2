package main

import "fmt"

// Run executes the title command.
func (c *TitleCmd) Run(deps *Dependencies) error {
	scanner, err := NewScanner(deps, c.Source)
	if err != nil {
		return reportError(deps, err)
	}

	text, err := scanner.Title()
	if err != nil {
		return reportError(deps, err)
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
