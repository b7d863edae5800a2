package main

import "fmt"

// Run executes the robots command.
func (c *RobotsCmd) Run(deps *Dependencies) error {
	scanner, err := NewScanner(deps, c.Source)
	if err != nil {
		return reportError(deps, err)
	}

	text, err := scanner.Robots()
	if err != nil {
		return reportError(deps, err)
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
