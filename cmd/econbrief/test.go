package main

import (
	"fmt"

	"github.com/fwojciec/econbrief"
)

// Run executes the test command. A failed pipeline is reported in the
// printed result, not as a command error.
func (c *TestCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Testing get_latest_briefing()...")
	text, err := deps.Desk.LatestBriefing(deps.Ctx)
	fmt.Fprintln(deps.Stdout, econbrief.Render(text, err))
	return nil
}
