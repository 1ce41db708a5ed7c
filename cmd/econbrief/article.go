package main

import (
	"fmt"

	"github.com/fwojciec/econbrief"
)

// Run executes the article command.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	text, err := deps.Desk.ReadArticle(deps.Ctx, c.URL)
	fmt.Fprintln(deps.Stdout, econbrief.Render(text, err))
	return err
}
