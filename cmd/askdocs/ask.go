package main

import (
	"fmt"
	"strings"

	"github.com/ryderstorm/askdocs"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	env := deps.Service.Answer(deps.Ctx, c.Question)

	if env.Status == askdocs.StatusError {
		fmt.Fprintf(deps.Stderr, "error [%s]: %s\n", env.Err.ID, env.Err.Message)
		code := askdocs.EINTERNAL
		if env.Err.Code == 400 {
			code = askdocs.EINVALID
		}
		return askdocs.Errorf(code, "%s", env.Err.Message)
	}

	fmt.Fprintln(deps.Stdout, env.Response)
	if len(env.Sources) > 0 {
		fmt.Fprintf(deps.Stdout, "\nSources: %s\n", strings.Join(env.Sources, ", "))
	}
	return nil
}
