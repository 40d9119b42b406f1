package main

import "fmt"

// Run executes the files command.
func (c *FilesCmd) Run(deps *Dependencies) error {
	files, err := deps.Registry.Files(deps.Ctx)
	if err != nil {
		// Listing problems degrade to an empty listing, matching the API.
		files = nil
	}

	if len(files) == 0 {
		fmt.Fprintf(deps.Stdout, "No knowledge files found in %s\n", deps.KnowledgeDir)
		return nil
	}
	for _, name := range files {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}
