package main

import "fmt"

// Run executes the catalog command.
func (c *CatalogCmd) Run(deps *Dependencies) error {
	for _, e := range deps.Catalog.Entries() {
		path, err := deps.Catalog.Resolve(e.DisplayName)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", e.DisplayName, path)
	}
	return nil
}
