// Package main provides the CLI entrypoint for relation-factory.
//
// relation-factory rebuilds entities from a project export:
//   - Resolves each relation name to a destination type
//   - Remaps user references through a members map
//   - Stamps project references with the destination project
//   - Preserves unmappable note authors in an attribution footer
package main

import (
	"os"

	"relation-factory/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
