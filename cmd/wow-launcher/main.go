// Package main is the entry point for the wow-launcher CLI.
//
// The launcher prepares an isolated game environment next to the
// project (downloading the warrior binary and content packs listed in
// warrior-packs.yaml) and starts the game, preferring the environment's
// own binary over whatever happens to be on PATH. All functionality
// lives in internal/cli, which defines the cobra commands.
package main

import (
	"github.com/SlavicJan/way-of-warrior/internal/cli"
)

// version, commit, and date are set at build time via ldflags
// (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
