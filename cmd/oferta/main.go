// Package main provides the entry point for the oferta service CLI.
package main

import (
	"github.com/cedepro/oferta/cmd/oferta/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
