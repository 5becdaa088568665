// cmd/benchpage/main.go
package main

import (
	cmd "github.com/mwiater/benchpage/internal/commands"
)

// Build-time metadata, overridden with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main starts the benchpage CLI application by delegating to the
// cobra root command. It does not take any arguments and does not
// return a value.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
