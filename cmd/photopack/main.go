package main

import (
	"fmt"
	"os"

	"github.com/piwi3910/photopack/internal/cli"
)

// version, commit, and date are injected via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
