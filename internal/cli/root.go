// Package cli wires the packing core and its domain-stack exporters
// together into the photopack command-line tool: one file per
// subcommand, a PersistentPreRun that attaches a logger at the level
// --verbose selects.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/photopack/internal/applog"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. It is
// called by cmd/photopack's main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the photopack CLI and returns an error if any command
// fails.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

// newRootCmd builds the root command and its full subcommand tree.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "photopack",
		Short:        "photopack packs photos onto pages for printing",
		Long:         "photopack lays out photo orders onto pages using a deterministic bin-packing engine, then exports the result as a PDF, a raster preview, a QR-coded label sheet, or an order manifest.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := applog.WithLogger(cmd.Context(), applog.New(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("photopack %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPackCmd())
	root.AddCommand(newPresetsCmd())
	root.AddCommand(newProjectCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newCompletionCmd())

	return root
}
