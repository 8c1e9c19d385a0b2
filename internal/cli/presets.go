package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/photopack/internal/applog"
	"github.com/piwi3910/photopack/internal/config"
	"github.com/piwi3910/photopack/internal/preset"
)

// newPresetsCmd creates the presets command tree: list and describe.
func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Inspect the built-in and user-defined page presets",
	}

	cmd.AddCommand(newPresetsListCmd())
	cmd.AddCommand(newPresetsDescribeCmd())
	return cmd
}

func newPresetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List preset names",
		RunE: func(c *cobra.Command, args []string) error {
			logger := applog.FromContext(c.Context())
			library, err := preset.Load(preset.DefaultPath(config.DefaultDir()))
			if err != nil {
				return err
			}
			for _, name := range library.Names() {
				logger.Info(name)
			}
			return nil
		},
	}
}

func newPresetsDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <name>",
		Short: "Print the page geometry a preset resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			library, err := preset.Load(preset.DefaultPath(config.DefaultDir()))
			if err != nil {
				return err
			}
			p, ok := library.Get(args[0])
			if !ok {
				return fmt.Errorf("cli: unknown preset %q (available: %v)", args[0], library.Names())
			}
			fmt.Printf("%s (%s)\n", p.Name, p.Description)
			fmt.Printf("  page:    %.3f x %.3f %s\n", p.PageWidth, p.PageHeight, p.Unit)
			fmt.Printf("  margins: top=%.3f right=%.3f bottom=%.3f left=%.3f\n", p.MarginTop, p.MarginRight, p.MarginBottom, p.MarginLeft)
			fmt.Printf("  spacing: %.3f\n", p.Spacing)
			fmt.Printf("  multi_page: %v\n", p.MultiPage)
			return nil
		},
	}
}
