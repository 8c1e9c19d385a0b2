package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/photopack/internal/applog"
	"github.com/piwi3910/photopack/internal/project"
)

// newProjectCmd creates the project command tree: init and show.
func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Create and inspect project files",
	}

	cmd.AddCommand(newProjectInitCmd())
	cmd.AddCommand(newProjectShowCmd())
	return cmd
}

func newProjectInitCmd() *cobra.Command {
	var preset string

	cmd := &cobra.Command{
		Use:   "init <name> <path>",
		Short: "Write a new, empty project file",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			logger := applog.FromContext(c.Context())
			p := project.New(args[0])
			if preset != "" {
				p.Preset = preset
			}
			if err := project.Save(args[1], p); err != nil {
				return err
			}
			logger.Infof("Wrote project %q to %s", p.Name, args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&preset, "preset", "", "named page preset (default: 4x6 borderless)")
	return cmd
}

func newProjectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <path>",
		Short: "Print a project file's orders and page settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			p, err := project.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (algorithm=%s, preset=%s)\n", p.Name, p.Algorithm, p.Preset)
			for _, order := range p.Orders {
				fmt.Printf("  %dx %s (%.3fx%.3f) rotation=%d priority=%d\n",
					order.Quantity, order.Size.Name, order.Size.Width, order.Size.Height, order.Rotation, order.Priority)
			}
			return nil
		},
	}
}
