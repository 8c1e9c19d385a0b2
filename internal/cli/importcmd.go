package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/photopack/internal/applog"
	"github.com/piwi3910/photopack/internal/orderimport"
	"github.com/piwi3910/photopack/internal/project"
)

// newImportCmd creates the import command: it reads photo orders from a
// CSV or Excel file and merges them into a project file, creating the
// project if it does not already exist.
func newImportCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <orders.csv|orders.xlsx> <project.json>",
		Short: "Import photo orders from a spreadsheet into a project file",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runImport(c, args[0], args[1], name)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "project name, used only when creating a new project file")
	return cmd
}

func runImport(c *cobra.Command, sourcePath, projectPath, name string) error {
	logger := applog.FromContext(c.Context())

	result := importOrders(sourcePath)
	for _, w := range result.Warnings {
		logger.Warnf("%s", w)
	}
	for _, e := range result.Errors {
		logger.Errorf("%s", e)
	}
	if len(result.Orders) == 0 {
		return fmt.Errorf("cli: no orders imported from %s", sourcePath)
	}

	proj, err := project.Load(projectPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		proj = project.New(name)
		if name == "" {
			proj.Name = sourcePath
		}
	}
	proj.Orders = append(proj.Orders, result.Orders...)

	if err := project.Save(projectPath, proj); err != nil {
		return err
	}
	logger.Infof("Imported %d order(s) into %s", len(result.Orders), projectPath)
	return nil
}

func importOrders(path string) orderimport.Result {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return orderimport.Excel(path)
	}
	return orderimport.CSV(path)
}
