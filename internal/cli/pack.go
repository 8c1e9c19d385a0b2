package cli

import (
	"encoding/json"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/photopack/internal/applog"
	"github.com/piwi3910/photopack/internal/config"
	"github.com/piwi3910/photopack/internal/labelsheet"
	"github.com/piwi3910/photopack/internal/manifest"
	"github.com/piwi3910/photopack/internal/pdfexport"
	"github.com/piwi3910/photopack/internal/preset"
	"github.com/piwi3910/photopack/internal/project"
	"github.com/piwi3910/photopack/internal/rasterpreview"
	"github.com/piwi3910/photopack/pkg/pack"
)

// packOpts holds the command-line flags for the pack command.
type packOpts struct {
	out          string
	pdfPath      string
	labelsPath   string
	manifestPath string
	previewPath  string
	previewDPI   float64
	unit         string
}

// newPackCmd creates the pack command: it reads a project file, runs the
// packing engine, and optionally renders every export format the domain
// stack supports.
func newPackCmd() *cobra.Command {
	opts := packOpts{unit: "in", previewDPI: 150}

	cmd := &cobra.Command{
		Use:   "pack <project.json>",
		Short: "Pack a project's photo orders onto pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPack(c, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write placements as JSON to this path (stdout if empty)")
	cmd.Flags().StringVar(&opts.pdfPath, "pdf", "", "also render a PDF proof to this path")
	cmd.Flags().StringVar(&opts.labelsPath, "labels", "", "also render a QR-coded label sheet to this path")
	cmd.Flags().StringVar(&opts.manifestPath, "manifest", "", "also write an order manifest workbook to this path")
	cmd.Flags().StringVar(&opts.previewPath, "preview", "", "also render a PNG preview of page 0 to this path")
	cmd.Flags().Float64Var(&opts.previewDPI, "preview-dpi", opts.previewDPI, "pixels-per-unit scale for --preview")
	cmd.Flags().StringVar(&opts.unit, "unit", opts.unit, "unit string passed to fpdf for --pdf (in, mm, cm, pt)")

	return cmd
}

func runPack(c *cobra.Command, projectPath string, opts *packOpts) error {
	ctx := c.Context()
	logger := applog.FromContext(ctx)

	proj, err := project.Load(projectPath)
	if err != nil {
		return err
	}

	pageConfig, algo, err := resolvePageConfigAndAlgorithm(proj)
	if err != nil {
		return err
	}

	inputs := proj.Inputs()
	logger.Infof("Packing %d photo(s) for project %q", len(inputs), proj.Name)

	prog := applog.NewProgress(logger)
	placements, err := pack.Pack(inputs, pageConfig, algo)
	if err != nil {
		return fmt.Errorf("pack: %w", err)
	}
	prog.Done(fmt.Sprintf("Packed %d placement(s)", len(placements)))

	if err := writePlacements(opts.out, placements); err != nil {
		return err
	}

	if err := touchRecentProjects(projectPath); err != nil {
		logger.Warnf("Could not update recent projects list: %v", err)
	}

	return renderExports(logger, placements, pageConfig, opts)
}

func resolvePageConfigAndAlgorithm(proj project.Project) (pack.PageConfig, pack.Algorithm, error) {
	algo := config.AppConfig{DefaultAlgorithm: proj.Algorithm}.Algorithm()

	if proj.CustomPage != nil {
		return *proj.CustomPage, algo, nil
	}

	library, err := preset.Load(preset.DefaultPath(config.DefaultDir()))
	if err != nil {
		return pack.PageConfig{}, algo, err
	}
	p, ok := library.Get(proj.Preset)
	if !ok {
		return pack.PageConfig{}, algo, fmt.Errorf("cli: unknown preset %q (available: %v)", proj.Preset, library.Names())
	}
	return p.PageConfig(), algo, nil
}

func writePlacements(path string, placements []pack.Placement) error {
	data, err := json.MarshalIndent(placements, "", "  ")
	if err != nil {
		return fmt.Errorf("cli: marshaling placements: %w", err)
	}
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func touchRecentProjects(projectPath string) error {
	return project.TouchRecent(config.DefaultPath(), projectPath)
}

func renderExports(logger *charmlog.Logger, placements []pack.Placement, pageConfig pack.PageConfig, opts *packOpts) error {
	if opts.pdfPath != "" {
		if err := pdfexport.Export(opts.pdfPath, placements, pageConfig, opts.unit); err != nil {
			return err
		}
		logger.Infof("Wrote PDF proof to %s", opts.pdfPath)
	}

	if opts.labelsPath != "" {
		if err := labelsheet.Export(opts.labelsPath, placements); err != nil {
			return err
		}
		logger.Infof("Wrote label sheet to %s", opts.labelsPath)
	}

	if opts.manifestPath != "" {
		if err := manifest.Write(opts.manifestPath, placements, pageConfig); err != nil {
			return err
		}
		logger.Infof("Wrote order manifest to %s", opts.manifestPath)
	}

	if opts.previewPath != "" {
		img, err := rasterpreview.RenderPage(placements, pageConfig, 0, opts.previewDPI)
		if err != nil {
			return err
		}
		f, err := os.Create(opts.previewPath)
		if err != nil {
			return fmt.Errorf("cli: creating preview file: %w", err)
		}
		defer f.Close()
		if err := rasterpreview.EncodePNG(f, img); err != nil {
			return err
		}
		logger.Infof("Wrote preview PNG to %s", opts.previewPath)
	}

	return nil
}
