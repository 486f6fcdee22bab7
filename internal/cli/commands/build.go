package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projeto-tutor/tutor/internal/cli/output"
	"github.com/projeto-tutor/tutor/internal/export"
)

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the site as static files",
		Long: `Render the landing page and write a self-contained static site:

  index.html        the rendered document
  static/tutor.css  the stylesheet, minified with --minify
  index.md          a Markdown rendition, with --markdown`,
		Example: `  # Export to ./dist
  tutor build

  # Minified export with Markdown into ./public
  tutor build --out public --minify --markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, NewCommandContext(cmd))
		},
	}

	// Flags are merged into the loaded config under export.*
	cmd.Flags().String("out", "dist", "Output directory")
	cmd.Flags().Bool("minify", false, "Minify CSS with esbuild")
	cmd.Flags().Bool("markdown", false, "Also write a Markdown rendition")

	return cmd
}

func runBuild(cmd *cobra.Command, cc *CommandContext) error {
	exp := cc.Cfg.Export
	cc.Logger.Debug("exporting site", "out", exp.OutDir, "minify", exp.Minify, "markdown", exp.Markdown)

	res, err := export.Build(cmd.Context(), export.Options{
		OutDir:   exp.OutDir,
		Minify:   exp.Minify,
		Markdown: exp.Markdown,
		Page:     cc.Cfg.PageOptions(),
	})
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	rows := make([]output.FileRow, len(res.Files))
	for i, f := range res.Files {
		rows[i] = output.FileRow{Path: f.Path, Size: f.Size}
	}

	out := cmd.OutOrStdout()
	output.RenderFiles(out, rows)
	_, _ = fmt.Fprintln(out, cc.Styles.Success.Render("Site written to "+res.OutDir))
	return nil
}
