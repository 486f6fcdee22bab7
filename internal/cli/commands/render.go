package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/projeto-tutor/tutor/internal/export"
)

// Render formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the page to stdout",
		Long: `Render the landing page once and write it to stdout, either as the
full HTML document or as Markdown.`,
		Example: `  # Print the HTML document
  tutor render

  # Print the Markdown rendition
  tutor render --format markdown > tutor.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			return runRender(cmd, cc, format, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatHTML, "Output format (html|markdown)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{FormatHTML, FormatMarkdown}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runRender(cmd *cobra.Command, cc *CommandContext, format string, w io.Writer) error {
	opts := cc.Cfg.PageOptions()
	cc.Logger.Debug("rendering page", "format", format, "lang", opts.Lang)

	switch format {
	case FormatHTML:
		return export.RenderHTML(cmd.Context(), w, opts)
	case FormatMarkdown:
		md, err := export.RenderMarkdown(cmd.Context(), opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, md)
		return err
	default:
		return fmt.Errorf("unknown format %q (use %s or %s)", format, FormatHTML, FormatMarkdown)
	}
}
