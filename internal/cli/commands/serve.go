package commands

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/projeto-tutor/tutor/internal/cli/config"
	"github.com/projeto-tutor/tutor/internal/ui"
	"github.com/projeto-tutor/tutor/internal/ui/resources"
)

// openBrowser is replaced in tests.
var openBrowser = func(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site locally",
		Long: `Start a local web server for the landing page.

With --watch (in builds tagged dev) the stylesheet directory is watched and
open pages reload when an asset changes.`,
		Example: `  # Serve on the default port
  tutor serve

  # Serve on a custom port and reload on CSS edits
  tutor serve --port 3000 --watch

  # Start without auto-opening browser
  tutor serve --no-browser`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, NewCommandContext(cmd))
		},
	}

	// Flags are merged into the loaded config under server.*
	cmd.Flags().Int("port", config.DefaultPort, "Port to serve on")
	cmd.Flags().Bool("watch", false, "Reload open pages when assets change")
	cmd.Flags().Bool("no-browser", false, "Don't auto-open browser")

	return cmd
}

// serverConfig maps CLI config onto the server.
func serverConfig(cc *CommandContext) ui.Config {
	return ui.Config{
		Port:            cc.Cfg.Server.Port,
		Watch:           cc.Cfg.Server.Watch,
		StaticDir:       resources.Dir(),
		ShutdownTimeout: cc.Cfg.Server.ShutdownTimeout,
		Options:         cc.Cfg.PageOptions(),
		Logger:          cc.Logger,
	}
}

func runServe(cmd *cobra.Command, cc *CommandContext) error {
	srvCfg := serverConfig(cc)
	server := ui.NewServer(srvCfg)

	url := fmt.Sprintf("http://localhost:%d", srvCfg.Port)
	if cc.Cfg.Server.AutoOpen {
		go openBrowser(url)
	}

	lines := []string{"Press Ctrl+C to stop"}
	if srvCfg.Watch {
		lines = append(lines, "Watching "+srvCfg.StaticDir)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), cc.Styles.Banner("Tutor", url, lines...))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return server.Serve(ctx)
}
