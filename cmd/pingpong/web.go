package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/web"
)

var (
	flagWebAddr   string
	flagStaticDir string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser page",
	Long: `Start the HTTP server for the browser version.

GET / renders the page for ?category=N&level=N (both default to 1).
Other paths are static files, embedded unless --static-dir is set.
The port comes from PORT (default 3000); --addr overrides it.

Examples:
  pingpong web
  PORT=8080 pingpong web
  pingpong web --addr 127.0.0.1:9000 --static-dir ./public`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "Listen address (default :$PORT or :3000)")
	webCmd.Flags().StringVar(&flagStaticDir, "static-dir", "", "Serve static files from this directory")
}

func runWeb(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pingpong-web",
	})

	srv, err := web.New(web.Config{
		Addr:        flagWebAddr,
		StaticDir:   flagStaticDir,
		Progression: gameCfg.Progression,
	}, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
