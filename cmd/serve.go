package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/jmcampanini/folio/internal/site"
)

var serveAddrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio page and JSON API",
	Long: `Serve the portfolio page over HTTP.

Routes:
  GET  /                        the page (?page=N, ?lang=L)
  POST /run                     run the playground form
  POST /theme                   toggle light/dark
  GET  /api/v1/contributions    contributions page as JSON (?page=N)
  GET  /api/v1/runtimes         available runtimes as JSON
  POST /api/v1/execute          run {language, version, source}
  GET  /healthz                 liveness`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "Listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := newContributionSource(cfg)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if serveAddrFlag != "" {
		addr = serveAddrFlag
	}

	if !debugFlag {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := site.New(site.Options{
		Executor:          newPistonClient(cfg),
		PerPage:           cfg.Contributions.PerPage,
		PreferredLanguage: cfg.Playground.PreferredLanguage,
		Source:            source,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx, addr)
}
