package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/brdgme/markup/internal/server"
	"github.com/brdgme/markup/pkg/buildinfo"
	"github.com/brdgme/markup/pkg/cache"
)

// serveCommand creates the serve command, which runs the HTTP render
// service until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
		prefix  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run an HTTP service that renders templates.

Endpoints:
  GET  /health    liveness check
  GET  /version   build information
  POST /render    {"template", "players", "format"} -> rendered output
  POST /parse     {"template", "players", "transformed"} -> document tree
  GET  /metrics   Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := c.Config.Server
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()
			if prefix != "" {
				runner.Keyer = cache.NewScopedKeyer(runner.Keyer, prefix)
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			server.NewMetrics(reg).Install()

			srv := server.New(runner,
				server.WithLogger(c.Logger),
				server.WithGatherer(reg),
				server.WithDefaultFormat(c.Config.Format),
			)

			printKeyValue("Version", buildinfo.Version)
			printKeyValue("Address", cfg.Addr)
			if noCache {
				printWarning("Render cache disabled")
			} else {
				printKeyValue("Cache", c.Config.Cache.Backend)
			}
			return server.ListenAndServe(ctx, srv, cfg, c.Logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().StringVar(&prefix, "key-prefix", "", "extra cache key prefix, to share one cache between deployments")
	return cmd
}
