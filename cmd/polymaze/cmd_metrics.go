package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/polymaze/internal/logging"
	"github.com/katalvlaran/polymaze/internal/observability"
	"github.com/katalvlaran/polymaze/maze"
)

func newMetricsCmd(a *app) *cobra.Command {
	var (
		file     string
		parallel int
		listen   string
	)
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Generate a batch of levels and print Prometheus metrics",
		Long: "metrics generates every level of the catalogue (or --file) with a\n" +
			"metrics collector attached and prints the Prometheus text exposition.\n" +
			"With --listen it keeps serving /metrics until interrupted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			levels, err := loadLevels(file)
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			collector, err := observability.NewCarveCollector(reg)
			if err != nil {
				return err
			}

			if parallel <= 0 {
				parallel = 1
			}
			models, elapsed, err := generateAll(cmd, a, levels, parallel, 1, maze.WithObserver(collector))
			if err != nil {
				collector.ObserveGeneration(nil, 0, err)
				return err
			}
			for i, m := range models {
				collector.ObserveGeneration(m, elapsed[i], nil)
			}

			if err := collector.WriteText(cmd.OutOrStdout()); err != nil {
				return err
			}
			if listen == "" {
				return nil
			}
			return serveMetrics(cmd, a.log, listen, collector)
		},
	}
	f := cmd.Flags()
	f.StringVar(&file, "file", "", "level file (yaml/json/toml) instead of the built-in catalogue")
	f.IntVar(&parallel, "parallel", 4, "levels generated concurrently")
	f.StringVar(&listen, "listen", "", "serve /metrics on this address after the batch (e.g. :9090)")

	return cmd
}

// serveMetrics serves /metrics until the command context is cancelled.
func serveMetrics(cmd *cobra.Command, log logging.Logger, addr string, collector *observability.CarveCollector) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	ctx := cmd.Context()
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	log.Info(ctx, "serving metrics", logging.String("addr", addr))

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
