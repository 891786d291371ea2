package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/tessera"
	"github.com/aretw0/tessera/internal/cli"
	"github.com/aretw0/tessera/internal/logging"
	httpAdapter "github.com/aretw0/tessera/pkg/adapters/http"
	"github.com/aretw0/tessera/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP render server",
	Long: `Starts Tessera as an HTTP server. POST a layout document to /render to get the
rendered block back; /metrics exposes Prometheus metrics.

Rendered output is cached in memory, or in Redis with --redis so that several
servers share one cache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		opts := engineOptions(cmd)
		opts.CacheSize, _ = cmd.Flags().GetInt("cache-size")
		opts.RedisAddr, _ = cmd.Flags().GetString("redis")
		opts.RedisPassword, _ = cmd.Flags().GetString("redis-password")
		opts.RedisDB, _ = cmd.Flags().GetInt("redis-db")
		opts.CacheTTL, _ = cmd.Flags().GetDuration("cache-ttl")
		// Profiles are chosen per request.
		opts.Color = "none"

		level := slog.LevelInfo
		if opts.Debug {
			level = slog.LevelDebug
		}
		logger := logging.NewJSON(os.Stderr, level)

		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics(reg)

		engine, closeEngine, err := cli.CreateEngine(opts, cmd.OutOrStdout(), logger, tessera.WithHooks(metrics.Hooks()))
		if err != nil {
			return err
		}
		defer closeEngine()

		srv := &http.Server{
			Addr: ":" + port,
			Handler: httpAdapter.NewHandler(engine,
				httpAdapter.WithLogger(logger),
				httpAdapter.WithMetrics(reg),
			),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting Tessera Server", "addr", srv.Addr, "redis", opts.RedisAddr != "")
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case sig := <-shutdown:
			logger.Info("Start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", 5*time.Second, "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("Error killing server", "err", err)
				}
			}
			logger.Info("Tessera Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Int("cache-size", 1024, "Entries of the in-memory render cache (0 disables it)")
	serveCmd.Flags().String("redis", "", "Redis address (host:port) for a shared render cache")
	serveCmd.Flags().String("redis-password", "", "Redis password")
	serveCmd.Flags().Int("redis-db", 0, "Redis database")
	serveCmd.Flags().Duration("cache-ttl", time.Hour, "Expiry of cached renders in Redis (0 keeps them)")
}
