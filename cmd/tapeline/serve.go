package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"tapeline"
	"tapeline/internal/cli"
	"tapeline/internal/logging"
	httpadapter "tapeline/pkg/adapters/http"
	"tapeline/pkg/adapters/memory"
	redisadapter "tapeline/pkg/adapters/redis"
	"tapeline/pkg/observability"
	"tapeline/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the engine in server mode, exposing runs and sessions as a JSON API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configPath, _ := cmd.Flags().GetString("config")
		machineFile, _ := cmd.Flags().GetString("machine")

		cfg, err := cli.LoadServeConfig(configPath)
		if err != nil {
			return err
		}
		if machineFile != "" {
			cfg.MachineFile = machineFile
		}

		m, err := loadOrSampleMachine(cfg.MachineFile)
		if err != nil {
			return err
		}

		logger := logging.New(slog.LevelInfo)

		var store ports.SessionStore
		if cfg.Redis.Addr != "" {
			redisOpts := []redisadapter.Option{redisadapter.WithTTL(time.Duration(cfg.Redis.TTL))}
			if cfg.Redis.Prefix != "" {
				redisOpts = append(redisOpts, redisadapter.WithPrefix(cfg.Redis.Prefix))
			}
			store = redisadapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redisOpts...)
			logger.Info("using redis session store", "addr", cfg.Redis.Addr)
		} else {
			store = memory.NewStore()
			logger.Info("using in-memory session store")
		}

		registry := prometheus.NewRegistry()
		metrics := observability.NewMetrics(registry)

		engine, err := tapeline.New(m,
			tapeline.WithStore(store),
			tapeline.WithStepLimit(cfg.StepLimit),
			tapeline.WithLifecycleHooks(metrics.Hooks()),
			tapeline.WithLogger(logger),
		)
		if err != nil {
			return err
		}

		r := chi.NewRouter()
		r.Mount("/", httpadapter.NewHandler(engine, httpadapter.WithLogger(logger)))
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: r,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", cfg.Addr, "machine", m.Title())
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("failed to stop server: %w", err)
				}
			}
			logger.Info("server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("config", "c", "", "Path to a YAML config file")
}
