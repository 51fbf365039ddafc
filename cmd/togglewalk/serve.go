package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/togglewalk"
	httpAdapter "github.com/aretw0/togglewalk/internal/adapters/http"
	"github.com/aretw0/togglewalk/pkg/adapters/memory"
	"github.com/aretw0/togglewalk/pkg/adapters/redis"
	"github.com/aretw0/togglewalk/pkg/observability"
	"github.com/aretw0/togglewalk/pkg/ports"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Exposes the solver as a JSON API over HTTP. Answers are remembered by graph
fingerprint in memory, or in Redis with --redis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		port, _ := cmd.Flags().GetString("port")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		var store ports.ResultStore = memory.NewStore()
		var locker ports.DistributedLocker = memory.NewLocker()
		if cfg.RedisAddr != "" {
			rs := redis.New(cfg.RedisAddr, "", 0, redis.WithTTL(ttl))
			defer rs.Close()
			store = rs
			locker = rs.Locker()
			logger.Info("using redis result store", "addr", cfg.RedisAddr)
		}

		metrics := observability.NewMetrics()
		handler, err := httpAdapter.NewHandler(httpAdapter.Options{
			Cached: togglewalk.New(
				togglewalk.WithLogger(logger),
				togglewalk.WithHooks(metrics.Hooks()),
				togglewalk.WithStore(store),
				togglewalk.WithLocker(locker, time.Minute),
			),
			Plain: togglewalk.New(
				togglewalk.WithLogger(logger),
				togglewalk.WithCaching(false),
				togglewalk.WithHooks(metrics.Hooks()),
			),
			Gatherer: metrics.Registry(),
			Logger:   logger,
			Version:  togglewalk.Version,
		})
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				return srv.Close()
			}
			logger.Info("server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for the result store (default in memory)")
	serveCmd.Flags().Duration("ttl", 0, "Expiry of stored results in Redis (0 = never)")
}
