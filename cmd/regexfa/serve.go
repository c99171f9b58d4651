package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"regexfa/internal/cache"
	"regexfa/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Serves GET /v1/automaton, POST /v1/match, /healthz and /metrics. Rendered
automata are cached in memory, or in Redis when a Redis address is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := a.cfg.Server.Addr
			if cmd.Flags().Changed("addr") {
				addr, _ = cmd.Flags().GetString("addr")
			}
			redisAddr := a.cfg.Server.RedisAddr
			if cmd.Flags().Changed("redis") {
				redisAddr, _ = cmd.Flags().GetString("redis")
			}
			ttl := a.cfg.Server.CacheTTL.Duration

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var c cache.Cache = cache.NewMemory(ttl)
			if redisAddr != "" {
				rc := cache.NewRedis(redisAddr, cache.WithTTL(ttl))
				defer rc.Close()
				if err := rc.Ping(ctx); err != nil {
					return fmt.Errorf("redis at %s: %w", redisAddr, err)
				}
				a.logger.Info("using redis cache", "addr", redisAddr, "ttl", ttl)
				c = rc
			}

			srv := server.New(server.Options{
				Cache:            c,
				Logger:           a.logger,
				MaxPatternLength: a.cfg.Server.MaxPatternLength,
				MaxDFAStates:     a.cfg.Server.MaxDFAStates,
			})
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().String("addr", "", "Listen address, overrides server.addr")
	cmd.Flags().String("redis", "", "Redis address for the render cache, overrides server.redis_addr")
	return cmd
}
