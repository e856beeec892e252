package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	server "seapay_hotel/internal/adapters/http_server"
	mcpserver "seapay_hotel/internal/adapters/mcp_server"
	"seapay_hotel/internal/adapters/observability"
	redisad "seapay_hotel/internal/adapters/redis"
	"seapay_hotel/internal/app"
	"seapay_hotel/internal/shared"
	"seapay_hotel/internal/storage/memory"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(reg)

	// deps
	repo := memory.New()
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("redis unreachable; availability responses will not be cached")
	}
	q := app.NewAvailabilityService(repo, cache, cfg.CacheTTL)
	r := app.NewReservationService(repo)

	// transports: REST routes plus the MCP tool surface on one listener
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.Mount(cfg.MCPPath, mcpserver.New(q, r).Handler())
	srv.MountHandlers(&server.Handlers{Q: q, R: r})

	log.Info().Str("addr", cfg.HTTPAddr).Str("mcp_path", cfg.MCPPath).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}
