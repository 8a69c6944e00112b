package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"deal-analyzer/internal/api"
	"deal-analyzer/internal/config"
	"deal-analyzer/internal/deal"
	"deal-analyzer/internal/logging"
	"deal-analyzer/internal/property"
	"deal-analyzer/internal/session"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logging.SetGlobal(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	engine := deal.New(cfg.Engine)
	sessions := session.NewStore(engine, cfg.Session.TTL)
	if cfg.Session.TTL > 0 && cfg.Session.SweepInterval > 0 {
		go sessions.RunSweeper(ctx, cfg.Session.SweepInterval)
	}

	props, closeProps, err := buildProperties(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("property repository")
	}
	defer closeProps()

	router := api.NewRouter(api.Deps{
		Engine:         engine,
		Sessions:       sessions,
		Properties:     props,
		Log:            log,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("env", cfg.Server.Env).
			Float64("closing_cost_multiplier", cfg.Engine.ClosingCostMultiplier).
			Msg("starting API server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("server failed")
		return
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("server exited")
}

// buildProperties loads the seed file and puts a cache in front of it: redis
// when configured and reachable, otherwise in-process.
func buildProperties(ctx context.Context, cfg *config.Config, log zerolog.Logger) (property.Repository, func(), error) {
	base, err := property.NewMemoryRepositoryFromFile(cfg.Property.SeedFile)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Int("properties", len(base.List())).Str("file", cfg.Property.SeedFile).Msg("loaded properties")

	if cfg.Property.RedisAddr != "" {
		rc := property.NewRedisCache(cfg.Property.RedisAddr, cfg.Property.CacheTTL)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		err := rc.Ping(pingCtx)
		if err == nil {
			log.Info().Str("addr", cfg.Property.RedisAddr).Msg("using redis property cache")
			return property.NewCachedRepository(base, rc, log), func() { _ = rc.Close() }, nil
		}
		log.Warn().Err(err).Str("addr", cfg.Property.RedisAddr).Msg("redis unavailable, falling back to in-process cache")
		_ = rc.Close()
	}

	mc := property.NewMapCache(cfg.Property.CacheTTL)
	go mc.RunPruner(ctx, 5*time.Minute)
	return property.NewCachedRepository(base, mc, log), func() {}, nil
}
