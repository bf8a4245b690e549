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

	"bbws/internal/browse"
	"bbws/internal/config"
	"bbws/internal/entity"
	"bbws/internal/httpx"
	"bbws/internal/platform/logger"
	"bbws/internal/platform/postgres"
	"bbws/internal/relationship"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func run(ctx context.Context, cmd *cli.Command) error {
	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if addr := cmd.String("addr"); addr != "" {
		cfg.Addr = addr
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	pool, err := postgres.Open(ctx, cfg.DatabaseDSN, 2*time.Second)
	if err != nil {
		return fmt.Errorf("open database %s: %w", config.RedactDSN(cfg.DatabaseDSN), err)
	}
	defer pool.Close()
	log.Info("database connection OK", "dsn", config.RedactDSN(cfg.DatabaseDSN))

	entities := entity.NewService(entity.NewPostgresRepo(pool, cfg.QueryTimeout))
	relationshipRepo := relationship.NewPostgresRepo(pool, cfg.QueryTimeout)
	svc := services{
		entities:      entities,
		relationships: relationship.NewService(entities, relationshipRepo),
		browse:        browse.NewService(entities, relationshipRepo, browse.NewPostgresRepo(pool, cfg.QueryTimeout)),
	}

	limiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustedProxies)
	handler := httpx.Chain(newRouter(svc, pool),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		limiter.Middleware,
	)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		limiter.RunCleanup(gctx)
		return nil
	})
	g.Go(func() error {
		log.Info("starting server", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func main() {
	cmd := &cli.Command{
		Name:   "bbws",
		Usage:  "Read-only web service over a bibliographic catalogue",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address, overrides APP_ADDR",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "bbws:", err)
		os.Exit(1)
	}
}
