package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/cassiomorais/credits/internal/infrastructure/config"
	"github.com/cassiomorais/credits/internal/infrastructure/observability"
	"github.com/cassiomorais/credits/internal/repository/postgres"
	"github.com/cassiomorais/credits/pkg/retry"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Pool    *pgxpool.Pool
	Metrics *observability.Metrics
}

func New(ctx context.Context, serviceName string, metricsNamespace string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := observability.InitLogger(cfg.Observability.LogLevel, os.Stdout)
	logger.Info().Str("service", serviceName).Msg("Starting")

	if cfg.Observability.EnableTracing {
		tp, err := observability.InitTracer(serviceName, cfg.Observability.JaegerEndpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
		} else {
			go func() {
				<-ctx.Done()
				observability.Shutdown(context.Background(), tp)
			}()
			logger.Info().Msg("Tracing enabled")
		}
	}

	metrics := observability.NewMetrics(metricsNamespace, nil)
	logger.Info().Msg("Metrics initialized")

	retryCfg := retry.DefaultConfig()
	if cfg.Database.ConnectRetries > 0 {
		retryCfg.MaxAttempts = cfg.Database.ConnectRetries
	}
	pool, err := retry.DoWithResult(ctx, retryCfg, func() (*pgxpool.Pool, error) {
		return postgres.NewPool(ctx, &cfg.Database)
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info().Msg("Connected to PostgreSQL")

	return &App{
		Config:  cfg,
		Logger:  logger,
		Pool:    pool,
		Metrics: metrics,
	}, nil
}

func (a *App) Close() {
	a.Pool.Close()
}
