package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"coachline.com/backoffice/api"
	"coachline.com/backoffice/auth"
	"coachline.com/backoffice/config"
	"coachline.com/backoffice/logging"
	"coachline.com/backoffice/metrics"
	"coachline.com/backoffice/pg/migrate"
	"coachline.com/backoffice/pg/repo"
)

func main() {
	// Local development convenience; production injects the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logging.New(cfg.LogLevel, cfg.ServiceName, cfg.Environment)
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(cfg *config.AppConfig, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cm, err := config.NewManager(cfg.ConfigSource, cfg.ConfigSourceConfig, log)
	if err != nil {
		return err
	}

	dsn := cm.Get("DATABASE_URL")
	if dsn == "" {
		return errors.New("DATABASE_URL configuration is required")
	}

	if cfg.RunMigrations {
		if err := migrate.Up(dsn); err != nil {
			return err
		}
		log.Info().Msg("database migrations applied")
	}

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	pool, err := repo.Connect(connectCtx, dsn)
	cancel()
	if err != nil {
		return err
	}
	defer pool.Close()

	db := repo.NewPostgresDB(pool)
	app := api.NewApp(api.Deps{
		Jobs:        db,
		Maintenance: db,
		Permissions: db,
		Roles:       db,
		Authorizer:  auth.NewEvaluator(log),
		Metrics:     metrics.New(),
		Log:         log,
		ServiceName: cfg.ServiceName,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("config_source", cm.Source()).Msg("starting http server")
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	return app.ShutdownWithTimeout(cfg.ShutdownTimeout)
}
