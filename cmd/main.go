package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "ad-dashboard/internal/adapter/http"
	"ad-dashboard/internal/adapter/postgres"
	"ad-dashboard/internal/adapter/reportfile"
	"ad-dashboard/internal/adapter/usecase"
	"ad-dashboard/internal/config"
	"ad-dashboard/internal/core/port"
	"ad-dashboard/internal/db"
)

// main is the entry point of the campaign report dashboard. It loads
// configuration, opens the configured report source, warms the report
// cache and serves the dashboard until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	src, closeSrc, err := openReportSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("report source error", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeSrc()

	cache := usecase.NewReportCache(src, logger)
	// A broken report is logged here and answered with 500 per request.
	if _, err = cache.Get(ctx); err != nil {
		logger.Error("initial report load failed", slog.Any("error", err))
	}

	if fileSrc, ok := src.(*reportfile.Source); ok && cfg.Report.Watch {
		go func() {
			if err := reportfile.Watch(ctx, logger, fileSrc.Path(), cache.Invalidate); err != nil {
				logger.Error("report watcher stopped", slog.Any("error", err))
			}
		}()
	}

	svc := usecase.NewReportUseCase(cache)
	handler := httpadapter.NewHandler(svc, logger, cfg.Report.Title)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("source", src.Name()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openReportSource returns the configured report source and a function
// releasing its resources. The postgres source optionally migrates the
// schema and imports the report file first.
func openReportSource(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.ReportSource, func(), error) {
	fileSrc := reportfile.NewSource(cfg.Report.Path)
	if !cfg.Report.UsePostgres() {
		return fileSrc, func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	if cfg.Psql.ImportReport {
		tbl, err := fileSrc.Read(ctx)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		id, err := db.ImportReport(ctx, pool, fileSrc.Name(), tbl)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("import report: %w", err)
		}
		logger.Info("report imported", slog.String("import_id", id), slog.Int("rows", tbl.Len()))
	}

	return postgres.NewReportSource(pool), pool.Close, nil
}
