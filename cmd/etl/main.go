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

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/grib-metadata-etl/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/grib-metadata-etl/internal/adapter/kafka"
	"github.com/couchcryptid/grib-metadata-etl/internal/adapter/tablesource"
	"github.com/couchcryptid/grib-metadata-etl/internal/calendar"
	"github.com/couchcryptid/grib-metadata-etl/internal/config"
	"github.com/couchcryptid/grib-metadata-etl/internal/domain"
	"github.com/couchcryptid/grib-metadata-etl/internal/gribmeta"
	"github.com/couchcryptid/grib-metadata-etl/internal/observability"
	"github.com/couchcryptid/grib-metadata-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	tables, err := newTableProvider(cfg, metrics, logger)
	if err != nil {
		logger.Error("failed to set up code tables", "error", err)
		os.Exit(1)
	}
	resolver := gribmeta.NewResolver(tables)

	engine := calendar.NewEngine(nil, nil)
	if cfg.DisplayTZ != "" {
		zone, err := calendar.LoadZone(cfg.DisplayTZ)
		if err != nil {
			logger.Error("failed to load display zone", "error", err)
			os.Exit(1)
		}
		engine = calendar.NewEngine(zone, nil)
	}

	labeler := domain.NewLabeler(resolver, engine, domain.LabelOptions{
		Units:       cfg.UnitSystem,
		TimeFormat:  cfg.TimeFormat,
		DisplayMode: cfg.DisplayMode,
	})
	logger.Info("labeler configured",
		"units", cfg.UnitSystem.String(),
		"display_mode", cfg.DisplayMode.String(),
		"time_format", cfg.TimeFormat,
	)

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(labeler, metrics)

	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)

	lookup := &httpadapter.Lookup{Resolver: resolver, Engine: engine, Units: cfg.UnitSystem}
	srv := httpadapter.NewServer(cfg.HTTPAddr, p, lookup, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return p.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("service stopped with error", "error", err)
	}

	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}

// newTableProvider picks the code table source: a local directory, an HTTP
// mirror, or the compiled-in tables. CSV sources fall back to the
// compiled-in tables for files they do not carry.
func newTableProvider(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) (gribmeta.TableProvider, error) {
	switch {
	case cfg.ResourceDir != "":
		if _, err := os.Stat(cfg.ResourceDir); err != nil {
			return nil, fmt.Errorf("table directory: %w", err)
		}
		logger.Info("using table directory", "dir", cfg.ResourceDir)
		return gribmeta.NewCSVProvider(os.DirFS(cfg.ResourceDir), gribmeta.BuiltinTables{}, logger), nil

	case cfg.ResourceURL != "":
		client, err := tablesource.NewClient(cfg.ResourceURL, cfg.ResourceTimeout, metrics, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("using table mirror", "url", cfg.ResourceURL,
			"timeout", cfg.ResourceTimeout, "cache_size", cfg.TableCacheSize)
		fsys := tablesource.NewCachedFS(client, cfg.TableCacheSize, metrics)
		return gribmeta.NewCSVProvider(fsys, gribmeta.BuiltinTables{}, logger), nil
	}

	logger.Info("using compiled-in tables")
	return gribmeta.BuiltinTables{}, nil
}
