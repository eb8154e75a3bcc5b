package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	metricsHttp "generator-stats-service/internal/metrics/adapters/http/fiber"
	metricsRepoPg "generator-stats-service/internal/metrics/adapters/postgres"
	metricsPorts "generator-stats-service/internal/metrics/core/ports"
	metricsUsecase "generator-stats-service/internal/metrics/core/usecase"

	recordsHttp "generator-stats-service/internal/records/adapters/http/fiber"
	recordsRepoMem "generator-stats-service/internal/records/adapters/memory"
	recordsRepoPg "generator-stats-service/internal/records/adapters/postgres"
	recordsPorts "generator-stats-service/internal/records/core/ports"
	recordsUsecase "generator-stats-service/internal/records/core/usecase"

	"generator-stats-service/internal/migrations"
	"generator-stats-service/internal/platform/config"
	"generator-stats-service/internal/platform/logger"
	"generator-stats-service/internal/platform/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"golang.org/x/sync/errgroup"

	_ "generator-stats-service/docs"
)

const serviceName = "generator-stats-service"

// store bundles the record repository and the reader statistics are computed from.
type store struct {
	records recordsPorts.RecordRepositoryPort
	reader  metricsPorts.RecordReaderPort
	close   func() error
}

// @title Generator Stats Service API
// @version 1.0
// @description Stores generator usage records and serves time-bucketed usage statistics.
// @BasePath /
func main() {
	configPath := flag.String("config", os.Getenv("STATS_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(logger.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
	})
	log := logger.Named("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to open record store")
	}
	defer func() {
		if err := st.close(); err != nil {
			log.Error().Err(err).Msg("failed to close record store")
		}
	}()

	app := newApp(cfg, st)

	if err := run(ctx, app, cfg.Server); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}

	log.Info().Msg("server exiting")
}

func openStore(ctx context.Context, cfg config.DatabaseConfig) (store, error) {
	if cfg.Driver == "memory" {
		repo := recordsRepoMem.NewRecordRepository()
		logger.Named("main").Warn().Msg("using in-memory record store, data is lost on restart")
		return store{records: repo, reader: repo, close: func() error { return nil }}, nil
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return store{}, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return store{}, fmt.Errorf("ping postgres: %w", err)
	}

	if err := migrations.Run(db, cfg.AutoMigrate); err != nil {
		_ = db.Close()
		return store{}, err
	}

	return store{
		records: recordsRepoPg.NewRecordRepository(recordsRepoPg.NewSQLDB(db)),
		reader:  metricsRepoPg.NewRecordReader(metricsRepoPg.NewSQLDB(db), cfg.ReadBatchSize),
		close:   db.Close,
	}, nil
}

func newApp(cfg *config.Config, st store) *fiber.App {
	// Usecases
	storeRecordUC := recordsUsecase.NewStoreRecordUseCase(st.records)
	queryRecordUC := recordsUsecase.NewQueryRecordUseCase(st.records)
	statisticsUC := metricsUsecase.NewGetStatisticsUseCase(st.reader)

	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		BodyLimit:             cfg.Server.BodyLimitMB << 20,
		DisableStartupMessage: true,
	})

	httpMetrics := metrics.NewHTTP("generator_stats")

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(requestLogger)
	app.Use(httpMetrics.Middleware())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/metrics", httpMetrics.Handler())

	// records endpoints
	recordsHttp.NewRecordHandler(storeRecordUC, queryRecordUC).Register(app)

	// statistics endpoints
	metricsHttp.NewStatisticsHandler(statisticsUC).Register(app)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	return app
}

// requestLogger puts the request id on the user context and logs each request once it completes.
func requestLogger(c *fiber.Ctx) error {
	ctx := logger.WithRequest(c.UserContext(), c.GetRespHeader(fiber.HeaderXRequestID))
	c.SetUserContext(ctx)

	start := time.Now()
	err := c.Next()

	logger.C(ctx).Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("latency", time.Since(start)).
		Msg("request handled")

	return err
}

// run serves until ctx is cancelled, then shuts the server down gracefully.
func run(ctx context.Context, app *fiber.App, cfg config.ServerConfig) error {
	log := logger.Named("main")
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr()).Msg("server started")
		return app.Listen(cfg.Addr())
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			return fmt.Errorf("fiber shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
