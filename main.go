package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nobel-stats/app/repository"
	service "nobel-stats/app/service/statistics"
	"nobel-stats/app/view"
	"nobel-stats/config"
	"nobel-stats/database"
	FiberApp "nobel-stats/fiber"
	"nobel-stats/logger"
	"nobel-stats/metrics"
	"nobel-stats/route"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nobel-stats",
		Short:         "Nobel Prize laureates per country and category",
		SilenceUsage: true,
		RunE:         runServe,
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the statistics page and API",
		RunE:  runServe,
	}

	top := &cobra.Command{
		Use:   "top",
		Short: "Print the top countries per category",
		RunE:  runTop,
	}
	top.Flags().IntP("limit", "n", 0, "countries per category (defaults to TOP_N)")

	root.AddCommand(serve, top)
	return root
}

// bootstrap loads configuration, builds the logger and opens the data source.
// The returned cleanup closes database connections.
func bootstrap(ctx context.Context) (*config.Config, *zap.Logger, repository.DatasetRepository, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, err
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	repo, cleanup, err := newDatasetRepository(ctx, cfg)
	if err != nil {
		log.Error("data source unavailable", zap.String("source", cfg.DataSource), zap.Error(err))
		_ = log.Sync()
		return nil, nil, nil, nil, err
	}
	return cfg, log, repo, cleanup, nil
}

func newDatasetRepository(ctx context.Context, cfg *config.Config) (repository.DatasetRepository, func(), error) {
	noop := func() {}

	switch cfg.DataSource {
	case config.SourceHTTP:
		return repository.NewHTTPRepository(cfg.PrizeLocation, cfg.LaureateLocation, cfg.LoadTimeout), noop, nil

	case config.SourceMongo:
		client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewMongoRepository(db), func() { _ = client.Disconnect(context.Background()) }, nil

	case config.SourcePostgres:
		db, err := database.ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresRepository(db), func() { _ = db.Close() }, nil

	default:
		return repository.NewFileRepository(cfg.PrizeLocation, cfg.LaureateLocation), noop, nil
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Config, logger and data source
	cfg, log, repo, cleanup, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	defer log.Sync()

	// 2. Load datasets in the background
	collector := metrics.NewCollector("nobel")
	loader := service.NewLoader(repo, log, collector, cfg.LoadTimeout)
	loader.Start(ctx)

	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}
	statisticsService := service.NewStatisticsService(loader, renderer, cfg.TopN, log)

	// 3. Setup Fiber app and routes
	app := FiberApp.SetupFiber(log, collector)
	route.SetupRoutes(app, statisticsService, collector)

	// 4. Start server
	go func() {
		log.Info("server running", zap.String("port", cfg.Port), zap.String("source", cfg.DataSource))
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	// 5. Graceful shutdown
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}

func runTop(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, log, repo, cleanup, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	defer log.Sync()

	n, _ := cmd.Flags().GetInt("limit")
	if n <= 0 {
		n = cfg.TopN
	}

	session, err := service.NewLoader(repo, log, nil, cfg.LoadTimeout).Load(ctx)
	if err != nil {
		return fmt.Errorf("load datasets: %w", err)
	}
	return view.WriteText(cmd.OutOrStdout(), service.BuildCountryGrid(session.Counts, n))
}
