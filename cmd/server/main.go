package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/socialinept/princessplatelets-server-go/internal/catalog"
	"github.com/socialinept/princessplatelets-server-go/internal/config"
	"github.com/socialinept/princessplatelets-server-go/internal/game"
	"github.com/socialinept/princessplatelets-server-go/internal/repository"
	"github.com/socialinept/princessplatelets-server-go/internal/server"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting platelets server",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	cardTypes, err := loadCardTypes(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to load card catalog", zap.Error(err))
	}
	logger.Info("card catalog loaded", zap.Int("card_types", len(cardTypes)))

	gameMgr := game.NewManager(cardTypes, logger)
	logger.Info("game manager initialized")

	srv := server.New(cfg.Server, gameMgr, cardTypes, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(ctx)
	}()

	select {
	case sig := <-sigChan:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			logger.Error("http server error", zap.Error(err))
		}
	}

	logger.Info("platelets server stopped")
}

// loadCardTypes resolves the catalog source: database when enabled, then the
// remote endpoint, then the built-in table.
func loadCardTypes(ctx context.Context, cfg *config.Config, logger *zap.Logger) ([]*catalog.CardType, error) {
	if cfg.Database.Enabled {
		db, err := repository.NewDB(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		stats := db.Stats()
		logger.Info("database connection pool initialized",
			zap.Int32("total_conns", stats.TotalConns()),
			zap.Int32("idle_conns", stats.IdleConns()),
		)
		return repository.NewCatalogRepository(db).ListCardTypes(ctx)
	}

	if cfg.Catalog.Endpoint != "" {
		return catalog.FetchHTTP(ctx, cfg.Catalog.Endpoint, cfg.Catalog.Timeout, logger)
	}

	logger.Info("no catalog source configured, using built-in card table")
	return catalog.BuiltIn(), nil
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
