package app

import (
	"fmt"

	"github.com/keoko/mots/internal/catalog"
	"github.com/keoko/mots/internal/client"
	"github.com/keoko/mots/internal/clock"
	"github.com/keoko/mots/internal/config"
	"github.com/keoko/mots/internal/game"
	"github.com/keoko/mots/internal/repository"
	"github.com/keoko/mots/internal/scheduler"
	"github.com/keoko/mots/internal/service"
	"github.com/keoko/mots/internal/storage/db"
	"go.uber.org/zap"
)

// App holds the pieces shared by the bot and the terminal front-ends.
type App struct {
	Catalog   *catalog.Catalog
	Services  *service.Service
	Scheduler *scheduler.Scheduler

	clock   clock.Clock
	log     *zap.Logger
	closeDB func() error
}

func SetupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

// SetupFileLogger logs to path so the terminal stays free for the UI.
func SetupFileLogger(env, path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	return cfg.Build()
}

func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	clk := clock.Real{}
	repo, closeDB, err := openStore(cfg.Storage, clk)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	clients := client.InitClients(cfg.Leaderboard.BaseURL, cfg.Leaderboard.Timeout)
	services := service.InitServices(repo, clients.LeaderboardAPI, clk, cfg.Leaderboard.Timeout, log)

	sched := scheduler.New(services.LeaderboardS, cfg.Leaderboard.RetryInterval, log)
	if err := sched.Start(); err != nil {
		_ = closeDB()
		return nil, fmt.Errorf("start scheduler: %w", err)
	}

	log.Info("app ready",
		zap.String("storage", cfg.Storage.Driver),
		zap.Int("topics", len(cat.Topics())),
		zap.String("leaderboard", cfg.Leaderboard.BaseURL),
	)

	return &App{
		Catalog:   cat,
		Services:  services,
		Scheduler: sched,
		clock:     clk,
		log:       log,
		closeDB:   closeDB,
	}, nil
}

func loadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.XLSXPath != "" {
		return catalog.LoadXLSX(cfg.XLSXPath)
	}
	return catalog.Default()
}

func openStore(cfg config.StorageConfig, clk clock.Clock) (service.KVRI, func() error, error) {
	if cfg.Driver == "memory" {
		return repository.NewMemoryKV(), func() error { return nil }, nil
	}

	conn, err := db.InitDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	return repository.NewRepository(conn, clk), conn.Close, nil
}

// NewGame builds a game for owner wired to the shared services.
func (a *App) NewGame(owner string) *game.Game {
	return game.NewGame(owner, a.Catalog, a.Services.ProgressS, a.Services.LeaderboardS, a.clock, a.log)
}

// Close stops the retry job, waits for in-flight submissions and closes storage.
func (a *App) Close() {
	a.Scheduler.Stop()
	a.Services.Wait()

	if err := a.closeDB(); err != nil {
		a.log.Warn("failed to close storage", zap.Error(err))
	}
}
