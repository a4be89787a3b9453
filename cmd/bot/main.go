package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/keoko/mots/internal/app"
	"github.com/keoko/mots/internal/bot"
	"github.com/keoko/mots/internal/config"
	"github.com/keoko/mots/internal/storage/cache"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := app.SetupLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	if cfg.BotToken == "" {
		logger.Fatal("BOT_TOKEN is required")
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed init app", zap.Error(err))
	}
	defer a.Close()

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, a.Services, a.NewGame, cache.NewCache(), logger)
	if err != nil {
		logger.Fatal("failed init telegram bot", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("bot started")
	handler.Start(ctx)
	logger.Info("bot stopped")
}
