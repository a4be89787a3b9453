package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/keoko/mots/internal/app"
	"github.com/keoko/mots/internal/config"
	"github.com/keoko/mots/internal/models"
	"github.com/keoko/mots/internal/tui"
	"go.uber.org/zap"
)

const logFile = "mots.log"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger, err := app.SetupFileLogger(cfg.Env, logFile)
	if err != nil {
		log.Fatal("failed init logger " + err.Error())
		return
	}
	defer func() { _ = logger.Sync() }()

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed init app", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer a.Close()

	if cfg.PlayerName != "" {
		if _, err := a.Services.SetPlayerName(context.Background(), models.LocalOwner, cfg.PlayerName); err != nil {
			logger.Warn("invalid player name", zap.String("name", cfg.PlayerName), zap.Error(err))
		}
	}

	model := tui.New(a.NewGame(models.LocalOwner), a.Services, logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("tui stopped with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
	}
}
