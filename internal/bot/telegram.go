package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/keoko/mots/internal/game"
	"github.com/keoko/mots/internal/models"
	"github.com/keoko/mots/internal/storage/cache"
	"go.uber.org/zap"
)

type StatsSI interface {
	Statistics(ctx context.Context, owner string) models.Statistics
	TopScores(ctx context.Context, owner, topicID string) []models.SessionRecord
	FetchLeaderboard(ctx context.Context, owner, topicID string) ([]models.ScoreEntry, error)
	Player(ctx context.Context, owner string) (models.Player, error)
	SetPlayerName(ctx context.Context, owner, name string) (models.Player, error)
}

type ServiceI interface {
	StatsSI
}

// GameFactory builds a fresh game for a persistence owner.
type GameFactory func(owner string) *game.Game

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	bot   *tgbotapi.BotAPI
	play  *PlayT
	stats *StatsT
	log   *zap.Logger
}

func NewTelegramAPI(botToken, env string, service ServiceI, newGame GameFactory, cache *cache.Cache, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = env == "development"

	play := NewPlayTAPI(bot, cache, newGame, log)

	return &TelegramAPI{
		bot:   bot,
		play:  play,
		stats: NewStatsTAPI(bot, play, service, log),
		log:   log,
	}, nil
}

// Start processes updates until ctx is cancelled.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

func owner(userID int64) string {
	return fmt.Sprintf("tg:%d", userID)
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
}
