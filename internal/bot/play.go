package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/keoko/mots/internal/game"
	"github.com/keoko/mots/internal/storage/cache"
	"go.uber.org/zap"
)

type PlayT struct {
	bot     BotSender
	cache   *cache.Cache
	newGame GameFactory
	log     *zap.Logger
}

func NewPlayTAPI(bot BotSender, cache *cache.Cache, newGame GameFactory, log *zap.Logger) *PlayT {
	return &PlayT{
		bot:     bot,
		cache:   cache,
		newGame: newGame,
		log:     log,
	}
}

func (t *PlayT) game(userID int64) *game.Game {
	return t.cache.Game(userID, func() *game.Game {
		return t.newGame(owner(userID))
	})
}

// sendTopics resets the user's game to topic selection.
func (t *PlayT) sendTopics(chatID, userID int64) {
	g := t.game(userID)
	g.BackToTopics()

	text, keyboard := renderTopics(g.Topics())
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, t.log, msg)
}

// handleAnswer treats free text as an answer to the current word.
func (t *PlayT) handleAnswer(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID := message.From.ID
	g := t.game(userID)

	if _, ok := g.State().(game.Playing); !ok {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Pick a topic and press 🎯 Play to answer words. Use /start to begin.")
		sendMessage(t.bot, t.log, msg)
		return
	}

	if err := g.SetInput(message.Text); err != nil {
		t.log.Warn("failed to set answer", zap.Int64("user_id", userID), zap.Error(err))
		return
	}
	if err := g.SubmitAnswer(ctx); err != nil {
		if errors.Is(err, game.ErrEmptyAnswer) {
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "✏️ Type a translation first."))
			return
		}
		t.log.Warn("failed to submit answer", zap.Int64("user_id", userID), zap.Error(err))
		return
	}

	t.sendState(message.Chat.ID, g)
}

func (t *PlayT) handleCallback(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		t.log.Warn("callback without message", zap.Int64("user_id", query.From.ID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chatID := query.Message.Chat.ID
	userID := query.From.ID
	g := t.game(userID)

	var err error
	switch data := query.Data; {
	case strings.HasPrefix(data, cbTopicPrefix):
		g.BackToTopics()
		err = g.SelectTopic(strings.TrimPrefix(data, cbTopicPrefix))
	case data == cbStudy:
		err = g.SelectMode(game.ModeStudy)
	case data == cbPlay:
		err = g.SelectMode(game.ModePlay)
	case data == cbPractice:
		g.BackToTopics()
		err = g.StartPracticeFailed(ctx)
		if errors.Is(err, game.ErrNoFailedWords) {
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "🎉 No mistakes to practice."))
			return
		}
	case data == cbReveal:
		err = g.ToggleReveal()
	case data == cbNext:
		if _, ok := g.State().(game.Studying); ok {
			err = g.NextCard()
		} else {
			err = g.NextWord(ctx)
		}
	case data == cbPrev:
		err = g.PreviousWord()
	case data == cbFinish:
		err = g.FinishStudy()
	case data == cbReplay:
		err = g.BackToModeSelection()
	case data == cbTopics:
		g.BackToTopics()
	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", userID))
		return
	}

	// A button from an older message no longer matches the game; show where it is now.
	if err != nil {
		t.log.Debug("callback rejected", zap.String("data", query.Data), zap.Int64("user_id", userID), zap.Error(err))
	}

	t.sendState(chatID, g)
}

func (t *PlayT) sendState(chatID int64, g *game.Game) {
	text, keyboard := render(g.Snapshot(), g.Topics())

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, t.log, msg)
}
