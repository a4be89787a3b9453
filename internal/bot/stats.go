package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/keoko/mots/internal/models"
	"github.com/keoko/mots/internal/storage/cache"
	"go.uber.org/zap"
)

type StatsT struct {
	bot     BotSender
	cache   *cache.Cache
	play    *PlayT
	service StatsSI
	log     *zap.Logger
}

func NewStatsTAPI(bot BotSender, play *PlayT, service StatsSI, log *zap.Logger) *StatsT {
	return &StatsT{
		bot:     bot,
		cache:   play.cache,
		play:    play,
		service: service,
		log:     log,
	}
}

func (t *StatsT) sendStatistics(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	g := t.play.game(userID)
	g.BackToTopics()
	if err := g.GoToStatistics(); err != nil {
		t.log.Warn("failed to open statistics", zap.Int64("user_id", userID), zap.Error(err))
		return
	}

	stats := t.service.Statistics(ctx, owner(userID))

	msg := tgbotapi.NewMessage(chatID, formatStatistics(stats))
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", cbBack),
		),
	)

	sendMessage(t.bot, t.log, msg)
}

func (t *StatsT) back(chatID, userID int64) {
	g := t.play.game(userID)
	if err := g.Back(); err != nil {
		t.log.Debug("back outside statistics", zap.Int64("user_id", userID), zap.Error(err))
	}
	t.play.sendTopics(chatID, userID)
}

func formatStatistics(stats models.Statistics) string {
	if stats.Sessions == 0 {
		return "📊 No sessions yet. Play a topic to see your statistics."
	}

	var sb strings.Builder
	sb.WriteString("📊 *Your statistics*\n\n")
	fmt.Fprintf(&sb, "🎮 Sessions: %d\n", stats.Sessions)
	fmt.Fprintf(&sb, "✅ Won: %d · ❌ Lost: %d · %d%%\n", stats.TotalWon, stats.TotalLost, stats.SuccessRate)
	fmt.Fprintf(&sb, "⭐ Total score: %d\n", stats.TotalScore)
	fmt.Fprintf(&sb, "⏱ Time played: %s\n", (time.Duration(stats.TotalTime) * time.Millisecond).Round(time.Second))
	fmt.Fprintf(&sb, "🔁 Words to review: %d\n", stats.FailedWords)

	if stats.Best != nil {
		fmt.Fprintf(&sb, "\n🏆 Best: %d in %s\n", stats.Best.Score, stats.Best.TopicName)
	}

	if len(stats.Topics) > 0 {
		sb.WriteString("\n*By topic*\n")
		for _, ts := range stats.Topics {
			fmt.Fprintf(&sb, "• %s: %d sessions, best %d, %d%%\n", ts.TopicID, ts.Sessions, ts.BestScore, ts.SuccessRate)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// sendLeaderboard shows the global top scores of a topic next to the
// player's own best sessions.
func (t *StatsT) sendLeaderboard(chatID, userID int64, topicID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var sb strings.Builder
	fmt.Fprintf(&sb, "🏆 *Leaderboard: %s*\n\n", topicID)

	entries, err := t.service.FetchLeaderboard(ctx, owner(userID), topicID)
	switch {
	case err != nil:
		t.log.Warn("failed to fetch leaderboard", zap.String("topic_id", topicID), zap.Error(err))
		sb.WriteString("🌐 Leaderboard unavailable right now.\n")
	case len(entries) == 0:
		sb.WriteString("No scores yet. Be the first!\n")
	default:
		for i, e := range entries {
			fmt.Fprintf(&sb, "%d. %s · %d (%d%%)\n", i+1, e.PlayerName, e.Score, e.SuccessRate)
		}
	}

	if local := t.service.TopScores(ctx, owner(userID), topicID); len(local) > 0 {
		sb.WriteString("\n*Your best*\n")
		for i, r := range local {
			fmt.Fprintf(&sb, "%d. %d · %s%s\n", i+1, r.Score, r.Date.Format("2006-01-02"), syncMark(r.SyncStatus))
		}
	}

	msg := tgbotapi.NewMessage(chatID, strings.TrimRight(sb.String(), "\n"))
	msg.ParseMode = "markdown"

	sendMessage(t.bot, t.log, msg)
}

func syncMark(status models.SyncStatus) string {
	switch status {
	case models.SyncSynced:
		return " 🌐"
	case models.SyncPending:
		return " ⏳"
	case models.SyncRejected, models.SyncFailed:
		return " ⚠️"
	default:
		return ""
	}
}

// setName stores the name used for leaderboard submissions. Without an
// argument the next text message is taken as the name.
func (t *StatsT) setName(message *tgbotapi.Message, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userID := message.From.ID
	chatID := message.Chat.ID

	if strings.TrimSpace(name) == "" {
		text := "✏️ Send the name to show on the leaderboard (up to 8 characters)."
		if player, err := t.service.Player(ctx, owner(userID)); err == nil && player.Name != "" {
			text = fmt.Sprintf("👤 You play as %s.\n", player.Name) + text
		}

		t.cache.SetAwaitingName(userID, true)
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, text))
		return
	}

	player, err := t.service.SetPlayerName(ctx, owner(userID), name)
	if err != nil {
		t.log.Info("rejected player name", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Names must be 1 to 8 characters. Try again."))
		return
	}

	t.cache.SetAwaitingName(userID, false)
	sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, fmt.Sprintf("👤 You play as %s.", player.Name)))
}
