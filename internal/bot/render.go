package bot

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/keoko/mots/internal/game"
	"github.com/keoko/mots/internal/models"
)

const (
	cbTopicPrefix = "topic:"
	cbTopPrefix   = "top:"
	cbStudy       = "mode_study"
	cbPlay        = "mode_play"
	cbPractice    = "practice"
	cbReveal      = "reveal"
	cbNext        = "next"
	cbPrev        = "prev"
	cbFinish      = "finish"
	cbReplay      = "replay"
	cbTopics      = "topics"
	cbStats       = "stats"
	cbBack        = "back"
)

// render turns a snapshot into a message text and its inline keyboard.
// Statistics are rendered by StatsT since they need stored data.
func render(snap game.Snapshot, topics []models.Topic) (string, tgbotapi.InlineKeyboardMarkup) {
	switch snap.Phase {
	case game.PhaseModeSelect:
		text := fmt.Sprintf("%s *%s* · %d words\n\nHow do you want to practice?", snap.TopicEmoji, snap.TopicName, snap.WordCount)
		return text, tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📖 Study", cbStudy),
				tgbotapi.NewInlineKeyboardButtonData("🎯 Play", cbPlay),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("⬅️ Topics", cbTopics),
			),
		)

	case game.PhaseStudying:
		var sb strings.Builder
		fmt.Fprintf(&sb, "📖 %s %d/%d\n\n*%s*\n\n", snap.TopicName, snap.WordIndex+1, snap.WordCount, snap.Source)
		reveal := "👁 Reveal"
		if snap.Revealed {
			fmt.Fprintf(&sb, "➡️ *%s*", snap.Target)
			reveal = "🙈 Hide"
		} else {
			sb.WriteString("❓")
		}
		return sb.String(), tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("⬅️", cbPrev),
				tgbotapi.NewInlineKeyboardButtonData(reveal, cbReveal),
				tgbotapi.NewInlineKeyboardButtonData("➡️", cbNext),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🏁 Finish", cbFinish),
			),
		)

	case game.PhasePlaying:
		text := fmt.Sprintf("%s %s %d/%d · 🔥 %d · ⭐ %d\n\nTranslate: *%s*\n\nType your answer.",
			modeIcon(snap.Mode), snap.TopicName, snap.WordIndex+1, snap.WordCount, snap.Streak, snap.Score, snap.Source)
		return text, tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("⬅️ Topics", cbTopics),
			),
		)

	case game.PhaseResult:
		var text string
		if snap.Correct {
			text = fmt.Sprintf("✅ Correct! *%s* = *%s*\n🔥 Streak: %d", snap.Source, snap.Target, snap.Streak)
		} else {
			text = fmt.Sprintf("❌ Wrong. *%s* = *%s*\nYou wrote: %s", snap.Source, snap.Target, snap.Answer)
		}
		return text, tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("➡️ Next", cbNext),
			),
		)

	case game.PhaseComplete:
		return renderComplete(snap)

	default:
		return renderTopics(topics)
	}
}

func renderTopics(topics []models.Topic) (string, tgbotapi.InlineKeyboardMarkup) {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(topics)+1)
	for _, topic := range topics {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s %s", topic.Emoji, topic.Name), cbTopicPrefix+topic.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔁 Mistakes", cbPractice),
		tgbotapi.NewInlineKeyboardButtonData("📊 Statistics", cbStats),
	))

	return "📚 Choose a topic:", tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func renderComplete(snap game.Snapshot) (string, tgbotapi.InlineKeyboardMarkup) {
	if snap.Mode == game.ModeStudy {
		return fmt.Sprintf("📖 Study finished: *%s*", snap.TopicName), tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🔄 Again", cbReplay),
				tgbotapi.NewInlineKeyboardButtonData("⬅️ Topics", cbTopics),
			),
		)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🏁 *%s* finished!\n\n", snap.TopicName)
	fmt.Fprintf(&sb, "⭐ Score: *%d*\n", snap.Score)
	fmt.Fprintf(&sb, "✅ %d · ❌ %d · %d%%\n", snap.Won, snap.Lost, snap.SuccessRate)
	fmt.Fprintf(&sb, "⏱ %s", snap.Duration.Round(time.Second))

	var missed []string
	for _, o := range snap.Outcomes {
		if !o.Won {
			missed = append(missed, fmt.Sprintf("%s = %s", o.Source, o.Word))
		}
	}
	if len(missed) > 0 {
		sb.WriteString("\n\nTo review:\n")
		sb.WriteString(strings.Join(missed, "\n"))
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Again", cbReplay),
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Topics", cbTopics),
		),
	}
	if snap.Mode == game.ModePlay {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏆 Leaderboard", cbTopPrefix+snap.TopicID),
		))
	}

	return sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func modeIcon(mode game.Mode) string {
	if mode == game.ModePracticeFailed {
		return "🔁"
	}
	return "🎯"
}
