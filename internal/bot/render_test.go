package bot

import (
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/keoko/mots/internal/game"
	"github.com/keoko/mots/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callbacks(keyboard tgbotapi.InlineKeyboardMarkup) []string {
	var data []string
	for _, row := range keyboard.InlineKeyboard {
		for _, button := range row {
			if button.CallbackData != nil {
				data = append(data, *button.CallbackData)
			}
		}
	}
	return data
}

func TestRender(t *testing.T) {
	t.Parallel()

	topics := []models.Topic{{ID: "animals", Name: "Animals", Emoji: "🐾"}}

	tests := []struct {
		name          string
		snap          game.Snapshot
		wantText      string
		wantCallbacks []string
	}{
		{
			name:          "topic selection",
			snap:          game.Snapshot{Phase: game.PhaseTopicSelect},
			wantText:      "📚 Choose a topic:",
			wantCallbacks: []string{"topic:animals", cbPractice, cbStats},
		},
		{
			name: "hidden study card",
			snap: game.Snapshot{
				Phase:     game.PhaseStudying,
				TopicName: "Animals",
				WordIndex: 0,
				WordCount: 8,
				Source:    "gat",
			},
			wantText:      "📖 Animals 1/8\n\n*gat*\n\n❓",
			wantCallbacks: []string{cbPrev, cbReveal, cbNext, cbFinish},
		},
		{
			name: "playing",
			snap: game.Snapshot{
				Phase:     game.PhasePlaying,
				Mode:      game.ModePracticeFailed,
				TopicName: "Practice",
				WordIndex: 2,
				WordCount: 3,
				Streak:    2,
				Score:     310,
				Source:    "vaca",
			},
			wantText:      "🔁 Practice 3/3 · 🔥 2 · ⭐ 310\n\nTranslate: *vaca*\n\nType your answer.",
			wantCallbacks: []string{cbTopics},
		},
		{
			name: "completed play round",
			snap: game.Snapshot{
				Phase:       game.PhaseComplete,
				Mode:        game.ModePlay,
				TopicID:     "animals",
				TopicName:   "Animals",
				Score:       150,
				Won:         1,
				Lost:        1,
				SuccessRate: 50,
				Duration:    9400 * time.Millisecond,
				Outcomes: []models.WordOutcome{
					{Word: "cat", Source: "gat", Won: true},
					{Word: "dog", Source: "gos"},
				},
			},
			wantText:      "🏁 *Animals* finished!\n\n⭐ Score: *150*\n✅ 1 · ❌ 1 · 50%\n⏱ 9s\n\nTo review:\ngos = dog",
			wantCallbacks: []string{cbReplay, cbTopics, "top:animals"},
		},
		{
			name: "completed practice has no leaderboard",
			snap: game.Snapshot{
				Phase:     game.PhaseComplete,
				Mode:      game.ModePracticeFailed,
				TopicID:   models.PracticeTopicID,
				TopicName: "Practice",
				Won:       1,
			},
			wantText:      "🏁 *Practice* finished!\n\n⭐ Score: *0*\n✅ 1 · ❌ 0 · 0%\n⏱ 0s",
			wantCallbacks: []string{cbReplay, cbTopics},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			text, keyboard := render(tt.snap, topics)

			assert.Equal(t, tt.wantText, text)
			require.Equal(t, tt.wantCallbacks, callbacks(keyboard))
		})
	}
}
