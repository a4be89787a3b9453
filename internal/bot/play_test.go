package bot

import (
	"context"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	mock_bot "github.com/keoko/mots/internal/bot/mock"
	"github.com/keoko/mots/internal/catalog"
	"github.com/keoko/mots/internal/clock"
	"github.com/keoko/mots/internal/game"
	"github.com/keoko/mots/internal/models"
	"github.com/keoko/mots/internal/repository"
	"github.com/keoko/mots/internal/service"
	"github.com/keoko/mots/internal/storage/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testUserID int64 = 456

func newPlayTMock(t *testing.T) (*PlayT, *mock_bot.MockBot, *service.ProgressS) {
	t.Helper()

	cat, err := catalog.New([]models.Topic{
		{
			ID:    "animals",
			Name:  "Animals",
			Emoji: "🐾",
			Words: []models.WordPair{
				{Source: "gat", Target: "cat"},
				{Source: "gos", Target: "dog"},
			},
		},
	})
	require.NoError(t, err)

	clk := clock.NewFake(time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC))
	progress := service.NewProgressService(repository.NewMemoryKV(), clk, zap.NewNop())
	newGame := func(owner string) *game.Game {
		return game.NewGame(owner, cat, progress, nil, clk, zap.NewNop())
	}

	mockBot := &mock_bot.MockBot{}
	return NewPlayTAPI(mockBot, cache.NewCache(), newGame, zap.NewNop()), mockBot, progress
}

func callback(data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		From:    &tgbotapi.User{ID: testUserID},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}},
		Data:    data,
	}
}

func answer(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: testUserID},
		Text: text,
	}
}

func lastText(t *testing.T, mb *mock_bot.MockBot) string {
	t.Helper()

	texts := mb.Texts()
	require.NotEmpty(t, texts)
	return texts[len(texts)-1]
}

func TestPlayT_handleCallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		callbacks []string
		wantPhase game.Phase
		wantSent  int
		wantText  string
	}{
		{
			name:      "topic opens mode selection",
			callbacks: []string{"topic:animals"},
			wantPhase: game.PhaseModeSelect,
			wantSent:  1,
			wantText:  "🐾 *Animals* · 2 words\n\nHow do you want to practice?",
		},
		{
			name:      "study card is revealed",
			callbacks: []string{"topic:animals", cbStudy, cbReveal},
			wantPhase: game.PhaseStudying,
			wantSent:  3,
			wantText:  "📖 Animals 1/2\n\n*gat*\n\n➡️ *cat*",
		},
		{
			name:      "next card hides the answer",
			callbacks: []string{"topic:animals", cbStudy, cbReveal, cbNext},
			wantPhase: game.PhaseStudying,
			wantSent:  4,
			wantText:  "📖 Animals 2/2\n\n*gos*\n\n❓",
		},
		{
			name:      "finish study",
			callbacks: []string{"topic:animals", cbStudy, cbFinish},
			wantPhase: game.PhaseComplete,
			wantSent:  3,
			wantText:  "📖 Study finished: *Animals*",
		},
		{
			name:      "replay returns to mode selection",
			callbacks: []string{"topic:animals", cbStudy, cbFinish, cbReplay},
			wantPhase: game.PhaseModeSelect,
			wantSent:  4,
		},
		{
			name:      "stale button shows the current state",
			callbacks: []string{cbReveal},
			wantPhase: game.PhaseTopicSelect,
			wantSent:  1,
			wantText:  "📚 Choose a topic:",
		},
		{
			name:      "unknown topic stays on topics",
			callbacks: []string{"topic:space"},
			wantPhase: game.PhaseTopicSelect,
			wantSent:  1,
			wantText:  "📚 Choose a topic:",
		},
		{
			name:      "practice without mistakes",
			callbacks: []string{cbPractice},
			wantPhase: game.PhaseTopicSelect,
			wantSent:  1,
			wantText:  "🎉 No mistakes to practice.",
		},
		{
			name:      "unknown callback is ignored",
			callbacks: []string{"bogus"},
			wantPhase: game.PhaseTopicSelect,
			wantSent:  0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			playT, mb, _ := newPlayTMock(t)

			for _, data := range tt.callbacks {
				playT.handleCallback(callback(data))
			}

			assert.Equal(t, tt.wantPhase, playT.game(testUserID).State().Phase())
			require.Len(t, mb.SentMessages, tt.wantSent)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, lastText(t, mb))
			}
		})
	}
}

func TestPlayT_handleAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func(*PlayT)
		text     string
		wantText string
	}{
		{
			name:     "not playing",
			text:     "cat",
			wantText: "Pick a topic and press 🎯 Play to answer words. Use /start to begin.",
		},
		{
			name: "empty answer",
			setup: func(p *PlayT) {
				p.handleCallback(callback("topic:animals"))
				p.handleCallback(callback(cbPlay))
			},
			text:     "   ",
			wantText: "✏️ Type a translation first.",
		},
		{
			name: "correct answer",
			setup: func(p *PlayT) {
				p.handleCallback(callback("topic:animals"))
				p.handleCallback(callback(cbPlay))
			},
			text:     " CAT ",
			wantText: "✅ Correct! *gat* = *cat*\n🔥 Streak: 1",
		},
		{
			name: "wrong answer",
			setup: func(p *PlayT) {
				p.handleCallback(callback("topic:animals"))
				p.handleCallback(callback(cbPlay))
			},
			text:     "dog",
			wantText: "❌ Wrong. *gat* = *cat*\nYou wrote: dog",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			playT, mb, _ := newPlayTMock(t)
			if tt.setup != nil {
				tt.setup(playT)
			}

			playT.handleAnswer(answer(tt.text))

			assert.Equal(t, tt.wantText, lastText(t, mb))
		})
	}
}

func TestPlayT_FullRound(t *testing.T) {
	t.Parallel()

	playT, mb, progress := newPlayTMock(t)

	playT.handleCallback(callback("topic:animals"))
	playT.handleCallback(callback(cbPlay))
	playT.handleAnswer(answer("cat"))
	playT.handleCallback(callback(cbNext))
	playT.handleAnswer(answer("wolf"))
	playT.handleCallback(callback(cbNext))

	require.Equal(t, game.PhaseComplete, playT.game(testUserID).State().Phase())
	assert.Contains(t, lastText(t, mb), "🏁 *Animals* finished!")
	assert.Contains(t, lastText(t, mb), "To review:\ngos = dog")

	ctx := context.Background()
	ownerID := owner(testUserID)

	failed := progress.FailedWords(ctx, ownerID)
	require.Len(t, failed["animals"], 1)
	assert.Equal(t, "dog", failed["animals"][0].Target)

	sessions := progress.Sessions(ctx, ownerID)
	require.Len(t, sessions, 1)
	assert.Equal(t, 1, sessions[0].WordsWon)
	assert.Equal(t, 1, sessions[0].WordsLost)

	// The missed word can now be practiced.
	playT.handleCallback(callback(cbTopics))
	playT.handleCallback(callback(cbPractice))
	require.Equal(t, game.PhasePlaying, playT.game(testUserID).State().Phase())
	assert.Contains(t, lastText(t, mb), "Translate: *gos*")
}

func TestPlayT_sendTopics(t *testing.T) {
	t.Parallel()

	playT, mb, _ := newPlayTMock(t)
	playT.handleCallback(callback("topic:animals"))
	mock_bot.ClearSentMessages(mb)

	playT.sendTopics(123, testUserID)

	assert.Equal(t, game.PhaseTopicSelect, playT.game(testUserID).State().Phase())
	require.Len(t, mb.SentMessages, 1)
	msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	keyboard, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, keyboard.InlineKeyboard, 2)
	assert.Equal(t, "topic:animals", *keyboard.InlineKeyboard[0][0].CallbackData)
}
