package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
	"github.com/keoko/mots/internal/catalog"
	"github.com/keoko/mots/internal/clock"
	"github.com/keoko/mots/internal/game"
	"github.com/keoko/mots/internal/models"
	"github.com/keoko/mots/internal/repository"
	"github.com/keoko/mots/internal/service"
	mock_tui "github.com/keoko/mots/internal/tui/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newModelMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_tui.MockStatsI)) (Model, *service.ProgressS) {
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
		{
			ID:    "food",
			Name:  "Food",
			Emoji: "🍎",
			Words: []models.WordPair{{Source: "pa", Target: "bread"}},
		},
	})
	require.NoError(t, err)

	mockStats := mock_tui.NewMockStatsI(ctrl)
	if setupMock != nil {
		setupMock(mockStats)
	}

	clk := clock.NewFake(time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC))
	progress := service.NewProgressService(repository.NewMemoryKV(), clk, zap.NewNop())
	g := game.NewGame("local", cat, progress, nil, clk, zap.NewNop())

	return New(g, mockStats, zap.NewNop()), progress
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestModel_Navigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		keys       []string
		wantPhase  game.Phase
		wantNotice string
	}{
		{
			name:      "enter opens the first topic",
			keys:      []string{"enter"},
			wantPhase: game.PhaseModeSelect,
		},
		{
			name:      "cursor moves to the second topic",
			keys:      []string{"down", "enter", "esc", "up", "down"},
			wantPhase: game.PhaseTopicSelect,
		},
		{
			name:      "study mode",
			keys:      []string{"enter", "1"},
			wantPhase: game.PhaseStudying,
		},
		{
			name:      "finish study",
			keys:      []string{"enter", "1", "enter", "n", "f"},
			wantPhase: game.PhaseComplete,
		},
		{
			name:      "replay after study",
			keys:      []string{"enter", "1", "f", "enter"},
			wantPhase: game.PhaseModeSelect,
		},
		{
			name:      "play mode",
			keys:      []string{"enter", "2"},
			wantPhase: game.PhasePlaying,
		},
		{
			name:       "practice without mistakes",
			keys:       []string{"p"},
			wantPhase:  game.PhaseTopicSelect,
			wantNotice: "No mistakes to practice.",
		},
		{
			name:       "empty answer",
			keys:       []string{"enter", "2", "enter"},
			wantPhase:  game.PhasePlaying,
			wantNotice: "Type a translation first.",
		},
		{
			name:      "esc abandons a round",
			keys:      []string{"enter", "2", "c", "esc"},
			wantPhase: game.PhaseTopicSelect,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m, _ := newModelMock(t, ctrl, nil)
			m, _ = press(t, m, tt.keys...)

			assert.Equal(t, tt.wantPhase, m.game.State().Phase())
			assert.Equal(t, tt.wantNotice, m.notice)
		})
	}
}

func TestModel_SecondTopic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newModelMock(t, ctrl, nil)
	m, _ = press(t, m, "down", "enter")

	assert.Equal(t, "food", m.game.Snapshot().TopicID)
}

func TestModel_PlayRound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, progress := newModelMock(t, ctrl, func(ms *mock_tui.MockStatsI) {
		ms.EXPECT().TopScores(gomock.Any(), "local", "animals").Return([]models.SessionRecord{{Score: 100}})
		ms.EXPECT().FetchLeaderboard(gomock.Any(), "local", "animals").Return([]models.ScoreEntry{{PlayerName: "anna", Score: 320}}, nil)
	})

	m, _ = press(t, m, "enter", "2", "cat")
	assert.Equal(t, "cat", m.game.Snapshot().Input)
	assert.Contains(t, m.View(), "gat")

	m, _ = press(t, m, "enter")
	snap := m.game.Snapshot()
	require.Equal(t, game.PhaseResult, snap.Phase)
	assert.True(t, snap.Correct)

	m, _ = press(t, m, "enter")
	assert.Equal(t, "", m.input.Value())

	m, cmd := press(t, m, "wolf", "enter", "enter")
	require.Equal(t, game.PhaseComplete, m.game.State().Phase())
	require.NotNil(t, cmd)
	assert.Len(t, m.topScores, 1)
	assert.Nil(t, m.leaderboard)

	next, _ := m.Update(cmd())
	m = next.(Model)
	require.NotNil(t, m.leaderboard)
	assert.NoError(t, m.leaderboard.err)
	assert.Contains(t, m.View(), "anna")

	failed := progress.FailedWords(context.Background(), "local")
	require.Len(t, failed["animals"], 1)
	assert.Equal(t, "dog", failed["animals"][0].Target)
}

func TestModel_Statistics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newModelMock(t, ctrl, func(ms *mock_tui.MockStatsI) {
		ms.EXPECT().Statistics(gomock.Any(), "local").Return(models.Statistics{Sessions: 3, TotalScore: 640})
	})

	m, _ = press(t, m, "s")
	require.Equal(t, game.PhaseStatistics, m.game.State().Phase())
	assert.Equal(t, 3, m.statistics.Sessions)
	assert.Contains(t, m.View(), "Total score: 640")

	m, _ = press(t, m, "esc")
	assert.Equal(t, game.PhaseTopicSelect, m.game.State().Phase())
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newModelMock(t, ctrl, nil)
	_, cmd := press(t, m, "enter", "2", "ctrl+c")

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
