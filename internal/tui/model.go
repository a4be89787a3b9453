package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/keoko/mots/internal/game"
	"github.com/keoko/mots/internal/models"
	"go.uber.org/zap"
)

const opTimeout = 5 * time.Second

type StatsI interface {
	Statistics(ctx context.Context, owner string) models.Statistics
	TopScores(ctx context.Context, owner, topicID string) []models.SessionRecord
	FetchLeaderboard(ctx context.Context, owner, topicID string) ([]models.ScoreEntry, error)
}

type leaderboardMsg struct {
	topicID string
	entries []models.ScoreEntry
	err     error
}

// menu rows after the topics on the selection screen
const (
	menuPractice = iota
	menuStatistics
	menuRows
)

type Model struct {
	game  *game.Game
	stats StatsI
	log   *zap.Logger

	input  textinput.Model
	cursor int
	notice string

	statistics  models.Statistics
	topScores   []models.SessionRecord
	leaderboard *leaderboardMsg
}

func New(g *game.Game, stats StatsI, log *zap.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Type the English word and press Enter..."
	ti.CharLimit = 50
	ti.Width = 50
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		game:  g,
		stats: stats,
		log:   log,
		input: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case leaderboardMsg:
		if msg.err != nil {
			m.log.Warn("failed to fetch leaderboard", zap.String("topic_id", msg.topicID), zap.Error(msg.err))
		}
		m.leaderboard = &msg
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.notice = ""

		switch m.game.State().(type) {
		case game.TopicSelect:
			return m.updateTopicSelect(msg)
		case game.ModeSelect:
			return m.updateModeSelect(msg)
		case game.Studying:
			return m.updateStudying(msg)
		case game.Playing:
			return m.updatePlaying(msg)
		case game.Result:
			return m.updateResult(msg)
		case game.Complete:
			return m.updateComplete(msg)
		case game.Statistics:
			return m.updateStatistics(msg)
		}
	}

	return m, nil
}

func (m Model) updateTopicSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	topics := m.game.Topics()
	rows := len(topics) + menuRows

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < rows-1 {
			m.cursor++
		}
	case "p":
		m.startPractice()
	case "s":
		m.openStatistics()
	case "enter", " ":
		switch i := m.cursor - len(topics); {
		case i < 0:
			if err := m.game.SelectTopic(topics[m.cursor].ID); err != nil {
				m.notice = err.Error()
			}
		case i == menuPractice:
			m.startPractice()
		case i == menuStatistics:
			m.openStatistics()
		}
	}

	return m, nil
}

func (m *Model) startPractice() {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := m.game.StartPracticeFailed(ctx)
	switch {
	case errors.Is(err, game.ErrNoFailedWords):
		m.notice = "No mistakes to practice."
	case err != nil:
		m.notice = err.Error()
	default:
		m.resetInput()
	}
}

func (m *Model) openStatistics() {
	if err := m.game.GoToStatistics(); err != nil {
		m.notice = err.Error()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	m.statistics = m.stats.Statistics(ctx, m.game.Owner())
}

func (m Model) updateModeSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error

	switch msg.String() {
	case "1", "s":
		err = m.game.SelectMode(game.ModeStudy)
	case "2", "p":
		err = m.game.SelectMode(game.ModePlay)
		m.resetInput()
	case "esc", "q":
		m.game.BackToTopics()
	}

	if err != nil {
		m.notice = err.Error()
	}
	return m, nil
}

func (m Model) updateStudying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error

	switch msg.String() {
	case "enter", " ":
		err = m.game.StudyNext()
	case "r":
		err = m.game.ToggleReveal()
	case "right", "n":
		err = m.game.NextCard()
	case "left", "b":
		err = m.game.PreviousWord()
	case "f":
		err = m.game.FinishStudy()
	case "esc":
		m.game.BackToTopics()
	}

	if err != nil && !errors.Is(err, game.ErrInvalidTransition) {
		m.notice = err.Error()
	}
	return m, nil
}

func (m Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.game.BackToTopics()
		return m, nil

	case tea.KeyEnter:
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		if err := m.game.SubmitAnswer(ctx); err != nil {
			if errors.Is(err, game.ErrEmptyAnswer) {
				m.notice = "Type a translation first."
			} else {
				m.notice = err.Error()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if err := m.game.SetInput(m.input.Value()); err != nil {
		m.log.Warn("failed to set input", zap.Error(err))
	}
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		if err := m.game.NextWord(ctx); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.resetInput()

		if s, ok := m.game.State().(game.Complete); ok {
			return m, m.onComplete(s)
		}
	case "esc":
		m.game.BackToTopics()
	}

	return m, nil
}

// onComplete loads the local best scores and asks the server for the
// topic's leaderboard after a played round.
func (m *Model) onComplete(s game.Complete) tea.Cmd {
	m.leaderboard = nil
	m.topScores = nil
	if s.Mode != game.ModePlay {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	m.topScores = m.stats.TopScores(ctx, m.game.Owner(), s.Topic.ID)
	return fetchLeaderboard(m.stats, m.game.Owner(), s.Topic.ID)
}

func fetchLeaderboard(stats StatsI, owner, topicID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		entries, err := stats.FetchLeaderboard(ctx, owner, topicID)
		return leaderboardMsg{topicID: topicID, entries: entries, err: err}
	}
}

func (m Model) updateComplete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "r":
		if err := m.game.BackToModeSelection(); err != nil {
			m.notice = err.Error()
		}
	case "esc", "t":
		m.game.BackToTopics()
	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updateStatistics(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "enter":
		if err := m.game.Back(); err != nil {
			m.notice = err.Error()
		}
	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) resetInput() {
	m.input.SetValue("")
	if err := m.game.SetInput(""); err != nil {
		m.log.Debug("input reset outside playing", zap.Error(err))
	}
}
