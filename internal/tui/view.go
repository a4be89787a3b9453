package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/keoko/mots/internal/game"
	"github.com/keoko/mots/internal/models"
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	styleWord     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	styleCorrect  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleWrong    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleSubtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleNotice   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	styleBox      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	styleBarWon   = lipgloss.NewStyle().Background(lipgloss.Color("10")).SetString(" ")
	styleBarLost  = lipgloss.NewStyle().Background(lipgloss.Color("9")).SetString(" ")
	styleHelpLine = styleSubtle.MarginTop(1)
)

func (m Model) View() string {
	snap := m.game.Snapshot()

	var body string
	switch snap.Phase {
	case game.PhaseTopicSelect:
		body = m.viewTopics()
	case game.PhaseModeSelect:
		body = viewModeSelect(snap)
	case game.PhaseStudying:
		body = viewStudying(snap)
	case game.PhasePlaying:
		body = m.viewPlaying(snap)
	case game.PhaseResult:
		body = viewResult(snap)
	case game.PhaseComplete:
		body = m.viewComplete(snap)
	case game.PhaseStatistics:
		body = viewStatistics(m.statistics)
	}

	if m.notice != "" {
		body += "\n" + styleNotice.Render(m.notice)
	}
	return styleBox.Render(body) + "\n"
}

func (m Model) viewTopics() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("mots · Catalan → English") + "\n\n")

	topics := m.game.Topics()
	rows := make([]string, 0, len(topics)+menuRows)
	for _, t := range topics {
		rows = append(rows, fmt.Sprintf("%s %s (%d)", t.Emoji, t.Name, len(t.Words)))
	}
	rows = append(rows, "🔁 Practice mistakes", "📊 Statistics")

	for i, row := range rows {
		if i == m.cursor {
			b.WriteString(styleCursor.Render("> "+row) + "\n")
		} else {
			b.WriteString("  " + row + "\n")
		}
	}

	b.WriteString(styleHelpLine.Render("↑/↓ move · enter select · p practice · s statistics · q quit"))
	return b.String()
}

func viewModeSelect(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("%s %s", snap.TopicEmoji, snap.TopicName)) + "\n\n")
	fmt.Fprintf(&b, "%d words\n\n", snap.WordCount)
	b.WriteString("1 · 📖 Study\n")
	b.WriteString("2 · 🎯 Play\n")
	b.WriteString(styleHelpLine.Render("esc back"))
	return b.String()
}

func viewStudying(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("📖 %s %d/%d", snap.TopicName, snap.WordIndex+1, snap.WordCount)) + "\n\n")
	b.WriteString(styleWord.Render(snap.Source) + "\n\n")
	if snap.Revealed {
		b.WriteString("→ " + styleCorrect.Render(snap.Target) + "\n")
	} else {
		b.WriteString(styleSubtle.Render("?") + "\n")
	}
	b.WriteString(styleHelpLine.Render("enter reveal/next · r toggle · ←/→ move · f finish · esc topics"))
	return b.String()
}

func (m Model) viewPlaying(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("%s %d/%d", snap.TopicName, snap.WordIndex+1, snap.WordCount)) + "\n")
	b.WriteString(styleSubtle.Render(fmt.Sprintf("streak %d · score %d", snap.Streak, snap.Score)) + "\n\n")
	b.WriteString("Translate: " + styleWord.Render(snap.Source) + "\n\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(styleHelpLine.Render("enter submit · esc topics"))
	return b.String()
}

func viewResult(snap game.Snapshot) string {
	var b strings.Builder
	if snap.Correct {
		b.WriteString(styleCorrect.Render("✓ Correct!") + "\n\n")
	} else {
		b.WriteString(styleWrong.Render("✗ Wrong") + "\n\n")
		b.WriteString("You wrote: " + snap.Answer + "\n")
	}
	fmt.Fprintf(&b, "%s = %s\n", snap.Source, styleWord.Render(snap.Target))
	b.WriteString(styleSubtle.Render(fmt.Sprintf("streak %d", snap.Streak)) + "\n")
	b.WriteString(styleHelpLine.Render("enter continue · esc topics"))
	return b.String()
}

func (m Model) viewComplete(snap game.Snapshot) string {
	var b strings.Builder

	if snap.Mode == game.ModeStudy {
		b.WriteString(styleTitle.Render("Study finished: "+snap.TopicName) + "\n")
		b.WriteString(styleHelpLine.Render("enter again · t topics · q quit"))
		return b.String()
	}

	b.WriteString(styleTitle.Render(snap.TopicName+" finished!") + "\n\n")
	fmt.Fprintf(&b, "Score: %s\n", styleWord.Render(fmt.Sprint(snap.Score)))
	fmt.Fprintf(&b, "Won %d · Lost %d · %d%%\n", snap.Won, snap.Lost, snap.SuccessRate)
	b.WriteString(resultBar(snap.Won, snap.Lost) + "\n")
	fmt.Fprintf(&b, "Time: %s\n", snap.Duration.Round(time.Second))

	var missed []string
	for _, o := range snap.Outcomes {
		if !o.Won {
			missed = append(missed, fmt.Sprintf("  %s = %s", o.Source, o.Word))
		}
	}
	if len(missed) > 0 {
		b.WriteString("\nTo review:\n" + strings.Join(missed, "\n") + "\n")
	}

	if snap.Mode == game.ModePlay {
		b.WriteString("\n" + m.viewScores() + "\n")
	}

	b.WriteString(styleHelpLine.Render("enter again · t topics · q quit"))
	return b.String()
}

func resultBar(won, lost int) string {
	return strings.Repeat(styleBarWon.String(), won) + strings.Repeat(styleBarLost.String(), lost)
}

func (m Model) viewScores() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Leaderboard") + "\n")

	switch lb := m.leaderboard; {
	case lb == nil:
		b.WriteString(styleSubtle.Render("loading...") + "\n")
	case lb.err != nil:
		b.WriteString(styleSubtle.Render("leaderboard unavailable") + "\n")
	case len(lb.entries) == 0:
		b.WriteString("no scores yet\n")
	default:
		for i, e := range lb.entries {
			fmt.Fprintf(&b, "%2d. %-8s %5d\n", i+1, e.PlayerName, e.Score)
		}
	}

	if len(m.topScores) > 0 {
		b.WriteString("\n" + styleTitle.Render("Your best") + "\n")
		for i, r := range m.topScores {
			fmt.Fprintf(&b, "%2d. %5d  %s %s\n", i+1, r.Score, r.Date.Format("2006-01-02"), syncLabel(r.SyncStatus))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func syncLabel(status models.SyncStatus) string {
	switch status {
	case models.SyncSynced:
		return styleCorrect.Render("synced")
	case models.SyncRejected, models.SyncFailed:
		return styleWrong.Render(string(status))
	case models.SyncPending:
		return styleSubtle.Render("pending")
	default:
		return ""
	}
}

func viewStatistics(stats models.Statistics) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("📊 Statistics") + "\n\n")

	if stats.Sessions == 0 {
		b.WriteString("No sessions yet.\n")
		b.WriteString(styleHelpLine.Render("esc back"))
		return b.String()
	}

	fmt.Fprintf(&b, "Sessions:    %d\n", stats.Sessions)
	fmt.Fprintf(&b, "Won / Lost:  %d / %d (%d%%)\n", stats.TotalWon, stats.TotalLost, stats.SuccessRate)
	fmt.Fprintf(&b, "Total score: %d\n", stats.TotalScore)
	fmt.Fprintf(&b, "Time played: %s\n", (time.Duration(stats.TotalTime) * time.Millisecond).Round(time.Second))
	fmt.Fprintf(&b, "To review:   %d words\n", stats.FailedWords)
	if stats.Best != nil {
		fmt.Fprintf(&b, "Best:        %d (%s)\n", stats.Best.Score, stats.Best.TopicName)
	}

	if len(stats.Topics) > 0 {
		b.WriteString("\n")
		for _, t := range stats.Topics {
			fmt.Fprintf(&b, "  %-10s %3d sessions  best %5d  %3d%%\n", t.TopicID, t.Sessions, t.BestScore, t.SuccessRate)
		}
	}

	b.WriteString(styleHelpLine.Render("esc back"))
	return b.String()
}
