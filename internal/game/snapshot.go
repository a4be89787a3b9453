package game

import (
	"time"

	"github.com/keoko/mots/internal/models"
)

// Snapshot is a render-ready copy of the game state. Target is only filled
// when the answer is meant to be visible.
type Snapshot struct {
	Phase      Phase
	Mode       Mode
	TopicID    string
	TopicName  string
	TopicEmoji string

	WordIndex int
	WordCount int
	Source    string
	Target    string
	Revealed  bool

	Input   string
	Answer  string
	Correct bool

	Streak      int
	Score       int
	Won         int
	Lost        int
	SuccessRate int
	Outcomes    []models.WordOutcome
	Duration    time.Duration
	Record      *models.SessionRecord
}

func (g *Game) Snapshot() Snapshot {
	switch s := g.state.(type) {
	case ModeSelect:
		snap := topicSnapshot(PhaseModeSelect, s.Topic)
		snap.WordCount = len(s.Topic.Words)
		return snap

	case Studying:
		snap := topicSnapshot(PhaseStudying, s.Topic)
		snap.Mode = ModeStudy
		snap.WordIndex = s.Index
		snap.WordCount = len(s.Topic.Words)
		snap.Source = s.Topic.Words[s.Index].Source
		snap.Revealed = s.Revealed
		if s.Revealed {
			snap.Target = s.Topic.Words[s.Index].Target
		}
		return snap

	case Playing:
		snap := roundSnapshot(PhasePlaying, s.Round)
		snap.Source = s.Round.current().Source
		snap.Input = s.Input
		return snap

	case Result:
		snap := roundSnapshot(PhaseResult, s.Round)
		snap.Source = s.Round.current().Source
		snap.Target = s.Round.current().Target
		snap.Answer = s.Answer
		snap.Correct = s.Correct
		return snap

	case Complete:
		if s.Round == nil {
			snap := topicSnapshot(PhaseComplete, s.Topic)
			snap.Mode = s.Mode
			snap.WordCount = len(s.Topic.Words)
			return snap
		}
		snap := roundSnapshot(PhaseComplete, s.Round)
		snap.Duration = s.Round.End.Sub(s.Round.Start)
		if s.Record != nil {
			record := *s.Record
			snap.Record = &record
		}
		return snap

	default:
		return Snapshot{Phase: g.state.Phase()}
	}
}

func topicSnapshot(phase Phase, topic models.Topic) Snapshot {
	return Snapshot{
		Phase:      phase,
		TopicID:    topic.ID,
		TopicName:  topic.Name,
		TopicEmoji: topic.Emoji,
	}
}

func roundSnapshot(phase Phase, r *Round) Snapshot {
	snap := topicSnapshot(phase, r.Topic)
	snap.Mode = r.Mode
	snap.WordIndex = r.Index
	snap.WordCount = len(r.Topic.Words)
	snap.Streak = r.Streak
	snap.Score = r.Score
	snap.Won = r.Won
	snap.Lost = r.Lost
	snap.SuccessRate = models.SuccessRate(r.Won, r.Lost)
	snap.Outcomes = append([]models.WordOutcome(nil), r.Outcomes...)
	return snap
}
