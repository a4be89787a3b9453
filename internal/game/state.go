package game

import (
	"time"

	"github.com/keoko/mots/internal/models"
)

type Phase int

const (
	PhaseTopicSelect Phase = iota
	PhaseModeSelect
	PhaseStudying
	PhasePlaying
	PhaseResult
	PhaseComplete
	PhaseStatistics
)

func (p Phase) String() string {
	switch p {
	case PhaseTopicSelect:
		return "TOPIC_SELECT"
	case PhaseModeSelect:
		return "MODE_SELECT"
	case PhaseStudying:
		return "STUDYING"
	case PhasePlaying:
		return "PLAYING"
	case PhaseResult:
		return "RESULT"
	case PhaseComplete:
		return "COMPLETE"
	case PhaseStatistics:
		return "STATISTICS"
	default:
		return "UNKNOWN"
	}
}

type Mode int

const (
	ModeNone Mode = iota
	ModeStudy
	ModePlay
	ModePracticeFailed
)

func (m Mode) String() string {
	switch m {
	case ModeStudy:
		return "STUDY"
	case ModePlay:
		return "PLAY"
	case ModePracticeFailed:
		return "PRACTICE_FAILED"
	default:
		return ""
	}
}

// State is one of TopicSelect, ModeSelect, Studying, Playing, Result,
// Complete or Statistics.
type State interface {
	Phase() Phase
}

// Round is the scored part of a PLAY or PRACTICE_FAILED session.
type Round struct {
	Mode        Mode
	Topic       models.Topic
	Index       int
	Streak      int
	Score       int
	Won         int
	Lost        int
	Outcomes    []models.WordOutcome
	Start       time.Time
	End         time.Time
	WordStarted time.Time
}

func (r *Round) current() models.WordPair {
	return r.Topic.Words[r.Index]
}

func (r *Round) last() bool {
	return r.Index+1 >= len(r.Topic.Words)
}

type TopicSelect struct{}

type ModeSelect struct {
	Topic models.Topic
}

type Studying struct {
	Topic    models.Topic
	Index    int
	Revealed bool
}

type Playing struct {
	Round *Round
	Input string
}

type Result struct {
	Round   *Round
	Answer  string
	Correct bool
}

type Complete struct {
	Mode  Mode
	Topic models.Topic
	// Round and Record are nil after a study session.
	Round  *Round
	Record *models.SessionRecord
}

type Statistics struct{}

func (TopicSelect) Phase() Phase { return PhaseTopicSelect }
func (ModeSelect) Phase() Phase { return PhaseModeSelect }
func (Studying) Phase() Phase { return PhaseStudying }
func (Playing) Phase() Phase { return PhasePlaying }
func (Result) Phase() Phase { return PhaseResult }
func (Complete) Phase() Phase { return PhaseComplete }
func (Statistics) Phase() Phase { return PhaseStatistics }
