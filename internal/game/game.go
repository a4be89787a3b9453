package game

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/keoko/mots/internal/clock"
	"github.com/keoko/mots/internal/models"
	"go.uber.org/zap"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrUnknownTopic      = errors.New("unknown topic")
	ErrEmptyTopic        = errors.New("topic has no words")
	ErrEmptyAnswer       = errors.New("empty answer")
	ErrNoFailedWords     = errors.New("no failed words to practice")
)

type CatalogI interface {
	Topics() []models.Topic
	Topic(id string) (models.Topic, bool)
}

type ProgressI interface {
	SaveTopicProgress(ctx context.Context, owner, topicID string, stats models.SessionStats) error
	SaveFailedWords(ctx context.Context, owner, topicID string, words []models.WordPair) error
	RemoveFailedWord(ctx context.Context, owner, topicID, target string) (bool, error)
	FailedWords(ctx context.Context, owner string) map[string][]models.FailedWordEntry
	AddSession(ctx context.Context, owner string, record models.SessionRecord) error
}

type ScoreSubmitterI interface {
	Submit(ctx context.Context, owner string, record models.SessionRecord)
}

// Game owns the state of one player's session. It is not safe for
// concurrent use; each presentation drives its games from one goroutine.
type Game struct {
	owner   string
	catalog CatalogI
	store   ProgressI
	scores  ScoreSubmitterI
	clock   clock.Clock
	rng     *rand.Rand
	log     *zap.Logger

	state State
}

// NewGame starts at topic selection. scores may be nil to keep results local.
func NewGame(owner string, catalog CatalogI, store ProgressI, scores ScoreSubmitterI, clk clock.Clock, log *zap.Logger) *Game {
	return &Game{
		owner:   owner,
		catalog: catalog,
		store:   store,
		scores:  scores,
		clock:   clk,
		rng:     rand.New(rand.NewSource(clk.Now().UnixNano())),
		log:     log.With(zap.String("owner", owner)),
		state:   TopicSelect{},
	}
}

func (g *Game) Owner() string {
	return g.owner
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Topics() []models.Topic {
	return g.catalog.Topics()
}

func (g *Game) invalid(op string) error {
	return fmt.Errorf("%w: %s in %s", ErrInvalidTransition, op, g.state.Phase())
}

func (g *Game) SelectTopic(id string) error {
	if _, ok := g.state.(TopicSelect); !ok {
		return g.invalid("select topic")
	}

	topic, ok := g.catalog.Topic(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTopic, id)
	}

	g.state = ModeSelect{Topic: topic}
	return nil
}

func (g *Game) SelectMode(mode Mode) error {
	s, ok := g.state.(ModeSelect)
	if !ok {
		return g.invalid("select mode")
	}
	if len(s.Topic.Words) == 0 {
		return ErrEmptyTopic
	}

	switch mode {
	case ModeStudy:
		g.state = Studying{Topic: s.Topic}
	case ModePlay:
		g.state = Playing{Round: g.newRound(ModePlay, s.Topic)}
	default:
		return fmt.Errorf("%w: mode %s", ErrInvalidTransition, mode)
	}

	return nil
}

func (g *Game) newRound(mode Mode, topic models.Topic) *Round {
	now := g.clock.Now()
	return &Round{
		Mode:        mode,
		Topic:       topic,
		Start:       now,
		WordStarted: now,
	}
}

func (g *Game) ToggleReveal() error {
	s, ok := g.state.(Studying)
	if !ok {
		return g.invalid("toggle reveal")
	}

	s.Revealed = !s.Revealed
	g.state = s
	return nil
}

// StudyNext reveals the current card, or moves on if it is already revealed.
// The cursor stays on the last card.
func (g *Game) StudyNext() error {
	s, ok := g.state.(Studying)
	if !ok {
		return g.invalid("study next")
	}

	if !s.Revealed {
		s.Revealed = true
	} else if s.Index+1 < len(s.Topic.Words) {
		s.Index++
		s.Revealed = false
	}

	g.state = s
	return nil
}

// NextCard moves on without revealing.
func (g *Game) NextCard() error {
	s, ok := g.state.(Studying)
	if !ok {
		return g.invalid("next card")
	}

	if s.Index+1 < len(s.Topic.Words) {
		s.Index++
		s.Revealed = false
	}

	g.state = s
	return nil
}

func (g *Game) PreviousWord() error {
	s, ok := g.state.(Studying)
	if !ok || s.Index == 0 {
		return g.invalid("previous word")
	}

	s.Index--
	s.Revealed = false
	g.state = s
	return nil
}

// FinishStudy ends a study session. Studying is not scored or persisted.
func (g *Game) FinishStudy() error {
	s, ok := g.state.(Studying)
	if !ok {
		return g.invalid("finish study")
	}

	g.state = Complete{Mode: ModeStudy, Topic: s.Topic}
	return nil
}

func (g *Game) SetInput(input string) error {
	s, ok := g.state.(Playing)
	if !ok {
		return g.invalid("set input")
	}

	s.Input = input
	g.state = s
	return nil
}

func (g *Game) TypeRune(r rune) error {
	s, ok := g.state.(Playing)
	if !ok {
		return g.invalid("type")
	}

	s.Input += string(r)
	g.state = s
	return nil
}

func (g *Game) Backspace() error {
	s, ok := g.state.(Playing)
	if !ok {
		return g.invalid("backspace")
	}

	if s.Input != "" {
		_, size := utf8.DecodeLastRuneInString(s.Input)
		s.Input = s.Input[:len(s.Input)-size]
	}
	g.state = s
	return nil
}

func (g *Game) SubmitAnswer(ctx context.Context) error {
	s, ok := g.state.(Playing)
	if !ok {
		return g.invalid("submit answer")
	}

	answer := strings.TrimSpace(s.Input)
	if answer == "" {
		return ErrEmptyAnswer
	}

	r := s.Round
	word := r.current()
	correct := strings.EqualFold(answer, strings.TrimSpace(word.Target))

	if correct {
		r.Streak++
	} else {
		r.Streak = 0
	}

	g.state = Result{Round: r, Answer: answer, Correct: correct}

	if correct && r.Mode == ModePracticeFailed {
		if _, err := g.store.RemoveFailedWord(ctx, g.owner, word.TopicID, word.Target); err != nil {
			g.log.Warn("failed to remove practiced word", zap.String("topic_id", word.TopicID), zap.String("word", word.Target), zap.Error(err))
		}
	}

	return nil
}

// NextWord scores the answered word and moves to the next one, completing the
// session after the last word.
func (g *Game) NextWord(ctx context.Context) error {
	s, ok := g.state.(Result)
	if !ok {
		return g.invalid("next word")
	}

	now := g.clock.Now()
	r := s.Round
	word := r.current()
	elapsed := now.Sub(r.WordStarted)
	if elapsed < 0 {
		elapsed = 0
	}

	score := WordScore(s.Correct, elapsed, r.Streak)
	r.Outcomes = append(r.Outcomes, models.WordOutcome{
		Word:    word.Target,
		Source:  word.Source,
		TopicID: word.TopicID,
		Won:     s.Correct,
		TimeMs:  elapsed.Milliseconds(),
		Score:   score,
	})
	r.Score += score
	if s.Correct {
		r.Won++
	} else {
		r.Lost++
	}

	if r.last() {
		g.complete(ctx, r)
		return nil
	}

	r.Index++
	r.WordStarted = now
	g.state = Playing{Round: r}
	return nil
}

// Advance is the generic "continue" intent.
func (g *Game) Advance(ctx context.Context) error {
	switch g.state.(type) {
	case Studying:
		return g.StudyNext()
	case Playing:
		return g.SubmitAnswer(ctx)
	case Result:
		return g.NextWord(ctx)
	default:
		return g.invalid("advance")
	}
}

func (g *Game) complete(ctx context.Context, r *Round) {
	r.End = g.clock.Now()

	record := models.SessionRecord{
		ID:          uuid.NewString(),
		Date:        r.End,
		TopicID:     r.Topic.ID,
		TopicName:   r.Topic.Name,
		Mode:        r.Mode.String(),
		Score:       r.Score,
		Time:        int(math.Round(r.End.Sub(r.Start).Seconds())),
		WordsWon:    r.Won,
		WordsLost:   r.Lost,
		SuccessRate: models.SuccessRate(r.Won, r.Lost),
	}

	g.state = Complete{Mode: r.Mode, Topic: r.Topic, Round: r, Record: &record}

	if r.Mode == ModePlay {
		stats := models.SessionStats{
			TotalWon:   r.Won,
			TotalLost:  r.Lost,
			TotalScore: r.Score,
			Words:      r.Outcomes,
		}
		for _, o := range r.Outcomes {
			stats.TotalTime += o.TimeMs
		}

		if err := g.store.SaveTopicProgress(ctx, g.owner, r.Topic.ID, stats); err != nil {
			g.log.Warn("failed to save topic progress", zap.String("topic_id", r.Topic.ID), zap.Error(err))
		}
	}

	missed := map[string][]models.WordPair{}
	for _, o := range r.Outcomes {
		if o.Won {
			continue
		}
		topicID := r.Topic.ID
		if r.Mode == ModePracticeFailed {
			topicID = o.TopicID
		}
		missed[topicID] = append(missed[topicID], models.WordPair{Source: o.Source, Target: o.Word})
	}
	for _, topicID := range sortedKeys(missed) {
		if err := g.store.SaveFailedWords(ctx, g.owner, topicID, missed[topicID]); err != nil {
			g.log.Warn("failed to save failed words", zap.String("topic_id", topicID), zap.Error(err))
		}
	}

	if err := g.store.AddSession(ctx, g.owner, record); err != nil {
		g.log.Warn("failed to save session", zap.String("session_id", record.ID), zap.Error(err))
	}

	if r.Mode == ModePlay && g.scores != nil {
		g.scores.Submit(ctx, g.owner, record)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BackToTopics abandons whatever is in progress.
func (g *Game) BackToTopics() {
	g.state = TopicSelect{}
}

// BackToModeSelection replays the finished topic. A practice session has no
// topic to replay and goes back to topic selection.
func (g *Game) BackToModeSelection() error {
	s, ok := g.state.(Complete)
	if !ok {
		return g.invalid("back to mode selection")
	}

	if s.Mode == ModePracticeFailed {
		g.state = TopicSelect{}
		return nil
	}

	g.state = ModeSelect{Topic: s.Topic}
	return nil
}

func (g *Game) GoToStatistics() error {
	if _, ok := g.state.(TopicSelect); !ok {
		return g.invalid("go to statistics")
	}

	g.state = Statistics{}
	return nil
}

func (g *Game) Back() error {
	if _, ok := g.state.(Statistics); !ok {
		return g.invalid("back")
	}

	g.state = TopicSelect{}
	return nil
}

// StartPracticeFailed plays every failed word of every topic, shuffled once.
func (g *Game) StartPracticeFailed(ctx context.Context) error {
	switch g.state.(type) {
	case TopicSelect, ModeSelect:
	default:
		return g.invalid("practice failed words")
	}

	failed := g.store.FailedWords(ctx, g.owner)

	var words []models.WordPair
	for _, topicID := range sortedKeys(failed) {
		for _, e := range failed[topicID] {
			words = append(words, models.WordPair{Source: e.Source, Target: e.Target, TopicID: topicID})
		}
	}
	if len(words) == 0 {
		return ErrNoFailedWords
	}

	g.rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})

	topic := models.Topic{
		ID:    models.PracticeTopicID,
		Name:  "Practice",
		Emoji: "🔁",
		Words: words,
	}
	g.state = Playing{Round: g.newRound(ModePracticeFailed, topic)}
	return nil
}
