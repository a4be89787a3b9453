package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/keoko/mots/internal/clock"
	"github.com/keoko/mots/internal/models"
	"go.uber.org/zap"
)

const (
	keyProgress    = "progress"
	keyFailedWords = "failedWords"
	keySessions    = "sessions"

	topScoresLimit = 10
)

type ProgressS struct {
	repo  KVRI
	clock clock.Clock
	log   *zap.Logger
	mu    sync.Mutex
}

func NewProgressService(repo KVRI, clk clock.Clock, log *zap.Logger) *ProgressS {
	return &ProgressS{
		repo:  repo,
		clock: clk,
		log:   log,
	}
}

// MergeWordStats folds one session's outcomes into the per-word aggregates.
// Every outcome is one new attempt. existing is not modified.
func MergeWordStats(existing map[string]models.WordStatAgg, incoming []models.WordOutcome, now time.Time) map[string]models.WordStatAgg {
	merged := make(map[string]models.WordStatAgg, len(existing)+len(incoming))
	for word, agg := range existing {
		merged[word] = agg
	}

	for _, w := range incoming {
		agg, ok := merged[w.Word]
		if !ok {
			agg = models.WordStatAgg{
				BestTime:     w.TimeMs,
				FirstAttempt: now,
			}
		} else if w.TimeMs < agg.BestTime {
			agg.BestTime = w.TimeMs
		}

		agg.Attempts++
		if w.Won {
			agg.Won++
		} else {
			agg.Lost++
		}
		agg.TotalTime += w.TimeMs
		agg.LastAttempt = now

		merged[w.Word] = agg
	}

	return merged
}

func (p *ProgressS) Progress(ctx context.Context, owner string) map[string]models.TopicProgress {
	progress := loadJSON(ctx, p.repo, p.log, owner, keyProgress, map[string]models.TopicProgress{})
	if progress == nil {
		progress = map[string]models.TopicProgress{}
	}
	return progress
}

func (p *ProgressS) TopicProgress(ctx context.Context, owner, topicID string) models.TopicProgress {
	return p.Progress(ctx, owner)[topicID]
}

func (p *ProgressS) SaveTopicProgress(ctx context.Context, owner, topicID string, stats models.SessionStats) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()
	all := p.Progress(ctx, owner)

	tp := all[topicID]
	if tp.FirstPlayed.IsZero() {
		tp.FirstPlayed = now
	}
	tp.TotalWon += stats.TotalWon
	tp.TotalLost += stats.TotalLost
	tp.TotalScore += stats.TotalScore
	tp.TotalTime += stats.TotalTime
	tp.Sessions++
	tp.TotalAttempts = tp.TotalWon + tp.TotalLost
	tp.WordStats = MergeWordStats(tp.WordStats, stats.Words, now)
	tp.LastPlayed = now

	all[topicID] = tp

	return saveJSON(ctx, p.repo, p.log, owner, keyProgress, all)
}

func (p *ProgressS) FailedWords(ctx context.Context, owner string) map[string][]models.FailedWordEntry {
	failed := loadJSON(ctx, p.repo, p.log, owner, keyFailedWords, map[string][]models.FailedWordEntry{})
	if failed == nil {
		failed = map[string][]models.FailedWordEntry{}
	}
	return failed
}

func (p *ProgressS) SaveFailedWords(ctx context.Context, owner, topicID string, words []models.WordPair) error {
	if len(words) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()
	all := p.FailedWords(ctx, owner)
	list := all[topicID]

	for _, w := range words {
		i := indexByTarget(list, w.Target)
		if i >= 0 {
			list[i].FailedCount++
			list[i].LastFailed = now
			continue
		}

		list = append(list, models.FailedWordEntry{
			Source:      w.Source,
			Target:      w.Target,
			FailedCount: 1,
			FirstFailed: now,
			LastFailed:  now,
		})
	}

	all[topicID] = list

	return saveJSON(ctx, p.repo, p.log, owner, keyFailedWords, all)
}

// RemoveFailedWord reports whether an entry with the given target existed.
func (p *ProgressS) RemoveFailedWord(ctx context.Context, owner, topicID, target string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	all := p.FailedWords(ctx, owner)
	list := all[topicID]

	i := indexByTarget(list, target)
	if i < 0 {
		return false, nil
	}

	list = append(list[:i], list[i+1:]...)
	if len(list) == 0 {
		delete(all, topicID)
	} else {
		all[topicID] = list
	}

	if err := saveJSON(ctx, p.repo, p.log, owner, keyFailedWords, all); err != nil {
		return false, err
	}

	return true, nil
}

func indexByTarget(list []models.FailedWordEntry, target string) int {
	for i, e := range list {
		if e.Target == target {
			return i
		}
	}
	return -1
}

// Sessions returns the history newest first.
func (p *ProgressS) Sessions(ctx context.Context, owner string) []models.SessionRecord {
	return loadJSON(ctx, p.repo, p.log, owner, keySessions, []models.SessionRecord{})
}

func (p *ProgressS) AddSession(ctx context.Context, owner string, record models.SessionRecord) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	sessions := p.Sessions(ctx, owner)

	sessions = append([]models.SessionRecord{record}, sessions...)
	if len(sessions) > models.MaxSessions {
		sessions = sessions[:models.MaxSessions]
	}

	return saveJSON(ctx, p.repo, p.log, owner, keySessions, sessions)
}

// UpdateSession applies update to the record with the given id. It reports
// false when the record has already dropped out of the history.
func (p *ProgressS) UpdateSession(ctx context.Context, owner, id string, update func(*models.SessionRecord)) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sessions := p.Sessions(ctx, owner)
	for i := range sessions {
		if sessions[i].ID != id {
			continue
		}

		update(&sessions[i])
		if err := saveJSON(ctx, p.repo, p.log, owner, keySessions, sessions); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

// TopScores ranks the topic's sessions by score, faster time first on ties.
func (p *ProgressS) TopScores(ctx context.Context, owner, topicID string) []models.SessionRecord {
	var top []models.SessionRecord
	for _, s := range p.Sessions(ctx, owner) {
		if s.TopicID == topicID {
			top = append(top, s)
		}
	}

	sortByScore(top)
	if len(top) > topScoresLimit {
		top = top[:topScoresLimit]
	}

	return top
}

func sortByScore(sessions []models.SessionRecord) {
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].Score != sessions[j].Score {
			return sessions[i].Score > sessions[j].Score
		}
		return sessions[i].Time < sessions[j].Time
	})
}

func (p *ProgressS) Statistics(ctx context.Context, owner string) models.Statistics {
	var stats models.Statistics

	progress := p.Progress(ctx, owner)
	ids := make([]string, 0, len(progress))
	for id := range progress {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		tp := progress[id]
		stats.Sessions += tp.Sessions
		stats.TotalWon += tp.TotalWon
		stats.TotalLost += tp.TotalLost
		stats.TotalScore += tp.TotalScore
		stats.TotalTime += tp.TotalTime

		best := 0
		if top := p.TopScores(ctx, owner, id); len(top) > 0 {
			best = top[0].Score
		}

		stats.Topics = append(stats.Topics, models.TopicStatistics{
			TopicID:     id,
			Sessions:    tp.Sessions,
			Won:         tp.TotalWon,
			Lost:        tp.TotalLost,
			BestScore:   best,
			SuccessRate: models.SuccessRate(tp.TotalWon, tp.TotalLost),
		})
	}
	stats.SuccessRate = models.SuccessRate(stats.TotalWon, stats.TotalLost)

	sessions := p.Sessions(ctx, owner)
	sortByScore(sessions)
	if len(sessions) > 0 {
		best := sessions[0]
		stats.Best = &best
	}

	for _, list := range p.FailedWords(ctx, owner) {
		stats.FailedWords += len(list)
	}

	return stats
}
