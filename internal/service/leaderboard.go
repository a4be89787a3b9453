package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/keoko/mots/internal/clock"
	"github.com/keoko/mots/internal/models"
	"github.com/keoko/mots/pkg/validator"
	"go.uber.org/zap"
)

const (
	keyPlayer           = "player"
	keyPending          = "pendingScores"
	keyLeaderboardCache = "leaderboardCache"

	MaxSubmitAttempts = 5
)

type SessionUpdaterI interface {
	UpdateSession(ctx context.Context, owner, id string, update func(*models.SessionRecord)) (bool, error)
}

type LeaderboardS struct {
	api      LeaderboardAPII
	repo     KVRI
	sessions SessionUpdaterI
	clock    clock.Clock
	timeout  time.Duration
	log      *zap.Logger

	// mu guards the player and queue records; retryMu serializes retry runs.
	mu      sync.Mutex
	retryMu sync.Mutex
	wg      sync.WaitGroup
}

func NewLeaderboardService(api LeaderboardAPII, repo KVRI, sessions SessionUpdaterI, clk clock.Clock, timeout time.Duration, log *zap.Logger) *LeaderboardS {
	return &LeaderboardS{
		api:      api,
		repo:     repo,
		sessions: sessions,
		clock:    clk,
		timeout:  timeout,
		log:      log,
	}
}

func (l *LeaderboardS) Player(ctx context.Context, owner string) (models.Player, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.player(ctx, owner)
}

func (l *LeaderboardS) player(ctx context.Context, owner string) (models.Player, error) {
	player := loadJSON(ctx, l.repo, l.log, owner, keyPlayer, models.Player{})
	if player.ID != "" {
		return player, nil
	}

	player.ID = uuid.NewString()
	if err := saveJSON(ctx, l.repo, l.log, owner, keyPlayer, player); err != nil {
		return models.Player{}, err
	}

	return player, nil
}

func (l *LeaderboardS) SetPlayerName(ctx context.Context, owner, name string) (models.Player, error) {
	name = strings.TrimSpace(name)
	if err := validator.ValidateVar("playerName", name, "required,max=8"); err != nil {
		return models.Player{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	player, err := l.player(ctx, owner)
	if err != nil {
		return models.Player{}, err
	}

	player.Name = name
	if err := saveJSON(ctx, l.repo, l.log, owner, keyPlayer, player); err != nil {
		return models.Player{}, err
	}

	return player, nil
}

// Submit sends the record in the background and returns immediately.
// Records of players without a name stay local.
func (l *LeaderboardS) Submit(ctx context.Context, owner string, record models.SessionRecord) {
	player, err := l.Player(ctx, owner)
	if err != nil {
		l.log.Warn("failed to load player, score not submitted", zap.String("owner", owner), zap.Error(err))
		return
	}
	if player.Name == "" {
		l.log.Info("no player name set, score kept local", zap.String("owner", owner), zap.String("session_id", record.ID))
		return
	}

	pending := models.PendingSubmission{
		SessionID: record.ID,
		TopicID:   record.TopicID,
		Submission: models.ScoreSubmission{
			PlayerID:    player.ID,
			PlayerName:  player.Name,
			Score:       record.Score,
			WordsWon:    record.WordsWon,
			WordsLost:   record.WordsLost,
			SuccessRate: record.SuccessRate,
			Time:        record.Time,
		},
	}

	if err := validator.ValidateStruct(pending.Submission); err != nil {
		l.log.Warn("invalid score submission", zap.String("session_id", record.ID), zap.Error(err))
		l.markSession(ctx, owner, record.ID, models.SyncRejected, 0, player.Name)
		return
	}

	l.markSession(ctx, owner, record.ID, models.SyncPending, 0, player.Name)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()

		if !l.attempt(ctx, owner, pending) {
			return
		}

		pending.Attempts = 1
		pending.QueuedAt = l.clock.Now()
		l.enqueue(ctx, owner, pending)
	}()
}

// Wait blocks until background submissions and refreshes are done.
func (l *LeaderboardS) Wait() {
	l.wg.Wait()
}

// attempt reports whether the submission should be retried later.
func (l *LeaderboardS) attempt(ctx context.Context, owner string, p models.PendingSubmission) bool {
	result, err := l.api.SubmitScore(ctx, p.TopicID, p.Submission)
	if err == nil {
		l.log.Info("score submitted", zap.String("session_id", p.SessionID), zap.Int("rank", result.Rank))
		l.markSession(ctx, owner, p.SessionID, models.SyncSynced, result.Rank, "")
		return false
	}

	var rejected *models.LeaderboardError
	if errors.As(err, &rejected) {
		l.log.Warn("score rejected", zap.String("session_id", p.SessionID), zap.Int("status", rejected.StatusCode), zap.String("reason", rejected.Message))
		l.markSession(ctx, owner, p.SessionID, models.SyncRejected, 0, "")
		return false
	}

	l.log.Warn("leaderboard unreachable", zap.String("session_id", p.SessionID), zap.Error(err))
	return true
}

func (l *LeaderboardS) markSession(ctx context.Context, owner, id string, status models.SyncStatus, rank int, playerName string) {
	_, err := l.sessions.UpdateSession(ctx, owner, id, func(r *models.SessionRecord) {
		r.SyncStatus = status
		if rank > 0 {
			r.Rank = rank
		}
		if playerName != "" {
			r.PlayerName = playerName
		}
	})
	if err != nil {
		l.log.Warn("failed to update session sync status", zap.String("session_id", id), zap.Error(err))
	}
}

func (l *LeaderboardS) Pending(ctx context.Context, owner string) []models.PendingSubmission {
	return loadJSON(ctx, l.repo, l.log, owner, keyPending, []models.PendingSubmission{})
}

func (l *LeaderboardS) enqueue(ctx context.Context, owner string, p models.PendingSubmission) {
	l.mu.Lock()
	defer l.mu.Unlock()

	queue := append(l.Pending(ctx, owner), p)
	_ = saveJSON(ctx, l.repo, l.log, owner, keyPending, queue)
}

// RetryPending resends queued submissions. An entry is dropped once it
// succeeds, is rejected, or has failed MaxSubmitAttempts times.
// The queue lock is not held while sending, so entries queued meanwhile
// are kept untouched.
func (l *LeaderboardS) RetryPending(ctx context.Context, owner string) error {
	l.retryMu.Lock()
	defer l.retryMu.Unlock()

	l.mu.Lock()
	queue := l.Pending(ctx, owner)
	l.mu.Unlock()
	if len(queue) == 0 {
		return nil
	}

	dropped := make(map[string]bool, len(queue))
	retried := make(map[string]models.PendingSubmission, len(queue))
	for _, p := range queue {
		if !l.attempt(ctx, owner, p) {
			dropped[p.SessionID] = true
			continue
		}

		p.Attempts++
		if p.Attempts >= MaxSubmitAttempts {
			l.log.Warn("giving up on score submission", zap.String("session_id", p.SessionID), zap.Int("attempts", p.Attempts))
			l.markSession(ctx, owner, p.SessionID, models.SyncFailed, 0, "")
			dropped[p.SessionID] = true
			continue
		}
		retried[p.SessionID] = p
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.Pending(ctx, owner)
	keep := make([]models.PendingSubmission, 0, len(current))
	for _, p := range current {
		if dropped[p.SessionID] {
			continue
		}
		if r, ok := retried[p.SessionID]; ok {
			p = r
		}
		keep = append(keep, p)
	}

	return saveJSON(ctx, l.repo, l.log, owner, keyPending, keep)
}

func (l *LeaderboardS) RetryAll(ctx context.Context) error {
	owners, err := l.repo.Owners(ctx, keyPending)
	if err != nil {
		return err
	}

	var errs []error
	for _, owner := range owners {
		if err := l.RetryPending(ctx, owner); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// FetchLeaderboard answers from cache when it can and refreshes the cache in
// the background. Only a cold cache can surface a network error.
func (l *LeaderboardS) FetchLeaderboard(ctx context.Context, owner, topicID string) ([]models.ScoreEntry, error) {
	cache := loadJSON(ctx, l.repo, l.log, owner, keyLeaderboardCache, map[string]models.LeaderboardCache{})
	if entry, ok := cache[topicID]; ok {
		l.wg.Add(1)
		go func() {
			defer l.wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
			defer cancel()

			if _, err := l.refresh(ctx, owner, topicID); err != nil {
				l.log.Debug("leaderboard refresh failed, serving cache", zap.String("topic_id", topicID), zap.Error(err))
			}
		}()
		return entry.Scores, nil
	}

	return l.refresh(ctx, owner, topicID)
}

func (l *LeaderboardS) refresh(ctx context.Context, owner, topicID string) ([]models.ScoreEntry, error) {
	resp, err := l.api.TopScores(ctx, topicID)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cache := loadJSON(ctx, l.repo, l.log, owner, keyLeaderboardCache, map[string]models.LeaderboardCache{})
	if cache == nil {
		cache = map[string]models.LeaderboardCache{}
	}
	cache[topicID] = models.LeaderboardCache{
		Scores:    resp.Scores,
		FetchedAt: l.clock.Now(),
	}
	_ = saveJSON(ctx, l.repo, l.log, owner, keyLeaderboardCache, cache)

	return resp.Scores, nil
}
