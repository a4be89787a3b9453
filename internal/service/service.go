package service

import (
	"context"
	"time"

	"github.com/keoko/mots/internal/clock"
	"github.com/keoko/mots/internal/models"
	"go.uber.org/zap"
)

type KVRI interface {
	Get(ctx context.Context, owner, key string) ([]byte, error)
	Put(ctx context.Context, owner, key string, value []byte) error
	Owners(ctx context.Context, key string) ([]string, error)
}

type LeaderboardAPII interface {
	TopScores(ctx context.Context, topicID string) (models.LeaderboardResponse, error)
	SubmitScore(ctx context.Context, topicID string, submission models.ScoreSubmission) (models.SubmitResult, error)
}

type Service struct {
	*ProgressS
	*LeaderboardS
}

func InitServices(repo KVRI, api LeaderboardAPII, clk clock.Clock, timeout time.Duration, log *zap.Logger) *Service {
	progress := NewProgressService(repo, clk, log)

	return &Service{
		ProgressS:    progress,
		LeaderboardS: NewLeaderboardService(api, repo, progress, clk, timeout, log),
	}
}
