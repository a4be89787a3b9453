package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

type RetrierI interface {
	RetryAll(ctx context.Context) error
}

// Scheduler periodically resends leaderboard submissions queued while offline.
type Scheduler struct {
	scheduler *gocron.Scheduler
	retrier   RetrierI
	interval  time.Duration
	log       *zap.Logger
}

func New(retrier RetrierI, interval time.Duration, log *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		retrier:   retrier,
		interval:  interval,
		log:       log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).SingletonMode().Do(s.retryPending); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) retryPending() {
	timeout := s.interval
	if timeout > time.Minute {
		timeout = time.Minute
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.retrier.RetryAll(ctx); err != nil {
		s.log.Warn("failed to retry pending scores", zap.Error(err))
	}
}
