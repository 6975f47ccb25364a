package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"nobel-stats/app/models"
	"nobel-stats/app/repository"
	"nobel-stats/metrics"
)

// Loader fetches both datasets concurrently and publishes the session once
// the second one arrives. A failed fetch leaves the loader without a session.
type Loader struct {
	repo    repository.DatasetRepository
	logger  *zap.Logger
	metrics *metrics.Collector
	timeout time.Duration
	current atomic.Pointer[Session]
}

func NewLoader(repo repository.DatasetRepository, logger *zap.Logger, collector *metrics.Collector, timeout time.Duration) *Loader {
	return &Loader{repo: repo, logger: logger, metrics: collector, timeout: timeout}
}

func (l *Loader) Session() *Session {
	return l.current.Load()
}

func (l *Loader) Ready() bool {
	return l.current.Load() != nil
}

// Start runs Load in the background.
func (l *Loader) Start(ctx context.Context) {
	go func() {
		_, _ = l.Load(ctx)
	}()
}

// Load fetches, aggregates and publishes. It returns the new session or the
// first error; errors are also logged.
func (l *Loader) Load(ctx context.Context) (*Session, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	var (
		prizes    *models.PrizeDataset
		laureates *models.LaureateDataset
		session   *Session
		aggErr    error
	)
	join := NewJoin(2, func() {
		session, aggErr = NewSession(prizes, laureates)
		l.metrics.ObserveAggregation(aggErr)
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ds, err := l.repo.FetchPrizes(gctx)
		l.metrics.ObserveLoad(repository.PrizeDataset, err)
		if err != nil {
			return fmt.Errorf("fetch %s dataset: %w", repository.PrizeDataset, err)
		}
		prizes = ds
		l.metrics.SetRecords(repository.PrizeDataset, len(ds.Prizes))
		join.Arrive()
		return nil
	})
	g.Go(func() error {
		ds, err := l.repo.FetchLaureates(gctx)
		l.metrics.ObserveLoad(repository.LaureateDataset, err)
		if err != nil {
			return fmt.Errorf("fetch %s dataset: %w", repository.LaureateDataset, err)
		}
		laureates = ds
		l.metrics.SetRecords(repository.LaureateDataset, len(ds.Laureates))
		join.Arrive()
		return nil
	})

	if err := g.Wait(); err != nil {
		l.logger.Error("dataset load failed", zap.Error(err))
		return nil, err
	}
	if aggErr != nil {
		l.logger.Error("aggregation skipped", zap.Error(aggErr))
		return nil, aggErr
	}

	l.current.Store(session)
	l.logger.Info("datasets loaded",
		zap.String("session", session.ID.String()),
		zap.Int("prizes", len(prizes.Prizes)),
		zap.Int("laureates", len(laureates.Laureates)),
		zap.Int("categories", session.Counts.Len()),
	)
	return session, nil
}
