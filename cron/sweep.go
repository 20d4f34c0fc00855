package cron

import (
	"context"
	"time"

	lawyerRepo "lexconnect/database/repository/lawyer"
	"lexconnect/metrics"
	"lexconnect/services/rating"

	robfigcron "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const sweepLockKey = "lexconnect:lock:rating-sweep"

// SweepReport summarizes one reconciliation pass.
type SweepReport struct {
	Skipped   bool
	Checked   int
	Corrected int
	Failed    int
	Duration  time.Duration
}

// Sweeper walks every lawyer and corrects cached ratings that drifted from their reviews.
type Sweeper struct {
	Lawyers    lawyerRepo.LawyerRepository
	Aggregator rating.Aggregator
	Locker     Locker
	BatchSize  int
	LockTTL    time.Duration
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
}

// Run performs one full pass. Per-lawyer failures are logged and counted; the pass continues.
func (s *Sweeper) Run(ctx context.Context) (SweepReport, error) {
	start := time.Now()
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	batch := s.BatchSize
	if batch <= 0 {
		batch = 200
	}
	ttl := s.LockTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	var report SweepReport
	if s.Locker != nil {
		release, err := s.Locker.TryLock(ctx, sweepLockKey, ttl)
		if err != nil {
			return report, err
		}
		if release == nil {
			logger.Debug("Rating sweep already running elsewhere")
			report.Skipped = true
			return report, nil
		}
		defer release()
	}

	after := ""
	for {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(start)
			return report, err
		}
		ids, err := s.Lawyers.ListIDs(ctx, after, batch)
		if err != nil {
			report.Duration = time.Since(start)
			return report, err
		}
		for _, id := range ids {
			report.Checked++
			corrected, err := s.Aggregator.Reconcile(ctx, id)
			if err != nil {
				report.Failed++
				logger.Warn("Rating reconcile failed", zap.String("lawyerId", id), zap.Error(err))
				continue
			}
			if corrected {
				report.Corrected++
			}
		}
		if len(ids) < batch {
			break
		}
		after = ids[len(ids)-1]
	}

	report.Duration = time.Since(start)
	s.Metrics.AddSweepCorrections(report.Corrected)
	logger.Info("Rating sweep finished",
		zap.Int("checked", report.Checked),
		zap.Int("corrected", report.Corrected),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", report.Duration))
	return report, nil
}

// StartSweepScheduler runs the sweeper on schedule until the returned scheduler is stopped.
// Overlapping runs in this process are skipped.
func StartSweepScheduler(s *Sweeper, schedule string) (*robfigcron.Cron, error) {
	c := robfigcron.New(robfigcron.WithChain(robfigcron.SkipIfStillRunning(robfigcron.DiscardLogger)))
	_, err := c.AddFunc(schedule, func() {
		if _, err := s.Run(context.Background()); err != nil && s.Logger != nil {
			s.Logger.Error("Rating sweep aborted", zap.Error(err))
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
