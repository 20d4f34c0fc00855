package rating

import (
	"context"
	"errors"
	"fmt"
	"time"

	lawyerRepo "lexconnect/database/repository/lawyer"
	reviewRepo "lexconnect/database/repository/review"
	"lexconnect/metrics"
	"lexconnect/models"
	"lexconnect/utils"

	"go.uber.org/zap"
)

// DefaultAggregator is the production implementation.
type DefaultAggregator struct {
	Reviews reviewRepo.ReviewRepository
	Lawyers lawyerRepo.LawyerRepository
	Logger  *zap.Logger
	Metrics *metrics.Metrics

	// Now is overridden in tests.
	Now func() time.Time
}

func NewAggregator(reviews reviewRepo.ReviewRepository, lawyers lawyerRepo.LawyerRepository, m *metrics.Metrics) *DefaultAggregator {
	return &DefaultAggregator{
		Reviews: reviews,
		Lawyers: lawyers,
		Logger:  utils.GetLogger(),
		Metrics: m,
		Now:     time.Now,
	}
}

// stamp marks the start of a read. Stamps are cut to milliseconds to match stored datetimes.
func (a *DefaultAggregator) stamp() time.Time {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	return now().UTC().Truncate(time.Millisecond)
}

func (a *DefaultAggregator) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// compute reads the current rows and returns the rating they imply, stamped before the read.
func (a *DefaultAggregator) compute(ctx context.Context, lawyerID string) (models.LawyerRating, error) {
	computedAt := a.stamp()
	stats, err := a.Reviews.AggregateStats(ctx, lawyerID)
	if err != nil {
		return models.LawyerRating{}, err
	}
	return models.LawyerRating{
		Average:    FullAverage(stats.Sum, stats.Count),
		Count:      stats.Count,
		ComputedAt: computedAt,
	}, nil
}

func (a *DefaultAggregator) Recompute(ctx context.Context, lawyerID string) (*models.LawyerRating, error) {
	rating, err := a.compute(ctx, lawyerID)
	if err != nil {
		return nil, utils.AggregationFailure(lawyerID, err)
	}
	applied, err := a.Lawyers.PatchRating(ctx, lawyerID, rating)
	if err != nil {
		return nil, utils.AggregationFailure(lawyerID, err)
	}
	if !applied {
		a.logger().Debug("Rating recompute not applied",
			zap.String("lawyerId", lawyerID),
			zap.Time("computedAt", rating.ComputedAt))
	}
	return &rating, nil
}

func (a *DefaultAggregator) ApplyIncrement(ctx context.Context, lawyerID string, newRating int) error {
	if newRating < 1 || newRating > 5 {
		return utils.InvalidInput(fmt.Sprintf("rating %d out of range", newRating))
	}
	computedAt := a.stamp()
	applied, err := a.Lawyers.IncrementRating(ctx, lawyerID, newRating, computedAt)
	if err != nil {
		return utils.AggregationFailure(lawyerID, err)
	}
	if !applied {
		a.logger().Debug("Rating increment skipped, lawyer not found or newer rating stored",
			zap.String("lawyerId", lawyerID),
			zap.Time("computedAt", computedAt))
	}
	return nil
}

func (a *DefaultAggregator) Reconcile(ctx context.Context, lawyerID string) (bool, error) {
	profile, err := a.Lawyers.GetByID(ctx, lawyerID)
	if errors.Is(err, utils.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	rating, err := a.compute(ctx, lawyerID)
	if err != nil {
		return false, utils.AggregationFailure(lawyerID, err)
	}
	if rating.Count == profile.Rating.Count && Equal(rating.Average, profile.Rating.Average) {
		return false, nil
	}

	applied, err := a.Lawyers.PatchRating(ctx, lawyerID, rating)
	if err != nil {
		return false, utils.AggregationFailure(lawyerID, err)
	}
	if applied {
		a.logger().Info("Rating drift corrected",
			zap.String("lawyerId", lawyerID),
			zap.Float64("cachedAverage", profile.Rating.Average),
			zap.Int("cachedCount", profile.Rating.Count),
			zap.Float64("average", rating.Average),
			zap.Int("count", rating.Count))
	}
	return applied, nil
}
