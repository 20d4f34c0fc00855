package review

import (
	"context"
	"errors"

	"lexconnect/services/rating"

	"go.uber.org/zap"
)

// ratingChange describes a committed review write.
type ratingChange struct {
	lawyerID string
	created  bool
	rating   int
}

// afterCommit brings the lawyer's cached rating up to date after a review write.
// The review is already stored, so a failure here is logged, counted and handed to the
// retry queue; it is never reported to the caller.
func (s *DefaultReviewService) afterCommit(ctx context.Context, change ratingChange) {
	// The write has committed; a client disconnect must not abandon the rating update.
	ctx = context.WithoutCancel(ctx)

	strategy := rating.StrategyFull
	var err error
	if change.created && s.Strategy == rating.StrategyIncremental {
		strategy = rating.StrategyIncremental
		err = s.Aggregator.ApplyIncrement(ctx, change.lawyerID, change.rating)
	} else {
		_, err = s.Aggregator.Recompute(ctx, change.lawyerID)
	}
	if err == nil {
		return
	}

	s.Metrics.IncAggregationFailure(string(strategy))
	s.logger().Error("Rating aggregation failed after review write",
		zap.String("lawyerId", change.lawyerID),
		zap.String("strategy", string(strategy)),
		zap.Error(err))

	if s.Retry == nil {
		return
	}
	if qerr := s.Retry.EnqueueRecompute(ctx, change.lawyerID); qerr != nil {
		s.logger().Error("Failed to enqueue rating recompute",
			zap.String("lawyerId", change.lawyerID),
			zap.Error(errors.Join(err, qerr)))
		return
	}
	s.Metrics.IncRecompute("enqueued")
}
