package rating

import (
	"context"
	"fmt"

	"lexconnect/models"
)

// Strategy selects how a freshly created review reaches the cached rating.
type Strategy string

const (
	// StrategyFull recomputes from every review row.
	StrategyFull Strategy = "full"
	// StrategyIncremental folds only the new rating into the stored average.
	StrategyIncremental Strategy = "incremental"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyFull:
		return StrategyFull, nil
	case StrategyIncremental:
		return StrategyIncremental, nil
	default:
		return "", fmt.Errorf("unknown rating strategy %q", s)
	}
}

// Aggregator keeps each lawyer's cached rating equal to the mean and count of its reviews.
type Aggregator interface {
	// Recompute reads every review of the lawyer and writes the resulting rating.
	// A missing lawyer is a no-op.
	Recompute(ctx context.Context, lawyerID string) (*models.LawyerRating, error)
	// ApplyIncrement folds one newly created rating into the cached average.
	// It must not be used after an edit or a delete.
	ApplyIncrement(ctx context.Context, lawyerID string, newRating int) error
	// Reconcile recomputes only when the cached rating has drifted and reports whether it wrote.
	Reconcile(ctx context.Context, lawyerID string) (bool, error)
}
