package review

import (
	"context"

	"lexconnect/models"
)

// ReviewService defines the business logic for reviews. Every write that changes the set of
// ratings for a lawyer brings that lawyer's cached rating up to date before returning.
type ReviewService interface {
	// SubmitReview creates the acting user's review of a lawyer.
	SubmitReview(ctx context.Context, identity models.Identity, input models.ReviewInput) (*models.Review, error)
	// EditReview changes the author-mutable fields of the acting user's own review.
	EditReview(ctx context.Context, identity models.Identity, reviewID string, patch models.ReviewPatch) (*models.Review, error)
	// DeleteReview removes a review. Authors may delete their own; moderators may delete any.
	DeleteReview(ctx context.Context, identity models.Identity, reviewID string) error
	// ListLawyerReviews returns one page of a lawyer's reviews with anonymous authors hidden.
	ListLawyerReviews(ctx context.Context, lawyerID string, page, pageSize int) (*models.ReviewPage, error)
	// ListMyReviews returns every review written by the acting user.
	ListMyReviews(ctx context.Context, identity models.Identity) ([]models.Review, error)
	// GetRatingStats computes count, mean and histogram directly from the review rows.
	GetRatingStats(ctx context.Context, lawyerID string) (*models.RatingStats, error)
	// ReportReview records a moderation report against a review.
	ReportReview(ctx context.Context, identity models.Identity, reviewID, reason string) (*models.ReviewReport, error)
}

// RecomputeEnqueuer schedules a background recompute for a lawyer whose rating could not be
// updated on the request path.
type RecomputeEnqueuer interface {
	EnqueueRecompute(ctx context.Context, lawyerID string) error
}
