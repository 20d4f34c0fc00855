package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	lawyerRepo "lexconnect/database/repository/lawyer"
	reviewRepo "lexconnect/database/repository/review"
	"lexconnect/metrics"
	"lexconnect/models"
	"lexconnect/services/rating"
	"lexconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Reviews    reviewRepo.ReviewRepository
	Lawyers    lawyerRepo.LawyerRepository
	Aggregator rating.Aggregator
	Retry      RecomputeEnqueuer
	Strategy   rating.Strategy
	Metrics    *metrics.Metrics
	Logger     *zap.Logger

	// MaxPageSize caps review listings; zero means 100.
	MaxPageSize int

	Now   func() time.Time
	NewID func() string
}

func (s *DefaultReviewService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *DefaultReviewService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.New().String()
}

func (s *DefaultReviewService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// SubmitReview validates the input, checks the lawyer exists and stores the review.
// The store's unique (lawyerId, authorId) index is the only duplicate check.
func (s *DefaultReviewService) SubmitReview(ctx context.Context, identity models.Identity, input models.ReviewInput) (*models.Review, error) {
	if !identity.Authenticated() {
		return nil, utils.Unauthorized("authentication required")
	}
	if err := utils.Validate(input); err != nil {
		return nil, err
	}

	if _, err := s.Lawyers.GetByID(ctx, input.LawyerID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.NotFound("lawyer", input.LawyerID)
		}
		return nil, fmt.Errorf("failed to load lawyer: %w", err)
	}

	now := s.now()
	review := &models.Review{
		ID:               s.newID(),
		LawyerID:         input.LawyerID,
		AuthorID:         identity.UserID,
		Rating:           input.Rating,
		Comment:          input.Comment,
		ConsultationType: input.ConsultationType,
		IsAnonymous:      input.IsAnonymous,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Reviews.Create(ctx, review); err != nil {
		if errors.Is(err, utils.ErrDuplicateReview) {
			return nil, utils.DuplicateReview(input.LawyerID)
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	s.Metrics.IncReviewWrite("create")

	s.afterCommit(ctx, ratingChange{lawyerID: review.LawyerID, created: true, rating: review.Rating})
	return review, nil
}

// EditReview applies the patch to the caller's own review.
func (s *DefaultReviewService) EditReview(ctx context.Context, identity models.Identity, reviewID string, patch models.ReviewPatch) (*models.Review, error) {
	if !identity.Authenticated() {
		return nil, utils.Unauthorized("authentication required")
	}
	if err := utils.Validate(patch); err != nil {
		return nil, err
	}

	review, err := s.loadReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.AuthorID != identity.UserID {
		return nil, utils.Forbidden("you can only edit your own reviews")
	}

	patch.Apply(review)
	review.UpdatedAt = s.now()
	if err := s.Reviews.Update(ctx, review); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.NotFound("review", reviewID)
		}
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	s.Metrics.IncReviewWrite("edit")

	s.afterCommit(ctx, ratingChange{lawyerID: review.LawyerID})
	return review, nil
}

// DeleteReview removes the review when the caller wrote it or may moderate.
func (s *DefaultReviewService) DeleteReview(ctx context.Context, identity models.Identity, reviewID string) error {
	if !identity.Authenticated() {
		return utils.Unauthorized("authentication required")
	}

	review, err := s.loadReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.AuthorID != identity.UserID && !identity.CanModerate() {
		return utils.Forbidden("you can only delete your own reviews")
	}

	if err := s.Reviews.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.NotFound("review", reviewID)
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}
	s.Metrics.IncReviewWrite("delete")

	s.afterCommit(ctx, ratingChange{lawyerID: review.LawyerID})
	return nil
}

func (s *DefaultReviewService) loadReview(ctx context.Context, reviewID string) (*models.Review, error) {
	review, err := s.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.NotFound("review", reviewID)
		}
		return nil, fmt.Errorf("failed to load review: %w", err)
	}
	return review, nil
}
