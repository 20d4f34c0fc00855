package review

import (
	"context"
	"fmt"
	"strings"

	"lexconnect/models"
	"lexconnect/utils"
)

const defaultMaxPageSize = 100

func (s *DefaultReviewService) ListLawyerReviews(ctx context.Context, lawyerID string, page, pageSize int) (*models.ReviewPage, error) {
	maxSize := s.MaxPageSize
	if maxSize <= 0 {
		maxSize = defaultMaxPageSize
	}
	if page < 1 || pageSize < 1 {
		return nil, utils.InvalidQuery("page and limit must be positive integers")
	}
	if pageSize > maxSize {
		return nil, utils.InvalidQuery(fmt.Sprintf("limit must not exceed %d", maxSize))
	}

	reviews, total, err := s.Reviews.FindByLawyer(ctx, lawyerID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	public := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		public = append(public, r.Public())
	}
	return &models.ReviewPage{
		Reviews:    public,
		Pagination: models.NewPagination(page, pageSize, total),
	}, nil
}

func (s *DefaultReviewService) ListMyReviews(ctx context.Context, identity models.Identity) ([]models.Review, error) {
	if !identity.Authenticated() {
		return nil, utils.Unauthorized("authentication required")
	}
	reviews, err := s.Reviews.FindByAuthor(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *DefaultReviewService) GetRatingStats(ctx context.Context, lawyerID string) (*models.RatingStats, error) {
	stats, err := s.Reviews.AggregateStats(ctx, lawyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute rating stats: %w", err)
	}
	return stats, nil
}

func (s *DefaultReviewService) ReportReview(ctx context.Context, identity models.Identity, reviewID, reason string) (*models.ReviewReport, error) {
	if !identity.Authenticated() {
		return nil, utils.Unauthorized("authentication required")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, utils.InvalidInput("reason is required")
	}
	if _, err := s.loadReview(ctx, reviewID); err != nil {
		return nil, err
	}

	report := &models.ReviewReport{
		ID:         s.newID(),
		ReviewID:   reviewID,
		ReporterID: identity.UserID,
		Reason:     reason,
		CreatedAt:  s.now(),
	}
	if err := s.Reviews.CreateReport(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}
	return report, nil
}
