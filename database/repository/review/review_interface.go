package reviewRepo

import (
	"context"

	"lexconnect/models"
)

// ReviewRepository defines methods for review data access.
// Implementations enforce at most one review per (lawyerId, authorId) at the store layer.
type ReviewRepository interface {
	// Create inserts a review; a second review for the same lawyer and author fails with utils.ErrDuplicateReview.
	Create(ctx context.Context, review *models.Review) error
	// GetByID retrieves a review by its ID.
	GetByID(ctx context.Context, id string) (*models.Review, error)
	// Update replaces the author-mutable fields of an existing review.
	Update(ctx context.Context, review *models.Review) error
	// Delete removes a review by its ID.
	Delete(ctx context.Context, id string) error
	// FindByLawyer returns one page of a lawyer's reviews, newest first, and the total count.
	FindByLawyer(ctx context.Context, lawyerID string, page, pageSize int) ([]models.Review, int, error)
	// FindByAuthor returns every review written by the author, newest first.
	FindByAuthor(ctx context.Context, authorID string) ([]models.Review, error)
	// AggregateStats computes count, mean and star histogram from the current rows.
	AggregateStats(ctx context.Context, lawyerID string) (*models.RatingStats, error)
	// CreateReport stores a moderation report.
	CreateReport(ctx context.Context, report *models.ReviewReport) error
}
