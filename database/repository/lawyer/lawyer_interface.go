package lawyerRepo

import (
	"context"
	"time"

	"lexconnect/models"
)

// LawyerRepository defines methods for lawyer directory data access.
//
// Put never touches the rating sub-document; PatchRating and IncrementRating are the
// only writers of it and are reserved for the rating aggregator.
type LawyerRepository interface {
	// Create inserts a new profile with a zero rating.
	Create(ctx context.Context, profile *models.LawyerProfile) error
	// GetByID retrieves a profile by its unique ID.
	GetByID(ctx context.Context, id string) (*models.LawyerProfile, error)
	// GetByUserID retrieves the profile owned by a user.
	GetByUserID(ctx context.Context, userID string) (*models.LawyerProfile, error)
	// Put replaces every owner-controlled field of an existing profile.
	Put(ctx context.Context, profile *models.LawyerProfile) error
	// PatchRating atomically sets average, count and computedAt, unless the stored
	// rating was computed after rating.ComputedAt. It reports whether the write applied;
	// a missing profile or a newer stored rating yields (false, nil).
	PatchRating(ctx context.Context, lawyerID string, rating models.LawyerRating) (bool, error)
	// IncrementRating folds one new rating into the stored average in a single atomic update
	// and stamps it with computedAt. Like PatchRating it yields (false, nil) when the stored
	// rating was computed after computedAt or the profile is missing.
	IncrementRating(ctx context.Context, lawyerID string, newRating int, computedAt time.Time) (bool, error)
	// Search runs a filter or text query and returns one page plus the total match count.
	Search(ctx context.Context, query models.LawyerQuery) (*models.LawyerPage, error)
	// ListIDs returns up to limit profile IDs greater than afterID in ascending order.
	ListIDs(ctx context.Context, afterID string, limit int) ([]string, error)
}
