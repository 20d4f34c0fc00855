package memoryRepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	reviewRepo "lexconnect/database/repository/review"
	"lexconnect/models"
	"lexconnect/utils"
)

var _ reviewRepo.ReviewRepository = (*ReviewStore)(nil)

type authorPair struct {
	lawyerID string
	authorID string
}

// ReviewStore keeps reviews in process memory. The (lawyer, author) pair index is
// checked and written under the same lock, so concurrent duplicates cannot both land.
type ReviewStore struct {
	mu      sync.RWMutex
	byID    map[string]models.Review
	pairs   map[authorPair]string
	reports []models.ReviewReport
}

func NewReviewStore() *ReviewStore {
	return &ReviewStore{
		byID:  make(map[string]models.Review),
		pairs: make(map[authorPair]string),
	}
}

func (s *ReviewStore) Create(ctx context.Context, review *models.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[review.ID]; exists {
		return fmt.Errorf("review %s already exists", review.ID)
	}
	key := authorPair{review.LawyerID, review.AuthorID}
	if _, exists := s.pairs[key]; exists {
		return fmt.Errorf("lawyer %s author %s: %w", review.LawyerID, review.AuthorID, utils.ErrDuplicateReview)
	}
	s.byID[review.ID] = *review
	s.pairs[key] = review.ID
	return nil
}

func (s *ReviewStore) GetByID(ctx context.Context, id string) (*models.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("review %s: %w", id, utils.ErrNotFound)
	}
	return &review, nil
}

// Update overwrites the mutable fields; lawyer, author and createdAt stay as stored.
func (s *ReviewStore) Update(ctx context.Context, review *models.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.byID[review.ID]
	if !ok {
		return fmt.Errorf("review %s: %w", review.ID, utils.ErrNotFound)
	}
	stored.Rating = review.Rating
	stored.Comment = review.Comment
	stored.ConsultationType = review.ConsultationType
	stored.IsAnonymous = review.IsAnonymous
	stored.UpdatedAt = review.UpdatedAt
	s.byID[review.ID] = stored
	return nil
}

func (s *ReviewStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	review, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("review %s: %w", id, utils.ErrNotFound)
	}
	delete(s.byID, id)
	delete(s.pairs, authorPair{review.LawyerID, review.AuthorID})
	return nil
}

func (s *ReviewStore) FindByLawyer(ctx context.Context, lawyerID string, page, pageSize int) ([]models.Review, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	matched := s.collect(func(r models.Review) bool { return r.LawyerID == lawyerID })
	total := len(matched)

	start := models.PageOffset(page, pageSize)
	if start >= total {
		return []models.Review{}, total, nil
	}
	end := start + min(pageSize, total-start)
	return matched[start:end], total, nil
}

func (s *ReviewStore) FindByAuthor(ctx context.Context, authorID string) ([]models.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.collect(func(r models.Review) bool { return r.AuthorID == authorID }), nil
}

// collect returns matching reviews newest first, id ascending on equal timestamps.
func (s *ReviewStore) collect(match func(models.Review) bool) []models.Review {
	s.mu.RLock()
	out := []models.Review{}
	for _, r := range s.byID {
		if match(r) {
			out = append(out, r)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// AggregateStats reads every review of the lawyer under one read lock.
func (s *ReviewStore) AggregateStats(ctx context.Context, lawyerID string) (*models.RatingStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.NewRatingStats(lawyerID)
	for _, r := range s.byID {
		if r.LawyerID == lawyerID {
			stats.Add(r.Rating, 1)
		}
	}
	return stats, nil
}

func (s *ReviewStore) CreateReport(ctx context.Context, report *models.ReviewReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}
	s.reports = append(s.reports, *report)
	return nil
}

// Reports returns a copy of the stored moderation reports.
func (s *ReviewStore) Reports() []models.ReviewReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ReviewReport(nil), s.reports...)
}
