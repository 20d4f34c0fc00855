package search

import (
	"context"
	"fmt"
	"time"

	lawyerRepo "lexconnect/database/repository/lawyer"
	"lexconnect/metrics"
	"lexconnect/models"
)

// SearchService resolves directory queries against the cached lawyer profiles.
// It never reads reviews.
type SearchService interface {
	// Search runs a structured filter query.
	Search(ctx context.Context, req SearchRequest) (*models.SearchResult, error)
	// SearchText runs a free-text query over city, state, specializations and languages.
	SearchText(ctx context.Context, req SearchRequest) (*models.SearchResult, error)
}

// DefaultSearchService is the production implementation.
type DefaultSearchService struct {
	Lawyers lawyerRepo.LawyerRepository
	Limits  Limits
	Metrics *metrics.Metrics
}

func (s *DefaultSearchService) Search(ctx context.Context, req SearchRequest) (*models.SearchResult, error) {
	return s.run(ctx, models.SearchModeFilter, req)
}

func (s *DefaultSearchService) SearchText(ctx context.Context, req SearchRequest) (*models.SearchResult, error) {
	return s.run(ctx, models.SearchModeText, req)
}

func (s *DefaultSearchService) run(ctx context.Context, mode models.SearchMode, req SearchRequest) (*models.SearchResult, error) {
	query, err := Parse(mode, req, s.Limits)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	page, err := s.Lawyers.Search(ctx, query)
	s.Metrics.ObserveSearch(string(mode), time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("directory search failed: %w", err)
	}

	lawyers := page.Items
	if lawyers == nil {
		lawyers = []models.LawyerProfile{}
	}
	return &models.SearchResult{
		Lawyers:    lawyers,
		Pagination: models.NewPagination(query.Page, query.PageSize, page.TotalCount),
	}, nil
}
