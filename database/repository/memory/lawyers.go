package memoryRepo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	lawyerRepo "lexconnect/database/repository/lawyer"
	"lexconnect/models"
	"lexconnect/utils"
)

var _ lawyerRepo.LawyerRepository = (*LawyerStore)(nil)

// LawyerStore keeps lawyer profiles in process memory with an inverted index for text queries.
type LawyerStore struct {
	mu     sync.RWMutex
	byID   map[string]models.LawyerProfile
	byUser map[string]string
	text   *textIndex
}

func NewLawyerStore() *LawyerStore {
	return &LawyerStore{
		byID:   make(map[string]models.LawyerProfile),
		byUser: make(map[string]string),
		text:   newTextIndex(),
	}
}

func (s *LawyerStore) Create(ctx context.Context, profile *models.LawyerProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[profile.ID]; exists {
		return fmt.Errorf("lawyer %s already exists", profile.ID)
	}
	if _, exists := s.byUser[profile.UserID]; exists {
		return fmt.Errorf("user %s already has a lawyer profile", profile.UserID)
	}
	profile.Rating = models.LawyerRating{}
	stored := cloneProfile(profile)
	s.byID[profile.ID] = stored
	s.byUser[profile.UserID] = profile.ID
	s.text.put(&stored)
	return nil
}

func (s *LawyerStore) GetByID(ctx context.Context, id string) (*models.LawyerProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("lawyer %s: %w", id, utils.ErrNotFound)
	}
	out := cloneProfile(&p)
	return &out, nil
}

func (s *LawyerStore) GetByUserID(ctx context.Context, userID string) (*models.LawyerProfile, error) {
	s.mu.RLock()
	id, ok := s.byUser[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("lawyer for user %s: %w", userID, utils.ErrNotFound)
	}
	return s.GetByID(ctx, id)
}

// Put replaces the owner fields and keeps the stored id, owner, createdAt and rating.
func (s *LawyerStore) Put(ctx context.Context, profile *models.LawyerProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.byID[profile.ID]
	if !ok {
		return fmt.Errorf("lawyer %s: %w", profile.ID, utils.ErrNotFound)
	}
	next := cloneProfile(profile)
	next.UserID = stored.UserID
	next.CreatedAt = stored.CreatedAt
	next.Rating = stored.Rating
	next.Score = 0
	s.byID[profile.ID] = next
	s.text.put(&next)
	return nil
}

func (s *LawyerStore) PatchRating(ctx context.Context, lawyerID string, rating models.LawyerRating) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[lawyerID]
	if !ok {
		return false, nil
	}
	if p.Rating.ComputedAt.After(rating.ComputedAt) {
		return false, nil
	}
	p.Rating = rating
	s.byID[lawyerID] = p
	return true, nil
}

func (s *LawyerStore) IncrementRating(ctx context.Context, lawyerID string, newRating int, computedAt time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[lawyerID]
	if !ok || p.Rating.ComputedAt.After(computedAt) {
		return false, nil
	}
	n := float64(p.Rating.Count)
	p.Rating.Average = (p.Rating.Average*n + float64(newRating)) / (n + 1)
	p.Rating.Count++
	p.Rating.ComputedAt = computedAt
	s.byID[lawyerID] = p
	return true, nil
}

// Search evaluates the query against a consistent snapshot of the store.
func (s *LawyerStore) Search(ctx context.Context, query models.LawyerQuery) (*models.LawyerPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	var matched []models.LawyerProfile
	if query.Mode == models.SearchModeText {
		for id, score := range s.text.search(query.Text) {
			p := s.byID[id]
			if !p.Listed() {
				continue
			}
			hit := cloneProfile(&p)
			hit.Score = score
			matched = append(matched, hit)
		}
	} else {
		for _, p := range s.byID {
			if matchesFilter(&p, query.Filter) {
				matched = append(matched, cloneProfile(&p))
			}
		}
	}
	s.mu.RUnlock()

	if query.Mode == models.SearchModeText {
		sort.Slice(matched, func(i, j int) bool {
			if matched[i].Score != matched[j].Score {
				return matched[i].Score > matched[j].Score
			}
			return matched[i].ID < matched[j].ID
		})
	} else {
		sort.Slice(matched, func(i, j int) bool { return listedBefore(&matched[i], &matched[j]) })
	}

	page := &models.LawyerPage{Items: []models.LawyerProfile{}, TotalCount: len(matched)}
	start := query.Offset()
	if start < len(matched) {
		end := start + min(query.PageSize, len(matched)-start)
		page.Items = matched[start:end]
	}
	return page, nil
}

func (s *LawyerStore) ListIDs(ctx context.Context, afterID string, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	ids := make([]string, 0, len(s.byID))
	for id := range s.byID {
		if id > afterID {
			ids = append(ids, id)
		}
	}
	s.mu.RUnlock()

	sort.Strings(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// listedBefore orders by rating desc, experience desc, id asc.
func listedBefore(a, b *models.LawyerProfile) bool {
	if a.Rating.Average != b.Rating.Average {
		return a.Rating.Average > b.Rating.Average
	}
	if a.Experience != b.Experience {
		return a.Experience > b.Experience
	}
	return a.ID < b.ID
}

func matchesFilter(p *models.LawyerProfile, f models.LawyerFilter) bool {
	if !p.Listed() {
		return false
	}
	if f.City != "" && !containsFold(p.Location.City, f.City) {
		return false
	}
	if f.State != "" && !containsFold(p.Location.State, f.State) {
		return false
	}
	if f.Specialization != "" && !contains(p.Specializations, f.Specialization) {
		return false
	}
	if f.Language != "" && !contains(p.Languages, f.Language) {
		return false
	}
	if f.MinExperience != nil && p.Experience < *f.MinExperience {
		return false
	}
	if f.ConsultationMode != "" && !contains(p.ConsultationModes, f.ConsultationMode) {
		return false
	}
	if f.MinRating != nil && p.Rating.Average < *f.MinRating {
		return false
	}
	if f.MaxFee != nil && p.ConsultationFee > *f.MaxFee {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// cloneProfile copies the slices so callers cannot mutate stored state.
func cloneProfile(p *models.LawyerProfile) models.LawyerProfile {
	out := *p
	out.Specializations = append([]string(nil), p.Specializations...)
	out.Languages = append([]string(nil), p.Languages...)
	out.ConsultationModes = append([]string(nil), p.ConsultationModes...)
	out.Achievements = append([]string(nil), p.Achievements...)
	out.Education = append([]models.Education(nil), p.Education...)
	return out
}
