package lawyer

import (
	"context"
	"errors"
	"fmt"
	"time"

	lawyerRepo "lexconnect/database/repository/lawyer"
	"lexconnect/models"
	"lexconnect/utils"

	"github.com/google/uuid"
)

// DefaultLawyerService is the production implementation.
type DefaultLawyerService struct {
	Repo lawyerRepo.LawyerRepository
	Now  func() time.Time
}

func (s *DefaultLawyerService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *DefaultLawyerService) GetLawyer(ctx context.Context, id string) (*models.LawyerProfile, error) {
	profile, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.NotFound("lawyer", id)
		}
		return nil, fmt.Errorf("failed to load lawyer: %w", err)
	}
	return profile, nil
}

func (s *DefaultLawyerService) GetMyProfile(ctx context.Context, identity models.Identity) (*models.LawyerProfile, error) {
	if err := requireLawyer(identity); err != nil {
		return nil, err
	}
	profile, err := s.Repo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.NotFound("lawyer profile for user", identity.UserID)
		}
		return nil, fmt.Errorf("failed to load lawyer profile: %w", err)
	}
	return profile, nil
}

// SaveProfile writes the owner-controlled fields. Identity, ownership, verification and
// the rating always come from the stored record, never from the caller.
func (s *DefaultLawyerService) SaveProfile(ctx context.Context, identity models.Identity, profile models.LawyerProfile) (*models.LawyerProfile, error) {
	if err := requireLawyer(identity); err != nil {
		return nil, err
	}
	if err := utils.Validate(profile); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByUserID(ctx, identity.UserID)
	if err != nil && !errors.Is(err, utils.ErrNotFound) {
		return nil, fmt.Errorf("failed to load lawyer profile: %w", err)
	}

	now := s.now()
	profile.UserID = identity.UserID
	profile.UpdatedAt = now
	profile.Score = 0

	if existing == nil {
		profile.ID = uuid.New().String()
		profile.CreatedAt = now
		profile.IsVerified = false
		profile.IsActive = true
		profile.Rating = models.LawyerRating{}
		if profile.Availability == (models.WeeklyAvailability{}) {
			profile.Availability = models.DefaultAvailability()
		}
		if err := s.Repo.Create(ctx, &profile); err != nil {
			return nil, fmt.Errorf("failed to create lawyer profile: %w", err)
		}
		return &profile, nil
	}

	if profile.ID != "" && profile.ID != existing.ID {
		return nil, utils.Forbidden("you can only update your own profile")
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	profile.IsVerified = existing.IsVerified
	profile.Rating = existing.Rating
	if err := s.Repo.Put(ctx, &profile); err != nil {
		return nil, fmt.Errorf("failed to update lawyer profile: %w", err)
	}
	return &profile, nil
}

func (s *DefaultLawyerService) Specializations() []string {
	return append([]string(nil), models.Specializations...)
}

func (s *DefaultLawyerService) Languages() []string {
	return append([]string(nil), models.Languages...)
}

func requireLawyer(identity models.Identity) error {
	if !identity.Authenticated() {
		return utils.Unauthorized("authentication required")
	}
	if identity.Role != models.RoleLawyer {
		return utils.Forbidden("lawyer role required")
	}
	return nil
}
