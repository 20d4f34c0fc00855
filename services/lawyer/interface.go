package lawyer

import (
	"context"

	"lexconnect/models"
)

// LawyerService exposes lawyer profiles and the directory vocabularies.
type LawyerService interface {
	// GetLawyer retrieves a profile by ID.
	GetLawyer(ctx context.Context, id string) (*models.LawyerProfile, error)
	// GetMyProfile retrieves the profile owned by the acting lawyer.
	GetMyProfile(ctx context.Context, identity models.Identity) (*models.LawyerProfile, error)
	// SaveProfile creates or replaces the acting lawyer's profile. Rating fields supplied by the
	// caller are ignored.
	SaveProfile(ctx context.Context, identity models.Identity, profile models.LawyerProfile) (*models.LawyerProfile, error)
	// Specializations lists the accepted practice areas.
	Specializations() []string
	// Languages lists the accepted consultation languages.
	Languages() []string
}
