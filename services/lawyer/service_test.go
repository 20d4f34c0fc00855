package lawyer

import (
	"context"
	"testing"
	"time"

	memoryRepo "lexconnect/database/repository/memory"
	"lexconnect/models"
	"lexconnect/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var owner = models.Identity{UserID: "user-7", Role: models.RoleLawyer}

func validProfile() models.LawyerProfile {
	return models.LawyerProfile{
		BarCouncilNumber:  "MH/1234/2015",
		Qualification:     "LLB",
		Specializations:   []string{"Family Law", "Civil Law"},
		Experience:        9,
		Languages:         []string{"English", "Marathi"},
		Location:          models.Location{City: "Pune", State: "Maharashtra"},
		ConsultationFee:   1200,
		ConsultationModes: []string{models.ConsultationCall, models.ConsultationVideo},
	}
}

func newService() (*DefaultLawyerService, *memoryRepo.LawyerStore) {
	store := memoryRepo.NewLawyerStore()
	return &DefaultLawyerService{Repo: store}, store
}

func TestSaveProfile_CreateIgnoresClientRating(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	p := validProfile()
	p.Rating = models.LawyerRating{Average: 5, Count: 1000}
	p.IsVerified = true

	saved, err := svc.SaveProfile(ctx, owner, p)
	require.NoError(t, err)

	stored, err := svc.GetLawyer(ctx, saved.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.Rating.Count)
	assert.Zero(t, stored.Rating.Average)
	assert.False(t, stored.IsVerified)
	assert.True(t, stored.IsActive)
	assert.Equal(t, owner.UserID, stored.UserID)
	assert.True(t, stored.Availability.Monday.IsAvailable)
	assert.False(t, stored.Availability.Sunday.IsAvailable)
}

func TestSaveProfile_UpdatePreservesRatingAndVerification(t *testing.T) {
	ctx := context.Background()
	svc, store := newService()
	created, err := svc.SaveProfile(ctx, owner, validProfile())
	require.NoError(t, err)
	_, err = store.PatchRating(ctx, created.ID, models.LawyerRating{Average: 3.5, Count: 2, ComputedAt: time.Now()})
	require.NoError(t, err)

	edit := validProfile()
	edit.Experience = 10
	edit.Rating = models.LawyerRating{Average: 5, Count: 50}
	edit.IsVerified = true
	_, err = svc.SaveProfile(ctx, owner, edit)
	require.NoError(t, err)

	stored, err := svc.GetMyProfile(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
	assert.Equal(t, 10, stored.Experience)
	assert.Equal(t, 3.5, stored.Rating.Average)
	assert.Equal(t, 2, stored.Rating.Count)
	assert.False(t, stored.IsVerified)
}

func TestSaveProfile_Rejections(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.SaveProfile(ctx, models.Identity{}, validProfile())
	assert.ErrorIs(t, err, utils.ErrUnauthorized)

	_, err = svc.SaveProfile(ctx, models.Identity{UserID: "u", Role: models.RoleClient}, validProfile())
	assert.ErrorIs(t, err, utils.ErrForbidden)

	bad := validProfile()
	bad.Specializations = []string{"Space Law"}
	_, err = svc.SaveProfile(ctx, owner, bad)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	bad = validProfile()
	bad.Location.City = ""
	_, err = svc.SaveProfile(ctx, owner, bad)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.SaveProfile(ctx, owner, validProfile())
	require.NoError(t, err)
	other := validProfile()
	other.ID = "someone-else"
	_, err = svc.SaveProfile(ctx, owner, other)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestGetLawyer_NotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetLawyer(context.Background(), "ghost")

	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.Equal(t, 404, utils.HTTPStatus(err))
}

func TestVocabularies(t *testing.T) {
	svc, _ := newService()

	assert.Len(t, svc.Specializations(), 12)
	assert.Contains(t, svc.Languages(), "Sanskrit")

	list := svc.Languages()
	list[0] = "Klingon"
	assert.Equal(t, "English", svc.Languages()[0])
}
