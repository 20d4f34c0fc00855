package memoryRepo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"lexconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listedLawyer(id string, avg float64, experience int) *models.LawyerProfile {
	return &models.LawyerProfile{
		ID:                id,
		UserID:            "user-" + id,
		BarCouncilNumber:  "BAR-" + id,
		Experience:        experience,
		Specializations:   []string{"Family Law"},
		Languages:         []string{"English"},
		Location:          models.Location{City: "Mumbai", State: "Maharashtra"},
		ConsultationFee:   1000,
		ConsultationModes: []string{models.ConsultationCall},
		IsVerified:        true,
		IsActive:          true,
		Rating:            models.LawyerRating{Average: avg},
	}
}

func seed(t *testing.T, store *LawyerStore, p *models.LawyerProfile) {
	t.Helper()
	rating := p.Rating
	require.NoError(t, store.Create(context.Background(), p))
	if rating.Average > 0 {
		_, err := store.PatchRating(context.Background(), p.ID, models.LawyerRating{
			Average: rating.Average, Count: 1, ComputedAt: time.Now(),
		})
		require.NoError(t, err)
	}
}

func TestLawyerStore_CreateZeroesRating(t *testing.T) {
	store := NewLawyerStore()
	p := listedLawyer("L1", 0, 1)
	p.Rating = models.LawyerRating{Average: 5, Count: 99}
	require.NoError(t, store.Create(context.Background(), p))

	got, err := store.GetByID(context.Background(), "L1")
	require.NoError(t, err)
	assert.Zero(t, got.Rating.Count)
	assert.Zero(t, got.Rating.Average)
}

func TestLawyerStore_PutPreservesRating(t *testing.T) {
	ctx := context.Background()
	store := NewLawyerStore()
	seed(t, store, listedLawyer("L1", 4, 3))

	edit := listedLawyer("L1", 1, 10)
	edit.Rating = models.LawyerRating{Average: 1, Count: 500}
	require.NoError(t, store.Put(ctx, edit))

	got, err := store.GetByID(ctx, "L1")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Experience)
	assert.Equal(t, 4.0, got.Rating.Average)
	assert.Equal(t, 1, got.Rating.Count)
}

func TestLawyerStore_PatchRatingRejectsOlderComputation(t *testing.T) {
	ctx := context.Background()
	store := NewLawyerStore()
	require.NoError(t, store.Create(ctx, listedLawyer("L1", 0, 1)))
	newer := time.Now()
	older := newer.Add(-time.Second)

	applied, err := store.PatchRating(ctx, "L1", models.LawyerRating{Average: 4, Count: 2, ComputedAt: newer})
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = store.PatchRating(ctx, "L1", models.LawyerRating{Average: 5, Count: 1, ComputedAt: older})
	require.NoError(t, err)
	assert.False(t, applied)

	got, _ := store.GetByID(ctx, "L1")
	assert.Equal(t, 4.0, got.Rating.Average)
	assert.Equal(t, 2, got.Rating.Count)
}

func TestLawyerStore_PatchRatingEqualStampApplies(t *testing.T) {
	ctx := context.Background()
	store := NewLawyerStore()
	require.NoError(t, store.Create(ctx, listedLawyer("L1", 0, 1)))
	stamp := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	applied, err := store.PatchRating(ctx, "L1", models.LawyerRating{Average: 4, Count: 2, ComputedAt: stamp})
	require.NoError(t, err)
	require.True(t, applied)

	// Same-millisecond writes land in arrival order; the later one wins even if it read less.
	applied, err = store.PatchRating(ctx, "L1", models.LawyerRating{Average: 5, Count: 1, ComputedAt: stamp})
	require.NoError(t, err)
	assert.True(t, applied)

	got, _ := store.GetByID(ctx, "L1")
	assert.Equal(t, 1, got.Rating.Count)
	assert.Equal(t, 5.0, got.Rating.Average)
}

func TestLawyerStore_PatchRatingMissingLawyerIsNoop(t *testing.T) {
	applied, err := NewLawyerStore().PatchRating(context.Background(), "ghost", models.LawyerRating{Count: 1, ComputedAt: time.Now()})

	assert.NoError(t, err)
	assert.False(t, applied)
}

func TestLawyerStore_IncrementRating(t *testing.T) {
	ctx := context.Background()
	store := NewLawyerStore()
	require.NoError(t, store.Create(ctx, listedLawyer("L1", 0, 1)))

	stamp := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	for _, r := range []int{5, 3, 4} {
		stamp = stamp.Add(time.Millisecond)
		applied, err := store.IncrementRating(ctx, "L1", r, stamp)
		require.NoError(t, err)
		require.True(t, applied)
	}

	got, _ := store.GetByID(ctx, "L1")
	assert.Equal(t, 3, got.Rating.Count)
	assert.InDelta(t, 4.0, got.Rating.Average, 1e-9)
	assert.Equal(t, stamp, got.Rating.ComputedAt)
}

func TestLawyerStore_IncrementRatingRespectsComputedAt(t *testing.T) {
	ctx := context.Background()
	store := NewLawyerStore()
	require.NoError(t, store.Create(ctx, listedLawyer("L1", 0, 1)))
	newer := time.Date(2024, 5, 1, 9, 0, 1, 0, time.UTC)
	older := newer.Add(-time.Second)

	applied, err := store.PatchRating(ctx, "L1", models.LawyerRating{Average: 4, Count: 2, ComputedAt: newer})
	require.NoError(t, err)
	require.True(t, applied)

	applied, err = store.IncrementRating(ctx, "L1", 1, older)
	require.NoError(t, err)
	assert.False(t, applied)

	got, _ := store.GetByID(ctx, "L1")
	assert.Equal(t, 2, got.Rating.Count)
	assert.Equal(t, 4.0, got.Rating.Average)

	// An increment stamped after a recompute makes that recompute's late write lose.
	later := newer.Add(time.Second)
	applied, err = store.IncrementRating(ctx, "L1", 1, later)
	require.NoError(t, err)
	require.True(t, applied)

	applied, err = store.PatchRating(ctx, "L1", models.LawyerRating{Average: 5, Count: 9, ComputedAt: newer})
	require.NoError(t, err)
	assert.False(t, applied)

	got, _ = store.GetByID(ctx, "L1")
	assert.Equal(t, 3, got.Rating.Count)
	assert.InDelta(t, 3.0, got.Rating.Average, 1e-9)
	assert.Equal(t, later, got.Rating.ComputedAt)
}

func TestLawyerStore_IncrementRatingMissingLawyerIsNoop(t *testing.T) {
	applied, err := NewLawyerStore().IncrementRating(context.Background(), "ghost", 5, time.Now())

	assert.NoError(t, err)
	assert.False(t, applied)
}

func TestLawyerStore_SearchOrdersAndPaginates(t *testing.T) {
	ctx := context.Background()
	store := NewLawyerStore()
	seed(t, store, listedLawyer("a", 4.0, 5))
	seed(t, store, listedLawyer("b", 4.5, 1))
	seed(t, store, listedLawyer("c", 4.0, 9))
	seed(t, store, listedLawyer("d", 4.0, 9))
	hidden := listedLawyer("e", 5, 20)
	hidden.IsVerified = false
	seed(t, store, hidden)

	page, err := store.Search(ctx, models.LawyerQuery{Mode: models.SearchModeFilter, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 4, page.TotalCount)

	var ids []string
	for _, p := range page.Items {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"b", "c", "d", "a"}, ids)

	page, err = store.Search(ctx, models.LawyerQuery{Mode: models.SearchModeFilter, Page: 2, PageSize: 3})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a", page.Items[0].ID)
}

func TestLawyerStore_SearchFilters(t *testing.T) {
	ctx := context.Background()
	store := NewLawyerStore()
	for i := 0; i < 6; i++ {
		p := listedLawyer(fmt.Sprintf("L%d", i), float64(i%5)+0.5, i)
		if i%2 == 0 {
			p.Location.City = "New Delhi"
			p.Languages = []string{"Hindi"}
		}
		p.ConsultationFee = float64(500 * i)
		seed(t, store, p)
	}
	minRating := 2.0
	maxFee := 1500.0

	page, err := store.Search(ctx, models.LawyerQuery{
		Mode:     models.SearchModeFilter,
		Filter:   models.LawyerFilter{City: "delhi", Language: "Hindi", MinRating: &minRating, MaxFee: &maxFee},
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Equal(t, 1, page.TotalCount)
	assert.Equal(t, "L2", page.Items[0].ID)
}

func TestLawyerStore_TextSearchScoresAndExcludesUnlisted(t *testing.T) {
	ctx := context.Background()
	store := NewLawyerStore()
	both := listedLawyer("both", 0, 1)
	both.Location.City = "Delhi"
	seed(t, store, both)
	familyOnly := listedLawyer("family", 0, 1)
	seed(t, store, familyOnly)
	none := listedLawyer("none", 0, 1)
	none.Specializations = []string{"Tax Law"}
	seed(t, store, none)
	inactive := listedLawyer("inactive", 0, 1)
	inactive.IsActive = false
	seed(t, store, inactive)

	page, err := store.Search(ctx, models.LawyerQuery{Mode: models.SearchModeText, Text: "family delhi", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, 2, page.TotalCount)
	assert.Equal(t, "both", page.Items[0].ID)
	assert.Greater(t, page.Items[0].Score, page.Items[1].Score)
}

func TestLawyerStore_ListIDsPagesInOrder(t *testing.T) {
	ctx := context.Background()
	store := NewLawyerStore()
	for _, id := range []string{"c", "a", "d", "b"} {
		seed(t, store, listedLawyer(id, 0, 1))
	}

	first, err := store.ListIDs(ctx, "", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, first)

	rest, err := store.ListIDs(ctx, "c", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, rest)
}
