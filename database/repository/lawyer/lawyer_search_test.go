package lawyerRepo

import (
	"testing"
	"time"

	"lexconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestBuildFilter_BasePredicateAlwaysPresent(t *testing.T) {
	filter := BuildFilter(models.LawyerFilter{})

	assert.Equal(t, bson.M{"isActive": true, "isVerified": true}, filter)
}

func TestBuildFilter_AllPredicates(t *testing.T) {
	filter := BuildFilter(models.LawyerFilter{
		City:             "Mumbai",
		State:            "maha",
		Specialization:   "Family Law",
		Language:         "Hindi",
		MinExperience:    intPtr(5),
		ConsultationMode: "Video Chat",
		MinRating:        floatPtr(4.5),
		MaxFee:           floatPtr(2000),
	})

	assert.Equal(t, bson.M{"$regex": "Mumbai", "$options": "i"}, filter["location.city"])
	assert.Equal(t, bson.M{"$regex": "maha", "$options": "i"}, filter["location.state"])
	assert.Equal(t, bson.M{"$in": bson.A{"Family Law"}}, filter["specializations"])
	assert.Equal(t, bson.M{"$in": bson.A{"Hindi"}}, filter["languages"])
	assert.Equal(t, bson.M{"$gte": 5}, filter["experience"])
	assert.Equal(t, bson.M{"$in": bson.A{"Video Chat"}}, filter["consultationModes"])
	assert.Equal(t, bson.M{"$gte": 4.5}, filter["rating.average"])
	assert.Equal(t, bson.M{"$lte": 2000.0}, filter["consultationFee"])
	assert.Equal(t, true, filter["isActive"])
	assert.Equal(t, true, filter["isVerified"])
}

func TestBuildFilter_EscapesRegexMetacharacters(t *testing.T) {
	filter := BuildFilter(models.LawyerFilter{City: "St. John (East)"})

	assert.Equal(t, `St\. John \(East\)`, filter["location.city"].(bson.M)["$regex"])
}

func TestBuildPipeline_FilterModeSortsByRatingThenExperience(t *testing.T) {
	pipeline := BuildPipeline(models.LawyerQuery{
		Mode:     models.SearchModeFilter,
		Page:     3,
		PageSize: 10,
	})

	require.Len(t, pipeline, 4)
	assert.Equal(t, "$match", pipeline[0][0].Key)
	assert.Equal(t, "$sort", pipeline[1][0].Key)
	assert.Equal(t, listingOrder, pipeline[1][0].Value)

	facet := pipeline[3][0]
	require.Equal(t, "$facet", facet.Key)
	items := facet.Value.(bson.M)["items"].(bson.A)
	assert.Equal(t, bson.M{"$skip": 20}, items[0])
	assert.Equal(t, bson.M{"$limit": 10}, items[1])
}

func TestBuildPipeline_TextModeMatchesTextFirstAndSortsByScore(t *testing.T) {
	pipeline := BuildPipeline(models.LawyerQuery{
		Mode:     models.SearchModeText,
		Text:     "family delhi",
		Page:     1,
		PageSize: 10,
	})

	require.Len(t, pipeline, 5)
	match := pipeline[0][0]
	require.Equal(t, "$match", match.Key)
	assert.Equal(t, bson.M{"$search": "family delhi"}, match.Value.(bson.M)["$text"])
	assert.Equal(t, true, match.Value.(bson.M)["isVerified"])
	assert.Equal(t, "$addFields", pipeline[1][0].Key)
	assert.Equal(t, bson.D{{Key: "score", Value: -1}}, pipeline[2][0].Value)
}

func TestOwnerDocument_StripsProtectedFields(t *testing.T) {
	doc, err := ownerDocument(&models.LawyerProfile{
		ID:         "lawyer-1",
		UserID:     "user-1",
		Experience: 7,
		Rating:     models.LawyerRating{Average: 5, Count: 100},
	})

	require.NoError(t, err)
	for _, f := range protectedFields {
		assert.NotContains(t, doc, f)
	}
	assert.EqualValues(t, 7, doc["experience"])
}

func TestIncrementPipeline_ReadsPreUpdateCount(t *testing.T) {
	stamp := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	pipeline := incrementPipeline(4, stamp)

	require.Len(t, pipeline, 1)
	set := pipeline[0][0].Value.(bson.D)
	require.Len(t, set, 3)
	assert.Equal(t, "rating.average", set[0].Key)
	assert.Equal(t, "rating.count", set[1].Key)
	assert.Equal(t, bson.D{{Key: "$add", Value: bson.A{"$rating.count", 1}}}, set[1].Value)
	assert.Equal(t, "rating.computedAt", set[2].Key)
	assert.Equal(t, stamp, set[2].Value)
}

func TestRatingPatchFilter_GuardsOnComputedAt(t *testing.T) {
	stamp := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	filter := ratingPatchFilter("L1", stamp)

	assert.Equal(t, "L1", filter["id"])
	assert.Equal(t, bson.A{
		bson.M{"rating.computedAt": bson.M{"$lte": stamp}},
		bson.M{"rating.computedAt": nil},
	}, filter["$or"])
}
