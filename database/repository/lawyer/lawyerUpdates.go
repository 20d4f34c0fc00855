package lawyerRepo

import (
	"context"
	"fmt"
	"time"

	"lexconnect/database"
	"lexconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ratingPatchFilter matches the lawyer unless its stored rating was computed after computedAt.
// Equal stamps apply; BSON datetimes only keep milliseconds.
func ratingPatchFilter(lawyerID string, computedAt time.Time) bson.M {
	return bson.M{
		"id": lawyerID,
		"$or": bson.A{
			bson.M{"rating.computedAt": bson.M{"$lte": computedAt}},
			bson.M{"rating.computedAt": nil},
		},
	}
}

// PatchRating writes the rating sub-document in one atomic update.
func (r *MongoLawyerRepo) PatchRating(ctx context.Context, lawyerID string, rating models.LawyerRating) (bool, error) {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"rating.average":    rating.Average,
		"rating.count":      rating.Count,
		"rating.computedAt": rating.ComputedAt,
	}}
	result, err := r.coll.UpdateOne(ctx, ratingPatchFilter(lawyerID, rating.ComputedAt), update)
	if err != nil {
		return false, database.WrapErr(fmt.Sprintf("failed to patch rating for lawyer %s", lawyerID), err)
	}
	return result.MatchedCount > 0, nil
}

// incrementPipeline computes (average*count + r)/(count+1) and count+1 on the server
// and stamps computedAt. All expressions read the pre-update document.
func incrementPipeline(newRating int, computedAt time.Time) mongo.Pipeline {
	nextCount := bson.D{{Key: "$add", Value: bson.A{"$rating.count", 1}}}
	total := bson.D{{Key: "$add", Value: bson.A{
		bson.D{{Key: "$multiply", Value: bson.A{"$rating.average", "$rating.count"}}},
		newRating,
	}}}
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "rating.average", Value: bson.D{{Key: "$divide", Value: bson.A{total, nextCount}}}},
			{Key: "rating.count", Value: nextCount},
			{Key: "rating.computedAt", Value: computedAt},
		}}},
	}
}

// IncrementRating applies a single new rating atomically, guarded like PatchRating.
func (r *MongoLawyerRepo) IncrementRating(ctx context.Context, lawyerID string, newRating int, computedAt time.Time) (bool, error) {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, ratingPatchFilter(lawyerID, computedAt), incrementPipeline(newRating, computedAt))
	if err != nil {
		return false, database.WrapErr(fmt.Sprintf("failed to increment rating for lawyer %s", lawyerID), err)
	}
	return result.MatchedCount > 0, nil
}
