package reviewRepo

import (
	"context"

	"lexconnect/database"
	"lexconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ratingBucket struct {
	Rating int `bson:"_id"`
	Count  int `bson:"count"`
}

// statsPipeline groups a lawyer's reviews by star value.
func statsPipeline(lawyerID string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "lawyerId", Value: lawyerID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$rating"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

// AggregateStats reads the current review rows and folds them into count, mean and histogram.
// The mean is computed from the integer sum so every caller derives the same float.
func (r *MongoReviewRepo) AggregateStats(ctx context.Context, lawyerID string) (*models.RatingStats, error) {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, statsPipeline(lawyerID))
	if err != nil {
		return nil, database.WrapErr("review stats aggregation failed", err)
	}
	defer cursor.Close(ctx)

	var buckets []ratingBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, database.WrapErr("failed to decode review stats", err)
	}

	stats := models.NewRatingStats(lawyerID)
	for _, b := range buckets {
		stats.Add(b.Rating, b.Count)
	}
	return stats, nil
}
