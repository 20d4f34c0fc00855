package reviewRepo

import (
	"context"
	"fmt"

	"lexconnect/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const pairIndexName = "uniq_lawyer_author"

// ensureIndexes creates the identity, uniqueness and listing indexes.
func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := database.NewContext(context.Background())
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "lawyerId", Value: 1}, {Key: "authorId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(pairIndexName),
		},
		{Keys: bson.D{{Key: "lawyerId", Value: 1}, {Key: "createdAt", Value: -1}, {Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "authorId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}

	reportIdx := mongo.IndexModel{Keys: bson.D{{Key: "reviewId", Value: 1}, {Key: "createdAt", Value: -1}}}
	if _, err := r.reports.Indexes().CreateOne(ctx, reportIdx); err != nil {
		return fmt.Errorf("failed to create report indexes: %w", err)
	}
	return nil
}
