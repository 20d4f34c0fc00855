package lawyerRepo

import (
	"context"
	"fmt"

	"lexconnect/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const textIndexName = "lawyer_text"

// ensureIndexes creates indexes for the directory's lookups, listing order and text search.
func (r *MongoLawyerRepo) ensureIndexes() error {
	ctx, cancel := database.NewContext(context.Background())
	defer cancel()

	// Listing order for public filter queries.
	listingIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "isActive", Value: 1},
			{Key: "isVerified", Value: 1},
			{Key: "rating.average", Value: -1},
			{Key: "experience", Value: -1},
			{Key: "id", Value: 1},
		},
	}
	textIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "location.city", Value: "text"},
			{Key: "location.state", Value: "text"},
			{Key: "specializations", Value: "text"},
			{Key: "languages", Value: "text"},
		},
		Options: options.Index().SetName(textIndexName),
	}

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "barCouncilNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specializations", Value: 1}}},
		{Keys: bson.D{{Key: "languages", Value: 1}}},
		listingIdx,
		textIdx,
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create lawyer indexes: %w", err)
	}
	return nil
}
