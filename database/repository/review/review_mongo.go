package reviewRepo

import (
	"fmt"

	"lexconnect/database"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	reviewsCollection = "reviews"
	reportsCollection = "review_reports"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll    *mongo.Collection
	reports *mongo.Collection
}

// NewMongoReviewRepo creates the repository and its indexes. The unique
// (lawyerId, authorId) index is load-bearing, so index failures are returned.
func NewMongoReviewRepo() (ReviewRepository, error) {
	db := database.Database()
	repo := &MongoReviewRepo{
		coll:    db.Collection(reviewsCollection),
		reports: db.Collection(reportsCollection),
	}
	if err := repo.ensureIndexes(); err != nil {
		return nil, fmt.Errorf("review repository: %w", err)
	}
	return repo, nil
}
