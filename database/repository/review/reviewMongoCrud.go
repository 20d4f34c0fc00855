package reviewRepo

import (
	"context"
	"fmt"

	"lexconnect/database"
	"lexconnect/models"
	"lexconnect/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new review document. The unique pair index turns a concurrent
// second insert for the same lawyer and author into a duplicate-key error.
func (r *MongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("review for lawyer %s by %s: %w", review.LawyerID, review.AuthorID, utils.ErrDuplicateReview)
		}
		return database.WrapErr("failed to create review", err)
	}
	return nil
}

// Update rewrites only the fields an author may change.
func (r *MongoReviewRepo) Update(ctx context.Context, review *models.Review) error {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"rating":           review.Rating,
		"comment":          review.Comment,
		"consultationType": review.ConsultationType,
		"isAnonymous":      review.IsAnonymous,
		"updatedAt":        review.UpdatedAt,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": review.ID}, update)
	if err != nil {
		return database.WrapErr(fmt.Sprintf("failed to update review %s", review.ID), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("review %s: %w", review.ID, utils.ErrNotFound)
	}
	return nil
}

// Delete removes a review document by its ID.
func (r *MongoReviewRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return database.WrapErr(fmt.Sprintf("failed to delete review %s", id), err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("review %s: %w", id, utils.ErrNotFound)
	}
	return nil
}

// CreateReport inserts a moderation report.
func (r *MongoReviewRepo) CreateReport(ctx context.Context, report *models.ReviewReport) error {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	if _, err := r.reports.InsertOne(ctx, report); err != nil {
		return database.WrapErr("failed to create review report", err)
	}
	return nil
}
