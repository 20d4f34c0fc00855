package reviewRepo

import (
	"context"
	"fmt"

	"lexconnect/database"
	"lexconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newestFirst orders by creation time, with the id as a stable tie-break.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "id", Value: 1}}

// GetByID retrieves a review by its unique ID.
func (r *MongoReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review); err != nil {
		return nil, database.WrapErr(fmt.Sprintf("failed to fetch review %s", id), err)
	}
	return &review, nil
}

func (r *MongoReviewRepo) FindByLawyer(ctx context.Context, lawyerID string, page, pageSize int) ([]models.Review, int, error) {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	filter := bson.M{"lawyerId": lawyerID}
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, database.WrapErr("failed to count reviews", err)
	}

	opts := options.Find().
		SetSort(newestFirst).
		SetSkip(int64(models.PageOffset(page, pageSize))).
		SetLimit(int64(pageSize))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, database.WrapErr("failed to list reviews", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, database.WrapErr("failed to decode reviews", err)
	}
	return reviews, int(total), nil
}

func (r *MongoReviewRepo) FindByAuthor(ctx context.Context, authorID string) ([]models.Review, error) {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"authorId": authorID}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, database.WrapErr("failed to list author reviews", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, database.WrapErr("failed to decode reviews", err)
	}
	return reviews, nil
}
