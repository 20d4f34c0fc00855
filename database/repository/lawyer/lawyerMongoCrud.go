package lawyerRepo

import (
	"context"
	"fmt"

	"lexconnect/database"
	"lexconnect/models"
	"lexconnect/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fields the owner may never write through Put.
var protectedFields = []string{"_id", "id", "userId", "rating", "createdAt", "score"}

// Create inserts a new profile document.
func (r *MongoLawyerRepo) Create(ctx context.Context, profile *models.LawyerProfile) error {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	profile.Rating = models.LawyerRating{}
	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return database.WrapErr("failed to create lawyer profile", err)
	}
	return nil
}

// Put replaces the owner-controlled fields with a single $set; the rating is left as stored.
func (r *MongoLawyerRepo) Put(ctx context.Context, profile *models.LawyerProfile) error {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	doc, err := ownerDocument(profile)
	if err != nil {
		return err
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": profile.ID}, bson.M{"$set": doc})
	if err != nil {
		return database.WrapErr(fmt.Sprintf("failed to update lawyer %s", profile.ID), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("lawyer %s: %w", profile.ID, utils.ErrNotFound)
	}
	return nil
}

// ownerDocument renders a profile as a $set document without the protected fields.
func ownerDocument(profile *models.LawyerProfile) (bson.M, error) {
	raw, err := bson.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lawyer profile: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode lawyer profile: %w", err)
	}
	for _, f := range protectedFields {
		delete(doc, f)
	}
	return doc, nil
}

// GetByID retrieves a profile by its unique ID.
func (r *MongoLawyerRepo) GetByID(ctx context.Context, id string) (*models.LawyerProfile, error) {
	return r.findOne(ctx, bson.M{"id": id}, "lawyer "+id)
}

// GetByUserID retrieves the profile owned by the given user.
func (r *MongoLawyerRepo) GetByUserID(ctx context.Context, userID string) (*models.LawyerProfile, error) {
	return r.findOne(ctx, bson.M{"userId": userID}, "lawyer for user "+userID)
}

func (r *MongoLawyerRepo) findOne(ctx context.Context, filter bson.M, what string) (*models.LawyerProfile, error) {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	var profile models.LawyerProfile
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&profile); err != nil {
		return nil, database.WrapErr("failed to fetch "+what, err)
	}
	return &profile, nil
}

// ListIDs pages through profile IDs in ascending order.
func (r *MongoLawyerRepo) ListIDs(ctx context.Context, afterID string, limit int) ([]string, error) {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"id": 1, "_id": 0}).
		SetSort(bson.D{{Key: "id", Value: 1}}).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$gt": afterID}}, opts)
	if err != nil {
		return nil, database.WrapErr("failed to list lawyer ids", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID string `bson:"id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, database.WrapErr("failed to decode lawyer ids", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}
