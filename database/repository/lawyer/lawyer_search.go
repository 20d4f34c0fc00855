package lawyerRepo

import (
	"context"
	"regexp"

	"lexconnect/database"
	"lexconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// listingOrder is the fixed order for filter queries; id breaks remaining ties.
var listingOrder = bson.D{
	{Key: "rating.average", Value: -1},
	{Key: "experience", Value: -1},
	{Key: "id", Value: 1},
}

// BuildFilter translates structured predicates into a match document.
// Only active, verified profiles are ever matched.
func BuildFilter(f models.LawyerFilter) bson.M {
	filter := bson.M{"isActive": true, "isVerified": true}

	if f.City != "" {
		filter["location.city"] = containsIgnoreCase(f.City)
	}
	if f.State != "" {
		filter["location.state"] = containsIgnoreCase(f.State)
	}
	if f.Specialization != "" {
		filter["specializations"] = bson.M{"$in": bson.A{f.Specialization}}
	}
	if f.Language != "" {
		filter["languages"] = bson.M{"$in": bson.A{f.Language}}
	}
	if f.MinExperience != nil {
		filter["experience"] = bson.M{"$gte": *f.MinExperience}
	}
	if f.ConsultationMode != "" {
		filter["consultationModes"] = bson.M{"$in": bson.A{f.ConsultationMode}}
	}
	if f.MinRating != nil {
		filter["rating.average"] = bson.M{"$gte": *f.MinRating}
	}
	if f.MaxFee != nil {
		filter["consultationFee"] = bson.M{"$lte": *f.MaxFee}
	}
	return filter
}

// containsIgnoreCase matches the literal value anywhere in the field.
func containsIgnoreCase(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}

// BuildPipeline renders a query as a single aggregation so the page and the total
// are read from the same snapshot.
func BuildPipeline(q models.LawyerQuery) mongo.Pipeline {
	var pipeline mongo.Pipeline

	if q.Mode == models.SearchModeText {
		// $text must be in the first stage.
		pipeline = append(pipeline,
			bson.D{{Key: "$match", Value: bson.M{
				"$text":      bson.M{"$search": q.Text},
				"isActive":   true,
				"isVerified": true,
			}}},
			bson.D{{Key: "$addFields", Value: bson.M{"score": bson.M{"$meta": "textScore"}}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: "score", Value: -1}}}},
		)
	} else {
		pipeline = append(pipeline,
			bson.D{{Key: "$match", Value: BuildFilter(q.Filter)}},
			bson.D{{Key: "$sort", Value: listingOrder}},
		)
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$project", Value: bson.M{"_id": 0}}},
		bson.D{{Key: "$facet", Value: bson.M{
			"items": bson.A{
				bson.M{"$skip": q.Offset()},
				bson.M{"$limit": q.PageSize},
			},
			"total": bson.A{bson.M{"$count": "count"}},
		}}},
	)
	return pipeline
}

type searchFacet struct {
	Items []models.LawyerProfile `bson:"items"`
	Total []struct {
		Count int `bson:"count"`
	} `bson:"total"`
}

// Search executes a directory query.
func (r *MongoLawyerRepo) Search(ctx context.Context, query models.LawyerQuery) (*models.LawyerPage, error) {
	ctx, cancel := database.NewContext(ctx)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, BuildPipeline(query))
	if err != nil {
		return nil, database.WrapErr("lawyer search query failed", err)
	}
	defer cursor.Close(ctx)

	var facets []searchFacet
	if err := cursor.All(ctx, &facets); err != nil {
		return nil, database.WrapErr("failed to decode lawyer search", err)
	}

	page := &models.LawyerPage{Items: []models.LawyerProfile{}}
	if len(facets) == 0 {
		return page, nil
	}
	if facets[0].Items != nil {
		page.Items = facets[0].Items
	}
	if len(facets[0].Total) > 0 {
		page.TotalCount = facets[0].Total[0].Count
	}
	return page, nil
}
