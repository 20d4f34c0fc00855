package lawyerRepo

import (
	"fmt"

	"lexconnect/database"

	"go.mongodb.org/mongo-driver/mongo"
)

const lawyersCollection = "lawyers"

// MongoLawyerRepo implements LawyerRepository using MongoDB.
type MongoLawyerRepo struct {
	coll *mongo.Collection
}

// NewMongoLawyerRepo creates the repository and ensures its indexes, including the text index.
func NewMongoLawyerRepo() (LawyerRepository, error) {
	repo := &MongoLawyerRepo{coll: database.Database().Collection(lawyersCollection)}
	if err := repo.ensureIndexes(); err != nil {
		return nil, fmt.Errorf("lawyer repository: %w", err)
	}
	return repo, nil
}
