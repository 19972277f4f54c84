package repository

import (
	"context"

	"survey-backend/internal/database"
	"survey-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ResponseRepo stores trial responses.
type ResponseRepo struct {
	collection *mongo.Collection
}

func NewResponseRepo(db *mongo.Database) *ResponseRepo {
	return &ResponseRepo{
		collection: db.Collection(database.ResponseCollection),
	}
}

// InsertMany writes the batch with a single ordered insert. An empty batch is a no-op.
func (r *ResponseRepo) InsertMany(ctx context.Context, responses []models.TrialResponse) error {
	if len(responses) == 0 {
		return nil
	}

	docs := make([]models.TrialResponse, len(responses))
	copy(docs, responses)
	for i := range docs {
		docs[i].Version = 0
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return err
	}
	for i, insertedID := range result.InsertedIDs {
		if id, ok := insertedID.(bson.ObjectID); ok && i < len(responses) {
			responses[i].ID = id
		}
	}
	return nil
}

// FindAll returns every trial response in insertion order.
func (r *ResponseRepo) FindAll(ctx context.Context) ([]models.TrialResponse, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	responses := []models.TrialResponse{}
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}
