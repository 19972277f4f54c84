package repository

import (
	"context"

	"survey-backend/internal/database"
	"survey-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type PreSurveyRepo struct {
	collection *mongo.Collection
}

func NewPreSurveyRepo(db *mongo.Database) *PreSurveyRepo {
	return &PreSurveyRepo{
		collection: db.Collection(database.PreSurveyCollection),
	}
}

func (r *PreSurveyRepo) Create(ctx context.Context, resp *models.PreSurveyResponse) error {
	resp.Version = 0
	result, err := r.collection.InsertOne(ctx, resp)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		resp.ID = id
	}
	return nil
}

type PostSurveyRepo struct {
	collection *mongo.Collection
}

func NewPostSurveyRepo(db *mongo.Database) *PostSurveyRepo {
	return &PostSurveyRepo{
		collection: db.Collection(database.PostSurveyCollection),
	}
}

func (r *PostSurveyRepo) Create(ctx context.Context, resp *models.PostSurveyResponse) error {
	resp.Version = 0
	result, err := r.collection.InsertOne(ctx, resp)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		resp.ID = id
	}
	return nil
}
