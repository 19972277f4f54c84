package repository

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"survey-backend/internal/database"
	"survey-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Set SURVEY_TEST_MONGO_URI (e.g. mongodb://127.0.0.1:27017) to run against a live server.
const testURIEnv = "SURVEY_TEST_MONGO_URI"

type RepositoryTestSuite struct {
	suite.Suite
	connURI      string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func (s *RepositoryTestSuite) SetupSuite() {
	client, err := database.Connect(context.Background(), s.connURI)
	if err != nil {
		s.T().Fatalf("connect mongo database with error: %s", err)
	}

	s.mongoClient = client
	s.testDatabase = client.Database("survey-test-" + uuid.NewString()[:8])
}

func (s *RepositoryTestSuite) TearDownSuite() {
	ctx := context.Background()
	s.NoError(s.testDatabase.Drop(ctx))
	s.NoError(s.mongoClient.Disconnect(ctx))
}

func (s *RepositoryTestSuite) SetupTest() {
	// make sure every test starts with empty collections
	s.Require().NoError(s.testDatabase.Drop(context.Background()))
}

func (s *RepositoryTestSuite) TestCreatePreSurvey() {
	ctx := context.Background()
	repo := NewPreSurveyRepo(s.testDatabase)

	resp := &models.PreSurveyResponse{
		Age:                    models.TextPtr("25"),
		Gender:                 models.TextPtr("F"),
		Country:                models.TextPtr("US"),
		FamiliarityWithRobots:  models.TextPtr("high"),
		PreferRobotsOverHumans: models.TextPtr("no"),
	}
	s.Require().NoError(repo.Create(ctx, resp))
	s.False(resp.ID.IsZero())

	var raw bson.M
	err := s.testDatabase.Collection(database.PreSurveyCollection).
		FindOne(ctx, bson.M{"_id": resp.ID}).Decode(&raw)
	s.Require().NoError(err)
	s.Equal("25", raw["age"])
	s.Equal("F", raw["gender"])
	s.Equal("US", raw["country"])
	s.Equal("high", raw["familiarityWithRobots"])
	s.Equal("no", raw["preferRobotsOverHumans"])
	s.EqualValues(0, raw["__v"])
}

func (s *RepositoryTestSuite) TestCreatePreSurveyOmitsUnsetFields() {
	ctx := context.Background()
	repo := NewPreSurveyRepo(s.testDatabase)

	resp := &models.PreSurveyResponse{Country: models.TextPtr("NZ")}
	s.Require().NoError(repo.Create(ctx, resp))

	var raw bson.M
	err := s.testDatabase.Collection(database.PreSurveyCollection).
		FindOne(ctx, bson.M{"_id": resp.ID}).Decode(&raw)
	s.Require().NoError(err)
	s.Equal("NZ", raw["country"])
	s.NotContains(raw, "age")
	s.NotContains(raw, "gender")
}

func (s *RepositoryTestSuite) TestCreatePostSurvey() {
	ctx := context.Background()
	repo := NewPostSurveyRepo(s.testDatabase)

	resp := &models.PostSurveyResponse{
		SatisfactionRating: models.TextPtr("4"),
		AdditionalComments: models.TextPtr("the robot was polite"),
	}
	s.Require().NoError(repo.Create(ctx, resp))

	count, err := s.testDatabase.Collection(database.PostSurveyCollection).CountDocuments(ctx, bson.M{"_id": resp.ID})
	s.NoError(err)
	s.Equal(int64(1), count)

	others, err := s.testDatabase.Collection(database.PreSurveyCollection).CountDocuments(ctx, bson.M{})
	s.NoError(err)
	s.Zero(others)
}

func (s *RepositoryTestSuite) TestInsertManyThenFindAll() {
	ctx := context.Background()
	repo := NewResponseRepo(s.testDatabase)

	batch := []models.TrialResponse{
		{Set: models.NumberPtr(1), Question: models.TextPtr("Q1"), Response: models.NumberPtr(4)},
		{Set: models.NumberPtr(1), Question: models.TextPtr("Q2"), Response: models.NumberPtr(2)},
		{Set: models.NumberPtr(2), Question: models.TextPtr("Q1"), Response: models.NumberPtr(5)},
	}
	s.Require().NoError(repo.InsertMany(ctx, batch))
	for _, r := range batch {
		s.False(r.ID.IsZero())
	}

	got, err := repo.FindAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, len(batch))
	for i := range batch {
		s.Equal(batch[i].ID, got[i].ID)
		s.Equal(*batch[i].Set, *got[i].Set)
		s.Equal(batch[i].Question.String(), got[i].Question.String())
		s.Equal(*batch[i].Response, *got[i].Response)
	}

	again, err := repo.FindAll(ctx)
	s.NoError(err)
	s.Equal(got, again)
}

func (s *RepositoryTestSuite) TestInsertManyStoresExplicitNulls() {
	ctx := context.Background()
	repo := NewResponseRepo(s.testDatabase)

	var batch models.SurveyBatch
	s.Require().NoError(json.Unmarshal([]byte(`{"submittedResponses":[{"set":2,"question":"Q9","response":""}]}`), &batch))
	s.Require().NoError(repo.InsertMany(ctx, batch.SubmittedResponses))

	var raw bson.M
	err := s.testDatabase.Collection(database.ResponseCollection).
		FindOne(ctx, bson.M{"_id": batch.SubmittedResponses[0].ID}).Decode(&raw)
	s.Require().NoError(err)
	s.EqualValues(2, raw["set"])
	s.Contains(raw, "response")
	s.Nil(raw["response"])

	got, err := repo.FindAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Nil(got[0].Response)
}

func (s *RepositoryTestSuite) TestInsertManyEmptyBatch() {
	ctx := context.Background()
	repo := NewResponseRepo(s.testDatabase)

	s.NoError(repo.InsertMany(ctx, []models.TrialResponse{}))

	got, err := repo.FindAll(ctx)
	s.NoError(err)
	s.NotNil(got)
	s.Empty(got)
}

func (s *RepositoryTestSuite) TestFindAllCanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewResponseRepo(s.testDatabase).FindAll(ctx)
	s.Error(err)
}

func TestRepositoryTestSuite(t *testing.T) {
	uri := os.Getenv(testURIEnv)
	if uri == "" {
		t.Skipf("%s not set", testURIEnv)
	}
	suite.Run(t, &RepositoryTestSuite{connURI: uri})
}
